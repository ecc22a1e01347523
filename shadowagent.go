package embryogen

// Agent id ranges used by DisplayUnit's layered drawing IDs so a renderer can
// distinguish agent-body geometry, per-agent debug overlays, and scene-level
// debug overlays without the three ever colliding. Grounded on
// original_source/DisplayUnits/DisplayUnit.hpp's firstIdForAgentObjects family.
const (
	idsPerAgent              = 40
	firstIdForSceneDebugBase = 5000
)

// FirstIdForAgentObjects returns the base draw-call id an agent's own body
// geometry should use.
func FirstIdForAgentObjects(agentID int) int { return agentID * idsPerAgent }

// FirstIdForAgentDebugObjects returns the base id an agent's debug overlays
// (velocity vectors, proximity lines, force arrows) should use, offset far
// enough past FirstIdForAgentObjects that the two never overlap.
func FirstIdForAgentDebugObjects(agentID int) int { return agentID*idsPerAgent + idsPerAgent/2 }

// FirstIdForSceneDebugObjects returns the base id for overlays that are not
// owned by any single agent (scene bounding box, global axes, etc).
func FirstIdForSceneDebugObjects() int {
	return firstIdForSceneDebugBase
}

// ShadowAgent is the immutable, published snapshot of a live agent that its
// peers (including agents owned by other FrontOfficers) see and test
// proximity against. Grounded on original_source/Agents/AbstractAgent.hpp's
// split between an agent's live state and what it exposes to others via
// getGeometry()/getAABB().
type ShadowAgent struct {
	ID          int
	TypeID      uint64 // hash of the concrete agent type name, e.g. "NucleusAgent"
	TypeName    string
	Geometry    Geometry
	Box         AABB
	Version     uint64 // bumped every time Geometry is republished
	OwnerFOID   int
}

// NewShadowAgent publishes a fresh snapshot version 0 for a freshly created
// agent; subsequent publishes should use Republish to keep Version
// monotonically increasing, since FrontOfficer caches compare versions to
// decide whether a cached shadow copy is stale.
func NewShadowAgent(id int, typeName string, typeID uint64, ownerFO int, geom Geometry) *ShadowAgent {
	return &ShadowAgent{
		ID:        id,
		TypeID:    typeID,
		TypeName:  typeName,
		Geometry:  geom,
		Box:       geom.AABB(),
		OwnerFOID: ownerFO,
	}
}

func (s *ShadowAgent) Republish(geom Geometry) {
	s.Geometry = geom
	s.Box = geom.AABB()
	s.Version++
}
