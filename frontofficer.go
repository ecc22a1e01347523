package embryogen

import (
	"context"
	"fmt"
)

// FrontOfficer owns a subset of the simulation's agents and drives their
// per-round five-phase lifecycle, grounded on original_source's
// FrontOfficer.{cpp,hpp}. Multiple FrontOfficers run as goroutines under one
// Simulation (transport.go), each exchanging AABBs with its peers once per
// round. A FrontOfficer does not run a ShadowAgentServer and does not fetch
// shadow agents from its peers: it only resolves agents it owns itself.
type FrontOfficer struct {
	id      int
	agents  map[int]AbstractAgent
	aabbs   map[int]NamedAABB
	shadows map[int]*ShadowAgent // shadows of locally owned agents, refreshed by refreshAABB

	log      Logger
	display  DisplayUnit
	exchange *AABBExchange
	barrier  *Barrier

	nextAgentID *int // shared counter across FrontOfficers for fresh ids (e.g. division daughters)
}

func NewFrontOfficer(id int, exchange *AABBExchange, barrier *Barrier, log Logger, display DisplayUnit) *FrontOfficer {
	if log == nil {
		log = NewNopLogger()
	}
	return &FrontOfficer{
		id:       id,
		agents:   make(map[int]AbstractAgent),
		aabbs:    make(map[int]NamedAABB),
		shadows:  make(map[int]*ShadowAgent),
		log:      log,
		display:  display,
		exchange: exchange,
		barrier:  barrier,
	}
}

func (fo *FrontOfficer) AddAgent(a AbstractAgent) {
	fo.agents[a.ID()] = a
	fo.refreshAABB(a)
}

func (fo *FrontOfficer) refreshAABB(a AbstractAgent) {
	s := a.Shadow()
	fo.aabbs[a.ID()] = NamedAABB{Box: s.Box, AgentID: s.ID, AgentTypeID: s.TypeID}
	fo.shadows[a.ID()] = s
}

// NearbyAABBs implements NeighborLookup by scanning every AABB this
// FrontOfficer currently knows about (its own agents plus whatever foreign
// AABBs the last exchange round delivered), filtered to those within
// ignoreDistance of self -- the deliberate O(N) linear broad phase
// SPEC_FULL.md §4.7 specifies instead of a spatial index.
func (fo *FrontOfficer) NearbyAABBs(self *ShadowAgent, ignoreDistance float64) []NamedAABB {
	out := make([]NamedAABB, 0, len(fo.aabbs))
	ignore2 := ignoreDistance * ignoreDistance
	for id, named := range fo.aabbs {
		if id == self.ID {
			continue
		}
		if self.Box.MinDistanceSq(named.Box) > ignore2 {
			continue
		}
		out = append(out, named)
	}
	return out
}

// NearbyAgent resolves the id of a locally owned agent to its ShadowAgent.
// An agent owned by another FrontOfficer is not resolved (ok is false), even
// though the AABB exchange makes its box visible to NearbyAABBs.
func (fo *FrontOfficer) NearbyAgent(id int) (*ShadowAgent, bool) {
	if a, ok := fo.agents[id]; ok {
		return a.Shadow(), true
	}
	s, ok := fo.shadows[id]
	return s, ok
}

// SphereVelocity implements NeighborLookup by exposing the real velocity of
// a sphere belonging to a locally owned agent; agents owned by a peer
// FrontOfficer only have a ShadowAgent cached here, which has no velocity.
func (fo *FrontOfficer) SphereVelocity(agentID int, sphereHint int) (Vec3[float64], bool) {
	a, ok := fo.agents[agentID]
	if !ok {
		return Vec3[float64]{}, false
	}
	na, ok := a.(*NucleusAgent)
	if !ok {
		return Vec3[float64]{}, false
	}
	return na.VelocityOfSphere(sphereHint)
}

// TranslateNameIDToAgentName resolves an agent id's published type name,
// grounded on FrontOfficer::translateNameIdToAgentName.
func (fo *FrontOfficer) TranslateNameIDToAgentName(id int) (string, bool) {
	s, ok := fo.NearbyAgent(id)
	if !ok {
		return "", false
	}
	return s.TypeName, true
}

// RunRound executes the five-phase protocol for every locally owned agent,
// in lockstep with the Director's global clock: advance+intForces for all,
// integrate, AABB exchange + barrier, extForces for all, integrate, publish.
// Grounded on FrontOfficer's prepareForUpdateAndPublish /
// exchange_AABBofAgents / postprocessAfterUpdate trio.
func (fo *FrontOfficer) RunRound(ctx context.Context, futureGlobalTime float64) error {
	for id, a := range fo.agents {
		if err := a.AdvanceAndBuildIntForces(ctx, futureGlobalTime); err != nil {
			return fmt.Errorf("FrontOfficer.RunRound(): agent %d: %w", id, err)
		}
		if err := a.AdjustGeometryByIntForces(); err != nil {
			return fmt.Errorf("FrontOfficer.RunRound(): agent %d: %w", id, err)
		}
		// Publish and refresh this agent's AABB now, after internal
		// integration but before the AABB exchange, so §5's ordering
		// guarantee holds: the AABB vector executeExternals uses is the one
		// published after this round's internal step, never the previous
		// round's. This is the first of the two per-round publications §3
		// requires (Version grows by exactly 2 per round).
		a.PublishGeometry()
		fo.refreshAABB(a)
	}

	if err := fo.exchangeAABBs(ctx); err != nil {
		return err
	}

	for id, a := range fo.agents {
		if err := a.CollectExtForces(ctx, fo); err != nil {
			return fmt.Errorf("FrontOfficer.RunRound(): agent %d: %w", id, err)
		}
		if err := a.AdjustGeometryByExtForces(); err != nil {
			return fmt.Errorf("FrontOfficer.RunRound(): agent %d: %w", id, err)
		}
	}

	fo.postprocessAfterUpdate()
	return fo.barrier.Arrive(ctx)
}

func (fo *FrontOfficer) exchangeAABBs(ctx context.Context) error {
	if fo.exchange == nil {
		return nil
	}
	mine := make([]NamedAABB, 0, len(fo.agents))
	for _, a := range fo.agents {
		s := a.Shadow()
		mine = append(mine, NamedAABB{Box: s.Box, AgentID: s.ID, AgentTypeID: s.TypeID})
	}
	merged, err := fo.exchange.Submit(ctx, fo.id, mine)
	if err != nil {
		return fmt.Errorf("FrontOfficer.RunRound(): AABB exchange: %w", err)
	}
	fo.aabbs = make(map[int]NamedAABB, len(merged))
	for _, n := range merged {
		fo.aabbs[n.AgentID] = n
	}
	return nil
}

// postprocessAfterUpdate publishes every agent's geometry, closes agents that
// requested it (enrolling any daughters they produced), and draws debug
// overlays if a DisplayUnit is attached.
func (fo *FrontOfficer) postprocessAfterUpdate() {
	var toClose []int
	for id, a := range fo.agents {
		a.PublishGeometry()
		fo.refreshAABB(a)
		if a.Status() == AgentShouldClose {
			toClose = append(toClose, id)
		}
		if fo.display != nil {
			fo.display.DrawPoint(FirstIdForAgentObjects(id), a.Shadow().Geometry.AABB().Min, 0)
		}
	}
	for _, id := range toClose {
		fo.closeAgent(id)
	}
}

func (fo *FrontOfficer) closeAgent(id int) {
	a, ok := fo.agents[id]
	if !ok {
		return
	}
	delete(fo.agents, id)
	delete(fo.aabbs, id)
	delete(fo.shadows, id)

	if na, ok := a.(*NucleusAgent); ok {
		for _, daughter := range na.Daughters() {
			fo.AddAgent(daughter)
		}
	}
}

// AgentCount reports how many agents this FrontOfficer currently owns.
func (fo *FrontOfficer) AgentCount() int { return len(fo.agents) }

// Agents returns every agent this FrontOfficer currently owns, used by the
// Simulation's export step to render instance masks across all FrontOfficers.
func (fo *FrontOfficer) Agents() []AbstractAgent {
	out := make([]AbstractAgent, 0, len(fo.agents))
	for _, a := range fo.agents {
		out = append(out, a)
	}
	return out
}
