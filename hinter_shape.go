package embryogen

import "context"

// ShapeHinter is a stationary agent whose published geometry is a ScalarImg
// representing an occupied volume (typically the yolk) that NucleusAgents
// are attracted toward via the hinter force. Grounded on
// original_source/Agents/ShapeHinter.{hpp,cpp}. Its five-phase contract is
// trivial: a hinter never moves, so every phase but PublishGeometry is a
// no-op; PublishGeometry republishes the unchanged image, bumping the
// shadow's Version on each call. This demonstrates the payoff of treating
// hinters through the same AbstractAgent interface as mechanically active
// agents (SPEC_FULL.md §4.1).
type ShapeHinter struct {
	id     int
	shadow *ShadowAgent
	img    *ScalarImg
}

const shapeHinterTypeID uint64 = 0xB1D0FEED

func NewShapeHinter(id int, img *ScalarImg) *ShapeHinter {
	img.UpdateOwnAABB()
	h := &ShapeHinter{id: id, img: img}
	h.shadow = NewShadowAgent(id, "ShapeHinter", shapeHinterTypeID, 0, img)
	return h
}

func (h *ShapeHinter) ID() int              { return h.id }
func (h *ShapeHinter) Shadow() *ShadowAgent { return h.shadow }

func (h *ShapeHinter) AdvanceAndBuildIntForces(ctx context.Context, futureGlobalTime float64) error {
	return ctx.Err()
}
func (h *ShapeHinter) AdjustGeometryByIntForces() error { return nil }
func (h *ShapeHinter) CollectExtForces(ctx context.Context, nearby NeighborLookup) error {
	return ctx.Err()
}
func (h *ShapeHinter) AdjustGeometryByExtForces() error { return nil }
func (h *ShapeHinter) PublishGeometry()                 { h.shadow.Republish(h.img) }
func (h *ShapeHinter) Status() AgentStatus              { return AgentAlive }
