package embryogen

import "context"

const trajectoriesHinterTypeID uint64 = 0xC0FFEE01

// TrajectoriesHinter is a stationary agent that renders a list of
// TrackRecords into a VectorImg flow field. NucleusAgent.CollectExtForces
// handles only "NucleusAgent" and "ShapeHinter" neighbours, so this field
// produces no force on nuclei. Grounded on
// original_source/Agents/TrajectoriesHinter.{hpp,cpp}.
type TrajectoriesHinter struct {
	id     int
	shadow *ShadowAgent
	field  *VectorImg
}

// NewTrajectoriesHinter renders records into field by depositing, for each
// consecutive pair of samples sharing an ID, the displacement vector at the
// earlier sample's voxel.
func NewTrajectoriesHinter(id int, field *VectorImg, records []TrackRecord, res Resolution, off Offset) *TrajectoriesHinter {
	byID := make(map[int][]TrackRecord)
	for _, r := range records {
		byID[r.ID] = append(byID[r.ID], r)
	}
	for _, samples := range byID {
		for i := 0; i+1 < len(samples); i++ {
			a, b := samples[i], samples[i+1]
			disp := b.Pos.Sub(a.Pos)
			px := MicronsToPixels(a.Pos, res, off)
			field.Deposit(px, disp)
		}
	}
	field.UpdateOwnAABB()

	h := &TrajectoriesHinter{id: id, field: field}
	h.shadow = NewShadowAgent(id, "TrajectoriesHinter", trajectoriesHinterTypeID, 0, field)
	return h
}

func (h *TrajectoriesHinter) ID() int              { return h.id }
func (h *TrajectoriesHinter) Shadow() *ShadowAgent { return h.shadow }

func (h *TrajectoriesHinter) AdvanceAndBuildIntForces(ctx context.Context, futureGlobalTime float64) error {
	return ctx.Err()
}
func (h *TrajectoriesHinter) AdjustGeometryByIntForces() error { return nil }
func (h *TrajectoriesHinter) CollectExtForces(ctx context.Context, nearby NeighborLookup) error {
	return ctx.Err()
}
func (h *TrajectoriesHinter) AdjustGeometryByExtForces() error { return nil }
func (h *TrajectoriesHinter) PublishGeometry()                 { h.shadow.Republish(h.field) }
func (h *TrajectoriesHinter) Status() AgentStatus              { return AgentAlive }
