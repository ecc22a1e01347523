package embryogen

import "context"

// regularDrosophilaScenario approximates the full CTC drosophila dataset
// geometry: a ShapeHinter standing in for the yolk and a regular lattice of
// nucleus agents around it, grounded on
// original_source/Scenarios/regularDrosophila.hpp and config.hpp's
// documented 480x220x220 um embryo box.
type regularDrosophilaScenario struct{}

func init() { registerScenario(regularDrosophilaScenario{}) }

func (regularDrosophilaScenario) Name() string { return "regularDrosophila" }

func (regularDrosophilaScenario) Build(ctx context.Context, sim *Simulation, args []string) error {
	res := sim.Controls.ImgRes
	off := sim.Controls.SceneOffset
	imgSize := sim.Controls.ImageSizePixels()

	yolk := NewScalarImg(imgSize, res, off, 0.5, ZeroIN_GradOUT)
	centre := sim.Controls.SceneSize.Div(2)
	centrePx := MicronsToPixels(centre, res, off)
	radiusPx := 60
	for z := -radiusPx; z <= radiusPx; z++ {
		for y := -radiusPx; y <= radiusPx; y++ {
			for x := -radiusPx; x <= radiusPx; x++ {
				if x*x+y*y+z*z > radiusPx*radiusPx {
					continue
				}
				p := Vec3[int]{X: centrePx.X + x, Y: centrePx.Y + y, Z: centrePx.Z + z}
				if idx, ok := scalarImgIndex(yolk, p); ok {
					yolk.Data[idx] = 1
				}
			}
		}
	}
	hinterID := sim.NextAgentID()
	hinter := NewShapeHinter(hinterID, yolk)
	sim.AssignAgent(hinter)

	const gridStep = 20.0
	for x := gridStep; x < sim.Controls.SceneSize.X; x += gridStep {
		for y := gridStep; y < sim.Controls.SceneSize.Y; y += gridStep {
			id := sim.NextAgentID()
			a := NewNucleusAgent(id, NucleusNS, 4, DefaultPhysicsParameters())
			pos := Vec3[float64]{X: x, Y: y, Z: sim.Controls.SceneSize.Z / 2}
			for s := range a.futureGeometry.Centres {
				a.futureGeometry.Centres[s] = pos
				a.futureGeometry.Radii[s] = 5
			}
			a.futureGeometry.UpdateOwnAABB()
			a.PublishGeometry()
			sim.AssignAgent(a)
		}
	}
	return nil
}

func scalarImgIndex(s *ScalarImg, p Vec3[int]) (int, bool) {
	if p.X < 0 || p.Y < 0 || p.Z < 0 || p.X >= s.Size.X || p.Y >= s.Size.Y || p.Z >= s.Size.Z {
		return 0, false
	}
	return (p.Z*s.Size.Y+p.Y)*s.Size.X + p.X, true
}
