package embryogen

import "context"

// aFewAgentsScenario scatters a small handful of nucleus agents in a row,
// close enough to exercise the repulsive/body/slide force recipes without
// the cost of a full drosophila-scale population. Grounded on
// original_source/Scenarios/aFewAgents.hpp.
type aFewAgentsScenario struct{}

func init() { registerScenario(aFewAgentsScenario{}) }

func (aFewAgentsScenario) Name() string { return "aFewAgents" }

func (aFewAgentsScenario) Build(ctx context.Context, sim *Simulation, args []string) error {
	const count = 5
	const spacing = 8.0
	centre := sim.Controls.SceneSize.Div(2)

	for i := 0; i < count; i++ {
		id := sim.NextAgentID()
		a := NewNucleusAgent(id, Nucleus4S, 4, DefaultPhysicsParameters())
		offset := Vec3[float64]{X: float64(i) * spacing}
		for s := range a.futureGeometry.Centres {
			a.futureGeometry.Centres[s] = centre.Add(offset)
			a.futureGeometry.Radii[s] = 5
		}
		a.futureGeometry.UpdateOwnAABB()
		a.PublishGeometry()
		sim.AssignAgent(a)
	}
	return nil
}
