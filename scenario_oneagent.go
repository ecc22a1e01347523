package embryogen

import "context"

// oneAgentScenario places a single four-sphere nucleus at the scene centre
// with no desired motion, the minimal smoke-test scenario grounded on
// original_source/Scenarios/oneAgent.hpp.
type oneAgentScenario struct{}

func init() { registerScenario(oneAgentScenario{}) }

func (oneAgentScenario) Name() string { return "oneAgent" }

func (oneAgentScenario) Build(ctx context.Context, sim *Simulation, args []string) error {
	id := sim.NextAgentID()
	a := NewNucleusAgent(id, Nucleus4S, 4, DefaultPhysicsParameters())
	centre := sim.Controls.SceneSize.Div(2)
	for i := range a.futureGeometry.Centres {
		a.futureGeometry.Centres[i] = centre
		a.futureGeometry.Radii[i] = 5
	}
	a.futureGeometry.UpdateOwnAABB()
	a.PublishGeometry()
	sim.AssignAgent(a)
	return nil
}
