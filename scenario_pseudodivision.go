package embryogen

import "context"

// pseudoDivisionScenario places one nucleus already at the end of its cell
// cycle and calls CloseMotherStartDaughters while building, so the mother
// closes at the end of the very first round; grounded on original_source/Scenarios/pseudoDivision.hpp. Per
// SPEC_FULL.md §10's pinned Open Question decision, the daughters appear
// published but do not run their own five-phase round until the following
// tick.
type pseudoDivisionScenario struct{}

func init() { registerScenario(pseudoDivisionScenario{}) }

func (pseudoDivisionScenario) Name() string { return "pseudoDivision" }

func (pseudoDivisionScenario) Build(ctx context.Context, sim *Simulation, args []string) error {
	id := sim.NextAgentID()
	mother := NewNucleusAgent(id, Nucleus4S, 4, DefaultPhysicsParameters())
	centre := sim.Controls.SceneSize.Div(2)
	for i := range mother.futureGeometry.Centres {
		mother.futureGeometry.Centres[i] = centre
		mother.futureGeometry.Radii[i] = 6
	}
	mother.futureGeometry.UpdateOwnAABB()
	mother.PublishGeometry()
	mother.cellCycle = NewCellCycleState()
	mother.cellCycle.phase = PhaseCytokinesis
	mother.cellCycle.elapsed = mother.cellCycle.Durations[PhaseCytokinesis]

	model, err := NewDivisionModel(
		[]float64{0, 10}, []float64{6, 3}, []float64{0, 4},
		[]float64{0, 10}, []float64{3, 5}, []float64{4, 8},
	)
	if err != nil {
		return err
	}

	daughterIDs := [2]int{sim.NextAgentID(), sim.NextAgentID()}
	CloseMotherStartDaughters(mother, model, daughterIDs, sim.Director().SimTime())

	// Only the mother is registered here: FrontOfficer.closeAgent enrolls her
	// daughters automatically once her Status() reports AgentShouldClose at
	// the end of her first round, which is also what keeps the daughters out
	// of that very round's five-phase pass (SPEC_FULL.md §10).
	sim.AssignAgent(mother)
	return nil
}
