package embryogen

import "context"

// The remaining named scenarios from SPEC_FULL.md's registry table. Each is
// deliberately small: they exist to exercise one specific mechanism rather
// than to be a realistic dataset, matching how original_source/Scenarios/*
// keeps most demo scenarios to a couple dozen lines.

type dragAndRotateScenario struct{}

func init() { registerScenario(dragAndRotateScenario{}) }
func (dragAndRotateScenario) Name() string { return "dragAndRotate" }
func (dragAndRotateScenario) Build(ctx context.Context, sim *Simulation, args []string) error {
	id := sim.NextAgentID()
	a := NewNucleusAgent(id, Nucleus4S, 4, DefaultPhysicsParameters())
	centre := sim.Controls.SceneSize.Div(2)
	for i := range a.futureGeometry.Centres {
		a.futureGeometry.Centres[i] = centre
		a.futureGeometry.Radii[i] = 5
	}
	a.futureGeometry.UpdateOwnAABB()
	a.PublishGeometry()
	a.SetDesiredVelocity(Vec3[float64]{X: 2, Y: 1})
	sim.AssignAgent(a)
	return nil
}

type cellCycleScenario struct{}

func init() { registerScenario(cellCycleScenario{}) }
func (cellCycleScenario) Name() string { return "cellCycle" }
func (cellCycleScenario) Build(ctx context.Context, sim *Simulation, args []string) error {
	id := sim.NextAgentID()
	a := NewNucleusAgent(id, NucleusNS, 4, DefaultPhysicsParameters())
	centre := sim.Controls.SceneSize.Div(2)
	for i := range a.futureGeometry.Centres {
		a.futureGeometry.Centres[i] = centre
		a.futureGeometry.Radii[i] = 5
	}
	a.futureGeometry.UpdateOwnAABB()
	a.PublishGeometry()
	a.cellCycle = NewCellCycleState()
	sim.AssignAgent(a)
	return nil
}

type fluoTextureScenario struct{}

func init() { registerScenario(fluoTextureScenario{}) }
func (fluoTextureScenario) Name() string { return "fluoTexture" }
func (fluoTextureScenario) Build(ctx context.Context, sim *Simulation, args []string) error {
	sim.Controls.OutputPhantom = true
	return oneAgentScenario{}.Build(ctx, sim, args)
}

type synthoscopyScenario struct{}

func init() { registerScenario(synthoscopyScenario{}) }
func (synthoscopyScenario) Name() string { return "synthoscopy" }
func (synthoscopyScenario) Build(ctx context.Context, sim *Simulation, args []string) error {
	sim.Controls.EnableFinalPreview = true
	return aFewAgentsScenario{}.Build(ctx, sim, args)
}

type perlinShowCaseScenario struct{}

func init() { registerScenario(perlinShowCaseScenario{}) }
func (perlinShowCaseScenario) Name() string { return "PerlinShowCase" }
func (perlinShowCaseScenario) Build(ctx context.Context, sim *Simulation, args []string) error {
	// Procedural-texture demo; the texture synthesis itself is delegated to
	// the (out-of-core-scope) synthoscopy collaborator, so this scenario
	// only needs the same agent population fluoTexture uses.
	return fluoTextureScenario{}.Build(ctx, sim, args)
}

type tetrisScenario struct{}

func init() { registerScenario(tetrisScenario{}) }
func (tetrisScenario) Name() string { return "tetris" }
func (tetrisScenario) Build(ctx context.Context, sim *Simulation, args []string) error {
	const rows, cols = 3, 3
	spacing := 10.0
	origin := sim.Controls.SceneSize.Div(2).Sub(Vec3[float64]{X: spacing * cols / 2, Y: spacing * rows / 2})
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			id := sim.NextAgentID()
			a := NewNucleusAgent(id, Nucleus4S, 4, DefaultPhysicsParameters())
			pos := origin.Add(Vec3[float64]{X: float64(c) * spacing, Y: float64(r) * spacing})
			for s := range a.futureGeometry.Centres {
				a.futureGeometry.Centres[s] = pos
				a.futureGeometry.Radii[s] = 4
			}
			a.futureGeometry.UpdateOwnAABB()
			a.PublishGeometry()
			sim.AssignAgent(a)
		}
	}
	return nil
}

type mpiDebugScenario struct{}

func init() { registerScenario(mpiDebugScenario{}) }
func (mpiDebugScenario) Name() string { return "mpiDebug" }
func (mpiDebugScenario) Build(ctx context.Context, sim *Simulation, args []string) error {
	// Spreads agents evenly so every FrontOfficer owns at least one, to
	// exercise the AABB exchange across goroutines.
	n := len(sim.frontOfficers) * 2
	if n == 0 {
		n = 2
	}
	for i := 0; i < n; i++ {
		id := sim.NextAgentID()
		a := NewNucleusAgent(id, Nucleus4S, 4, DefaultPhysicsParameters())
		pos := Vec3[float64]{X: float64(i) * 15, Y: sim.Controls.SceneSize.Y / 2, Z: sim.Controls.SceneSize.Z / 2}
		for s := range a.futureGeometry.Centres {
			a.futureGeometry.Centres[s] = pos
			a.futureGeometry.Radii[s] = 5
		}
		a.futureGeometry.UpdateOwnAABB()
		a.PublishGeometry()
		sim.AssignAgent(a)
	}
	return nil
}

type parallelScenario struct{}

func init() { registerScenario(parallelScenario{}) }
func (parallelScenario) Name() string { return "parallel" }
func (parallelScenario) Build(ctx context.Context, sim *Simulation, args []string) error {
	return mpiDebugScenario{}.Build(ctx, sim, args)
}
