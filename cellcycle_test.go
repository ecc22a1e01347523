package embryogen

import "testing"

func TestCellCycleAdvanceFiresHooks(t *testing.T) {
	c := NewCellCycleState()
	c.Durations = [phaseCount]float64{}
	c.Durations[PhaseG1] = 10
	c.Durations[PhaseS] = 10

	entered := []CellCyclePhase{}
	c.Hooks[PhaseG1].OnEnter = func(a *NucleusAgent) { entered = append(entered, PhaseG1) }
	c.Hooks[PhaseS].OnEnter = func(a *NucleusAgent) { entered = append(entered, PhaseS) }

	c.Advance(nil, 15)

	if len(entered) != 2 || entered[0] != PhaseG1 || entered[1] != PhaseS {
		t.Errorf("expected to enter G1 then S, got %v", entered)
	}
	if c.Phase() != PhaseS {
		t.Errorf("expected to land in S phase, got %v", c.Phase())
	}
}

func TestCellCyclePhaseString(t *testing.T) {
	if PhaseG1.String() != "G1" || PhaseCytokinesis.String() != "Cytokinesis" {
		t.Error("unexpected phase names")
	}
}

func TestDivisionModelInterpolation(t *testing.T) {
	m, err := NewDivisionModel(
		[]float64{0, 10}, []float64{6, 2}, []float64{0, 5},
		[]float64{0, 10}, []float64{2, 4}, []float64{5, 9},
	)
	if err != nil {
		t.Fatalf("NewDivisionModel: %v", err)
	}
	if r := m.MotherRadius(5); r != 4 {
		t.Errorf("expected interpolated radius 4 at midpoint, got %v", r)
	}
	if r := m.MotherRadius(100); r != 2 {
		t.Errorf("expected clamped radius 2 past range end, got %v", r)
	}
	if r := m.MotherRadius(-5); r != 6 {
		t.Errorf("expected clamped radius 6 before range start, got %v", r)
	}
}

func TestDivisionModelRejectsMismatchedLengths(t *testing.T) {
	_, err := NewDivisionModel([]float64{0, 1}, []float64{0}, []float64{0}, nil, nil, nil)
	if err == nil {
		t.Error("expected error for mismatched mother timeline lengths")
	}
}
