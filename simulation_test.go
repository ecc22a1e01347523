package embryogen

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

type recordingFrameSink struct {
	frames []ImageKind
}

func (r *recordingFrameSink) WriteFrame(kind ImageKind, frameIdx int, img *Image3D) error {
	r.frames = append(r.frames, kind)
	return nil
}

func TestSimulationRunOneAgentScenario(t *testing.T) {
	controls := DefaultSceneControls()
	controls.StopTime = controls.IncrTime * 3
	controls.ExpoTime = controls.IncrTime

	sink := &recordingFrameSink{}
	sim := NewSimulation(controls, 2, NewNopLogger(), nil, sink)
	require.NotEqual(t, sim.RunID.String(), "00000000-0000-0000-0000-000000000000")

	scenario, ok := LookupScenario("oneAgent")
	require.True(t, ok, "oneAgent scenario not registered")

	ctx := context.Background()
	require.NoError(t, scenario.Build(ctx, sim, nil))
	require.NoError(t, sim.Run(ctx))
	require.NotEmpty(t, sink.frames, "expected at least one exported frame")
}

func TestSimulationRunAFewAgentsScenario(t *testing.T) {
	controls := DefaultSceneControls()
	controls.StopTime = controls.IncrTime * 2

	sim := NewSimulation(controls, 2, NewNopLogger(), nil, nil)
	scenario, ok := LookupScenario("aFewAgents")
	if !ok {
		t.Fatal("aFewAgents scenario not registered")
	}
	ctx := context.Background()
	if err := scenario.Build(ctx, sim, nil); err != nil {
		t.Fatalf("Build: %v", err)
	}
	if err := sim.Run(ctx); err != nil {
		t.Fatalf("Run: %v", err)
	}
}

func TestScenarioRegistryListsKnownNames(t *testing.T) {
	names := map[string]bool{}
	for _, n := range ScenarioNames() {
		names[n] = true
	}
	for _, want := range []string{"oneAgent", "pseudoDivision", "regularDrosophila", "aFewAgents", "mpiDebug", "dragAndRotate", "tetris"} {
		if !names[want] {
			t.Errorf("expected scenario %q to be registered", want)
		}
	}
}
