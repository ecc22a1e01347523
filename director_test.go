package embryogen

import (
	"context"
	"testing"
)

func TestDirectorTickAdvancesAndStops(t *testing.T) {
	controls := DefaultSceneControls()
	controls.InitTime = 0
	controls.IncrTime = 1
	controls.StopTime = 2

	barrier := NewBarrier(1)
	d := NewDirector(controls, 0, barrier, NewNopLogger())

	ctx := context.Background()
	cont, err := d.Tick(ctx)
	if err != nil || !cont {
		t.Fatalf("expected first tick to continue, got cont=%v err=%v", cont, err)
	}
	cont, err = d.Tick(ctx)
	if err != nil || cont {
		t.Fatalf("expected second tick to stop, got cont=%v err=%v", cont, err)
	}
}

func TestDirectorPromptGateBlocksTick(t *testing.T) {
	controls := DefaultSceneControls()
	barrier := NewBarrier(1)
	d := NewDirector(controls, 0, barrier, NewNopLogger())

	gateOpen := false
	d.SetPromptGate(func(simTime float64) bool { return gateOpen })

	before := d.SimTime()
	cont, err := d.Tick(context.Background())
	if err != nil || !cont {
		t.Fatalf("expected gated tick to report continue without advancing, got cont=%v err=%v", cont, err)
	}
	if d.SimTime() != before {
		t.Errorf("expected SimTime unchanged while gate closed, got %v", d.SimTime())
	}
}

func TestCTCTrackTableObserveExtendsRange(t *testing.T) {
	d := NewDirector(DefaultSceneControls(), 0, NewBarrier(1), NewNopLogger())
	d.ObserveLineage(7, 0)
	d.frameIdx = 3
	d.ObserveLineage(7, 0)

	track := d.Tracks()
	if trk, ok := track.tracks[7]; !ok || trk.ToFrame != 3 {
		t.Errorf("expected track 7 to extend to frame 3, got %+v", trk)
	}
}
