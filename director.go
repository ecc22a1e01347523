package embryogen

import (
	"context"
	"fmt"
)

// Director holds the global simulation clock, decides when a round's result
// should be exported, and merges per-FrontOfficer lineage observations into
// one CTC track table. Grounded on original_source/Director.hpp.
type Director struct {
	controls SceneControls
	tracks   *CTCTrackTable
	log      Logger

	simTime    float64
	frameIdx   int
	barrier    *Barrier
	foCount    int

	promptGate func(simTime float64) bool // user-prompt gate; nil means never pause
}

func NewDirector(controls SceneControls, foCount int, barrier *Barrier, log Logger) *Director {
	if log == nil {
		log = NewNopLogger()
	}
	return &Director{
		controls: controls,
		tracks:   NewCTCTrackTable(),
		log:      log,
		simTime:  controls.InitTime,
		barrier:  barrier,
		foCount:  foCount,
	}
}

// SetPromptGate installs a callback the Director consults before starting
// each round. Returning false tells Tick to report "not ready yet" without
// advancing the clock; the caller (Simulation.Run) is expected to retry
// later, matching the original's interactive "continue?" prompt without
// spinning inside the Director itself.
func (d *Director) SetPromptGate(gate func(simTime float64) bool) { d.promptGate = gate }

// ShouldExport reports whether the current simTime lands on an export tick,
// per SceneControls.IsExportTick.
func (d *Director) ShouldExport() bool { return d.controls.IsExportTick(d.simTime) }

// Tick advances the global clock by IncrTime, waits at the round barrier
// (so every FrontOfficer has finished its round before the clock moves),
// and returns whether the run should continue (simTime has not yet reached
// StopTime).
func (d *Director) Tick(ctx context.Context) (bool, error) {
	if d.promptGate != nil && !d.promptGate(d.simTime) {
		return true, nil
	}

	if err := d.barrier.Arrive(ctx); err != nil {
		return false, fmt.Errorf("Director.Tick(): %w", err)
	}

	d.simTime += d.controls.IncrTime
	if d.ShouldExport() {
		d.frameIdx++
	}
	return d.simTime < d.controls.StopTime, nil
}

// ObserveLineage records that agent id (with the given parent, 0 if none)
// was alive at the Director's current export frame.
func (d *Director) ObserveLineage(agentID, parentID int) {
	d.tracks.Observe(agentID, d.frameIdx, parentID)
}

func (d *Director) SimTime() float64 { return d.simTime }
func (d *Director) FrameIndex() int  { return d.frameIdx }
func (d *Director) Tracks() *CTCTrackTable { return d.tracks }

// ReduceRenderedFrames MAX-reduces the per-FrontOfficer counts of frames
// already flushed to disk so every participant agrees on the next frame
// index to use, grounded on the Director's MAX-reduction over FrontOfficers.
func (d *Director) ReduceRenderedFrames(counts []int) int {
	return MaxReduceFrameCounts(counts)
}
