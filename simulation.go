package embryogen

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"
)

// Simulation wires together a Director and a fixed number of FrontOfficers
// running as goroutines, and drives them through rounds until the Director's
// clock reaches SceneControls.StopTime. This is the top-level object
// cmd/embryogen/main.go constructs per scenario.
type Simulation struct {
	Controls SceneControls
	Log      Logger
	Display  DisplayUnit

	// RunID identifies this run the way original_source/config.hpp's
	// ds_datasetUUID tags a dataset upload; a FrameSink backed by an actual
	// datastore would key frames under it.
	RunID uuid.UUID

	director      *Director
	frontOfficers []*FrontOfficer
	sink          FrameSink

	nextAgentID int
}

// NewSimulation creates a Simulation with foCount FrontOfficers sharing one
// AABBExchange and round Barrier, plus a Director barrier-synchronized with
// them (participants = foCount FrontOfficers + the Director).
func NewSimulation(controls SceneControls, foCount int, log Logger, display DisplayUnit, sink FrameSink) *Simulation {
	if log == nil {
		log = NewNopLogger()
	}
	exchange := NewAABBExchange(foCount)
	roundBarrier := NewBarrier(foCount + 1)

	sim := &Simulation{
		Controls: controls,
		Log:      log,
		Display:  display,
		sink:     sink,
		RunID:    uuid.New(),
	}
	sim.director = NewDirector(controls, foCount, roundBarrier, log)
	for i := 0; i < foCount; i++ {
		sim.frontOfficers = append(sim.frontOfficers, NewFrontOfficer(i, exchange, roundBarrier, log, display))
	}
	return sim
}

// NextAgentID hands out a fresh, globally unique agent id -- scenarios and
// CellCycle division both allocate ids through this single counter so two
// FrontOfficers never collide.
func (s *Simulation) NextAgentID() int {
	id := s.nextAgentID
	s.nextAgentID++
	return id
}

// AssignAgent adds an agent to the FrontOfficer chosen by round-robin over
// its id, a simple static partitioning of the agents across FrontOfficers.
func (s *Simulation) AssignAgent(a AbstractAgent) {
	fo := s.frontOfficers[a.ID()%len(s.frontOfficers)]
	fo.AddAgent(a)
}

func (s *Simulation) Director() *Director { return s.director }

// Run drives rounds until the Director reports the stop time has been
// reached, recovering an InvariantError panic raised on the calling goroutine
// into a returned error, per SPEC_FULL.md §7. Each FrontOfficer's RunRound
// runs on its own goroutine, and a panic there is not recovered by Run.
func (s *Simulation) Run(ctx context.Context) (err error) {
	defer func() {
		if r := recover(); r != nil {
			if ie, ok := r.(*InvariantError); ok {
				err = ie
				return
			}
			panic(r)
		}
	}()

	for {
		futureTime := s.director.SimTime() + s.Controls.IncrTime

		var wg sync.WaitGroup
		errs := make([]error, len(s.frontOfficers))
		for i, fo := range s.frontOfficers {
			wg.Add(1)
			go func(i int, fo *FrontOfficer) {
				defer wg.Done()
				errs[i] = fo.RunRound(ctx, futureTime)
			}(i, fo)
		}
		// Every RunRound ends at the round barrier, which the Director joins
		// inside Tick, so Tick runs before waiting for the FrontOfficers.
		cont, tickErr := s.director.Tick(ctx)
		wg.Wait()
		for _, e := range errs {
			if e != nil {
				return fmt.Errorf("Simulation.Run(): %w", e)
			}
		}
		if tickErr != nil {
			return fmt.Errorf("Simulation.Run(): %w", tickErr)
		}
		if s.director.ShouldExport() {
			if s.Display != nil {
				NewSceneAxesGizmo(s.Controls.SceneOffset, 10).Draw(s.Display, FirstIdForSceneDebugObjects())
				s.Display.Tick(s.director.FrameIndex())
			}
			if s.sink != nil {
				if err := s.exportFrame(); err != nil {
					s.Log.Warnf("Simulation.Run(): frame export failed, continuing: %v", err)
				}
			}
		}
		if !cont {
			return nil
		}
	}
}

// exportFrame renders every NucleusAgent's current geometry into an instance
// mask and hands the buffer to the configured FrameSink once per enabled
// output kind (mask, phantom, optics), matching SPEC_FULL.md §6's frame-sink
// boundary. The same buffer is passed for every kind; only its Mask is filled.
func (s *Simulation) exportFrame() error {
	img := NewImage3D(s.Controls.ImageSizePixels())
	for _, fo := range s.frontOfficers {
		for _, a := range fo.Agents() {
			na, ok := a.(*NucleusAgent)
			if !ok {
				continue
			}
			for i, c := range na.geometryAlias.Centres {
				img.RenderSphereMask(c, na.geometryAlias.Radii[i], na.id, s.Controls.ImgRes, s.Controls.SceneOffset)
			}
		}
	}

	frame := s.director.FrameIndex()
	if s.Controls.OutputMask {
		if err := s.sink.WriteFrame(ImageMask, frame, img); err != nil {
			return err
		}
	}
	if s.Controls.OutputPhantom {
		if err := s.sink.WriteFrame(ImagePhantom, frame, img); err != nil {
			return err
		}
	}
	if s.Controls.OutputOptics {
		if err := s.sink.WriteFrame(ImageOptics, frame, img); err != nil {
			return err
		}
	}
	return nil
}
