package embryogen

// CellCyclePhase enumerates the division cycle stages, replacing the
// original's cascade of sequential if (localTime > threshold) fallthroughs
// (original_source/Agents/util/CellCycle.hpp) with an explicit state that a
// table-driven machine advances -- the redesign SPEC_FULL.md §9 calls for.
type CellCyclePhase int

const (
	PhaseG1 CellCyclePhase = iota
	PhaseS
	PhaseG2
	PhaseProphase
	PhaseMetaphase
	PhaseAnaphase
	PhaseTelophase
	PhaseCytokinesis
	phaseCount
)

func (p CellCyclePhase) String() string {
	names := [...]string{"G1", "S", "G2", "Prophase", "Metaphase", "Anaphase", "Telophase", "Cytokinesis"}
	if int(p) < len(names) {
		return names[p]
	}
	return "Unknown"
}

// PhaseHooks bundles the three lifecycle callbacks a CellCycleState invokes
// for a phase: OnEnter fires once on transition in, OnTick fires every round
// while the phase is active with progress in [0,1], OnExit fires once when
// the phase's duration elapses.
type PhaseHooks struct {
	OnEnter func(a *NucleusAgent)
	OnTick  func(a *NucleusAgent, progress float64)
	OnExit  func(a *NucleusAgent)
}

// CellCycleState drives one agent's progression through CellCyclePhase in
// order, each phase held for its configured Duration (minutes).
type CellCycleState struct {
	Durations [phaseCount]float64
	Hooks     [phaseCount]PhaseHooks

	phase        CellCyclePhase
	elapsed      float64
	entered      bool
}

// NewCellCycleState builds a cycle with the durations TRAgen's worked
// examples use (minutes); scenarios may override individual entries.
func NewCellCycleState() *CellCycleState {
	c := &CellCycleState{}
	c.Durations = [phaseCount]float64{
		PhaseG1:          11 * 60,
		PhaseS:           8 * 60,
		PhaseG2:          4 * 60,
		PhaseProphase:    20,
		PhaseMetaphase:   20,
		PhaseAnaphase:    10,
		PhaseTelophase:   10,
		PhaseCytokinesis: 20,
	}
	return c
}

func (c *CellCycleState) Phase() CellCyclePhase { return c.phase }

// Advance moves the cycle forward by dt minutes, firing OnEnter/OnTick/OnExit
// for the agent a as phases are entered, progressed through and left. It may
// cross more than one phase boundary within a single call if dt is large,
// matching the original's ability to jump straight to division when a
// scenario fast-forwards time.
func (c *CellCycleState) Advance(a *NucleusAgent, dt float64) {
	if !c.entered {
		c.fireEnter(a)
		c.entered = true
	}
	remaining := dt
	for remaining > 0 {
		dur := c.Durations[c.phase]
		if dur <= 0 {
			c.transition(a)
			continue
		}
		step := remaining
		if c.elapsed+step > dur {
			step = dur - c.elapsed
		}
		c.elapsed += step
		remaining -= step

		progress := c.elapsed / dur
		if h := c.Hooks[c.phase].OnTick; h != nil {
			h(a, progress)
		}
		if c.elapsed >= dur {
			c.transition(a)
		}
	}
}

func (c *CellCycleState) transition(a *NucleusAgent) {
	c.fireExit(a)
	if c.phase+1 < phaseCount {
		c.phase++
	} else {
		c.phase = PhaseG1
	}
	c.elapsed = 0
	c.fireEnter(a)
}

func (c *CellCycleState) fireEnter(a *NucleusAgent) {
	if h := c.Hooks[c.phase].OnEnter; h != nil {
		h(a)
	}
}

func (c *CellCycleState) fireExit(a *NucleusAgent) {
	if h := c.Hooks[c.phase].OnExit; h != nil {
		h(a)
	}
}

// IsDividing reports whether the agent has reached the point in the cycle
// where FrontOfficer should call CloseMotherStartDaughters.
func (c *CellCycleState) IsDividing() bool {
	return c.phase == PhaseCytokinesis && c.elapsed >= c.Durations[PhaseCytokinesis]
}

// CloseMotherStartDaughters retires the mother agent and constructs two
// daughters using the DivisionModel timeline, grounded on
// original_source/Agents/NucleusAgent.cpp's closeMotherStartDaughters plus
// util/DivisionModels.hpp's radius/distance interpolation.
func CloseMotherStartDaughters(mother *NucleusAgent, model *DivisionModel, daughterIDs [2]int, now float64) [2]*NucleusAgent {
	n := len(mother.futureGeometry.Centres)
	daughters := [2]*NucleusAgent{}
	for d := 0; d < 2; d++ {
		child := NewNucleusAgent(daughterIDs[d], mother.variant, n, mother.params)
		child.currTime = now
		for i := range child.futureGeometry.Centres {
			offset := Vec3[float64]{X: float64(d)*2 - 1}.Mul(model.DaughterDistance(0))
			child.futureGeometry.Centres[i] = mother.futureGeometry.Centres[i].Add(offset)
			child.futureGeometry.Radii[i] = model.DaughterRadius(0)
		}
		child.futureGeometry.UpdateOwnAABB()
		child.PublishGeometry()
		daughters[d] = child
	}
	mother.RequestClose([]*NucleusAgent{daughters[0], daughters[1]})
	return daughters
}
