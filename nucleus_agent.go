package embryogen

import (
	"context"
	"math"
)

// NucleusVariant distinguishes the two concrete force recipes a
// NucleusAgent can run, mirroring original_source's NucleusAgent (NS, with a
// shape-restoring spring back to a reference geometry) versus
// Nucleus4SAgent (4S, no shape spring -- four freely sliding spheres).
type NucleusVariant int

const (
	NucleusNS NucleusVariant = iota
	Nucleus4S
)

// NucleusAgent is the mechanically active agent kind: a handful of spheres
// driven by a desired-velocity target, repelled and slid past its neighbors,
// and pulled toward the yolk. Grounded field-for-field on
// original_source/Agents/NucleusAgent.{hpp,cpp}.
type NucleusAgent struct {
	id       int
	variant  NucleusVariant
	shadow   *ShadowAgent
	params   PhysicsParameters

	// geometryAlias is the padded, externally-visible geometry (radii grown
	// by CytoplasmWidth); futureGeometry is the working copy integrated
	// against each round and copied into geometryAlias by PublishGeometry.
	geometryAlias  *Spheres
	futureGeometry *Spheres
	referenceGeometry *Spheres // NS variant only: target shape for the s2s spring

	// accels and velocities are carved from one shared backing slice, as in
	// the original's single contiguous allocation for both arrays.
	backing    []Vec3[float64]
	accels     []Vec3[float64]
	velocities []Vec3[float64]
	weights    []float64

	forces []ForceVector

	velocityCurrentlyDesired Vec3[float64]
	velocityPersistenceTime  float64

	cytoplasmWidth float64
	ignoreDistance float64

	currTime float64
	incrTime float64

	proximityToNuclei []ProximityPair
	proximityToYolk   []ProximityPair

	cellCycle *CellCycleState

	status       AgentStatus
	newDaughters []*NucleusAgent
}

// NewNucleusAgent builds an agent with n spheres, all forces zeroed and
// velocityPersistenceTime defaulted to 2.0 minutes as in the original.
func NewNucleusAgent(id int, variant NucleusVariant, n int, params PhysicsParameters) *NucleusAgent {
	backing := make([]Vec3[float64], 2*n)
	na := &NucleusAgent{
		id:                      id,
		variant:                 variant,
		params:                  params,
		geometryAlias:           NewSpheres(n),
		futureGeometry:          NewSpheres(n),
		backing:                 backing,
		accels:                  backing[:n],
		velocities:              backing[n:],
		weights:                 make([]float64, n),
		forces:                  make([]ForceVector, 0, 200), // 10 s2s + 4*2 drive&friction + 10 neighbors*4*4 outer
		velocityPersistenceTime: 2.0,
		cytoplasmWidth:          2.0,
		ignoreDistance:          10.0,
	}
	for i := range na.weights {
		na.weights[i] = 1.0
	}
	if variant == NucleusNS {
		na.referenceGeometry = NewSpheres(n)
	}
	na.shadow = NewShadowAgent(id, "NucleusAgent", nucleusAgentTypeID, 0, na.geometryAlias)
	return na
}

// nucleusAgentTypeID stands in for original_source's typeid()-derived hash;
// a fixed constant is sufficient since the type set is closed and known at
// compile time (SPEC_FULL.md §9).
const nucleusAgentTypeID uint64 = 0xA6E57C1E

func (a *NucleusAgent) ID() int               { return a.id }
func (a *NucleusAgent) Shadow() *ShadowAgent  { return a.shadow }
func (a *NucleusAgent) Status() AgentStatus   { return a.status }

// AdvanceAndBuildIntForces moves currTime toward futureGlobalTime and builds
// the drive force, the s2s shape-restoring force (NS variant only), exactly
// as NucleusAgent::advanceAndBuildIntForces.
func (a *NucleusAgent) AdvanceAndBuildIntForces(ctx context.Context, futureGlobalTime float64) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	for i, c := range a.futureGeometry.Centres {
		driveDir := a.velocityCurrentlyDesired
		f := driveDir.Mul(a.weights[i] / a.velocityPersistenceTime)
		a.forces = append(a.forces, NewForceVector(ForceDrive, f, i))
		_ = c
	}

	if a.variant == NucleusNS && a.referenceGeometry != nil {
		for i, c := range a.futureGeometry.Centres {
			ref := a.referenceGeometry.Centres[i]
			delta := ref.Sub(c)
			f := delta.Mul(a.params.ShapeStiffness * a.weights[i])
			a.forces = append(a.forces, NewForceVector(ForceS2S, f, i))
		}
	}

	if a.incrTime == 0 {
		a.incrTime = futureGlobalTime - a.currTime
	}
	a.currTime += a.incrTime

	if a.cellCycle != nil {
		a.cellCycle.Advance(a, a.incrTime)
	}
	return nil
}

// AdjustGeometryByIntForces integrates the forces collected so far into
// accels/velocities/futureGeometry.Centres, then clears the force buffer --
// NucleusAgent::adjustGeometryByForces, first half.
func (a *NucleusAgent) AdjustGeometryByIntForces() error {
	return a.adjustGeometryByForces()
}

// AdjustGeometryByExtForces performs the identical integration step for the
// forces collected during CollectExtForces -- the original calls the same
// adjustGeometryByForces method twice per round, once per force-collection
// phase, which is exactly the shape SPEC_FULL.md's five-phase round assumes.
func (a *NucleusAgent) AdjustGeometryByExtForces() error {
	return a.adjustGeometryByForces()
}

func (a *NucleusAgent) adjustGeometryByForces() error {
	for i := range a.accels {
		a.accels[i] = Vec3[float64]{}
	}
	for _, f := range a.forces {
		if f.Hint < 0 || f.Hint >= len(a.accels) {
			continue
		}
		a.accels[f.Hint] = a.accels[f.Hint].Add(f.Vector)
	}
	for i := range a.accels {
		if a.weights[i] != 0 {
			a.accels[i] = a.accels[i].Div(a.weights[i])
		}
		a.velocities[i] = a.velocities[i].Add(a.accels[i].Mul(a.incrTime))
		a.futureGeometry.Centres[i] = a.futureGeometry.Centres[i].Add(a.velocities[i].Mul(a.incrTime))
	}
	a.futureGeometry.UpdateOwnAABB()
	a.forces = a.forces[:0]
	return nil
}

// CollectExtForces queries nearby agents through the supplied NeighborLookup,
// classifies the resulting proximity pairs by neighbor type, and emits the
// friction, repulsive, body, slide and hinter forces -- the direct port of
// NucleusAgent::collectExtForces.
func (a *NucleusAgent) CollectExtForces(ctx context.Context, nearby NeighborLookup) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	for i, v := range a.velocities {
		f := v.Mul(-a.weights[i] / a.velocityPersistenceTime)
		a.forces = append(a.forces, NewForceVector(ForceFriction, f, i))
	}

	a.proximityToNuclei = a.proximityToNuclei[:0]
	a.proximityToYolk = a.proximityToYolk[:0]

	for _, named := range nearby.NearbyAABBs(a.shadow, a.ignoreDistance) {
		if named.AgentID == a.id {
			continue
		}
		other, ok := nearby.NearbyAgent(named.AgentID)
		if !ok {
			continue
		}
		switch other.TypeName {
		case "NucleusAgent":
			before := len(a.proximityToNuclei)
			a.proximityToNuclei = GetDistance(a.futureGeometry, other.Geometry, a.ignoreDistance, a.proximityToNuclei)
			stampCallerHint(a.proximityToNuclei[before:], other)
		case "ShapeHinter":
			before := len(a.proximityToYolk)
			a.proximityToYolk = GetDistance(other.Geometry, a.futureGeometry, a.ignoreDistance, a.proximityToYolk)
			stampCallerHint(a.proximityToYolk[before:], other)
		}
	}

	a.collectNucleusForces(nearby)
	a.collectYolkForces()
	return nil
}

func (a *NucleusAgent) collectNucleusForces(nearby NeighborLookup) {
	p := a.params
	for _, pp := range a.proximityToNuclei {
		if pp.Distance > 0 {
			if pp.Distance >= 3.0 {
				continue
			}
			dir := pp.LocalPos.Sub(pp.OtherPos).UnitOrZero()
			mag := p.OverlapLevel * math.Exp(-pp.Distance/p.RepulsionScale)
			a.forces = append(a.forces, NewForceVector(ForceRepulsive, dir.Mul(mag), pp.LocalHint))
			continue
		}

		dir := pp.OtherPos.Sub(pp.LocalPos).UnitOrZero()
		fScale := p.OverlapLevel
		penetration := -pp.Distance
		if penetration > p.OverlapDepth {
			fScale += p.OverlapScale * (penetration - p.OverlapDepth)
		}
		bodyForce := dir.Mul(fScale)
		a.forces = append(a.forces, NewForceVector(ForceBody, bodyForce, pp.LocalHint))

		otherVel, _ := nearby.SphereVelocity(pp.CallerHintID(), pp.OtherHint)
		g := otherVel.Sub(a.velocities[pp.LocalHint])
		fUnit := bodyForce.UnitOrZero()
		parallel := fUnit.Mul(fUnit.Dot(g))
		g = g.Sub(parallel)
		slide := g.Mul(p.SlideScale * a.weights[pp.LocalHint] / a.velocityPersistenceTime)
		a.forces = append(a.forces, NewForceVector(ForceSlide, slide, pp.LocalHint))
	}
}

func (a *NucleusAgent) collectYolkForces() {
	p := a.params
	for _, pp := range a.proximityToYolk {
		if pp.LocalHint != 0 {
			continue
		}
		dir := pp.OtherPos.Sub(pp.LocalPos).UnitOrZero()
		mag := 2 * p.OverlapLevel * math.Min(pp.Distance*pp.Distance*p.HinterScale, 1.0)
		f := dir.Mul(mag)
		for i := range a.futureGeometry.Centres {
			a.forces = append(a.forces, NewForceVector(ForceHinter, f, i))
		}
	}
}

// VelocityOfSphere returns the live velocity of sphere i, grounded on
// original_source's NucleusAgent::getVelocityOfSphere; used by a neighbour
// querying this agent's spheres for the slide-force's velocity-difference
// term.
func (a *NucleusAgent) VelocityOfSphere(i int) (Vec3[float64], bool) {
	if i < 0 || i >= len(a.velocities) {
		return Vec3[float64]{}, false
	}
	return a.velocities[i], true
}

// CallerHintID exposes the originating foreign agent id stashed on a
// ProximityPair's CallerHint, if any.
func (p ProximityPair) CallerHintID() int {
	if p.CallerHint == nil {
		return -1
	}
	return p.CallerHint.ID
}

// stampCallerHint records which foreign agent a run of freshly appended
// ProximityPairs came from, so later force recipes (e.g. the slide force's
// v_self-v_other term) can resolve the owning agent back through
// NeighborLookup.
func stampCallerHint(pairs []ProximityPair, other *ShadowAgent) {
	for i := range pairs {
		pairs[i].CallerHint = other
	}
}

// PublishGeometry snapshots futureGeometry (radii padded by cytoplasmWidth)
// into geometryAlias and bumps the shadow's version -- NucleusAgent's
// publishGeometry.
func (a *NucleusAgent) PublishGeometry() {
	a.geometryAlias.CopyFrom(a.futureGeometry, a.cytoplasmWidth)
	a.shadow.Republish(a.geometryAlias)
}

// SetDesiredVelocity updates the drive target a scenario or CellCycle hook
// wants the agent to pursue.
func (a *NucleusAgent) SetDesiredVelocity(v Vec3[float64]) { a.velocityCurrentlyDesired = v }

// RequestClose marks the agent for retirement at the end of the round,
// optionally attaching daughter agents a division hook already constructed
// (see cellcycle.go's closeMotherStartDaughters).
func (a *NucleusAgent) RequestClose(daughters []*NucleusAgent) {
	a.status = AgentShouldClose
	a.newDaughters = daughters
}

func (a *NucleusAgent) Daughters() []*NucleusAgent { return a.newDaughters }
