package embryogen

import "math"

// Spheres is a rigid collection of balls sharing one centre/radius buffer
// pair, grounded on original_source/Geometries/Spheres.hpp. NucleusAgent
// geometry and futureGeometry are both *Spheres.
type Spheres struct {
	Centres []Vec3[float64]
	Radii   []float64
	box     AABB
}

func NewSpheres(n int) *Spheres {
	return &Spheres{
		Centres: make([]Vec3[float64], n),
		Radii:   make([]float64, n),
		box:     NewEmptyAABB(),
	}
}

func (s *Spheres) Kind() ShapeKind { return ShapeSpheres }
func (s *Spheres) AABB() AABB      { return s.box }

func (s *Spheres) UpdateOwnAABB() {
	box := NewEmptyAABB()
	for i, c := range s.Centres {
		r := s.Radii[i]
		box.GrowToInclude(c.Sub(Vec3[float64]{X: r, Y: r, Z: r}))
		box.GrowToInclude(c.Add(Vec3[float64]{X: r, Y: r, Z: r}))
	}
	s.box = box
}

// CopyFrom deep-copies another Spheres' centres/radii into s, used by
// NucleusAgent.publishGeometry to snapshot futureGeometry into the agent's
// externally-visible geometryAlias.
func (s *Spheres) CopyFrom(o *Spheres, radiusPad float64) {
	if len(s.Centres) != len(o.Centres) {
		s.Centres = make([]Vec3[float64], len(o.Centres))
		s.Radii = make([]float64, len(o.Radii))
	}
	copy(s.Centres, o.Centres)
	for i, r := range o.Radii {
		s.Radii[i] = r + radiusPad
	}
	s.UpdateOwnAABB()
}

func init() {
	registerDistanceFunc(ShapeSpheres, ShapeSpheres, spheresToSpheresDistance)
}

// spheresToSpheresDistance is the narrow-phase sphere/sphere test used by
// NucleusAgent.collectExtForces to build proximityPairs_toNuclei. Per spec
// §4.1 Spheres×Spheres: for each non-zero-radius sphere i in local, scan
// every non-zero-radius sphere j in other and keep only the j* minimising
// surface distance d, emitting exactly one pair per i whose positions are
// the projected surface contact points (not the centres).
func spheresToSpheresDistance(localG, otherG Geometry, ignoreDistance float64, out []ProximityPair) []ProximityPair {
	local := localG.(*Spheres)
	other := otherG.(*Spheres)

	for li, lc := range local.Centres {
		lr := local.Radii[li]
		if lr == 0 {
			continue
		}

		bestOI := -1
		bestDist := 0.0
		var bestOC Vec3[float64]
		var bestOR float64

		for oi, oc := range other.Centres {
			or := other.Radii[oi]
			if or == 0 {
				continue
			}
			delta := oc.Sub(lc)
			centreDist := math.Sqrt(delta.Len2())
			surfaceDist := centreDist - lr - or
			if bestOI == -1 || surfaceDist < bestDist {
				bestOI = oi
				bestDist = surfaceDist
				bestOC = oc
				bestOR = or
			}
		}

		if bestOI == -1 || bestDist > ignoreDistance {
			continue
		}

		h := bestOC.Sub(lc).UnitOrZero()
		out = append(out, ProximityPair{
			LocalPos:  lc.Add(h.Mul(lr)),
			OtherPos:  bestOC.Sub(h.Mul(bestOR)),
			Distance:  bestDist,
			LocalHint: li,
			OtherHint: bestOI,
		})
	}
	return out
}
