package embryogen

import "math"

// VectorFieldPolicy selects how a VectorImg resolves several trajectory
// vectors that land in the same voxel, matching the four aggregation
// policies original_source/Geometries/VectorImg.hpp offers for building a
// flow field out of overlapping TrackRecord trajectories.
type VectorFieldPolicy int

const (
	PolicyMinVec VectorFieldPolicy = iota
	PolicyMaxVec
	PolicyAvgVec
	PolicyAllVec
)

// VectorImg is a voxel grid of 3D vectors, grounded on
// original_source/Geometries/VectorImg.hpp. TrajectoriesHinter renders a
// TrackRecord into one to advertise expected local motion to nearby agents.
type VectorImg struct {
	Data   []Vec3[float64]
	Counts []int // samples deposited per voxel: divides the sum under PolicyAvgVec, marks an empty voxel under PolicyMinVec/PolicyMaxVec
	Size   Vec3[int]
	Res    Resolution
	Off    Offset
	Policy VectorFieldPolicy
	box    AABB
}

func NewVectorImg(size Vec3[int], res Resolution, off Offset, policy VectorFieldPolicy) *VectorImg {
	return &VectorImg{
		Data:   make([]Vec3[float64], size.X*size.Y*size.Z),
		Counts: make([]int, size.X*size.Y*size.Z),
		Size:   size,
		Res:    res,
		Off:    off,
		Policy: policy,
		box:    NewEmptyAABB(),
	}
}

func (v *VectorImg) Kind() ShapeKind { return ShapeVectorImg }
func (v *VectorImg) AABB() AABB      { return v.box }

func (v *VectorImg) UpdateOwnAABB() {
	box := NewEmptyAABB()
	box.GrowToInclude(PixelsToMicrons(Vec3[int]{}, v.Res, v.Off))
	box.GrowToInclude(PixelsToMicrons(v.Size, v.Res, v.Off))
	v.box = box
}

func (v *VectorImg) index(p Vec3[int]) (int, bool) {
	if p.X < 0 || p.Y < 0 || p.Z < 0 || p.X >= v.Size.X || p.Y >= v.Size.Y || p.Z >= v.Size.Z {
		return 0, false
	}
	return (p.Z*v.Size.Y+p.Y)*v.Size.X + p.X, true
}

// Deposit merges one new vector sample into the voxel p falls in, combining
// it with whatever is already there according to Policy.
func (v *VectorImg) Deposit(p Vec3[int], vec Vec3[float64]) {
	idx, ok := v.index(p)
	if !ok {
		return
	}
	switch v.Policy {
	case PolicyMinVec:
		if v.Counts[idx] == 0 || vec.Len2() < v.Data[idx].Len2() {
			v.Data[idx] = vec
		}
	case PolicyMaxVec:
		if v.Counts[idx] == 0 || vec.Len2() > v.Data[idx].Len2() {
			v.Data[idx] = vec
		}
	case PolicyAvgVec, PolicyAllVec:
		v.Data[idx] = v.Data[idx].Add(vec)
	}
	v.Counts[idx]++
}

func (v *VectorImg) at(p Vec3[int]) Vec3[float64] {
	idx, ok := v.index(p)
	if !ok {
		return Vec3[float64]{}
	}
	if v.Policy == PolicyAvgVec && v.Counts[idx] > 0 {
		return v.Data[idx].Div(float64(v.Counts[idx]))
	}
	return v.Data[idx]
}

func init() {
	registerDistanceFunc(ShapeVectorImg, ShapeSpheres, vectorImgToSpheresDistance)
}

// vectorImgToSpheresDistance reports, for every sphere centre, the local flow
// vector sampled from the field as a ProximityPair whose OtherPos encodes the
// suggested travel direction rather than a second shape's surface point.
// NucleusAgent.CollectExtForces does not query TrajectoriesHinter neighbours,
// so these pairs are not turned into a force.
func vectorImgToSpheresDistance(localG, otherG Geometry, ignoreDistance float64, out []ProximityPair) []ProximityPair {
	local := localG.(*VectorImg)
	other := otherG.(*Spheres)

	for oi, oc := range other.Centres {
		px := MicronsToPixels(oc, local.Res, local.Off)
		vec := local.at(px)
		if vec.Len2() == 0 {
			continue
		}
		dist := math.Sqrt(vec.Len2())
		if dist > ignoreDistance {
			continue
		}
		out = append(out, ProximityPair{
			LocalPos:  oc,
			OtherPos:  oc.Add(vec),
			Distance:  dist,
			LocalHint: 0,
			OtherHint: oi,
		})
	}
	return out
}
