package embryogen

import "math"

// ScalarDistanceModel selects how a ScalarImg converts its voxel values into
// a distance-to-surface estimate, mirroring the three models
// original_source/Geometries/ScalarImg.hpp documents for its isosurface
// interpretation of arbitrary scalar fields (e.g. the yolk mask rendered by
// ShapeHinter).
type ScalarDistanceModel int

const (
	// ZeroIN_GradOUT treats any voxel at or above the threshold as solid
	// (distance 0 inward) and only estimates a gradient-based distance
	// outside the shape.
	ZeroIN_GradOUT ScalarDistanceModel = iota
	// GradIN_GradOUT estimates distance from the gradient both inside and
	// outside the shape.
	GradIN_GradOUT
	// GradIN_ZeroOUT is the mirror of ZeroIN_GradOUT: graded inside, flat
	// zero once outside the shape.
	GradIN_ZeroOUT
)

// ScalarImg is a voxel grid of scalar intensities with a fixed resolution and
// offset, grounded on original_source/Geometries/ScalarImg.hpp. ShapeHinter
// uses it to represent the yolk's occupied volume.
type ScalarImg struct {
	Data      []float32
	Size      Vec3[int]
	Res       Resolution
	Off       Offset
	Threshold float32
	Model     ScalarDistanceModel
	box       AABB
}

func NewScalarImg(size Vec3[int], res Resolution, off Offset, threshold float32, model ScalarDistanceModel) *ScalarImg {
	return &ScalarImg{
		Data:      make([]float32, size.X*size.Y*size.Z),
		Size:      size,
		Res:       res,
		Off:       off,
		Threshold: threshold,
		Model:     model,
		box:       NewEmptyAABB(),
	}
}

func (s *ScalarImg) Kind() ShapeKind { return ShapeScalarImg }
func (s *ScalarImg) AABB() AABB      { return s.box }

func (s *ScalarImg) UpdateOwnAABB() {
	box := NewEmptyAABB()
	box.GrowToInclude(PixelsToMicrons(Vec3[int]{}, s.Res, s.Off))
	box.GrowToInclude(PixelsToMicrons(s.Size, s.Res, s.Off))
	s.box = box
}

func (s *ScalarImg) at(p Vec3[int]) float32 {
	if p.X < 0 || p.Y < 0 || p.Z < 0 || p.X >= s.Size.X || p.Y >= s.Size.Y || p.Z >= s.Size.Z {
		return 0
	}
	return s.Data[(p.Z*s.Size.Y+p.Y)*s.Size.X+p.X]
}

// gradientAt estimates the central-difference gradient at p in value-per-voxel
// units (not scaled by Res), used as a cheap proxy for "signed distance to the isosurface" the
// same way the original approximates it from neighboring voxel differences.
func (s *ScalarImg) gradientAt(p Vec3[int]) Vec3[float64] {
	gx := float64(s.at(Vec3[int]{X: p.X + 1, Y: p.Y, Z: p.Z}) - s.at(Vec3[int]{X: p.X - 1, Y: p.Y, Z: p.Z}))
	gy := float64(s.at(Vec3[int]{X: p.X, Y: p.Y + 1, Z: p.Z}) - s.at(Vec3[int]{X: p.X, Y: p.Y - 1, Z: p.Z}))
	gz := float64(s.at(Vec3[int]{X: p.X, Y: p.Y, Z: p.Z + 1}) - s.at(Vec3[int]{X: p.X, Y: p.Y, Z: p.Z - 1}))
	return Vec3[float64]{X: gx / 2, Y: gy / 2, Z: gz / 2}
}

func init() {
	registerDistanceFunc(ShapeScalarImg, ShapeSpheres, scalarImgToSpheresDistance)
}

// scalarImgToSpheresDistance estimates, for every sphere centre of a Spheres
// agent, the distance to the ScalarImg's isosurface by sampling the voxel the
// sphere centre falls in and applying the configured ScalarDistanceModel.
// This grounds NucleusAgent's proximityPairs_toYolk collection against a
// ShapeHinter (see hinter_shape.go).
func scalarImgToSpheresDistance(localG, otherG Geometry, ignoreDistance float64, out []ProximityPair) []ProximityPair {
	local := localG.(*ScalarImg)
	other := otherG.(*Spheres)

	for oi, oc := range other.Centres {
		px := MicronsToPixels(oc, local.Res, local.Off)
		val := local.at(px)
		inside := val >= local.Threshold

		var dist float64
		switch local.Model {
		case ZeroIN_GradOUT:
			if inside {
				dist = 0
			} else {
				g := local.gradientAt(px)
				dist = math.Sqrt(g.Len2())
			}
		case GradIN_GradOUT:
			g := local.gradientAt(px)
			dist = math.Sqrt(g.Len2())
			if inside {
				dist = -dist
			}
		case GradIN_ZeroOUT:
			if !inside {
				dist = 0
			} else {
				g := local.gradientAt(px)
				dist = -math.Sqrt(g.Len2())
			}
		}
		if dist > ignoreDistance {
			continue
		}

		localCentre := PixelsToMicrons(px, local.Res, local.Off)
		out = append(out, ProximityPair{
			LocalPos:  localCentre,
			OtherPos:  oc,
			Distance:  dist,
			LocalHint: 0,
			OtherHint: oi,
		})
	}
	return out
}
