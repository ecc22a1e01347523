package embryogen

import "math"

// Number is the set of scalar types Vec3 is instantiated over: the original
// C++ Vector3d<T> template is used with float precision, pixel counts (size_t)
// and signed pixel offsets (int). Go generics require an explicit union.
type Number interface {
	~float32 | ~float64 | ~int | ~int32 | ~int64
}

// Vec3 is a generic 3D vector, named and shaped after mgl32.Vec3 so the rest
// of the codebase reads like ordinary mathgl-flavored Go even though the
// simulation core needs more than one scalar type.
type Vec3[T Number] struct {
	X, Y, Z T
}

func NewVec3[T Number](x, y, z T) Vec3[T] { return Vec3[T]{x, y, z} }

func (v Vec3[T]) Add(o Vec3[T]) Vec3[T] { return Vec3[T]{v.X + o.X, v.Y + o.Y, v.Z + o.Z} }
func (v Vec3[T]) Sub(o Vec3[T]) Vec3[T] { return Vec3[T]{v.X - o.X, v.Y - o.Y, v.Z - o.Z} }
func (v Vec3[T]) Mul(s T) Vec3[T]       { return Vec3[T]{v.X * s, v.Y * s, v.Z * s} }
func (v Vec3[T]) Div(s T) Vec3[T]       { return Vec3[T]{v.X / s, v.Y / s, v.Z / s} }

func (v Vec3[T]) ElemMul(o Vec3[T]) Vec3[T] { return Vec3[T]{v.X * o.X, v.Y * o.Y, v.Z * o.Z} }
func (v Vec3[T]) ElemDiv(o Vec3[T]) Vec3[T] { return Vec3[T]{v.X / o.X, v.Y / o.Y, v.Z / o.Z} }

func (v Vec3[T]) Dot(o Vec3[T]) T { return v.X*o.X + v.Y*o.Y + v.Z*o.Z }

func (v Vec3[T]) Cross(o Vec3[T]) Vec3[T] {
	return Vec3[T]{
		v.Y*o.Z - v.Z*o.Y,
		v.Z*o.X - v.X*o.Z,
		v.X*o.Y - v.Y*o.X,
	}
}

// Len2 returns the squared length, avoiding a sqrt on hot paths that only
// need to compare distances (the broad-phase AABB scan, proximity gating).
func (v Vec3[T]) Len2() T { return v.Dot(v) }

func (v Vec3[T]) Len() float64 { return math.Sqrt(float64(v.Len2())) }

func (v Vec3[T]) ElemMin(o Vec3[T]) Vec3[T] {
	return Vec3[T]{minT(v.X, o.X), minT(v.Y, o.Y), minT(v.Z, o.Z)}
}

func (v Vec3[T]) ElemMax(o Vec3[T]) Vec3[T] {
	return Vec3[T]{maxT(v.X, o.X), maxT(v.Y, o.Y), maxT(v.Z, o.Z)}
}

func minT[T Number](a, b T) T {
	if a < b {
		return a
	}
	return b
}

func maxT[T Number](a, b T) T {
	if a > b {
		return a
	}
	return b
}

// UnitOrZero normalizes v, or returns the zero vector when v has (numerically)
// zero length. This is the one sanctioned way degenerate direction vectors are
// handled across the force recipes in nucleus_agent.go: silently substituting
// a zero contribution rather than propagating NaN or panicking.
func (v Vec3[T]) UnitOrZero() Vec3[T] {
	l2 := v.Len2()
	if l2 == 0 {
		return v
	}
	l := math.Sqrt(float64(l2))
	return Vec3[T]{T(float64(v.X) / l), T(float64(v.Y) / l), T(float64(v.Z) / l)}
}

func (v Vec3[T]) AsFloat64() Vec3[float64] { return Vec3[float64]{float64(v.X), float64(v.Y), float64(v.Z)} }

// Resolution holds pixel-per-micrometer factors along each axis; Offset holds
// the scene-to-image micrometer shift. Both are the same shape as a scene's
// imgRes/sceneOffset controls (SceneControls in scenecontrols.go).
type Resolution = Vec3[float64]
type Offset = Vec3[float64]

// MicronsToPixels floors the resolution-scaled, offset-shifted coordinate:
// px = floor((um - offset) * resolution).
func MicronsToPixels(um Vec3[float64], res Resolution, off Offset) Vec3[int] {
	scaled := um.Sub(off).ElemMul(res)
	return Vec3[int]{
		int(math.Floor(scaled.X)),
		int(math.Floor(scaled.Y)),
		int(math.Floor(scaled.Z)),
	}
}

// PixelsToMicrons maps a pixel index back to the micrometer coordinate of its
// voxel centre: um = (px+0.5)/resolution + offset.
func PixelsToMicrons(px Vec3[int], res Resolution, off Offset) Vec3[float64] {
	half := Vec3[float64]{float64(px.X) + 0.5, float64(px.Y) + 0.5, float64(px.Z) + 0.5}
	return half.ElemDiv(res).Add(off)
}
