package embryogen

import "strconv"

// AABB is an axis-aligned bounding box in micrometer scene coordinates,
// grounded on original_source/Geometries/Geometry.hpp's AxisAlignedBoundingBox.
// The zero value is NOT a valid empty box; use NewEmptyAABB or Reset.
type AABB struct {
	Min, Max Vec3[float64]
}

// tooFar mirrors AxisAlignedBoundingBox::TOOFAR, the sentinel magnitude used
// to reset a box to "contains nothing yet" before growing it with real data.
const tooFar = 999999999.0

func NewEmptyAABB() AABB {
	return AABB{
		Min: Vec3[float64]{X: tooFar, Y: tooFar, Z: tooFar},
		Max: Vec3[float64]{X: -tooFar, Y: -tooFar, Z: -tooFar},
	}
}

func (b *AABB) Reset() { *b = NewEmptyAABB() }

func (b *AABB) GrowToInclude(p Vec3[float64]) {
	b.Min = b.Min.ElemMin(p)
	b.Max = b.Max.ElemMax(p)
}

func (b AABB) IsEmpty() bool {
	return b.Min.X > b.Max.X || b.Min.Y > b.Max.Y || b.Min.Z > b.Max.Z
}

// MinDistanceSq returns the squared gap between two boxes, clipped to zero
// when they overlap along any axis pair — it is a lower bound on the true
// surface distance between the shapes the boxes enclose, used to skip
// narrow-phase getDistance calls cheaply in the broad-phase scan.
func (b AABB) MinDistanceSq(o AABB) float64 {
	dx := axisGap(b.Min.X, b.Max.X, o.Min.X, o.Max.X)
	dy := axisGap(b.Min.Y, b.Max.Y, o.Min.Y, o.Max.Y)
	dz := axisGap(b.Min.Z, b.Max.Z, o.Min.Z, o.Max.Z)
	return dx*dx + dy*dy + dz*dz
}

func axisGap(aMin, aMax, bMin, bMax float64) float64 {
	if aMax < bMin {
		return bMin - aMax
	}
	if bMax < aMin {
		return aMin - bMax
	}
	return 0
}

// ExportInPixelCoords converts the box to pixel-index bounds, clipped to
// [0, imgSize) on every axis so callers can iterate a volumetric buffer
// safely even when the scene box extends past the image.
func (b AABB) ExportInPixelCoords(res Resolution, off Offset, imgSize Vec3[int]) (minPx, maxPx Vec3[int]) {
	minPx = MicronsToPixels(b.Min, res, off)
	maxPx = MicronsToPixels(b.Max, res, off)

	minPx = clampPx(minPx, imgSize)
	maxPx = clampPx(maxPx, imgSize)
	return
}

func clampPx(p Vec3[int], imgSize Vec3[int]) Vec3[int] {
	return Vec3[int]{
		X: clampInt(p.X, 0, imgSize.X-1),
		Y: clampInt(p.Y, 0, imgSize.Y-1),
		Z: clampInt(p.Z, 0, imgSize.Z-1),
	}
}

func clampInt(v, lo, hi int) int {
	if hi < lo {
		return lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// NamedAABB tags a box with the owning agent's id and type hash, matching
// NamedAxisAlignedBoundingBox; this is the payload exchanged during the
// inter-FrontOfficer AABB allgather (FrontOfficer.exchangeAABBs).
type NamedAABB struct {
	Box         AABB
	AgentID     int
	AgentTypeID uint64
}

func (n NamedAABB) String() string {
	return "NamedAABB{" + strconv.Itoa(n.AgentID) + "}"
}
