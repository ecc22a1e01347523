package embryogen

import "testing"

func TestAABBResetIsEmpty(t *testing.T) {
	b := NewEmptyAABB()
	if !b.IsEmpty() {
		t.Error("fresh AABB should be empty")
	}
	b.GrowToInclude(Vec3[float64]{X: 1, Y: 2, Z: 3})
	if b.IsEmpty() {
		t.Error("AABB grown around a point should not be empty")
	}
}

func TestAABBMinDistanceSqOverlapping(t *testing.T) {
	a := NewEmptyAABB()
	a.GrowToInclude(Vec3[float64]{X: 0, Y: 0, Z: 0})
	a.GrowToInclude(Vec3[float64]{X: 2, Y: 2, Z: 2})

	b := NewEmptyAABB()
	b.GrowToInclude(Vec3[float64]{X: 1, Y: 1, Z: 1})
	b.GrowToInclude(Vec3[float64]{X: 3, Y: 3, Z: 3})

	if d := a.MinDistanceSq(b); d != 0 {
		t.Errorf("overlapping boxes should have zero min distance, got %v", d)
	}
}

func TestAABBMinDistanceSqSeparated(t *testing.T) {
	a := NewEmptyAABB()
	a.GrowToInclude(Vec3[float64]{})
	a.GrowToInclude(Vec3[float64]{X: 1, Y: 1, Z: 1})

	b := NewEmptyAABB()
	b.GrowToInclude(Vec3[float64]{X: 4, Y: 0, Z: 0})
	b.GrowToInclude(Vec3[float64]{X: 5, Y: 1, Z: 1})

	if d := a.MinDistanceSq(b); d != 9 {
		t.Errorf("expected gap of 3 on X (squared 9), got %v", d)
	}
}

func TestAABBExportInPixelCoordsClips(t *testing.T) {
	b := NewEmptyAABB()
	b.GrowToInclude(Vec3[float64]{X: -10, Y: -10, Z: -10})
	b.GrowToInclude(Vec3[float64]{X: 1000, Y: 1000, Z: 1000})

	res := Resolution{X: 1, Y: 1, Z: 1}
	off := Offset{}
	imgSize := Vec3[int]{X: 100, Y: 100, Z: 100}

	minPx, maxPx := b.ExportInPixelCoords(res, off, imgSize)
	if minPx.X < 0 || maxPx.X >= 100 {
		t.Errorf("expected clipped bounds within [0,100), got min=%v max=%v", minPx, maxPx)
	}
}
