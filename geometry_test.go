package embryogen

import "testing"

func TestSpheresToSpheresDistanceOverlap(t *testing.T) {
	a := NewSpheres(1)
	a.Centres[0] = Vec3[float64]{}
	a.Radii[0] = 2

	b := NewSpheres(1)
	b.Centres[0] = Vec3[float64]{X: 3}
	b.Radii[0] = 2

	pairs := GetDistance(a, b, 10, nil)
	if len(pairs) != 1 {
		t.Fatalf("expected 1 pair, got %d", len(pairs))
	}
	if pairs[0].Distance >= 0 {
		t.Errorf("expected negative (overlapping) distance, got %v", pairs[0].Distance)
	}
}

func TestSpheresToSpheresDistanceIgnoreFar(t *testing.T) {
	a := NewSpheres(1)
	a.Radii[0] = 1
	b := NewSpheres(1)
	b.Centres[0] = Vec3[float64]{X: 1000}
	b.Radii[0] = 1

	pairs := GetDistance(a, b, 5, nil)
	if len(pairs) != 0 {
		t.Errorf("expected far sphere to be ignored, got %d pairs", len(pairs))
	}
}

func TestSpheresToSpheresZeroRadiusEmitsNoPair(t *testing.T) {
	a := NewSpheres(1)
	a.Radii[0] = 0 // a zero-radius sphere is treated as absent

	b := NewSpheres(1)
	b.Centres[0] = Vec3[float64]{X: 1}
	b.Radii[0] = 2

	pairs := GetDistance(a, b, 10, nil)
	if len(pairs) != 0 {
		t.Errorf("expected zero-radius sphere to emit no pair, got %d", len(pairs))
	}
}

func TestSpheresToSpheresKeepsOnlyNearestPerSphere(t *testing.T) {
	a := NewSpheres(1)
	a.Radii[0] = 1

	b := NewSpheres(2)
	b.Centres[0] = Vec3[float64]{X: 10} // far
	b.Radii[0] = 1
	b.Centres[1] = Vec3[float64]{X: 2} // near: this is the argmin
	b.Radii[1] = 1

	pairs := GetDistance(a, b, 100, nil)
	if len(pairs) != 1 {
		t.Fatalf("expected exactly one pair per local sphere, got %d", len(pairs))
	}
	if pairs[0].OtherHint != 1 {
		t.Errorf("expected the nearer other-sphere (index 1) to win, got OtherHint=%d", pairs[0].OtherHint)
	}

	// surface contact points, not centres: |pA-pB| == |d|
	gotDist := pairs[0].LocalPos.Sub(pairs[0].OtherPos).Len()
	wantDist := pairs[0].Distance
	if wantDist < 0 {
		wantDist = -wantDist
	}
	if diff := gotDist - wantDist; diff > 1e-9 || diff < -1e-9 {
		t.Errorf("expected |pA-pB| == |d|, got |pA-pB|=%v d=%v", gotDist, pairs[0].Distance)
	}
}

func TestGetDistanceSymmetricSwap(t *testing.T) {
	spheres := NewSpheres(1)
	spheres.Centres[0] = Vec3[float64]{X: 5, Y: 5, Z: 5}
	spheres.Radii[0] = 1

	img := NewScalarImg(Vec3[int]{X: 20, Y: 20, Z: 20}, Resolution{X: 1, Y: 1, Z: 1}, Offset{}, 0.5, ZeroIN_GradOUT)
	img.Data[(5*20+5)*20+5] = 1.0

	// Call with Spheres first, ScalarImg second: only the reverse pair is
	// registered, exercising the swap-back path in GetDistance.
	pairs := GetDistance(spheres, img, 50, nil)
	if len(pairs) != 1 {
		t.Fatalf("expected 1 pair via swapped dispatch, got %d", len(pairs))
	}
	if pairs[0].LocalHint != 0 {
		t.Errorf("expected LocalHint to reference the sphere after swap-back, got %d", pairs[0].LocalHint)
	}
}
