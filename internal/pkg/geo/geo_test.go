package geo

import (
	"math"
	"testing"
)

func TestDistanceIdentity(t *testing.T) {
	p := Point{Latitude: -6.2088, Longitude: 106.8456}
	if d := Distance(p, p); d != 0 {
		t.Errorf("Distance(p, p) = %f, want 0", d)
	}
}

func TestDistanceSymmetry(t *testing.T) {
	a := Point{Latitude: -6.2088, Longitude: 106.8456}  // Jakarta
	b := Point{Latitude: -7.7956, Longitude: 110.3695}  // Yogyakarta
	d1 := Distance(a, b)
	d2 := Distance(b, a)
	if math.Abs(d1-d2) > 1e-9 {
		t.Errorf("Distance not symmetric: %f vs %f", d1, d2)
	}
	// Roughly 430 km between the two cities.
	if d1 < 400_000 || d1 > 460_000 {
		t.Errorf("Distance = %f m, expected ~430 km", d1)
	}
}

func TestValidate(t *testing.T) {
	center := Point{Latitude: -6.2088, Longitude: 106.8456}
	fence := Fence{Center: center, RadiusMeters: 200}

	inside := Validate(center, fence)
	if !inside.Inside || inside.OverBy != 0 {
		t.Errorf("center point should be inside, got %+v", inside)
	}

	// ~250 m north of the center: 1 degree of latitude is ~111.32 km.
	far := Point{Latitude: center.Latitude + 250.0/111_320.0, Longitude: center.Longitude}
	out := Validate(far, fence)
	if out.Inside {
		t.Fatalf("point 250 m away should be outside a 200 m fence")
	}
	if math.Abs(out.OverBy-50) > 2 {
		t.Errorf("OverBy = %f, want ~50", out.OverBy)
	}
}
