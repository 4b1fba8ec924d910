package fold

import (
	"math"
	"testing"
)

func Test_CircularLayout(t *testing.T) {
	rna := "GGGAAAUCCC"
	radius := 100.0

	points := CircularLayout(rna, radius)
	if len(points) != len(rna) {
		t.Fatalf("CircularLayout() produced %d points, want %d", len(points), len(rna))
	}

	for i, p := range points {
		if p.Base != rna[i] {
			t.Errorf("point %d carries base %q, want %q", i, p.Base, rna[i])
		}

		dist := math.Hypot(p.X, p.Y)
		if math.Abs(dist-radius) > 1e-9 {
			t.Errorf("point %d at distance %v from origin, want %v", i, dist, radius)
		}

		theta := 2 * math.Pi * float64(i) / float64(len(rna))
		if math.Abs(p.X-radius*math.Cos(theta)) > 1e-9 || math.Abs(p.Y-radius*math.Sin(theta)) > 1e-9 {
			t.Errorf("point %d at (%v, %v), want angle %v", i, p.X, p.Y, theta)
		}
	}

	// first base sits on the positive x axis
	if math.Abs(points[0].X-radius) > 1e-9 || math.Abs(points[0].Y) > 1e-9 {
		t.Errorf("point 0 at (%v, %v), want (%v, 0)", points[0].X, points[0].Y, radius)
	}
}

func Test_CircularLayout_quadrants(t *testing.T) {
	points := CircularLayout("ACGU", 50)

	want := [][2]float64{{50, 0}, {0, 50}, {-50, 0}, {0, -50}}
	for i, w := range want {
		if math.Abs(points[i].X-w[0]) > 1e-9 || math.Abs(points[i].Y-w[1]) > 1e-9 {
			t.Errorf("point %d = (%v, %v), want (%v, %v)", i, points[i].X, points[i].Y, w[0], w[1])
		}
	}
}

func Test_CircularLayout_empty(t *testing.T) {
	if points := CircularLayout("", 100); len(points) != 0 {
		t.Errorf("CircularLayout(\"\") = %v, want none", points)
	}
}
