package fold

import "math"

// LayoutPoint is one base positioned for a circular structure plot
type LayoutPoint struct {
	// X, Y coordinates on a circle around the origin
	X float64 `json:"x"`
	Y float64 `json:"y"`

	// Base at this position
	Base byte `json:"base"`
}

// CircularLayout places each base of a sequence on a circle of the
// given radius, evenly spaced by angle: base i sits at 2*pi*i/n.
// Purely geometric, the structure itself plays no part
func CircularLayout(rna string, radius float64) []LayoutPoint {
	n := len(rna)

	points := make([]LayoutPoint, n)
	for i := 0; i < n; i++ {
		theta := 2 * math.Pi * float64(i) / float64(n)
		points[i] = LayoutPoint{
			X:    radius * math.Cos(theta),
			Y:    radius * math.Sin(theta),
			Base: rna[i],
		}
	}

	return points
}
