package fold

import (
	"math"

	"github.com/ttvtimotheus/CodonScope/internal/seq"
)

// Tuning constants for the pair-confidence heuristic. These are
// visualization values, not a partition function: confidences across
// one position don't sum to anything meaningful
const (
	// pairedConfidence is assigned to every pair the structure
	// actually selected
	pairedConfidence = 0.95

	// decayCoefficient and decayRate shape the confidence of
	// complementary-but-unselected pairs: coefficient * e^(-dist/rate)
	decayCoefficient = 0.9
	decayRate        = 30.0

	// confidenceCap caps unselected pairs below the selected ones
	confidenceCap = 0.7

	// confidenceFloor drops pairs too faint to draw
	confidenceFloor = 0.1
)

// PairConfidence is a possible base pair weighted for display
type PairConfidence struct {
	// I is the 5' position of the pair
	I int `json:"i"`

	// J is the 3' position of the pair
	J int `json:"j"`

	// Confidence in (0, 1]: 0.95 for structure-selected pairs, a
	// distance-decayed value for the rest
	Confidence float64 `json:"confidence"`
}

// ProbabilityPairs lists every base pair worth drawing for a
// sequence: the predicted structure's pairs at a fixed high
// confidence, then every other complementary (i, j) outside the
// minimum hairpin loop at a confidence that decays with the distance
// between the two positions. Pairs below the visibility floor are
// dropped
func ProbabilityPairs(rna string) []PairConfidence {
	structure := Predict(rna)

	selected := make(map[Pair]bool, len(structure.Pairs))
	pairs := make([]PairConfidence, 0, len(structure.Pairs))
	for _, p := range structure.Pairs {
		selected[p] = true
		pairs = append(pairs, PairConfidence{I: p.I, J: p.J, Confidence: pairedConfidence})
	}

	for i := 0; i < len(rna); i++ {
		for j := i + minLoop + 1; j < len(rna); j++ {
			if selected[Pair{i, j}] || !seq.CanPair(rna[i], rna[j]) {
				continue
			}

			confidence := decayCoefficient * math.Exp(-float64(j-i)/decayRate)
			if confidence > confidenceCap {
				confidence = confidenceCap
			}
			if confidence > confidenceFloor {
				pairs = append(pairs, PairConfidence{I: i, J: j, Confidence: confidence})
			}
		}
	}

	return pairs
}
