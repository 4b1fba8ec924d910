// Package fold predicts RNA secondary structure by maximizing the
// number of Watson-Crick base pairs (the Nussinov algorithm) and
// derives the representations the app renders from it: dot-bracket
// notation, a mountain profile, confidence-scored pairs, and a
// circular layout
package fold

import (
	"github.com/ttvtimotheus/CodonScope/internal/seq"
)

// minLoop is the minimum hairpin-loop size: a pair (i, j) may only
// close a span with j-i > minLoop, ie at least 3 unpaired bases
// between the two
const minLoop = 3

// Pair is a single predicted base pair between two positions on the
// sequence (0-indexed, I < J)
type Pair struct {
	// I is the 5' position of the pair
	I int `json:"i"`

	// J is the 3' position of the pair
	J int `json:"j"`
}

// Structure is a predicted secondary structure
type Structure struct {
	// DotBracket is the structure in dot-bracket notation: '(' at a
	// pair's lower index, ')' at its upper, '.' at unpaired positions
	DotBracket string `json:"dotBracket"`

	// Pairs are the predicted base pairs, sorted by their 5' position
	Pairs []Pair `json:"pairs"`

	// Score is a simplified stability proxy: -2 per predicted pair.
	// It is not a free energy (see ProbabilityPairs for the same
	// caveat on confidences)
	Score float64 `json:"score"`
}

// choice is the option realized at a single DP cell, recorded so the
// traceback can replay it
type choice uint8

const (
	// choiceNone is the base case: the span is too short to hold a pair
	choiceNone choice = iota

	// choiceSkipLeft leaves position i unpaired
	choiceSkipLeft

	// choiceSkipRight leaves position j unpaired
	choiceSkipRight

	// choicePair pairs position i with position j
	choicePair

	// choiceSplit bifurcates the span at a recorded split point k
	choiceSplit
)

// span is an inclusive index range on the sequence, used as a stack
// frame during traceback
type span struct {
	i, j int
}

// Predict computes the maximum-pairing secondary structure of an RNA
// sequence via dynamic programming over every subsequence span
//
// Complexity is O(n^3) time and O(n^2) space, so callers are expected
// to bound the input length themselves (the app caps it at
// config.FoldConfig.MaxLength). Predict never truncates
//
// Sequences shorter than 5 bases can't close a hairpin loop and
// always come back unpaired with score 0. Characters outside the RNA
// alphabet never pair and are otherwise tolerated
func Predict(rna string) Structure {
	n := len(rna)

	dot := make([]byte, n)
	for i := range dot {
		dot[i] = '.'
	}

	if n < minLoop+2 {
		return Structure{DotBracket: string(dot)}
	}

	// dense row-major n*n tables: cell (i, j) lives at i*n+j.
	// pairCounts[c] is the max pair count over the span i..j,
	// choices[c] how it was achieved, splits[c] the split point when
	// bifurcated
	pairCounts := make([]int, n*n)
	choices := make([]choice, n*n)
	splits := make([]int, n*n)

	// fill by increasing span length so every smaller span a cell
	// depends on is already known. spans of length <= minLoop stay at
	// zero pairs (choiceNone): the hairpin-loop minimum
	for l := minLoop + 1; l < n; l++ {
		for i := 0; i+l < n; i++ {
			j := i + l
			c := i*n + j

			// the four options are tried in a fixed priority order and
			// only a strictly better count displaces an earlier option,
			// which keeps the traceback reproducible

			// leave i unpaired
			best := pairCounts[(i+1)*n+j]
			taken := choiceSkipLeft

			// leave j unpaired
			if v := pairCounts[i*n+j-1]; v > best {
				best = v
				taken = choiceSkipRight
			}

			// pair i with j
			if seq.CanPair(rna[i], rna[j]) {
				if v := pairCounts[(i+1)*n+j-1] + 1; v > best {
					best = v
					taken = choicePair
				}
			}

			// bifurcate into i..k and k+1..j
			for k := i + 1; k < j; k++ {
				if v := pairCounts[i*n+k] + pairCounts[(k+1)*n+j]; v > best {
					best = v
					taken = choiceSplit
					splits[c] = k
				}
			}

			pairCounts[c] = best
			choices[c] = taken
		}
	}

	// traceback: replay the recorded choices from the full span down
	// to the base cases with an explicit stack, writing brackets into
	// the pre-sized buffer. pushing the right half of a split first
	// means spans pop left-to-right and pairs come out sorted by I
	var pairs []Pair
	stack := []span{{0, n - 1}}
	for len(stack) > 0 {
		s := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if s.j-s.i <= minLoop {
			continue
		}

		switch c := s.i*n + s.j; choices[c] {
		case choiceSkipLeft:
			stack = append(stack, span{s.i + 1, s.j})
		case choiceSkipRight:
			stack = append(stack, span{s.i, s.j - 1})
		case choicePair:
			dot[s.i] = '('
			dot[s.j] = ')'
			pairs = append(pairs, Pair{s.i, s.j})
			stack = append(stack, span{s.i + 1, s.j - 1})
		case choiceSplit:
			k := splits[c]
			stack = append(stack, span{k + 1, s.j})
			stack = append(stack, span{s.i, k})
		}
	}

	return Structure{
		DotBracket: string(dot),
		Pairs:      pairs,
		Score:      float64(-2 * len(pairs)),
	}
}
