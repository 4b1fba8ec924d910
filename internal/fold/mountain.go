package fold

import "fmt"

// MountainPoint is one step of a mountain profile
type MountainPoint struct {
	// Position on the sequence (0-indexed)
	Position int `json:"position"`

	// Height is the nesting depth at this position: the count of
	// '(' minus ')' seen up to and including it
	Height int `json:"height"`
}

// MountainProfile derives the mountain plot of a dot-bracket string
// in a single left-to-right scan: up one on '(', down one on ')',
// flat on '.'
//
// A well-formed dot-bracket string never takes the height negative;
// when one does, the string is unbalanced and an error is returned
// instead of a clamped profile
func MountainProfile(dotBracket string) ([]MountainPoint, error) {
	profile := make([]MountainPoint, len(dotBracket))

	height := 0
	for i := 0; i < len(dotBracket); i++ {
		switch dotBracket[i] {
		case '(':
			height++
		case ')':
			height--
		}

		if height < 0 {
			return nil, fmt.Errorf("unbalanced dot-bracket: ')' at position %d closes nothing", i)
		}
		profile[i] = MountainPoint{Position: i, Height: height}
	}

	return profile, nil
}
