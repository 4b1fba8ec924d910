// Package primer scores primer candidates and designs a simple
// forward/reverse pair for amplifying a template
package primer

import (
	"fmt"
	"strings"

	"github.com/bebop/poly/checks"
	"github.com/bebop/poly/transform"
)

// Primer is a candidate oligo with its scores
type Primer struct {
	// Seq of the primer (in 5' to 3' direction)
	Seq string `json:"seq"`

	// Start of the primer on the template (0-indexed)
	Start int `json:"start"`

	// End of the primer on the template (0-indexed, inclusive)
	End int `json:"end"`

	// Reverse is true for the reverse-strand primer, whose Seq is the
	// reverse complement of the template window
	Reverse bool `json:"reverse"`

	// Tm of the primer per the Wallace rule: 2(A+T) + 4(G+C)
	Tm float64 `json:"tm"`

	// GC fraction of the primer, 0 to 1
	GC float64 `json:"gc"`

	// Clamp is whether the 3' end is a G or C
	Clamp bool `json:"clamp"`
}

// Settings are the windows a designed primer has to land in
type Settings struct {
	// MinLength and MaxLength of a primer in bases
	MinLength int
	MaxLength int

	// MinTm and MaxTm in degrees C
	MinTm float64
	MaxTm float64

	// MinGC and MaxGC as fractions
	MinGC float64
	MaxGC float64
}

// Score builds a Primer from a template window. The window sequence
// is taken from the forward strand; reverse primers are
// reverse-complemented so Seq always reads 5' to 3'
func Score(template string, start, end int, reverse bool) Primer {
	window := strings.ToUpper(template[start : end+1])
	window = strings.ReplaceAll(window, "U", "T")
	if reverse {
		window = transform.ReverseComplement(window)
	}

	return Primer{
		Seq:     window,
		Start:   start,
		End:     end,
		Reverse: reverse,
		Tm:      wallaceTm(window),
		GC:      checks.GcContent(window),
		Clamp:   window[len(window)-1] == 'G' || window[len(window)-1] == 'C',
	}
}

// Design picks a forward primer off the template's 5' end and a
// reverse primer off its 3' end, taking at each end the shortest
// window that satisfies the Tm and GC settings. Primers prefer a 3'
// GC clamp when one is available within the length window
func Design(template string, settings Settings) (fwd, rev Primer, err error) {
	if len(template) < 2*settings.MinLength {
		return Primer{}, Primer{}, fmt.Errorf(
			"template of %d bases can't fit two %d-base primers", len(template), settings.MinLength)
	}

	fwd, err = pick(template, settings, false)
	if err != nil {
		return Primer{}, Primer{}, err
	}
	rev, err = pick(template, settings, true)
	if err != nil {
		return Primer{}, Primer{}, err
	}
	return fwd, rev, nil
}

// pick slides the window from MinLength to MaxLength off one end of
// the template and takes the first candidate inside the settings
// windows, preferring clamped candidates over unclamped ones
func pick(template string, settings Settings, reverse bool) (Primer, error) {
	var fallback Primer
	haveFallback := false

	for l := settings.MinLength; l <= settings.MaxLength && l <= len(template); l++ {
		start, end := 0, l-1
		if reverse {
			start, end = len(template)-l, len(template)-1
		}

		p := Score(template, start, end, reverse)
		if p.Tm < settings.MinTm || p.Tm > settings.MaxTm {
			continue
		}
		if p.GC < settings.MinGC || p.GC > settings.MaxGC {
			continue
		}

		if p.Clamp {
			return p, nil
		}
		if !haveFallback {
			fallback = p
			haveFallback = true
		}
	}

	if haveFallback {
		return fallback, nil
	}

	side := "forward"
	if reverse {
		side = "reverse"
	}
	return Primer{}, fmt.Errorf("no %s primer satisfies the Tm/GC windows", side)
}

// wallaceTm is the Wallace rule of thumb for short oligos:
// 2 degrees per A/T, 4 per G/C
func wallaceTm(seq string) float64 {
	tm := 0.0
	for i := 0; i < len(seq); i++ {
		switch seq[i] {
		case 'A', 'T':
			tm += 2
		case 'G', 'C':
			tm += 4
		}
	}
	return tm
}
