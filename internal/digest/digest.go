// Package digest finds restriction enzyme recognition sites on a
// sequence and the fragments a full digestion would leave
package digest

import (
	"fmt"
	"sort"
	"strings"

	"github.com/bebop/poly/transform"
)

// Enzyme is a restriction endonuclease recognition entry
type Enzyme struct {
	// Name of the enzyme, eg EcoRI
	Name string `json:"name"`

	// Recognition site, 5' to 3'
	Recognition string `json:"recognition"`

	// CutIndex is the 0-based offset of the cut within the site
	CutIndex int `json:"cutIndex"`
}

// db holds the built-in enzymes, keyed by name
var db = map[string]Enzyme{
	"EcoRI":   {"EcoRI", "GAATTC", 1},
	"BamHI":   {"BamHI", "GGATCC", 1},
	"HindIII": {"HindIII", "AAGCTT", 1},
	"NotI":    {"NotI", "GCGGCCGC", 2},
	"PstI":    {"PstI", "CTGCAG", 5},
	"SmaI":    {"SmaI", "CCCGGG", 3},
	"EcoRV":   {"EcoRV", "GATATC", 3},
	"XhoI":    {"XhoI", "CTCGAG", 1},
	"TaqI":    {"TaqI", "TCGA", 1},
	"MseI":    {"MseI", "TTAA", 1},
}

// Get looks an enzyme up by name
func Get(name string) (Enzyme, bool) {
	e, ok := db[name]
	return e, ok
}

// Names lists the built-in enzymes in alphabetical order
func Names() []string {
	names := make([]string, 0, len(db))
	for name := range db {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Site is one match of an enzyme's recognition sequence on the
// forward strand of the target
type Site struct {
	// Enzyme that recognizes this site
	Enzyme string `json:"enzyme"`

	// Position of the site's first base (0-indexed)
	Position int `json:"position"`

	// Cut position on the forward strand
	Cut int `json:"cut"`

	// Strand the recognition sequence reads on, "+" or "-"
	Strand string `json:"strand"`
}

// Find scans the sequence for every recognition site of the named
// enzymes. An empty enzyme list means all built-in enzymes.
// Palindromic sites are reported once on the forward strand;
// non-palindromic ones are also searched as their reverse complement
func Find(dna string, enzymes []string) ([]Site, error) {
	dna = strings.ToUpper(dna)
	dna = strings.ReplaceAll(dna, "U", "T")

	if len(enzymes) == 0 {
		enzymes = Names()
	}

	var sites []Site
	for _, name := range enzymes {
		enzyme, ok := db[name]
		if !ok {
			return nil, fmt.Errorf("unknown enzyme %q", name)
		}

		site := enzyme.Recognition
		for _, p := range indexAll(dna, site) {
			sites = append(sites, Site{
				Enzyme:   enzyme.Name,
				Position: p,
				Cut:      p + enzyme.CutIndex,
				Strand:   "+",
			})
		}

		// non-palindromic sites can also sit on the other strand
		rc := transform.ReverseComplement(site)
		if rc != site {
			for _, p := range indexAll(dna, rc) {
				sites = append(sites, Site{
					Enzyme:   enzyme.Name,
					Position: p,
					Cut:      p + len(site) - enzyme.CutIndex,
					Strand:   "-",
				})
			}
		}
	}

	sort.Slice(sites, func(i, j int) bool {
		if sites[i].Position != sites[j].Position {
			return sites[i].Position < sites[j].Position
		}
		return sites[i].Enzyme < sites[j].Enzyme
	})
	return sites, nil
}

// Fragments returns the lengths of the pieces a full digestion at
// every cut site would leave, in order along the sequence
func Fragments(seqLength int, sites []Site) []int {
	cuts := make([]int, 0, len(sites))
	for _, s := range sites {
		if s.Cut > 0 && s.Cut < seqLength {
			cuts = append(cuts, s.Cut)
		}
	}
	sort.Ints(cuts)

	var fragments []int
	last := 0
	for _, c := range cuts {
		if c == last {
			continue // two enzymes cutting the same phosphate
		}
		fragments = append(fragments, c-last)
		last = c
	}
	if seqLength > last {
		fragments = append(fragments, seqLength-last)
	}
	return fragments
}

// indexAll returns every index of site within dna, overlaps included
func indexAll(dna, site string) []int {
	var positions []int
	for i := 0; i+len(site) <= len(dna); i++ {
		if dna[i:i+len(site)] == site {
			positions = append(positions, i)
		}
	}
	return positions
}
