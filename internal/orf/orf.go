// Package orf scans the six reading frames of a DNA sequence for
// open reading frames and translates them
package orf

import (
	"sort"
	"strings"

	"github.com/bebop/poly/synthesis/codon"
	"github.com/bebop/poly/transform"
)

// ORF is one open reading frame found on a sequence. Start and End
// are 0-indexed positions on the forward strand regardless of which
// strand the frame was read from
type ORF struct {
	// Start of the ORF, inclusive of the start codon
	Start int `json:"start"`

	// End of the ORF, inclusive of the stop codon's last base
	End int `json:"end"`

	// Strand the frame was read from, "+" or "-"
	Strand string `json:"strand"`

	// Frame within the strand, 1 through 3
	Frame int `json:"frame"`

	// Sequence of the ORF as read, start codon through stop codon
	Sequence string `json:"sequence"`

	// Protein translation of the ORF
	Protein string `json:"protein"`
}

// Find scans every reading frame on both strands for ORFs of at
// least minLength nucleotides, start codon through stop codon
//
// tableIndex selects an NCBI translation table; 0 means the standard
// table restricted to ATG-only starts. Results are sorted by start
// position, then end
func Find(dna string, minLength int, tableIndex int) ([]ORF, error) {
	// the codon tables are DNA-keyed, so bring RNA input back to DNA
	dna = strings.ToUpper(dna)
	dna = strings.ReplaceAll(dna, "U", "T")

	atgOnly := false
	if tableIndex == 0 {
		atgOnly = true
		tableIndex = 1
	}
	table, err := codon.NewTranslationTable(tableIndex)
	if err != nil {
		return nil, err
	}

	startCodons := table.StartCodons
	if atgOnly {
		startCodons = []string{"ATG"}
	}

	var orfs []ORF
	scan := func(seq, strand string) error {
		for frame := 0; frame < 3; frame++ {
			start := -1
			for i := frame; i+3 <= len(seq); i += 3 {
				c := seq[i : i+3]

				if start < 0 {
					if contains(startCodons, c) {
						start = i
					}
					continue
				}

				if contains(table.StopCodons, c) {
					orfSeq := seq[start : i+3]
					if len(orfSeq) >= minLength {
						protein, err := table.Translate(orfSeq)
						if err != nil {
							return err
						}

						// map back onto the forward strand
						orfStart, orfEnd := start, i+2
						if strand == "-" {
							orfStart, orfEnd = len(seq)-1-orfEnd, len(seq)-1-orfStart
						}

						orfs = append(orfs, ORF{
							Start:    orfStart,
							End:      orfEnd,
							Strand:   strand,
							Frame:    frame + 1,
							Sequence: orfSeq,
							Protein:  protein,
						})
					}
					start = -1
				}
			}
		}
		return nil
	}

	if err := scan(dna, "+"); err != nil {
		return nil, err
	}
	if err := scan(transform.ReverseComplement(dna), "-"); err != nil {
		return nil, err
	}

	sort.Slice(orfs, func(i, j int) bool {
		if orfs[i].Start != orfs[j].Start {
			return orfs[i].Start < orfs[j].Start
		}
		return orfs[i].End < orfs[j].End
	})
	return orfs, nil
}

func contains(codons []string, c string) bool {
	for _, s := range codons {
		if s == c {
			return true
		}
	}
	return false
}
