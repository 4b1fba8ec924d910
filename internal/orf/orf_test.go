package orf

import (
	"strings"
	"testing"
)

func Test_Find(t *testing.T) {
	// ATG AAA TAG reads M-K-stop on the forward strand, frame 1
	orfs, err := Find("ATGAAATAG", 9, 0)
	if err != nil {
		t.Fatal(err)
	}
	if len(orfs) != 1 {
		t.Fatalf("Find() = %v, want one ORF", orfs)
	}

	o := orfs[0]
	if o.Start != 0 || o.End != 8 {
		t.Errorf("ORF at %d..%d, want 0..8", o.Start, o.End)
	}
	if o.Strand != "+" || o.Frame != 1 {
		t.Errorf("ORF on %s frame %d, want + frame 1", o.Strand, o.Frame)
	}
	if o.Sequence != "ATGAAATAG" {
		t.Errorf("ORF sequence = %v, want ATGAAATAG", o.Sequence)
	}
	if !strings.HasPrefix(o.Protein, "MK") {
		t.Errorf("ORF protein = %v, want MK...", o.Protein)
	}
}

func Test_Find_reverseStrand(t *testing.T) {
	// reverse complement of ATGAAATAG: the ORF lies on the minus
	// strand but is reported in forward coordinates
	orfs, err := Find("CTATTTCAT", 9, 0)
	if err != nil {
		t.Fatal(err)
	}
	if len(orfs) != 1 {
		t.Fatalf("Find() = %v, want one ORF", orfs)
	}

	o := orfs[0]
	if o.Strand != "-" {
		t.Errorf("ORF on %s, want -", o.Strand)
	}
	if o.Start != 0 || o.End != 8 {
		t.Errorf("ORF at %d..%d, want 0..8", o.Start, o.End)
	}
	if o.Sequence != "ATGAAATAG" {
		t.Errorf("ORF sequence = %v, want ATGAAATAG", o.Sequence)
	}
}

func Test_Find_minLength(t *testing.T) {
	orfs, err := Find("ATGAAATAG", 12, 0)
	if err != nil {
		t.Fatal(err)
	}
	if len(orfs) != 0 {
		t.Errorf("Find() = %v, want none under the length floor", orfs)
	}
}

func Test_Find_rnaInput(t *testing.T) {
	// RNA input is tolerated, the scan works on the DNA alphabet
	orfs, err := Find("augaaauag", 9, 0)
	if err != nil {
		t.Fatal(err)
	}
	if len(orfs) != 1 || orfs[0].Sequence != "ATGAAATAG" {
		t.Errorf("Find() = %v, want the same ORF as for DNA input", orfs)
	}
}

func Test_Find_noStart(t *testing.T) {
	orfs, err := Find("AAATTTCCCGGG", 3, 0)
	if err != nil {
		t.Fatal(err)
	}
	if len(orfs) != 0 {
		t.Errorf("Find() = %v, want none without a start codon", orfs)
	}
}
