package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
)

func testCmd() *cobra.Command {
	c := &cobra.Command{Use: "test"}
	addSequenceFlags(c)
	return c
}

func Test_readSequence_flag(t *testing.T) {
	c := testCmd()
	c.Flags().Set("seq", " GGGAAAUCCC ")

	got, err := readSequence(c)
	if err != nil {
		t.Fatal(err)
	}
	if got != "GGGAAAUCCC" {
		t.Errorf("readSequence() = %v, want GGGAAAUCCC", got)
	}
}

func Test_readSequence_fasta(t *testing.T) {
	path := filepath.Join(t.TempDir(), "seq.fa")
	fasta := ">test sequence\nGGGAAAU\nCCC\n"
	if err := os.WriteFile(path, []byte(fasta), 0644); err != nil {
		t.Fatal(err)
	}

	c := testCmd()
	c.Flags().Set("in", path)

	got, err := readSequence(c)
	if err != nil {
		t.Fatal(err)
	}
	if got != "GGGAAAUCCC" {
		t.Errorf("readSequence() = %v, want the headerless concatenation", got)
	}
}

func Test_readSequence_missingFile(t *testing.T) {
	c := testCmd()
	c.Flags().Set("in", filepath.Join(t.TempDir(), "nope.fa"))

	if _, err := readSequence(c); err == nil {
		t.Error("readSequence() on a missing file should error")
	}
}
