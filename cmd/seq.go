package cmd

import (
	"fmt"
	"strings"

	"github.com/bebop/poly/checks"
	"github.com/bebop/poly/synthesis/codon"
	"github.com/bebop/poly/transform"
	"github.com/spf13/cobra"

	"github.com/ttvtimotheus/CodonScope/internal/seq"
)

// seqCmd is the parent for the simple single-sequence transforms
var seqCmd = &cobra.Command{
	Use:   "seq",
	Short: "Simple sequence transforms: normalize, reverse-complement, GC content, translate",
}

// normalizeCmd converts DNA to the RNA alphabet
var normalizeCmd = &cobra.Command{
	Use:   "normalize",
	Short: "Convert a DNA sequence to the RNA alphabet (T becomes U)",
	RunE: func(cmd *cobra.Command, args []string) error {
		input, err := readSequence(cmd)
		if err != nil {
			return err
		}

		fmt.Println(seq.Normalize(input))
		return nil
	},
}

// rcCmd computes the reverse complement
var rcCmd = &cobra.Command{
	Use:   "rc",
	Short: "Compute the reverse complement of a DNA sequence",
	RunE: func(cmd *cobra.Command, args []string) error {
		input, err := readSequence(cmd)
		if err != nil {
			return err
		}

		fmt.Println(transform.ReverseComplement(strings.ToUpper(input)))
		return nil
	},
}

// gcCmd reports GC content
var gcCmd = &cobra.Command{
	Use:   "gc",
	Short: "Report the GC fraction of a sequence",
	RunE: func(cmd *cobra.Command, args []string) error {
		input, err := readSequence(cmd)
		if err != nil {
			return err
		}

		fmt.Printf("%.4f\n", checks.GcContent(strings.ToUpper(input)))
		return nil
	},
}

// translateCmd translates a coding sequence to protein
var translateCmd = &cobra.Command{
	Use:   "translate",
	Short: "Translate a coding sequence to protein (frame 1)",
	RunE: func(cmd *cobra.Command, args []string) error {
		input, err := readSequence(cmd)
		if err != nil {
			return err
		}

		tableIndex, _ := cmd.Flags().GetInt("table")
		if tableIndex == 0 {
			tableIndex = 1
		}
		table, err := codon.NewTranslationTable(tableIndex)
		if err != nil {
			return err
		}

		dna := strings.ToUpper(input)
		dna = strings.ReplaceAll(dna, "U", "T")
		protein, err := table.Translate(dna)
		if err != nil {
			return err
		}

		fmt.Println(protein)
		return nil
	},
}

// set flags
func init() {
	for _, c := range []*cobra.Command{normalizeCmd, rcCmd, gcCmd, translateCmd} {
		addSequenceFlags(c)
		seqCmd.AddCommand(c)
	}
	translateCmd.Flags().IntP("table", "t", 0, "NCBI translation table")

	RootCmd.AddCommand(seqCmd)
}
