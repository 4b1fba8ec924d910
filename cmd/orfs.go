package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/ttvtimotheus/CodonScope/config"
	"github.com/ttvtimotheus/CodonScope/internal/orf"
)

// orfsCmd represents the orfs command
var orfsCmd = &cobra.Command{
	Use:   "orfs",
	Short: "Scan the six reading frames for open reading frames",
	Long: `Scan every reading frame on both strands for open reading frames,
start codon through stop codon, and translate each one. Results are reported
in forward-strand coordinates.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		conf := config.NewConfig()

		input, err := readSequence(cmd)
		if err != nil {
			return err
		}
		warnMalformed(input)

		orfs, err := orf.Find(input, conf.ORF.MinLength, conf.ORF.Table)
		if err != nil {
			return err
		}

		logger.Debugf("found %d ORFs in %d bases", len(orfs), len(input))
		return printJSON(orfs)
	},
}

// set flags
func init() {
	addSequenceFlags(orfsCmd)
	orfsCmd.Flags().IntP("min-length", "m", 30, "minimum ORF length in nucleotides")
	orfsCmd.Flags().IntP("table", "t", 0, "NCBI translation table (0 = standard, ATG-only starts)")
	viper.BindPFlag("orfs.min-length", orfsCmd.Flags().Lookup("min-length"))
	viper.BindPFlag("orfs.table", orfsCmd.Flags().Lookup("table"))

	RootCmd.AddCommand(orfsCmd)
}
