package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/ttvtimotheus/CodonScope/config"
	"github.com/ttvtimotheus/CodonScope/internal/primer"
)

// primersOutput is the JSON document the primers command prints
type primersOutput struct {
	Forward primer.Primer `json:"forward"`
	Reverse primer.Primer `json:"reverse"`
}

// primersCmd represents the primers command
var primersCmd = &cobra.Command{
	Use:   "primers",
	Short: "Design a forward/reverse primer pair for a template",
	Long: `Design a primer pair off the two ends of a template sequence. Candidates
are scored with the Wallace-rule Tm and GC fraction and have to land inside the
configured windows; candidates ending in G or C (a 3' clamp) win ties.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		conf := config.NewConfig()

		input, err := readSequence(cmd)
		if err != nil {
			return err
		}
		warnMalformed(input)

		fwd, rev, err := primer.Design(input, primer.Settings{
			MinLength: conf.Primer.MinLength,
			MaxLength: conf.Primer.MaxLength,
			MinTm:     conf.Primer.MinTm,
			MaxTm:     conf.Primer.MaxTm,
			MinGC:     conf.Primer.MinGC,
			MaxGC:     conf.Primer.MaxGC,
		})
		if err != nil {
			return err
		}

		logger.Debugf("designed primers %s / %s", fwd.Seq, rev.Seq)
		return printJSON(primersOutput{Forward: fwd, Reverse: rev})
	},
}

// set flags
func init() {
	addSequenceFlags(primersCmd)
	primersCmd.Flags().Int("min-length", 18, "minimum primer length")
	primersCmd.Flags().Int("max-length", 24, "maximum primer length")
	primersCmd.Flags().Float64("min-tm", 52, "minimum melting temperature, degrees C")
	primersCmd.Flags().Float64("max-tm", 62, "maximum melting temperature, degrees C")
	primersCmd.Flags().Float64("min-gc", 0.4, "minimum GC fraction")
	primersCmd.Flags().Float64("max-gc", 0.6, "maximum GC fraction")
	viper.BindPFlag("primers.min-length", primersCmd.Flags().Lookup("min-length"))
	viper.BindPFlag("primers.max-length", primersCmd.Flags().Lookup("max-length"))
	viper.BindPFlag("primers.min-tm", primersCmd.Flags().Lookup("min-tm"))
	viper.BindPFlag("primers.max-tm", primersCmd.Flags().Lookup("max-tm"))
	viper.BindPFlag("primers.min-gc", primersCmd.Flags().Lookup("min-gc"))
	viper.BindPFlag("primers.max-gc", primersCmd.Flags().Lookup("max-gc"))

	RootCmd.AddCommand(primersCmd)
}
