package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/ttvtimotheus/CodonScope/config"
	"github.com/ttvtimotheus/CodonScope/internal/fold"
	"github.com/ttvtimotheus/CodonScope/internal/seq"
)

// foldOutput is the JSON document the fold command prints: the
// predicted structure plus everything the visualizations derive
// from it
type foldOutput struct {
	Sequence      string                `json:"sequence"`
	DotBracket    string                `json:"dotBracket"`
	Pairs         []fold.Pair           `json:"pairs"`
	Score         float64               `json:"score"`
	Mountain      []fold.MountainPoint  `json:"mountain"`
	Probabilities []fold.PairConfidence `json:"probabilities"`
	Layout        []fold.LayoutPoint    `json:"layout"`
}

// foldCmd represents the fold command
var foldCmd = &cobra.Command{
	Use:   "fold",
	Short: "Predict the secondary structure of an RNA sequence",
	Long: `Predict the secondary structure of an RNA sequence by maximizing
Watson-Crick base pairs (Nussinov), and derive the dot-bracket string, pair
list, mountain profile, pair confidences, and a circular plot layout.

DNA input is converted to the RNA alphabet first. The prediction is cubic in
sequence length, so sequences longer than fold.max-length (200 by default)
are truncated before folding.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		conf := config.NewConfig()

		input, err := readSequence(cmd)
		if err != nil {
			return err
		}
		warnMalformed(input)

		rna := seq.Normalize(input)
		rna, cut := conf.BoundFold(rna)
		if cut {
			logger.Warnf("sequence of %d bases exceeds the fold cap, truncating to %d", len(input), len(rna))
		}

		logger.Debugf("folding %d bases", len(rna))
		structure := fold.Predict(rna)

		mountain, err := fold.MountainProfile(structure.DotBracket)
		if err != nil {
			return err
		}

		return printJSON(foldOutput{
			Sequence:      rna,
			DotBracket:    structure.DotBracket,
			Pairs:         structure.Pairs,
			Score:         structure.Score,
			Mountain:      mountain,
			Probabilities: fold.ProbabilityPairs(rna),
			Layout:        fold.CircularLayout(rna, conf.Fold.Radius),
		})
	},
}

// set flags
func init() {
	addSequenceFlags(foldCmd)
	foldCmd.Flags().IntP("max-length", "l", 200, "bases to keep before folding (the DP is O(n^3))")
	foldCmd.Flags().Float64P("radius", "r", 100, "radius of the circular layout")
	viper.BindPFlag("fold.max-length", foldCmd.Flags().Lookup("max-length"))
	viper.BindPFlag("fold.radius", foldCmd.Flags().Lookup("radius"))

	RootCmd.AddCommand(foldCmd)
}
