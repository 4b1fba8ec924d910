package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/ttvtimotheus/CodonScope/config"
	"github.com/ttvtimotheus/CodonScope/internal/digest"
)

// digestOutput is the JSON document the digest command prints
type digestOutput struct {
	Sites     []digest.Site `json:"sites"`
	Fragments []int         `json:"fragments"`
}

// digestCmd represents the digest command
var digestCmd = &cobra.Command{
	Use:   "digest",
	Short: "Find restriction sites and the fragments a digestion would leave",
	RunE: func(cmd *cobra.Command, args []string) error {
		conf := config.NewConfig()

		input, err := readSequence(cmd)
		if err != nil {
			return err
		}
		warnMalformed(input)

		sites, err := digest.Find(input, conf.Digest.Enzymes)
		if err != nil {
			return err
		}

		logger.Debugf("found %d sites with %d enzymes", len(sites), len(conf.Digest.Enzymes))
		return printJSON(digestOutput{
			Sites:     sites,
			Fragments: digest.Fragments(len(input), sites),
		})
	},
}

// enzymesCmd lists the built-in enzymes
var enzymesCmd = &cobra.Command{
	Use:   "enzymes",
	Short: "List the built-in restriction enzymes",
	RunE: func(cmd *cobra.Command, args []string) error {
		enzymes := make([]digest.Enzyme, 0)
		for _, name := range digest.Names() {
			e, _ := digest.Get(name)
			enzymes = append(enzymes, e)
		}
		return printJSON(enzymes)
	},
}

// set flags
func init() {
	addSequenceFlags(digestCmd)
	digestCmd.Flags().StringP("enzymes", "e", "", "comma separated list of enzymes (empty = all)")
	viper.BindPFlag("digest.enzymes", digestCmd.Flags().Lookup("enzymes"))

	digestCmd.AddCommand(enzymesCmd)
	RootCmd.AddCommand(digestCmd)
}
