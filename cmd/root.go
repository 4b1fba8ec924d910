// Package cmd is for command line interactions with the codonscope application
package cmd

import (
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// logger writes progress and warnings to stderr so stdout stays
// parseable JSON
var logger = log.NewWithOptions(os.Stderr, log.Options{
	Prefix: "codonscope",
})

// RootCmd represents the base command when called without any subcommands.
var RootCmd = &cobra.Command{
	Use: "codonscope",
	Short: `Analyze nucleic-acid sequences: codon framing, translation, restriction
digests, primer design, and RNA secondary structure prediction`,
	Version: "0.1.0",
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the RootCmd.
func Execute() {
	if err := RootCmd.Execute(); err != nil {
		logger.Fatal(err)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	// settings is an optional parameter for a settings file (that overrides the defaults below)
	RootCmd.PersistentFlags().StringP("settings", "s", "", "path to a YAML settings file")
	RootCmd.PersistentFlags().BoolP("verbose", "v", false, "whether to log progress to stderr")
	viper.BindPFlag("settings", RootCmd.PersistentFlags().Lookup("settings"))
	viper.BindPFlag("verbose", RootCmd.PersistentFlags().Lookup("verbose"))
}

// initConfig seeds the default settings and layers the optional
// settings file on top
func initConfig() {
	viper.SetDefault("fold.max-length", 200)
	viper.SetDefault("fold.radius", 100.0)
	viper.SetDefault("orfs.min-length", 30)
	viper.SetDefault("orfs.table", 0)
	viper.SetDefault("primers.min-length", 18)
	viper.SetDefault("primers.max-length", 24)
	viper.SetDefault("primers.min-tm", 52.0)
	viper.SetDefault("primers.max-tm", 62.0)
	viper.SetDefault("primers.min-gc", 0.4)
	viper.SetDefault("primers.max-gc", 0.6)
	viper.SetDefault("digest.enzymes", []string{})

	if settings := viper.GetString("settings"); settings != "" {
		viper.SetConfigFile(settings)
		if err := viper.ReadInConfig(); err != nil {
			logger.Fatalf("failed to read settings file: %v", err)
		}
	}

	if viper.GetBool("verbose") {
		logger.SetLevel(log.DebugLevel)
	}
}
