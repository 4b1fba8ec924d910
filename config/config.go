// Package config is for app wide settings that are unmarshalled
// from Viper (see: /cmd)
package config

import (
	"log"

	"github.com/spf13/viper"
)

// FoldConfig is settings for secondary structure prediction
type FoldConfig struct {
	// the maximum number of bases handed to the fold predictor.
	// the DP is O(n^3) time and O(n^2) space, so longer inputs are
	// truncated before prediction rather than folded whole
	MaxLength int `mapstructure:"max-length"`

	// the radius of the circular structure layout
	Radius float64 `mapstructure:"radius"`
}

// ORFConfig is settings for open reading frame scanning
type ORFConfig struct {
	// the minimum ORF length in nucleotides, start through stop
	MinLength int `mapstructure:"min-length"`

	// the NCBI translation table (0 = standard, ATG-only starts)
	Table int `mapstructure:"table"`
}

// PrimerConfig is settings for primer design
type PrimerConfig struct {
	// the minimum primer length in bases
	MinLength int `mapstructure:"min-length"`

	// the maximum primer length in bases
	MaxLength int `mapstructure:"max-length"`

	// the allowable melting temperature window, degrees C
	MinTm float64 `mapstructure:"min-tm"`
	MaxTm float64 `mapstructure:"max-tm"`

	// the allowable GC fraction window
	MinGC float64 `mapstructure:"min-gc"`
	MaxGC float64 `mapstructure:"max-gc"`
}

// DigestConfig is settings for restriction digests
type DigestConfig struct {
	// the enzymes to digest with; empty means every built-in enzyme
	Enzymes []string `mapstructure:"enzymes"`
}

// Config is the root-level settings struct and is a mix
// of settings available in settings.yaml and those
// available from the command line
type Config struct {
	// Fold prediction settings
	Fold FoldConfig `mapstructure:"fold"`

	// ORF scan settings
	ORF ORFConfig `mapstructure:"orfs"`

	// Primer design settings
	Primer PrimerConfig `mapstructure:"primers"`

	// Digest settings
	Digest DigestConfig `mapstructure:"digest"`
}

// NewConfig returns a new Config struct populated by
// Viper settings (either from the local settings.yaml)
// and/or command line arguments
func NewConfig() Config {
	var c Config

	if err := viper.Unmarshal(&c); err != nil {
		log.Fatalf("unable to decode into struct, %v", err)
	}

	return c
}

// BoundFold truncates a sequence to the fold length cap. The fold
// package never truncates on its own: the O(n^3) cost is bounded
// here, by the caller. The second return is whether the sequence
// was cut
func (c Config) BoundFold(rna string) (string, bool) {
	if c.Fold.MaxLength > 0 && len(rna) > c.Fold.MaxLength {
		return rna[:c.Fold.MaxLength], true
	}
	return rna, false
}
