package cmd

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ttvtimotheus/CodonScope/internal/seq"
)

// readSequence resolves the sequence a command should work on: the
// --seq flag directly, the --in file, or stdin. File and stdin input
// may be FASTA; header lines are skipped and the remaining lines
// concatenated
func readSequence(cmd *cobra.Command) (string, error) {
	if s, _ := cmd.Flags().GetString("seq"); s != "" {
		return strings.TrimSpace(s), nil
	}

	var input io.Reader = os.Stdin
	if path, _ := cmd.Flags().GetString("in"); path != "" && path != "-" {
		file, err := os.Open(path)
		if err != nil {
			return "", fmt.Errorf("failed to open input file: %w", err)
		}
		defer file.Close()
		input = file
	}

	var b strings.Builder
	scanner := bufio.NewScanner(input)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, ">") || strings.HasPrefix(line, ";") {
			continue
		}
		b.WriteString(line)
	}
	if err := scanner.Err(); err != nil {
		return "", fmt.Errorf("failed to read sequence: %w", err)
	}

	if b.Len() == 0 {
		return "", fmt.Errorf("no sequence given: pass --seq, --in, or pipe to stdin")
	}
	return b.String(), nil
}

// warnMalformed logs the positions of characters outside the
// nucleotide alphabet. They're tolerated everywhere downstream, this
// is advisory only
func warnMalformed(s string) {
	for i := 0; i < len(s); i++ {
		if !seq.IsNucleotide(s[i]) {
			logger.Warnf("character %q at position %d isn't a nucleotide and will never pair", s[i], i)
		}
	}
}

// printJSON writes a result document to stdout
func printJSON(v interface{}) error {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(b))
	return nil
}

// addSequenceFlags registers the shared input flags on a command
func addSequenceFlags(cmd *cobra.Command) {
	cmd.Flags().String("seq", "", "the sequence to analyze")
	cmd.Flags().StringP("in", "i", "", "path to a FASTA or plain-text sequence file")
}
