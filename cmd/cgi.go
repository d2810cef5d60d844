package cmd

import (
	"github.com/joshyou/comp-bio/internal/cgi"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// cgiCmd is for finding CpG islands in a nucleotide sequence.
var cgiCmd = &cobra.Command{
	Use:                        "cgi [sequence]",
	Short:                      "Find CpG islands in a nucleotide sequence",
	Run:                        cgi.FindCmd,
	SuggestionsMinimumDistance: 2,
	Long: `Find CpG islands in the input sequence(s) by decoding them against an
8-state hidden Markov model with empirically derived transition
probabilities (Han et al. 2008). Every character outside A/C/G/T is
removed before decoding.

The input is a FASTA or plain-text file passed with --in, or a raw
sequence passed as the only argument. Reported coordinates are 1-based
and inclusive except in BED output, which is 0-based half-open.`,
	Example: `  compbio cgi -i chr21.fa -f bed -o islands.bed
  compbio cgi ATCGCGCGCGCGTA`,
	Aliases: []string{"islands"},
}

// set flags
func init() {
	cgiCmd.Flags().StringP("in", "i", "", "Input file with the target sequence(s) <FASTA>")
	cgiCmd.Flags().StringP("out", "o", "", "Output file name (defaults to stdout)")
	cgiCmd.Flags().StringP("format", "f", "table", "Output format: table, bed, csv or json")
	cgiCmd.Flags().IntP("min-length", "l", 0, "Minimum island length (bp) to report")
	cgiCmd.Flags().BoolP("verbose", "v", false, "Log progress while decoding")

	// Bind the parameters to viper
	viper.BindPFlag("format", cgiCmd.Flags().Lookup("format"))
	viper.BindPFlag("min-length", cgiCmd.Flags().Lookup("min-length"))
	viper.BindPFlag("verbose", cgiCmd.Flags().Lookup("verbose"))

	RootCmd.AddCommand(cgiCmd)
}
