// Package cmd implements RR's command-line front end: reading a complete
// program from standard input, running it through pkg/rr, and reporting
// the result per spec §6's CLI contract.
//
// Grounded on the teacher's cmd/dwscript/cmd package layout (root.go +
// one file per subcommand), trimmed to the single command RR's CLI
// contract calls for — there is no dwscript-style file-argument, unit
// search path, or semantic-analysis flag surface here.
package cmd

import (
	"github.com/spf13/cobra"
)

// Version is set by build flags; it has no default-environment meaning,
// it only identifies the binary.
var Version = "0.1.0-dev"

var rootCmd = &cobra.Command{
	Use:     "rr",
	Short:   "RR expression-language interpreter",
	Long:    "rr reads a complete RR program from standard input, evaluates it, and\nwrites the final statement's value rendering to standard output.",
	Version: Version,
	Args:    cobra.NoArgs,
	RunE:    runStdin,
}

func init() {
	rootCmd.Flags().BoolVar(&traceFlag, "trace", false, "emit diagnostic phase traces to stdout")
}

// Execute runs the root command, returning any error for main to report.
func Execute() error {
	return rootCmd.Execute()
}
