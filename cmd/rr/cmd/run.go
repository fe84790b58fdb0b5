package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/ivangav/rr/internal/rrerr"
	"github.com/ivangav/rr/pkg/rr"
)

var traceFlag bool

func init() {
	rootCmd.SilenceUsage = true
	rootCmd.SilenceErrors = true
}

// runStdin implements spec §6's CLI contract: read all of stdin, run it,
// print the final value's rendering plus a newline on success. Parse and
// runtime errors are reported on stdout, per spec §7's "--RR:"-prefixed
// diagnostic stream contract; the command's non-nil return causes main
// to exit 1.
func runStdin(_ *cobra.Command, _ []string) error {
	source, err := io.ReadAll(os.Stdin)
	if err != nil {
		return fmt.Errorf("reading stdin: %w", err)
	}

	res, err := rr.Run(string(source), os.Stdout, rr.Options{Trace: traceFlag})
	if err != nil {
		var rerr *rrerr.Error
		if errors.As(err, &rerr) {
			fmt.Fprintln(os.Stdout, rerr.Format())
		} else {
			fmt.Fprintln(os.Stdout, err)
		}
		return err
	}

	fmt.Fprintln(os.Stdout, res.Rendered)
	return nil
}
