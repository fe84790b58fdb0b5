// Command rr runs the RR expression-language interpreter against a
// program read from standard input (spec §6).
package main

import (
	"os"

	"github.com/ivangav/rr/cmd/rr/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
