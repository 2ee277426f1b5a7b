// Idnls discovers IDN servers on the local network and prints a
// human-readable inventory: one line per server with its unit identifier,
// host name and reachable addresses, followed by one line per hosted
// service.
//
// Usage:
//
//	idnls [command] [flags]
//
// Running without arguments performs one discovery pass and prints the
// result. See 'idnls --help' for available commands.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	// Failures are reported through the error sink before RunE returns,
	// so cobra must not print them again.
	rootCmd.SilenceErrors = true
	rootCmd.SilenceUsage = true

	// Malformed flags print the usage text and exit 0, the exit code
	// scripted callers of this tool have always seen.
	rootCmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		fmt.Fprintln(os.Stderr, err)
		_ = cmd.Usage()
		os.Exit(0)
		return nil
	})
}
