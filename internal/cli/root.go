// Package cli wires the firmbench command line.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Version is set at build time via ldflags.
var Version = "dev"

var rootCmd = &cobra.Command{
	Use:   "firmbench",
	Short: "Host-side bench for embedded firmware logic",
	Long: `Firmbench runs firmware logic against host-side stand-ins for the
microcontroller platform API (pins, serial console, HTTP client,
filesystem) and reports pass/fail per registered test.`,
}

func init() {
	rootCmd.Version = Version
	rootCmd.SetVersionTemplate("firmbench version {{.Version}}\n")
}

// Execute runs the root command and returns the process exit code:
// the failure count of the bench run, or 1 on any other error.
func Execute() int {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return 1
	}
	return exitCode
}
