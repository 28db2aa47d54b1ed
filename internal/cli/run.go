package cli

import (
	"firmbench-go/harness"
	"firmbench-go/internal/config"
	"firmbench-go/x/strx"

	"github.com/spf13/cobra"
)

// DefaultProfilePath is used when --profile is not given.
const DefaultProfilePath = "firmbench.yaml"

var (
	flagProfile string
	flagVerbose bool

	// exitCode carries the failure count out of the run command.
	exitCode int
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the built-in bench suite against the stand-ins",
	Long: `Run constructs fresh stand-ins from the bench profile, registers the
built-in suite, executes it in registration order and exits with the
total failure count.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		profile, err := config.Load(strx.Coalesce(flagProfile, DefaultProfilePath))
		if err != nil {
			return err
		}

		r := harness.New(
			harness.WithOutput(cmd.OutOrStdout()),
			harness.WithVerbose(flagVerbose),
		)
		registerBenchSuite(r, profile)
		exitCode = r.Run()
		return nil
	},
}

func init() {
	runCmd.Flags().StringVar(&flagProfile, "profile", "", "bench profile YAML (default "+DefaultProfilePath+")")
	runCmd.Flags().BoolVarP(&flagVerbose, "verbose", "v", false, "print per-test timings")
	rootCmd.AddCommand(runCmd)
}
