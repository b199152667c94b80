package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var version = "0.1.0"

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:     "tempo",
	Short:   "A micro-benchmarking harness for the terminal",
	Version: version,
	Long: `Tempo runs zero-argument workloads under a warmup/calibrate/measure
protocol and reduces the recorded wall-clock samples to summary
statistics (min, mean, sample stddev, ops/sec). Iteration counts are
calibrated automatically to approach a target wall-clock budget.`,
	Run: func(cmd *cobra.Command, args []string) {
		// If no subcommand is provided, print help
		cmd.Help()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() error {
	if err := RootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return err
	}
	return nil
}

func init() {
	RootCmd.AddCommand(runCmd)
	RootCmd.AddCommand(listCmd)
}
