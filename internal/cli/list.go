package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/wesleyorama2/tempo/internal/output"
	"github.com/wesleyorama2/tempo/internal/workload"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the built-in workloads",
	Run: func(cmd *cobra.Command, args []string) {
		noColor, _ := cmd.Flags().GetBool("no-color")
		if !output.IsTerminal(os.Stdout) {
			noColor = true
		}

		scheme := output.DefaultColorScheme()
		if noColor {
			scheme = output.NoColorScheme()
		}

		for _, w := range workload.All() {
			fmt.Fprintf(cmd.OutOrStdout(), "%-10s %s\n",
				scheme.Label.Sprint(w.Name), w.Description)
		}
	},
}

func init() {
	listCmd.Flags().Bool("no-color", false, "Disable colored output")
}
