package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/wesleyorama2/tempo/internal/bench"
	"github.com/wesleyorama2/tempo/internal/config"
	"github.com/wesleyorama2/tempo/internal/output"
	"github.com/wesleyorama2/tempo/internal/workload"
)

var runCmd = &cobra.Command{
	Use:   "run [workload...]",
	Short: "Run built-in workloads or a benchmark suite file",
	Long: `Benchmark one or more built-in workloads, or every benchmark named in
a YAML suite file.

Single workload with explicit configuration:
  tempo run fnv64 --warmup 50 --duration 250ms --unit us

Several workloads with shared configuration:
  tempo run fnv64 sha256 sort

Suite file mode:
  tempo run --config suite.yaml`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runBenchmarks(cmd, args)
	},
}

func init() {
	runCmd.Flags().String("config", "", "Path to a YAML suite file")
	runCmd.Flags().Int("warmup", 10, "Untimed priming invocations before measurement")
	runCmd.Flags().Int("iterations", 1000, "Nominal iteration count when calibration cannot adjust it")
	runCmd.Flags().Duration("duration", 0, "Target total duration of the timed phase (default 100ms)")
	runCmd.Flags().String("unit", "ns", "Reporting unit: ns, us, ms or s")
	runCmd.Flags().String("label", "", "Display label (single-workload mode only)")
	runCmd.Flags().String("format", "text", "Output format: text, json or yaml")
	runCmd.Flags().StringP("output", "o", "", "Write results to a file instead of stdout")
	runCmd.Flags().Bool("no-color", false, "Disable colored output")
}

func runBenchmarks(cmd *cobra.Command, args []string) error {
	configFile, _ := cmd.Flags().GetString("config")
	formatName, _ := cmd.Flags().GetString("format")
	outputPath, _ := cmd.Flags().GetString("output")
	noColor, _ := cmd.Flags().GetBool("no-color")

	format, err := output.ParseFormat(formatName)
	if err != nil {
		return err
	}

	writer := io.Writer(os.Stdout)
	if outputPath != "" {
		f, err := os.Create(outputPath)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer f.Close()
		writer = f
		noColor = true
	} else if !output.IsTerminal(os.Stdout) {
		noColor = true
	}
	formatter := output.NewFormatter(format, noColor)

	if configFile != "" {
		if len(args) > 0 {
			return fmt.Errorf("workload arguments and --config are mutually exclusive")
		}
		return runSuite(configFile, formatter, writer)
	}

	if len(args) == 0 {
		return fmt.Errorf("either a workload name or --config is required")
	}
	return runWorkloads(cmd, args, formatter, writer)
}

// runWorkloads benchmarks the named built-in workloads with one shared
// flag-derived configuration.
func runWorkloads(cmd *cobra.Command, names []string, formatter *output.Formatter, w io.Writer) error {
	warmup, _ := cmd.Flags().GetInt("warmup")
	iterations, _ := cmd.Flags().GetInt("iterations")
	duration, _ := cmd.Flags().GetDuration("duration")
	unitName, _ := cmd.Flags().GetString("unit")
	label, _ := cmd.Flags().GetString("label")

	if warmup <= 0 {
		return fmt.Errorf("--warmup must be greater than zero")
	}
	if iterations <= 0 {
		return fmt.Errorf("--iterations must be greater than zero")
	}
	if duration < 0 {
		return fmt.Errorf("--duration cannot be negative")
	}
	unit, err := bench.ParseUnit(unitName)
	if err != nil {
		return err
	}
	if label != "" && len(names) > 1 {
		return fmt.Errorf("--label only applies when running a single workload")
	}

	for _, name := range names {
		wl, err := workload.Lookup(name)
		if err != nil {
			return err
		}

		runner := bench.New().
			Warmup(warmup).
			Iterations(iterations).
			Unit(unit).
			Label(wl.Name)
		if duration > 0 {
			runner.TargetDuration(duration)
		}
		if label != "" {
			runner.Label(label)
		}

		result := wl.Bind(runner)

		text, err := formatter.FormatResult(result)
		if err != nil {
			return err
		}
		fmt.Fprint(w, text)
	}
	return nil
}

// runSuite loads a validated suite file and executes its benchmarks in
// order.
func runSuite(path string, formatter *output.Formatter, w io.Writer) error {
	suite, err := config.LoadSuite(path)
	if err != nil {
		return err
	}

	results := make([]bench.Result, 0, len(suite.Benchmarks))
	for _, b := range suite.Benchmarks {
		wl, err := workload.Lookup(b.Workload)
		if err != nil {
			return err
		}

		runner := bench.New().
			Warmup(b.Warmup).
			Iterations(b.Iterations).
			TargetDuration(b.ParsedTargetDuration()).
			Unit(b.ParsedUnit()).
			Label(b.Label)

		results = append(results, wl.Bind(runner))
	}

	text, err := formatter.FormatSuite(suite.Name, results)
	if err != nil {
		return err
	}
	fmt.Fprint(w, text)
	return nil
}
