package output

import (
	"encoding/json"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/wesleyorama2/tempo/internal/bench"
)

// Formatter renders benchmark results as text, JSON or YAML.
type Formatter struct {
	Format OutputFormat
	scheme *ColorScheme
}

// NewFormatter creates a formatter. Colors apply to the text format
// only and are disabled when noColor is set.
func NewFormatter(format OutputFormat, noColor bool) *Formatter {
	scheme := DefaultColorScheme()
	if noColor {
		scheme = NoColorScheme()
	}
	return &Formatter{Format: format, scheme: scheme}
}

// FormatResult renders a single reduced result.
func (f *Formatter) FormatResult(r bench.Result) (string, error) {
	switch f.Format {
	case FormatJSON:
		return marshalJSON(NewResultData(r))
	case FormatYAML:
		return marshalYAML(NewResultData(r))
	default:
		return f.formatText(r), nil
	}
}

// FormatSuite renders all results of a suite run.
func (f *Formatter) FormatSuite(name string, results []bench.Result) (string, error) {
	switch f.Format {
	case FormatJSON:
		return marshalJSON(NewSuiteData(name, results))
	case FormatYAML:
		return marshalYAML(NewSuiteData(name, results))
	default:
		var sb strings.Builder
		sb.WriteString(f.scheme.Label.Sprintf("Suite: %s", name))
		sb.WriteString("\n\n")
		for _, r := range results {
			sb.WriteString(f.formatText(r))
		}
		return sb.String(), nil
	}
}

// formatText reproduces the classic fixed-width layout, with decimal
// precision chosen per unit so nanosecond and second scales both stay
// readable.
func (f *Formatter) formatText(r bench.Result) string {
	precision := r.Unit.Precision()
	unit := r.Unit.String()

	value := func(v float64) string {
		return f.scheme.Value.Sprintf("%.*f", precision, v) +
			" " + f.scheme.Unit.Sprint(unit)
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Benchmark: %s\n", f.scheme.Label.Sprint(r.Label)))
	sb.WriteString(fmt.Sprintf("  %s  %d\n", f.scheme.Metric.Sprint("Samples: "), len(r.Samples)))
	sb.WriteString(fmt.Sprintf("  %s  %s\n", f.scheme.Metric.Sprint("Min:     "), value(r.Min)))
	sb.WriteString(fmt.Sprintf("  %s  %s\n", f.scheme.Metric.Sprint("Mean:    "), value(r.Mean)))
	sb.WriteString(fmt.Sprintf("  %s  %s\n", f.scheme.Metric.Sprint("StdDev:  "), value(r.StdDev)))
	sb.WriteString(fmt.Sprintf("  %s  %s\n", f.scheme.Metric.Sprint("Ops/sec: "),
		f.scheme.Value.Sprintf("%.2f", r.OpsPerSec)))
	sb.WriteString(fmt.Sprintf("  %s  p50=%v p90=%v p95=%v p99=%v\n\n",
		f.scheme.Metric.Sprint("Pctiles: "), r.P50, r.P90, r.P95, r.P99))
	return sb.String()
}

func marshalJSON(v interface{}) (string, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal JSON: %w", err)
	}
	return string(data) + "\n", nil
}

func marshalYAML(v interface{}) (string, error) {
	data, err := yaml.Marshal(v)
	if err != nil {
		return "", fmt.Errorf("failed to marshal YAML: %w", err)
	}
	return string(data), nil
}
