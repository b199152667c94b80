package output

import (
	"fmt"
	"time"

	"github.com/wesleyorama2/tempo/internal/bench"
)

// OutputFormat represents the available output formats
type OutputFormat string

const (
	// FormatText is the default human-readable text format
	FormatText OutputFormat = "text"
	// FormatJSON outputs in JSON format
	FormatJSON OutputFormat = "json"
	// FormatYAML outputs in YAML format
	FormatYAML OutputFormat = "yaml"
)

// ParseFormat parses an output format name.
func ParseFormat(s string) (OutputFormat, error) {
	switch OutputFormat(s) {
	case FormatText, FormatJSON, FormatYAML:
		return OutputFormat(s), nil
	default:
		return FormatText, fmt.Errorf("unknown output format %q", s)
	}
}

// ResultData is the serializable view of a benchmark result. Min, Mean
// and StdDev are expressed in Unit; the percentile fields are reported
// in nanoseconds regardless of unit.
type ResultData struct {
	Label     string  `json:"label" yaml:"label"`
	SampleCnt int     `json:"samples" yaml:"samples"`
	Min       float64 `json:"min" yaml:"min"`
	Mean      float64 `json:"mean" yaml:"mean"`
	StdDev    float64 `json:"stdDev" yaml:"stdDev"`
	OpsPerSec float64 `json:"opsPerSec" yaml:"opsPerSec"`
	Unit      string  `json:"unit" yaml:"unit"`
	P50Ns     int64   `json:"p50Ns" yaml:"p50Ns"`
	P90Ns     int64   `json:"p90Ns" yaml:"p90Ns"`
	P95Ns     int64   `json:"p95Ns" yaml:"p95Ns"`
	P99Ns     int64   `json:"p99Ns" yaml:"p99Ns"`
}

// SuiteData wraps the results of a suite run for serialization.
type SuiteData struct {
	Name      string       `json:"name" yaml:"name"`
	Timestamp string       `json:"timestamp" yaml:"timestamp"`
	Results   []ResultData `json:"results" yaml:"results"`
}

// NewResultData converts a reduced benchmark result into its
// serializable view.
func NewResultData(r bench.Result) ResultData {
	return ResultData{
		Label:     r.Label,
		SampleCnt: len(r.Samples),
		Min:       r.Min,
		Mean:      r.Mean,
		StdDev:    r.StdDev,
		OpsPerSec: r.OpsPerSec,
		Unit:      r.Unit.String(),
		P50Ns:     r.P50.Nanoseconds(),
		P90Ns:     r.P90.Nanoseconds(),
		P95Ns:     r.P95.Nanoseconds(),
		P99Ns:     r.P99.Nanoseconds(),
	}
}

// NewSuiteData converts a suite's results into their serializable view.
func NewSuiteData(name string, results []bench.Result) SuiteData {
	data := SuiteData{
		Name:      name,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}
	for _, r := range results {
		data.Results = append(data.Results, NewResultData(r))
	}
	return data
}
