package output

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/wesleyorama2/tempo/internal/bench"
)

func sampleResult(unit bench.Unit) bench.Result {
	r := bench.Result{
		Label: "fnv64 / 1KiB",
		Samples: []time.Duration{
			1000 * time.Nanosecond,
			2000 * time.Nanosecond,
			3000 * time.Nanosecond,
		},
		Unit:      unit,
		Min:       1,
		Mean:      2,
		StdDev:    1,
		OpsPerSec: 500000,
		P50:       2000 * time.Nanosecond,
		P90:       3000 * time.Nanosecond,
		P95:       3000 * time.Nanosecond,
		P99:       3000 * time.Nanosecond,
	}
	return r
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		input   string
		want    OutputFormat
		wantErr bool
	}{
		{"text", FormatText, false},
		{"json", FormatJSON, false},
		{"yaml", FormatYAML, false},
		{"xml", FormatText, true},
		{"", FormatText, true},
	}

	for _, tt := range tests {
		got, err := ParseFormat(tt.input)
		if tt.wantErr {
			if err == nil {
				t.Errorf("ParseFormat(%q) expected error", tt.input)
			}
			continue
		}
		if err != nil || got != tt.want {
			t.Errorf("ParseFormat(%q) = %v, %v; want %v", tt.input, got, err, tt.want)
		}
	}
}

// The text format applies unit-dependent decimal precision.
func TestFormatResult_TextPrecision(t *testing.T) {
	tests := []struct {
		unit bench.Unit
		want string
	}{
		{bench.Nanoseconds, "Mean:      2.00 ns"},
		{bench.Microseconds, "Mean:      2.000 µs"},
		{bench.Milliseconds, "Mean:      2.0000 ms"},
		{bench.Seconds, "Mean:      2.000000 s"},
	}

	for _, tt := range tests {
		t.Run(tt.unit.String(), func(t *testing.T) {
			f := NewFormatter(FormatText, true)
			got, err := f.FormatResult(sampleResult(tt.unit))
			if err != nil {
				t.Fatalf("FormatResult: %v", err)
			}
			if !strings.Contains(got, tt.want) {
				t.Errorf("output missing %q:\n%s", tt.want, got)
			}
		})
	}
}

func TestFormatResult_TextFields(t *testing.T) {
	f := NewFormatter(FormatText, true)
	got, err := f.FormatResult(sampleResult(bench.Nanoseconds))
	if err != nil {
		t.Fatalf("FormatResult: %v", err)
	}

	for _, want := range []string{
		"Benchmark: fnv64 / 1KiB",
		"Samples:   3",
		"Min:       1.00 ns",
		"StdDev:    1.00 ns",
		"Ops/sec:   500000.00",
		"p50=2µs",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("output missing %q:\n%s", want, got)
		}
	}
}

func TestFormatResult_JSON(t *testing.T) {
	f := NewFormatter(FormatJSON, true)
	got, err := f.FormatResult(sampleResult(bench.Microseconds))
	if err != nil {
		t.Fatalf("FormatResult: %v", err)
	}

	var data ResultData
	if err := json.Unmarshal([]byte(got), &data); err != nil {
		t.Fatalf("output is not valid JSON: %v\n%s", err, got)
	}
	if data.Unit != "µs" {
		t.Errorf("Unit = %q, want µs", data.Unit)
	}
	if data.SampleCnt != 3 {
		t.Errorf("SampleCnt = %d, want 3", data.SampleCnt)
	}
	if data.OpsPerSec != 500000 {
		t.Errorf("OpsPerSec = %v, want 500000", data.OpsPerSec)
	}
	if data.P50Ns != 2000 {
		t.Errorf("P50Ns = %d, want 2000", data.P50Ns)
	}
}

func TestFormatSuite_YAML(t *testing.T) {
	f := NewFormatter(FormatYAML, true)
	got, err := f.FormatSuite("micro-suite", []bench.Result{
		sampleResult(bench.Nanoseconds),
		sampleResult(bench.Seconds),
	})
	if err != nil {
		t.Fatalf("FormatSuite: %v", err)
	}

	var data SuiteData
	if err := yaml.Unmarshal([]byte(got), &data); err != nil {
		t.Fatalf("output is not valid YAML: %v\n%s", err, got)
	}
	if data.Name != "micro-suite" {
		t.Errorf("Name = %q", data.Name)
	}
	if len(data.Results) != 2 {
		t.Fatalf("got %d results, want 2", len(data.Results))
	}
	if data.Results[1].Unit != "s" {
		t.Errorf("second result unit = %q, want s", data.Results[1].Unit)
	}
}
