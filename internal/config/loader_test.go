package config

import (
	"strings"
	"testing"
	"time"

	"github.com/wesleyorama2/tempo/internal/bench"
)

func TestParseSuite_ValidWithDefaults(t *testing.T) {
	yaml := `
name: "codec micro-suite"
benchmarks:
  - label: "fnv64 / 1KiB"
    workload: fnv64
    warmup: 50
    iterations: 2000
    targetDuration: 250ms
    unit: us
  - workload: sort
`

	suite, err := ParseSuite([]byte(yaml))
	if err != nil {
		t.Fatalf("ParseSuite: %v", err)
	}

	if suite.Name != "codec micro-suite" {
		t.Errorf("Name = %q", suite.Name)
	}
	if len(suite.Benchmarks) != 2 {
		t.Fatalf("got %d benchmarks, want 2", len(suite.Benchmarks))
	}

	first := suite.Benchmarks[0]
	if first.Warmup != 50 || first.Iterations != 2000 {
		t.Errorf("explicit values not kept: %+v", first)
	}
	if first.ParsedTargetDuration() != 250*time.Millisecond {
		t.Errorf("target duration = %v, want 250ms", first.ParsedTargetDuration())
	}
	if first.ParsedUnit() != bench.Microseconds {
		t.Errorf("unit = %v, want µs", first.ParsedUnit())
	}

	// The second benchmark relies entirely on defaults.
	second := suite.Benchmarks[1]
	if second.Label != "sort" {
		t.Errorf("default label = %q, want workload name", second.Label)
	}
	if second.Warmup != 10 || second.Iterations != 1000 {
		t.Errorf("defaults not applied: %+v", second)
	}
	if second.ParsedTargetDuration() != 100*time.Millisecond {
		t.Errorf("default target duration = %v, want 100ms", second.ParsedTargetDuration())
	}
	if second.ParsedUnit() != bench.Nanoseconds {
		t.Errorf("default unit = %v, want ns", second.ParsedUnit())
	}
}

func TestParseSuite_InvalidYAML(t *testing.T) {
	_, err := ParseSuite([]byte("benchmarks: ["))
	if err == nil || !strings.Contains(err.Error(), "invalid YAML") {
		t.Errorf("expected YAML error, got %v", err)
	}
}

func TestParseSuite_SchemaViolations(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{
			name: "missing benchmarks",
			yaml: `name: empty`,
		},
		{
			name: "empty benchmarks list",
			yaml: "benchmarks: []",
		},
		{
			name: "missing workload",
			yaml: "benchmarks:\n  - label: no workload here",
		},
		{
			name: "unknown field",
			yaml: "benchmarks:\n  - workload: spin\n    concurrency: 8",
		},
		{
			name: "wrong type for warmup",
			yaml: "benchmarks:\n  - workload: spin\n    warmup: lots",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ParseSuite([]byte(tt.yaml)); err == nil {
				t.Errorf("expected schema error for:\n%s", tt.yaml)
			}
		})
	}
}

func TestParseSuite_SemanticViolations(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		wantMsg string
	}{
		{
			name:    "negative warmup",
			yaml:    "benchmarks:\n  - workload: spin\n    warmup: -1",
			wantMsg: "warmup iterations must be greater than zero",
		},
		{
			name:    "negative iterations",
			yaml:    "benchmarks:\n  - workload: spin\n    iterations: -10",
			wantMsg: "iterations must be greater than zero",
		},
		{
			name:    "unparseable duration",
			yaml:    "benchmarks:\n  - workload: spin\n    targetDuration: fast",
			wantMsg: "invalid duration",
		},
		{
			name:    "non-positive duration",
			yaml:    "benchmarks:\n  - workload: spin\n    targetDuration: 0s",
			wantMsg: "target duration must be greater than zero",
		},
		{
			name:    "unknown unit",
			yaml:    "benchmarks:\n  - workload: spin\n    unit: fortnights",
			wantMsg: "unknown time unit",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseSuite([]byte(tt.yaml))
			if err == nil {
				t.Fatalf("expected a validation error for:\n%s", tt.yaml)
			}
			if !strings.Contains(err.Error(), tt.wantMsg) {
				t.Errorf("error %q does not mention %q", err.Error(), tt.wantMsg)
			}
		})
	}
}

func TestParseSuite_CollectsAllErrors(t *testing.T) {
	yaml := `
benchmarks:
  - workload: spin
    warmup: -1
    iterations: -1
    targetDuration: nope
`
	_, err := ParseSuite([]byte(yaml))
	if err == nil {
		t.Fatal("expected validation errors")
	}

	verrs, ok := err.(*ValidationErrors)
	if !ok {
		t.Fatalf("expected *ValidationErrors, got %T: %v", err, err)
	}
	if len(verrs.Errors) != 3 {
		t.Errorf("got %d errors, want 3: %v", len(verrs.Errors), verrs)
	}
}
