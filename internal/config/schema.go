// Package config provides parsing and validation for benchmark suite
// files.
package config

import (
	"time"

	"github.com/wesleyorama2/tempo/internal/bench"
)

// Suite is the root configuration of a benchmark suite file.
//
// Example YAML:
//
//	name: "codec micro-suite"
//	benchmarks:
//	  - label: "fnv64 / 1KiB"
//	    workload: fnv64
//	    warmup: 50
//	    iterations: 2000
//	    targetDuration: 250ms
//	    unit: ns
type Suite struct {
	// Name of the suite (for reporting)
	Name string `json:"name" yaml:"name"`

	// Benchmarks lists the runs to execute, in order
	Benchmarks []*Benchmark `json:"benchmarks" yaml:"benchmarks"`
}

// Benchmark configures a single benchmark run.
type Benchmark struct {
	// Label is the display name; defaults to the workload name
	Label string `json:"label,omitempty" yaml:"label,omitempty"`

	// Workload names a built-in workload to benchmark
	Workload string `json:"workload" yaml:"workload"`

	// Warmup is the number of untimed priming invocations (default 10)
	Warmup int `json:"warmup,omitempty" yaml:"warmup,omitempty"`

	// Iterations is the nominal iteration count used when calibration
	// cannot adjust it (default 1000)
	Iterations int `json:"iterations,omitempty" yaml:"iterations,omitempty"`

	// TargetDuration is the desired total span of the timed phase,
	// e.g. "100ms", "2s" (default 100ms)
	TargetDuration string `json:"targetDuration,omitempty" yaml:"targetDuration,omitempty"`

	// Unit is the reporting unit: ns, us, ms or s (default ns)
	Unit string `json:"unit,omitempty" yaml:"unit,omitempty"`
}

// ParsedTargetDuration returns the benchmark's target duration, which
// Validate has already checked for well-formedness.
func (b *Benchmark) ParsedTargetDuration() time.Duration {
	d, _ := time.ParseDuration(b.TargetDuration)
	return d
}

// ParsedUnit returns the benchmark's reporting unit, which Validate
// has already checked.
func (b *Benchmark) ParsedUnit() bench.Unit {
	u, _ := bench.ParseUnit(b.Unit)
	return u
}

// ApplyDefaults fills unset fields with the documented defaults.
func ApplyDefaults(s *Suite) {
	if s.Name == "" {
		s.Name = "Benchmark Suite"
	}
	for _, b := range s.Benchmarks {
		if b.Label == "" {
			b.Label = b.Workload
		}
		if b.Warmup == 0 {
			b.Warmup = 10
		}
		if b.Iterations == 0 {
			b.Iterations = 1000
		}
		if b.TargetDuration == "" {
			b.TargetDuration = "100ms"
		}
		if b.Unit == "" {
			b.Unit = "ns"
		}
	}
}
