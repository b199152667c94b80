package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/wesleyorama2/tempo/internal/bench"
)

// ValidationError represents a suite configuration validation error.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation error on field '%s': %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// ValidationErrors is a collection of validation errors.
type ValidationErrors struct {
	Errors []*ValidationError
}

func (e *ValidationErrors) Error() string {
	if len(e.Errors) == 0 {
		return "no validation errors"
	}
	if len(e.Errors) == 1 {
		return e.Errors[0].Error()
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%d validation errors:\n", len(e.Errors)))
	for i, err := range e.Errors {
		sb.WriteString(fmt.Sprintf("  %d. %s\n", i+1, err.Error()))
	}
	return sb.String()
}

// Add adds an error to the collection.
func (e *ValidationErrors) Add(field, message string) {
	e.Errors = append(e.Errors, &ValidationError{Field: field, Message: message})
}

// HasErrors returns true if there are any errors.
func (e *ValidationErrors) HasErrors() bool {
	return len(e.Errors) > 0
}

// Validate checks the suite after defaults have been applied. All
// configuration errors are caught here, before any runner is built, so
// a suite file can never trip the runner's config-time preconditions.
//
// Returns nil if valid, or a ValidationErrors containing every
// violation found.
func (s *Suite) Validate() error {
	errs := &ValidationErrors{}

	if len(s.Benchmarks) == 0 {
		errs.Add("benchmarks", "at least one benchmark is required")
	}

	for i, b := range s.Benchmarks {
		validateBenchmark(i, b, errs)
	}

	if errs.HasErrors() {
		return errs
	}
	return nil
}

func validateBenchmark(i int, b *Benchmark, errs *ValidationErrors) {
	field := func(name string) string {
		return fmt.Sprintf("benchmarks[%d].%s", i, name)
	}

	if b.Workload == "" {
		errs.Add(field("workload"), "workload is required")
	}
	if b.Warmup <= 0 {
		errs.Add(field("warmup"), "warmup iterations must be greater than zero")
	}
	if b.Iterations <= 0 {
		errs.Add(field("iterations"), "iterations must be greater than zero")
	}

	d, err := time.ParseDuration(b.TargetDuration)
	if err != nil {
		errs.Add(field("targetDuration"), fmt.Sprintf("invalid duration %q", b.TargetDuration))
	} else if d <= 0 {
		errs.Add(field("targetDuration"), "target duration must be greater than zero")
	}

	if _, err := bench.ParseUnit(b.Unit); err != nil {
		errs.Add(field("unit"), err.Error())
	}
}
