package bench

import (
	"io"
	"os"
	"time"
)

const (
	// calibrationIterations is the fixed size of the calibration probe:
	// large enough to average out scheduler noise, cheap enough to run
	// before every measurement.
	calibrationIterations = 1000

	// minIterations guarantees a statistically meaningful sample size
	// for extremely fast workloads.
	minIterations = 1000

	// maxIterations bounds worst-case wall-clock cost and the size of
	// the stored sample sequence for extremely slow workloads.
	maxIterations = 1000000
)

// Runner configures and executes benchmarks. The zero value is not
// usable; construct with New and chain the fluent setters:
//
//	bench.New().Label("sort / 256").Warmup(100).Run(fn)
//
// Setters reject invalid values with a panic at configuration time.
// A Runner must be treated as read-only while a run is in progress;
// sequential reuse across runs is fine.
type Runner struct {
	warmupIterations int
	iterations       int
	targetDuration   time.Duration
	unit             Unit
	label            string
	diag             io.Writer
}

// New returns a Runner with the default configuration: warmup=10,
// iterations=1000, target duration=100ms, unit=nanoseconds,
// label="Benchmark".
func New() *Runner {
	return &Runner{
		warmupIterations: 10,
		iterations:       1000,
		targetDuration:   100 * time.Millisecond,
		unit:             Nanoseconds,
		label:            "Benchmark",
		diag:             os.Stderr,
	}
}

// Warmup sets the number of untimed priming invocations. Panics if
// count is not positive.
func (r *Runner) Warmup(count int) *Runner {
	if count <= 0 {
		panic("bench: warmup iterations must be greater than zero")
	}
	r.warmupIterations = count
	return r
}

// Iterations sets the nominal iteration count, used as-is when
// calibration cannot estimate per-invocation cost. Panics if count is
// not positive.
func (r *Runner) Iterations(count int) *Runner {
	if count <= 0 {
		panic("bench: iterations must be greater than zero")
	}
	r.iterations = count
	return r
}

// TargetDuration sets the desired total wall-clock span of the timed
// phase. Panics if d is not positive.
func (r *Runner) TargetDuration(d time.Duration) *Runner {
	if d <= 0 {
		panic("bench: target duration must be greater than zero")
	}
	r.targetDuration = d
	return r
}

// Unit sets the time unit derived statistics are reported in.
func (r *Runner) Unit(u Unit) *Runner {
	r.unit = u
	return r
}

// Label sets the benchmark's display name.
func (r *Runner) Label(name string) *Runner {
	r.label = name
	return r
}

// DiagnosticOutput redirects reducer diagnostics (the empty-sample
// warning) away from stderr.
func (r *Runner) DiagnosticOutput(w io.Writer) *Runner {
	r.diag = w
	return r
}

// Run benchmarks a workload with no return value. Each measured
// invocation is followed by a memory fence so the call cannot be
// elided or reordered across the timing boundary.
//
// A panic raised by fn at any phase propagates unmodified; no Result
// is produced in that case.
func (r *Runner) Run(fn func()) Result {
	return r.execute(func() {
		fn()
		fence()
	})
}

// RunValue benchmarks a workload returning a value. The returned value
// is retained behind an optimizer barrier after every invocation so
// the computation cannot be eliminated as dead code.
//
// This is a free function because Go methods cannot carry their own
// type parameters.
func RunValue[T any](r *Runner, fn func() T) Result {
	return r.execute(func() {
		keepAlive(fn())
	})
}

// Benchmark runs a void workload with the default configuration.
func Benchmark(fn func()) Result {
	return New().Run(fn)
}

// BenchmarkValue runs a value-returning workload with the default
// configuration.
func BenchmarkValue[T any](fn func() T) Result {
	return RunValue(New(), fn)
}

// execute drives the warmup/calibrate/measure/reduce protocol. invoke
// is the workload already wrapped in its optimizer barrier.
func (r *Runner) execute(invoke func()) Result {
	result := NewResult(r.label, r.unit)

	// Warmup: untimed, lets caches and lazy initialization settle.
	for i := 0; i < r.warmupIterations; i++ {
		invoke()
	}

	// Calibration probe: aggregate timing only, no per-call samples.
	start := time.Now()
	for i := 0; i < calibrationIterations; i++ {
		invoke()
	}
	probe := time.Since(start)

	iterations := adjustedIterations(r.targetDuration, probe, r.iterations)

	result.Samples = make([]time.Duration, 0, iterations)
	for i := 0; i < iterations; i++ {
		begin := time.Now()
		invoke()
		result.Samples = append(result.Samples, time.Since(begin))
	}

	result.Reduce(r.diag)
	return result
}

// adjustedIterations rescales the measurement iteration count so the
// timed phase approaches target, clamped to [minIterations,
// maxIterations]. A degenerate probe (non-positive total, e.g. clock
// resolution too coarse) falls back to the configured nominal count
// without clamping: the caller's explicit count is used as given.
func adjustedIterations(target, probeTotal time.Duration, nominal int) int {
	if probeTotal <= 0 {
		return nominal
	}
	perIteration := float64(probeTotal.Nanoseconds()) / float64(calibrationIterations)
	if perIteration <= 0 {
		return nominal
	}

	// Clamp before the integer conversion so an extreme ratio cannot
	// overflow int.
	ratio := float64(target.Nanoseconds()) / perIteration
	if ratio > maxIterations {
		return maxIterations
	}
	adjusted := int(ratio)
	if adjusted < minIterations {
		adjusted = minIterations
	}
	return adjusted
}
