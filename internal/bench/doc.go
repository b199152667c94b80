// Package bench implements the micro-benchmarking core: a calibrated
// measurement loop over a zero-argument workload and a statistical
// reducer over the recorded per-invocation latencies.
//
// A Runner executes the workload under a strict warmup / calibrate /
// measure protocol. Warmup invocations are untimed. A 1000-invocation
// calibration probe estimates per-invocation cost, and the measurement
// iteration count is rescaled to approach the configured target
// duration (clamped to [1000, 1000000]). Each measured invocation
// records one wall-clock sample at nanosecond resolution.
//
// # Quick Start
//
//	result := bench.New().
//		Label("fnv64 / 1KiB").
//		Warmup(50).
//		TargetDuration(250 * time.Millisecond).
//		Unit(bench.Microseconds).
//		Run(func() { hashBuffer(buf) })
//
//	fmt.Printf("mean: %.3f %s\n", result.Mean, result.Unit)
//
// Workloads that return a value go through RunValue, which retains the
// returned value behind an optimizer barrier so the compiler cannot
// elide the work:
//
//	result := bench.RunValue(bench.New(), func() uint64 {
//		return hashBuffer(buf)
//	})
//
// For zero-configuration use, Benchmark and BenchmarkValue run with
// the documented defaults (warmup=10, iterations=1000, target=100ms,
// unit=nanoseconds, label="Benchmark").
//
// The runner performs no recovery: a workload that panics during
// warmup, calibration, or measurement propagates that panic unmodified
// to the caller, and no Result is produced.
package bench
