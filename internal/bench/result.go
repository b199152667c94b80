package bench

import (
	"fmt"
	"io"
	"math"
	"time"

	"github.com/HdrHistogram/hdrhistogram-go"
)

// Histogram bounds: 1ns to 1 hour, 3 significant figures.
const (
	histogramMin     = 1
	histogramMax     = int64(time.Hour)
	histogramSigFigs = 3
)

// Result holds the samples recorded for one benchmark run and the
// statistics reduced from them. Min, Mean and StdDev are expressed in
// Unit; OpsPerSec is always derived from the nanosecond-resolution
// mean so throughput stays comparable across runs configured with
// different display units.
//
// The raw Samples slice is retained for inspection. Percentiles
// (P50..P99) come from an HDR histogram over the same samples and are
// reporting aids only; they never feed back into Min/Mean/StdDev.
type Result struct {
	Label   string
	Samples []time.Duration

	Min       float64
	Mean      float64
	StdDev    float64
	OpsPerSec float64
	Unit      Unit

	P50 time.Duration
	P90 time.Duration
	P95 time.Duration
	P99 time.Duration
}

// NewResult returns an empty result for the given label and unit with
// all derived statistics at their zero defaults.
func NewResult(label string, unit Unit) Result {
	return Result{Label: label, Unit: unit}
}

// Reduce computes Min, Mean, StdDev, OpsPerSec and the percentile
// fields from the recorded samples.
//
// Reducing an empty sample sequence is a usage error, not a fatal one:
// all derived fields stay at their zero defaults and a warning is
// written to diag. Callers must check len(r.Samples) > 0 before
// trusting zero-valued statistics.
//
// The mean converts the nanosecond sum to the target unit first and
// divides after; converting the aggregate rather than each sample
// keeps cumulative truncation error to a single conversion. StdDev is
// the sample standard deviation (n-1 divisor); a single sample has
// variance 0 by definition.
func (r *Result) Reduce(diag io.Writer) {
	if len(r.Samples) == 0 {
		fmt.Fprintf(diag, "Warning: no samples recorded for benchmark %q\n", r.Label)
		return
	}

	min := r.Samples[0]
	var sum time.Duration
	for _, d := range r.Samples {
		if d < min {
			min = d
		}
		sum += d
	}

	n := float64(len(r.Samples))
	r.Min = toUnit(min, r.Unit)
	r.Mean = toUnit(sum, r.Unit) / n

	var variance float64
	for _, d := range r.Samples {
		diff := toUnit(d, r.Unit) - r.Mean
		variance += diff * diff
	}
	if len(r.Samples) > 1 {
		variance /= n - 1
	} else {
		variance = 0
	}
	r.StdDev = math.Sqrt(variance)

	// Throughput from the nanosecond mean, independent of the display
	// unit. A mean at clock-noise level reports 0 rather than a value
	// approaching infinity.
	meanNS := toUnit(sum, Nanoseconds) / n
	if meanNS > 1e-9 {
		r.OpsPerSec = 1e9 / meanNS
	} else {
		r.OpsPerSec = 0
	}

	r.reducePercentiles()
}

// reducePercentiles records every sample into an HDR histogram and
// reads back the display percentiles.
func (r *Result) reducePercentiles() {
	hist := hdrhistogram.New(histogramMin, histogramMax, histogramSigFigs)
	for _, d := range r.Samples {
		ns := d.Nanoseconds()
		if ns < histogramMin {
			ns = histogramMin
		}
		if ns > histogramMax {
			ns = histogramMax
		}
		hist.RecordValue(ns)
	}

	r.P50 = time.Duration(hist.ValueAtQuantile(50))
	r.P90 = time.Duration(hist.ValueAtQuantile(90))
	r.P95 = time.Duration(hist.ValueAtQuantile(95))
	r.P99 = time.Duration(hist.ValueAtQuantile(99))
}
