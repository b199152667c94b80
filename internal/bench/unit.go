package bench

import (
	"fmt"
	"time"
)

// Unit is the time unit all derived statistics of a Result are
// expressed in. Ops/sec is unit-independent and always derived from
// the nanosecond-resolution mean.
type Unit int

const (
	// Nanoseconds reports statistics in nanoseconds.
	Nanoseconds Unit = iota
	// Microseconds reports statistics in microseconds.
	Microseconds
	// Milliseconds reports statistics in milliseconds.
	Milliseconds
	// Seconds reports statistics in seconds.
	Seconds
)

// String returns the display suffix for the unit ("ns", "µs", "ms", "s").
func (u Unit) String() string {
	switch u {
	case Nanoseconds:
		return "ns"
	case Microseconds:
		return "µs"
	case Milliseconds:
		return "ms"
	case Seconds:
		return "s"
	default:
		return "unknown"
	}
}

// Precision returns the number of decimal places appropriate for
// displaying values in this unit.
func (u Unit) Precision() int {
	switch u {
	case Nanoseconds:
		return 2
	case Microseconds:
		return 3
	case Milliseconds:
		return 4
	default:
		return 6
	}
}

// ParseUnit parses a unit name. Accepted spellings: "ns"/"nanoseconds",
// "us"/"µs"/"microseconds", "ms"/"milliseconds", "s"/"seconds".
func ParseUnit(s string) (Unit, error) {
	switch s {
	case "ns", "nanoseconds":
		return Nanoseconds, nil
	case "us", "µs", "microseconds":
		return Microseconds, nil
	case "ms", "milliseconds":
		return Milliseconds, nil
	case "s", "seconds":
		return Seconds, nil
	default:
		return Nanoseconds, fmt.Errorf("unknown time unit %q", s)
	}
}

// toUnit converts d to the given unit with truncating integer division,
// matching time.Duration's own conversion semantics: sub-unit
// remainders are discarded, not rounded. The truncated count is then
// widened to float64.
func toUnit(d time.Duration, u Unit) float64 {
	switch u {
	case Nanoseconds:
		return float64(d.Nanoseconds())
	case Microseconds:
		return float64(d.Microseconds())
	case Milliseconds:
		return float64(d.Milliseconds())
	case Seconds:
		return float64(d / time.Second)
	default:
		panic(fmt.Sprintf("bench: invalid unit %d", int(u)))
	}
}
