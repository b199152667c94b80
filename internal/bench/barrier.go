package bench

import "sync/atomic"

var fenceSeq atomic.Uint64

// keepAlive is the optimizer barrier for value-returning workloads:
// the noinline pragma makes the use of v opaque, so the call that
// produced it cannot be eliminated as dead code.
//
//go:noinline
func keepAlive[T any](v T) {
	_ = v
}

// fence is the optimizer barrier for void workloads. The atomic
// read-modify-write acts as a full memory-ordering barrier, keeping
// the invocation from being reordered across the timing boundary.
func fence() {
	fenceSeq.Add(1)
}
