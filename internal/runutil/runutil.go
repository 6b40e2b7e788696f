// internal/runutil/runutil.go
package runutil

import "runtime"

// EffectiveThreads returns the worker count for the splitting pipeline.
// n <= 0 selects the default of NumCPU-1 (leaving a core for the writer);
// any value is clamped to [1, NumCPU].
func EffectiveThreads(n int) int {
	return effectiveThreads(n, runtime.NumCPU())
}

func effectiveThreads(n, ncpu int) int {
	if ncpu < 1 {
		ncpu = 1
	}
	if n <= 0 {
		n = ncpu - 1
	}
	if n < 1 {
		n = 1
	}
	if n > ncpu {
		n = ncpu
	}
	return n
}
