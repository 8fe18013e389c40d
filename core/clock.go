package core

import (
	"sync"
	"sync/atomic"
	"time"
)

// Clock supplies the wall-clock reading stamped onto machine-readable
// output at render time. Passing a fixed Clock makes renderers fully
// deterministic in tests.
type Clock func() time.Time

// SystemClock reads the system wall clock.
func SystemClock() time.Time {
	return time.Now()
}

var (
	coarseClockOnce sync.Once
	coarseNow       atomic.Pointer[time.Time]
)

// StartCoarseClock starts the background goroutine that caches
// time.Now() every 500µs. It is safe to call multiple times; the
// goroutine is started exactly once and runs for the lifetime of the
// process, which is intentional because logging typically spans the
// entire application lifecycle.
func StartCoarseClock() {
	coarseClockOnce.Do(func() {
		t := time.Now()
		coarseNow.Store(&t)
		go func() {
			ticker := time.NewTicker(500 * time.Microsecond)
			for range ticker.C {
				t := time.Now()
				coarseNow.Store(&t)
			}
		}()
	})
}

// CoarseClock is a Clock backed by the cached coarse time. Millisecond
// timestamps tolerate the sub-millisecond staleness, so high-rate
// machine-mode logging can use it instead of the system clock.
// StartCoarseClock must have been called first.
func CoarseClock() time.Time {
	return *coarseNow.Load()
}
