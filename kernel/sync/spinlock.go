// Package sync provides busy-wait synchronization primitives for code that
// runs in kernel execution contexts. Such contexts may run with interrupts
// disabled, so the primitives in this package never sleep; they spin until
// the lock becomes available.
package sync

import (
	"runtime"
	"sync/atomic"
)

var (
	// TODO: replace with the scheduler yield call once context-switching
	// is implemented. Until then yielding to the Go runtime keeps
	// spinners from monopolizing a processor.
	yieldFn = runtime.Gosched
)

// Spinlock implements a lock where each task trying to acquire it busy-waits
// till the lock becomes available.
type Spinlock struct {
	state uint32
}

// Acquire blocks until the lock can be acquired by the currently active task.
// Any attempt to re-acquire a lock already held by the current task will cause
// a deadlock.
func (l *Spinlock) Acquire() {
	for !atomic.CompareAndSwapUint32(&l.state, 0, 1) {
		yieldFn()
	}
}

// TryToAcquire attempts to acquire the lock and returns true if the lock could
// be acquired or false otherwise.
func (l *Spinlock) TryToAcquire() bool {
	return atomic.SwapUint32(&l.state, 1) == 0
}

// Release relinquishes a held lock allowing other tasks to acquire it. Calling
// Release while the lock is free has no effect.
func (l *Spinlock) Release() {
	atomic.StoreUint32(&l.state, 0)
}
