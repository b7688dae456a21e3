package sync

import "sync/atomic"

// writerBit marks the lock state as exclusively held. The remaining bits
// count active readers.
const writerBit uint32 = 1 << 31

// RWSpinlock implements a reader/writer lock with busy-wait semantics. Any
// number of readers may hold the lock concurrently; writers wait for all
// readers to drain and then hold the lock exclusively. Like Spinlock, the
// lock never sleeps and is therefore safe to use in contexts where interrupts
// are disabled.
type RWSpinlock struct {
	state uint32
}

// RAcquire blocks until a read (shared) lock can be acquired.
func (l *RWSpinlock) RAcquire() {
	for {
		cur := atomic.LoadUint32(&l.state)
		if cur&writerBit == 0 && atomic.CompareAndSwapUint32(&l.state, cur, cur+1) {
			return
		}
		yieldFn()
	}
}

// RRelease releases a held read lock.
func (l *RWSpinlock) RRelease() {
	atomic.AddUint32(&l.state, ^uint32(0))
}

// Acquire blocks until the write (exclusive) lock can be acquired. The lock
// is only granted when no readers and no other writer hold it.
func (l *RWSpinlock) Acquire() {
	for !atomic.CompareAndSwapUint32(&l.state, 0, writerBit) {
		yieldFn()
	}
}

// Release relinquishes a held write lock.
func (l *RWSpinlock) Release() {
	atomic.StoreUint32(&l.state, 0)
}
