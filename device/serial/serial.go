// Package serial provides the diagnostic serial channel that the console
// subsystem mirrors its output to. Delivery is best-effort: bytes sent before
// an output port is attached are captured in a small ring buffer and replayed
// on attach; write errors from the attached port are ignored.
package serial

import (
	"io"

	"github.com/Vitus213/DragonOS/kernel/sync"
)

// earlyBufferSize defines the size of the ring buffer capturing bytes sent
// before a port is attached. It must be a power of 2.
const earlyBufferSize = 1024

var (
	lock sync.Spinlock
	out  io.Writer

	earlyBuf       [earlyBufferSize]byte
	earlyR, earlyW int
)

// SetOutput attaches the output port for the diagnostic channel and replays
// any buffered early bytes to it. Passing nil detaches the port.
func SetOutput(w io.Writer) {
	lock.Acquire()
	defer lock.Release()

	out = w
	if w == nil {
		return
	}

	for earlyR != earlyW {
		writeByte(earlyBuf[earlyR])
		earlyR = (earlyR + 1) & (earlyBufferSize - 1)
	}
}

// Send writes p to the diagnostic channel. Sends never fail and never block
// on the receiver; when no port is attached the bytes are buffered and the
// oldest buffered bytes are dropped on overflow.
func Send(p []byte) {
	lock.Acquire()
	defer lock.Release()

	if out != nil {
		out.Write(p)
		return
	}

	for _, b := range p {
		earlyBuf[earlyW] = b
		earlyW = (earlyW + 1) & (earlyBufferSize - 1)
		if earlyR == earlyW {
			earlyR = (earlyR + 1) & (earlyBufferSize - 1)
		}
	}
}

// SendString writes s to the diagnostic channel.
func SendString(s string) {
	Send([]byte(s))
}

func writeByte(b byte) {
	var tmp [1]byte
	tmp[0] = b
	out.Write(tmp[:])
}
