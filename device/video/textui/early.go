package textui

import (
	"github.com/Vitus213/DragonOS/device/video/screen"
	"github.com/Vitus213/DragonOS/device/video/textui/font"
	"github.com/Vitus213/DragonOS/kernel"
	"github.com/Vitus213/DragonOS/kernel/sync"
)

// The pre-initialization cursor. Early boot output shares one screen-sized
// region with no scrollback; past the bottom row the cursor wraps back to the
// top.
var (
	earlyLock   sync.Spinlock
	earlyLine   int32
	earlyColumn int32
)

// earlyPutString renders text straight into the boot framebuffer before the
// console framework exists. Only direct device buffers can be written this
// early; otherwise the text reaches the serial channel only.
func earlyPutString(text string, fg, bg Color) *kernel.Error {
	earlyLock.Acquire()
	defer earlyLock.Release()

	toWindow := WindowOutputEnabled()
	for _, r := range text {
		if r == 0 || r == '\r' {
			continue
		}

		mirrorToSerial(r)
		if toWindow {
			earlyPutChar(r, fg, bg)
		}
	}

	return nil
}

func earlyPutChar(r rune, fg, bg Color) {
	buf, ok := screen.DeviceBuffer()
	if !ok || buf.Kind() != screen.BufferKindDirect {
		return
	}

	rows := int32(buf.Height() / CharHeight)
	cols := int32(buf.Width() / CharWidth)
	if rows == 0 || cols == 0 {
		return
	}

	if earlyLine >= rows {
		earlyLine = 0
		earlyColumn = 0
	}

	switch r {
	case '\n':
		earlyLine++
		earlyColumn = 0
	case '\t':
		for n := 8 - earlyColumn%8; n > 0; n-- {
			earlyPutPrintable(&buf, ' ', fg, bg, rows, cols)
		}
	case '\b':
		if earlyColumn > 0 {
			earlyColumn--
			drawCell(&buf, font.Default(), earlyLine, earlyColumn, Cell{bg: bg})
		}
	default:
		earlyPutPrintable(&buf, r, fg, bg, rows, cols)
	}
}

func earlyPutPrintable(buf *screen.BufferInfo, r rune, fg, bg Color, rows, cols int32) {
	if earlyLine >= rows {
		earlyLine = 0
		earlyColumn = 0
	}

	drawCell(buf, font.Default(), earlyLine, earlyColumn, Cell{ch: r, fg: fg, bg: bg})

	earlyColumn++
	if earlyColumn >= cols {
		earlyColumn = 0
		earlyLine++
	}
}
