// Package textui implements the kernel text console: a set of independently
// scrollable windows backed by circular scrollback buffers, rendered glyph by
// glyph into the active framebuffer. Console output is mirrored to the
// diagnostic serial channel; before the console singleton is initialized a
// raw framebuffer path renders early boot output.
package textui

import (
	"sync/atomic"

	"github.com/Vitus213/DragonOS/device/serial"
	"github.com/Vitus213/DragonOS/device/video/screen"
	"github.com/Vitus213/DragonOS/device/video/textui/font"
	"github.com/Vitus213/DragonOS/kernel"
	"github.com/Vitus213/DragonOS/kernel/kfmt"
	"github.com/Vitus213/DragonOS/kernel/sync"
)

// Pixel dimensions of one character cell.
const (
	CharWidth  = 8
	CharHeight = 16
)

// framework is the console singleton. It owns the framebuffer metadata, the
// window registry and the current/default output windows.
type framework struct {
	metaLock sync.RWSpinlock
	meta     screen.Metadata

	windowsLock sync.Spinlock
	windows     []*Window
	current     *Window
	defaultWin  *Window

	// visibleRows is how many character rows the framebuffer can show.
	// Computed once at initialization; windows are not resized when the
	// framebuffer changes.
	visibleRows int32

	renderer *fbRenderer
}

var (
	initGuard   uint32
	initialized uint32
	fw          *framework

	putToWindow uint32
)

// EnableWindowOutput enables rendering of console output into the current
// window.
func EnableWindowOutput() {
	atomic.StoreUint32(&putToWindow, 1)
}

// DisableWindowOutput disables rendering of console output into the current
// window. Output is still mirrored to the serial channel.
func DisableWindowOutput() {
	atomic.StoreUint32(&putToWindow, 0)
}

// WindowOutputEnabled reports whether console output is rendered into the
// current window.
func WindowOutputEnabled() bool {
	return atomic.LoadUint32(&putToWindow) == 1
}

// Init constructs the console singleton over the framebuffer recorded by the
// boot code, creates its first window and registers the console with the
// screen manager. Kernel log output is routed to the console once
// registration succeeds. A second invocation fails with
// ErrAlreadyInitialized.
func Init() *kernel.Error {
	if !atomic.CompareAndSwapUint32(&initGuard, 0, 1) {
		return ErrAlreadyInitialized
	}

	buf, ok := screen.DeviceBuffer()
	if !ok {
		atomic.StoreUint32(&initGuard, 0)
		return screen.ErrNoDeviceBuffer
	}

	f := &framework{
		meta: screen.Metadata{
			Name:   "textui",
			Type:   screen.FrameworkTypeText,
			Buffer: buf,
		},
		visibleRows: int32(buf.Height() / CharHeight),
	}
	f.renderer = &fbRenderer{font: font.Default(), buffer: f.bufferInfo}

	win := newWindow(WindowFlagChromatic, f.visibleRows, int32(buf.Width()/CharWidth))
	win.attachTo(f.renderer, f.visibleRows)
	f.windows = append(f.windows, win)
	f.current = win
	f.defaultWin = win
	fw = f

	if err := screen.Register(f); err != nil {
		return err
	}

	serial.SendString("\ntext ui initialized\n")
	atomic.StoreUint32(&initialized, 1)

	kfmt.SetOutputSink(consoleWriter{})
	return nil
}

// PutString writes text to the current console window using the supplied
// colors. The window lock is held for the whole string so that concurrent
// writers cannot interleave below string granularity. Every character is
// mirrored to the serial channel; a newline additionally mirrors a carriage
// return. Before Init the string is rendered through the raw framebuffer
// path instead.
func PutString(text string, fg, bg Color) *kernel.Error {
	if atomic.LoadUint32(&initialized) == 0 {
		return earlyPutString(text, fg, bg)
	}

	win := fw.currentWindow()
	win.lock.Acquire()
	defer win.lock.Release()

	toWindow := WindowOutputEnabled()
	for _, r := range text {
		if r != 0 && r != '\r' {
			mirrorToSerial(r)
		}

		if err := win.putChar(r, fg, bg, toWindow); err != nil {
			return err
		}
	}

	return nil
}

// NewWindow creates an additional console window sized to the current
// framebuffer and registers it with the console.
func NewWindow(flags WindowFlag) (*Window, *kernel.Error) {
	if atomic.LoadUint32(&initialized) == 0 {
		return nil, ErrNotInitialized
	}

	f := fw
	buf, err := f.bufferInfo()
	if err != nil {
		return nil, err
	}

	win := newWindow(flags, f.visibleRows, int32(buf.Width()/CharWidth))
	win.attachTo(f.renderer, f.visibleRows)

	f.windowsLock.Acquire()
	f.windows = append(f.windows, win)
	f.windowsLock.Release()

	return win, nil
}

// CurrentWindow returns the window that receives console output.
func CurrentWindow() (*Window, *kernel.Error) {
	if atomic.LoadUint32(&initialized) == 0 {
		return nil, ErrNotInitialized
	}

	return fw.currentWindow(), nil
}

// SetCurrentWindow directs subsequent console output at win. Passing nil
// reverts to the default window created at initialization.
func SetCurrentWindow(win *Window) *kernel.Error {
	if atomic.LoadUint32(&initialized) == 0 {
		return ErrNotInitialized
	}

	fw.windowsLock.Acquire()
	if win == nil {
		fw.current = fw.defaultWin
	} else {
		fw.current = win
	}
	fw.windowsLock.Release()

	return nil
}

// Metadata returns the metadata of the console framework including the
// framebuffer it renders into.
func Metadata() (screen.Metadata, *kernel.Error) {
	if atomic.LoadUint32(&initialized) == 0 {
		return screen.Metadata{}, ErrNotInitialized
	}

	return fw.Metadata()
}

func (f *framework) currentWindow() *Window {
	f.windowsLock.Acquire()
	defer f.windowsLock.Release()

	return f.current
}

func (f *framework) bufferInfo() (screen.BufferInfo, *kernel.Error) {
	f.metaLock.RAcquire()
	defer f.metaLock.RRelease()

	return f.meta.Buffer, nil
}

// Name implements screen.Framework.
func (f *framework) Name() string { return "textui" }

// Install implements screen.Framework.
func (f *framework) Install() *kernel.Error {
	serial.SendString("\ntextui install handler\n")
	return nil
}

// Uninstall implements screen.Framework.
func (f *framework) Uninstall() *kernel.Error { return nil }

// Enable implements screen.Framework.
func (f *framework) Enable() *kernel.Error {
	EnableWindowOutput()
	return nil
}

// Disable implements screen.Framework. The console keeps mirroring output to
// serial while disabled.
func (f *framework) Disable() *kernel.Error {
	DisableWindowOutput()
	return nil
}

// Change implements screen.Framework. It swaps the console framebuffer and
// copies the overlapping pixel rows of the old buffer into the new one.
// Existing windows keep their dimensions.
func (f *framework) Change(info screen.BufferInfo) *kernel.Error {
	f.metaLock.Acquire()
	old := f.meta.Buffer
	f.meta.Buffer = info
	f.metaLock.Release()

	info.CopyOverlapFrom(old)
	return nil
}

// Metadata implements screen.Framework.
func (f *framework) Metadata() (screen.Metadata, *kernel.Error) {
	f.metaLock.RAcquire()
	defer f.metaLock.RRelease()

	return f.meta, nil
}

// consoleWriter adapts the console to an io.Writer so that the kernel
// formatter can print through it.
type consoleWriter struct{}

func (consoleWriter) Write(p []byte) (int, error) {
	if err := PutString(string(p), ColorWhite, ColorBlack); err != nil {
		return 0, err
	}

	return len(p), nil
}

// mirrorToSerial sends one character to the diagnostic serial channel,
// following a newline with a carriage return.
func mirrorToSerial(r rune) {
	var buf [4]byte
	n := encodeRune(buf[:], r)
	serial.Send(buf[:n])

	if r == '\n' {
		serial.SendString("\r")
	}
}

func encodeRune(dst []byte, r rune) int {
	switch {
	case r < 0x80:
		dst[0] = byte(r)
		return 1
	case r < 0x800:
		dst[0] = 0xc0 | byte(r>>6)
		dst[1] = 0x80 | byte(r)&0x3f
		return 2
	case r < 0x10000:
		dst[0] = 0xe0 | byte(r>>12)
		dst[1] = 0x80 | byte(r>>6)&0x3f
		dst[2] = 0x80 | byte(r)&0x3f
		return 3
	default:
		dst[0] = 0xf0 | byte(r>>18)
		dst[1] = 0x80 | byte(r>>12)&0x3f
		dst[2] = 0x80 | byte(r>>6)&0x3f
		dst[3] = 0x80 | byte(r)&0x3f
		return 4
	}
}
