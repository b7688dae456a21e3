package textui

import (
	"sync/atomic"

	"github.com/Vitus213/DragonOS/kernel"
	"github.com/Vitus213/DragonOS/kernel/sync"
)

// LineID addresses a virtual line within a window's scrollback ring.
type LineID int32

// Check returns true if the id is a valid line address for a window holding
// vlineSum virtual lines.
func (id LineID) Check(vlineSum int32) bool {
	return id >= 0 && int32(id) < vlineSum
}

// ColumnIndex addresses a character cell within a line.
type ColumnIndex int32

// Check returns true if the index is a valid cell address for a line holding
// charsPerLine cells.
func (idx ColumnIndex) Check(charsPerLine int32) bool {
	return idx >= 0 && int32(idx) < charsPerLine
}

// WindowID uniquely identifies a console window.
type WindowID uint32

var nextWindowID uint32

func allocWindowID() WindowID {
	return WindowID(atomic.AddUint32(&nextWindowID, 1))
}

// WindowFlag is a bitmask of window capabilities.
type WindowFlag uint8

const (
	// WindowFlagChromatic marks a window that renders colored characters.
	// Windows without this flag cannot currently render at all.
	WindowFlagChromatic WindowFlag = 1 << 0
)

// Cell is one character position of a line: an optional character plus its
// foreground and background colors. The zero Cell is blank and renders as a
// background-filled glyph area.
type Cell struct {
	ch rune
	fg Color
	bg Color
}

// Blank returns true if no character has been written to the cell.
func (c Cell) Blank() bool { return c.ch == 0 }

// Rune returns the character stored in the cell; blank cells read as a
// space.
func (c Cell) Rune() rune {
	if c.ch == 0 {
		return ' '
	}
	return c.ch
}

// Line is one row of a window's scrollback ring: a fixed-length sequence of
// cells plus the column where the next character will be written.
type Line struct {
	cells []Cell
	index ColumnIndex
}

func (l *Line) reset() {
	for i := range l.cells {
		l.cells[i] = Cell{}
	}
	l.index = 0
}

// Window is an independently scrollable console surface: a fixed-size
// circular array of lines, a write cursor and a pointer tracking which part
// of the ring is in view. All state is guarded by a single spinlock which the
// character router holds for the duration of a whole string.
type Window struct {
	lock sync.Spinlock

	id    WindowID
	flags WindowFlag

	// The scrollback ring. vlineOperating is the line the cursor is on,
	// topVline the line shown on the first physical row. vlinesUsed
	// counts the ring lines holding live content; it starts at 1 because
	// the cursor always occupies a line.
	lines          []Line
	vlineSum       int32
	vlinesUsed     int32
	topVline       LineID
	vlineOperating LineID
	charsPerLine   int32

	// Rendering wiring, set when the window is attached to the console.
	renderer    cellRenderer
	visibleRows int32
}

func newWindow(flags WindowFlag, vlineSum, charsPerLine int32) *Window {
	w := &Window{
		id:           allocWindowID(),
		flags:        flags,
		lines:        make([]Line, vlineSum),
		vlineSum:     vlineSum,
		vlinesUsed:   1,
		charsPerLine: charsPerLine,
	}

	for i := range w.lines {
		w.lines[i].cells = make([]Cell, charsPerLine)
	}

	return w
}

// attachTo connects the window to the renderer that turns its cells into
// pixels and records how many of its rows are physically visible.
func (w *Window) attachTo(r cellRenderer, visibleRows int32) {
	w.renderer = r
	w.visibleRows = visibleRows
}

// ID returns the window identifier.
func (w *Window) ID() WindowID { return w.id }

// refreshChars re-renders count consecutive cells of the given virtual line,
// starting at column start. Lines that do not currently map to a physical row
// keep their contents and are drawn when the view moves over them.
func (w *Window) refreshChars(vline LineID, start ColumnIndex, count int32) *kernel.Error {
	if !vline.Check(w.vlineSum) || start < 0 || int32(start)+count > w.charsPerLine {
		return ErrInvalidArgument
	}

	if w.flags&WindowFlagChromatic == 0 {
		return nil
	}

	// Translate the virtual line to a physical row. Lines "behind" the top
	// of the view in ring order sit below the bottom of the screen.
	row := int32(vline - w.topVline)
	if row < 0 {
		row += w.visibleRows
	}
	if row < 0 || row >= w.visibleRows {
		return nil
	}

	line := &w.lines[vline]
	for i := int32(0); i < count; i++ {
		col := start + ColumnIndex(i)
		if err := w.renderer.DrawCell(row, int32(col), line.cells[col]); err != nil {
			return err
		}
	}

	return nil
}

// refreshLine re-renders one whole virtual line.
func (w *Window) refreshLine(vline LineID) *kernel.Error {
	if w.flags&WindowFlagChromatic == 0 {
		return ErrUnsupportedWindowMode
	}

	return w.refreshChars(vline, 0, w.charsPerLine)
}

// refreshLines re-renders count virtual lines starting at start, wrapping
// around the ring.
func (w *Window) refreshLines(start LineID, count int32) *kernel.Error {
	remaining := count
	for i := int32(start); i < w.vlineSum && remaining > 0; i, remaining = i+1, remaining-1 {
		if err := w.refreshLine(LineID(i)); err != nil {
			return err
		}
	}

	for i := int32(0); remaining > 0; i, remaining = i+1, remaining-1 {
		if err := w.refreshLine(LineID(i)); err != nil {
			return err
		}
	}

	return nil
}

// newLine advances the cursor to the next ring line, clearing it. When every
// physical row is already in use the view scrolls up by one line and all
// visible rows are redrawn.
func (w *Window) newLine() *kernel.Error {
	w.vlineOperating++
	if !w.vlineOperating.Check(w.vlineSum) {
		w.vlineOperating = 0
	}
	w.lines[w.vlineOperating].reset()

	if w.vlinesUsed == w.visibleRows {
		w.topVline++
		if !w.topVline.Check(w.vlineSum) {
			w.topVline = 0
		}

		return w.refreshLines(w.topVline, w.visibleRows)
	}

	w.vlinesUsed++
	return nil
}

// truePutChar stores a printable character at the cursor, renders that cell
// and advances the column. The last column of a line is reserved for the
// cursor: writing into it triggers a newline.
func (w *Window) truePutChar(r rune, fg, bg Color) *kernel.Error {
	if w.flags&WindowFlagChromatic == 0 {
		return ErrUnsupportedWindowMode
	}

	line := &w.lines[w.vlineOperating]
	col := line.index
	if col.Check(w.charsPerLine) {
		line.cells[col] = Cell{ch: r, fg: fg, bg: bg}
	}
	line.index++

	if err := w.refreshChars(w.vlineOperating, col, 1); err != nil {
		return err
	}

	if !col.Check(w.charsPerLine - 1) {
		return w.newLine()
	}

	return nil
}

// backspace moves the cursor back one cell and blanks it. Backing out of
// column 0 drops the current line altogether: the cursor returns to the
// previous ring line at its stored column, unscrolling the view if it had
// scrolled past capacity.
func (w *Window) backspace(bg Color) *kernel.Error {
	line := &w.lines[w.vlineOperating]
	line.index--
	col := line.index

	if col >= 0 {
		line.cells[col].ch = ' '
		line.cells[col].bg = bg
		return w.refreshChars(w.vlineOperating, col, 1)
	}

	line.reset()
	w.vlineOperating--
	if w.vlineOperating < 0 {
		w.vlineOperating = LineID(w.vlineSum - 1)
	}

	if w.vlinesUsed > w.visibleRows {
		w.topVline--
		if w.topVline < 0 {
			w.topVline = LineID(w.vlineSum - 1)
		}
	}
	w.vlinesUsed--

	return w.refreshLines(w.topVline, w.visibleRows)
}

// putChar feeds one character through the cursor state machine. The caller
// must hold the window lock. When toWindow is false the character leaves the
// window state untouched (the router still mirrors it to serial).
func (w *Window) putChar(r rune, fg, bg Color, toWindow bool) *kernel.Error {
	if r == 0 || r == '\r' {
		return nil
	}

	if w.flags&WindowFlagChromatic == 0 {
		return ErrUnsupportedWindowMode
	}

	if !toWindow {
		return nil
	}

	switch r {
	case '\n':
		return w.newLine()
	case '\t':
		spaces := 8 - int32(w.lines[w.vlineOperating].index)%8
		for ; spaces > 0; spaces-- {
			if err := w.truePutChar(' ', fg, bg); err != nil {
				return err
			}
		}
		return nil
	case '\b':
		return w.backspace(bg)
	default:
		if !w.lines[w.vlineOperating].index.Check(w.charsPerLine) {
			if err := w.newLine(); err != nil {
				return err
			}
		}
		return w.truePutChar(r, fg, bg)
	}
}
