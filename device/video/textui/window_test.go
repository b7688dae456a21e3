package textui

import (
	"testing"

	"github.com/Vitus213/DragonOS/kernel"
)

type renderOp struct {
	row, col int32
	cell     Cell
}

type mockRenderer struct {
	ops []renderOp
	err *kernel.Error
}

func (r *mockRenderer) DrawCell(row, col int32, cell Cell) *kernel.Error {
	if r.err != nil {
		return r.err
	}

	r.ops = append(r.ops, renderOp{row: row, col: col, cell: cell})
	return nil
}

func testWindow(flags WindowFlag, vlineSum, charsPerLine, visibleRows int32) (*Window, *mockRenderer) {
	r := &mockRenderer{}
	w := newWindow(flags, vlineSum, charsPerLine)
	w.attachTo(r, visibleRows)
	return w, r
}

func feed(t *testing.T, w *Window, text string) {
	t.Helper()

	for _, r := range text {
		if err := w.putChar(r, ColorWhite, ColorBlack, true); err != nil {
			t.Fatalf("putChar(%q): unexpected error: %v", r, err)
		}
	}
}

func lineText(w *Window, id LineID) string {
	runes := make([]rune, len(w.lines[id].cells))
	for i, c := range w.lines[id].cells {
		runes[i] = c.Rune()
	}

	return string(runes)
}

func TestLineFillBoundary(t *testing.T) {
	// The last column is reserved for the cursor: charsPerLine-1
	// printable characters fit without a line change; the next one
	// triggers a newline.
	w, _ := testWindow(WindowFlagChromatic, 4, 8, 2)

	feed(t, w, "ABCDEFG")
	if w.vlineOperating != 0 || w.lines[0].index != 7 || w.vlinesUsed != 1 {
		t.Fatalf("expected cursor at line 0 column 7 with 1 line used; got line %d column %d used %d",
			w.vlineOperating, w.lines[0].index, w.vlinesUsed)
	}

	feed(t, w, "H")
	if w.vlineOperating != 1 || w.lines[1].index != 0 || w.vlinesUsed != 2 {
		t.Fatalf("expected cursor at start of line 1 with 2 lines used; got line %d column %d used %d",
			w.vlineOperating, w.lines[1].index, w.vlinesUsed)
	}

	if exp := "ABCDEFGH"; lineText(w, 0) != exp {
		t.Fatalf("expected line 0 to contain %q; got %q", exp, lineText(w, 0))
	}
}

func TestNewlineAndScroll(t *testing.T) {
	w, _ := testWindow(WindowFlagChromatic, 4, 8, 2)

	// Fill one line and break it: the second ring line comes into use
	// without scrolling.
	feed(t, w, "ABCDEFG\n")
	if w.vlineOperating != 1 || w.vlinesUsed != 2 || w.topVline != 0 {
		t.Fatalf("expected line 1, 2 lines used, top 0; got line %d used %d top %d",
			w.vlineOperating, w.vlinesUsed, w.topVline)
	}
	if exp := "ABCDEFG "; lineText(w, 0) != exp {
		t.Fatalf("expected line 0 to contain %q; got %q", exp, lineText(w, 0))
	}

	// Both physical rows are in use now, so the next newline scrolls the
	// view up by one line instead of growing it.
	feed(t, w, "\n")
	if w.vlineOperating != 2 || w.vlinesUsed != 2 || w.topVline != 1 {
		t.Fatalf("expected line 2, 2 lines used, top 1; got line %d used %d top %d",
			w.vlineOperating, w.vlinesUsed, w.topVline)
	}

	feed(t, w, "\n")
	if w.topVline != 2 || w.vlinesUsed != 2 {
		t.Fatalf("expected top 2 after another scroll; got top %d used %d", w.topVline, w.vlinesUsed)
	}
}

func TestScrollRedrawsVisibleRows(t *testing.T) {
	w, r := testWindow(WindowFlagChromatic, 4, 8, 2)

	feed(t, w, "A\n")
	r.ops = nil

	// This newline scrolls; every visible row must be redrawn.
	feed(t, w, "\n")
	if exp := 2 * 8; len(r.ops) != exp {
		t.Fatalf("expected %d cells to be redrawn on scroll; got %d", exp, len(r.ops))
	}
}

func TestTabStops(t *testing.T) {
	specs := []struct {
		startCol int32
		expCol   ColumnIndex
	}{
		{0, 8},
		{2, 8},
		{7, 8},
		{8, 16},
		{13, 16},
	}

	for specIndex, spec := range specs {
		w, _ := testWindow(WindowFlagChromatic, 4, 32, 4)
		for i := int32(0); i < spec.startCol; i++ {
			feed(t, w, "x")
		}

		feed(t, w, "\t")
		if got := w.lines[0].index; got != spec.expCol {
			t.Errorf("[spec %d] expected tab from column %d to advance to %d; got %d",
				specIndex, spec.startCol, spec.expCol, got)
		}
	}
}

func TestTabAcrossLineBoundary(t *testing.T) {
	// Tab from column 2 of a 4-column line requests 6 spaces: the second
	// space lands in the reserved cursor column and breaks the line, the
	// rest continue on the fresh line and break it again.
	w, _ := testWindow(WindowFlagChromatic, 8, 4, 8)

	feed(t, w, "AB\t")
	if w.vlineOperating != 2 || w.vlinesUsed != 3 {
		t.Fatalf("expected cursor on line 2 with 3 lines used; got line %d used %d",
			w.vlineOperating, w.vlinesUsed)
	}
	if exp := "AB  "; lineText(w, 0) != exp {
		t.Fatalf("expected line 0 to contain %q; got %q", exp, lineText(w, 0))
	}
	if exp := "    "; lineText(w, 1) != exp {
		t.Fatalf("expected line 1 to contain %q; got %q", exp, lineText(w, 1))
	}
}

func TestBackspaceInLine(t *testing.T) {
	w, r := testWindow(WindowFlagChromatic, 4, 8, 4)

	feed(t, w, "AB")
	r.ops = nil

	feed(t, w, "\b")
	if w.lines[0].index != 1 {
		t.Fatalf("expected cursor at column 1; got %d", w.lines[0].index)
	}
	if got := w.lines[0].cells[1].Rune(); got != ' ' {
		t.Fatalf("expected backspaced cell to be blanked; got %q", got)
	}
	if len(r.ops) != 1 || r.ops[0].row != 0 || r.ops[0].col != 1 {
		t.Fatalf("expected exactly the blanked cell to be redrawn; got %+v", r.ops)
	}
}

func TestBackspaceLineUnwind(t *testing.T) {
	w, _ := testWindow(WindowFlagChromatic, 4, 8, 4)

	feed(t, w, "ABC\n")
	if w.vlineOperating != 1 || w.vlinesUsed != 2 {
		t.Fatalf("unexpected state after newline: line %d used %d", w.vlineOperating, w.vlinesUsed)
	}

	// Backspace at column 0 drops the fresh line and resumes on the
	// previous one at its stored column.
	feed(t, w, "\b")
	if w.vlineOperating != 0 || w.vlinesUsed != 1 {
		t.Fatalf("expected cursor back on line 0 with 1 line used; got line %d used %d",
			w.vlineOperating, w.vlinesUsed)
	}
	if w.lines[0].index != 3 {
		t.Fatalf("expected line 0 to resume at column 3; got %d", w.lines[0].index)
	}

	feed(t, w, "D")
	if exp := "ABCD    "; lineText(w, 0) != exp {
		t.Fatalf("expected line 0 to contain %q; got %q", exp, lineText(w, 0))
	}
}

func TestBackspaceWrapsAtLineZero(t *testing.T) {
	w, _ := testWindow(WindowFlagChromatic, 4, 8, 2)

	feed(t, w, "\b")
	if w.vlineOperating != 3 {
		t.Fatalf("expected cursor to wrap to line 3; got %d", w.vlineOperating)
	}
	if w.vlinesUsed != 0 {
		t.Fatalf("expected 0 lines used; got %d", w.vlinesUsed)
	}
}

func TestBackspaceUnscrollsView(t *testing.T) {
	w, r := testWindow(WindowFlagChromatic, 4, 8, 2)

	// A view that scrolled past capacity steps its top back on line
	// unwind.
	w.vlinesUsed = 3
	w.topVline = 1
	w.vlineOperating = 2

	feed(t, w, "\b")
	if w.vlineOperating != 1 || w.topVline != 0 || w.vlinesUsed != 2 {
		t.Fatalf("expected line 1, top 0, 2 lines used; got line %d top %d used %d",
			w.vlineOperating, w.topVline, w.vlinesUsed)
	}
	if exp := 2 * 8; len(r.ops) < exp {
		t.Fatalf("expected all visible rows to be redrawn; got %d cell draws", len(r.ops))
	}
}

func TestControlCharacterNoOps(t *testing.T) {
	w, r := testWindow(WindowFlagChromatic, 4, 8, 2)

	feed(t, w, "\x00\r")
	if w.vlineOperating != 0 || w.lines[0].index != 0 || len(r.ops) != 0 {
		t.Fatalf("expected null and carriage return to leave the window untouched; got line %d column %d draws %d",
			w.vlineOperating, w.lines[0].index, len(r.ops))
	}
}

func TestDisabledOutputLeavesStateUntouched(t *testing.T) {
	w, r := testWindow(WindowFlagChromatic, 4, 8, 2)

	for _, c := range "A\n\t\b" {
		if err := w.putChar(c, ColorWhite, ColorBlack, false); err != nil {
			t.Fatalf("putChar(%q): unexpected error: %v", c, err)
		}
	}

	if w.vlineOperating != 0 || w.lines[0].index != 0 || len(r.ops) != 0 {
		t.Fatalf("expected no state change while window output is disabled; got line %d column %d draws %d",
			w.vlineOperating, w.lines[0].index, len(r.ops))
	}
}

func TestRefreshBoundsChecks(t *testing.T) {
	w, r := testWindow(WindowFlagChromatic, 4, 8, 2)

	specs := []struct {
		vline LineID
		start ColumnIndex
		count int32
	}{
		{4, 0, 1},
		{-1, 0, 1},
		{0, 8, 1},
		{0, 7, 2},
		{0, -1, 1},
	}

	for specIndex, spec := range specs {
		if err := w.refreshChars(spec.vline, spec.start, spec.count); err != ErrInvalidArgument {
			t.Errorf("[spec %d] expected ErrInvalidArgument; got %v", specIndex, err)
		}
	}

	if len(r.ops) != 0 {
		t.Fatalf("expected no cells to be drawn by rejected refreshes; got %d", len(r.ops))
	}
}

func TestRefreshRingTranslation(t *testing.T) {
	w, r := testWindow(WindowFlagChromatic, 4, 8, 2)
	w.topVline = 3

	// The top line of the view renders on physical row 0.
	if err := w.refreshChars(3, 0, 1); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(r.ops) != 1 || r.ops[0].row != 0 {
		t.Fatalf("expected one draw on row 0; got %+v", r.ops)
	}

	// A line whose ring distance from the top exceeds the visible area
	// maps below the screen and is skipped.
	r.ops = nil
	if err := w.refreshChars(0, 0, 1); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(r.ops) != 0 {
		t.Fatalf("expected off-screen line to be skipped; got %+v", r.ops)
	}
}

func TestPlainWindowUnsupported(t *testing.T) {
	w, r := testWindow(0, 4, 8, 2)

	if err := w.putChar('A', ColorWhite, ColorBlack, true); err != ErrUnsupportedWindowMode {
		t.Fatalf("expected ErrUnsupportedWindowMode; got %v", err)
	}
	if err := w.refreshLine(0); err != ErrUnsupportedWindowMode {
		t.Fatalf("expected ErrUnsupportedWindowMode; got %v", err)
	}
	if len(r.ops) != 0 {
		t.Fatalf("expected no draws on a plain window; got %d", len(r.ops))
	}
}

func TestRendererErrorPropagation(t *testing.T) {
	w, r := testWindow(WindowFlagChromatic, 4, 8, 2)
	rendErr := &kernel.Error{Module: "test", Message: "render failed"}
	r.err = rendErr

	if err := w.putChar('A', ColorWhite, ColorBlack, true); err != rendErr {
		t.Fatalf("expected the renderer error to propagate; got %v", err)
	}
}

func TestWindowIDsAreUnique(t *testing.T) {
	a := newWindow(WindowFlagChromatic, 2, 8)
	b := newWindow(WindowFlagChromatic, 2, 8)

	if a.ID() == b.ID() {
		t.Fatalf("expected distinct window ids; both got %d", a.ID())
	}
}
