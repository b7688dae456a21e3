package textui

import (
	"bytes"
	"strings"
	"testing"

	"github.com/Vitus213/DragonOS/device/video/screen"
	"github.com/Vitus213/DragonOS/kernel/kfmt"
)

// TestConsoleLifecycle exercises the console singleton end to end. The
// framework can only be initialized once per process, so the subtests build
// on each other in order.
func TestConsoleLifecycle(t *testing.T) {
	region := make([]byte, 256*64*4)
	buf, err := screen.NewDirectBuffer(256, 64, 32, region)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	screen.SetDeviceBuffer(buf)

	serialOut := captureSerial()

	t.Run("accessors fail before init", func(t *testing.T) {
		if _, err := NewWindow(WindowFlagChromatic); err != ErrNotInitialized {
			t.Errorf("expected ErrNotInitialized from NewWindow; got %v", err)
		}
		if _, err := CurrentWindow(); err != ErrNotInitialized {
			t.Errorf("expected ErrNotInitialized from CurrentWindow; got %v", err)
		}
		if _, err := Metadata(); err != ErrNotInitialized {
			t.Errorf("expected ErrNotInitialized from Metadata; got %v", err)
		}
	})

	t.Run("init", func(t *testing.T) {
		if err := Init(); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if !WindowOutputEnabled() {
			t.Error("expected registration to enable window output")
		}
		if !strings.Contains(serialOut.String(), "text ui initialized") {
			t.Errorf("expected the init banner on serial; got %q", serialOut.String())
		}

		if err := Init(); err != ErrAlreadyInitialized {
			t.Fatalf("expected ErrAlreadyInitialized on second init; got %v", err)
		}
	})

	t.Run("metadata", func(t *testing.T) {
		md, err := Metadata()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if md.Name != "textui" || md.Type != screen.FrameworkTypeText {
			t.Errorf("unexpected metadata: %+v", md)
		}
		if md.Buffer.Width() != 256 || md.Buffer.Height() != 64 {
			t.Errorf("expected a 256x64 framebuffer; got %dx%d", md.Buffer.Width(), md.Buffer.Height())
		}
	})

	t.Run("put string", func(t *testing.T) {
		w, err := NewWindow(WindowFlagChromatic)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if err := SetCurrentWindow(w); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		serialOut.Reset()
		if err := PutString("hi\n", ColorWhite, ColorBlack); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if got := lineText(w, 0); !strings.HasPrefix(got, "hi ") {
			t.Errorf("expected line 0 to start with %q; got %q", "hi", got)
		}
		if w.vlineOperating != 1 {
			t.Errorf("expected the cursor on line 1; got %d", w.vlineOperating)
		}
		if exp := "hi\n\r"; serialOut.String() != exp {
			t.Errorf("expected serial mirror %q; got %q", exp, serialOut.String())
		}
	})

	t.Run("window output toggle", func(t *testing.T) {
		w, err := NewWindow(WindowFlagChromatic)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if err := SetCurrentWindow(w); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		DisableWindowOutput()
		defer EnableWindowOutput()

		serialOut.Reset()
		if err := PutString("x", ColorWhite, ColorBlack); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if w.vlineOperating != 0 || w.lines[0].index != 0 {
			t.Errorf("expected the window to stay untouched; got line %d column %d",
				w.vlineOperating, w.lines[0].index)
		}
		if exp := "x"; serialOut.String() != exp {
			t.Errorf("expected serial mirror %q; got %q", exp, serialOut.String())
		}
	})

	t.Run("kernel log routing", func(t *testing.T) {
		w, err := NewWindow(WindowFlagChromatic)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if err := SetCurrentWindow(w); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		kfmt.Printf("boot took %dms\n", 42)

		if got := lineText(w, 0); !strings.HasPrefix(got, "boot took 42ms") {
			t.Errorf("expected the kernel log line on the console; got %q", got)
		}
	})

	t.Run("plain window rejected", func(t *testing.T) {
		w, err := NewWindow(0)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if err := SetCurrentWindow(w); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if err := PutString("a", ColorWhite, ColorBlack); err != ErrUnsupportedWindowMode {
			t.Fatalf("expected ErrUnsupportedWindowMode; got %v", err)
		}
	})

	t.Run("nil current window reverts to default", func(t *testing.T) {
		if err := SetCurrentWindow(nil); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		got, err := CurrentWindow()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got != fw.defaultWin {
			t.Fatalf("expected the default window to be current; got window %d", got.ID())
		}
	})

	t.Run("change buffer", func(t *testing.T) {
		newRegion := make([]byte, 128*32*4)
		newBuf, err := screen.NewDirectBuffer(128, 32, 32, newRegion)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if err := screen.ChangeBuffer(newBuf); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		// The overlapping pixel rows move over to the new buffer.
		for row := 0; row < 32; row++ {
			exp := region[row*256*4 : row*256*4+128*4]
			got := newRegion[row*128*4 : (row+1)*128*4]
			if !bytes.Equal(got, exp) {
				t.Fatalf("expected row %d to be copied into the new buffer", row)
			}
		}

		md, err := Metadata()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if md.Buffer.Width() != 128 || md.Buffer.Height() != 32 {
			t.Fatalf("expected a 128x32 framebuffer; got %dx%d", md.Buffer.Width(), md.Buffer.Height())
		}
	})
}
