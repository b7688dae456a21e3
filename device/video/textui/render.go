package textui

import (
	"github.com/Vitus213/DragonOS/device/video/screen"
	"github.com/Vitus213/DragonOS/device/video/textui/font"
	"github.com/Vitus213/DragonOS/kernel"
)

// cellRenderer draws one character cell at a physical row/column position of
// the display.
type cellRenderer interface {
	DrawCell(row, col int32, cell Cell) *kernel.Error
}

// fbRenderer renders cells into the framebuffer returned by the buffer
// accessor. The buffer is borrowed per draw call so that framebuffer swaps
// take effect on the next rendered cell.
type fbRenderer struct {
	font   *font.Font
	buffer func() (screen.BufferInfo, *kernel.Error)
}

func (r *fbRenderer) DrawCell(row, col int32, cell Cell) *kernel.Error {
	buf, err := r.buffer()
	if err != nil {
		return err
	}

	return drawCell(&buf, r.font, row, col, cell)
}

// drawCell renders one character cell into buf with its top-left pixel at
// (col * glyph width, row * glyph height). The target rectangle is validated
// up front; the pixel loops below write unchecked.
func drawCell(buf *screen.BufferInfo, fnt *font.Font, row, col int32, cell Cell) *kernel.Error {
	if row < 0 || col < 0 {
		return ErrInvalidArgument
	}

	glyphW, glyphH := fnt.GlyphWidth, fnt.GlyphHeight
	x := uint32(col) * glyphW
	y := uint32(row) * glyphH
	if x+glyphW > buf.Width() || y+glyphH > buf.Height() {
		return ErrInvalidArgument
	}

	glyph := fnt.Glyph(cell.Rune())
	bytesPerPixel := buf.BytesPerPixel()
	stride := buf.Width() * bytesPerPixel

	data, release := buf.Acquire()
	defer release()

	for gy := uint32(0); gy < glyphH; gy++ {
		rowBits := glyph[gy*fnt.BytesPerRow]
		offset := (y+gy)*stride + x*bytesPerPixel

		for gx := uint32(0); gx < glyphW; gx++ {
			color := cell.bg
			if rowBits&(1<<(7-gx)) != 0 {
				color = cell.fg
			}
			putPixel(data[offset:], bytesPerPixel, color)
			offset += bytesPerPixel
		}
	}

	return nil
}

// putPixel stores one pixel's color into dst. 32-bit buffers take all 4
// bytes, 24-bit buffers 3 and 16-bit buffers a truncated 2; other depths are
// rejected when the framebuffer is constructed.
func putPixel(dst []byte, bytesPerPixel uint32, c Color) {
	v := uint32(c)
	switch bytesPerPixel {
	case 4:
		dst[0] = byte(v)
		dst[1] = byte(v >> 8)
		dst[2] = byte(v >> 16)
		dst[3] = byte(v >> 24)
	case 3:
		dst[0] = byte(v)
		dst[1] = byte(v >> 8)
		dst[2] = byte(v >> 16)
	case 2:
		dst[0] = byte(v)
		dst[1] = byte(v >> 8)
	}
}
