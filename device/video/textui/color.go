package textui

// Color is a packed 24-bit RGB display color. The value is always masked to
// its low 24 bits regardless of how it was constructed.
type Color uint32

// NewColor packs the r, g and b components into a Color. Components wider
// than 8 bits are masked down.
func NewColor(r, g, b uint32) Color {
	return Color((r&0xff)<<16 | (g&0xff)<<8 | b&0xff)
}

// RGB returns the individual color components.
func (c Color) RGB() (r, g, b uint8) {
	return uint8(c >> 16), uint8(c >> 8), uint8(c)
}

// Predefined console colors.
const (
	ColorBlack  Color = 0x000000
	ColorWhite  Color = 0xffffff
	ColorRed    Color = 0xff0000
	ColorGreen  Color = 0x00ff00
	ColorBlue   Color = 0x0000ff
	ColorYellow Color = 0xffff00
	ColorOrange Color = 0xff8000
	ColorIndigo Color = 0x00ffff
	ColorPurple Color = 0x8000ff
)
