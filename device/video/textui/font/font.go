// Package font provides the bitmap glyph source used by the text console.
// Each glyph is a fixed-size monochrome bitmap; a set bit selects the
// foreground color and a clear bit the background color. Characters without a
// glyph resolve to a replacement glyph so that every rune can be rendered.
package font

// Font describes a bitmap font that can be used by the text console.
type Font struct {
	// The name of the font.
	Name string

	// The width of each glyph in pixels.
	GlyphWidth uint32

	// The height of each glyph in pixels.
	GlyphHeight uint32

	// The number of bytes describing a row in a glyph. Bit (7 - column)
	// of a row byte is set when the pixel at that column uses the
	// foreground color.
	BytesPerRow uint32

	// The font bitmap. Each glyph consists of BytesPerRow * GlyphHeight
	// consecutive bytes.
	Data []byte

	// index maps a rune to its glyph index. Runes outside the font map to
	// the replacement glyph at index 0.
	index func(r rune) uint32
}

// Glyph returns the bitmap for r as a GlyphHeight*BytesPerRow byte slice.
// Runes not covered by the font yield the replacement glyph.
func (f *Font) Glyph(r rune) []byte {
	glyphSize := f.BytesPerRow * f.GlyphHeight
	offset := f.index(r) * glyphSize
	return f.Data[offset : offset+glyphSize]
}

// The list of available fonts.
var availableFonts []*Font

// FindByName looks up a font instance by name. If the font is not found then
// the function returns nil.
func FindByName(name string) *Font {
	for _, f := range availableFonts {
		if f.Name == name {
			return f
		}
	}

	return nil
}

// Default returns the font used by the console when no explicit font has been
// requested.
func Default() *Font {
	return availableFonts[0]
}
