package font

// The default console font covers printable ASCII (0x20-0x7e). Glyphs are
// authored as 8-row cell designs; each row is doubled vertically when the
// 8x16 bitmap is assembled so the font fills a 16 pixel tall cell.

const (
	glyphArtRows  = 8
	asciiArtFirst = 0x20
	asciiArtLast  = 0x7e
)

// replacementArt is rendered for every rune the font does not cover.
var replacementArt = [glyphArtRows]string{
	"#######.",
	"#.....#.",
	"#.###.#.",
	"#.###.#.",
	"#.###.#.",
	"#.....#.",
	"#######.",
	"........",
}

// glyphArt holds the cell design for each printable ASCII character. Rows use
// '#' for foreground pixels.
var glyphArt = [asciiArtLast - asciiArtFirst + 1][glyphArtRows]string{
	{ // space
		"........",
		"........",
		"........",
		"........",
		"........",
		"........",
		"........",
		"........",
	},
	{ // !
		"..##....",
		"..##....",
		"..##....",
		"..##....",
		"..##....",
		"........",
		"..##....",
		"........",
	},
	{ // "
		".##.##..",
		".##.##..",
		".#..#...",
		"........",
		"........",
		"........",
		"........",
		"........",
	},
	{ // #
		".##.##..",
		".##.##..",
		"#######.",
		".##.##..",
		"#######.",
		".##.##..",
		".##.##..",
		"........",
	},
	{ // $
		"..##....",
		".#####..",
		"##......",
		".####...",
		"....##..",
		"#####...",
		"..##....",
		"........",
	},
	{ // %
		"##...##.",
		"##..##..",
		"...##...",
		"..##....",
		".##..##.",
		"##...##.",
		"........",
		"........",
	},
	{ // &
		".###....",
		"##.##...",
		".###....",
		"###.##..",
		"##.##...",
		"##.##...",
		".###.##.",
		"........",
	},
	{ // '
		"..##....",
		"..##....",
		".##.....",
		"........",
		"........",
		"........",
		"........",
		"........",
	},
	{ // (
		"...##...",
		"..##....",
		".##.....",
		".##.....",
		".##.....",
		"..##....",
		"...##...",
		"........",
	},
	{ // )
		".##.....",
		"..##....",
		"...##...",
		"...##...",
		"...##...",
		"..##....",
		".##.....",
		"........",
	},
	{ // *
		"........",
		".##.##..",
		"..###...",
		"#######.",
		"..###...",
		".##.##..",
		"........",
		"........",
	},
	{ // +
		"........",
		"..##....",
		"..##....",
		"######..",
		"..##....",
		"..##....",
		"........",
		"........",
	},
	{ // ,
		"........",
		"........",
		"........",
		"........",
		"........",
		"..##....",
		"..##....",
		".##.....",
	},
	{ // -
		"........",
		"........",
		"........",
		"######..",
		"........",
		"........",
		"........",
		"........",
	},
	{ // .
		"........",
		"........",
		"........",
		"........",
		"........",
		"..##....",
		"..##....",
		"........",
	},
	{ // /
		".....##.",
		"....##..",
		"...##...",
		"..##....",
		".##.....",
		"##......",
		"........",
		"........",
	},
	{ // 0
		".#####..",
		"##...##.",
		"##..###.",
		"##.#.##.",
		"###..##.",
		"##...##.",
		".#####..",
		"........",
	},
	{ // 1
		"..##....",
		".###....",
		"..##....",
		"..##....",
		"..##....",
		"..##....",
		"######..",
		"........",
	},
	{ // 2
		".#####..",
		"##...##.",
		".....##.",
		"...###..",
		"..##....",
		".##.....",
		"#######.",
		"........",
	},
	{ // 3
		".#####..",
		"##...##.",
		".....##.",
		"..####..",
		".....##.",
		"##...##.",
		".#####..",
		"........",
	},
	{ // 4
		"...###..",
		"..####..",
		".##.##..",
		"##..##..",
		"#######.",
		"....##..",
		"...####.",
		"........",
	},
	{ // 5
		"######..",
		"##......",
		"######..",
		".....##.",
		".....##.",
		"##...##.",
		".#####..",
		"........",
	},
	{ // 6
		"..###...",
		".##.....",
		"##......",
		"######..",
		"##...##.",
		"##...##.",
		".#####..",
		"........",
	},
	{ // 7
		"#######.",
		"##...##.",
		".....##.",
		"....##..",
		"...##...",
		"...##...",
		"...##...",
		"........",
	},
	{ // 8
		".#####..",
		"##...##.",
		"##...##.",
		".#####..",
		"##...##.",
		"##...##.",
		".#####..",
		"........",
	},
	{ // 9
		".#####..",
		"##...##.",
		"##...##.",
		".######.",
		".....##.",
		"....##..",
		".####...",
		"........",
	},
	{ // :
		"........",
		"..##....",
		"..##....",
		"........",
		"..##....",
		"..##....",
		"........",
		"........",
	},
	{ // ;
		"........",
		"..##....",
		"..##....",
		"........",
		"..##....",
		"..##....",
		".##.....",
		"........",
	},
	{ // <
		"....##..",
		"...##...",
		"..##....",
		".##.....",
		"..##....",
		"...##...",
		"....##..",
		"........",
	},
	{ // =
		"........",
		"........",
		"######..",
		"........",
		"######..",
		"........",
		"........",
		"........",
	},
	{ // >
		".##.....",
		"..##....",
		"...##...",
		"....##..",
		"...##...",
		"..##....",
		".##.....",
		"........",
	},
	{ // ?
		".#####..",
		"##...##.",
		".....##.",
		"....##..",
		"...##...",
		"........",
		"...##...",
		"........",
	},
	{ // @
		".#####..",
		"##...##.",
		"##.####.",
		"##.####.",
		"##.###..",
		"##......",
		".#####..",
		"........",
	},
	{ // A
		"..###...",
		".##.##..",
		"##...##.",
		"##...##.",
		"#######.",
		"##...##.",
		"##...##.",
		"........",
	},
	{ // B
		"######..",
		".##..##.",
		".##..##.",
		".#####..",
		".##..##.",
		".##..##.",
		"######..",
		"........",
	},
	{ // C
		"..####..",
		".##..##.",
		"##......",
		"##......",
		"##......",
		".##..##.",
		"..####..",
		"........",
	},
	{ // D
		"#####...",
		".##.##..",
		".##..##.",
		".##..##.",
		".##..##.",
		".##.##..",
		"#####...",
		"........",
	},
	{ // E
		"#######.",
		".##...#.",
		".##.#...",
		".####...",
		".##.#...",
		".##...#.",
		"#######.",
		"........",
	},
	{ // F
		"#######.",
		".##...#.",
		".##.#...",
		".####...",
		".##.#...",
		".##.....",
		"####....",
		"........",
	},
	{ // G
		"..####..",
		".##..##.",
		"##......",
		"##......",
		"##..###.",
		".##..##.",
		"..#####.",
		"........",
	},
	{ // H
		"##...##.",
		"##...##.",
		"##...##.",
		"#######.",
		"##...##.",
		"##...##.",
		"##...##.",
		"........",
	},
	{ // I
		".####...",
		"..##....",
		"..##....",
		"..##....",
		"..##....",
		"..##....",
		".####...",
		"........",
	},
	{ // J
		"...####.",
		"....##..",
		"....##..",
		"....##..",
		"##..##..",
		"##..##..",
		".####...",
		"........",
	},
	{ // K
		"###..##.",
		".##..##.",
		".##.##..",
		".####...",
		".##.##..",
		".##..##.",
		"###..##.",
		"........",
	},
	{ // L
		"####....",
		".##.....",
		".##.....",
		".##.....",
		".##...#.",
		".##..##.",
		"#######.",
		"........",
	},
	{ // M
		"##...##.",
		"###.###.",
		"#######.",
		"##.#.##.",
		"##...##.",
		"##...##.",
		"##...##.",
		"........",
	},
	{ // N
		"##...##.",
		"###..##.",
		"####.##.",
		"##.####.",
		"##..###.",
		"##...##.",
		"##...##.",
		"........",
	},
	{ // O
		"..###...",
		".##.##..",
		"##...##.",
		"##...##.",
		"##...##.",
		".##.##..",
		"..###...",
		"........",
	},
	{ // P
		"######..",
		".##..##.",
		".##..##.",
		".#####..",
		".##.....",
		".##.....",
		"####....",
		"........",
	},
	{ // Q
		".#####..",
		"##...##.",
		"##...##.",
		"##...##.",
		"##.#.##.",
		".#####..",
		"....###.",
		"........",
	},
	{ // R
		"######..",
		".##..##.",
		".##..##.",
		".#####..",
		".##.##..",
		".##..##.",
		"###..##.",
		"........",
	},
	{ // S
		".#####..",
		"##...##.",
		".##.....",
		"...##...",
		".....##.",
		"##...##.",
		".#####..",
		"........",
	},
	{ // T
		"######..",
		"#.##..#.",
		"..##....",
		"..##....",
		"..##....",
		"..##....",
		".####...",
		"........",
	},
	{ // U
		"##...##.",
		"##...##.",
		"##...##.",
		"##...##.",
		"##...##.",
		"##...##.",
		".#####..",
		"........",
	},
	{ // V
		"##...##.",
		"##...##.",
		"##...##.",
		"##...##.",
		".##.##..",
		"..###...",
		"...#....",
		"........",
	},
	{ // W
		"##...##.",
		"##...##.",
		"##...##.",
		"##.#.##.",
		"#######.",
		"###.###.",
		"##...##.",
		"........",
	},
	{ // X
		"##...##.",
		".##.##..",
		"..###...",
		"..###...",
		".##.##..",
		"##...##.",
		"##...##.",
		"........",
	},
	{ // Y
		"##...##.",
		"##...##.",
		".##.##..",
		"..###...",
		"...##...",
		"...##...",
		"..####..",
		"........",
	},
	{ // Z
		"#######.",
		"#....##.",
		"....##..",
		"...##...",
		"..##....",
		".##...#.",
		"#######.",
		"........",
	},
	{ // [
		".####...",
		".##.....",
		".##.....",
		".##.....",
		".##.....",
		".##.....",
		".####...",
		"........",
	},
	{ // \
		"##......",
		".##.....",
		"..##....",
		"...##...",
		"....##..",
		".....##.",
		"........",
		"........",
	},
	{ // ]
		".####...",
		"...##...",
		"...##...",
		"...##...",
		"...##...",
		"...##...",
		".####...",
		"........",
	},
	{ // ^
		"...#....",
		"..###...",
		".##.##..",
		"##...##.",
		"........",
		"........",
		"........",
		"........",
	},
	{ // _
		"........",
		"........",
		"........",
		"........",
		"........",
		"........",
		"........",
		"#######.",
	},
	{ // `
		"..##....",
		"...##...",
		"....#...",
		"........",
		"........",
		"........",
		"........",
		"........",
	},
	{ // a
		"........",
		"........",
		".####...",
		".....##.",
		".######.",
		"##...##.",
		".######.",
		"........",
	},
	{ // b
		"##......",
		"##......",
		"######..",
		"##...##.",
		"##...##.",
		"##...##.",
		"######..",
		"........",
	},
	{ // c
		"........",
		"........",
		".#####..",
		"##......",
		"##......",
		"##...##.",
		".#####..",
		"........",
	},
	{ // d
		".....##.",
		".....##.",
		".######.",
		"##...##.",
		"##...##.",
		"##...##.",
		".######.",
		"........",
	},
	{ // e
		"........",
		"........",
		".#####..",
		"##...##.",
		"#######.",
		"##......",
		".#####..",
		"........",
	},
	{ // f
		"..####..",
		".##.....",
		".##.....",
		"####....",
		".##.....",
		".##.....",
		"####....",
		"........",
	},
	{ // g
		"........",
		"........",
		".######.",
		"##...##.",
		"##...##.",
		".######.",
		".....##.",
		".#####..",
	},
	{ // h
		"##......",
		"##......",
		"######..",
		"##...##.",
		"##...##.",
		"##...##.",
		"##...##.",
		"........",
	},
	{ // i
		"..##....",
		"........",
		".###....",
		"..##....",
		"..##....",
		"..##....",
		".####...",
		"........",
	},
	{ // j
		"....##..",
		"........",
		"...###..",
		"....##..",
		"....##..",
		"....##..",
		"##..##..",
		".####...",
	},
	{ // k
		"##......",
		"##......",
		"##..##..",
		"##.##...",
		"####....",
		"##.##...",
		"##..##..",
		"........",
	},
	{ // l
		".###....",
		"..##....",
		"..##....",
		"..##....",
		"..##....",
		"..##....",
		".####...",
		"........",
	},
	{ // m
		"........",
		"........",
		"###.##..",
		"#######.",
		"##.#.##.",
		"##.#.##.",
		"##...##.",
		"........",
	},
	{ // n
		"........",
		"........",
		"######..",
		"##...##.",
		"##...##.",
		"##...##.",
		"##...##.",
		"........",
	},
	{ // o
		"........",
		"........",
		".#####..",
		"##...##.",
		"##...##.",
		"##...##.",
		".#####..",
		"........",
	},
	{ // p
		"........",
		"........",
		"######..",
		"##...##.",
		"##...##.",
		"######..",
		"##......",
		"##......",
	},
	{ // q
		"........",
		"........",
		".######.",
		"##...##.",
		"##...##.",
		".######.",
		".....##.",
		".....##.",
	},
	{ // r
		"........",
		"........",
		"##.###..",
		".###....",
		".##.....",
		".##.....",
		"####....",
		"........",
	},
	{ // s
		"........",
		"........",
		".######.",
		"##......",
		".#####..",
		".....##.",
		"######..",
		"........",
	},
	{ // t
		"..##....",
		"..##....",
		".#####..",
		"..##....",
		"..##....",
		"..##.##.",
		"...###..",
		"........",
	},
	{ // u
		"........",
		"........",
		"##...##.",
		"##...##.",
		"##...##.",
		"##...##.",
		".######.",
		"........",
	},
	{ // v
		"........",
		"........",
		"##...##.",
		"##...##.",
		".##.##..",
		"..###...",
		"...#....",
		"........",
	},
	{ // w
		"........",
		"........",
		"##...##.",
		"##.#.##.",
		"##.#.##.",
		"#######.",
		".##.##..",
		"........",
	},
	{ // x
		"........",
		"........",
		"##...##.",
		".##.##..",
		"..###...",
		".##.##..",
		"##...##.",
		"........",
	},
	{ // y
		"........",
		"........",
		"##...##.",
		"##...##.",
		"##...##.",
		".######.",
		".....##.",
		".#####..",
	},
	{ // z
		"........",
		"........",
		"######..",
		"...##...",
		"..##....",
		".##.....",
		"######..",
		"........",
	},
	{ // {
		"...###..",
		"..##....",
		"..##....",
		".##.....",
		"..##....",
		"..##....",
		"...###..",
		"........",
	},
	{ // |
		"..##....",
		"..##....",
		"..##....",
		"..##....",
		"..##....",
		"..##....",
		"..##....",
		"........",
	},
	{ // }
		"###.....",
		"..##....",
		"..##....",
		"...##...",
		"..##....",
		"..##....",
		"###.....",
		"........",
	},
	{ // ~
		".###.##.",
		"##.###..",
		"........",
		"........",
		"........",
		"........",
		"........",
		"........",
	},
}

// Default8x16 is the console font used when no explicit font is requested.
// Glyph index 0 is the replacement glyph; printable ASCII glyphs follow in
// code point order.
var Default8x16 = &Font{
	Name:        "default8x16",
	GlyphWidth:  8,
	GlyphHeight: 16,
	BytesPerRow: 1,
	index: func(r rune) uint32 {
		if r < asciiArtFirst || r > asciiArtLast {
			return 0
		}
		return uint32(r-asciiArtFirst) + 1
	},
}

// artToRows packs one cell design into bitmap rows, doubling each art row.
func artToRows(dst []byte, art [glyphArtRows]string) {
	for row := 0; row < glyphArtRows; row++ {
		var bits byte
		for col := 0; col < 8; col++ {
			if art[row][col] == '#' {
				bits |= 1 << (7 - col)
			}
		}
		dst[row*2] = bits
		dst[row*2+1] = bits
	}
}

func init() {
	glyphSize := int(Default8x16.BytesPerRow * Default8x16.GlyphHeight)
	data := make([]byte, (len(glyphArt)+1)*glyphSize)

	artToRows(data[0:glyphSize], replacementArt)
	for i, art := range glyphArt {
		offset := (i + 1) * glyphSize
		artToRows(data[offset:offset+glyphSize], art)
	}

	Default8x16.Data = data
	availableFonts = append(availableFonts, Default8x16)
}
