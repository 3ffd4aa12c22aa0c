// Package palette holds the raw ANSI color sets behind the built-in themes.
package palette

import "strconv"

const (
	Bold      = "\x1b[1m"
	Italic    = "\x1b[3m"
	Underline = "\x1b[4m"
	Dim       = "\x1b[2m"
)

// Palette is a set of foreground prefixes, one per semantic role.
type Palette struct {
	Strong        string
	Emphasis      string
	Heading       string
	CodeInline    string
	CodeBlock     string
	ListMarker    string
	Quote         string
	ThematicBreak string
}

// RGB returns a 24-bit foreground escape.
func RGB(r, g, b uint8) string {
	return "\x1b[38;2;" + strconv.Itoa(int(r)) + ";" + strconv.Itoa(int(g)) + ";" + strconv.Itoa(int(b)) + "m"
}

// ANSI16 returns a basic 16-color foreground escape (30-37, 90-97).
func ANSI16(code int) string {
	return "\x1b[" + strconv.Itoa(code) + "m"
}

var PaletteDefault = Palette{
	Heading:       ANSI16(36),
	CodeInline:    ANSI16(33),
	CodeBlock:     ANSI16(90),
	ListMarker:    ANSI16(35),
	Quote:         ANSI16(32),
	ThematicBreak: ANSI16(90),
}

var PaletteDoomGruvbox = Palette{
	Strong:        RGB(0xfb, 0xf1, 0xc7),
	Emphasis:      RGB(0xeb, 0xdb, 0xb2),
	Heading:       RGB(0xfa, 0xbd, 0x2f),
	CodeInline:    RGB(0x8e, 0xc0, 0x7c),
	CodeBlock:     RGB(0x92, 0x83, 0x74),
	ListMarker:    RGB(0xfe, 0x80, 0x19),
	Quote:         RGB(0x83, 0xa5, 0x98),
	ThematicBreak: RGB(0x66, 0x5c, 0x54),
}

var PaletteDoomDracula = Palette{
	Strong:        RGB(0xf8, 0xf8, 0xf2),
	Emphasis:      RGB(0xf1, 0xfa, 0x8c),
	Heading:       RGB(0xbd, 0x93, 0xf9),
	CodeInline:    RGB(0x50, 0xfa, 0x7b),
	CodeBlock:     RGB(0x62, 0x72, 0xa4),
	ListMarker:    RGB(0xff, 0x79, 0xc6),
	Quote:         RGB(0x8b, 0xe9, 0xfd),
	ThematicBreak: RGB(0x44, 0x47, 0x5a),
}

var PaletteDoomNord = Palette{
	Strong:        RGB(0xec, 0xef, 0xf4),
	Emphasis:      RGB(0xe5, 0xe9, 0xf0),
	Heading:       RGB(0x88, 0xc0, 0xd0),
	CodeInline:    RGB(0xa3, 0xbe, 0x8c),
	CodeBlock:     RGB(0x61, 0x6e, 0x88),
	ListMarker:    RGB(0x81, 0xa1, 0xc1),
	Quote:         RGB(0xb4, 0x8e, 0xad),
	ThematicBreak: RGB(0x4c, 0x56, 0x6a),
}

var PaletteTokyoNight = Palette{
	Strong:        RGB(0xc0, 0xca, 0xf5),
	Emphasis:      RGB(0xa9, 0xb1, 0xd6),
	Heading:       RGB(0x7a, 0xa2, 0xf7),
	CodeInline:    RGB(0x9e, 0xce, 0x6a),
	CodeBlock:     RGB(0x56, 0x5f, 0x89),
	ListMarker:    RGB(0xbb, 0x9a, 0xf7),
	Quote:         RGB(0x7d, 0xcf, 0xff),
	ThematicBreak: RGB(0x41, 0x48, 0x68),
}

var PaletteCatppuccinMocha = Palette{
	Strong:        RGB(0xcd, 0xd6, 0xf4),
	Emphasis:      RGB(0xba, 0xc2, 0xde),
	Heading:       RGB(0x89, 0xb4, 0xfa),
	CodeInline:    RGB(0xa6, 0xe3, 0xa1),
	CodeBlock:     RGB(0x6c, 0x70, 0x86),
	ListMarker:    RGB(0xf5, 0xc2, 0xe7),
	Quote:         RGB(0x94, 0xe2, 0xd5),
	ThematicBreak: RGB(0x45, 0x47, 0x5a),
}

var PaletteSolarizedDark = Palette{
	Strong:        RGB(0x93, 0xa1, 0xa1),
	Emphasis:      RGB(0x83, 0x94, 0x96),
	Heading:       RGB(0x26, 0x8b, 0xd2),
	CodeInline:    RGB(0x85, 0x99, 0x00),
	CodeBlock:     RGB(0x58, 0x6e, 0x75),
	ListMarker:    RGB(0xcb, 0x4b, 0x16),
	Quote:         RGB(0x2a, 0xa1, 0x98),
	ThematicBreak: RGB(0x07, 0x36, 0x42),
}

var PaletteSolarizedLight = Palette{
	Strong:        RGB(0x58, 0x6e, 0x75),
	Emphasis:      RGB(0x65, 0x7b, 0x83),
	Heading:       RGB(0x26, 0x8b, 0xd2),
	CodeInline:    RGB(0x85, 0x99, 0x00),
	CodeBlock:     RGB(0x93, 0xa1, 0xa1),
	ListMarker:    RGB(0xcb, 0x4b, 0x16),
	Quote:         RGB(0x2a, 0xa1, 0x98),
	ThematicBreak: RGB(0xee, 0xe8, 0xd5),
}

var PaletteGithubDark = Palette{
	Strong:        RGB(0xe6, 0xed, 0xf3),
	Emphasis:      RGB(0xc9, 0xd1, 0xd9),
	Heading:       RGB(0x58, 0xa6, 0xff),
	CodeInline:    RGB(0xff, 0xa6, 0x57),
	CodeBlock:     RGB(0x8b, 0x94, 0x9e),
	ListMarker:    RGB(0xd2, 0xa8, 0xff),
	Quote:         RGB(0x7e, 0xe7, 0x87),
	ThematicBreak: RGB(0x30, 0x36, 0x3d),
}

var PaletteGithubLight = Palette{
	Strong:        RGB(0x1f, 0x23, 0x28),
	Emphasis:      RGB(0x24, 0x29, 0x2f),
	Heading:       RGB(0x09, 0x69, 0xda),
	CodeInline:    RGB(0x95, 0x38, 0x00),
	CodeBlock:     RGB(0x57, 0x60, 0x6a),
	ListMarker:    RGB(0x82, 0x50, 0xdf),
	Quote:         RGB(0x11, 0x63, 0x29),
	ThematicBreak: RGB(0xd0, 0xd7, 0xde),
}
