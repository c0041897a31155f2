package bounce

import "math/rand/v2"

// PaletteEntry is a named tint.
type PaletteEntry struct {
	Name  string
	Color Color
}

// Palette is the fixed sequence of tints the logo cycles through.
var Palette = [...]PaletteEntry{
	{"white", RGB8(0xFF, 0xFF, 0xFF)},
	{"red", RGB8(0xFF, 0x00, 0x00)},
	{"yellow", RGB8(0xFF, 0xFF, 0x00)},
	{"green", RGB8(0x00, 0xFF, 0x00)},
	{"cyan", RGB8(0x00, 0xFF, 0xFF)},
	{"blue", RGB8(0x00, 0x00, 0xFF)},
	{"magenta", RGB8(0xFF, 0x00, 0xFF)},
}

// ColorState is the palette index of the most recently applied tint.
type ColorState int

// NoColor is the ColorState before any recolor event.
const NoColor ColorState = -1

// InitialColor is the tint the logo starts with. Applying it is not a
// recolor event and leaves the ColorState at NoColor.
const InitialColor ColorState = 3 // green

// Valid reports whether c indexes the palette.
func (c ColorState) Valid() bool {
	return c >= 0 && int(c) < len(Palette)
}

// Color returns the palette color for c, or white when c is not valid.
func (c ColorState) Color() Color {
	if !c.Valid() {
		return ColorWhite
	}
	return Palette[c].Color
}

func (c ColorState) String() string {
	if !c.Valid() {
		return "none"
	}
	return Palette[c].Name
}

// NextColor draws uniformly from the palette until the result differs from
// prev. Any entry is eligible when prev is NoColor.
func NextColor(prev ColorState, rng *rand.Rand) ColorState {
	next := prev
	for next == prev {
		next = ColorState(rng.IntN(len(Palette)))
	}
	return next
}
