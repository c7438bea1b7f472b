package palette

import (
	"errors"
	"image/color"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/muesli/termenv"
)

var ErrBadIndex = errors.New("palette index out of range")

// Entry is a named palette color.
type Entry struct {
	Name string
	Hex  string
}

// Table is the fixed set of colors offered by the picker. Indexing is
// 1-based to match the printed listing.
var Table = []Entry{
	{"Black", "#000000"},
	{"Electric Blue", "#0000FF"},
	{"Neon Purple", "#BF00FF"},
	{"Bright Cyan", "#00FFFF"},
	{"Vibrant Magenta", "#FF00FF"},
	{"Neon Green", "#39FF14"},
	{"Hot Pink", "#FF69B4"},
	{"Neon Orange", "#FF4500"},
	{"Bright Yellow", "#FFFF00"},
	{"Electric Lime", "#CCFF00"},
	{"Vivid Red", "#FF0000"},
	{"Deep Sky Blue", "#00BFFF"},
	{"Vivid Violet", "#9F00FF"},
	{"Fluorescent Pink", "#FF1493"},
	{"Laser Lemon", "#FFFF66"},
	{"Screamin' Green", "#66FF66"},
	{"Ultra Red", "#FF2400"},
	{"Radical Red", "#FF355E"},
	{"Vivid Orange", "#FFA500"},
	{"Electric Indigo", "#6F00FF"},
}

// ByIndex returns the hex value for a 1-based table index.
func ByIndex(idx int) (string, error) {
	if idx < 1 || idx > len(Table) {
		return "", ErrBadIndex
	}
	return Table[idx-1].Hex, nil
}

// ParseHex converts a "#RRGGBB" string to a color value. Returns an
// error for malformed input so callers can fall back to a default.
func ParseHex(hex string) (color.Color, error) {
	c, err := colorful.Hex(hex)
	if err != nil {
		return nil, err
	}
	r, g, b := c.RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: 0xff}, nil
}

// MustHex is ParseHex for trusted constants; malformed input yields black.
func MustHex(hex string) color.Color {
	c, err := ParseHex(hex)
	if err != nil {
		return color.NRGBA{A: 0xff}
	}
	return c
}

// Swatch renders a terminal block of the given color, used when listing
// the table in the interactive picker. Terminals without color support
// get plain spaces.
func Swatch(hex string, width int) string {
	if width <= 0 {
		width = 4
	}
	block := strings.Repeat(" ", width)
	p := termenv.ColorProfile()
	return termenv.String(block).Background(p.Color(hex)).String()
}
