package palette

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTable_TwentyNamedEntries(t *testing.T) {
	assert.Len(t, Table, 20)
	for _, e := range Table {
		assert.NotEmpty(t, e.Name)
		assert.Len(t, e.Hex, 7)
		assert.Equal(t, byte('#'), e.Hex[0])
	}
}

func TestByIndex(t *testing.T) {
	hex, err := ByIndex(1)
	require.NoError(t, err)
	assert.Equal(t, "#000000", hex)

	hex, err = ByIndex(6)
	require.NoError(t, err)
	assert.Equal(t, "#39FF14", hex)

	hex, err = ByIndex(len(Table))
	require.NoError(t, err)
	assert.Equal(t, "#6F00FF", hex)
}

func TestByIndex_OutOfRange(t *testing.T) {
	for _, idx := range []int{0, -1, len(Table) + 1, 99} {
		_, err := ByIndex(idx)
		assert.ErrorIs(t, err, ErrBadIndex, "index %d", idx)
	}
}

func TestParseHex(t *testing.T) {
	c, err := ParseHex("#FF4500")
	require.NoError(t, err)
	assert.Equal(t, color.NRGBA{R: 0xff, G: 0x45, B: 0x00, A: 0xff}, c)
}

func TestParseHex_Malformed(t *testing.T) {
	for _, hex := range []string{"", "FF4500", "#GG0000", "#39FF1"} {
		_, err := ParseHex(hex)
		assert.Error(t, err, "input %q", hex)
	}
}

func TestMustHex_FallsBackToBlack(t *testing.T) {
	assert.Equal(t, color.NRGBA{A: 0xff}, MustHex("not a color"))
	assert.Equal(t, color.NRGBA{R: 0x39, G: 0xff, B: 0x14, A: 0xff}, MustHex("#39FF14"))
}

func TestSwatch_ContainsBlock(t *testing.T) {
	s := Swatch("#FF0000", 4)
	assert.Contains(t, s, "    ")

	// Zero width falls back to the default block.
	s = Swatch("#FF0000", 0)
	assert.Contains(t, s, "    ")
}
