package tile

import (
	"bytes"
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ginjol83/gameboy-png-converter/palette"
)

func solid(width, height int, c palette.Color) *image.NRGBA {
	m := image.NewNRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			m.SetNRGBA(x, y, color.NRGBA{c.R, c.G, c.B, 0xff})
		}
	}
	return m
}

func TestGrid(t *testing.T) {
	tables := []struct {
		width, height int
		tx, ty        int
	}{
		{1, 1, 1, 1},
		{5, 5, 1, 1},
		{8, 8, 1, 1},
		{9, 8, 2, 1},
		{16, 16, 2, 2},
		{17, 9, 3, 2},
		{160, 144, 20, 18},
	}
	for _, table := range tables {
		tx, ty := Grid(table.width, table.height)
		assert.Equal(t, table.tx, tx)
		assert.Equal(t, table.ty, ty)
	}
}

func TestEncodeSolidDarkest(t *testing.T) {
	b := new(bytes.Buffer)
	require.NoError(t, Encode(b, solid(8, 8, palette.DMG[3])))

	// Index 3 sets the bit in both planes for every pixel
	assert.Equal(t, bytes.Repeat([]byte{0xff, 0xff}, 8), b.Bytes())
}

func TestEncodeSolidLight(t *testing.T) {
	b := new(bytes.Buffer)
	require.NoError(t, Encode(b, solid(8, 8, palette.DMG[1])))

	// Index 1 only sets the low plane
	assert.Equal(t, bytes.Repeat([]byte{0xff, 0x00}, 8), b.Bytes())
}

func TestEncodeSolidDark(t *testing.T) {
	b := new(bytes.Buffer)
	require.NoError(t, Encode(b, solid(8, 8, palette.DMG[2])))

	// Index 2 only sets the high plane
	assert.Equal(t, bytes.Repeat([]byte{0x00, 0xff}, 8), b.Bytes())
}

func TestEncodeSolidLightest(t *testing.T) {
	b := new(bytes.Buffer)
	require.NoError(t, Encode(b, solid(8, 8, palette.DMG[0])))

	assert.Equal(t, make([]byte, 16), b.Bytes())
}

func TestEncodePartialTile(t *testing.T) {
	b := new(bytes.Buffer)
	require.NoError(t, Encode(b, solid(5, 5, palette.DMG[3])))

	// One partial tile is still 16 bytes; columns 5-7 and rows 5-7 are
	// padded with index 0
	require.Equal(t, bytesPerTile, b.Len())
	want := append(bytes.Repeat([]byte{0xf8, 0xf8}, 5), bytes.Repeat([]byte{0x00, 0x00}, 3)...)
	assert.Equal(t, want, b.Bytes())
}

func TestEncodeBitOrder(t *testing.T) {
	m := solid(8, 8, palette.DMG[0])
	m.SetNRGBA(0, 0, color.NRGBA{palette.DMG[2].R, palette.DMG[2].G, palette.DMG[2].B, 0xff})
	m.SetNRGBA(7, 1, color.NRGBA{palette.DMG[1].R, palette.DMG[1].G, palette.DMG[1].B, 0xff})

	b := new(bytes.Buffer)
	require.NoError(t, Encode(b, m))

	out := b.Bytes()
	// Leftmost pixel is bit 7 of the high plane for index 2
	assert.Equal(t, byte(0x00), out[0])
	assert.Equal(t, byte(0x80), out[1])
	// Rightmost pixel is bit 0 of the low plane for index 1
	assert.Equal(t, byte(0x01), out[2])
	assert.Equal(t, byte(0x00), out[3])
}

func TestEncodeTileOrder(t *testing.T) {
	// 16x16 image with only the bottom-right tile set; it must be the
	// last 16 bytes of the output
	m := solid(16, 16, palette.DMG[0])
	for y := 8; y < 16; y++ {
		for x := 8; x < 16; x++ {
			m.SetNRGBA(x, y, color.NRGBA{palette.DMG[3].R, palette.DMG[3].G, palette.DMG[3].B, 0xff})
		}
	}

	b := new(bytes.Buffer)
	require.NoError(t, Encode(b, m))

	out := b.Bytes()
	require.Equal(t, 4*bytesPerTile, len(out))
	assert.Equal(t, make([]byte, 3*bytesPerTile), out[:3*bytesPerTile])
	assert.Equal(t, bytes.Repeat([]byte{0xff, 0xff}, 8), out[3*bytesPerTile:])
}

func TestEncodeLength(t *testing.T) {
	for _, size := range []struct{ width, height int }{
		{1, 1}, {5, 5}, {8, 8}, {9, 17}, {16, 16}, {160, 144},
	} {
		b := new(bytes.Buffer)
		require.NoError(t, Encode(b, solid(size.width, size.height, palette.DMG[2])))

		tx, ty := Grid(size.width, size.height)
		assert.Equal(t, tx*ty*bytesPerTile, b.Len())
	}
}

func TestEncodeUnquantizedFallback(t *testing.T) {
	m := image.NewNRGBA(image.Rect(0, 0, 8, 8))
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			m.SetNRGBA(x, y, color.NRGBA{200, 10, 30, 0xff})
		}
	}

	b := new(bytes.Buffer)
	require.NoError(t, Encode(b, m))

	// Colors outside the palette encode as index 0
	assert.Equal(t, make([]byte, bytesPerTile), b.Bytes())
}

func TestEncodeInvalidDimensions(t *testing.T) {
	err := Encode(new(bytes.Buffer), image.NewNRGBA(image.Rect(0, 0, 0, 0)))
	assert.Equal(t, ErrInvalidDimensions, err)
}
