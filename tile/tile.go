/*
Package tile implements a Game Boy tile data encoder and decoder.

An image is split into a grid of 8 by 8 pixel tiles, left to right and top
to bottom. Each tile is 16 bytes; for every row of the tile, top to bottom,
a low bitplane byte is followed by a high bitplane byte. Bit 7 of each
plane byte is the leftmost pixel of the row and the two bits combine into
the 2-bit palette index of that pixel.

Images whose dimensions are not a multiple of 8 still encode to whole
tiles; the missing pixels on the right and bottom edges are padded with
palette index 0.
*/
package tile

const (
	tileWidth    = 8
	tileHeight   = tileWidth
	bytesPerRow  = 2
	bytesPerTile = tileHeight * bytesPerRow
)

// Grid returns the dimensions in tiles of the grid covering an image of
// the given size, rounding up for partial tiles.
func Grid(width, height int) (int, int) {
	return (width + tileWidth - 1) / tileWidth, (height + tileHeight - 1) / tileHeight
}
