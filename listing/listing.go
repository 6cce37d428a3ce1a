/*
Package listing renders encoded tile data as C source suitable for
inclusion in a Game Boy project built with GBDK or similar toolkits.

The output is deterministic; rendering the same listing twice produces
byte-identical text.
*/
package listing

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"
)

const valuesPerLine = 8

// Listing describes one generated block of tile data.
type Listing struct {
	Name       string
	Width      int
	Height     int
	TileCountX int
	TileCountY int
	Data       []byte
}

// SanitizeName replaces every character outside [A-Za-z0-9_] with an
// underscore so the result is usable as a C identifier.
func SanitizeName(name string) string {
	var b strings.Builder
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '_':
			b.WriteRune(r)
		default:
			b.WriteByte('_')
		}
	}
	return b.String()
}

// BaseName derives a sanitized identifier from an image path, using the
// file name without its extension.
func BaseName(path string) string {
	name := filepath.Base(path)
	return SanitizeName(strings.TrimSuffix(name, filepath.Ext(name)))
}

// Render writes the listing to w as a C compilation unit: a comment
// header, size constants and the tile data as an array of hex byte
// literals, eight per line.
func Render(w io.Writer, l Listing) error {
	name := SanitizeName(l.Name)
	base := strings.ToUpper(name)
	tiles := l.TileCountX * l.TileCountY

	var b strings.Builder

	fmt.Fprintf(&b, "/*\n")
	fmt.Fprintf(&b, " * %s tile data\n", name)
	fmt.Fprintf(&b, " * %dx%d pixels, %dx%d tiles (%d tiles, %d bytes)\n",
		l.Width, l.Height, l.TileCountX, l.TileCountY, tiles, len(l.Data))
	fmt.Fprintf(&b, " */\n\n")

	fmt.Fprintf(&b, "#define %s_WIDTH %d\n", base, l.Width)
	fmt.Fprintf(&b, "#define %s_HEIGHT %d\n", base, l.Height)
	fmt.Fprintf(&b, "#define %s_TILE_WIDTH %d\n", base, l.TileCountX)
	fmt.Fprintf(&b, "#define %s_TILE_HEIGHT %d\n", base, l.TileCountY)
	fmt.Fprintf(&b, "#define %s_TILE_COUNT %d\n", base, tiles)
	fmt.Fprintf(&b, "#define %s_SIZE %d\n", base, len(l.Data))

	fmt.Fprintf(&b, "\nconst unsigned char %s_tiles[%s_SIZE] = {\n", name, base)
	for i, v := range l.Data {
		if i%valuesPerLine == 0 {
			b.WriteString("    ")
		}
		fmt.Fprintf(&b, "0x%02X", v)
		if i != len(l.Data)-1 {
			b.WriteString(",")
		}
		if i%valuesPerLine == valuesPerLine-1 || i == len(l.Data)-1 {
			b.WriteString("\n")
		} else {
			b.WriteString(" ")
		}
	}
	b.WriteString("};\n\n")

	fmt.Fprintf(&b, "/* Load with set_bkg_data(0, %s_TILE_COUNT, %s_tiles); */\n", base, name)

	_, err := io.WriteString(w, b.String())
	return err
}
