/*
Package gbconv converts true color images to the four shade Game Boy
palette and packs them into the 2 bits per pixel tile format used by Game
Boy development toolkits.
*/
package gbconv

import "log"

// Converter ties together the quantizer, the tile encoder and the tile
// cache database.
type Converter struct {
	db     *TileDB
	logger *log.Logger
}

// New returns a Converter backed by the tile cache database at file.
func New(file string, logger *log.Logger) (*Converter, error) {
	db, err := NewTileDB(file)
	if err != nil {
		return nil, err
	}
	return &Converter{
		db:     db,
		logger: logger,
	}, nil
}

// Close releases the underlying cache database.
func (c *Converter) Close() error {
	return c.db.Close()
}
