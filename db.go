package gbconv

import (
	"crypto/sha1"
	"database/sql"
	"fmt"
	"io"
	"os"

	_ "github.com/mattn/go-sqlite3"
)

// TileDB caches encoded tile data keyed by the SHA-1 of the source image
// so repeated scans can skip unchanged files.
type TileDB struct {
	db *sql.DB
}

// NewTileDB opens or creates the cache database at file.
func NewTileDB(file string) (*TileDB, error) {
	db, err := sql.Open("sqlite3", fmt.Sprintf("%s?_foreign_keys=on", file))
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(10)

	if _, err = db.Exec("CREATE TABLE IF NOT EXISTS tile (id INTEGER PRIMARY KEY NOT NULL, sha1 TEXT NOT NULL UNIQUE, width INTEGER NOT NULL, height INTEGER NOT NULL, data BLOB NOT NULL)"); err != nil {
		return nil, err
	}

	return &TileDB{
		db: db,
	}, nil
}

// FindBySHA1 returns the cached tile data for the given hash, or nil if
// the image has not been encoded before.
func (t *TileDB) FindBySHA1(hash string) ([]byte, error) {
	var data []byte
	switch err := t.db.QueryRow("SELECT data FROM tile WHERE sha1 = ?", hash).Scan(&data); err {
	case sql.ErrNoRows:
		return nil, nil
	case nil:
		return data, nil
	default:
		return nil, err
	}
}

// Store records encoded tile data against the source image hash,
// replacing any previous entry.
func (t *TileDB) Store(hash string, width, height int, data []byte) error {
	_, err := t.db.Exec("INSERT OR REPLACE INTO tile (sha1, width, height, data) VALUES (?, ?, ?, ?)", hash, width, height, data)
	return err
}

// Close closes the database.
func (t *TileDB) Close() error {
	return t.db.Close()
}

func sha1File(file string) (string, error) {
	f, err := os.Open(file)
	if err != nil {
		return "", err
	}
	defer f.Close()

	h := sha1.New()
	if _, err := io.Copy(h, f); err != nil {
		return "", err
	}

	return fmt.Sprintf("%x", h.Sum(nil)), nil
}
