package store

import (
	"fmt"
	"os"
	"path/filepath"
)

// DBPath returns the spent-address database file under datadir:
//
//	datadir/db/spent.db
func DBPath(datadir string) string {
	return filepath.Join(datadir, "db", "spent.db")
}

func ensureDir(path string) error {
	if err := os.MkdirAll(path, 0o700); err != nil {
		return fmt.Errorf("mkdir %s: %w", path, err)
	}
	return nil
}
