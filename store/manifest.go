package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

const SchemaVersionV1 uint32 = 1

type Manifest struct {
	SchemaVersion uint32 `json:"schema_version"`
	CreatedAt     string `json:"created_at"`
}

func manifestPath(datadir string) string {
	return filepath.Join(datadir, "MANIFEST.json")
}

func readManifest(datadir string) (*Manifest, error) {
	b, err := os.ReadFile(manifestPath(datadir)) // #nosec G304 -- path is derived from operator-controlled datadir.
	if err != nil {
		return nil, err
	}
	var m Manifest
	if err := json.Unmarshal(b, &m); err != nil {
		return nil, fmt.Errorf("manifest json: %w", err)
	}
	return &m, nil
}

func newManifest() *Manifest {
	return &Manifest{
		SchemaVersion: SchemaVersionV1,
		CreatedAt:     time.Now().UTC().Format(time.RFC3339),
	}
}

// writeManifestAtomic writes MANIFEST.json via temp file, fsync and rename.
func writeManifestAtomic(datadir string, m *Manifest) error {
	if m == nil {
		return fmt.Errorf("manifest: nil")
	}
	b, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return fmt.Errorf("manifest json: %w", err)
	}
	b = append(b, '\n')

	final := manifestPath(datadir)
	tmp := final + ".tmp"

	f, err := os.OpenFile(tmp, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0o600) // #nosec G304 -- tmp path is derived from operator-controlled datadir.
	if err != nil {
		return fmt.Errorf("manifest open tmp: %w", err)
	}
	_, werr := f.Write(b)
	serr := f.Sync()
	cerr := f.Close()
	if werr != nil {
		return fmt.Errorf("manifest write tmp: %w", werr)
	}
	if serr != nil {
		return fmt.Errorf("manifest fsync tmp: %w", serr)
	}
	if cerr != nil {
		return fmt.Errorf("manifest close tmp: %w", cerr)
	}
	if err := os.Rename(tmp, final); err != nil {
		return fmt.Errorf("manifest rename: %w", err)
	}
	return nil
}
