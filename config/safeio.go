package config

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"ternary.dev/ledger/trinary"
)

func readFileByPath(path string) ([]byte, error) {
	dir := filepath.Dir(path)
	name := filepath.Base(path)
	return readFileFromDir(dir, name)
}

func readFileFromDir(dir, name string) ([]byte, error) {
	if name == "" || name == "." || name == ".." || filepath.Base(name) != name {
		return nil, fmt.Errorf("invalid file name: %q", name)
	}
	return fs.ReadFile(os.DirFS(dir), name)
}

// ReadSeedFile reads a seed from path. Surrounding whitespace is ignored; the
// seed must be a non-empty multiple of 81 trytes.
func ReadSeedFile(path string) (trinary.Trytes, error) {
	b, err := readFileByPath(path)
	if err != nil {
		return "", fmt.Errorf("read seed: %w", err)
	}
	seed := strings.TrimSpace(string(b))
	if !trinary.IsTrytes(seed) || len(seed)%trinary.HashTrytesSize != 0 {
		return "", fmt.Errorf("seed file %s: want a multiple of %d trytes", path, trinary.HashTrytesSize)
	}
	return seed, nil
}
