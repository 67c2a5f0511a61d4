package store

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"corporate-web/feature/asset"
)

// CSVStore persists the asset table as a CSV file on disk.
type CSVStore struct {
	path string
}

// NewCSVStore creates a store writing to the given file path.
func NewCSVStore(path string) *CSVStore {
	return &CSVStore{path: path}
}

// Load implements Store. A missing file is an empty table, not an error.
func (s *CSVStore) Load(ctx context.Context) (asset.Table, error) {
	f, err := os.Open(s.path)
	if os.IsNotExist(err) {
		return asset.NewTable(), nil
	}
	if err != nil {
		return asset.NewTable(), fmt.Errorf("failed to open table file %s: %w", s.path, err)
	}
	defer f.Close()

	return decodeCSV(f)
}

// Save implements Store. It writes to a temp file in the same directory
// and renames it into place, so a failed write never truncates the
// previous snapshot.
func (s *CSVStore) Save(ctx context.Context, table asset.Table) error {
	tmp, err := os.CreateTemp(filepath.Dir(s.path), ".corporate_web-*.csv")
	if err != nil {
		return fmt.Errorf("failed to create temp table file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if err := encodeCSV(tmp, table); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to encode table: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to close temp table file: %w", err)
	}

	if err := os.Rename(tmp.Name(), s.path); err != nil {
		return fmt.Errorf("failed to replace table file %s: %w", s.path, err)
	}
	return nil
}
