package store

import (
	"context"

	"corporate-web/feature/asset"
)

// Store loads and persists the asset table. A run loads the table once at
// start and saves it once at the end; stores do not need transactional
// guarantees beyond that.
type Store interface {
	// Load returns the persisted table, or an empty table when nothing
	// has been persisted yet.
	Load(ctx context.Context) (asset.Table, error)
	// Save persists the full table, replacing any previous state.
	Save(ctx context.Context, table asset.Table) error
}

// Memory is an in-memory store, used when no persistence is configured
// and in tests.
type Memory struct {
	table asset.Table
}

// NewMemory creates a memory store seeded with the given table.
func NewMemory(table asset.Table) *Memory {
	return &Memory{table: table}
}

// Load implements Store.
func (m *Memory) Load(ctx context.Context) (asset.Table, error) {
	return m.table.Clone(), nil
}

// Save implements Store.
func (m *Memory) Save(ctx context.Context, table asset.Table) error {
	m.table = table.Clone()
	return nil
}
