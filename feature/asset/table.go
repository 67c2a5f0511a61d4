package asset

import (
	"fmt"

	"corporate-web/feature/asset/models"
)

// Table is an ordered, append-only collection of asset rows, keyed by
// row position. Rows are never deleted; the table only grows.
//
// Identity fields (id, corp, type, creation time) cannot be modified
// through the table API; updates are limited to the value fields and
// the reinvestment counter.
type Table struct {
	rows []models.Asset
}

// NewTable creates a table seeded with the given rows.
func NewTable(rows ...models.Asset) Table {
	t := Table{}
	t.Append(rows...)
	return t
}

// Len returns the number of rows.
func (t Table) Len() int {
	return len(t.rows)
}

// Row returns the row at index i.
func (t Table) Row(i int) (models.Asset, error) {
	if i < 0 || i >= len(t.rows) {
		return models.Asset{}, fmt.Errorf("row index %d out of range (len %d)", i, len(t.rows))
	}
	return t.rows[i], nil
}

// Rows returns a snapshot copy of all rows in insertion order.
// Mutating the returned slice does not affect the table.
func (t Table) Rows() []models.Asset {
	out := make([]models.Asset, len(t.rows))
	copy(out, t.rows)
	return out
}

// Tail returns a snapshot of the most recent n rows (fewer if the table
// is smaller).
func (t Table) Tail(n int) []models.Asset {
	if n < 0 {
		n = 0
	}
	if n > len(t.rows) {
		n = len(t.rows)
	}
	out := make([]models.Asset, n)
	copy(out, t.rows[len(t.rows)-n:])
	return out
}

// Append adds rows to the end of the table, preserving insertion order.
func (t *Table) Append(rows ...models.Asset) {
	t.rows = append(t.rows, rows...)
}

// SetValues overwrites the monetized and transferable value of row i.
func (t *Table) SetValues(i int, monetized, transferable float64) error {
	if i < 0 || i >= len(t.rows) {
		return fmt.Errorf("row index %d out of range (len %d)", i, len(t.rows))
	}
	t.rows[i].MonetizedValue = monetized
	t.rows[i].TransferableValue = transferable
	return nil
}

// AddReinvested increments the reinvestment counter of row i. Negative
// increments are rejected so the counter never decreases.
func (t *Table) AddReinvested(i, n int) error {
	if i < 0 || i >= len(t.rows) {
		return fmt.Errorf("row index %d out of range (len %d)", i, len(t.rows))
	}
	if n < 0 {
		return fmt.Errorf("reinvested increment must be non-negative, got %d", n)
	}
	t.rows[i].Reinvested += n
	return nil
}

// Clone returns an independent copy of the table.
func (t Table) Clone() Table {
	return NewTable(t.rows...)
}

// TotalReinvested returns the sum of the reinvestment counters.
func (t Table) TotalReinvested() int {
	total := 0
	for _, r := range t.rows {
		total += r.Reinvested
	}
	return total
}

// TotalTransferable returns the sum of transferable value across all rows.
func (t Table) TotalTransferable() float64 {
	total := 0.0
	for _, r := range t.rows {
		total += r.TransferableValue
	}
	return total
}
