package ledger

import (
	"encoding/csv"
	"fmt"
	"io"

	"corporate-web/core/utils"
)

// Ledger is a keyed view of realized revenue per asset id, read wholesale
// at the start of a run. When the underlying export carries multiple rows
// for the same id, the first row encountered wins.
type Ledger struct {
	values map[string]float64
}

// Empty returns a ledger with no entries. The cycle treats it as
// "no matches for anyone this run".
func Empty() Ledger {
	return Ledger{values: map[string]float64{}}
}

// FromEntries builds a ledger from id/value pairs in order, keeping the
// first value per id.
func FromEntries(entries map[string]float64) Ledger {
	l := Empty()
	for id, v := range entries {
		l.add(id, v)
	}
	return l
}

// Value returns the realized value for an asset id, and whether the
// ledger has an entry for it.
func (l Ledger) Value(assetID string) (float64, bool) {
	v, ok := l.values[assetID]
	return v, ok
}

// Len returns the number of distinct asset ids in the ledger.
func (l Ledger) Len() int {
	return len(l.values)
}

func (l *Ledger) add(assetID string, value float64) {
	if assetID == "" {
		return
	}
	if _, exists := l.values[assetID]; exists {
		// First entry wins on duplicate ids.
		return
	}
	l.values[assetID] = value
}

// ParseCSV decodes a ledger from a CSV export. The first record is the
// header; the asset_id and monetized_value columns are located by name.
// Value cells are coerced best-effort, so a spreadsheet export with
// stray formatting still parses.
func ParseCSV(r io.Reader) (Ledger, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1 // exports are ragged often enough

	header, err := reader.Read()
	if err == io.EOF {
		return Empty(), nil
	}
	if err != nil {
		return Empty(), fmt.Errorf("failed to read ledger header: %w", err)
	}

	idCol, valueCol := -1, -1
	for i, name := range header {
		switch name {
		case "asset_id":
			idCol = i
		case "monetized_value":
			valueCol = i
		}
	}
	if idCol < 0 || valueCol < 0 {
		return Empty(), fmt.Errorf("ledger export missing asset_id/monetized_value columns, got %v", header)
	}

	ledger := Empty()
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return Empty(), fmt.Errorf("failed to read ledger row: %w", err)
		}
		if idCol >= len(record) || valueCol >= len(record) {
			continue
		}
		ledger.add(record[idCol], utils.ToFloat(record[valueCol]))
	}

	return ledger, nil
}
