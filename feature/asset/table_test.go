package asset_test

import (
	"testing"
	"time"

	"corporate-web/feature/asset"
	"corporate-web/feature/asset/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleRow(id string) models.Asset {
	return models.Asset{
		AssetID:      id,
		CorpID:       "AtlasCorp-A",
		AssetType:    models.TypeScript,
		CreationTime: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

func TestTable_AppendPreservesOrder(t *testing.T) {
	table := asset.NewTable()
	table.Append(sampleRow("sc-1000"))
	table.Append(sampleRow("sc-2000"), sampleRow("sc-3000"))

	rows := table.Rows()
	require.Len(t, rows, 3)
	assert.Equal(t, "sc-1000", rows[0].AssetID)
	assert.Equal(t, "sc-2000", rows[1].AssetID)
	assert.Equal(t, "sc-3000", rows[2].AssetID)
}

func TestTable_RowsIsSnapshot(t *testing.T) {
	table := asset.NewTable(sampleRow("sc-1000"))

	rows := table.Rows()
	rows[0].AssetID = "mutated"
	rows[0].MonetizedValue = 99

	got, err := table.Row(0)
	require.NoError(t, err)
	assert.Equal(t, "sc-1000", got.AssetID)
	assert.Zero(t, got.MonetizedValue)
}

func TestTable_SetValues(t *testing.T) {
	table := asset.NewTable(sampleRow("sc-1000"), sampleRow("sc-2000"))

	require.NoError(t, table.SetValues(1, 10, 10))

	first, err := table.Row(0)
	require.NoError(t, err)
	assert.Zero(t, first.MonetizedValue)

	second, err := table.Row(1)
	require.NoError(t, err)
	assert.Equal(t, 10.0, second.MonetizedValue)
	assert.Equal(t, 10.0, second.TransferableValue)
}

func TestTable_SetValues_OutOfRange(t *testing.T) {
	table := asset.NewTable(sampleRow("sc-1000"))

	assert.Error(t, table.SetValues(-1, 1, 1))
	assert.Error(t, table.SetValues(1, 1, 1))
}

func TestTable_AddReinvested(t *testing.T) {
	table := asset.NewTable(sampleRow("sc-1000"))

	require.NoError(t, table.AddReinvested(0, 3))
	require.NoError(t, table.AddReinvested(0, 2))

	row, err := table.Row(0)
	require.NoError(t, err)
	assert.Equal(t, 5, row.Reinvested)

	// The counter is monotonic; negative increments are rejected.
	assert.Error(t, table.AddReinvested(0, -1))
	row, err = table.Row(0)
	require.NoError(t, err)
	assert.Equal(t, 5, row.Reinvested)
}

func TestTable_CloneIsIndependent(t *testing.T) {
	table := asset.NewTable(sampleRow("sc-1000"))

	clone := table.Clone()
	require.NoError(t, clone.SetValues(0, 7, 7))
	clone.Append(sampleRow("sc-2000"))

	assert.Equal(t, 1, table.Len())
	row, err := table.Row(0)
	require.NoError(t, err)
	assert.Zero(t, row.MonetizedValue)
}

func TestTable_Tail(t *testing.T) {
	table := asset.NewTable(sampleRow("sc-1000"), sampleRow("sc-2000"), sampleRow("sc-3000"))

	tail := table.Tail(2)
	require.Len(t, tail, 2)
	assert.Equal(t, "sc-2000", tail[0].AssetID)
	assert.Equal(t, "sc-3000", tail[1].AssetID)

	assert.Len(t, table.Tail(10), 3)
	assert.Empty(t, table.Tail(0))
}

func TestTable_Aggregates(t *testing.T) {
	a := sampleRow("sc-1000")
	a.Reinvested = 2
	a.TransferableValue = 1.5
	b := sampleRow("sc-2000")
	b.Reinvested = 3
	b.TransferableValue = 2.5

	table := asset.NewTable(a, b)
	assert.Equal(t, 5, table.TotalReinvested())
	assert.Equal(t, 4.0, table.TotalTransferable())
}
