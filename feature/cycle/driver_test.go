package cycle_test

import (
	"context"
	"fmt"
	"testing"

	"corporate-web/feature/asset"
	"corporate-web/feature/cycle"
	"corporate-web/feature/ledger"
	"corporate-web/feature/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func testConfig() cycle.Config {
	return cycle.Config{
		Cycles:      1,
		SeedPerCorp: 1,
		CorpIDs:     "AtlasCorp-A,AtlasCorp-B,AtlasCorp-C",
	}
}

func TestDriver_Run_SeedsEmptyTable(t *testing.T) {
	st := store.NewMemory(asset.NewTable())
	d := cycle.NewDriver(testConfig(), st, ledger.NewStatic(ledger.Empty()), testFactory(1), zap.NewNop())

	report, err := d.Run(context.Background())
	require.NoError(t, err)

	// 3 seeded rows, one cycle with empty ledger: 6 rows, reinvested 3.
	assert.Equal(t, 3, report.Seeded)
	assert.Equal(t, 6, report.TotalAssets)
	assert.Equal(t, 3, report.TotalReinvested)
	assert.Zero(t, report.TotalTransferable)
	assert.False(t, report.LedgerDegraded)
	assert.NotEmpty(t, report.RunID)

	// The final state was persisted.
	persisted, err := st.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 6, persisted.Len())
}

func TestDriver_Run_ExistingTableNotReseeded(t *testing.T) {
	existing := asset.NewTable(row("te-1234", "AtlasCorp-A", 0))
	st := store.NewMemory(existing)
	d := cycle.NewDriver(testConfig(), st, ledger.NewStatic(ledger.Empty()), testFactory(2), zap.NewNop())

	report, err := d.Run(context.Background())
	require.NoError(t, err)

	assert.Zero(t, report.Seeded)
	assert.Equal(t, 2, report.TotalAssets)
}

func TestDriver_Run_MultipleCycles(t *testing.T) {
	cfg := testConfig()
	cfg.Cycles = 3
	st := store.NewMemory(asset.NewTable())
	d := cycle.NewDriver(cfg, st, ledger.NewStatic(ledger.Empty()), testFactory(3), zap.NewNop())

	report, err := d.Run(context.Background())
	require.NoError(t, err)

	// Zero revenue doubles the table every cycle: 3 -> 6 -> 12 -> 24.
	assert.Equal(t, 3, report.Cycles)
	assert.Equal(t, 24, report.TotalAssets)
}

func TestDriver_Run_LedgerValuesFlowIntoReport(t *testing.T) {
	existing := asset.NewTable(row("te-1234", "AtlasCorp-A", 0))
	st := store.NewMemory(existing)
	led := ledger.FromEntries(map[string]float64{"te-1234": 10})
	d := cycle.NewDriver(testConfig(), st, ledger.NewStatic(led), testFactory(4), zap.NewNop())

	report, err := d.Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 1, report.LedgerEntries)
	assert.Equal(t, 6, report.TotalAssets)
	assert.Equal(t, 5, report.TotalReinvested)
	assert.Equal(t, 10.0, report.TotalTransferable)
}

func TestDriver_Run_LedgerFailureDegrades(t *testing.T) {
	st := store.NewMemory(asset.NewTable())
	src := ledger.NewFailing(fmt.Errorf("sheet unavailable"))
	d := cycle.NewDriver(testConfig(), st, src, testFactory(5), zap.NewNop())

	report, err := d.Run(context.Background())
	require.NoError(t, err)

	assert.True(t, report.LedgerDegraded)
	assert.Zero(t, report.LedgerEntries)
	assert.Equal(t, 6, report.TotalAssets)
}

type failingStore struct {
	loadErr error
	saveErr error
}

func (f *failingStore) Load(ctx context.Context) (asset.Table, error) {
	if f.loadErr != nil {
		return asset.NewTable(), f.loadErr
	}
	return asset.NewTable(), nil
}

func (f *failingStore) Save(ctx context.Context, table asset.Table) error {
	return f.saveErr
}

func TestDriver_Run_LoadFailureIsFatal(t *testing.T) {
	st := &failingStore{loadErr: fmt.Errorf("disk gone")}
	d := cycle.NewDriver(testConfig(), st, ledger.NewStatic(ledger.Empty()), testFactory(6), zap.NewNop())

	_, err := d.Run(context.Background())
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "disk gone")
}

func TestDriver_Run_SaveFailureIsFatal(t *testing.T) {
	st := &failingStore{saveErr: fmt.Errorf("disk full")}
	d := cycle.NewDriver(testConfig(), st, ledger.NewStatic(ledger.Empty()), testFactory(7), zap.NewNop())

	_, err := d.Run(context.Background())
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "disk full")
}
