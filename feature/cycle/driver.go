package cycle

import (
	"context"
	"fmt"

	"corporate-web/feature/asset"
	"corporate-web/feature/ledger"
	"corporate-web/feature/store"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Driver owns one simulation run: it loads the persisted table, seeds it
// when empty, executes the configured number of cycles, and persists the
// result. The table is threaded through the cycles as a value; nothing is
// shared or mutated outside the run.
type Driver struct {
	cfg     Config
	store   store.Store
	source  ledger.Source
	factory *asset.Factory
	logger  *zap.Logger
}

// NewDriver wires a driver from its collaborators.
func NewDriver(cfg Config, st store.Store, source ledger.Source, factory *asset.Factory, logger *zap.Logger) *Driver {
	return &Driver{
		cfg:     cfg,
		store:   st,
		source:  source,
		factory: factory,
		logger:  logger,
	}
}

// Run executes a full run and returns its report. A ledger fetch failure
// degrades to an empty ledger; a store load or final save failure is fatal.
func (d *Driver) Run(ctx context.Context) (*RunReport, error) {
	runID := uuid.NewString()
	l := d.logger.With(zap.String("run_id", runID))

	table, err := d.store.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load asset table: %w", err)
	}
	l.Info("Asset table loaded", zap.Int("rows", table.Len()))

	led, degraded := ledger.FetchOrEmpty(ctx, d.source, l)
	l.Info("Revenue ledger fetched",
		zap.Int("entries", led.Len()),
		zap.Bool("degraded", degraded),
	)

	seeded := 0
	if table.Len() == 0 {
		table, seeded = d.seed(table)
		l.Info("Seeded empty asset table",
			zap.Int("assets", seeded),
			zap.Strings("corps", d.cfg.Corps()),
		)
	}

	for i := 1; i <= d.cfg.Cycles; i++ {
		var res Result
		table, res = Run(table, led, d.factory)
		l.Info("Cycle complete",
			zap.Int("cycle", i),
			zap.Int("rows_before", res.RowsBefore),
			zap.Int("rows_after", res.RowsAfter),
			zap.Int("matched", res.Matched),
			zap.Int("emitted", res.Emitted),
		)
	}

	if err := d.store.Save(ctx, table); err != nil {
		return nil, fmt.Errorf("failed to persist asset table: %w", err)
	}

	report := &RunReport{
		RunID:             runID,
		Cycles:            d.cfg.Cycles,
		Seeded:            seeded,
		LedgerEntries:     led.Len(),
		LedgerDegraded:    degraded,
		TotalAssets:       table.Len(),
		TotalReinvested:   table.TotalReinvested(),
		TotalTransferable: table.TotalTransferable(),
	}

	l.Info("Run complete",
		zap.Int("total_assets", report.TotalAssets),
		zap.Int("total_reinvested", report.TotalReinvested),
		zap.Float64("total_transferable", report.TotalTransferable),
	)

	return report, nil
}

// seed populates an empty table with SeedPerCorp zero-value assets for
// each corporate entity, before any cycle runs.
func (d *Driver) seed(table asset.Table) (asset.Table, int) {
	seeded := 0
	for _, corp := range d.cfg.Corps() {
		for i := 0; i < d.cfg.SeedPerCorp; i++ {
			table.Append(d.factory.Create(corp, 0))
			seeded++
		}
	}
	return table, seeded
}
