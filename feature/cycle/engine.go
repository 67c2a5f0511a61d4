package cycle

import (
	"corporate-web/feature/asset"
	"corporate-web/feature/asset/models"
	"corporate-web/feature/ledger"
)

// reinvestRate is the share of monetized value converted into new assets
// each cycle.
const reinvestRate = 0.5

// reinvestCount returns how many assets a row emits for its monetized
// value: floor(value * rate), floored at one. Every row emits at least
// one asset per cycle, so the table grows without bound.
func reinvestCount(monetizedValue float64) int {
	n := int(monetizedValue * reinvestRate)
	if n < 1 {
		return 1
	}
	return n
}

// Run executes one reconciliation-and-reinvestment cycle and returns the
// next table state. The input table is not modified.
//
// The pass covers a snapshot of the rows present when it starts; assets
// emitted during the pass are appended afterwards and are not matched or
// reinvested until the next cycle. Matching is by asset id equality only,
// with no corp cross-check; rows without a ledger entry keep their values
// from the previous cycle.
func Run(table asset.Table, led ledger.Ledger, factory *asset.Factory) (asset.Table, Result) {
	next := table.Clone()
	result := Result{RowsBefore: next.Len()}

	emitted := make([]models.Asset, 0, next.Len())
	for i := 0; i < result.RowsBefore; i++ {
		row, err := next.Row(i)
		if err != nil {
			// Unreachable: i is bounded by the snapshot length.
			continue
		}

		if value, ok := led.Value(row.AssetID); ok {
			_ = next.SetValues(i, value, value)
			row.MonetizedValue = value
			result.Matched++
		}

		numNew := reinvestCount(row.MonetizedValue)
		for j := 0; j < numNew; j++ {
			emitted = append(emitted, factory.Create(row.CorpID, 0))
		}
		_ = next.AddReinvested(i, numNew)
	}

	next.Append(emitted...)
	result.Emitted = len(emitted)
	result.RowsAfter = next.Len()

	return next, result
}
