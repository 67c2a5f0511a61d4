// Package cycle implements the reconciliation-and-reinvestment engine.
//
// One cycle takes a snapshot of the current table rows and, for each row,
// syncs its value fields from the revenue ledger (asset id equality, first
// ledger entry wins) and reinvests: max(1, floor(monetized_value * 0.5))
// new zero-value assets owned by the row's corp. Emissions are appended
// after the pass, so they only participate from the next cycle onward.
//
// The floor of one emission per row means the table grows by at least its
// own row count every cycle, even with zero revenue. That geometric growth
// is an intentional property of the model, not something the engine clamps.
//
// Run is a pure function from (table, ledger) to the next table; the
// Driver composes N of them between one store load and one store save.
package cycle
