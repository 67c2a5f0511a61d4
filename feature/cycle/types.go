package cycle

// Result summarizes one reconciliation cycle.
type Result struct {
	// RowsBefore is the row count the cycle started from.
	RowsBefore int `json:"rows_before"`

	// RowsAfter is the row count after emissions were appended.
	RowsAfter int `json:"rows_after"`

	// Matched counts rows whose asset id had a ledger entry.
	Matched int `json:"matched"`

	// Emitted counts new assets created by reinvestment this cycle.
	Emitted int `json:"emitted"`
}

// RunReport aggregates a full driver run for the reporting surface.
type RunReport struct {
	// RunID uniquely identifies the run in logs and reports.
	RunID string `json:"run_id"`

	// Cycles is how many reconciliation cycles were executed.
	Cycles int `json:"cycles"`

	// Seeded counts assets created by initial seeding, zero when the
	// table was already populated.
	Seeded int `json:"seeded"`

	// LedgerEntries is the number of distinct ids in the fetched ledger.
	LedgerEntries int `json:"ledger_entries"`

	// LedgerDegraded is true when the ledger fetch failed and the run
	// proceeded with an empty ledger.
	LedgerDegraded bool `json:"ledger_degraded"`

	// TotalAssets is the final row count.
	TotalAssets int `json:"total_assets"`

	// TotalReinvested is the sum of reinvestment counters across rows.
	TotalReinvested int `json:"total_reinvested"`

	// TotalTransferable is the sum of transferable value across rows.
	TotalTransferable float64 `json:"total_transferable"`
}
