// Package report exposes the reporting surface: read-only views over the
// persisted asset table for the dashboard.
//
// It serves the aggregate metrics (total assets, total reinvested, total
// transferable revenue), the full table, and the most recent N rows. The
// package never mutates the table; runs happen in the run command,
// reporting in the serve command.
package report
