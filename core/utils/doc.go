// Package utils provides common utility functions for the corporate-web engine.
// It includes best-effort type coercion helpers used when decoding ledger and
// table rows from loosely typed sources (CSV cells, spreadsheet exports).
package utils
