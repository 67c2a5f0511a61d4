// Package store persists the corporate asset table.
//
// A run loads the table once at start and writes it once at the end, so
// stores are simple whole-table snapshots. Three backends are provided:
//
//   - CSVStore: a CSV file on disk (the default); a missing file loads as
//     an empty table, and saves replace the file atomically.
//   - DBStore: a MySQL table via GORM, replaced wholesale per save.
//   - ObjectStore: a CSV object in the storage bucket.
//
// All backends share one codec so a snapshot written by one can be read
// by another.
package store
