// Package asset provides the corporate asset model: the record type,
// the factory that mints new records, and the ordered table they live in.
//
// The factory takes its randomness and clock as dependencies, so tests
// can pin both and get reproducible identifiers and timestamps. The
// table exposes positional updates only for the mutable fields; the
// identity of a row is fixed at creation.
package asset
