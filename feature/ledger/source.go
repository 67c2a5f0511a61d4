package ledger

import (
	"context"

	"go.uber.org/zap"
)

// Source fetches the revenue ledger wholesale at the start of a run.
type Source interface {
	// Fetch returns the current ledger. Implementations return an error
	// on fetch failure; callers degrade via FetchOrEmpty.
	Fetch(ctx context.Context) (Ledger, error)
}

// FetchOrEmpty fetches the ledger from src, converting any failure into
// an empty ledger so the run proceeds with no matches. The degraded flag
// reports whether the fallback was taken, so the reporting surface can
// show a warning.
func FetchOrEmpty(ctx context.Context, src Source, l *zap.Logger) (ledger Ledger, degraded bool) {
	fetched, err := src.Fetch(ctx)
	if err != nil {
		l.Warn("Revenue ledger fetch failed, proceeding with empty ledger", zap.Error(err))
		return Empty(), true
	}
	return fetched, false
}

// Static is a fixed in-memory source, used when no remote ledger is
// configured and in tests.
type Static struct {
	ledger Ledger
	err    error
}

// NewStatic wraps a ledger in a Source.
func NewStatic(l Ledger) *Static {
	return &Static{ledger: l}
}

// NewFailing returns a source whose Fetch always fails with err.
func NewFailing(err error) *Static {
	return &Static{err: err}
}

// Fetch implements Source.
func (s *Static) Fetch(ctx context.Context) (Ledger, error) {
	if s.err != nil {
		return Empty(), s.err
	}
	return s.ledger, nil
}
