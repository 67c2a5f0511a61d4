package report

import (
	"context"

	"corporate-web/feature/asset/models"
	"corporate-web/feature/store"

	"go.uber.org/zap"
)

// Metrics are the three aggregates the dashboard displays.
type Metrics struct {
	// TotalAssets is the current row count of the asset table.
	TotalAssets int `json:"total_assets"`

	// TotalReinvested is the sum of reinvestment counters across rows.
	TotalReinvested int `json:"total_reinvested"`

	// TotalTransferable is the sum of transferable revenue across rows.
	TotalTransferable float64 `json:"total_transferable"`
}

// Service provides read-only views over the persisted asset table.
type Service struct {
	store  store.Store
	logger *zap.Logger
}

// NewService creates a new report service.
func NewService(st store.Store, logger *zap.Logger) *Service {
	return &Service{store: st, logger: logger}
}

// Metrics loads the table and computes the dashboard aggregates.
func (s *Service) Metrics(ctx context.Context) (Metrics, error) {
	table, err := s.store.Load(ctx)
	if err != nil {
		return Metrics{}, err
	}
	return Metrics{
		TotalAssets:       table.Len(),
		TotalReinvested:   table.TotalReinvested(),
		TotalTransferable: table.TotalTransferable(),
	}, nil
}

// All returns every asset row in insertion order.
func (s *Service) All(ctx context.Context) ([]models.Asset, error) {
	table, err := s.store.Load(ctx)
	if err != nil {
		return nil, err
	}
	return table.Rows(), nil
}

// Latest returns the most recent n rows.
func (s *Service) Latest(ctx context.Context, n int) ([]models.Asset, error) {
	table, err := s.store.Load(ctx)
	if err != nil {
		return nil, err
	}
	return table.Tail(n), nil
}
