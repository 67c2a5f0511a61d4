package store

import (
	"context"
	"fmt"
	"time"

	"corporate-web/feature/asset"
	"corporate-web/feature/asset/models"

	"gorm.io/gorm"
)

// assetRow is the database shape of one table row. The auto-increment id
// preserves insertion order across load/save round trips; it is not part
// of the asset itself.
type assetRow struct {
	ID                uint      `gorm:"column:id;primaryKey;autoIncrement"`
	AssetID           string    `gorm:"column:asset_id;type:varchar(16)"`
	CorpID            string    `gorm:"column:corp_id;type:varchar(32)"`
	AssetType         string    `gorm:"column:asset_type;type:varchar(16)"`
	CreationTime      time.Time `gorm:"column:creation_time"`
	MonetizedValue    float64   `gorm:"column:monetized_value"`
	Reinvested        int       `gorm:"column:reinvested"`
	TransferableValue float64   `gorm:"column:transferable_value"`
}

// TableName sets the MySQL table backing the store.
func (assetRow) TableName() string {
	return "corporate_web_assets"
}

func (r assetRow) toAsset() models.Asset {
	return models.Asset{
		AssetID:           r.AssetID,
		CorpID:            r.CorpID,
		AssetType:         r.AssetType,
		CreationTime:      r.CreationTime,
		MonetizedValue:    r.MonetizedValue,
		Reinvested:        r.Reinvested,
		TransferableValue: r.TransferableValue,
	}
}

func toRow(a models.Asset) assetRow {
	return assetRow{
		AssetID:           a.AssetID,
		CorpID:            a.CorpID,
		AssetType:         a.AssetType,
		CreationTime:      a.CreationTime,
		MonetizedValue:    a.MonetizedValue,
		Reinvested:        a.Reinvested,
		TransferableValue: a.TransferableValue,
	}
}

// DBStore persists the asset table in MySQL through GORM.
type DBStore struct {
	db *gorm.DB
}

// NewDBStore creates a store over an open GORM connection.
func NewDBStore(db *gorm.DB) *DBStore {
	return &DBStore{db: db}
}

// Migrate creates or updates the backing table schema.
func (s *DBStore) Migrate(ctx context.Context) error {
	if err := s.db.WithContext(ctx).AutoMigrate(&assetRow{}); err != nil {
		return fmt.Errorf("failed to migrate asset table: %w", err)
	}
	return nil
}

// Load implements Store. An absent or empty table loads as empty.
func (s *DBStore) Load(ctx context.Context) (asset.Table, error) {
	var rows []assetRow
	if err := s.db.WithContext(ctx).Order("id").Find(&rows).Error; err != nil {
		return asset.NewTable(), fmt.Errorf("failed to load asset table: %w", err)
	}

	table := asset.NewTable()
	for _, r := range rows {
		table.Append(r.toAsset())
	}
	return table, nil
}

// Save implements Store. The previous snapshot is replaced wholesale in
// one transaction.
func (s *DBStore) Save(ctx context.Context, table asset.Table) error {
	rows := make([]assetRow, 0, table.Len())
	for _, a := range table.Rows() {
		rows = append(rows, toRow(a))
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec("DELETE FROM corporate_web_assets").Error; err != nil {
			return err
		}
		if len(rows) == 0 {
			return nil
		}
		return tx.CreateInBatches(rows, 500).Error
	})
	if err != nil {
		return fmt.Errorf("failed to save asset table: %w", err)
	}
	return nil
}
