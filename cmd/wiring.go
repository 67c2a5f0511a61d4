package cmd

import (
	"context"
	"fmt"
	"time"

	"corporate-web/core/config"
	"corporate-web/core/database"
	"corporate-web/core/storage"
	"corporate-web/feature/ledger"
	"corporate-web/feature/store"
)

// newStore builds the persisted table store selected by cfg.Store.Driver.
func newStore(ctx context.Context, cfg *config.Config) (store.Store, error) {
	switch cfg.Store.Driver {
	case store.DriverCSV:
		return store.NewCSVStore(cfg.Store.Path), nil

	case store.DriverMySQL:
		db, err := database.Connect(cfg.Database)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to database: %w", err)
		}
		dbStore := store.NewDBStore(db)
		if err := dbStore.Migrate(ctx); err != nil {
			return nil, err
		}
		return dbStore, nil

	case store.DriverObject:
		client, err := storage.NewClient(cfg.Storage)
		if err != nil {
			return nil, fmt.Errorf("failed to create storage client: %w", err)
		}
		return store.NewObjectStore(client, cfg.Storage.Bucket, cfg.Store.Object), nil

	default:
		return nil, fmt.Errorf("unknown store driver: %s", cfg.Store.Driver)
	}
}

// newLedgerSource builds the revenue ledger source selected by cfg.Ledger.Source.
// The none source reconciles against an empty ledger, which leaves values
// untouched but still reinvests.
func newLedgerSource(cfg *config.Config) (ledger.Source, error) {
	switch cfg.Ledger.Source {
	case ledger.SourceHTTP:
		if cfg.Ledger.URL == "" {
			return nil, fmt.Errorf("ledger source is http but LEDGER_URL is empty")
		}
		return ledger.NewHTTPSource(cfg.Ledger.URL, time.Duration(cfg.Ledger.TimeoutSeconds)*time.Second), nil

	case ledger.SourceObject:
		client, err := storage.NewClient(cfg.Storage)
		if err != nil {
			return nil, fmt.Errorf("failed to create storage client: %w", err)
		}
		return ledger.NewObjectSource(client, cfg.Storage.Bucket, cfg.Ledger.Object), nil

	case ledger.SourceNone:
		return ledger.NewStatic(ledger.Empty()), nil

	default:
		return nil, fmt.Errorf("unknown ledger source: %s", cfg.Ledger.Source)
	}
}
