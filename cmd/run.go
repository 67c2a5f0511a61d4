package cmd

import (
	"context"
	"log"

	"corporate-web/core/config"
	"corporate-web/core/logger"
	"corporate-web/feature/asset"
	"corporate-web/feature/cycle"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var runCycles int

// runCmd represents the run command
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the reconciliation simulation",
	Long: `Loads the persisted asset table, seeds it when empty, reconciles it
against the revenue ledger for the configured number of cycles, and persists
the result.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		// 1. Load Configuration
		cfg, err := config.LoadConfig(".")
		if err != nil {
			log.Fatalf("Failed to load configuration: %v", err)
		}

		// 2. Initialize Logger
		logg, err := logger.New(&cfg.Log)
		if err != nil {
			log.Fatalf("Failed to initialize logger: %v", err)
		}
		defer logg.Sync()
		zap.ReplaceGlobals(logg)

		// Flag beats environment
		if cmd.Flags().Changed("cycles") {
			cfg.Simulation.Cycles = runCycles
		}

		ctx := cmd.Context()
		if ctx == nil {
			ctx = context.Background()
		}

		// 3. Build Store and Ledger Source
		st, err := newStore(ctx, cfg)
		if err != nil {
			return err
		}
		source, err := newLedgerSource(cfg)
		if err != nil {
			return err
		}

		// 4. Run
		driver := cycle.NewDriver(cfg.Simulation, st, source, asset.NewFactory(nil, nil), logg)
		report, err := driver.Run(ctx)
		if err != nil {
			return err
		}

		logg.Info("Simulation finished",
			zap.String("run_id", report.RunID),
			zap.Int("cycles", report.Cycles),
			zap.Int("seeded", report.Seeded),
			zap.Int("ledger_entries", report.LedgerEntries),
			zap.Bool("ledger_degraded", report.LedgerDegraded),
			zap.Int("total_assets", report.TotalAssets),
			zap.Int("total_reinvested", report.TotalReinvested),
			zap.Float64("total_transferable", report.TotalTransferable),
		)
		return nil
	},
}

func init() {
	runCmd.Flags().IntVar(&runCycles, "cycles", 0, "override the configured number of cycles")
	RootCmd.AddCommand(runCmd)
}
