package main

import (
	"context"

	"go-inventory-ledger/internal/job"
	"go-inventory-ledger/internal/ledger"
	"go-inventory-ledger/internal/repository"
	"go-inventory-ledger/pkg/config"
	"go-inventory-ledger/pkg/database"
	"go-inventory-ledger/pkg/logger"
)

// Runs one reconciliation pass outside the daily schedule, useful after a
// spreadsheet mishap or before a data migration.
func main() {
	cfg := config.Load()
	log := logger.New(cfg.Env)

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}

	ctx := context.Background()
	sheetLedger, err := ledger.NewSheetsLedger(ctx, cfg.GoogleCredentials, cfg.SpreadsheetID)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create sheets ledger client")
	}
	ranges := ledger.Ranges{
		WasteSheet:   cfg.WasteSheet,
		ProductSheet: cfg.ProductSheet,
		CountSheet:   cfg.CountSheet,
	}

	reconcile := job.NewReconcileJob(repository.NewProductRepo(db), sheetLedger, ranges, nil, log)
	stats, err := reconcile.Reconcile(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("reconciliation failed")
	}

	log.Info().
		Int("count_rows", stats.CountRows).
		Int("product_rows", stats.ProductRows).
		Int("waste_rows", stats.WasteRows).
		Int("skipped", stats.Skipped).
		Msg("reconciliation complete")
}
