package job

import (
	"context"
	"strconv"
	"time"

	"go-inventory-ledger/internal/ledger"
	"go-inventory-ledger/internal/model"
	"go-inventory-ledger/internal/repository"
	"go-inventory-ledger/internal/service"
	"go-inventory-ledger/internal/ws"

	"github.com/rs/zerolog"
	"gorm.io/gorm"
)

// ReconcileJob folds the rows accumulated in the external ledgers back into
// the product directory and then clears the ledgers. It runs on the daily
// cron trigger, independently of request handling; nothing synchronizes it
// against a concurrent inventory write, so a row appended while the job runs
// may be cleared without being ingested (last writer wins).
type ReconcileJob struct {
	productRepo repository.ProductRepository
	ledger      ledger.Ledger
	ranges      ledger.Ranges
	hub         *ws.Hub
	log         zerolog.Logger
}

func NewReconcileJob(productRepo repository.ProductRepository, lgr ledger.Ledger, ranges ledger.Ranges, hub *ws.Hub, log zerolog.Logger) *ReconcileJob {
	return &ReconcileJob{
		productRepo: productRepo,
		ledger:      lgr,
		ranges:      ranges,
		hub:         hub,
		log:         log.With().Str("job", "reconcile").Logger(),
	}
}

// Stats summarizes one reconciliation pass.
type Stats struct {
	CountRows   int `json:"countRows"`
	ProductRows int `json:"productRows"`
	WasteRows   int `json:"wasteRows"`
	Skipped     int `json:"skipped"`
}

// Run satisfies cron.Job. Failures are logged and abandoned; the next
// scheduled run picks the rows up again because the sheets are only cleared
// after a fully successful ingest.
func (j *ReconcileJob) Run() {
	j.log.Info().Msg("running scheduled ledger reconciliation")

	stats, err := j.Reconcile(context.Background())
	if err != nil {
		j.log.Error().Err(err).Msg("reconciliation failed")
		return
	}

	j.log.Info().
		Int("count_rows", stats.CountRows).
		Int("product_rows", stats.ProductRows).
		Int("waste_rows", stats.WasteRows).
		Int("skipped", stats.Skipped).
		Msg("reconciliation complete")

	if j.hub != nil {
		j.hub.Publish(map[string]interface{}{
			"type":  "reconciliation_complete",
			"stats": stats,
		})
	}
}

// Reconcile ingests all three sheets into the product directory, then clears
// their data rows. A database error aborts before anything is cleared so no
// ledger row is ever dropped unabsorbed; unparsable rows are skipped.
func (j *ReconcileJob) Reconcile(ctx context.Context) (Stats, error) {
	var stats Stats

	if err := j.ingestCount(ctx, &stats); err != nil {
		return stats, err
	}
	if err := j.ingestProduct(ctx, &stats); err != nil {
		return stats, err
	}
	if err := j.ingestWaste(ctx, &stats); err != nil {
		return stats, err
	}

	for _, rng := range []string{j.ranges.CountData(), j.ranges.ProductData(), j.ranges.WasteData()} {
		if err := j.ledger.Clear(ctx, rng); err != nil {
			return stats, err
		}
	}

	return stats, nil
}

// ingestCount absorbs count-sheet rows [name, category, subcategory, sku,
// quantity] as authoritative product records keyed by SKU.
func (j *ReconcileJob) ingestCount(ctx context.Context, stats *Stats) error {
	rows, err := j.ledger.Rows(ctx, j.ranges.Count())
	if err != nil {
		return err
	}

	for _, row := range dataRows(rows) {
		if len(row) < 5 {
			stats.Skipped++
			continue
		}
		qty, err := strconv.ParseFloat(row[4], 64)
		if err != nil {
			stats.Skipped++
			continue
		}

		product, err := j.productRepo.FindBySKU(row[3])
		switch {
		case err == nil:
			product.ProductName = row[0]
			product.ProductCategory = row[1]
			product.ProductSubcategory = row[2]
			product.Quantity = qty
			if err := j.productRepo.Update(product); err != nil {
				return err
			}
		case err == gorm.ErrRecordNotFound:
			created := &model.Product{
				ProductName:        row[0],
				ProductCategory:    row[1],
				ProductSubcategory: row[2],
				SKU:                row[3],
				Quantity:           qty,
			}
			if err := j.productRepo.Create(created); err != nil {
				return err
			}
		default:
			return err
		}
		stats.CountRows++
	}
	return nil
}

// ingestProduct adds each long-form inventory row's quantity to its product,
// creating a stub when the identifier is unknown.
func (j *ReconcileJob) ingestProduct(ctx context.Context, stats *Stats) error {
	rows, err := j.ledger.Rows(ctx, j.ranges.Product())
	if err != nil {
		return err
	}

	for _, row := range dataRows(rows) {
		if len(row) < 12 {
			stats.Skipped++
			continue
		}
		qty, err := strconv.ParseFloat(row[11], 64)
		if err != nil {
			stats.Skipped++
			continue
		}

		product, _, err := service.ResolveProduct(j.productRepo, row[9], row[10])
		if err != nil {
			return err
		}
		product.Quantity += qty
		if len(row) > 12 {
			if expiry, err := time.Parse("2006-01-02", row[12]); err == nil {
				product.ExpireDate = &expiry
			}
		}
		if err := j.productRepo.Update(product); err != nil {
			return err
		}
		stats.ProductRows++
	}
	return nil
}

// ingestWaste subtracts each waste row's quantity from its product.
func (j *ReconcileJob) ingestWaste(ctx context.Context, stats *Stats) error {
	rows, err := j.ledger.Rows(ctx, j.ranges.Waste())
	if err != nil {
		return err
	}

	for _, row := range dataRows(rows) {
		if len(row) < 5 {
			stats.Skipped++
			continue
		}
		qty, err := strconv.ParseFloat(row[4], 64)
		if err != nil {
			stats.Skipped++
			continue
		}

		product, _, err := service.ResolveProduct(j.productRepo, row[2], row[3])
		if err != nil {
			return err
		}
		product.Quantity -= qty
		if err := j.productRepo.Update(product); err != nil {
			return err
		}
		stats.WasteRows++
	}
	return nil
}

// dataRows drops the header row.
func dataRows(rows [][]string) [][]string {
	if len(rows) <= 1 {
		return nil
	}
	return rows[1:]
}
