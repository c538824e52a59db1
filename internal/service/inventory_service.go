package service

import (
	"context"
	"errors"
	"sort"
	"time"

	"go-inventory-ledger/internal/ledger"
	"go-inventory-ledger/internal/model"
	"go-inventory-ledger/internal/repository"
	"go-inventory-ledger/internal/ws"
)

var (
	ErrInvalidQuantity = errors.New("invalid data type for quantity")
	ErrLedgerEmpty     = errors.New("no data found in the sheet")
	ErrNoRecentProduct = errors.New("no records found for this user")
)

// InventoryEvent is the transient submission describing one inventory
// movement. It is never persisted as its own entity: it becomes exactly one
// ledger row, plus at most a lazily created stub product.
type InventoryEvent struct {
	BarcodeOrSKU      string     `json:"barcodeOrSKU"`
	QuantityPerCarton Number     `json:"quantityPerCarton"`
	NoOfCarton        Number     `json:"noOfCarton"`
	Establishment     int        `json:"establishment"`
	Username          string     `json:"username"`
	Imagery           string     `json:"imagery"`
	Role              model.Role `json:"role"`
	ProductName       string     `json:"productName"`
	VendorName        string     `json:"vendorName"`
	InvoiceNumber     string     `json:"invoiceNumber"`
	ExpiryDate        string     `json:"expiryDate"`
	IsProductLost     string     `json:"isProductLost"`
}

type InventoryService interface {
	// RecordEvent resolves the referenced product, formats a row and appends
	// it to the ledger selected by the actor's role.
	RecordEvent(ctx context.Context, event *InventoryEvent) error
	// LastProductAdded returns the product name of the newest
	// product-management row written by username.
	LastProductAdded(ctx context.Context, username string) (string, error)
}

type inventoryService struct {
	productRepo repository.ProductRepository
	ledger      ledger.Ledger
	ranges      ledger.Ranges
	hub         *ws.Hub
	now         func() time.Time
}

func NewInventoryService(productRepo repository.ProductRepository, lgr ledger.Ledger, ranges ledger.Ranges, hub *ws.Hub) InventoryService {
	return &inventoryService{
		productRepo: productRepo,
		ledger:      lgr,
		ranges:      ranges,
		hub:         hub,
		now:         time.Now,
	}
}

func (s *inventoryService) RecordEvent(ctx context.Context, event *InventoryEvent) error {
	// 1. Quantity: per-carton quantity times carton count, both defaulting
	// to 1. A supplied non-numeric value is a client error.
	if event.QuantityPerCarton.Invalid() || event.NoOfCarton.Invalid() {
		return ErrInvalidQuantity
	}
	cartons := event.NoOfCarton.Or(1)
	quantity := event.QuantityPerCarton.Value() * cartons
	if !event.QuantityPerCarton.Present() || quantity == 0 {
		quantity = 1
	}

	// 2. Resolve or lazily create the product
	product, _, err := ResolveProduct(s.productRepo, event.BarcodeOrSKU, event.ProductName)
	if err != nil {
		return err
	}

	// 3. Site name from the fixed establishment table
	siteName := model.SiteName(event.Establishment)

	now := s.now()
	date := now.Format("2006-01-02")
	clock := now.Format("15:04")

	// 4. Row shape and destination are both decided by the actor's role:
	// waste events get the short 7-column row on the waste sheet, everything
	// else gets the full 15-column row on the product-management sheet.
	var (
		row []interface{}
		rng string
	)
	if event.Role == model.RoleWasteManagement {
		row = []interface{}{
			date,
			clock,
			event.BarcodeOrSKU,
			event.ProductName,
			quantity,
			event.Username,
			siteName,
		}
		rng = s.ranges.Waste()
	} else {
		row = []interface{}{
			date,
			clock,
			event.Username,
			event.VendorName,
			event.InvoiceNumber,
			perCartonCell(event.QuantityPerCarton),
			lostFlag(event.IsProductLost),
			event.Establishment,
			siteName,
			resolvedIdentifier(event.BarcodeOrSKU, product),
			product.ProductName,
			quantity,
			event.ExpiryDate,
			imageCell(event.Imagery),
			"TRUE",
		}
		rng = s.ranges.Product()
	}

	// 5. Single atomic append; a failure surfaces as-is with no cleanup of
	// the stub product.
	if err := s.ledger.Append(ctx, rng, row, ledger.InputUserEntered); err != nil {
		return err
	}

	if s.hub != nil {
		s.hub.Publish(map[string]interface{}{
			"type":        "ledger_append",
			"role":        event.Role,
			"actor":       event.Username,
			"productName": product.ProductName,
			"quantity":    quantity,
			"site":        siteName,
		})
	}

	return nil
}

func (s *inventoryService) LastProductAdded(ctx context.Context, username string) (string, error) {
	rows, err := s.ledger.Rows(ctx, s.ranges.Product())
	if err != nil {
		return "", err
	}
	if len(rows) == 0 {
		return "", ErrLedgerEmpty
	}

	type match struct {
		timestamp   string
		productName string
	}
	var matches []match

	// Skip the header row; short rows are silently dropped.
	for _, row := range rows[1:] {
		if len(row) < 11 || row[2] != username {
			continue
		}
		name := row[10]
		if name == "" {
			name = "Unknown Product"
		}
		matches = append(matches, match{
			timestamp:   row[0] + " " + row[1],
			productName: name,
		})
	}

	if len(matches) == 0 {
		return "", ErrNoRecentProduct
	}

	// Lexicographic, not calendar-aware: inconsistent zero-padding in the
	// sheet can misorder across month boundaries. Kept for compatibility
	// with the existing ledger data.
	sort.Slice(matches, func(i, j int) bool {
		return matches[i].timestamp > matches[j].timestamp
	})

	return matches[0].productName, nil
}

// lostFlag encodes the checkbox value as the string the sheet expects.
func lostFlag(isProductLost string) string {
	if isProductLost == "on" {
		return "TRUE"
	}
	return "FALSE"
}

func perCartonCell(n Number) interface{} {
	if n.Present() {
		return n.Value()
	}
	return ""
}

// resolvedIdentifier echoes the resolved product's identifier of the same
// kind the caller supplied.
func resolvedIdentifier(identifier string, product *model.Product) interface{} {
	if _, numeric := ParseBarcode(identifier); numeric {
		if product.Barcode != nil {
			return *product.Barcode
		}
		return ""
	}
	return product.SKU
}

func imageCell(imagery string) string {
	if imagery == "" {
		return "image"
	}
	return imagery
}
