package service

import (
	"errors"
	"strconv"

	"go-inventory-ledger/internal/model"
	"go-inventory-ledger/internal/repository"

	"gorm.io/gorm"
)

// ParseBarcode decides how an identifier routes: numeric identifiers are
// barcodes, everything else is a SKU. A lookup key is one or the other, never
// both.
func ParseBarcode(identifier string) (int64, bool) {
	f, err := strconv.ParseFloat(identifier, 64)
	if err != nil {
		return 0, false
	}
	return int64(f), true
}

// ResolveProduct finds the product referenced by an identifier, creating a
// bare stub when nothing matches. The stub carries only the supplied name and
// whichever identifier type was given; category and quantity stay unset until
// the add-product path fills them in. Returns the product and whether it was
// created.
func ResolveProduct(repo repository.ProductRepository, identifier, fallbackName string) (*model.Product, bool, error) {
	barcode, numeric := ParseBarcode(identifier)

	var (
		product *model.Product
		err     error
	)
	if numeric {
		product, err = repo.FindByBarcode(barcode)
	} else {
		product, err = repo.FindBySKU(identifier)
	}
	if err == nil {
		return product, false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, err
	}

	name := fallbackName
	if name == "" {
		name = "Unknown Product"
	}
	stub := &model.Product{ProductName: name}
	if numeric {
		stub.Barcode = &barcode
	} else {
		stub.SKU = identifier
	}
	if err := repo.Create(stub); err != nil {
		return nil, false, err
	}
	return stub, true, nil
}
