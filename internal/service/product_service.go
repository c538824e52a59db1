package service

import (
	"context"
	"errors"
	"time"

	"go-inventory-ledger/internal/ledger"
	"go-inventory-ledger/internal/model"
	"go-inventory-ledger/internal/repository"

	"gorm.io/gorm"
)

var (
	ErrProductNotFound      = errors.New("product not found")
	ErrMissingProductFields = errors.New("Product Name, SKU, Quantity, Product Category, and Product Subcategory are required")
	ErrInvalidExpireDate    = errors.New("invalid expireDate format, use YYYY-MM-DD")
)

// SearchLimit caps name-search results.
const SearchLimit = 5

type ProductService interface {
	// FindByIdentifier routes numeric identifiers to barcode lookup and
	// everything else to SKU lookup.
	FindByIdentifier(identifier string) (*model.Product, error)
	Search(query string, excludeEmptySKU bool) ([]model.ProductSummary, error)
	// AddProduct persists a fully described product to the directory.
	AddProduct(req *AddProductRequest) (*model.Product, error)
	// SubmitProduct appends the product details to the count sheet instead
	// of the database; the reconciliation job folds them in later.
	SubmitProduct(ctx context.Context, req *AddProductRequest) error
}

type AddProductRequest struct {
	ProductName        string `json:"productName"`
	SKU                string `json:"sku"`
	Barcode            Number `json:"barcode"`
	Quantity           Number `json:"quantity"`
	ProductCategory    string `json:"productCategory"`
	ProductSubcategory string `json:"productSubcategory"`
	ExpireDate         string `json:"expireDate"`
}

func (r *AddProductRequest) complete() bool {
	return r.ProductName != "" && r.SKU != "" && r.Quantity.Value() != 0 &&
		r.ProductCategory != "" && r.ProductSubcategory != ""
}

type productService struct {
	productRepo repository.ProductRepository
	ledger      ledger.Ledger
	ranges      ledger.Ranges
}

func NewProductService(productRepo repository.ProductRepository, lgr ledger.Ledger, ranges ledger.Ranges) ProductService {
	return &productService{
		productRepo: productRepo,
		ledger:      lgr,
		ranges:      ranges,
	}
}

func (s *productService) FindByIdentifier(identifier string) (*model.Product, error) {
	var (
		product *model.Product
		err     error
	)
	if barcode, numeric := ParseBarcode(identifier); numeric {
		product, err = s.productRepo.FindByBarcode(barcode)
	} else {
		product, err = s.productRepo.FindBySKU(identifier)
	}
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}
	return product, nil
}

func (s *productService) Search(query string, excludeEmptySKU bool) ([]model.ProductSummary, error) {
	products, err := s.productRepo.SearchByName(query, SearchLimit, excludeEmptySKU)
	if err != nil {
		return nil, err
	}
	summaries := make([]model.ProductSummary, len(products))
	for i, p := range products {
		summaries[i] = p.ToSummary()
	}
	return summaries, nil
}

func (s *productService) AddProduct(req *AddProductRequest) (*model.Product, error) {
	if !req.complete() {
		return nil, ErrMissingProductFields
	}

	product := &model.Product{
		ProductName:        req.ProductName,
		SKU:                req.SKU,
		Quantity:           req.Quantity.Value(),
		ProductCategory:    req.ProductCategory,
		ProductSubcategory: req.ProductSubcategory,
	}

	if req.Barcode.Present() {
		barcode := int64(req.Barcode.Value())
		product.Barcode = &barcode
	}
	if req.ExpireDate != "" {
		parsed, err := time.Parse("2006-01-02", req.ExpireDate)
		if err != nil {
			return nil, ErrInvalidExpireDate
		}
		product.ExpireDate = &parsed
	}

	if err := s.productRepo.Create(product); err != nil {
		return nil, err
	}
	return product, nil
}

func (s *productService) SubmitProduct(ctx context.Context, req *AddProductRequest) error {
	if !req.complete() {
		return ErrMissingProductFields
	}

	row := []interface{}{
		req.ProductName,
		req.ProductCategory,
		req.ProductSubcategory,
		req.SKU,
		req.Quantity.Value(),
	}
	return s.ledger.Append(ctx, s.ranges.Count(), row, ledger.InputRaw)
}
