package repository

import (
	"go-inventory-ledger/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ProductRepository interface {
	Create(product *model.Product) error
	FindByBarcode(barcode int64) (*model.Product, error)
	FindBySKU(sku string) (*model.Product, error)
	FindByID(id uuid.UUID) (*model.Product, error)
	Update(product *model.Product) error
	// SearchByName matches product names case-insensitively, capped at limit.
	// excludeEmptySKU drops records that have no SKU yet (barcode-only stubs).
	SearchByName(query string, limit int, excludeEmptySKU bool) ([]model.Product, error)
}

type productRepo struct {
	db *gorm.DB
}

func NewProductRepo(db *gorm.DB) ProductRepository {
	return &productRepo{db}
}

func (r *productRepo) Create(product *model.Product) error {
	return r.db.Create(product).Error
}

func (r *productRepo) FindByBarcode(barcode int64) (*model.Product, error) {
	var product model.Product
	err := r.db.First(&product, "barcode = ?", barcode).Error
	if err != nil {
		return nil, err
	}
	return &product, nil
}

func (r *productRepo) FindBySKU(sku string) (*model.Product, error) {
	var product model.Product
	err := r.db.First(&product, "sku = ?", sku).Error
	if err != nil {
		return nil, err
	}
	return &product, nil
}

func (r *productRepo) FindByID(id uuid.UUID) (*model.Product, error) {
	var product model.Product
	err := r.db.First(&product, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &product, nil
}

func (r *productRepo) Update(product *model.Product) error {
	return r.db.Save(product).Error
}

func (r *productRepo) SearchByName(query string, limit int, excludeEmptySKU bool) ([]model.Product, error) {
	var products []model.Product
	q := r.db.Where("product_name ILIKE ?", "%"+query+"%")
	if excludeEmptySKU {
		q = q.Where("sku <> ''")
	}
	err := q.Limit(limit).Find(&products).Error
	return products, err
}
