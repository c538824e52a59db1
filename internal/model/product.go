package model

import "time"

// Product is the primary directory record. A product is identified either by
// a numeric barcode or by a non-numeric SKU, never both at once. Records may
// start life as bare stubs created by the first inventory event that
// references an unknown identifier; category and quantity stay unset until
// the add-product path fills them in.
type Product struct {
	BaseModel
	ProductName        string     `gorm:"type:varchar(255);not null" json:"productName" validate:"required"`
	SKU                string     `gorm:"type:varchar(100);index" json:"sku"`
	Barcode            *int64     `gorm:"index" json:"barcode,omitempty"`
	ProductCategory    string     `gorm:"type:varchar(100)" json:"productCategory"`
	ProductSubcategory string     `gorm:"type:varchar(100)" json:"productSubcategory"`
	Quantity           float64    `gorm:"default:0" json:"quantity"`
	ExpireDate         *time.Time `gorm:"type:date" json:"expireDate,omitempty"`
}

// ProductSummary is the trimmed shape returned by the search endpoints.
type ProductSummary struct {
	ProductName string `json:"productName"`
	Barcode     *int64 `json:"barcode,omitempty"`
	SKU         string `json:"sku"`
}

// ToSummary converts a Product to its search result shape.
func (p *Product) ToSummary() ProductSummary {
	return ProductSummary{
		ProductName: p.ProductName,
		Barcode:     p.Barcode,
		SKU:         p.SKU,
	}
}
