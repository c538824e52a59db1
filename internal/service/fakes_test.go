package service

import (
	"context"
	"strings"

	"go-inventory-ledger/internal/ledger"
	"go-inventory-ledger/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// In-memory fakes standing in for the database and the spreadsheet service.

type fakeProductRepo struct {
	products  []*model.Product
	createErr error

	barcodeLookups []int64
	skuLookups     []string
}

func (f *fakeProductRepo) Create(product *model.Product) error {
	if f.createErr != nil {
		return f.createErr
	}
	product.ID = uuid.New()
	f.products = append(f.products, product)
	return nil
}

func (f *fakeProductRepo) FindByBarcode(barcode int64) (*model.Product, error) {
	f.barcodeLookups = append(f.barcodeLookups, barcode)
	for _, p := range f.products {
		if p.Barcode != nil && *p.Barcode == barcode {
			return p, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeProductRepo) FindBySKU(sku string) (*model.Product, error) {
	f.skuLookups = append(f.skuLookups, sku)
	for _, p := range f.products {
		if p.SKU == sku {
			return p, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeProductRepo) FindByID(id uuid.UUID) (*model.Product, error) {
	for _, p := range f.products {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeProductRepo) Update(product *model.Product) error {
	return nil
}

func (f *fakeProductRepo) SearchByName(query string, limit int, excludeEmptySKU bool) ([]model.Product, error) {
	var out []model.Product
	for _, p := range f.products {
		if len(out) == limit {
			break
		}
		if excludeEmptySKU && p.SKU == "" {
			continue
		}
		if strings.Contains(strings.ToLower(p.ProductName), strings.ToLower(query)) {
			out = append(out, *p)
		}
	}
	return out, nil
}

type appendCall struct {
	rng   string
	row   []interface{}
	input ledger.ValueInput
}

type fakeLedger struct {
	appends     []appendCall
	appendErr   error
	rowsByRange map[string][][]string
	rowsErr     error
	cleared     []string
}

func (f *fakeLedger) Append(ctx context.Context, rng string, row []interface{}, input ledger.ValueInput) error {
	if f.appendErr != nil {
		return f.appendErr
	}
	f.appends = append(f.appends, appendCall{rng: rng, row: row, input: input})
	return nil
}

func (f *fakeLedger) Rows(ctx context.Context, rng string) ([][]string, error) {
	if f.rowsErr != nil {
		return nil, f.rowsErr
	}
	return f.rowsByRange[rng], nil
}

func (f *fakeLedger) Clear(ctx context.Context, rng string) error {
	f.cleared = append(f.cleared, rng)
	return nil
}

type fakeUserRepo struct {
	users     []*model.User
	createErr error
}

func (f *fakeUserRepo) FindByName(name string, establishmentID *int) (*model.User, error) {
	for _, u := range f.users {
		if u.Name != name {
			continue
		}
		if establishmentID != nil {
			if u.EstablishmentID == nil || *u.EstablishmentID != *establishmentID {
				continue
			}
		}
		return u, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeUserRepo) Create(user *model.User) error {
	if f.createErr != nil {
		return f.createErr
	}
	user.ID = uuid.New()
	f.users = append(f.users, user)
	return nil
}

func (f *fakeUserRepo) Delete(name string, establishmentID int) error {
	for i, u := range f.users {
		if u.Name == name && u.EstablishmentID != nil && *u.EstablishmentID == establishmentID {
			f.users = append(f.users[:i], f.users[i+1:]...)
			return nil
		}
	}
	return nil
}

func (f *fakeUserRepo) FindAll() ([]model.User, error) {
	out := make([]model.User, len(f.users))
	for i, u := range f.users {
		out[i] = *u
	}
	return out, nil
}
