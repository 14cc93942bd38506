package service

import (
	"context"
	"errors"

	"github.com/santhoshsharuk/billing-api/internal/domain/entity"
)

// In-memory repository fakes. They implement only the behavior the
// services rely on; errors can be injected per operation.

type fakeInvoiceRepo struct {
	invoices  []entity.Invoice
	nextID    uint
	createErr error
	readErr   error
}

func (r *fakeInvoiceRepo) Create(_ context.Context, invoice *entity.Invoice) error {
	if r.createErr != nil {
		return r.createErr
	}
	r.nextID++
	invoice.ID = r.nextID
	r.invoices = append(r.invoices, *invoice)
	return nil
}

func (r *fakeInvoiceRepo) GetByID(_ context.Context, id uint) (*entity.Invoice, error) {
	if r.readErr != nil {
		return nil, r.readErr
	}
	for i := range r.invoices {
		if r.invoices[i].ID == id {
			inv := r.invoices[i]
			return &inv, nil
		}
	}
	return nil, nil
}

func (r *fakeInvoiceRepo) GetAll(_ context.Context) ([]entity.Invoice, error) {
	if r.readErr != nil {
		return nil, r.readErr
	}
	out := make([]entity.Invoice, len(r.invoices))
	copy(out, r.invoices)
	return out, nil
}

func (r *fakeInvoiceRepo) GetByDate(_ context.Context, date string) ([]entity.Invoice, error) {
	if r.readErr != nil {
		return nil, r.readErr
	}
	out := []entity.Invoice{}
	for _, inv := range r.invoices {
		if inv.Date == date {
			out = append(out, inv)
		}
	}
	return out, nil
}

func (r *fakeInvoiceRepo) Update(_ context.Context, invoice *entity.Invoice) error {
	for i := range r.invoices {
		if r.invoices[i].ID == invoice.ID {
			r.invoices[i] = *invoice
			return nil
		}
	}
	return errors.New("invoice not found")
}

func (r *fakeInvoiceRepo) Delete(_ context.Context, id uint) error {
	for i := range r.invoices {
		if r.invoices[i].ID == id {
			r.invoices = append(r.invoices[:i], r.invoices[i+1:]...)
			return nil
		}
	}
	return nil
}

type fakeProductRepo struct {
	products []entity.Product
	nextID   uint
}

func (r *fakeProductRepo) Create(_ context.Context, product *entity.Product) error {
	r.nextID++
	product.ID = r.nextID
	r.products = append(r.products, *product)
	return nil
}

func (r *fakeProductRepo) GetByID(_ context.Context, id uint) (*entity.Product, error) {
	for i := range r.products {
		if r.products[i].ID == id {
			p := r.products[i]
			return &p, nil
		}
	}
	return nil, nil
}

func (r *fakeProductRepo) GetAll(_ context.Context) ([]entity.Product, error) {
	out := make([]entity.Product, len(r.products))
	copy(out, r.products)
	return out, nil
}

func (r *fakeProductRepo) GetByCategory(_ context.Context, categoryID uint) ([]entity.Product, error) {
	out := []entity.Product{}
	for _, p := range r.products {
		if p.CategoryID != nil && *p.CategoryID == categoryID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *fakeProductRepo) Update(_ context.Context, product *entity.Product) error {
	for i := range r.products {
		if r.products[i].ID == product.ID {
			r.products[i] = *product
			return nil
		}
	}
	return errors.New("product not found")
}

func (r *fakeProductRepo) Delete(_ context.Context, id uint) error {
	for i := range r.products {
		if r.products[i].ID == id {
			r.products = append(r.products[:i], r.products[i+1:]...)
			return nil
		}
	}
	return nil
}

type fakeCategoryRepo struct {
	categories []entity.Category
	nextID     uint
}

func (r *fakeCategoryRepo) Create(_ context.Context, category *entity.Category) error {
	r.nextID++
	category.ID = r.nextID
	r.categories = append(r.categories, *category)
	return nil
}

func (r *fakeCategoryRepo) GetByID(_ context.Context, id uint) (*entity.Category, error) {
	for i := range r.categories {
		if r.categories[i].ID == id {
			c := r.categories[i]
			return &c, nil
		}
	}
	return nil, nil
}

func (r *fakeCategoryRepo) GetAll(_ context.Context) ([]entity.Category, error) {
	out := make([]entity.Category, len(r.categories))
	copy(out, r.categories)
	return out, nil
}

func (r *fakeCategoryRepo) Update(_ context.Context, category *entity.Category) error {
	for i := range r.categories {
		if r.categories[i].ID == category.ID {
			r.categories[i] = *category
			return nil
		}
	}
	return errors.New("category not found")
}

func (r *fakeCategoryRepo) Delete(_ context.Context, id uint) error {
	for i := range r.categories {
		if r.categories[i].ID == id {
			r.categories = append(r.categories[:i], r.categories[i+1:]...)
			return nil
		}
	}
	return nil
}

type fakeSettingsRepo struct {
	values map[string]string
	err    error
}

func newFakeSettingsRepo() *fakeSettingsRepo {
	return &fakeSettingsRepo{values: make(map[string]string)}
}

func (r *fakeSettingsRepo) GetAll(_ context.Context) ([]entity.Setting, error) {
	if r.err != nil {
		return nil, r.err
	}
	out := []entity.Setting{}
	for k, v := range r.values {
		out = append(out, entity.Setting{Key: k, Value: v})
	}
	return out, nil
}

func (r *fakeSettingsRepo) Put(_ context.Context, key, value string) error {
	if r.err != nil {
		return r.err
	}
	r.values[key] = value
	return nil
}

func (r *fakeSettingsRepo) ReplaceAll(_ context.Context, values map[string]string) error {
	if r.err != nil {
		return r.err
	}
	r.values = make(map[string]string, len(values))
	for k, v := range values {
		r.values[k] = v
	}
	return nil
}
