package repository

import (
	"context"

	"github.com/santhoshsharuk/billing-api/internal/domain/entity"
)

// ProductRepository defines the interface for product data access
type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	GetByID(ctx context.Context, id uint) (*entity.Product, error)
	GetAll(ctx context.Context) ([]entity.Product, error)
	// GetByCategory returns all products assigned to the given category.
	GetByCategory(ctx context.Context, categoryID uint) ([]entity.Product, error)
	Update(ctx context.Context, product *entity.Product) error
	Delete(ctx context.Context, id uint) error
}
