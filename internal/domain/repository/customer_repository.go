package repository

import (
	"context"

	"github.com/santhoshsharuk/billing-api/internal/domain/entity"
)

// CustomerRepository defines the interface for customer data access
type CustomerRepository interface {
	Create(ctx context.Context, customer *entity.Customer) error
	GetByID(ctx context.Context, id uint) (*entity.Customer, error)
	GetAll(ctx context.Context) ([]entity.Customer, error)
	Update(ctx context.Context, customer *entity.Customer) error
	Delete(ctx context.Context, id uint) error
}
