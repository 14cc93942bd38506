package repository

import (
	"context"
	"errors"

	"github.com/santhoshsharuk/billing-api/internal/domain/entity"
	domainRepo "github.com/santhoshsharuk/billing-api/internal/domain/repository"
	"gorm.io/gorm"
)

type customerRepository struct {
	db *gorm.DB
}

// NewCustomerRepository creates a new customer repository
func NewCustomerRepository(db *gorm.DB) domainRepo.CustomerRepository {
	return &customerRepository{db: db}
}

func (r *customerRepository) Create(ctx context.Context, customer *entity.Customer) error {
	return r.db.WithContext(ctx).Create(customer).Error
}

func (r *customerRepository) GetByID(ctx context.Context, id uint) (*entity.Customer, error) {
	var customer entity.Customer
	err := r.db.WithContext(ctx).First(&customer, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &customer, err
}

func (r *customerRepository) GetAll(ctx context.Context) ([]entity.Customer, error) {
	customers := []entity.Customer{}
	err := r.db.WithContext(ctx).Find(&customers).Error
	return customers, err
}

func (r *customerRepository) Update(ctx context.Context, customer *entity.Customer) error {
	if customer.ID == 0 {
		return gorm.ErrMissingWhereClause
	}
	return r.db.WithContext(ctx).Save(customer).Error
}

func (r *customerRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&entity.Customer{}, "id = ?", id).Error
}
