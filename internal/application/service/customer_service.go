package service

import (
	"context"

	"github.com/santhoshsharuk/billing-api/internal/domain/entity"
	"github.com/santhoshsharuk/billing-api/internal/domain/repository"
	"github.com/santhoshsharuk/billing-api/pkg/apperror"
)

// CustomerService handles customer-related business logic
type CustomerService struct {
	customerRepo repository.CustomerRepository
}

// NewCustomerService creates a new customer service
func NewCustomerService(customerRepo repository.CustomerRepository) *CustomerService {
	return &CustomerService{customerRepo: customerRepo}
}

func (s *CustomerService) CreateCustomer(ctx context.Context, name, email string) (*entity.Customer, error) {
	if name == "" {
		return nil, apperror.NewBadRequestError("Customer name is required")
	}
	customer := &entity.Customer{Name: name, Email: email}
	if err := s.customerRepo.Create(ctx, customer); err != nil {
		return nil, apperror.NewStorageError("customer create", err)
	}
	return customer, nil
}

func (s *CustomerService) GetCustomers(ctx context.Context) ([]entity.Customer, error) {
	customers, err := s.customerRepo.GetAll(ctx)
	if err != nil {
		return nil, apperror.NewStorageError("customer read", err)
	}
	return customers, nil
}

func (s *CustomerService) UpdateCustomer(ctx context.Context, id uint, name, email string) (*entity.Customer, error) {
	customer, err := s.customerRepo.GetByID(ctx, id)
	if err != nil {
		return nil, apperror.NewStorageError("customer read", err)
	}
	if customer == nil {
		return nil, apperror.NewNotFoundError("Customer")
	}
	if name != "" {
		customer.Name = name
	}
	if email != "" {
		customer.Email = email
	}
	if err := s.customerRepo.Update(ctx, customer); err != nil {
		return nil, apperror.NewStorageError("customer update", err)
	}
	return customer, nil
}

func (s *CustomerService) DeleteCustomer(ctx context.Context, id uint) error {
	if err := s.customerRepo.Delete(ctx, id); err != nil {
		return apperror.NewStorageError("customer delete", err)
	}
	return nil
}
