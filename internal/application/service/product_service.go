package service

import (
	"context"

	"github.com/santhoshsharuk/billing-api/internal/domain/entity"
	"github.com/santhoshsharuk/billing-api/internal/domain/repository"
	"github.com/santhoshsharuk/billing-api/pkg/apperror"
	"github.com/shopspring/decimal"
)

// ProductService handles product-related business logic
type ProductService struct {
	productRepo  repository.ProductRepository
	categoryRepo repository.CategoryRepository
}

// NewProductService creates a new product service
func NewProductService(productRepo repository.ProductRepository, categoryRepo repository.CategoryRepository) *ProductService {
	return &ProductService{
		productRepo:  productRepo,
		categoryRepo: categoryRepo,
	}
}

// ProductInput represents the fields for creating or updating a product
type ProductInput struct {
	Name       string
	Price      decimal.Decimal
	Stock      int
	CategoryID *uint
}

func (s *ProductService) CreateProduct(ctx context.Context, input *ProductInput) (*entity.Product, error) {
	if err := s.validate(ctx, input); err != nil {
		return nil, err
	}

	product := &entity.Product{
		Name:       input.Name,
		Price:      input.Price,
		Stock:      input.Stock,
		CategoryID: input.CategoryID,
	}
	if err := s.productRepo.Create(ctx, product); err != nil {
		return nil, apperror.NewStorageError("product create", err)
	}
	return product, nil
}

func (s *ProductService) GetProduct(ctx context.Context, id uint) (*entity.Product, error) {
	product, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		return nil, apperror.NewStorageError("product read", err)
	}
	if product == nil {
		return nil, apperror.NewNotFoundError("Product")
	}
	return product, nil
}

// GetProducts lists all products, or the products of one category when
// categoryID is non-nil.
func (s *ProductService) GetProducts(ctx context.Context, categoryID *uint) ([]entity.Product, error) {
	var (
		products []entity.Product
		err      error
	)
	if categoryID != nil {
		products, err = s.productRepo.GetByCategory(ctx, *categoryID)
	} else {
		products, err = s.productRepo.GetAll(ctx)
	}
	if err != nil {
		return nil, apperror.NewStorageError("product read", err)
	}
	return products, nil
}

func (s *ProductService) UpdateProduct(ctx context.Context, id uint, input *ProductInput) (*entity.Product, error) {
	if err := s.validate(ctx, input); err != nil {
		return nil, err
	}

	product, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		return nil, apperror.NewStorageError("product read", err)
	}
	if product == nil {
		return nil, apperror.NewNotFoundError("Product")
	}

	product.Name = input.Name
	product.Price = input.Price
	product.Stock = input.Stock
	product.CategoryID = input.CategoryID
	product.Category = nil

	if err := s.productRepo.Update(ctx, product); err != nil {
		return nil, apperror.NewStorageError("product update", err)
	}
	return product, nil
}

// DeleteProduct removes a product. Historical invoices keep their line
// item snapshots and are unaffected.
func (s *ProductService) DeleteProduct(ctx context.Context, id uint) error {
	if err := s.productRepo.Delete(ctx, id); err != nil {
		return apperror.NewStorageError("product delete", err)
	}
	return nil
}

func (s *ProductService) validate(ctx context.Context, input *ProductInput) error {
	var fieldErrors []apperror.FieldError
	if input.Name == "" {
		fieldErrors = append(fieldErrors, apperror.FieldError{Field: "name", Message: "Product name is required"})
	}
	if input.Price.IsNegative() {
		fieldErrors = append(fieldErrors, apperror.FieldError{Field: "price", Message: "Price must not be negative"})
	}
	if input.Stock < 0 {
		fieldErrors = append(fieldErrors, apperror.FieldError{Field: "stock", Message: "Stock must not be negative"})
	}
	if len(fieldErrors) > 0 {
		return apperror.NewValidationError(fieldErrors)
	}

	if input.CategoryID != nil {
		category, err := s.categoryRepo.GetByID(ctx, *input.CategoryID)
		if err != nil {
			return apperror.NewStorageError("category read", err)
		}
		if category == nil {
			return apperror.NewNotFoundError("Category")
		}
	}
	return nil
}
