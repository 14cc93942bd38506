package service

import (
	"context"

	"github.com/santhoshsharuk/billing-api/internal/domain/entity"
	"github.com/santhoshsharuk/billing-api/internal/domain/repository"
	"github.com/santhoshsharuk/billing-api/pkg/apperror"
)

// CategoryService handles category-related business logic
type CategoryService struct {
	categoryRepo repository.CategoryRepository
}

// NewCategoryService creates a new category service
func NewCategoryService(categoryRepo repository.CategoryRepository) *CategoryService {
	return &CategoryService{categoryRepo: categoryRepo}
}

func (s *CategoryService) CreateCategory(ctx context.Context, name string) (*entity.Category, error) {
	if name == "" {
		return nil, apperror.NewBadRequestError("Category name is required")
	}
	category := &entity.Category{Name: name}
	if err := s.categoryRepo.Create(ctx, category); err != nil {
		return nil, apperror.NewStorageError("category create", err)
	}
	return category, nil
}

func (s *CategoryService) GetCategories(ctx context.Context) ([]entity.Category, error) {
	categories, err := s.categoryRepo.GetAll(ctx)
	if err != nil {
		return nil, apperror.NewStorageError("category read", err)
	}
	return categories, nil
}

func (s *CategoryService) UpdateCategory(ctx context.Context, id uint, name string) (*entity.Category, error) {
	if name == "" {
		return nil, apperror.NewBadRequestError("Category name is required")
	}
	category, err := s.categoryRepo.GetByID(ctx, id)
	if err != nil {
		return nil, apperror.NewStorageError("category read", err)
	}
	if category == nil {
		return nil, apperror.NewNotFoundError("Category")
	}
	category.Name = name
	if err := s.categoryRepo.Update(ctx, category); err != nil {
		return nil, apperror.NewStorageError("category update", err)
	}
	return category, nil
}

// DeleteCategory removes a category. Products referencing it keep their
// category id; analytics and listings resolve it to "Uncategorized".
func (s *CategoryService) DeleteCategory(ctx context.Context, id uint) error {
	if err := s.categoryRepo.Delete(ctx, id); err != nil {
		return apperror.NewStorageError("category delete", err)
	}
	return nil
}
