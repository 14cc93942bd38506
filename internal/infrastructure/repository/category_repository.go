package repository

import (
	"context"
	"errors"

	"github.com/santhoshsharuk/billing-api/internal/domain/entity"
	domainRepo "github.com/santhoshsharuk/billing-api/internal/domain/repository"
	"gorm.io/gorm"
)

type categoryRepository struct {
	db *gorm.DB
}

// NewCategoryRepository creates a new category repository
func NewCategoryRepository(db *gorm.DB) domainRepo.CategoryRepository {
	return &categoryRepository{db: db}
}

func (r *categoryRepository) Create(ctx context.Context, category *entity.Category) error {
	return r.db.WithContext(ctx).Create(category).Error
}

func (r *categoryRepository) GetByID(ctx context.Context, id uint) (*entity.Category, error) {
	var category entity.Category
	err := r.db.WithContext(ctx).First(&category, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &category, err
}

func (r *categoryRepository) GetAll(ctx context.Context) ([]entity.Category, error) {
	categories := []entity.Category{}
	err := r.db.WithContext(ctx).Find(&categories).Error
	return categories, err
}

func (r *categoryRepository) Update(ctx context.Context, category *entity.Category) error {
	if category.ID == 0 {
		return gorm.ErrMissingWhereClause
	}
	return r.db.WithContext(ctx).Save(category).Error
}

// Delete removes a category by id. Deleting a missing id is a no-op.
// Products referencing the category keep their dangling category_id.
func (r *categoryRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&entity.Category{}, "id = ?", id).Error
}
