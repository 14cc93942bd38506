package repository

import (
	"context"
	"errors"

	"github.com/santhoshsharuk/billing-api/internal/domain/entity"
	domainRepo "github.com/santhoshsharuk/billing-api/internal/domain/repository"
	"gorm.io/gorm"
)

type productRepository struct {
	db *gorm.DB
}

// NewProductRepository creates a new product repository
func NewProductRepository(db *gorm.DB) domainRepo.ProductRepository {
	return &productRepository{db: db}
}

func (r *productRepository) Create(ctx context.Context, product *entity.Product) error {
	return r.db.WithContext(ctx).Create(product).Error
}

func (r *productRepository) GetByID(ctx context.Context, id uint) (*entity.Product, error) {
	var product entity.Product
	err := r.db.WithContext(ctx).Preload("Category").First(&product, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &product, err
}

func (r *productRepository) GetAll(ctx context.Context) ([]entity.Product, error) {
	products := []entity.Product{}
	err := r.db.WithContext(ctx).Preload("Category").Find(&products).Error
	return products, err
}

func (r *productRepository) GetByCategory(ctx context.Context, categoryID uint) ([]entity.Product, error) {
	products := []entity.Product{}
	err := r.db.WithContext(ctx).
		Preload("Category").
		Where("category_id = ?", categoryID).
		Find(&products).Error
	return products, err
}

func (r *productRepository) Update(ctx context.Context, product *entity.Product) error {
	if product.ID == 0 {
		return gorm.ErrMissingWhereClause
	}
	return r.db.WithContext(ctx).Save(product).Error
}

func (r *productRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&entity.Product{}, "id = ?", id).Error
}
