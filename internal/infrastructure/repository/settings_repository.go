package repository

import (
	"context"

	"github.com/santhoshsharuk/billing-api/internal/domain/entity"
	domainRepo "github.com/santhoshsharuk/billing-api/internal/domain/repository"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type settingsRepository struct {
	db *gorm.DB
}

// NewSettingsRepository creates a new settings repository
func NewSettingsRepository(db *gorm.DB) domainRepo.SettingsRepository {
	return &settingsRepository{db: db}
}

func (r *settingsRepository) GetAll(ctx context.Context) ([]entity.Setting, error) {
	settings := []entity.Setting{}
	err := r.db.WithContext(ctx).Find(&settings).Error
	return settings, err
}

func (r *settingsRepository) Put(ctx context.Context, key, value string) error {
	setting := entity.Setting{Key: key, Value: value}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "key"}},
			DoUpdates: clause.AssignmentColumns([]string{"value"}),
		}).
		Create(&setting).Error
}

// ReplaceAll writes a whole settings snapshot atomically. Keys absent from
// the snapshot are removed so stale values never survive a save.
func (r *settingsRepository) ReplaceAll(ctx context.Context, values map[string]string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&entity.Setting{}).Error; err != nil {
			return err
		}
		for key, value := range values {
			if err := tx.Create(&entity.Setting{Key: key, Value: value}).Error; err != nil {
				return err
			}
		}
		return nil
	})
}
