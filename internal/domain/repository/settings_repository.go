package repository

import (
	"context"

	"github.com/santhoshsharuk/billing-api/internal/domain/entity"
)

// SettingsRepository defines the interface for settings data access.
// Settings are individual key/value rows; the service layer folds them
// into a typed StoreSettings.
type SettingsRepository interface {
	GetAll(ctx context.Context) ([]entity.Setting, error)
	Put(ctx context.Context, key, value string) error
	// ReplaceAll writes a whole settings snapshot in one transaction.
	ReplaceAll(ctx context.Context, values map[string]string) error
}
