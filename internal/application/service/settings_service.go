package service

import (
	"context"
	"regexp"

	"github.com/santhoshsharuk/billing-api/internal/domain/entity"
	"github.com/santhoshsharuk/billing-api/internal/domain/repository"
	"github.com/santhoshsharuk/billing-api/pkg/apperror"
)

var phonePattern = regexp.MustCompile(`^[0-9]{10}$`)

// SettingsService folds the settings key/value rows into a typed
// StoreSettings and validates writes at the boundary.
type SettingsService struct {
	settingsRepo repository.SettingsRepository
}

// NewSettingsService creates a new settings service
func NewSettingsService(settingsRepo repository.SettingsRepository) *SettingsService {
	return &SettingsService{settingsRepo: settingsRepo}
}

// GetSettings reads all settings rows and folds them into one StoreSettings.
// Absent keys read back as zero values.
func (s *SettingsService) GetSettings(ctx context.Context) (*entity.StoreSettings, error) {
	rows, err := s.settingsRepo.GetAll(ctx)
	if err != nil {
		return nil, apperror.NewStorageError("settings read", err)
	}

	settings := &entity.StoreSettings{}
	for _, row := range rows {
		switch row.Key {
		case entity.SettingStoreName:
			settings.StoreName = row.Value
		case entity.SettingAddress:
			settings.Address = row.Value
		case entity.SettingPhone:
			settings.Phone = row.Value
		case entity.SettingUPIID:
			settings.UPIID = row.Value
		case entity.SettingGSTEnabled:
			settings.GSTEnabled = row.Value == "true"
		case entity.SettingLogo:
			settings.Logo = row.Value
		}
	}
	return settings, nil
}

// UpdateSettings validates and writes the whole settings snapshot in one
// atomic replace.
func (s *SettingsService) UpdateSettings(ctx context.Context, settings *entity.StoreSettings) error {
	if err := validateSettings(settings); err != nil {
		return err
	}

	gst := "false"
	if settings.GSTEnabled {
		gst = "true"
	}
	values := map[string]string{
		entity.SettingStoreName:  settings.StoreName,
		entity.SettingAddress:    settings.Address,
		entity.SettingPhone:      settings.Phone,
		entity.SettingUPIID:      settings.UPIID,
		entity.SettingGSTEnabled: gst,
		entity.SettingLogo:       settings.Logo,
	}

	if err := s.settingsRepo.ReplaceAll(ctx, values); err != nil {
		return apperror.NewStorageError("settings write", err)
	}
	return nil
}

func validateSettings(settings *entity.StoreSettings) error {
	var fieldErrors []apperror.FieldError
	if settings.StoreName == "" {
		fieldErrors = append(fieldErrors, apperror.FieldError{
			Field:   "storeName",
			Message: "Store name is required",
		})
	}
	if settings.Phone != "" && !phonePattern.MatchString(settings.Phone) {
		fieldErrors = append(fieldErrors, apperror.FieldError{
			Field:   "phone",
			Message: "Enter a 10-digit phone number",
		})
	}
	if len(fieldErrors) > 0 {
		return apperror.NewValidationError(fieldErrors)
	}
	return nil
}
