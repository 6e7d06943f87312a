package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/crewstack/staffing-api/internal/domain"
)

// SupplierSettingRepository handles database operations for supplier settings.
// The table holds at most one row; callers read it for rate fallbacks.
type SupplierSettingRepository struct {
	db *gorm.DB
}

// NewSupplierSettingRepository creates a new SupplierSettingRepository instance
func NewSupplierSettingRepository(db *gorm.DB) *SupplierSettingRepository {
	return &SupplierSettingRepository{db: db}
}

// Get returns the current supplier setting, or nil when none has been configured
func (r *SupplierSettingRepository) Get(ctx context.Context) (*domain.SupplierSetting, error) {
	var setting domain.SupplierSetting
	err := r.db.WithContext(ctx).Order("created_at ASC").First(&setting).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &setting, nil
}

// Upsert creates the setting row if missing, otherwise updates it in place
func (r *SupplierSettingRepository) Upsert(ctx context.Context, ratePerKm float64) (*domain.SupplierSetting, error) {
	existing, err := r.Get(ctx)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		setting := &domain.SupplierSetting{RatePerKm: ratePerKm}
		if err := r.db.WithContext(ctx).Create(setting).Error; err != nil {
			return nil, err
		}
		return setting, nil
	}
	existing.RatePerKm = ratePerKm
	if err := r.db.WithContext(ctx).Save(existing).Error; err != nil {
		return nil, err
	}
	return existing, nil
}
