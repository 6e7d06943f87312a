package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/crewstack/staffing-api/internal/domain"
	"github.com/crewstack/staffing-api/internal/mapper"
	"github.com/crewstack/staffing-api/internal/repository"
)

// SettingsService manages the supplier pricing settings
type SettingsService struct {
	settingRepo *repository.SupplierSettingRepository
	logger      *zap.Logger
}

// NewSettingsService creates a new SettingsService instance
func NewSettingsService(settingRepo *repository.SupplierSettingRepository, logger *zap.Logger) *SettingsService {
	return &SettingsService{settingRepo: settingRepo, logger: logger}
}

// Get returns the supplier setting, or a zero-rate placeholder when none exists
func (s *SettingsService) Get(ctx context.Context) (*domain.SupplierSettingDTO, error) {
	setting, err := s.settingRepo.Get(ctx)
	if err != nil {
		return nil, err
	}
	if setting == nil {
		return &domain.SupplierSettingDTO{RatePerKm: 0}, nil
	}
	dto := mapper.ToSupplierSettingDTO(setting)
	return &dto, nil
}

// Update sets the fallback travel rate. New shifts and travel recomputes pick
// it up; existing priced shifts keep their stored expense until recomputed.
func (s *SettingsService) Update(ctx context.Context, req *domain.UpdateSupplierSettingRequest) (*domain.SupplierSettingDTO, error) {
	setting, err := s.settingRepo.Upsert(ctx, req.RatePerKm)
	if err != nil {
		return nil, err
	}
	s.logger.Info("supplier rate updated", zap.Float64("rate_per_km", setting.RatePerKm))
	dto := mapper.ToSupplierSettingDTO(setting)
	return &dto, nil
}
