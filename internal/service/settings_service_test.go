package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/crewstack/staffing-api/internal/domain"
	"github.com/crewstack/staffing-api/internal/repository"
	"github.com/crewstack/staffing-api/internal/service"
)

func TestSettingsService_GetBeforeFirstSave(t *testing.T) {
	db := setupTestDB(t)
	svc := service.NewSettingsService(repository.NewSupplierSettingRepository(db), zap.NewNop())

	dto, err := svc.Get(context.Background())
	require.NoError(t, err)
	assert.InDelta(t, 0, dto.RatePerKm, 1e-9)
}

func TestSettingsService_UpdateUpserts(t *testing.T) {
	db := setupTestDB(t)
	svc := service.NewSettingsService(repository.NewSupplierSettingRepository(db), zap.NewNop())
	ctx := context.Background()

	dto, err := svc.Update(ctx, &domain.UpdateSupplierSettingRequest{RatePerKm: 12.5})
	require.NoError(t, err)
	assert.InDelta(t, 12.5, dto.RatePerKm, 1e-9)

	// A second update overwrites the singleton rather than adding a row
	dto, err = svc.Update(ctx, &domain.UpdateSupplierSettingRequest{RatePerKm: 9})
	require.NoError(t, err)
	assert.InDelta(t, 9, dto.RatePerKm, 1e-9)

	var count int64
	require.NoError(t, db.Model(&domain.SupplierSetting{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)

	got, err := svc.Get(ctx)
	require.NoError(t, err)
	assert.InDelta(t, 9, got.RatePerKm, 1e-9)
}
