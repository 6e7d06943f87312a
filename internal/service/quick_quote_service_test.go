package service_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/crewstack/staffing-api/internal/domain"
	"github.com/crewstack/staffing-api/internal/repository"
	"github.com/crewstack/staffing-api/internal/service"
)

func createQuickQuoteService(db *gorm.DB) *service.QuickQuoteService {
	return service.NewQuickQuoteService(repository.NewQuickQuoteRepository(db), zap.NewNop())
}

func TestQuickQuoteService_CreateAndList(t *testing.T) {
	db := setupTestDB(t)
	svc := createQuickQuoteService(db)
	ctx := context.Background()

	dto, err := svc.Create(ctx, &domain.CreateQuickQuoteRequest{
		FirstName:    "Jamie",
		LastName:     "Doe",
		Phone:        "555-0100",
		EventDetails: "Outdoor concert, 2 days",
	})
	require.NoError(t, err)
	assert.Equal(t, "Jamie", dto.FirstName)
	assert.NotEqual(t, uuid.Nil, dto.ID)

	quotes, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, quotes, 1)
	assert.Equal(t, dto.ID, quotes[0].ID)
}

func TestQuickQuoteService_Delete(t *testing.T) {
	db := setupTestDB(t)
	svc := createQuickQuoteService(db)
	ctx := context.Background()

	dto, err := svc.Create(ctx, &domain.CreateQuickQuoteRequest{
		FirstName: "Jamie",
		LastName:  "Doe",
		Phone:     "555-0100",
	})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, dto.ID))
	quotes, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, quotes)

	assert.ErrorIs(t, svc.Delete(ctx, dto.ID), service.ErrNotFound)
}
