package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/crewstack/staffing-api/internal/domain"
)

// QuickQuoteRepository handles database operations for quick quote requests
type QuickQuoteRepository struct {
	db *gorm.DB
}

// NewQuickQuoteRepository creates a new QuickQuoteRepository instance
func NewQuickQuoteRepository(db *gorm.DB) *QuickQuoteRepository {
	return &QuickQuoteRepository{db: db}
}

func (r *QuickQuoteRepository) Create(ctx context.Context, quote *domain.QuickQuote) error {
	return r.db.WithContext(ctx).Create(quote).Error
}

func (r *QuickQuoteRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.QuickQuote, error) {
	var quote domain.QuickQuote
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&quote).Error
	if err != nil {
		return nil, err
	}
	return &quote, nil
}

func (r *QuickQuoteRepository) List(ctx context.Context) ([]domain.QuickQuote, error) {
	var quotes []domain.QuickQuote
	err := r.db.WithContext(ctx).Order("created_at DESC").Find(&quotes).Error
	return quotes, err
}

func (r *QuickQuoteRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&domain.QuickQuote{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
