package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/crewstack/staffing-api/internal/domain"
	"github.com/crewstack/staffing-api/internal/mapper"
	"github.com/crewstack/staffing-api/internal/repository"
)

// QuickQuoteService manages inbound quick quote requests
type QuickQuoteService struct {
	quoteRepo *repository.QuickQuoteRepository
	logger    *zap.Logger
}

// NewQuickQuoteService creates a new QuickQuoteService instance
func NewQuickQuoteService(quoteRepo *repository.QuickQuoteRepository, logger *zap.Logger) *QuickQuoteService {
	return &QuickQuoteService{quoteRepo: quoteRepo, logger: logger}
}

// Create records an inbound quote request
func (s *QuickQuoteService) Create(ctx context.Context, req *domain.CreateQuickQuoteRequest) (*domain.QuickQuoteDTO, error) {
	quote := &domain.QuickQuote{
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Email:        req.Email,
		Phone:        req.Phone,
		EventDetails: req.EventDetails,
	}
	if err := s.quoteRepo.Create(ctx, quote); err != nil {
		return nil, err
	}
	s.logger.Info("quick quote received",
		zap.String("quote_id", quote.ID.String()),
		zap.String("phone", quote.Phone))
	dto := mapper.ToQuickQuoteDTO(quote)
	return &dto, nil
}

// List returns all quote requests, newest first
func (s *QuickQuoteService) List(ctx context.Context) ([]domain.QuickQuoteDTO, error) {
	quotes, err := s.quoteRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	dtos := make([]domain.QuickQuoteDTO, 0, len(quotes))
	for i := range quotes {
		dtos = append(dtos, mapper.ToQuickQuoteDTO(&quotes[i]))
	}
	return dtos, nil
}

// Delete removes a quote request
func (s *QuickQuoteService) Delete(ctx context.Context, id uuid.UUID) error {
	err := s.quoteRepo.Delete(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}
