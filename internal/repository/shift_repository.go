package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/crewstack/staffing-api/internal/domain"
)

// ShiftRepository handles database operations for shifts
type ShiftRepository struct {
	db *gorm.DB
}

// NewShiftRepository creates a new ShiftRepository instance
func NewShiftRepository(db *gorm.DB) *ShiftRepository {
	return &ShiftRepository{db: db}
}

// Create inserts a new shift into the database
func (r *ShiftRepository) Create(ctx context.Context, shift *domain.Shift) error {
	return r.db.WithContext(ctx).Create(shift).Error
}

// GetByID retrieves a shift by its ID
func (r *ShiftRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Shift, error) {
	var shift domain.Shift
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&shift).Error
	if err != nil {
		return nil, err
	}
	return &shift, nil
}

// GetByIDWithLines retrieves a shift with its equipment and qualification lines
func (r *ShiftRepository) GetByIDWithLines(ctx context.Context, id uuid.UUID) (*domain.Shift, error) {
	var shift domain.Shift
	err := r.db.WithContext(ctx).
		Preload("Location").
		Preload("Department.Location").
		Preload("EquipmentLines").
		Preload("QualificationLines").
		Where("id = ?", id).
		First(&shift).Error
	if err != nil {
		return nil, err
	}
	return &shift, nil
}

// Update saves changes to an existing shift
func (r *ShiftRepository) Update(ctx context.Context, shift *domain.Shift) error {
	return r.db.WithContext(ctx).Save(shift).Error
}

// ListByEvent returns all shifts for an event ordered by start date
func (r *ShiftRepository) ListByEvent(ctx context.Context, eventID uuid.UUID) ([]domain.Shift, error) {
	var shifts []domain.Shift
	err := r.db.WithContext(ctx).
		Where("event_id = ?", eventID).
		Order("start_date ASC, created_at ASC").
		Find(&shifts).Error
	return shifts, err
}

// SumCostsByEvent returns the total cost of all shifts under an event.
// An event without shifts sums to zero.
func (r *ShiftRepository) SumCostsByEvent(ctx context.Context, eventID uuid.UUID) (float64, error) {
	var total float64
	err := r.db.WithContext(ctx).
		Model(&domain.Shift{}).
		Where("event_id = ?", eventID).
		Select("COALESCE(SUM(total_shift_cost), 0)").
		Scan(&total).Error
	if err != nil {
		return 0, fmt.Errorf("failed to sum shift costs: %w", err)
	}
	return total, nil
}

// ListStatusesByEvent returns the distinct statuses present among an event's shifts
func (r *ShiftRepository) ListStatusesByEvent(ctx context.Context, eventID uuid.UUID) ([]domain.ShiftStatus, error) {
	var statuses []domain.ShiftStatus
	err := r.db.WithContext(ctx).
		Model(&domain.Shift{}).
		Where("event_id = ?", eventID).
		Distinct("status").
		Pluck("status", &statuses).Error
	return statuses, err
}

// ListByEventAndStatus returns the event's shifts currently in the given status
func (r *ShiftRepository) ListByEventAndStatus(ctx context.Context, eventID uuid.UUID, status domain.ShiftStatus) ([]domain.Shift, error) {
	var shifts []domain.Shift
	err := r.db.WithContext(ctx).
		Where("event_id = ? AND status = ?", eventID, status).
		Find(&shifts).Error
	return shifts, err
}

// ListByEventAndIDs returns the event's shifts matching the id set
func (r *ShiftRepository) ListByEventAndIDs(ctx context.Context, eventID uuid.UUID, ids []uuid.UUID) ([]domain.Shift, error) {
	var shifts []domain.Shift
	err := r.db.WithContext(ctx).
		Where("event_id = ? AND id IN ?", eventID, ids).
		Find(&shifts).Error
	return shifts, err
}
