package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/crewstack/staffing-api/internal/domain"
)

// ShiftEquipmentRepository handles database operations for shift equipment lines
type ShiftEquipmentRepository struct {
	db *gorm.DB
}

// NewShiftEquipmentRepository creates a new ShiftEquipmentRepository instance
func NewShiftEquipmentRepository(db *gorm.DB) *ShiftEquipmentRepository {
	return &ShiftEquipmentRepository{db: db}
}

func (r *ShiftEquipmentRepository) Create(ctx context.Context, line *domain.ShiftEquipment) error {
	return r.db.WithContext(ctx).Create(line).Error
}

func (r *ShiftEquipmentRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.ShiftEquipment, error) {
	var line domain.ShiftEquipment
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&line).Error
	if err != nil {
		return nil, err
	}
	return &line, nil
}

func (r *ShiftEquipmentRepository) ListByShift(ctx context.Context, shiftID uuid.UUID) ([]domain.ShiftEquipment, error) {
	var lines []domain.ShiftEquipment
	err := r.db.WithContext(ctx).
		Where("shift_id = ?", shiftID).
		Order("created_at ASC").
		Find(&lines).Error
	return lines, err
}

// SumCostsByShift returns the total equipment cost for a shift, zero when it has no lines
func (r *ShiftEquipmentRepository) SumCostsByShift(ctx context.Context, shiftID uuid.UUID) (float64, error) {
	var total float64
	err := r.db.WithContext(ctx).
		Model(&domain.ShiftEquipment{}).
		Where("shift_id = ?", shiftID).
		Select("COALESCE(SUM(equipment_cost), 0)").
		Scan(&total).Error
	if err != nil {
		return 0, fmt.Errorf("failed to sum equipment costs: %w", err)
	}
	return total, nil
}

// ShiftQualificationRepository handles database operations for shift qualification lines
type ShiftQualificationRepository struct {
	db *gorm.DB
}

// NewShiftQualificationRepository creates a new ShiftQualificationRepository instance
func NewShiftQualificationRepository(db *gorm.DB) *ShiftQualificationRepository {
	return &ShiftQualificationRepository{db: db}
}

func (r *ShiftQualificationRepository) Create(ctx context.Context, line *domain.ShiftQualification) error {
	return r.db.WithContext(ctx).Create(line).Error
}

func (r *ShiftQualificationRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.ShiftQualification, error) {
	var line domain.ShiftQualification
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&line).Error
	if err != nil {
		return nil, err
	}
	return &line, nil
}

func (r *ShiftQualificationRepository) ListByShift(ctx context.Context, shiftID uuid.UUID) ([]domain.ShiftQualification, error) {
	var lines []domain.ShiftQualification
	err := r.db.WithContext(ctx).
		Where("shift_id = ?", shiftID).
		Order("created_at ASC").
		Find(&lines).Error
	return lines, err
}

// SumCostsByShift returns the qualification charges for a shift including chief
// surcharges, zero when it has no lines.
func (r *ShiftQualificationRepository) SumCostsByShift(ctx context.Context, shiftID uuid.UUID) (float64, error) {
	var result struct {
		LineTotal  float64
		ChiefTotal float64
	}
	err := r.db.WithContext(ctx).
		Model(&domain.ShiftQualification{}).
		Where("shift_id = ?", shiftID).
		Select("COALESCE(SUM(qualification_cost), 0) as line_total, COALESCE(SUM(total_add_chief_charge), 0) as chief_total").
		Scan(&result).Error
	if err != nil {
		return 0, fmt.Errorf("failed to sum qualification costs: %w", err)
	}
	return result.LineTotal + result.ChiefTotal, nil
}
