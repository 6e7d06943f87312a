package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/crewstack/staffing-api/internal/costing"
	"github.com/crewstack/staffing-api/internal/domain"
	"github.com/crewstack/staffing-api/internal/mapper"
	"github.com/crewstack/staffing-api/internal/repository"
)

// ShiftLineService manages the equipment and qualification lines of a shift.
// Every mutation rolls up into the shift's aggregates and the event's totals
// within the same transaction.
type ShiftLineService struct {
	db                *gorm.DB
	shiftRepo         *repository.ShiftRepository
	shiftEquipRepo    *repository.ShiftEquipmentRepository
	shiftQualRepo     *repository.ShiftQualificationRepository
	equipmentRepo     *repository.EquipmentRepository
	qualificationRepo *repository.QualificationRepository
	logger            *zap.Logger
}

// NewShiftLineService creates a new ShiftLineService instance
func NewShiftLineService(
	db *gorm.DB,
	shiftRepo *repository.ShiftRepository,
	shiftEquipRepo *repository.ShiftEquipmentRepository,
	shiftQualRepo *repository.ShiftQualificationRepository,
	equipmentRepo *repository.EquipmentRepository,
	qualificationRepo *repository.QualificationRepository,
	logger *zap.Logger,
) *ShiftLineService {
	return &ShiftLineService{
		db:                db,
		shiftRepo:         shiftRepo,
		shiftEquipRepo:    shiftEquipRepo,
		shiftQualRepo:     shiftQualRepo,
		equipmentRepo:     equipmentRepo,
		qualificationRepo: qualificationRepo,
		logger:            logger,
	}
}

// ListEquipment returns a shift's equipment lines
func (s *ShiftLineService) ListEquipment(ctx context.Context, shiftID uuid.UUID) ([]domain.ShiftEquipmentDTO, error) {
	lines, err := s.shiftEquipRepo.ListByShift(ctx, shiftID)
	if err != nil {
		return nil, err
	}
	dtos := make([]domain.ShiftEquipmentDTO, 0, len(lines))
	for i := range lines {
		dtos = append(dtos, mapper.ToShiftEquipmentDTO(&lines[i]))
	}
	return dtos, nil
}

// AddEquipment attaches a priced equipment line to a shift. A zero charge
// falls back to the catalog item's rate.
func (s *ShiftLineService) AddEquipment(ctx context.Context, shiftID uuid.UUID, req *domain.CreateShiftEquipmentRequest) (*domain.ShiftEquipmentDTO, error) {
	shift, err := s.getShift(ctx, shiftID)
	if err != nil {
		return nil, err
	}

	item, err := s.equipmentRepo.GetByID(ctx, req.EquipmentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: equipment %s", ErrNotFound, req.EquipmentID)
		}
		return nil, err
	}

	charge := costing.EffectiveEquipmentCharge(req.EquipmentShiftCharge, item.ChargeRate)
	line := &domain.ShiftEquipment{
		ShiftID:              shift.ID,
		EquipmentID:          item.ID,
		Count:                req.Count,
		EquipmentShiftCharge: charge,
		EquipmentCost:        costing.EquipmentLineCost(charge, req.Count),
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(line).Error; err != nil {
			return fmt.Errorf("failed to create equipment line: %w", err)
		}
		return s.rollUp(tx, shift)
	})
	if err != nil {
		return nil, err
	}

	dto := mapper.ToShiftEquipmentDTO(line)
	dto.EquipmentName = item.Name
	return &dto, nil
}

// UpdateEquipment reprices an equipment line. A zero charge falls back to the
// catalog item's rate.
func (s *ShiftLineService) UpdateEquipment(ctx context.Context, lineID uuid.UUID, req *domain.UpdateShiftEquipmentRequest) (*domain.ShiftEquipmentDTO, error) {
	line, err := s.shiftEquipRepo.GetByID(ctx, lineID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	shift, err := s.getShift(ctx, line.ShiftID)
	if err != nil {
		return nil, err
	}
	item, err := s.equipmentRepo.GetByID(ctx, line.EquipmentID)
	if err != nil {
		return nil, err
	}

	charge := costing.EffectiveEquipmentCharge(req.EquipmentShiftCharge, item.ChargeRate)
	line.Count = req.Count
	line.EquipmentShiftCharge = charge
	line.EquipmentCost = costing.EquipmentLineCost(charge, req.Count)

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(line).Error; err != nil {
			return fmt.Errorf("failed to update equipment line: %w", err)
		}
		return s.rollUp(tx, shift)
	})
	if err != nil {
		return nil, err
	}

	dto := mapper.ToShiftEquipmentDTO(line)
	dto.EquipmentName = item.Name
	return &dto, nil
}

// DeleteEquipment removes an equipment line and rolls the shift and event down
func (s *ShiftLineService) DeleteEquipment(ctx context.Context, lineID uuid.UUID) error {
	line, err := s.shiftEquipRepo.GetByID(ctx, lineID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	shift, err := s.getShift(ctx, line.ShiftID)
	if err != nil {
		return err
	}

	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&domain.ShiftEquipment{}, "id = ?", lineID).Error; err != nil {
			return err
		}
		return s.rollUp(tx, shift)
	})
}

// ListQualifications returns a shift's qualification lines
func (s *ShiftLineService) ListQualifications(ctx context.Context, shiftID uuid.UUID) ([]domain.ShiftQualificationDTO, error) {
	lines, err := s.shiftQualRepo.ListByShift(ctx, shiftID)
	if err != nil {
		return nil, err
	}
	dtos := make([]domain.ShiftQualificationDTO, 0, len(lines))
	for i := range lines {
		dtos = append(dtos, mapper.ToShiftQualificationDTO(&lines[i]))
	}
	return dtos, nil
}

// AddQualification attaches a priced crew-requirement line to a shift. Zero
// rates fall back to the catalog item's rates; the chief surcharge reads the
// shift's crew chief count.
func (s *ShiftLineService) AddQualification(ctx context.Context, shiftID uuid.UUID, req *domain.CreateShiftQualificationRequest) (*domain.ShiftQualificationDTO, error) {
	shift, err := s.getShift(ctx, shiftID)
	if err != nil {
		return nil, err
	}

	item, err := s.qualificationRepo.GetByID(ctx, req.QualificationID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: qualification %s", ErrNotFound, req.QualificationID)
		}
		return nil, err
	}

	chargeRate := req.ChargeRate
	if chargeRate == 0 {
		chargeRate = item.ChargeRate
	}
	chiefRate := req.AddChiefChargeRate
	if chiefRate == 0 {
		chiefRate = item.ChiefAddlChargeRate
	}

	qualID := item.ID
	line := &domain.ShiftQualification{
		ShiftID:             shift.ID,
		QualificationID:     &qualID,
		ChargeRate:          chargeRate,
		AddChiefChargeRate:  chiefRate,
		TotalAddChiefCharge: costing.ChiefSurcharge(chiefRate, shift.TotalShiftHours, shift.NoOfCrewChiefs),
		NoOfResources:       req.NoOfResources,
		QualificationCost:   costing.QualificationLineCost(chargeRate, shift.TotalShiftHours, req.NoOfResources),
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(line).Error; err != nil {
			return fmt.Errorf("failed to create qualification line: %w", err)
		}
		return s.rollUp(tx, shift)
	})
	if err != nil {
		return nil, err
	}

	dto := mapper.ToShiftQualificationDTO(line)
	dto.QualificationName = item.Name
	return &dto, nil
}

// UpdateQualification reprices a crew-requirement line against the shift's
// current hours and crew chief count
func (s *ShiftLineService) UpdateQualification(ctx context.Context, lineID uuid.UUID, req *domain.UpdateShiftQualificationRequest) (*domain.ShiftQualificationDTO, error) {
	line, err := s.shiftQualRepo.GetByID(ctx, lineID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	shift, err := s.getShift(ctx, line.ShiftID)
	if err != nil {
		return nil, err
	}

	chargeRate := req.ChargeRate
	chiefRate := req.AddChiefChargeRate
	if line.QualificationID != nil && (chargeRate == 0 || chiefRate == 0) {
		item, err := s.qualificationRepo.GetByID(ctx, *line.QualificationID)
		if err == nil {
			if chargeRate == 0 {
				chargeRate = item.ChargeRate
			}
			if chiefRate == 0 {
				chiefRate = item.ChiefAddlChargeRate
			}
		}
	}

	line.ChargeRate = chargeRate
	line.AddChiefChargeRate = chiefRate
	line.NoOfResources = req.NoOfResources
	line.QualificationCost = costing.QualificationLineCost(chargeRate, shift.TotalShiftHours, req.NoOfResources)
	line.TotalAddChiefCharge = costing.ChiefSurcharge(chiefRate, shift.TotalShiftHours, shift.NoOfCrewChiefs)

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(line).Error; err != nil {
			return fmt.Errorf("failed to update qualification line: %w", err)
		}
		return s.rollUp(tx, shift)
	})
	if err != nil {
		return nil, err
	}

	dto := mapper.ToShiftQualificationDTO(line)
	return &dto, nil
}

// DeleteQualification removes a crew-requirement line and rolls the shift and
// event down
func (s *ShiftLineService) DeleteQualification(ctx context.Context, lineID uuid.UUID) error {
	line, err := s.shiftQualRepo.GetByID(ctx, lineID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	shift, err := s.getShift(ctx, line.ShiftID)
	if err != nil {
		return err
	}

	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&domain.ShiftQualification{}, "id = ?", lineID).Error; err != nil {
			return err
		}
		return s.rollUp(tx, shift)
	})
}

func (s *ShiftLineService) getShift(ctx context.Context, id uuid.UUID) (*domain.Shift, error) {
	shift, err := s.shiftRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: shift %s", ErrNotFound, id)
		}
		return nil, err
	}
	return shift, nil
}

func (s *ShiftLineService) rollUp(tx *gorm.DB, shift *domain.Shift) error {
	if err := recomputeShiftAggregates(tx, shift); err != nil {
		return err
	}
	if err := recomputeEventTotals(tx, shift.EventID); err != nil {
		return err
	}
	_, err := reconcileEventStatus(tx, shift.EventID)
	return err
}
