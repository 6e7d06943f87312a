package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/crewstack/staffing-api/internal/costing"
	"github.com/crewstack/staffing-api/internal/domain"
	"github.com/crewstack/staffing-api/internal/mapper"
	"github.com/crewstack/staffing-api/internal/repository"
)

// CrewSchedulePublisher dispatches a crew scheduling request for a shift.
// Publishing is best effort; a shift save never fails because the broker is down.
type CrewSchedulePublisher interface {
	PublishShiftScheduled(ctx context.Context, shiftID uuid.UUID) error
}

// ShiftService manages shifts and their line items, and propagates every cost
// and status change to the owning event.
type ShiftService struct {
	db                *gorm.DB
	shiftRepo         *repository.ShiftRepository
	eventRepo         *repository.EventRepository
	equipmentRepo     *repository.EquipmentRepository
	qualificationRepo *repository.QualificationRepository
	locationRepo      *repository.LocationRepository
	departmentRepo    *repository.CrewDepartmentRepository
	settingRepo       *repository.SupplierSettingRepository
	publisher         CrewSchedulePublisher
	logger            *zap.Logger
}

// NewShiftService creates a new ShiftService instance
func NewShiftService(
	db *gorm.DB,
	shiftRepo *repository.ShiftRepository,
	eventRepo *repository.EventRepository,
	equipmentRepo *repository.EquipmentRepository,
	qualificationRepo *repository.QualificationRepository,
	locationRepo *repository.LocationRepository,
	departmentRepo *repository.CrewDepartmentRepository,
	settingRepo *repository.SupplierSettingRepository,
	publisher CrewSchedulePublisher,
	logger *zap.Logger,
) *ShiftService {
	return &ShiftService{
		db:                db,
		shiftRepo:         shiftRepo,
		eventRepo:         eventRepo,
		equipmentRepo:     equipmentRepo,
		qualificationRepo: qualificationRepo,
		locationRepo:      locationRepo,
		departmentRepo:    departmentRepo,
		settingRepo:       settingRepo,
		publisher:         publisher,
		logger:            logger,
	}
}

const dateTimeLayout = time.RFC3339

func parseDatePtr(v *string) (*time.Time, error) {
	if v == nil || *v == "" {
		return nil, nil
	}
	t, err := time.Parse(dateTimeLayout, *v)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid date %q", ErrInvalidInput, *v)
	}
	return &t, nil
}

// GetByID returns a shift with its lines and related names
func (s *ShiftService) GetByID(ctx context.Context, id uuid.UUID) (*domain.ShiftDTO, error) {
	shift, err := s.shiftRepo.GetByIDWithLines(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	dto := mapper.ToShiftDTO(shift)
	return &dto, nil
}

// ListByEvent returns an event's shifts, optionally narrowed to one status
func (s *ShiftService) ListByEvent(ctx context.Context, eventID uuid.UUID, status *domain.ShiftStatus) ([]domain.ShiftDTO, error) {
	var shifts []domain.Shift
	var err error
	if status != nil {
		if !status.IsValid() {
			return nil, fmt.Errorf("%w: %s", ErrInvalidStatus, *status)
		}
		shifts, err = s.shiftRepo.ListByEventAndStatus(ctx, eventID, *status)
	} else {
		shifts, err = s.shiftRepo.ListByEvent(ctx, eventID)
	}
	if err != nil {
		return nil, err
	}
	dtos := make([]domain.ShiftDTO, 0, len(shifts))
	for i := range shifts {
		dtos = append(dtos, mapper.ToShiftDTO(&shifts[i]))
	}
	return dtos, nil
}

// Create builds a shift with its requirement lines, prices it, and rolls the
// cost and status up into the owning event in one transaction.
func (s *ShiftService) Create(ctx context.Context, req *domain.CreateShiftRequest) (*domain.ShiftDTO, error) {
	status := req.Status
	if status == "" {
		status = domain.ShiftStatusEstimation
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("%w: %s", ErrInvalidStatus, req.Status)
	}

	startDate, err := parseDatePtr(req.StartDate)
	if err != nil {
		return nil, err
	}
	endDate, err := parseDatePtr(req.EndDate)
	if err != nil {
		return nil, err
	}

	if _, err := s.eventRepo.GetByID(ctx, req.EventID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: event %s", ErrNotFound, req.EventID)
		}
		return nil, err
	}

	department, err := s.departmentRepo.GetByID(ctx, req.DepartmentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: department %s", ErrNotFound, req.DepartmentID)
		}
		return nil, err
	}

	var location *domain.Location
	if req.LocationID != nil {
		location, err = s.locationRepo.GetByID(ctx, *req.LocationID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, fmt.Errorf("%w: location %s", ErrNotFound, *req.LocationID)
			}
			return nil, err
		}
	}

	shift := &domain.Shift{
		Name:            req.Name,
		EventID:         req.EventID,
		StartDate:       startDate,
		EndDate:         endDate,
		TotalShiftHours: costing.ShiftHours(startDate, endDate),
		LocationID:      req.LocationID,
		DepartmentID:    req.DepartmentID,
		NoOfResources:   req.NoOfResources,
		NoOfCrewChiefs:  req.NoOfCrewChiefs,
		Status:          status,
		DistanceRate:    req.DistanceRate,
	}

	shift.TravelExpenses, err = s.priceTravel(ctx, shift, location, department)
	if err != nil {
		return nil, err
	}

	equipmentLines, equipmentTotal, err := s.buildEquipmentLines(ctx, req.Equipment)
	if err != nil {
		return nil, err
	}
	qualificationLines, qualificationTotal, err := s.buildQualificationLines(ctx, req.Qualifications, shift)
	if err != nil {
		return nil, err
	}

	shift.EquipmentLines = equipmentLines
	shift.QualificationLines = qualificationLines
	shift.EquipmentCharges = equipmentTotal
	shift.QualificationCharges = qualificationTotal
	shift.TotalShiftCost = costing.ShiftTotal(shift.TravelExpenses, equipmentTotal, qualificationTotal)

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(shift).Error; err != nil {
			return fmt.Errorf("failed to create shift: %w", err)
		}
		if err := recomputeEventTotals(tx, shift.EventID); err != nil {
			return err
		}
		if _, err := reconcileEventStatus(tx, shift.EventID); err != nil {
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.dispatchCrewSchedule(ctx, shift.ID)

	created, err := s.shiftRepo.GetByIDWithLines(ctx, shift.ID)
	if err != nil {
		s.logger.Warn("failed to reload shift after create", zap.Error(err))
		created = shift
	}
	dto := mapper.ToShiftDTO(created)
	return &dto, nil
}

// Update applies changes to a shift, recomputing hours always, travel expense
// only when a travel input actually changed, and qualification line costs when
// hours or the crew chief count changed. Everything lands in one transaction
// together with the event rollup.
func (s *ShiftService) Update(ctx context.Context, id uuid.UUID, req *domain.UpdateShiftRequest) (*domain.ShiftDTO, error) {
	shift, err := s.shiftRepo.GetByIDWithLines(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if req.Status != "" && !req.Status.IsValid() {
		return nil, fmt.Errorf("%w: %s", ErrInvalidStatus, req.Status)
	}

	startDate, err := parseDatePtr(req.StartDate)
	if err != nil {
		return nil, err
	}
	endDate, err := parseDatePtr(req.EndDate)
	if err != nil {
		return nil, err
	}

	// Snapshot the travel inputs before applying the request
	prev := struct {
		locationID   *uuid.UUID
		departmentID uuid.UUID
		resources    int
		distanceRate float64
		hours        float64
		crewChiefs   int
	}{
		locationID:   shift.LocationID,
		departmentID: shift.DepartmentID,
		resources:    shift.NoOfResources,
		distanceRate: shift.DistanceRate,
		hours:        shift.TotalShiftHours,
		crewChiefs:   shift.NoOfCrewChiefs,
	}

	shift.Name = req.Name
	shift.StartDate = startDate
	shift.EndDate = endDate
	shift.TotalShiftHours = costing.ShiftHours(startDate, endDate)
	shift.LocationID = req.LocationID
	shift.DepartmentID = req.DepartmentID
	shift.NoOfResources = req.NoOfResources
	shift.NoOfCrewChiefs = req.NoOfCrewChiefs
	shift.DistanceRate = req.DistanceRate
	if req.Status != "" {
		shift.Status = req.Status
	}

	if travelInputsChanged(prev.locationID, shift.LocationID, prev.departmentID, shift.DepartmentID,
		prev.resources, shift.NoOfResources, prev.distanceRate, shift.DistanceRate) {
		department, err := s.departmentRepo.GetByID(ctx, shift.DepartmentID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, fmt.Errorf("%w: department %s", ErrNotFound, shift.DepartmentID)
			}
			return nil, err
		}
		var location *domain.Location
		if shift.LocationID != nil {
			location, err = s.locationRepo.GetByID(ctx, *shift.LocationID)
			if err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return nil, fmt.Errorf("%w: location %s", ErrNotFound, *shift.LocationID)
				}
				return nil, err
			}
		}
		shift.TravelExpenses, err = s.priceTravel(ctx, shift, location, department)
		if err != nil {
			return nil, err
		}
	}

	hoursChanged := shift.TotalShiftHours != prev.hours
	chiefsChanged := shift.NoOfCrewChiefs != prev.crewChiefs

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("EquipmentLines", "QualificationLines").Save(shift).Error; err != nil {
			return fmt.Errorf("failed to update shift: %w", err)
		}

		if req.Equipment != nil {
			lines, _, err := s.buildEquipmentLines(ctx, req.Equipment)
			if err != nil {
				return err
			}
			if err := tx.Where("shift_id = ?", shift.ID).Delete(&domain.ShiftEquipment{}).Error; err != nil {
				return err
			}
			for i := range lines {
				lines[i].ShiftID = shift.ID
				if err := tx.Create(&lines[i]).Error; err != nil {
					return err
				}
			}
		}

		if req.Qualifications != nil {
			lines, _, err := s.buildQualificationLines(ctx, req.Qualifications, shift)
			if err != nil {
				return err
			}
			if err := tx.Where("shift_id = ?", shift.ID).Delete(&domain.ShiftQualification{}).Error; err != nil {
				return err
			}
			for i := range lines {
				lines[i].ShiftID = shift.ID
				if err := tx.Create(&lines[i]).Error; err != nil {
					return err
				}
			}
		} else if hoursChanged || chiefsChanged {
			// Line costs read the shift's hours and chief count, so reprice
			// the existing lines against the new values
			var lines []domain.ShiftQualification
			if err := tx.Where("shift_id = ?", shift.ID).Find(&lines).Error; err != nil {
				return err
			}
			for i := range lines {
				line := &lines[i]
				line.QualificationCost = costing.QualificationLineCost(line.ChargeRate, shift.TotalShiftHours, line.NoOfResources)
				line.TotalAddChiefCharge = costing.ChiefSurcharge(line.AddChiefChargeRate, shift.TotalShiftHours, shift.NoOfCrewChiefs)
				if err := tx.Model(&domain.ShiftQualification{}).
					Where("id = ?", line.ID).
					Updates(map[string]interface{}{
						"qualification_cost":     line.QualificationCost,
						"total_add_chief_charge": line.TotalAddChiefCharge,
					}).Error; err != nil {
					return err
				}
			}
		}

		if err := recomputeShiftAggregates(tx, shift); err != nil {
			return err
		}
		if err := recomputeEventTotals(tx, shift.EventID); err != nil {
			return err
		}
		if _, err := reconcileEventStatus(tx, shift.EventID); err != nil {
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.dispatchCrewSchedule(ctx, shift.ID)

	updated, err := s.shiftRepo.GetByIDWithLines(ctx, shift.ID)
	if err != nil {
		s.logger.Warn("failed to reload shift after update", zap.Error(err))
		updated = shift
	}
	dto := mapper.ToShiftDTO(updated)
	return &dto, nil
}

// Delete removes a shift and its lines, then re-derives the event's totals and
// status from the remaining shifts.
func (s *ShiftService) Delete(ctx context.Context, id uuid.UUID) error {
	shift, err := s.shiftRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}

	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("shift_id = ?", id).Delete(&domain.ShiftEquipment{}).Error; err != nil {
			return err
		}
		if err := tx.Where("shift_id = ?", id).Delete(&domain.ShiftQualification{}).Error; err != nil {
			return err
		}
		if err := tx.Delete(&domain.Shift{}, "id = ?", id).Error; err != nil {
			return err
		}
		if err := recomputeEventTotals(tx, shift.EventID); err != nil {
			return err
		}
		if _, err := reconcileEventStatus(tx, shift.EventID); err != nil {
			return err
		}
		return nil
	})
}

// TravelBreakdown prices the travel between a shift's location and its
// department's home base and returns the full breakdown
func (s *ShiftService) TravelBreakdown(ctx context.Context, id uuid.UUID) (*domain.TravelExpenseDTO, error) {
	shift, err := s.shiftRepo.GetByIDWithLines(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	expense, err := s.travelExpense(ctx, shift, shift.Location, shift.Department)
	if err != nil {
		return nil, err
	}
	return &domain.TravelExpenseDTO{
		DistanceKm: expense.DistanceKm,
		RatePerKm:  expense.RatePerKm,
		Cost:       expense.Cost,
	}, nil
}

// priceTravel computes the travel expense for a shift. A shift without a
// location, or a department without coordinates, travels for free.
func (s *ShiftService) priceTravel(ctx context.Context, shift *domain.Shift, location *domain.Location, department *domain.CrewDepartment) (float64, error) {
	expense, err := s.travelExpense(ctx, shift, location, department)
	if err != nil {
		return 0, err
	}
	return expense.Cost, nil
}

func (s *ShiftService) travelExpense(ctx context.Context, shift *domain.Shift, location *domain.Location, department *domain.CrewDepartment) (costing.TravelExpense, error) {
	if location == nil || department == nil || department.Location == nil {
		return costing.TravelExpense{}, nil
	}

	var defaultRate float64
	if shift.DistanceRate == 0 {
		setting, err := s.settingRepo.Get(ctx)
		if err != nil {
			return costing.TravelExpense{}, err
		}
		if setting != nil {
			defaultRate = setting.RatePerKm
		}
	}
	rate := costing.EffectiveDistanceRate(shift.DistanceRate, defaultRate)

	return costing.ComputeTravelExpense(
		costing.Point{Lat: location.Lat, Lng: location.Lng},
		costing.Point{Lat: department.Location.Lat, Lng: department.Location.Lng},
		shift.NoOfResources,
		rate,
	), nil
}

func travelInputsChanged(oldLoc, newLoc *uuid.UUID, oldDep, newDep uuid.UUID, oldRes, newRes int, oldRate, newRate float64) bool {
	if (oldLoc == nil) != (newLoc == nil) {
		return true
	}
	if oldLoc != nil && newLoc != nil && *oldLoc != *newLoc {
		return true
	}
	return oldDep != newDep || oldRes != newRes || oldRate != newRate
}

// buildEquipmentLines resolves catalog items and prices one line per input
func (s *ShiftService) buildEquipmentLines(ctx context.Context, inputs []domain.ShiftLineInput) ([]domain.ShiftEquipment, float64, error) {
	var lines []domain.ShiftEquipment
	var total float64
	for _, in := range inputs {
		item, err := s.equipmentRepo.GetByID(ctx, in.ID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, 0, fmt.Errorf("%w: equipment %s", ErrNotFound, in.ID)
			}
			return nil, 0, err
		}
		cost := costing.EquipmentLineCost(item.ChargeRate, in.Count)
		lines = append(lines, domain.ShiftEquipment{
			EquipmentID:          item.ID,
			Count:                in.Count,
			EquipmentShiftCharge: item.ChargeRate,
			EquipmentCost:        cost,
		})
		total += cost
	}
	return lines, total, nil
}

// buildQualificationLines resolves catalog items and prices one line per
// input, including the chief surcharge read from the shift
func (s *ShiftService) buildQualificationLines(ctx context.Context, inputs []domain.ShiftLineInput, shift *domain.Shift) ([]domain.ShiftQualification, float64, error) {
	var lines []domain.ShiftQualification
	var total float64
	for _, in := range inputs {
		item, err := s.qualificationRepo.GetByID(ctx, in.ID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, 0, fmt.Errorf("%w: qualification %s", ErrNotFound, in.ID)
			}
			return nil, 0, err
		}
		qualID := item.ID
		cost := costing.QualificationLineCost(item.ChargeRate, shift.TotalShiftHours, in.Count)
		chief := costing.ChiefSurcharge(item.ChiefAddlChargeRate, shift.TotalShiftHours, shift.NoOfCrewChiefs)
		lines = append(lines, domain.ShiftQualification{
			QualificationID:     &qualID,
			ChargeRate:          item.ChargeRate,
			AddChiefChargeRate:  item.ChiefAddlChargeRate,
			TotalAddChiefCharge: chief,
			NoOfResources:       in.Count,
			QualificationCost:   cost,
		})
		total += cost + chief
	}
	return lines, total, nil
}

// dispatchCrewSchedule publishes a scheduling request after a shift save.
// Failures are logged and swallowed.
func (s *ShiftService) dispatchCrewSchedule(ctx context.Context, shiftID uuid.UUID) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.PublishShiftScheduled(ctx, shiftID); err != nil {
		s.logger.Warn("failed to publish crew schedule request",
			zap.Error(err),
			zap.String("shift_id", shiftID.String()))
	}
}
