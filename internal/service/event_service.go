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

// EventService manages events: CRUD, totals, and the status operations that
// move an event and its shifts together.
type EventService struct {
	db            *gorm.DB
	eventRepo     *repository.EventRepository
	shiftRepo     *repository.ShiftRepository
	clientRepo    *repository.ClientRepository
	eventTypeRepo *repository.EventTypeRepository
	locationRepo  *repository.LocationRepository
	logger        *zap.Logger
}

// NewEventService creates a new EventService instance
func NewEventService(
	db *gorm.DB,
	eventRepo *repository.EventRepository,
	shiftRepo *repository.ShiftRepository,
	clientRepo *repository.ClientRepository,
	eventTypeRepo *repository.EventTypeRepository,
	locationRepo *repository.LocationRepository,
	logger *zap.Logger,
) *EventService {
	return &EventService{
		db:            db,
		eventRepo:     eventRepo,
		shiftRepo:     shiftRepo,
		clientRepo:    clientRepo,
		eventTypeRepo: eventTypeRepo,
		locationRepo:  locationRepo,
		logger:        logger,
	}
}

// Create builds a new event. A fresh event has no shifts, so its sub total is
// zero and its total cost reflects only discount and tax.
func (s *EventService) Create(ctx context.Context, req *domain.CreateEventRequest) (*domain.EventDTO, error) {
	status := req.Status
	if status == "" {
		status = domain.EventStatusEstimation
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("%w: %s", ErrInvalidStatus, req.Status)
	}

	if _, err := s.clientRepo.GetByID(ctx, req.ClientID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: client %s", ErrNotFound, req.ClientID)
		}
		return nil, err
	}
	if req.EventTypeID != nil {
		if _, err := s.eventTypeRepo.GetByID(ctx, *req.EventTypeID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, fmt.Errorf("%w: event type %s", ErrNotFound, *req.EventTypeID)
			}
			return nil, err
		}
	}

	startDate, err := parseDatePtr(req.StartDate)
	if err != nil {
		return nil, err
	}
	endDate, err := parseDatePtr(req.EndDate)
	if err != nil {
		return nil, err
	}

	locations, err := s.resolveLocations(ctx, req.LocationIDs)
	if err != nil {
		return nil, err
	}

	event := &domain.Event{
		Name:          req.Name,
		EventTypeID:   req.EventTypeID,
		Status:        status,
		ClientID:      req.ClientID,
		StartDate:     startDate,
		EndDate:       endDate,
		Locations:     locations,
		Discount:      req.Discount,
		TaxPercentage: req.TaxPercentage,
		Comments:      req.Comments,
		PONumber:      req.PONumber,
		RefNumber:     req.RefNumber,
	}
	event.TotalCost = costing.EventTotal(0, event.Discount, event.TaxPercentage)

	if err := s.eventRepo.Create(ctx, event); err != nil {
		return nil, fmt.Errorf("failed to create event: %w", err)
	}

	return s.GetByID(ctx, event.ID)
}

// GetByID returns an event with its locations, shifts and shift lines
func (s *EventService) GetByID(ctx context.Context, id uuid.UUID) (*domain.EventDTO, error) {
	event, err := s.eventRepo.GetByIDWithShifts(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	dto := mapper.ToEventDTO(event)
	return &dto, nil
}

// List returns events matching the given filters
func (s *EventService) List(ctx context.Context, status *domain.EventStatus, clientID *uuid.UUID, archived *bool) ([]domain.EventDTO, error) {
	if status != nil && !status.IsValid() {
		return nil, fmt.Errorf("%w: %s", ErrInvalidStatus, *status)
	}
	events, err := s.eventRepo.List(ctx, repository.EventListFilter{
		Status:   status,
		ClientID: clientID,
		Archived: archived,
	})
	if err != nil {
		return nil, err
	}
	dtos := make([]domain.EventDTO, 0, len(events))
	for i := range events {
		dtos = append(dtos, mapper.ToEventDTO(&events[i]))
	}
	return dtos, nil
}

// ListLite returns the compact listing shape used by schedule views
func (s *EventService) ListLite(ctx context.Context, status *domain.EventStatus, clientID *uuid.UUID, archived *bool) ([]domain.EventLiteDTO, error) {
	if status != nil && !status.IsValid() {
		return nil, fmt.Errorf("%w: %s", ErrInvalidStatus, *status)
	}
	events, err := s.eventRepo.List(ctx, repository.EventListFilter{
		Status:   status,
		ClientID: clientID,
		Archived: archived,
	})
	if err != nil {
		return nil, err
	}
	dtos := make([]domain.EventLiteDTO, 0, len(events))
	for i := range events {
		dtos = append(dtos, mapper.ToEventLiteDTO(&events[i]))
	}
	return dtos, nil
}

// Update applies changes to an event and re-derives its total cost, since
// discount or tax may have moved. Removing a location that shifts still
// reference is rejected.
func (s *EventService) Update(ctx context.Context, id uuid.UUID, req *domain.UpdateEventRequest) (*domain.EventDTO, error) {
	event, err := s.eventRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if req.EventTypeID != nil {
		if _, err := s.eventTypeRepo.GetByID(ctx, *req.EventTypeID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, fmt.Errorf("%w: event type %s", ErrNotFound, *req.EventTypeID)
			}
			return nil, err
		}
	}

	startDate, err := parseDatePtr(req.StartDate)
	if err != nil {
		return nil, err
	}
	endDate, err := parseDatePtr(req.EndDate)
	if err != nil {
		return nil, err
	}

	locations, err := s.resolveLocations(ctx, req.LocationIDs)
	if err != nil {
		return nil, err
	}

	// A location can only be detached when no shift of the event points at it
	keep := make(map[uuid.UUID]bool, len(locations))
	for _, loc := range locations {
		keep[loc.ID] = true
	}
	for _, loc := range event.Locations {
		if keep[loc.ID] {
			continue
		}
		count, err := s.eventRepo.CountShiftsAtLocation(ctx, event.ID, loc.ID)
		if err != nil {
			return nil, err
		}
		if count > 0 {
			return nil, fmt.Errorf("%w: %s is used by %d shift(s)", ErrLocationInUse, loc.Name, count)
		}
	}

	event.Name = req.Name
	event.EventTypeID = req.EventTypeID
	event.StartDate = startDate
	event.EndDate = endDate
	event.Discount = req.Discount
	event.TaxPercentage = req.TaxPercentage
	event.Comments = req.Comments
	event.PONumber = req.PONumber
	event.RefNumber = req.RefNumber
	if req.IsArchived != nil {
		event.IsArchived = *req.IsArchived
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Locations", "Shifts").Save(event).Error; err != nil {
			return fmt.Errorf("failed to update event: %w", err)
		}
		if err := tx.Model(event).Association("Locations").Replace(locations); err != nil {
			return fmt.Errorf("failed to update event locations: %w", err)
		}
		return recomputeEventTotals(tx, event.ID)
	})
	if err != nil {
		return nil, err
	}

	return s.GetByID(ctx, event.ID)
}

// Delete removes an event together with its shifts and their lines
func (s *EventService) Delete(ctx context.Context, id uuid.UUID) error {
	event, err := s.eventRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}

	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		shiftIDs := tx.Model(&domain.Shift{}).Where("event_id = ?", id).Select("id")
		if err := tx.Where("shift_id IN (?)", shiftIDs).Delete(&domain.ShiftEquipment{}).Error; err != nil {
			return err
		}
		if err := tx.Where("shift_id IN (?)", shiftIDs).Delete(&domain.ShiftQualification{}).Error; err != nil {
			return err
		}
		if err := tx.Where("event_id = ?", id).Delete(&domain.Shift{}).Error; err != nil {
			return err
		}
		if err := tx.Model(event).Association("Locations").Clear(); err != nil {
			return err
		}
		return tx.Delete(&domain.Event{}, "id = ?", id).Error
	})
}

// ChangeStatus sets an event's status explicitly and drags along the shifts
// that were tracking the event's previous status. Shifts in any other status
// are left alone.
func (s *EventService) ChangeStatus(ctx context.Context, id uuid.UUID, newStatus domain.EventStatus) (*domain.EventDTO, error) {
	if !newStatus.IsValid() {
		return nil, fmt.Errorf("%w: %s", ErrInvalidStatus, newStatus)
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var event domain.Event
		if err := tx.Where("id = ?", id).First(&event).Error; err != nil {
			return err
		}
		prevStatus := domain.ShiftStatus(event.Status)
		if newStatus != event.Status {
			err := tx.Model(&domain.Shift{}).
				Where("event_id = ? AND status = ?", id, prevStatus).
				Update("status", domain.ShiftStatus(newStatus)).Error
			if err != nil {
				return err
			}
		}
		return tx.Model(&domain.Event{}).Where("id = ?", id).Update("status", newStatus).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	return s.GetByID(ctx, id)
}

// BulkChangeShiftStatus moves a set of an event's shifts, selected either by
// id list or by their current status, to a new status and re-derives the
// event's status from the result. Atomic: either every selected shift moves
// or none does.
func (s *EventService) BulkChangeShiftStatus(ctx context.Context, req *domain.BulkShiftStatusRequest) (*domain.BulkShiftStatusResponse, error) {
	if !req.NewStatus.IsValid() {
		return nil, fmt.Errorf("%w: %s", ErrInvalidStatus, req.NewStatus)
	}
	if len(req.ShiftIDs) == 0 && req.CurrentStatus == nil {
		return nil, fmt.Errorf("%w: either shiftIds or currentStatus is required", ErrInvalidInput)
	}
	if req.CurrentStatus != nil && !req.CurrentStatus.IsValid() {
		return nil, fmt.Errorf("%w: %s", ErrInvalidStatus, *req.CurrentStatus)
	}

	if _, err := s.eventRepo.GetByID(ctx, req.EventID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: event %s", ErrNotFound, req.EventID)
		}
		return nil, err
	}

	var resp domain.BulkShiftStatusResponse
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		q := tx.Model(&domain.Shift{}).Where("event_id = ?", req.EventID)
		if len(req.ShiftIDs) > 0 {
			var count int64
			if err := tx.Model(&domain.Shift{}).
				Where("event_id = ? AND id IN ?", req.EventID, req.ShiftIDs).
				Count(&count).Error; err != nil {
				return err
			}
			if int(count) != len(req.ShiftIDs) {
				return ErrShiftsNotInEvent
			}
			q = q.Where("id IN ?", req.ShiftIDs)
		} else {
			q = q.Where("status = ?", *req.CurrentStatus)
		}

		result := q.Update("status", req.NewStatus)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrNoShiftsSelected
		}
		resp.UpdatedShifts = int(result.RowsAffected)

		status, err := reconcileEventStatus(tx, req.EventID)
		if err != nil {
			return err
		}
		resp.EventStatus = status
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

// ReconcileStatus re-derives an event's status from its shifts
func (s *EventService) ReconcileStatus(ctx context.Context, eventID uuid.UUID) (domain.EventStatus, error) {
	var status domain.EventStatus
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var err error
		status, err = reconcileEventStatus(tx, eventID)
		return err
	})
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", ErrNotFound
	}
	return status, err
}

// Recompute re-derives every shift's aggregates from its lines, then the
// event's totals and status. Used by the reconciliation job to repair drift.
func (s *EventService) Recompute(ctx context.Context, eventID uuid.UUID) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var shifts []domain.Shift
		if err := tx.Where("event_id = ?", eventID).Find(&shifts).Error; err != nil {
			return err
		}
		for i := range shifts {
			if err := recomputeShiftAggregates(tx, &shifts[i]); err != nil {
				return err
			}
		}
		if err := recomputeEventTotals(tx, eventID); err != nil {
			return err
		}
		_, err := reconcileEventStatus(tx, eventID)
		return err
	})
}

// ListEventIDs exposes the id set the recompute job iterates
func (s *EventService) ListEventIDs(ctx context.Context) ([]uuid.UUID, error) {
	return s.eventRepo.ListIDs(ctx)
}

func (s *EventService) resolveLocations(ctx context.Context, ids []uuid.UUID) ([]domain.Location, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	locations, err := s.locationRepo.GetByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	if len(locations) != len(ids) {
		return nil, fmt.Errorf("%w: one or more locations do not exist", ErrNotFound)
	}
	return locations, nil
}
