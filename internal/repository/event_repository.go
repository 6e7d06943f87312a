package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/crewstack/staffing-api/internal/domain"
)

// EventRepository handles database operations for events
type EventRepository struct {
	db *gorm.DB
}

// NewEventRepository creates a new EventRepository instance
func NewEventRepository(db *gorm.DB) *EventRepository {
	return &EventRepository{db: db}
}

// Create inserts a new event into the database
func (r *EventRepository) Create(ctx context.Context, event *domain.Event) error {
	return r.db.WithContext(ctx).Create(event).Error
}

// GetByID retrieves an event with its locations loaded
func (r *EventRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Event, error) {
	var event domain.Event
	err := r.db.WithContext(ctx).
		Preload("Locations").
		Where("id = ?", id).
		First(&event).Error
	if err != nil {
		return nil, err
	}
	return &event, nil
}

// GetByIDWithShifts retrieves an event with locations, shifts and shift lines loaded
func (r *EventRepository) GetByIDWithShifts(ctx context.Context, id uuid.UUID) (*domain.Event, error) {
	var event domain.Event
	err := r.db.WithContext(ctx).
		Preload("Locations").
		Preload("Shifts", func(db *gorm.DB) *gorm.DB {
			return db.Order("start_date ASC, created_at ASC")
		}).
		Preload("Shifts.EquipmentLines").
		Preload("Shifts.QualificationLines").
		Where("id = ?", id).
		First(&event).Error
	if err != nil {
		return nil, err
	}
	return &event, nil
}

// Update saves changes to an existing event
func (r *EventRepository) Update(ctx context.Context, event *domain.Event) error {
	return r.db.WithContext(ctx).Save(event).Error
}

// Delete removes an event from the database
func (r *EventRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&domain.Event{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// EventListFilter narrows event listings
type EventListFilter struct {
	Status   *domain.EventStatus
	ClientID *uuid.UUID
	Archived *bool
}

// List returns events matching the filter, newest first
func (r *EventRepository) List(ctx context.Context, filter EventListFilter) ([]domain.Event, error) {
	q := r.db.WithContext(ctx).Model(&domain.Event{}).Preload("Locations")
	if filter.Status != nil {
		q = q.Where("status = ?", *filter.Status)
	}
	if filter.ClientID != nil {
		q = q.Where("client_id = ?", *filter.ClientID)
	}
	if filter.Archived != nil {
		q = q.Where("is_archived = ?", *filter.Archived)
	}
	var events []domain.Event
	err := q.Order("created_at DESC").Find(&events).Error
	return events, err
}

// CountShiftsAtLocation returns how many of the event's shifts reference the location
func (r *EventRepository) CountShiftsAtLocation(ctx context.Context, eventID, locationID uuid.UUID) (int, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&domain.Shift{}).
		Where("event_id = ? AND location_id = ?", eventID, locationID).
		Count(&count).Error
	return int(count), err
}

// ListIDs returns the ids of all non-archived events, used by the recompute job
func (r *EventRepository) ListIDs(ctx context.Context) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	err := r.db.WithContext(ctx).
		Model(&domain.Event{}).
		Where("is_archived = ?", false).
		Pluck("id", &ids).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list event ids: %w", err)
	}
	return ids, nil
}
