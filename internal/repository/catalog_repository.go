package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/crewstack/staffing-api/internal/domain"
)

// EquipmentRepository handles database operations for the equipment catalog
type EquipmentRepository struct {
	db *gorm.DB
}

// NewEquipmentRepository creates a new EquipmentRepository instance
func NewEquipmentRepository(db *gorm.DB) *EquipmentRepository {
	return &EquipmentRepository{db: db}
}

func (r *EquipmentRepository) Create(ctx context.Context, eq *domain.Equipment) error {
	return r.db.WithContext(ctx).Create(eq).Error
}

func (r *EquipmentRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Equipment, error) {
	var eq domain.Equipment
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&eq).Error
	if err != nil {
		return nil, err
	}
	return &eq, nil
}

func (r *EquipmentRepository) List(ctx context.Context) ([]domain.Equipment, error) {
	var items []domain.Equipment
	err := r.db.WithContext(ctx).Order("name ASC").Find(&items).Error
	return items, err
}

// QualificationRepository handles database operations for the qualification catalog
type QualificationRepository struct {
	db *gorm.DB
}

// NewQualificationRepository creates a new QualificationRepository instance
func NewQualificationRepository(db *gorm.DB) *QualificationRepository {
	return &QualificationRepository{db: db}
}

func (r *QualificationRepository) Create(ctx context.Context, q *domain.Qualification) error {
	return r.db.WithContext(ctx).Create(q).Error
}

func (r *QualificationRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Qualification, error) {
	var q domain.Qualification
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&q).Error
	if err != nil {
		return nil, err
	}
	return &q, nil
}

func (r *QualificationRepository) List(ctx context.Context) ([]domain.Qualification, error) {
	var items []domain.Qualification
	err := r.db.WithContext(ctx).Order("name ASC").Find(&items).Error
	return items, err
}

// EventTypeRepository handles database operations for event types
type EventTypeRepository struct {
	db *gorm.DB
}

// NewEventTypeRepository creates a new EventTypeRepository instance
func NewEventTypeRepository(db *gorm.DB) *EventTypeRepository {
	return &EventTypeRepository{db: db}
}

func (r *EventTypeRepository) Create(ctx context.Context, et *domain.EventType) error {
	return r.db.WithContext(ctx).Create(et).Error
}

func (r *EventTypeRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.EventType, error) {
	var et domain.EventType
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&et).Error
	if err != nil {
		return nil, err
	}
	return &et, nil
}

func (r *EventTypeRepository) List(ctx context.Context) ([]domain.EventType, error) {
	var items []domain.EventType
	err := r.db.WithContext(ctx).Order("name ASC").Find(&items).Error
	return items, err
}
