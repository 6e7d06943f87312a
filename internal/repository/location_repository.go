package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/crewstack/staffing-api/internal/domain"
)

// LocationRepository handles database operations for locations
type LocationRepository struct {
	db *gorm.DB
}

// NewLocationRepository creates a new LocationRepository instance
func NewLocationRepository(db *gorm.DB) *LocationRepository {
	return &LocationRepository{db: db}
}

func (r *LocationRepository) Create(ctx context.Context, loc *domain.Location) error {
	return r.db.WithContext(ctx).Create(loc).Error
}

func (r *LocationRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Location, error) {
	var loc domain.Location
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&loc).Error
	if err != nil {
		return nil, err
	}
	return &loc, nil
}

// GetByIDs returns the locations matching the id set
func (r *LocationRepository) GetByIDs(ctx context.Context, ids []uuid.UUID) ([]domain.Location, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var locs []domain.Location
	err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&locs).Error
	return locs, err
}

func (r *LocationRepository) List(ctx context.Context) ([]domain.Location, error) {
	var locs []domain.Location
	err := r.db.WithContext(ctx).Order("name ASC").Find(&locs).Error
	return locs, err
}

// CrewDepartmentRepository handles database operations for crew departments
type CrewDepartmentRepository struct {
	db *gorm.DB
}

// NewCrewDepartmentRepository creates a new CrewDepartmentRepository instance
func NewCrewDepartmentRepository(db *gorm.DB) *CrewDepartmentRepository {
	return &CrewDepartmentRepository{db: db}
}

func (r *CrewDepartmentRepository) Create(ctx context.Context, dep *domain.CrewDepartment) error {
	return r.db.WithContext(ctx).Create(dep).Error
}

// GetByID retrieves a department with its home location loaded
func (r *CrewDepartmentRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.CrewDepartment, error) {
	var dep domain.CrewDepartment
	err := r.db.WithContext(ctx).Preload("Location").Where("id = ?", id).First(&dep).Error
	if err != nil {
		return nil, err
	}
	return &dep, nil
}

func (r *CrewDepartmentRepository) List(ctx context.Context) ([]domain.CrewDepartment, error) {
	var deps []domain.CrewDepartment
	err := r.db.WithContext(ctx).Preload("Location").Order("name ASC").Find(&deps).Error
	return deps, err
}
