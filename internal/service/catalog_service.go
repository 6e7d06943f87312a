package service

import (
	"context"

	"github.com/crewstack/staffing-api/internal/domain"
	"github.com/crewstack/staffing-api/internal/mapper"
	"github.com/crewstack/staffing-api/internal/repository"
)

// CatalogService exposes the read-mostly reference data the scheduling
// endpoints link against: equipment, qualifications, locations, departments,
// event types and clients.
type CatalogService struct {
	equipmentRepo     *repository.EquipmentRepository
	qualificationRepo *repository.QualificationRepository
	locationRepo      *repository.LocationRepository
	departmentRepo    *repository.CrewDepartmentRepository
	eventTypeRepo     *repository.EventTypeRepository
	clientRepo        *repository.ClientRepository
}

// NewCatalogService creates a new CatalogService instance
func NewCatalogService(
	equipmentRepo *repository.EquipmentRepository,
	qualificationRepo *repository.QualificationRepository,
	locationRepo *repository.LocationRepository,
	departmentRepo *repository.CrewDepartmentRepository,
	eventTypeRepo *repository.EventTypeRepository,
	clientRepo *repository.ClientRepository,
) *CatalogService {
	return &CatalogService{
		equipmentRepo:     equipmentRepo,
		qualificationRepo: qualificationRepo,
		locationRepo:      locationRepo,
		departmentRepo:    departmentRepo,
		eventTypeRepo:     eventTypeRepo,
		clientRepo:        clientRepo,
	}
}

// ListEquipment returns the equipment catalog
func (s *CatalogService) ListEquipment(ctx context.Context) ([]domain.Equipment, error) {
	return s.equipmentRepo.List(ctx)
}

// ListQualifications returns the qualification catalog
func (s *CatalogService) ListQualifications(ctx context.Context) ([]domain.Qualification, error) {
	return s.qualificationRepo.List(ctx)
}

// ListLocations returns all locations
func (s *CatalogService) ListLocations(ctx context.Context) ([]domain.LocationDTO, error) {
	locations, err := s.locationRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	dtos := make([]domain.LocationDTO, 0, len(locations))
	for i := range locations {
		dtos = append(dtos, mapper.ToLocationDTO(&locations[i]))
	}
	return dtos, nil
}

// ListDepartments returns all crew departments with their home locations
func (s *CatalogService) ListDepartments(ctx context.Context) ([]domain.CrewDepartment, error) {
	return s.departmentRepo.List(ctx)
}

// ListEventTypes returns all event types
func (s *CatalogService) ListEventTypes(ctx context.Context) ([]domain.EventTypeDTO, error) {
	types, err := s.eventTypeRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	dtos := make([]domain.EventTypeDTO, 0, len(types))
	for i := range types {
		dtos = append(dtos, mapper.ToEventTypeDTO(&types[i]))
	}
	return dtos, nil
}

// ListClients returns all clients
func (s *CatalogService) ListClients(ctx context.Context) ([]domain.ClientDTO, error) {
	clients, err := s.clientRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	dtos := make([]domain.ClientDTO, 0, len(clients))
	for i := range clients {
		dtos = append(dtos, mapper.ToClientDTO(&clients[i]))
	}
	return dtos, nil
}
