package service

import (
	"fmt"

	"maintenance-portal-backend/internal/database/models"
	apperrors "maintenance-portal-backend/internal/errors"
	"maintenance-portal-backend/internal/repository"

	"github.com/google/uuid"
)

// LookupService serves the reference data the portal forms feed on
type LookupService struct {
	lookups repository.LookupRepositoryInterface
}

// NewLookupService creates a new lookup service
func NewLookupService(lookups repository.LookupRepositoryInterface) *LookupService {
	return &LookupService{lookups: lookups}
}

// GetStores returns all stores, ordered by name
func (s *LookupService) GetStores() ([]models.Store, error) {
	stores, err := s.lookups.GetStores()
	if err != nil {
		return nil, fmt.Errorf("failed to get stores: %w", err)
	}
	return stores, nil
}

// GetMaterials returns all materials, ordered by name
func (s *LookupService) GetMaterials() ([]models.Material, error) {
	materials, err := s.lookups.GetMaterials()
	if err != nil {
		return nil, fmt.Errorf("failed to get materials: %w", err)
	}
	return materials, nil
}

// GetBuildings returns all buildings
func (s *LookupService) GetBuildings() ([]models.Building, error) {
	buildings, err := s.lookups.GetBuildings()
	if err != nil {
		return nil, fmt.Errorf("failed to get buildings: %w", err)
	}
	return buildings, nil
}

// GetRoomsByBuilding returns the rooms of one building
func (s *LookupService) GetRoomsByBuilding(buildingID uuid.UUID) ([]models.Room, error) {
	exists, err := s.lookups.BuildingExists(buildingID)
	if err != nil {
		return nil, fmt.Errorf("failed to verify building: %w", err)
	}
	if !exists {
		return nil, apperrors.ErrBuildingNotFound
	}

	rooms, err := s.lookups.GetRoomsByBuilding(buildingID)
	if err != nil {
		return nil, fmt.Errorf("failed to get rooms: %w", err)
	}
	return rooms, nil
}

// GetComplaintTypes returns all complaint types
func (s *LookupService) GetComplaintTypes() ([]models.ComplaintType, error) {
	types, err := s.lookups.GetComplaintTypes()
	if err != nil {
		return nil, fmt.Errorf("failed to get complaint types: %w", err)
	}
	return types, nil
}
