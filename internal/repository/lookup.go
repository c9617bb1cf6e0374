package repository

import (
	"maintenance-portal-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// LookupRepository serves the small reference tables: stores, materials,
// buildings, rooms and complaint types.
type LookupRepository struct {
	db *gorm.DB
}

// NewLookupRepository creates a new lookup repository
func NewLookupRepository(db *gorm.DB) *LookupRepository {
	return &LookupRepository{db: db}
}

// GetStores retrieves all stores ordered by name
func (r *LookupRepository) GetStores() ([]models.Store, error) {
	var stores []models.Store
	err := r.db.Order("name ASC").Find(&stores).Error
	return stores, err
}

// StoreExists reports whether a store with the given ID exists
func (r *LookupRepository) StoreExists(id uuid.UUID) (bool, error) {
	var count int64
	err := r.db.Model(&models.Store{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}

// GetMaterials retrieves all materials ordered by name
func (r *LookupRepository) GetMaterials() ([]models.Material, error) {
	var materials []models.Material
	err := r.db.Order("name ASC").Find(&materials).Error
	return materials, err
}

// CountMaterials counts how many of the given material IDs exist
func (r *LookupRepository) CountMaterials(ids []uuid.UUID) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	var count int64
	err := r.db.Model(&models.Material{}).Where("id IN ?", ids).Count(&count).Error
	return count, err
}

// GetBuildings retrieves all buildings ordered by name
func (r *LookupRepository) GetBuildings() ([]models.Building, error) {
	var buildings []models.Building
	err := r.db.Order("name ASC").Find(&buildings).Error
	return buildings, err
}

// BuildingExists reports whether a building with the given ID exists
func (r *LookupRepository) BuildingExists(id uuid.UUID) (bool, error) {
	var count int64
	err := r.db.Model(&models.Building{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}

// GetRoomsByBuilding retrieves the rooms of a building ordered by number
func (r *LookupRepository) GetRoomsByBuilding(buildingID uuid.UUID) ([]models.Room, error) {
	var rooms []models.Room
	err := r.db.Where("building_id = ?", buildingID).Order("number ASC").Find(&rooms).Error
	return rooms, err
}

// GetComplaintTypes retrieves all complaint types ordered by name
func (r *LookupRepository) GetComplaintTypes() ([]models.ComplaintType, error) {
	var types []models.ComplaintType
	err := r.db.Order("name ASC").Find(&types).Error
	return types, err
}
