package repository

import (
	"maintenance-portal-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ProfileRepository handles database operations for profiles
type ProfileRepository struct {
	db *gorm.DB
}

// NewProfileRepository creates a new profile repository
func NewProfileRepository(db *gorm.DB) *ProfileRepository {
	return &ProfileRepository{db: db}
}

// Create creates a new profile
func (r *ProfileRepository) Create(profile *models.Profile) error {
	return r.db.Create(profile).Error
}

// GetByID retrieves a profile by ID
func (r *ProfileRepository) GetByID(id uuid.UUID) (*models.Profile, error) {
	var profile models.Profile
	err := r.db.First(&profile, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

// GetByEmail retrieves a profile by email
func (r *ProfileRepository) GetByEmail(email string) (*models.Profile, error) {
	var profile models.Profile
	err := r.db.First(&profile, "email = ?", email).Error
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

// GetByIDs retrieves profiles for a set of IDs
func (r *ProfileRepository) GetByIDs(ids []uuid.UUID) ([]models.Profile, error) {
	var profiles []models.Profile
	if len(ids) == 0 {
		return profiles, nil
	}
	err := r.db.Where("id IN ?", ids).Find(&profiles).Error
	return profiles, err
}

// GetByRole retrieves active profiles with the given role
func (r *ProfileRepository) GetByRole(role models.ProfileRole, limit, offset int) ([]models.Profile, int64, error) {
	var profiles []models.Profile
	var total int64

	query := r.db.Model(&models.Profile{}).Where("role = ? AND is_active = ?", role, true)
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.Order("name ASC").Limit(limit).Offset(offset).Find(&profiles).Error
	return profiles, total, err
}

// Update updates a profile
func (r *ProfileRepository) Update(profile *models.Profile) error {
	return r.db.Save(profile).Error
}
