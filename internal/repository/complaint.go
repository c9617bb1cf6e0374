package repository

import (
	"maintenance-portal-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ComplaintRepository handles database operations for complaints
type ComplaintRepository struct {
	db *gorm.DB
}

// NewComplaintRepository creates a new complaint repository
func NewComplaintRepository(db *gorm.DB) *ComplaintRepository {
	return &ComplaintRepository{db: db}
}

// WithTx returns a repository bound to the given transaction
func (r *ComplaintRepository) WithTx(tx *gorm.DB) *ComplaintRepository {
	return &ComplaintRepository{db: tx}
}

// Create creates a new complaint
func (r *ComplaintRepository) Create(complaint *models.Complaint) error {
	return r.db.Create(complaint).Error
}

// GetByID retrieves a complaint by ID with its type preloaded
func (r *ComplaintRepository) GetByID(id uuid.UUID) (*models.Complaint, error) {
	var complaint models.Complaint
	err := r.db.Preload("Type").First(&complaint, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &complaint, nil
}

// GetByTenantID retrieves all complaints filed by a tenant, newest first
func (r *ComplaintRepository) GetByTenantID(tenantID uuid.UUID) ([]models.Complaint, error) {
	var complaints []models.Complaint
	err := r.db.Preload("Type").Where("tenant_id = ?", tenantID).Order("created_at DESC").Find(&complaints).Error
	return complaints, err
}

// GetAll retrieves all complaints with tenant and type preloaded, newest first
func (r *ComplaintRepository) GetAll(limit, offset int) ([]models.Complaint, int64, error) {
	var complaints []models.Complaint
	var total int64

	if err := r.db.Model(&models.Complaint{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.Preload("Tenant").Preload("Type").
		Order("created_at DESC").Limit(limit).Offset(offset).Find(&complaints).Error
	return complaints, total, err
}

// Update applies the given column updates to a complaint
func (r *ComplaintRepository) Update(id uuid.UUID, updates map[string]interface{}) error {
	return r.db.Model(&models.Complaint{}).Where("id = ?", id).Updates(updates).Error
}

// SetStatus sets the derived status of a complaint
func (r *ComplaintRepository) SetStatus(id uuid.UUID, status models.ComplaintStatus) error {
	return r.db.Model(&models.Complaint{}).Where("id = ?", id).Update("status", status).Error
}

// Delete deletes a complaint
func (r *ComplaintRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Complaint{}, "id = ?", id).Error
}
