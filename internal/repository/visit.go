package repository

import (
	"maintenance-portal-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// VisitRepository handles database operations for assignment visits
type VisitRepository struct {
	db *gorm.DB
}

// NewVisitRepository creates a new visit repository
func NewVisitRepository(db *gorm.DB) *VisitRepository {
	return &VisitRepository{db: db}
}

// WithTx returns a repository bound to the given transaction
func (r *VisitRepository) WithTx(tx *gorm.DB) *VisitRepository {
	return &VisitRepository{db: tx}
}

// Create creates a new visit
func (r *VisitRepository) Create(visit *models.AssignmentVisit) error {
	return r.db.Create(visit).Error
}

// Update updates a visit
func (r *VisitRepository) Update(visit *models.AssignmentVisit) error {
	return r.db.Save(visit).Error
}

// GetByID retrieves a visit by ID
func (r *VisitRepository) GetByID(id uuid.UUID) (*models.AssignmentVisit, error) {
	var visit models.AssignmentVisit
	err := r.db.First(&visit, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &visit, nil
}

// GetOpenByAssignmentID retrieves the open visit (time_out IS NULL) of an
// assignment. At most one exists per assignment.
func (r *VisitRepository) GetOpenByAssignmentID(assignmentID uuid.UUID) (*models.AssignmentVisit, error) {
	var visit models.AssignmentVisit
	err := r.db.Where("assignment_id = ? AND time_out IS NULL", assignmentID).
		Order("created_at DESC").First(&visit).Error
	if err != nil {
		return nil, err
	}
	return &visit, nil
}

// GetLatestByAssignmentID retrieves the most recently created visit of an assignment
func (r *VisitRepository) GetLatestByAssignmentID(assignmentID uuid.UUID) (*models.AssignmentVisit, error) {
	var visit models.AssignmentVisit
	err := r.db.Where("assignment_id = ?", assignmentID).
		Order("created_at DESC").First(&visit).Error
	if err != nil {
		return nil, err
	}
	return &visit, nil
}

// GetHistoryByAssignmentID retrieves the full visit history of an assignment,
// newest first, with stores and materials preloaded
func (r *VisitRepository) GetHistoryByAssignmentID(assignmentID uuid.UUID) ([]models.AssignmentVisit, error) {
	var visits []models.AssignmentVisit
	err := r.db.Preload("Store").Preload("Materials").Preload("Materials.Material").
		Where("assignment_id = ?", assignmentID).Order("created_at DESC").Find(&visits).Error
	return visits, err
}

// ReplaceMaterials syncs the material list of a visit with full replace
// semantics: existing rows are dropped before the supplied set is inserted.
func (r *VisitRepository) ReplaceMaterials(visitID uuid.UUID, materialIDs []uuid.UUID) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("visit_id = ?", visitID).Delete(&models.AssignmentVisitMaterial{}).Error; err != nil {
			return err
		}
		if len(materialIDs) == 0 {
			return nil
		}
		rows := make([]models.AssignmentVisitMaterial, 0, len(materialIDs))
		for _, mid := range materialIDs {
			rows = append(rows, models.AssignmentVisitMaterial{VisitID: visitID, MaterialID: mid})
		}
		return tx.Create(&rows).Error
	})
}

// GetMaterialIDs retrieves the material IDs recorded on a visit
func (r *VisitRepository) GetMaterialIDs(visitID uuid.UUID) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	err := r.db.Model(&models.AssignmentVisitMaterial{}).
		Where("visit_id = ?", visitID).Pluck("material_id", &ids).Error
	return ids, err
}
