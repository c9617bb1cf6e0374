package repository

import (
	"maintenance-portal-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// WorkSessionRepository handles database operations for assignment work sessions
type WorkSessionRepository struct {
	db *gorm.DB
}

// NewWorkSessionRepository creates a new work session repository
func NewWorkSessionRepository(db *gorm.DB) *WorkSessionRepository {
	return &WorkSessionRepository{db: db}
}

// WithTx returns a repository bound to the given transaction
func (r *WorkSessionRepository) WithTx(tx *gorm.DB) *WorkSessionRepository {
	return &WorkSessionRepository{db: tx}
}

// Create inserts a work session
func (r *WorkSessionRepository) Create(session *models.AssignmentWorkSession) error {
	return r.db.Create(session).Error
}

// GetByAssignmentID retrieves all sessions of an assignment, oldest first
func (r *WorkSessionRepository) GetByAssignmentID(assignmentID uuid.UUID) ([]models.AssignmentWorkSession, error) {
	var sessions []models.AssignmentWorkSession
	err := r.db.Where("assignment_id = ?", assignmentID).Order("start_at ASC").Find(&sessions).Error
	return sessions, err
}

// GetByVisitID retrieves all sessions reconciled against a visit
func (r *WorkSessionRepository) GetByVisitID(visitID uuid.UUID) ([]models.AssignmentWorkSession, error) {
	var sessions []models.AssignmentWorkSession
	err := r.db.Where("visit_id = ?", visitID).Order("start_at ASC").Find(&sessions).Error
	return sessions, err
}

// DeleteByVisitAndWorker removes the sessions a worker holds against a visit
func (r *WorkSessionRepository) DeleteByVisitAndWorker(visitID, workerID uuid.UUID) error {
	return r.db.Where("visit_id = ? AND worker_id = ?", visitID, workerID).
		Delete(&models.AssignmentWorkSession{}).Error
}
