package repository

import (
	"time"

	"maintenance-portal-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AssignmentRepository handles database operations for complaint assignments
type AssignmentRepository struct {
	db *gorm.DB
}

// NewAssignmentRepository creates a new assignment repository
func NewAssignmentRepository(db *gorm.DB) *AssignmentRepository {
	return &AssignmentRepository{db: db}
}

// WithTx returns a repository bound to the given transaction
func (r *AssignmentRepository) WithTx(tx *gorm.DB) *AssignmentRepository {
	return &AssignmentRepository{db: tx}
}

// CreateBatch inserts a batch of assignments
func (r *AssignmentRepository) CreateBatch(assignments []*models.ComplaintAssignment) error {
	if len(assignments) == 0 {
		return nil
	}
	return r.db.Create(assignments).Error
}

// GetByID retrieves an assignment by ID
func (r *AssignmentRepository) GetByID(id uuid.UUID) (*models.ComplaintAssignment, error) {
	var assignment models.ComplaintAssignment
	err := r.db.First(&assignment, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &assignment, nil
}

// GetByComplaintID retrieves all assignments on a complaint with workers preloaded
func (r *AssignmentRepository) GetByComplaintID(complaintID uuid.UUID) ([]models.ComplaintAssignment, error) {
	var assignments []models.ComplaintAssignment
	err := r.db.Preload("Worker").Where("complaint_id = ?", complaintID).Order("created_at ASC").Find(&assignments).Error
	return assignments, err
}

// GetByWorkerID retrieves a worker's assignments with complaints preloaded, newest first
func (r *AssignmentRepository) GetByWorkerID(workerID uuid.UUID, limit, offset int) ([]models.ComplaintAssignment, int64, error) {
	var assignments []models.ComplaintAssignment
	var total int64

	if err := r.db.Model(&models.ComplaintAssignment{}).Where("worker_id = ?", workerID).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.Preload("Complaint").Preload("Complaint.Type").
		Where("worker_id = ?", workerID).Order("created_at DESC").Limit(limit).Offset(offset).Find(&assignments).Error
	return assignments, total, err
}

// GetLeader retrieves the leader assignment of a complaint, if one exists
func (r *AssignmentRepository) GetLeader(complaintID uuid.UUID) (*models.ComplaintAssignment, error) {
	var assignment models.ComplaintAssignment
	err := r.db.Where("complaint_id = ? AND is_leader = ?", complaintID, true).First(&assignment).Error
	if err != nil {
		return nil, err
	}
	return &assignment, nil
}

// SetStatus sets the status of an assignment
func (r *AssignmentRepository) SetStatus(id uuid.UUID, status models.AssignmentStatus) error {
	return r.db.Model(&models.ComplaintAssignment{}).Where("id = ?", id).Update("status", status).Error
}

// DeleteByIDs deletes the given assignments, scoped to one complaint
func (r *AssignmentRepository) DeleteByIDs(complaintID uuid.UUID, ids []uuid.UUID) error {
	if len(ids) == 0 {
		return nil
	}
	return r.db.Where("complaint_id = ? AND id IN ?", complaintID, ids).Delete(&models.ComplaintAssignment{}).Error
}

// ReassignLeader clears the current leader flag on a complaint and sets it on
// the assignment bound to the given worker. Single routine so at most one
// is_leader row can survive per complaint.
func (r *AssignmentRepository) ReassignLeader(complaintID, workerID uuid.UUID) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var target models.ComplaintAssignment
		if err := tx.Where("complaint_id = ? AND worker_id = ?", complaintID, workerID).First(&target).Error; err != nil {
			return err
		}
		if err := tx.Model(&models.ComplaintAssignment{}).
			Where("complaint_id = ? AND is_leader = ?", complaintID, true).
			Update("is_leader", false).Error; err != nil {
			return err
		}
		return tx.Model(&models.ComplaintAssignment{}).
			Where("id = ?", target.ID).
			Update("is_leader", true).Error
	})
}

// GetScheduledBetween retrieves assignments whose scheduled window overlaps [start, end)
func (r *AssignmentRepository) GetScheduledBetween(start, end time.Time) ([]models.ComplaintAssignment, error) {
	var assignments []models.ComplaintAssignment
	err := r.db.Where("scheduled_start IS NOT NULL AND scheduled_end IS NOT NULL").
		Where("scheduled_start < ? AND scheduled_end > ?", end, start).
		Find(&assignments).Error
	return assignments, err
}
