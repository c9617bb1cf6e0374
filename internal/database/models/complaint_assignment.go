package models

import (
	"time"

	"github.com/google/uuid"
)

// ComplaintAssignment represents a single worker's claim on a complaint.
// At most one assignment per complaint carries is_leader=true; the leader
// authors visit records and team time reconciliation.
type ComplaintAssignment struct {
	BaseModel
	ComplaintID    uuid.UUID        `json:"complaint_id" gorm:"type:uuid;not null;index" validate:"required"`
	WorkerID       uuid.UUID        `json:"worker_id" gorm:"type:uuid;not null;index" validate:"required"`
	AssignedBy     uuid.UUID        `json:"assigned_by" gorm:"type:uuid;not null" validate:"required"`
	Status         AssignmentStatus `json:"status" gorm:"type:varchar(20);not null;default:'assigned'"`
	IsLeader       bool             `json:"is_leader" gorm:"not null;default:false;index"`
	ScheduledStart *time.Time       `json:"scheduled_start"`
	ScheduledEnd   *time.Time       `json:"scheduled_end"`

	// Relationships
	Complaint Complaint         `json:"complaint,omitempty" gorm:"foreignKey:ComplaintID;constraint:OnDelete:CASCADE"`
	Worker    Profile           `json:"worker,omitempty" gorm:"foreignKey:WorkerID;constraint:OnDelete:CASCADE"`
	Visits    []AssignmentVisit `json:"visits,omitempty" gorm:"foreignKey:AssignmentID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for ComplaintAssignment
func (ComplaintAssignment) TableName() string {
	return "complaint_assignments"
}
