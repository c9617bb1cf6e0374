package models

import (
	"time"

	"github.com/google/uuid"
)

// AssignmentWorkSession is a time interval attributed to one worker for one
// assignment, optionally tied to the leader-submitted visit it was reconciled
// against. Invariant: start_at < end_at.
type AssignmentWorkSession struct {
	BaseModel
	AssignmentID uuid.UUID  `json:"assignment_id" gorm:"type:uuid;not null;index" validate:"required"`
	WorkerID     uuid.UUID  `json:"worker_id" gorm:"type:uuid;not null;index" validate:"required"`
	VisitID      *uuid.UUID `json:"visit_id" gorm:"type:uuid;index"`
	StartAt      time.Time  `json:"start_at" gorm:"not null" validate:"required"`
	EndAt        time.Time  `json:"end_at" gorm:"not null" validate:"required"`

	// Relationships
	Assignment ComplaintAssignment `json:"assignment,omitempty" gorm:"foreignKey:AssignmentID;constraint:OnDelete:CASCADE"`
	Worker     Profile             `json:"worker,omitempty" gorm:"foreignKey:WorkerID;constraint:OnDelete:CASCADE"`
	Visit      *AssignmentVisit    `json:"visit,omitempty" gorm:"foreignKey:VisitID;constraint:OnDelete:CASCADE"`
}

// Minutes returns the whole-minute length of the session
func (s *AssignmentWorkSession) Minutes() int {
	return int(s.EndAt.Sub(s.StartAt).Minutes())
}

// TableName returns the table name for AssignmentWorkSession
func (AssignmentWorkSession) TableName() string {
	return "assignment_work_sessions"
}
