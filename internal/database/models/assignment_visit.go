package models

import (
	"time"

	"github.com/google/uuid"
)

// AssignmentVisit represents one bounded work session recorded against an
// assignment. A visit with time_out still NULL is "open"; at most one open
// visit exists per assignment at any time.
type AssignmentVisit struct {
	BaseModel
	AssignmentID uuid.UUID     `json:"assignment_id" gorm:"type:uuid;not null;index" validate:"required"`
	StoreID      *uuid.UUID    `json:"store_id" gorm:"type:uuid;index"`
	TimeIn       *time.Time    `json:"time_in"`
	TimeOut      *time.Time    `json:"time_out"`
	Outcome      *VisitOutcome `json:"outcome" gorm:"type:varchar(20)"`
	Note         string        `json:"note" gorm:"type:text"`
	CreatedBy    uuid.UUID     `json:"created_by" gorm:"type:uuid;not null"`

	// Relationships
	Assignment ComplaintAssignment       `json:"assignment,omitempty" gorm:"foreignKey:AssignmentID;constraint:OnDelete:CASCADE"`
	Store      *Store                    `json:"store,omitempty" gorm:"foreignKey:StoreID"`
	Materials  []AssignmentVisitMaterial `json:"materials,omitempty" gorm:"foreignKey:VisitID;constraint:OnDelete:CASCADE"`
}

// IsOpen reports whether the visit has not been closed yet
func (v *AssignmentVisit) IsOpen() bool {
	return v.TimeOut == nil
}

// HasClosedWindow reports whether both endpoints of the time window are recorded
func (v *AssignmentVisit) HasClosedWindow() bool {
	return v.TimeIn != nil && v.TimeOut != nil
}

// TableName returns the table name for AssignmentVisit
func (AssignmentVisit) TableName() string {
	return "assignment_visits"
}
