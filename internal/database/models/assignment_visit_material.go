package models

import (
	"github.com/google/uuid"
)

// AssignmentVisitMaterial joins a visit to a material used during it
type AssignmentVisitMaterial struct {
	BaseModel
	VisitID    uuid.UUID `json:"visit_id" gorm:"type:uuid;not null;index" validate:"required"`
	MaterialID uuid.UUID `json:"material_id" gorm:"type:uuid;not null;index" validate:"required"`

	// Relationships
	Visit    AssignmentVisit `json:"visit,omitempty" gorm:"foreignKey:VisitID;constraint:OnDelete:CASCADE"`
	Material Material        `json:"material,omitempty" gorm:"foreignKey:MaterialID"`
}

// TableName returns the table name for AssignmentVisitMaterial
func (AssignmentVisitMaterial) TableName() string {
	return "assignment_visit_materials"
}
