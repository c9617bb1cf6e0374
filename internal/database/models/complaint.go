package models

import (
	"github.com/google/uuid"
)

// Complaint represents a tenant's maintenance ticket
type Complaint struct {
	BaseModel
	TenantID    uuid.UUID         `json:"tenant_id" gorm:"type:uuid;not null;index" validate:"required"`
	TypeID      uuid.UUID         `json:"type_id" gorm:"type:uuid;not null;index" validate:"required"`
	Description string            `json:"description" gorm:"type:text;not null" validate:"required"`
	Status      ComplaintStatus   `json:"status" gorm:"type:varchar(20);not null;default:'pending'"`
	Priority    ComplaintPriority `json:"priority" gorm:"type:varchar(10);not null;default:'medium'"`
	ImagePath   string            `json:"image_path" gorm:"size:255"`

	// Relationships
	Tenant      Profile               `json:"tenant,omitempty" gorm:"foreignKey:TenantID;constraint:OnDelete:CASCADE"`
	Type        ComplaintType         `json:"type,omitempty" gorm:"foreignKey:TypeID"`
	Assignments []ComplaintAssignment `json:"assignments,omitempty" gorm:"foreignKey:ComplaintID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Complaint
func (Complaint) TableName() string {
	return "complaints"
}
