package models

import (
	"github.com/google/uuid"
)

// Room is a lookup table of rooms within a building
type Room struct {
	BaseModel
	BuildingID uuid.UUID `json:"building_id" gorm:"type:uuid;not null;index" validate:"required"`
	Number     string    `json:"number" gorm:"size:20;not null" validate:"required,max=20"`

	// Relationships
	Building Building `json:"building,omitempty" gorm:"foreignKey:BuildingID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Room
func (Room) TableName() string {
	return "rooms"
}
