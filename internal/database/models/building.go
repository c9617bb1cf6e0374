package models

// Building is a lookup table of buildings managed by the portal
type Building struct {
	BaseModel
	Name string `json:"name" gorm:"size:100;not null;uniqueIndex" validate:"required,max=100"`

	// Relationships
	Rooms []Room `json:"rooms,omitempty" gorm:"foreignKey:BuildingID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Building
func (Building) TableName() string {
	return "buildings"
}
