package models

// Material is a lookup table of materials used during visits
type Material struct {
	BaseModel
	Name string `json:"name" gorm:"size:100;not null;uniqueIndex" validate:"required,max=100"`
	Unit string `json:"unit" gorm:"size:20" validate:"max=20"`
}

// TableName returns the table name for Material
func (Material) TableName() string {
	return "materials"
}
