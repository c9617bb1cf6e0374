package models

// Profile represents a user of the portal: tenant, worker or supervisor
type Profile struct {
	BaseModel
	Email        string      `json:"email" gorm:"size:255;not null;uniqueIndex" validate:"required,email,max=255"`
	Name         string      `json:"name" gorm:"size:100" validate:"max=100"`
	Role         ProfileRole `json:"role" gorm:"type:varchar(20);not null;default:'tenant'" validate:"required"`
	PasswordHash string      `json:"-" gorm:"size:100;not null"`
	BuildingName string      `json:"building_name" gorm:"size:100"`
	RoomNumber   string      `json:"room_number" gorm:"size:20"`
	Phone        string      `json:"phone" gorm:"size:20" validate:"max=20"`
	IsActive     bool        `json:"is_active" gorm:"default:true"`
}

// TableName returns the table name for Profile
func (Profile) TableName() string {
	return "profiles"
}
