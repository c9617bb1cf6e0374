package models

// ComplaintType is a lookup table of complaint categories (plumbing, electrical, ...)
type ComplaintType struct {
	BaseModel
	Name string `json:"name" gorm:"size:100;not null;uniqueIndex" validate:"required,max=100"`
}

// TableName returns the table name for ComplaintType
func (ComplaintType) TableName() string {
	return "complaint_types"
}
