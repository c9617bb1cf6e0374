package models

// Store is a lookup table of supply stores workers buy materials from
type Store struct {
	BaseModel
	Name string `json:"name" gorm:"size:100;not null;uniqueIndex" validate:"required,max=100"`
}

// TableName returns the table name for Store
func (Store) TableName() string {
	return "stores"
}
