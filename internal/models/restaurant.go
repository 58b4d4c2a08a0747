package models

// Restaurant represents a restaurant; its name is globally unique
type Restaurant struct {
	ID      int    `json:"id" gorm:"primaryKey"`
	Name    string `json:"name" gorm:"size:50;not null;uniqueIndex:unique_name_constraint"`
	Address string `json:"address" gorm:"size:120;not null"`
}

func (Restaurant) TableName() string {
	return "restaurants"
}
