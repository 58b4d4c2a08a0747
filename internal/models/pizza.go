package models

import "time"

// Pizza represents a pizza that restaurants can offer
type Pizza struct {
	ID          int       `json:"id" gorm:"primaryKey"`
	Name        string    `json:"name" gorm:"size:80;not null"`
	Ingredients string    `json:"ingredients" gorm:"size:120;not null"`
	CreatedAt   time.Time `json:"-" gorm:"not null"`
	UpdatedAt   time.Time `json:"-" gorm:"not null"`
}

func (Pizza) TableName() string {
	return "pizzas"
}
