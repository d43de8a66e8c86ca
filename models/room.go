package models

import (
	"time"

	"gorm.io/gorm"
)

// Room is a bookable hotel room. JSON tags follow the public wire contract
// (rooms expose "price" and "is_available"; apartments differ on purpose).
type Room struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time      `json:"-"`
	UpdatedAt time.Time      `json:"-"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	Name         string  `gorm:"size:120" json:"name"`
	Description  string  `gorm:"type:text" json:"description"`
	Price        float64 `json:"price"`
	IsAvailable  bool    `gorm:"column:is_available;default:true" json:"is_available"`
	MaxGuests    int     `gorm:"column:max_guests" json:"max_guests"`
	SquareMeters int     `gorm:"column:square_meters" json:"square_meters"`
	ImageURL     string  `gorm:"column:image_url;size:255" json:"image_url,omitempty"`
}
