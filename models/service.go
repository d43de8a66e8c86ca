package models

import (
	"time"

	"gorm.io/gorm"
)

// Service is a hotel amenity card on the public site (spa, restaurant, ...).
type Service struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time      `json:"-"`
	UpdatedAt time.Time      `json:"-"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	Title   string `gorm:"size:120" json:"title"`
	Desc    string `gorm:"type:text" json:"desc"`
	IconURL string `gorm:"column:icon_url;size:255" json:"icon_url,omitempty"`
}
