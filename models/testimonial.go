package models

import (
	"time"

	"gorm.io/gorm"
)

// Testimonial is a guest review submitted from the public site. Only approved
// entries are shown publicly.
type Testimonial struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"-"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	Name     string `gorm:"size:120" json:"name"`
	Text     string `gorm:"type:text" json:"text"`
	Rating   int    `json:"rating"`
	Approved bool   `gorm:"default:false" json:"approved"`
}
