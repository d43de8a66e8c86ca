package models

import (
	"time"

	"gorm.io/gorm"
)

// GalleryImage is one entry of the public photo gallery. Only metadata lives
// here; the binary itself is served from static storage.
type GalleryImage struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time      `json:"-"`
	UpdatedAt time.Time      `json:"-"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	URL  string `gorm:"size:255" json:"url"`
	Alt  string `gorm:"size:255" json:"alt"`
	Desc string `gorm:"type:text" json:"desc,omitempty"`
}
