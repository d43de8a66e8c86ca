package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Apartment is a bookable apartment unit. Note the field names: the frontend
// reads "price_per_night" and "is_active" here, not the room spelling.
type Apartment struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time      `json:"-"`
	UpdatedAt time.Time      `json:"-"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	Name          string  `gorm:"size:120" json:"name"`
	Description   string  `gorm:"type:text" json:"description"`
	PricePerNight float64 `gorm:"column:price_per_night" json:"price_per_night"`
	IsActive      bool    `gorm:"column:is_active;default:true" json:"is_active"`
	IsFeatured    bool    `gorm:"column:is_featured;default:false" json:"is_featured"`
	NumBedrooms   int     `gorm:"column:num_bedrooms" json:"num_bedrooms"`
	Capacity      int     `json:"capacity"`
	SquareMeters  int     `gorm:"column:square_meters" json:"square_meters"`

	// Amenities is a JSON array of strings, e.g. ["wifi","kitchen","balcony"]
	Amenities datatypes.JSON `json:"amenities,omitempty"`
}
