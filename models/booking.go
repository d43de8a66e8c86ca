package models

import (
	"encoding/json"
	"time"

	"gorm.io/gorm"
)

// Booking statuses as the admin screens use them.
const (
	BookingStatusPending   = "pending"
	BookingStatusConfirmed = "confirmed"
	BookingStatusCancelled = "cancelled"
)

// ValidBookingStatus reports whether s is one of the known statuses.
func ValidBookingStatus(s string) bool {
	return s == BookingStatusPending || s == BookingStatusConfirmed || s == BookingStatusCancelled
}

// Booking is a persisted reservation. AccommodationType + AccommodationID
// reference either a room or an apartment; IDs are only unique per type.
type Booking struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"-"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	ReferenceCode     string    `gorm:"column:reference_code;size:64;uniqueIndex" json:"reference_code"`
	GuestName         string    `gorm:"column:guest_name;size:120" json:"guest_name"`
	GuestEmail        string    `gorm:"column:guest_email;size:120" json:"guest_email"`
	Phone             *string   `gorm:"size:40" json:"phone"`
	AccommodationType string    `gorm:"column:accommodation_type;size:16;index:idx_accommodation" json:"accommodation_type"`
	AccommodationID   int       `gorm:"column:accommodation_id;index:idx_accommodation" json:"accommodation_id"`
	CheckIn           time.Time `gorm:"column:check_in" json:"-"`
	CheckOut          time.Time `gorm:"column:check_out" json:"-"`
	Nights            int       `json:"nights"`
	TotalPrice        float64   `gorm:"column:total_price" json:"total_price"`
	Status            string    `gorm:"size:32;default:pending" json:"status"`
}

// MarshalJSON renders the date columns as bare YYYY-MM-DD strings; the wire
// contract has no time component on check_in/check_out.
func (b Booking) MarshalJSON() ([]byte, error) {
	type alias Booking
	return json.Marshal(struct {
		alias
		CheckIn  string `json:"check_in"`
		CheckOut string `json:"check_out"`
	}{
		alias:    alias(b),
		CheckIn:  b.CheckIn.UTC().Format("2006-01-02"),
		CheckOut: b.CheckOut.UTC().Format("2006-01-02"),
	})
}
