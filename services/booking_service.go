// services/booking_service.go
package services

import (
	"errors"
	"fmt"
	"time"

	"hotel-dd-backend/booking"
	"hotel-dd-backend/models"
	"hotel-dd-backend/utils"

	"gorm.io/gorm"
)

// BookingService wraps *gorm.DB and owns the reservation workflow on the
// server side: resolve the accommodation, re-run the core validation and
// pricing, persist.
type BookingService struct {
	DB *gorm.DB
}

func NewBookingService(db *gorm.DB) *BookingService {
	return &BookingService{DB: db}
}

var ErrInvalidStatus = errors.New("invalid_status")

// ResolveAccommodation loads the referenced room or apartment and normalizes
// it for the core. Missing or unbookable rows fail with
// booking.ErrInvalidAccommodation, same as a client-side miss.
func (s *BookingService) ResolveAccommodation(kind booking.Kind, id int) (booking.Accommodation, error) {
	switch kind {
	case booking.KindRoom:
		var room models.Room
		if err := s.DB.First(&room, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return booking.Accommodation{}, booking.ErrInvalidAccommodation
			}
			return booking.Accommodation{}, fmt.Errorf("failed to load room: %w", err)
		}
		if !room.IsAvailable {
			return booking.Accommodation{}, booking.ErrInvalidAccommodation
		}
		return booking.Accommodation{
			ID:           int(room.ID),
			Kind:         booking.KindRoom,
			Name:         room.Name,
			NightlyPrice: room.Price,
			Bookable:     true,
		}, nil
	case booking.KindApartment:
		var apt models.Apartment
		if err := s.DB.First(&apt, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return booking.Accommodation{}, booking.ErrInvalidAccommodation
			}
			return booking.Accommodation{}, fmt.Errorf("failed to load apartment: %w", err)
		}
		if !apt.IsActive {
			return booking.Accommodation{}, booking.ErrInvalidAccommodation
		}
		return booking.Accommodation{
			ID:           int(apt.ID),
			Kind:         booking.KindApartment,
			Name:         apt.Name,
			NightlyPrice: apt.PricePerNight,
			Bookable:     true,
		}, nil
	default:
		return booking.Accommodation{}, booking.ErrInvalidAccommodation
	}
}

// CreateFromPayload turns a wire payload into a persisted booking. The core
// validator and price calculator run again here: the stored total is always
// the server's computation, never the client's number.
func (s *BookingService) CreateFromPayload(p booking.Payload) (*models.Booking, error) {
	kind := booking.Kind(p.AccommodationType)
	if !kind.Valid() {
		return nil, booking.ErrInvalidAccommodation
	}

	checkIn, err := booking.ParseDate(p.CheckIn)
	if err != nil {
		return nil, booking.ErrCheckInInPast
	}
	checkOut, err := booking.ParseDate(p.CheckOut)
	if err != nil {
		return nil, booking.ErrCheckOutBeforeCheckIn
	}

	acc, err := s.ResolveAccommodation(kind, p.AccommodationID)
	if err != nil {
		return nil, err
	}

	phone := ""
	if p.Phone != nil {
		phone = *p.Phone
	}
	draft := booking.ReservationDraft{
		GuestName:  p.GuestName,
		GuestEmail: p.GuestEmail,
		Phone:      phone,
		Dates:      booking.DateRange{CheckIn: checkIn, CheckOut: checkOut},
		Selected:   &booking.Selection{Kind: kind, ID: fmt.Sprintf("%d", p.AccommodationID)},
	}

	if err := booking.Validate(draft, []booking.Accommodation{acc}, time.Now()); err != nil {
		return nil, err
	}

	priced, err := booking.ComputePrice(draft, acc)
	if err != nil {
		return nil, err
	}

	record := models.Booking{
		ReferenceCode:     utils.NewReferenceCode(),
		GuestName:         draft.GuestName,
		GuestEmail:        draft.GuestEmail,
		Phone:             p.Phone,
		AccommodationType: string(kind),
		AccommodationID:   acc.ID,
		CheckIn:           checkIn,
		CheckOut:          checkOut,
		Nights:            priced.Nights,
		TotalPrice:        priced.TotalPrice,
		Status:            models.BookingStatusPending,
	}
	if err := s.DB.Create(&record).Error; err != nil {
		return nil, fmt.Errorf("failed to create booking: %w", err)
	}
	return &record, nil
}

func (s *BookingService) List(skip, limit int) ([]models.Booking, error) {
	if limit <= 0 {
		limit = 100
	}
	var bookings []models.Booking
	if err := s.DB.Order("id DESC").Offset(skip).Limit(limit).Find(&bookings).Error; err != nil {
		return nil, err
	}
	return bookings, nil
}

func (s *BookingService) Get(id uint) (*models.Booking, error) {
	var record models.Booking
	if err := s.DB.First(&record, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("booking_not_found")
		}
		return nil, err
	}
	return &record, nil
}

// UpdateStatus moves a booking between pending/confirmed/cancelled.
func (s *BookingService) UpdateStatus(id uint, status string) (*models.Booking, error) {
	if !models.ValidBookingStatus(status) {
		return nil, ErrInvalidStatus
	}
	record, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	if err := s.DB.Model(record).Update("status", status).Error; err != nil {
		return nil, err
	}
	return record, nil
}

func (s *BookingService) Delete(id uint) error {
	result := s.DB.Delete(&models.Booking{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errors.New("booking_not_found")
	}
	return nil
}
