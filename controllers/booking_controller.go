// controllers/booking_controller.go
package controllers

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"hotel-dd-backend/booking"
	"hotel-dd-backend/services"
	"hotel-dd-backend/utils"

	"github.com/gin-gonic/gin"
)

// ---------------------------
// Payload / DTOs
// ---------------------------

type UpdateBookingStatusPayload struct {
	Status string `json:"status" binding:"required"`
}

// ---------------------------
// Controller
// ---------------------------

type BookingController struct {
	BookingSvc *services.BookingService
}

func NewBookingController(svc *services.BookingService) *BookingController {
	return &BookingController{BookingSvc: svc}
}

// validationMessages maps the core's machine-readable errors to the messages
// the booking form shows. The core itself never formats user-facing text.
var validationMessages = map[error]string{
	booking.ErrMissingGuestName:      "Guest name is required",
	booking.ErrInvalidEmail:          "A valid email address is required",
	booking.ErrInvalidAccommodation:  "Selected accommodation does not exist or is not bookable",
	booking.ErrCheckInInPast:         "Check-in date must be today or later",
	booking.ErrCheckOutBeforeCheckIn: "Check-out date must be after check-in",
}

// CreateBooking (POST /bookings) accepts the public reservation payload,
// re-runs validation and pricing through the core, and persists the result.
func (bc *BookingController) CreateBooking(c *gin.Context) {
	var payload booking.Payload
	if err := c.ShouldBindJSON(&payload); err != nil {
		log.Printf("❌ JSON BINDING ERROR (400): %v", err)
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request payload",
			"details": err.Error(),
		})
		return
	}

	record, err := bc.BookingSvc.CreateFromPayload(payload)
	if err != nil {
		if msg, ok := validationMessages[err]; ok {
			utils.JSONValidationError(c, msg)
			return
		}
		log.Printf("❌ Failed to create booking: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to create booking",
		})
		return
	}

	log.Printf("✅ Booking %s created (%s %d, %d nights, %.0f)",
		record.ReferenceCode, record.AccommodationType, record.AccommodationID, record.Nights, record.TotalPrice)
	c.JSON(http.StatusCreated, record)
}

// GetBookings (GET /bookings) lists reservations, newest first.
func (bc *BookingController) GetBookings(c *gin.Context) {
	skip, limit := utils.ParseSkipLimit(c)

	bookings, err := bc.BookingSvc.List(skip, limit)
	if err != nil {
		log.Printf("❌ DB ERROR listing bookings: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}
	c.JSON(http.StatusOK, bookings)
}

// GetBooking (GET /bookings/:id)
func (bc *BookingController) GetBooking(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid booking id"})
		return
	}

	record, err := bc.BookingSvc.Get(uint(id))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Booking not found"})
		return
	}
	c.JSON(http.StatusOK, record)
}

// UpdateBookingStatus (PATCH /bookings/:id) moves a booking between
// pending/confirmed/cancelled.
func (bc *BookingController) UpdateBookingStatus(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid booking id"})
		return
	}

	var payload UpdateBookingStatusPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "status is required"})
		return
	}

	record, err := bc.BookingSvc.UpdateStatus(uint(id), payload.Status)
	if err != nil {
		if errors.Is(err, services.ErrInvalidStatus) {
			utils.JSONValidationError(c, "Status must be pending, confirmed or cancelled")
			return
		}
		c.JSON(http.StatusNotFound, gin.H{"error": "Booking not found"})
		return
	}
	c.JSON(http.StatusOK, record)
}

// DeleteBooking (DELETE /bookings/:id)
func (bc *BookingController) DeleteBooking(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid booking id"})
		return
	}

	if err := bc.BookingSvc.Delete(uint(id)); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Booking not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Deleted"})
}
