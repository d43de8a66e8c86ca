package booking

import "strconv"

// Payload is the exact wire shape POST /bookings expects. Inert data: handing
// it to the submission service is the caller's responsibility.
type Payload struct {
	GuestName         string  `json:"guest_name"`
	GuestEmail        string  `json:"guest_email"`
	Phone             *string `json:"phone"`
	CheckIn           string  `json:"check_in"`
	CheckOut          string  `json:"check_out"`
	AccommodationType string  `json:"accommodation_type"`
	AccommodationID   int     `json:"accommodation_id"`
	TotalPrice        float64 `json:"total_price"`
}

// BuildPayload maps a priced reservation onto the snake_case wire contract.
// Dates serialize as YYYY-MM-DD. The accommodation ID is re-parsed from the
// UI's string representation as a defensive re-check; a non-integer value is
// ErrInvalidAccommodation at this stage too.
func BuildPayload(pr PricedReservation) (Payload, error) {
	if pr.Draft.Selected == nil {
		return Payload{}, ErrInvalidAccommodation
	}
	id, err := strconv.Atoi(pr.Draft.Selected.ID)
	if err != nil {
		return Payload{}, ErrInvalidAccommodation
	}

	var phone *string
	if pr.Draft.Phone != "" {
		p := pr.Draft.Phone
		phone = &p
	}

	return Payload{
		GuestName:         pr.Draft.GuestName,
		GuestEmail:        pr.Draft.GuestEmail,
		Phone:             phone,
		CheckIn:           truncateToDay(pr.Draft.Dates.CheckIn).Format(DateLayout),
		CheckOut:          truncateToDay(pr.Draft.Dates.CheckOut).Format(DateLayout),
		AccommodationType: string(pr.Draft.Selected.Kind),
		AccommodationID:   id,
		TotalPrice:        pr.TotalPrice,
	}, nil
}
