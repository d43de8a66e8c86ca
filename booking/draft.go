package booking

import "time"

// DateLayout is the wire format for calendar dates. No time component.
const DateLayout = "2006-01-02"

// ParseDate parses a YYYY-MM-DD string into a calendar date (midnight UTC).
// Parsing is explicit so nothing depends on the ambient locale.
func ParseDate(s string) (time.Time, error) {
	return time.ParseInLocation(DateLayout, s, time.UTC)
}

// truncateToDay normalizes away any time-of-day component in a single
// reference timezone (UTC). Subtracting non-truncated timestamps across DST
// shifts yields off-by-one night counts.
func truncateToDay(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// DateRange is a candidate stay: check-in must be strictly before check-out.
type DateRange struct {
	CheckIn  time.Time
	CheckOut time.Time
}

// Nights returns the stay length in whole calendar days. Zero or negative
// means the range is not valid for booking.
func (r DateRange) Nights() int {
	in := truncateToDay(r.CheckIn)
	out := truncateToDay(r.CheckOut)
	return int(out.Sub(in) / (24 * time.Hour))
}

// ReservationDraft is the in-progress reservation the user is editing. The
// caller owns and mutates it; this package only reads and transforms it.
type ReservationDraft struct {
	GuestName  string
	GuestEmail string
	Phone      string
	Dates      DateRange
	Selected   *Selection
}

// PricedReservation is a validated draft plus its computed stay length and
// total. Immutable once computed.
type PricedReservation struct {
	Draft         ReservationDraft
	Accommodation Accommodation
	Nights        int
	TotalPrice    float64
}
