package booking

import (
	"regexp"
	"strings"
	"time"
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Validate decides whether a draft is submittable. Rules are checked in a
// fixed order and the first failure wins, so the reported error is always
// unambiguous:
//
//  1. guest name non-empty after trimming
//  2. guest email non-empty and email-shaped
//  3. selection resolves against the merged list
//  4. check-in is a valid date on or after today
//  5. check-out is a valid date strictly after check-in
//
// today is passed in (caller's local date, time-of-day ignored) so validation
// stays deterministic and testable. No I/O happens here.
func Validate(draft ReservationDraft, accommodations []Accommodation, today time.Time) error {
	if strings.TrimSpace(draft.GuestName) == "" {
		return ErrMissingGuestName
	}

	email := strings.TrimSpace(draft.GuestEmail)
	if email == "" || !emailPattern.MatchString(email) {
		return ErrInvalidEmail
	}

	if draft.Selected == nil {
		return ErrInvalidAccommodation
	}
	if _, err := draft.Selected.Resolve(accommodations); err != nil {
		return err
	}

	checkIn := draft.Dates.CheckIn
	if checkIn.IsZero() || truncateToDay(checkIn).Before(truncateToDay(today)) {
		return ErrCheckInInPast
	}

	checkOut := draft.Dates.CheckOut
	if checkOut.IsZero() || draft.Dates.Nights() < 1 {
		return ErrCheckOutBeforeCheckIn
	}

	return nil
}
