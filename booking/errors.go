package booking

import "errors"

// Validation failures are a closed set. They are detected locally, before any
// network call, and are machine-readable: mapping them to user-facing text is
// the caller's job, never this package's.
var (
	ErrMissingGuestName      = errors.New("missing_guest_name")
	ErrInvalidEmail          = errors.New("invalid_email")
	ErrInvalidAccommodation  = errors.New("invalid_accommodation")
	ErrCheckInInPast         = errors.New("check_in_in_past")
	ErrCheckOutBeforeCheckIn = errors.New("check_out_before_check_in")
)

// SubmissionError reports that the submission service rejected the reservation
// or could not be reached. Detail carries the verbatim transport text (status
// and body, or the underlying network error) for display; it is opaque here.
type SubmissionError struct {
	Detail string
}

func (e *SubmissionError) Error() string {
	return "submission_failed: " + e.Detail
}
