package booking

import (
	"context"
	"errors"
	"sync"
	"time"
)

// State is where a form session currently sits in the submission flow.
type State string

const (
	StateEditing    State = "editing"
	StateValidating State = "validating"
	StateSubmitting State = "submitting"
	StateInvalid    State = "invalid"
	StateSucceeded  State = "succeeded"
	StateFailed     State = "failed"
)

// ErrSubmissionInFlight is returned when Submit is called while a previous
// submission has not finished. Callers should disable the submit action while
// a request is outstanding instead of queueing.
var ErrSubmissionInFlight = errors.New("submission_in_flight")

// Submitter sends a finished payload to the reservation submission service.
type Submitter interface {
	Submit(ctx context.Context, p Payload) error
}

// Flow drives one form session through
// editing -> validating -> (invalid | submitting -> (succeeded | failed)).
//
// Invalid and failed attempts keep the draft so the user can correct and
// resubmit; a successful submission clears it. At most one submission is
// outstanding at a time and there is no automatic retry.
type Flow struct {
	mu       sync.Mutex
	draft    ReservationDraft
	accs     []Accommodation
	state    State
	lastErr  error
	inFlight bool

	submitter Submitter
	now       func() time.Time
}

func NewFlow(accommodations []Accommodation, submitter Submitter) *Flow {
	return &Flow{
		accs:      accommodations,
		state:     StateEditing,
		submitter: submitter,
		now:       time.Now,
	}
}

// Draft exposes the mutable draft for the editing state.
func (f *Flow) Draft() *ReservationDraft {
	return &f.draft
}

func (f *Flow) State() State {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state
}

// Err returns the error from the last submit attempt, nil after a success.
func (f *Flow) Err() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.lastErr
}

// Preview returns the best-effort nights/total for the current draft. Shows
// zeros for incomplete input, never an error.
func (f *Flow) Preview() (nights int, total float64) {
	return PreviewPrice(f.draft, f.accs)
}

// Submit validates the draft, prices it, builds the wire payload and sends it.
// Validation failures surface before any I/O. The outbound request is the only
// suspension point; once started it runs to completion or failure.
func (f *Flow) Submit(ctx context.Context) error {
	f.mu.Lock()
	if f.inFlight {
		f.mu.Unlock()
		return ErrSubmissionInFlight
	}
	f.state = StateValidating

	if err := Validate(f.draft, f.accs, f.now()); err != nil {
		f.state = StateInvalid
		f.lastErr = err
		f.mu.Unlock()
		return err
	}

	acc, err := f.draft.Selected.Resolve(f.accs)
	if err != nil {
		f.state = StateInvalid
		f.lastErr = err
		f.mu.Unlock()
		return err
	}

	priced, err := ComputePrice(f.draft, acc)
	if err != nil {
		f.state = StateInvalid
		f.lastErr = err
		f.mu.Unlock()
		return err
	}

	payload, err := BuildPayload(priced)
	if err != nil {
		f.state = StateInvalid
		f.lastErr = err
		f.mu.Unlock()
		return err
	}

	f.state = StateSubmitting
	f.inFlight = true
	f.mu.Unlock()

	submitErr := f.submitter.Submit(ctx, payload)

	f.mu.Lock()
	defer f.mu.Unlock()
	f.inFlight = false

	if submitErr != nil {
		var se *SubmissionError
		if !errors.As(submitErr, &se) {
			submitErr = &SubmissionError{Detail: submitErr.Error()}
		}
		f.state = StateFailed
		f.lastErr = submitErr
		return submitErr
	}

	f.state = StateSucceeded
	f.lastErr = nil
	f.draft = ReservationDraft{}
	return nil
}
