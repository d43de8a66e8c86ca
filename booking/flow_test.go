package booking

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSubmitter struct {
	err      error
	payloads []Payload
	block    chan struct{}
}

func (f *fakeSubmitter) Submit(ctx context.Context, p Payload) error {
	if f.block != nil {
		<-f.block
	}
	f.payloads = append(f.payloads, p)
	return f.err
}

func newTestFlow(t *testing.T, sub Submitter) *Flow {
	t.Helper()
	f := NewFlow(testAccommodations(), sub)
	f.now = func() time.Time { return mustDate(t, "2025-05-20") }
	*f.Draft() = validDraft(t)
	return f
}

func TestFlowSuccessClearsDraft(t *testing.T) {
	sub := &fakeSubmitter{}
	f := newTestFlow(t, sub)

	require.NoError(t, f.Submit(context.Background()))
	assert.Equal(t, StateSucceeded, f.State())
	assert.NoError(t, f.Err())
	assert.Equal(t, ReservationDraft{}, *f.Draft())

	require.Len(t, sub.payloads, 1)
	assert.Equal(t, "2025-06-01", sub.payloads[0].CheckIn)
	assert.Equal(t, 300.0, sub.payloads[0].TotalPrice)
}

func TestFlowInvalidKeepsDraft(t *testing.T) {
	sub := &fakeSubmitter{}
	f := newTestFlow(t, sub)
	f.Draft().GuestEmail = "not-an-email"

	err := f.Submit(context.Background())
	assert.ErrorIs(t, err, ErrInvalidEmail)
	assert.Equal(t, StateInvalid, f.State())
	assert.Equal(t, "Aria Stormwind", f.Draft().GuestName)
	assert.Empty(t, sub.payloads, "invalid drafts must never reach the network")
}

func TestFlowFailedKeepsDraftAndSurfacesDetail(t *testing.T) {
	sub := &fakeSubmitter{err: &SubmissionError{Detail: "500: internal server error"}}
	f := newTestFlow(t, sub)

	err := f.Submit(context.Background())
	require.Error(t, err)

	var se *SubmissionError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, "500: internal server error", se.Detail)
	assert.Equal(t, StateFailed, f.State())

	// draft stays populated for a manual retry
	assert.Equal(t, "Aria Stormwind", f.Draft().GuestName)
	assert.Equal(t, "aria@example.com", f.Draft().GuestEmail)

	// a corrected resubmission goes through
	sub.err = nil
	require.NoError(t, f.Submit(context.Background()))
	assert.Equal(t, StateSucceeded, f.State())
}

func TestFlowWrapsPlainTransportErrors(t *testing.T) {
	sub := &fakeSubmitter{err: context.DeadlineExceeded}
	f := newTestFlow(t, sub)

	err := f.Submit(context.Background())
	var se *SubmissionError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, context.DeadlineExceeded.Error(), se.Detail)
}

func TestFlowRejectsConcurrentSubmit(t *testing.T) {
	sub := &fakeSubmitter{block: make(chan struct{})}
	f := newTestFlow(t, sub)

	done := make(chan error, 1)
	go func() { done <- f.Submit(context.Background()) }()

	// wait until the first submission is in flight
	require.Eventually(t, func() bool {
		return f.State() == StateSubmitting
	}, time.Second, time.Millisecond)

	assert.ErrorIs(t, f.Submit(context.Background()), ErrSubmissionInFlight)

	close(sub.block)
	require.NoError(t, <-done)
	assert.Len(t, sub.payloads, 1)
}
