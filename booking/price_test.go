package booking

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputePriceThreeNights(t *testing.T) {
	draft := validDraft(t) // 2025-06-01 -> 2025-06-04, room 1 at 100/night
	acc := testAccommodations()[0]

	priced, err := ComputePrice(draft, acc)
	require.NoError(t, err)
	assert.Equal(t, 3, priced.Nights)
	assert.Equal(t, 300.0, priced.TotalPrice)
	assert.Equal(t, acc, priced.Accommodation)
}

func TestComputePriceIsPure(t *testing.T) {
	draft := validDraft(t)
	acc := testAccommodations()[0]

	first, err := ComputePrice(draft, acc)
	require.NoError(t, err)
	second, err := ComputePrice(draft, acc)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

// Pushing check-out one day at a time adds exactly one night and one nightly
// price per step.
func TestComputePriceNightsMonotonic(t *testing.T) {
	draft := validDraft(t)
	acc := testAccommodations()[0]
	checkOut := draft.Dates.CheckIn

	for step := 1; step <= 30; step++ {
		checkOut = checkOut.AddDate(0, 0, 1)
		draft.Dates.CheckOut = checkOut

		priced, err := ComputePrice(draft, acc)
		require.NoError(t, err)
		assert.Equal(t, step, priced.Nights)
		assert.Equal(t, float64(step)*acc.NightlyPrice, priced.TotalPrice)
	}
}

func TestComputePriceRejectsInvertedRange(t *testing.T) {
	draft := validDraft(t)
	draft.Dates.CheckIn = mustDate(t, "2025-06-04")
	draft.Dates.CheckOut = mustDate(t, "2025-06-01")

	_, err := ComputePrice(draft, testAccommodations()[0])
	assert.ErrorIs(t, err, ErrCheckOutBeforeCheckIn)
}

func TestComputePriceNormalizesTimeOfDay(t *testing.T) {
	// a late check-in timestamp and an early check-out timestamp must still
	// count whole calendar days, not rounded-down hour arithmetic
	draft := validDraft(t)
	draft.Dates.CheckIn = time.Date(2025, 6, 1, 23, 30, 0, 0, time.UTC)
	draft.Dates.CheckOut = time.Date(2025, 6, 4, 0, 15, 0, 0, time.UTC)

	priced, err := ComputePrice(draft, testAccommodations()[0])
	require.NoError(t, err)
	assert.Equal(t, 3, priced.Nights)
}

func TestPreviewPrice(t *testing.T) {
	accs := testAccommodations()

	cases := []struct {
		name   string
		mutate func(*ReservationDraft)
		nights int
		total  float64
	}{
		{name: "complete input", mutate: func(d *ReservationDraft) {}, nights: 3, total: 300},
		{name: "nothing selected", mutate: func(d *ReservationDraft) { d.Selected = nil }},
		{name: "dates missing", mutate: func(d *ReservationDraft) { d.Dates = DateRange{} }},
		{
			name: "inverted dates",
			mutate: func(d *ReservationDraft) {
				d.Dates.CheckIn, d.Dates.CheckOut = d.Dates.CheckOut, d.Dates.CheckIn
			},
		},
		{
			name:   "unknown selection",
			mutate: func(d *ReservationDraft) { d.Selected = &Selection{Kind: KindRoom, ID: "42"} },
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			draft := validDraft(t)
			tc.mutate(&draft)
			nights, total := PreviewPrice(draft, accs)
			assert.Equal(t, tc.nights, nights)
			assert.Equal(t, tc.total, total)
		})
	}
}
