package booking

// ComputePrice derives nights and total price for a validated draft and its
// resolved accommodation. It is a pure function: same inputs, same result.
//
// Callers are expected to run Validate first; if they did not, a
// zero-or-negative night count fails with ErrCheckOutBeforeCheckIn rather
// than returning a zero or negative price.
//
// Prices are plain decimal amounts in the hotel's single implied currency
// (XAF). Total is nights times the nightly price with no intermediate
// rounding.
func ComputePrice(draft ReservationDraft, acc Accommodation) (PricedReservation, error) {
	nights := draft.Dates.Nights()
	if nights < 1 {
		return PricedReservation{}, ErrCheckOutBeforeCheckIn
	}
	return PricedReservation{
		Draft:         draft,
		Accommodation: acc,
		Nights:        nights,
		TotalPrice:    float64(nights) * acc.NightlyPrice,
	}, nil
}

// PreviewPrice is the best-effort per-keystroke price shown while the user is
// still editing. Incomplete or inconsistent input yields (0, 0) instead of an
// error; real validation only happens on submit.
func PreviewPrice(draft ReservationDraft, accommodations []Accommodation) (nights int, total float64) {
	if draft.Selected == nil {
		return 0, 0
	}
	acc, err := draft.Selected.Resolve(accommodations)
	if err != nil {
		return 0, 0
	}
	if draft.Dates.CheckIn.IsZero() || draft.Dates.CheckOut.IsZero() {
		return 0, 0
	}
	n := draft.Dates.Nights()
	if n < 1 {
		return 0, 0
	}
	return n, float64(n) * acc.NightlyPrice
}
