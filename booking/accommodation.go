package booking

import "strconv"

// Kind tells rooms and apartments apart. IDs are only unique within a kind, so
// (Kind, ID) is the composite key for a merged selection list.
type Kind string

const (
	KindRoom      Kind = "room"
	KindApartment Kind = "apartment"
)

func (k Kind) Valid() bool {
	return k == KindRoom || k == KindApartment
}

// RoomListing mirrors the raw room shape served by the directory.
type RoomListing struct {
	ID          int     `json:"id"`
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	IsAvailable bool    `json:"is_available"`
}

// ApartmentListing mirrors the raw apartment shape. Field names differ from
// rooms on purpose: that is what the backend actually serves.
type ApartmentListing struct {
	ID            int     `json:"id"`
	Name          string  `json:"name"`
	PricePerNight float64 `json:"price_per_night"`
	IsActive      bool    `json:"is_active"`
}

// Accommodation is the normalized, selectable unit the rest of the package
// works with.
type Accommodation struct {
	ID           int
	Kind         Kind
	Name         string
	NightlyPrice float64
	Bookable     bool
}

// MergeAccommodations combines the two directory listings into one selectable
// list. Entries that are not bookable are dropped. Rooms come before
// apartments and source order is preserved within each kind; that ordering is
// a presentation choice, not a domain rule.
func MergeAccommodations(rooms []RoomListing, apartments []ApartmentListing) []Accommodation {
	merged := make([]Accommodation, 0, len(rooms)+len(apartments))
	for _, r := range rooms {
		if !r.IsAvailable {
			continue
		}
		merged = append(merged, Accommodation{
			ID:           r.ID,
			Kind:         KindRoom,
			Name:         r.Name,
			NightlyPrice: r.Price,
			Bookable:     true,
		})
	}
	for _, a := range apartments {
		if !a.IsActive {
			continue
		}
		merged = append(merged, Accommodation{
			ID:           a.ID,
			Kind:         KindApartment,
			Name:         a.Name,
			NightlyPrice: a.PricePerNight,
			Bookable:     true,
		})
	}
	return merged
}

// Selection references an accommodation the way the UI holds it: the kind plus
// the raw string value of the select input. The ID is only parsed when the
// selection has to be resolved.
type Selection struct {
	Kind Kind
	ID   string
}

// Resolve looks the selection up in a merged list. It fails with
// ErrInvalidAccommodation when the ID is not an integer or no entry matches.
func (sel Selection) Resolve(list []Accommodation) (Accommodation, error) {
	id, err := strconv.Atoi(sel.ID)
	if err != nil {
		return Accommodation{}, ErrInvalidAccommodation
	}
	for _, acc := range list {
		if acc.Kind == sel.Kind && acc.ID == id {
			return acc, nil
		}
	}
	return Accommodation{}, ErrInvalidAccommodation
}
