package booking

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMergeAccommodations(t *testing.T) {
	rooms := []RoomListing{
		{ID: 1, Name: "Cueva del Dragón", Price: 100, IsAvailable: true},
		{ID: 2, Name: "Torre del Mago", Price: 150, IsAvailable: false},
		{ID: 3, Name: "Bosque Encantado", Price: 120, IsAvailable: true},
	}
	apartments := []ApartmentListing{
		{ID: 1, Name: "Suite del Alquimista", PricePerNight: 300, IsActive: true},
		{ID: 2, Name: "Refugio del Bardo", PricePerNight: 250, IsActive: false},
	}

	merged := MergeAccommodations(rooms, apartments)
	require.Len(t, merged, 3)

	// rooms precede apartments, source order kept within each kind
	assert.Equal(t, Accommodation{ID: 1, Kind: KindRoom, Name: "Cueva del Dragón", NightlyPrice: 100, Bookable: true}, merged[0])
	assert.Equal(t, Accommodation{ID: 3, Kind: KindRoom, Name: "Bosque Encantado", NightlyPrice: 120, Bookable: true}, merged[1])
	assert.Equal(t, Accommodation{ID: 1, Kind: KindApartment, Name: "Suite del Alquimista", NightlyPrice: 300, Bookable: true}, merged[2])
}

func TestMergeAccommodationsKeepsCrossKindIDCollisions(t *testing.T) {
	merged := MergeAccommodations(
		[]RoomListing{{ID: 7, Name: "Room 7", Price: 90, IsAvailable: true}},
		[]ApartmentListing{{ID: 7, Name: "Apartment 7", PricePerNight: 180, IsActive: true}},
	)
	require.Len(t, merged, 2)

	room, err := Selection{Kind: KindRoom, ID: "7"}.Resolve(merged)
	require.NoError(t, err)
	assert.Equal(t, "Room 7", room.Name)

	apt, err := Selection{Kind: KindApartment, ID: "7"}.Resolve(merged)
	require.NoError(t, err)
	assert.Equal(t, "Apartment 7", apt.Name)
}

func TestMergeAccommodationsEmptyInputs(t *testing.T) {
	assert.Empty(t, MergeAccommodations(nil, nil))
	assert.Empty(t, MergeAccommodations(
		[]RoomListing{{ID: 1, IsAvailable: false}},
		[]ApartmentListing{{ID: 1, IsActive: false}},
	))
}

func TestSelectionResolve(t *testing.T) {
	list := []Accommodation{
		{ID: 1, Kind: KindRoom, Name: "Cueva del Dragón", NightlyPrice: 100, Bookable: true},
	}

	cases := []struct {
		name string
		sel  Selection
		err  error
	}{
		{name: "match", sel: Selection{Kind: KindRoom, ID: "1"}},
		{name: "wrong kind", sel: Selection{Kind: KindApartment, ID: "1"}, err: ErrInvalidAccommodation},
		{name: "unknown id", sel: Selection{Kind: KindRoom, ID: "99"}, err: ErrInvalidAccommodation},
		{name: "non-integer id", sel: Selection{Kind: KindRoom, ID: "abc"}, err: ErrInvalidAccommodation},
		{name: "empty id", sel: Selection{Kind: KindRoom, ID: ""}, err: ErrInvalidAccommodation},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			acc, err := tc.sel.Resolve(list)
			if tc.err != nil {
				assert.ErrorIs(t, err, tc.err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, list[0], acc)
		})
	}
}
