package client

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hotel-dd-backend/booking"
)

func TestDirectoryClientRooms(t *testing.T) {
	// the backend is inconsistent about list envelopes; all three shapes must
	// decode the same way
	shapes := map[string]string{
		"bare array":     `[{"id":1,"name":"Cueva del Dragón","price":100,"is_available":true}]`,
		"data envelope":  `{"data":[{"id":1,"name":"Cueva del Dragón","price":100,"is_available":true}]}`,
		"named envelope": `{"rooms":[{"id":1,"name":"Cueva del Dragón","price":100,"is_available":true}]}`,
	}

	for name, body := range shapes {
		t.Run(name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "/rooms", r.URL.Path)
				assert.Equal(t, "0", r.URL.Query().Get("skip"))
				assert.Equal(t, "100", r.URL.Query().Get("limit"))
				w.Header().Set("Content-Type", "application/json")
				w.Write([]byte(body))
			}))
			defer srv.Close()

			rooms, err := NewDirectoryClient(srv.URL, AuthContext{}).Rooms(context.Background(), DefaultListOptions)
			require.NoError(t, err)
			require.Len(t, rooms, 1)
			assert.Equal(t, booking.RoomListing{ID: 1, Name: "Cueva del Dragón", Price: 100, IsAvailable: true}, rooms[0])
		})
	}
}

func TestDirectoryClientSendsBearerToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer sekrit", r.Header.Get("Authorization"))
		w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	_, err := NewDirectoryClient(srv.URL, AuthContext{Token: "sekrit"}).Rooms(context.Background(), DefaultListOptions)
	require.NoError(t, err)
}

func TestDirectoryClientAnonymousHasNoAuthHeader(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.Header.Get("Authorization"))
		w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	_, err := NewDirectoryClient(srv.URL, AuthContext{}).Rooms(context.Background(), DefaultListOptions)
	require.NoError(t, err)
}

func TestDirectoryClientAccommodationsMergesBookable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Path {
		case "/rooms":
			w.Write([]byte(`[
				{"id":1,"name":"Cueva del Dragón","price":100,"is_available":true},
				{"id":2,"name":"Torre del Mago","price":150,"is_available":false}
			]`))
		case "/apartments":
			w.Write([]byte(`{"data":[
				{"id":1,"name":"Suite del Alquimista","price_per_night":300,"is_active":true}
			]}`))
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()

	accs, err := NewDirectoryClient(srv.URL, AuthContext{}).Accommodations(context.Background())
	require.NoError(t, err)
	require.Len(t, accs, 2)
	assert.Equal(t, booking.KindRoom, accs[0].Kind)
	assert.Equal(t, "Cueva del Dragón", accs[0].Name)
	assert.Equal(t, booking.KindApartment, accs[1].Kind)
	assert.Equal(t, 300.0, accs[1].NightlyPrice)
}

func TestDirectoryClientErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusBadGateway)
	}))
	defer srv.Close()

	_, err := NewDirectoryClient(srv.URL, AuthContext{}).Rooms(context.Background(), DefaultListOptions)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "502")
}

func TestNormalizeListResponseRejectsUnknownShape(t *testing.T) {
	_, err := normalizeListResponse([]byte(`{"unexpected":[]}`), "rooms")
	assert.Error(t, err)

	_, err = normalizeListResponse([]byte(``), "rooms")
	assert.Error(t, err)
}
