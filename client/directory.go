package client

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/google/go-querystring/query"

	"hotel-dd-backend/booking"
)

// ListOptions carries the skip/limit pagination the directory endpoints take.
type ListOptions struct {
	Skip  int `url:"skip"`
	Limit int `url:"limit"`
}

// DefaultListOptions matches what the site requests for its selects.
var DefaultListOptions = ListOptions{Skip: 0, Limit: 100}

// DirectoryClient reads the accommodation catalog: rooms and apartments with
// their nightly prices and availability flags.
type DirectoryClient struct {
	baseURL string
	httpc   *http.Client
	auth    AuthContext
}

func NewDirectoryClient(baseURL string, auth AuthContext) *DirectoryClient {
	return &DirectoryClient{
		baseURL: trimBaseURL(baseURL),
		httpc:   &http.Client{Timeout: DefaultTimeout},
		auth:    auth,
	}
}

// Rooms fetches the raw room listings.
func (c *DirectoryClient) Rooms(ctx context.Context, opts ListOptions) ([]booking.RoomListing, error) {
	var rooms []booking.RoomListing
	if err := c.getList(ctx, "/rooms", "rooms", opts, &rooms); err != nil {
		return nil, err
	}
	return rooms, nil
}

// Apartments fetches the raw apartment listings.
func (c *DirectoryClient) Apartments(ctx context.Context, opts ListOptions) ([]booking.ApartmentListing, error) {
	var apartments []booking.ApartmentListing
	if err := c.getList(ctx, "/apartments", "apartments", opts, &apartments); err != nil {
		return nil, err
	}
	return apartments, nil
}

// Accommodations fetches both listings and returns the merged, bookable
// selection list the form works with.
func (c *DirectoryClient) Accommodations(ctx context.Context) ([]booking.Accommodation, error) {
	rooms, err := c.Rooms(ctx, DefaultListOptions)
	if err != nil {
		return nil, fmt.Errorf("load rooms: %w", err)
	}
	apartments, err := c.Apartments(ctx, DefaultListOptions)
	if err != nil {
		return nil, fmt.Errorf("load apartments: %w", err)
	}
	return booking.MergeAccommodations(rooms, apartments), nil
}

func (c *DirectoryClient) getList(ctx context.Context, path, collection string, opts ListOptions, out any) error {
	if opts.Limit <= 0 {
		opts.Limit = DefaultListOptions.Limit
	}
	params, err := query.Values(opts)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path+"?"+params.Encode(), nil)
	if err != nil {
		return err
	}
	c.auth.apply(req)

	resp, err := c.httpc.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("%d: %s", resp.StatusCode, body)
	}

	list, err := normalizeListResponse(body, collection)
	if err != nil {
		return err
	}
	return json.Unmarshal(list, out)
}
