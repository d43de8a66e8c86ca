package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"hotel-dd-backend/booking"
)

// BookingRecord is the reservation as the submission service returns it.
type BookingRecord struct {
	ID                uint    `json:"id"`
	ReferenceCode     string  `json:"reference_code"`
	GuestName         string  `json:"guest_name"`
	GuestEmail        string  `json:"guest_email"`
	Phone             *string `json:"phone"`
	AccommodationType string  `json:"accommodation_type"`
	AccommodationID   int     `json:"accommodation_id"`
	CheckIn           string  `json:"check_in"`
	CheckOut          string  `json:"check_out"`
	Nights            int     `json:"nights"`
	TotalPrice        float64 `json:"total_price"`
	Status            string  `json:"status"`
}

// SubmissionClient posts finished reservation payloads. One request per call,
// no retries; the user resubmits manually after a failure.
type SubmissionClient struct {
	baseURL string
	httpc   *http.Client
	auth    AuthContext
}

func NewSubmissionClient(baseURL string, auth AuthContext) *SubmissionClient {
	return &SubmissionClient{
		baseURL: trimBaseURL(baseURL),
		httpc:   &http.Client{Timeout: DefaultTimeout},
		auth:    auth,
	}
}

// Create sends the payload and decodes the created reservation. Any non-2xx
// response or transport failure comes back as a booking.SubmissionError whose
// detail carries the status and body verbatim; the body is treated as opaque
// text, no field-level parsing.
func (c *SubmissionClient) Create(ctx context.Context, p booking.Payload) (*BookingRecord, error) {
	raw, err := json.Marshal(p)
	if err != nil {
		return nil, &booking.SubmissionError{Detail: err.Error()}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/bookings", bytes.NewReader(raw))
	if err != nil {
		return nil, &booking.SubmissionError{Detail: err.Error()}
	}
	req.Header.Set("Content-Type", "application/json")
	c.auth.apply(req)

	resp, err := c.httpc.Do(req)
	if err != nil {
		return nil, &booking.SubmissionError{Detail: err.Error()}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &booking.SubmissionError{Detail: err.Error()}
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &booking.SubmissionError{
			Detail: fmt.Sprintf("%d: %s", resp.StatusCode, strings.TrimSpace(string(body))),
		}
	}

	var record BookingRecord
	if err := json.Unmarshal(body, &record); err != nil {
		return nil, &booking.SubmissionError{Detail: err.Error()}
	}
	return &record, nil
}

// Submit satisfies booking.Submitter for callers that only care about the
// outcome, not the created record.
func (c *SubmissionClient) Submit(ctx context.Context, p booking.Payload) error {
	_, err := c.Create(ctx, p)
	return err
}
