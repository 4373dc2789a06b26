package bookingapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"
)

// Client sends confirmed checkouts to the booking endpoint.
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        *zap.Logger
}

// NewClient creates a client; timeout bounds every request.
func NewClient(baseURL string, timeout time.Duration, log *zap.Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log.With(zap.String("client", "bookingapi")),
	}
}

// CreateBooking posts the booking and returns the endpoint's reply.
func (c *Client) CreateBooking(ctx context.Context, payload *BookingRequest) (*BookingResponse, error) {
	url := c.baseURL + "/bookings"

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to encode request: %v", ErrInternal, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.Error("Booking endpoint unreachable", zap.String("url", url), zap.Error(err))
		return nil, fmt.Errorf("%w: failed to execute request: %w", ErrInternal, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK, http.StatusCreated:
		// handled below
	default:
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 64<<10))
		var errResp ErrorResponse
		_ = json.Unmarshal(raw, &errResp)

		reason := errResp.Message
		if reason == "" {
			reason = errResp.Error
		}

		c.log.Warn("Booking endpoint rejected booking",
			zap.Int("status", resp.StatusCode),
			zap.String("reason", reason),
			zap.Int("items", len(payload.Items)),
		)
		return nil, &RejectedError{StatusCode: resp.StatusCode, Reason: reason}
	}

	var out BookingResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil && err != io.EOF {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	c.log.Info("Booking accepted",
		zap.String("booking_id", out.Identifier()),
		zap.Int("items", len(payload.Items)),
	)
	return &out, nil
}
