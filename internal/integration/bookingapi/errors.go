package bookingapi

import "errors"

var (
	// ErrInternal is returned when the request could not be sent or no
	// response arrived (including timeouts).
	ErrInternal = errors.New("bookingapi client: internal error")

	// ErrInvalidResponse is returned when a response body cannot be decoded.
	ErrInvalidResponse = errors.New("bookingapi client: invalid response")

	// ErrRejected is returned for any non-success status from the endpoint.
	ErrRejected = errors.New("bookingapi client: booking rejected")
)

// RejectedError carries the endpoint's own reason, when it gave one.
type RejectedError struct {
	StatusCode int
	Reason     string
}

func (e *RejectedError) Error() string {
	if e.Reason == "" {
		return ErrRejected.Error()
	}
	return ErrRejected.Error() + ": " + e.Reason
}

func (e *RejectedError) Unwrap() error {
	return ErrRejected
}
