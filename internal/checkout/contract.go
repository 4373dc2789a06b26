package checkout

import (
	"context"

	"lab-booking/internal/integration/bookingapi"
)

// BookingClient submits a booking to the external endpoint.
type BookingClient interface {
	CreateBooking(ctx context.Context, payload *bookingapi.BookingRequest) (*bookingapi.BookingResponse, error)
}
