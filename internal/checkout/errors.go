package checkout

import (
	"errors"

	"lab-booking/internal/booking"
)

var (
	ErrEmptyCart        = errors.New("checkout: cart is empty")
	ErrInvalidStep      = errors.New("checkout: action not allowed at this step")
	ErrSubmitting       = errors.New("checkout: a booking submission is in progress")
	ErrInvalidDraft     = errors.New("checkout: booking details are invalid")
	ErrSubmissionFailed = errors.New("checkout: booking submission failed")
)

// ValidationError carries the per-field problems that blocked a submission.
type ValidationError struct {
	Errors booking.FieldErrors
}

func (e *ValidationError) Error() string {
	return ErrInvalidDraft.Error()
}

func (e *ValidationError) Unwrap() error {
	return ErrInvalidDraft
}
