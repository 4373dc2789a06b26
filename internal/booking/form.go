package booking

import (
	"errors"
	"fmt"
	"time"
)

var ErrUnknownField = errors.New("unknown booking field")

// FieldErrors maps a field key to a message. A missing key means valid.
type FieldErrors map[string]string

func (e FieldErrors) clone() FieldErrors {
	out := make(FieldErrors, len(e))
	for k, v := range e {
		out[k] = v
	}
	return out
}

// FormController owns a draft and its current per-field errors.
// It is not safe for concurrent use.
type FormController struct {
	validator *Validator
	draft     BookingDraft
	errors    FieldErrors
}

func NewFormController(now func() time.Time) *FormController {
	return &FormController{
		validator: NewValidator(now),
		errors:    FieldErrors{},
	}
}

// Draft returns a copy of the current draft.
func (c *FormController) Draft() BookingDraft {
	return c.draft
}

// Errors returns a copy of the current field errors.
func (c *FormController) Errors() FieldErrors {
	return c.errors.clone()
}

// SetField edits one field and re-validates only that field, so feedback
// is immediate without waiting for a full pass.
func (c *FormController) SetField(key, value string) error {
	if !c.draft.Set(key, value) {
		return fmt.Errorf("%w: %s", ErrUnknownField, key)
	}

	msg, _ := c.validator.ValidateField(&c.draft, key)
	if msg == "" {
		delete(c.errors, key)
	} else {
		c.errors[key] = msg
	}
	return nil
}

// SetFields applies several edits. Unknown keys abort before anything is
// changed.
func (c *FormController) SetFields(values map[string]string) error {
	for key := range values {
		if _, ok := lookupField(key); !ok {
			return fmt.Errorf("%w: %s", ErrUnknownField, key)
		}
	}
	for _, key := range Fields() {
		if value, ok := values[key]; ok {
			_ = c.SetField(key, value)
		}
	}
	return nil
}

// ValidateAll runs the full pass and replaces the stored errors.
func (c *FormController) ValidateAll() FieldErrors {
	c.errors = c.validator.ValidateAll(&c.draft)
	return c.errors.clone()
}

// IsValid runs the full pass; it always re-checks every field regardless of
// what per-field edits reported.
func (c *FormController) IsValid() bool {
	return len(c.ValidateAll()) == 0
}

// Reset empties the draft and its errors.
func (c *FormController) Reset() {
	c.draft = BookingDraft{}
	c.errors = FieldErrors{}
}
