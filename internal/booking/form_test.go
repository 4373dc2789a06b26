package booking

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fill(t *testing.T, c *FormController, d BookingDraft) {
	t.Helper()
	for _, key := range Fields() {
		value, _ := d.Get(key)
		require.NoError(t, c.SetField(key, value))
	}
}

func TestFormController_SetFieldGivesImmediateFeedback(t *testing.T) {
	c := NewFormController(clock)

	require.NoError(t, c.SetField(FieldPhone, "12345"))
	assert.Equal(t, "Please enter a valid 10-digit mobile number", c.Errors()[FieldPhone])
	assert.Len(t, c.Errors(), 1)

	require.NoError(t, c.SetField(FieldPhone, "9876543210"))
	assert.NotContains(t, c.Errors(), FieldPhone)
	assert.Equal(t, "9876543210", c.Draft().Phone)
}

func TestFormController_SetFieldOnlyTouchesThatField(t *testing.T) {
	c := NewFormController(clock)

	errs := c.ValidateAll()
	require.Contains(t, errs, FieldEmail)
	require.Contains(t, errs, FieldCity)

	require.NoError(t, c.SetField(FieldEmail, "priya@example.com"))

	errs = c.Errors()
	assert.NotContains(t, errs, FieldEmail)
	assert.Contains(t, errs, FieldCity)
}

func TestFormController_UnknownField(t *testing.T) {
	c := NewFormController(clock)

	err := c.SetField("nickname", "x")
	assert.ErrorIs(t, err, ErrUnknownField)

	err = c.SetFields(map[string]string{FieldCity: "Pune", "nickname": "x"})
	assert.ErrorIs(t, err, ErrUnknownField)
	assert.Empty(t, c.Draft().City)
}

func TestFormController_FullPassAtSubmission(t *testing.T) {
	c := NewFormController(clock)
	assert.False(t, c.IsValid())

	fill(t, c, validDraft())
	assert.Empty(t, c.Errors())
	assert.True(t, c.IsValid())
}

func TestFormController_SetFields(t *testing.T) {
	c := NewFormController(clock)

	require.NoError(t, c.SetFields(map[string]string{
		FieldCity:    "Pune",
		FieldPinCode: "41100",
	}))

	assert.Equal(t, "Pune", c.Draft().City)
	assert.Equal(t, "PIN code must be exactly 6 digits", c.Errors()[FieldPinCode])
	assert.NotContains(t, c.Errors(), FieldCity)
}

func TestFormController_Reset(t *testing.T) {
	c := NewFormController(clock)
	fill(t, c, validDraft())
	require.NoError(t, c.SetField(FieldAge, "200"))

	c.Reset()

	assert.Equal(t, BookingDraft{}, c.Draft())
	assert.Empty(t, c.Errors())
}

func TestFormController_ErrorsAreCopies(t *testing.T) {
	c := NewFormController(clock)
	errs := c.ValidateAll()
	errs[FieldCity] = "changed"

	assert.NotEqual(t, "changed", c.Errors()[FieldCity])
}
