package booking

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2026, 10, 15, 10, 0, 0, 0, time.UTC)

func clock() time.Time { return fixedNow }

func validDraft() BookingDraft {
	return BookingDraft{
		FullName:       "Priya Sharma",
		Email:          "priya@example.com",
		Phone:          "9876543210",
		Age:            "34",
		Gender:         "female",
		StreetAddress:  "12 MG Road",
		City:           "Bengaluru",
		State:          "Karnataka",
		PinCode:        "560001",
		PreferredDate:  "2026-10-16",
		TimeSlot:       "08:00-10:00",
		CollectionType: CollectionHome,
	}
}

func TestValidateAll_ValidDraft(t *testing.T) {
	v := NewValidator(clock)
	d := validDraft()

	errs := v.ValidateAll(&d)
	assert.Empty(t, errs)
	assert.True(t, v.IsValid(&d))

	d.Landmark = ""
	d.SpecialInstructions = ""
	assert.True(t, v.IsValid(&d))
}

func TestValidateAll_SingleInvalidField(t *testing.T) {
	v := NewValidator(clock)

	bad := map[string]string{
		FieldFullName:       "   ",
		FieldEmail:          "priya@",
		FieldPhone:          "1234567890",
		FieldAge:            "0",
		FieldGender:         "unknown",
		FieldStreetAddress:  "",
		FieldCity:           "  ",
		FieldState:          "Atlantis",
		FieldPinCode:        "56001",
		FieldPreferredDate:  "2026-10-15",
		FieldTimeSlot:       "23:00-01:00",
		FieldCollectionType: "clinic",
	}

	for key, value := range bad {
		t.Run(key, func(t *testing.T) {
			d := validDraft()
			require.True(t, d.Set(key, value))

			errs := v.ValidateAll(&d)
			require.Len(t, errs, 1)
			assert.Contains(t, errs, key)
			assert.NotEmpty(t, errs[key])
		})
	}
}

func TestValidateAll_EmptyDraft(t *testing.T) {
	v := NewValidator(clock)
	d := BookingDraft{}

	errs := v.ValidateAll(&d)
	assert.Len(t, errs, 12)
	assert.NotContains(t, errs, FieldLandmark)
	assert.NotContains(t, errs, FieldSpecialInstructions)
	assert.Equal(t, "Full name is required", errs[FieldFullName])
}

func TestPhone(t *testing.T) {
	v := NewValidator(clock)

	tests := []struct {
		phone string
		valid bool
	}{
		{"9876543210", true},
		{"6000000000", true},
		{"1234567890", false},
		{"5876543210", false},
		{"987654321", false},
		{"98765432100", false},
		{"98765abcde", false},
		{"", false},
	}

	for _, tt := range tests {
		d := validDraft()
		d.Phone = tt.phone
		msg, ok := v.ValidateField(&d, FieldPhone)
		require.True(t, ok)
		assert.Equal(t, tt.valid, msg == "", "phone %q", tt.phone)
	}
}

func TestAge(t *testing.T) {
	v := NewValidator(clock)

	for age, valid := range map[string]bool{
		"1": true, "120": true, "45": true,
		"0": false, "121": false, "-3": false, "12.5": false, "abc": false, "": false,
	} {
		d := validDraft()
		d.Age = age
		msg, _ := v.ValidateField(&d, FieldAge)
		assert.Equal(t, valid, msg == "", "age %q", age)
	}
}

func TestPinCode(t *testing.T) {
	v := NewValidator(clock)

	for pin, valid := range map[string]bool{
		"560001": true, "56000": false, "5600011": false, "56a001": false, "-56001": false,
	} {
		d := validDraft()
		d.PinCode = pin
		msg, _ := v.ValidateField(&d, FieldPinCode)
		assert.Equal(t, valid, msg == "", "pin %q", pin)
	}
}

func TestPreferredDate(t *testing.T) {
	v := NewValidator(clock)

	tests := []struct {
		date string
		msg  string
	}{
		{"2026-10-16", ""},
		{"2026-12-01", ""},
		{"2026-10-15", "Preferred date must be tomorrow or later"},
		{"2026-10-01", "Preferred date must be tomorrow or later"},
		{"16/10/2026", "Please enter a valid date (YYYY-MM-DD)"},
		{"", "Preferred date is required"},
	}

	for _, tt := range tests {
		d := validDraft()
		d.PreferredDate = tt.date
		msg, _ := v.ValidateField(&d, FieldPreferredDate)
		assert.Equal(t, tt.msg, msg, "date %q", tt.date)
	}
}

func TestEnumeratedFields(t *testing.T) {
	v := NewValidator(clock)

	d := validDraft()
	for _, g := range []string{"male", "female", "other"} {
		d.Gender = g
		msg, _ := v.ValidateField(&d, FieldGender)
		assert.Empty(t, msg)
	}

	for _, s := range TimeSlots {
		d.TimeSlot = s
		msg, _ := v.ValidateField(&d, FieldTimeSlot)
		assert.Empty(t, msg)
	}

	for _, s := range States {
		d.State = s
		msg, _ := v.ValidateField(&d, FieldState)
		assert.Empty(t, msg)
	}

	d.CollectionType = CollectionLab
	msg, _ := v.ValidateField(&d, FieldCollectionType)
	assert.Empty(t, msg)

	d.CollectionType = "clinic"
	msg, _ = v.ValidateField(&d, FieldCollectionType)
	assert.Equal(t, "Collection type must be one of: home, lab", msg)
}

func TestValidateField_UnknownAndOptional(t *testing.T) {
	v := NewValidator(clock)
	d := BookingDraft{}

	_, ok := v.ValidateField(&d, "nickname")
	assert.False(t, ok)

	msg, ok := v.ValidateField(&d, FieldLandmark)
	assert.True(t, ok)
	assert.Empty(t, msg)
}

func TestValidatePricing(t *testing.T) {
	d := func(s string) *decimal.Decimal {
		v := decimal.RequireFromString(s)
		return &v
	}
	price := decimal.RequireFromString("899")

	assert.Empty(t, ValidatePricing(price, nil, nil))
	assert.Empty(t, ValidatePricing(price, d("1299"), d("30")))
	assert.Empty(t, ValidatePricing(price, nil, d("0")))

	errs := ValidatePricing(price, d("899"), nil)
	assert.Contains(t, errs, "original_price")

	errs = ValidatePricing(price, d("500"), d("100"))
	assert.Len(t, errs, 2)

	errs = ValidatePricing(price, nil, d("-1"))
	assert.Contains(t, errs, "discount_percentage")
}
