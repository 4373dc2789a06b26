package booking

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"lab-booking/pkg/utils"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

const (
	MinAge = 1
	MaxAge = 120
)

// States accepted for the address. Union territories included.
var States = []string{
	"Andhra Pradesh", "Arunachal Pradesh", "Assam", "Bihar", "Chhattisgarh",
	"Goa", "Gujarat", "Haryana", "Himachal Pradesh", "Jharkhand", "Karnataka",
	"Kerala", "Madhya Pradesh", "Maharashtra", "Manipur", "Meghalaya", "Mizoram",
	"Nagaland", "Odisha", "Punjab", "Rajasthan", "Sikkim", "Tamil Nadu",
	"Telangana", "Tripura", "Uttar Pradesh", "Uttarakhand", "West Bengal",
	"Andaman and Nicobar Islands", "Chandigarh",
	"Dadra and Nagar Haveli and Daman and Diu", "Delhi", "Jammu and Kashmir",
	"Ladakh", "Lakshadweep", "Puducherry",
}

// TimeSlots are the fixed sample-collection windows.
var TimeSlots = []string{
	"06:00-08:00",
	"08:00-10:00",
	"10:00-12:00",
	"12:00-14:00",
	"14:00-16:00",
	"16:00-18:00",
}

var (
	mobilePattern  = regexp.MustCompile(`^[6-9][0-9]{9}$`)
	pinCodePattern = regexp.MustCompile(`^[0-9]{6}$`)
)

func contains(list []string, v string) bool {
	for _, item := range list {
		if item == v {
			return true
		}
	}
	return false
}

// Validator runs the booking field rules. Date rules are evaluated
// against the injected clock.
type Validator struct {
	validate *validator.Validate
	now      func() time.Time
}

func NewValidator(now func() time.Time) *Validator {
	if now == nil {
		now = time.Now
	}
	v := utils.NewValidator()
	bv := &Validator{validate: v, now: now}

	// registration only fails on empty tags or nil funcs
	_ = v.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	})
	_ = v.RegisterValidation("in_mobile", func(fl validator.FieldLevel) bool {
		return mobilePattern.MatchString(fl.Field().String())
	})
	_ = v.RegisterValidation("pincode", func(fl validator.FieldLevel) bool {
		return pinCodePattern.MatchString(fl.Field().String())
	})
	_ = v.RegisterValidation("age_range", func(fl validator.FieldLevel) bool {
		age, err := strconv.Atoi(strings.TrimSpace(fl.Field().String()))
		return err == nil && age >= MinAge && age <= MaxAge
	})
	_ = v.RegisterValidation("in_state", func(fl validator.FieldLevel) bool {
		return contains(States, fl.Field().String())
	})
	_ = v.RegisterValidation("time_slot", func(fl validator.FieldLevel) bool {
		return contains(TimeSlots, fl.Field().String())
	})
	_ = v.RegisterValidation("from_tomorrow", bv.isFromTomorrow)

	return bv
}

// isFromTomorrow accepts dates no earlier than the day after now.
func (bv *Validator) isFromTomorrow(fl validator.FieldLevel) bool {
	now := bv.now()
	date, err := time.ParseInLocation(DateLayout, fl.Field().String(), now.Location())
	if err != nil {
		return false
	}
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return !date.Before(today.AddDate(0, 0, 1))
}

// ValidateAll runs every field rule and returns the failures.
// The map is empty iff the draft can be submitted.
func (bv *Validator) ValidateAll(draft *BookingDraft) FieldErrors {
	errs := utils.ValidationErrorsToMap(bv.validate.Struct(draft), fieldMessage)
	if errs == nil {
		return FieldErrors{}
	}
	return FieldErrors(errs)
}

// IsValid reports whether ValidateAll finds nothing.
func (bv *Validator) IsValid(draft *BookingDraft) bool {
	return len(bv.ValidateAll(draft)) == 0
}

// ValidateField checks a single field. It returns "" when the field is
// valid or has no rules, and false for unknown keys.
func (bv *Validator) ValidateField(draft *BookingDraft, key string) (string, bool) {
	f, ok := lookupField(key)
	if !ok {
		return "", false
	}
	if f.noRule {
		return "", true
	}

	errs := utils.ValidationErrorsToMap(bv.validate.StructPartial(draft, f.name), fieldMessage)
	return errs[key], true
}

// fieldMessage gives booking-specific wording; anything it does not cover
// falls back to the generic messages.
func fieldMessage(fe validator.FieldError) (string, bool) {
	label := fe.Field()
	if f, ok := lookupField(fe.Field()); ok {
		label = f.label
	}

	switch fe.Tag() {
	case "required", "notblank":
		return fmt.Sprintf("%s is required", label), true
	case "email":
		return "Please enter a valid email address", true
	case "in_mobile":
		return "Please enter a valid 10-digit mobile number", true
	case "age_range":
		return fmt.Sprintf("Age must be a whole number between %d and %d", MinAge, MaxAge), true
	case "in_state":
		return "Please select a valid state", true
	case "pincode":
		return "PIN code must be exactly 6 digits", true
	case "datetime":
		return "Please enter a valid date (YYYY-MM-DD)", true
	case "from_tomorrow":
		return "Preferred date must be tomorrow or later", true
	case "time_slot":
		return "Please select a valid time slot", true
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", label, strings.ReplaceAll(fe.Param(), " ", ", ")), true
	}
	return "", false
}

// ValidatePricing applies the catalog pricing rule: an original price must be
// strictly above the price, and a discount must lie in [0, 100).
func ValidatePricing(price decimal.Decimal, originalPrice, discountPercentage *decimal.Decimal) FieldErrors {
	errs := FieldErrors{}

	if originalPrice != nil && !originalPrice.GreaterThan(price) {
		errs["original_price"] = "Original price must be greater than price"
	}
	if discountPercentage != nil {
		if discountPercentage.IsNegative() || discountPercentage.GreaterThanOrEqual(decimal.NewFromInt(100)) {
			errs["discount_percentage"] = "Discount percentage must be between 0 and 100"
		}
	}

	return errs
}
