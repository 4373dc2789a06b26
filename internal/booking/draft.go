// Package booking validates the customer and appointment details collected
// at checkout.
package booking

const (
	FieldFullName            = "full_name"
	FieldEmail               = "email"
	FieldPhone               = "phone"
	FieldAge                 = "age"
	FieldGender              = "gender"
	FieldStreetAddress       = "street_address"
	FieldCity                = "city"
	FieldState               = "state"
	FieldPinCode             = "pin_code"
	FieldLandmark            = "landmark"
	FieldPreferredDate       = "preferred_date"
	FieldTimeSlot            = "time_slot"
	FieldCollectionType      = "collection_type"
	FieldSpecialInstructions = "special_instructions"
)

const (
	CollectionHome = "home"
	CollectionLab  = "lab"
)

// DateLayout is the format of PreferredDate.
const DateLayout = "2006-01-02"

// BookingDraft is the in-progress checkout form. All values are kept as the
// user typed them; Age in particular is parsed only during validation.
type BookingDraft struct {
	FullName            string `json:"full_name" validate:"notblank"`
	Email               string `json:"email" validate:"required,email"`
	Phone               string `json:"phone" validate:"required,in_mobile"`
	Age                 string `json:"age" validate:"required,age_range"`
	Gender              string `json:"gender" validate:"required,oneof=male female other"`
	StreetAddress       string `json:"street_address" validate:"notblank"`
	City                string `json:"city" validate:"notblank"`
	State               string `json:"state" validate:"required,in_state"`
	PinCode             string `json:"pin_code" validate:"required,pincode"`
	Landmark            string `json:"landmark"`
	PreferredDate       string `json:"preferred_date" validate:"required,datetime=2006-01-02,from_tomorrow"`
	TimeSlot            string `json:"time_slot" validate:"required,time_slot"`
	CollectionType      string `json:"collection_type" validate:"required,oneof=home lab"`
	SpecialInstructions string `json:"special_instructions"`
}

type fieldDef struct {
	key    string
	name   string // Go field name, used for partial validation
	label  string
	get    func(*BookingDraft) string
	set    func(*BookingDraft, string)
	noRule bool
}

var fieldDefs = []fieldDef{
	{FieldFullName, "FullName", "Full name",
		func(d *BookingDraft) string { return d.FullName }, func(d *BookingDraft, v string) { d.FullName = v }, false},
	{FieldEmail, "Email", "Email",
		func(d *BookingDraft) string { return d.Email }, func(d *BookingDraft, v string) { d.Email = v }, false},
	{FieldPhone, "Phone", "Phone number",
		func(d *BookingDraft) string { return d.Phone }, func(d *BookingDraft, v string) { d.Phone = v }, false},
	{FieldAge, "Age", "Age",
		func(d *BookingDraft) string { return d.Age }, func(d *BookingDraft, v string) { d.Age = v }, false},
	{FieldGender, "Gender", "Gender",
		func(d *BookingDraft) string { return d.Gender }, func(d *BookingDraft, v string) { d.Gender = v }, false},
	{FieldStreetAddress, "StreetAddress", "Street address",
		func(d *BookingDraft) string { return d.StreetAddress }, func(d *BookingDraft, v string) { d.StreetAddress = v }, false},
	{FieldCity, "City", "City",
		func(d *BookingDraft) string { return d.City }, func(d *BookingDraft, v string) { d.City = v }, false},
	{FieldState, "State", "State",
		func(d *BookingDraft) string { return d.State }, func(d *BookingDraft, v string) { d.State = v }, false},
	{FieldPinCode, "PinCode", "PIN code",
		func(d *BookingDraft) string { return d.PinCode }, func(d *BookingDraft, v string) { d.PinCode = v }, false},
	{FieldLandmark, "Landmark", "Landmark",
		func(d *BookingDraft) string { return d.Landmark }, func(d *BookingDraft, v string) { d.Landmark = v }, true},
	{FieldPreferredDate, "PreferredDate", "Preferred date",
		func(d *BookingDraft) string { return d.PreferredDate }, func(d *BookingDraft, v string) { d.PreferredDate = v }, false},
	{FieldTimeSlot, "TimeSlot", "Time slot",
		func(d *BookingDraft) string { return d.TimeSlot }, func(d *BookingDraft, v string) { d.TimeSlot = v }, false},
	{FieldCollectionType, "CollectionType", "Collection type",
		func(d *BookingDraft) string { return d.CollectionType }, func(d *BookingDraft, v string) { d.CollectionType = v }, false},
	{FieldSpecialInstructions, "SpecialInstructions", "Special instructions",
		func(d *BookingDraft) string { return d.SpecialInstructions }, func(d *BookingDraft, v string) { d.SpecialInstructions = v }, true},
}

func lookupField(key string) (fieldDef, bool) {
	for _, f := range fieldDefs {
		if f.key == key {
			return f, true
		}
	}
	return fieldDef{}, false
}

// Fields lists every draft field key in form order.
func Fields() []string {
	keys := make([]string, len(fieldDefs))
	for i, f := range fieldDefs {
		keys[i] = f.key
	}
	return keys
}

// Set assigns value to the field named key. It reports false for unknown keys.
func (d *BookingDraft) Set(key, value string) bool {
	f, ok := lookupField(key)
	if !ok {
		return false
	}
	f.set(d, value)
	return true
}

// Get returns the current value of the field named key.
func (d *BookingDraft) Get(key string) (string, bool) {
	f, ok := lookupField(key)
	if !ok {
		return "", false
	}
	return f.get(d), true
}
