package bookingapi

import "github.com/shopspring/decimal"

// BookingRequest is the payload accepted by the booking endpoint.
type BookingRequest struct {
	Items    []BookingItem `json:"items"`
	Customer Customer      `json:"customer"`
	Totals   Totals        `json:"totals"`
}

type BookingItem struct {
	PackageID   string          `json:"packageId"`
	PackageName string          `json:"packageName,omitempty"`
	Quantity    int             `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unitPrice"`
}

type Customer struct {
	FullName            string `json:"fullName"`
	Email               string `json:"email"`
	Phone               string `json:"phone"`
	Age                 int    `json:"age"`
	Gender              string `json:"gender"`
	StreetAddress       string `json:"streetAddress"`
	City                string `json:"city"`
	State               string `json:"state"`
	PinCode             string `json:"pinCode"`
	Landmark            string `json:"landmark,omitempty"`
	PreferredDate       string `json:"preferredDate"`
	TimeSlot            string `json:"timeSlot"`
	CollectionType      string `json:"collectionType"`
	SpecialInstructions string `json:"specialInstructions,omitempty"`
}

type Totals struct {
	ItemCount     int             `json:"itemCount"`
	Total         decimal.Decimal `json:"total"`
	OriginalTotal decimal.Decimal `json:"originalTotal"`
	Savings       decimal.Decimal `json:"savings"`
}

// BookingResponse is a successful reply. Endpoints answer with either
// bookingId or id.
type BookingResponse struct {
	BookingID string `json:"bookingId"`
	ID        string `json:"id"`
	Message   string `json:"message,omitempty"`
}

// Identifier returns whichever id field the endpoint filled.
func (r *BookingResponse) Identifier() string {
	if r.BookingID != "" {
		return r.BookingID
	}
	return r.ID
}

// ErrorResponse is the error body shape of the endpoint.
type ErrorResponse struct {
	Message string `json:"message"`
	Error   string `json:"error"`
}
