package response

import (
	"time"

	"lab-booking/internal/booking"
	"lab-booking/internal/checkout"

	"github.com/shopspring/decimal"
)

type ConfirmationResponse struct {
	BookingID      string             `json:"booking_id"`
	Items          []CartItemResponse `json:"items"`
	ItemCount      int                `json:"item_count"`
	Total          decimal.Decimal    `json:"total"`
	OriginalTotal  decimal.Decimal    `json:"original_total"`
	Savings        decimal.Decimal    `json:"savings"`
	CustomerName   string             `json:"customer_name"`
	Email          string             `json:"email"`
	PreferredDate  string             `json:"preferred_date"`
	TimeSlot       string             `json:"time_slot"`
	CollectionType string             `json:"collection_type"`
	SubmittedAt    time.Time          `json:"submitted_at"`
}

type CheckoutResponse struct {
	Step         checkout.Step         `json:"step"`
	Submitting   bool                  `json:"submitting"`
	Cart         CartResponse          `json:"cart"`
	Draft        booking.BookingDraft  `json:"draft"`
	Errors       map[string]string     `json:"errors"`
	Notice       string                `json:"notice,omitempty"`
	CanProceed   bool                  `json:"can_proceed"`
	Confirmation *ConfirmationResponse `json:"confirmation,omitempty"`
}

func ConfirmationToResponse(c *checkout.Confirmation) *ConfirmationResponse {
	if c == nil {
		return nil
	}
	return &ConfirmationResponse{
		BookingID:      c.BookingID,
		Items:          CartItemsToResponse(c.Items),
		ItemCount:      c.ItemCount,
		Total:          c.Total,
		OriginalTotal:  c.OriginalTotal,
		Savings:        c.Savings,
		CustomerName:   c.CustomerName,
		Email:          c.Email,
		PreferredDate:  c.PreferredDate,
		TimeSlot:       c.TimeSlot,
		CollectionType: c.CollectionType,
		SubmittedAt:    c.SubmittedAt,
	}
}

func CheckoutToResponse(s checkout.State) CheckoutResponse {
	canProceed := s.Step == checkout.StepReviewCart && s.Cart.ItemCount > 0 && !s.Submitting

	return CheckoutResponse{
		Step:         s.Step,
		Submitting:   s.Submitting,
		Cart:         CartToResponse(s.Cart),
		Draft:        s.Draft,
		Errors:       s.Errors,
		Notice:       s.Notice,
		CanProceed:   canProceed,
		Confirmation: ConfirmationToResponse(s.Confirmation),
	}
}
