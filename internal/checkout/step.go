package checkout

// Step is a checkout stage.
type Step string

const (
	StepReviewCart     Step = "review_cart"
	StepBookingDetails Step = "booking_details"
	StepConfirmation   Step = "confirmation"
)

func (s Step) String() string {
	return string(s)
}
