// Package checkout sequences a session's cart and booking form through
// review, details and confirmation, and performs the final submission.
package checkout

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"

	"lab-booking/internal/booking"
	"lab-booking/internal/cart"
	"lab-booking/internal/data/entity"
	"lab-booking/internal/integration/bookingapi"
	"lab-booking/pkg/utils"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

const DefaultSubmitTimeout = 15 * time.Second

const (
	noticeFixErrors = "Please fix the errors in the form before booking."
	noticeFailed    = "We couldn't complete your booking. Please try again."
	noticeTimeout   = "The booking service took too long to respond. Please try again."
)

type Options struct {
	// SubmitTimeout bounds one submission; DefaultSubmitTimeout when zero.
	SubmitTimeout time.Duration
	// Now is the clock used for date rules and references; time.Now when nil.
	Now func() time.Time
}

// Confirmation describes a booking accepted by the endpoint.
type Confirmation struct {
	BookingID      string
	Items          []cart.Item
	ItemCount      int
	Total          decimal.Decimal
	OriginalTotal  decimal.Decimal
	Savings        decimal.Decimal
	CustomerName   string
	Email          string
	PreferredDate  string
	TimeSlot       string
	CollectionType string
	SubmittedAt    time.Time
}

// State is a read-only copy of everything the checkout screens render.
type State struct {
	Step         Step
	Submitting   bool
	Cart         cart.Summary
	Draft        booking.BookingDraft
	Errors       booking.FieldErrors
	Notice       string
	Confirmation *Confirmation
}

// Workflow owns one session's Cart and BookingDraft.
// All methods are safe for concurrent use. While a submission is in flight
// every mutating method fails with ErrSubmitting.
type Workflow struct {
	mu sync.Mutex

	cart   *cart.Store
	form   *booking.FormController
	client BookingClient
	log    *zap.Logger

	timeout time.Duration
	now     func() time.Time

	step         Step
	submitting   bool
	notice       string
	confirmation *Confirmation
}

func NewWorkflow(client BookingClient, opts Options, log *zap.Logger) *Workflow {
	if opts.SubmitTimeout <= 0 {
		opts.SubmitTimeout = DefaultSubmitTimeout
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}

	return &Workflow{
		cart:    cart.NewStore(),
		form:    booking.NewFormController(opts.Now),
		client:  client,
		log:     log,
		timeout: opts.SubmitTimeout,
		now:     opts.Now,
		step:    StepReviewCart,
	}
}

// lockIdle takes the lock and fails if a submission is running.
func (w *Workflow) lockIdle() error {
	w.mu.Lock()
	if w.submitting {
		w.mu.Unlock()
		return ErrSubmitting
	}
	return nil
}

// leaveConfirmation starts a new round once the user touches the cart again.
func (w *Workflow) leaveConfirmation() {
	if w.step == StepConfirmation {
		w.step = StepReviewCart
		w.confirmation = nil
		w.notice = ""
	}
}

// afterCartShrink drops back to review when the cart empties mid-checkout.
func (w *Workflow) afterCartShrink() {
	if w.step == StepBookingDetails && w.cart.IsEmpty() {
		w.step = StepReviewCart
	}
}

// ==================== CART ====================

func (w *Workflow) AddToCart(pkg entity.Package, quantity int) error {
	if err := w.lockIdle(); err != nil {
		return err
	}
	defer w.mu.Unlock()

	w.leaveConfirmation()
	w.cart.Add(pkg, quantity)
	return nil
}

// UpdateQuantity reports whether the new quantity was applied.
func (w *Workflow) UpdateQuantity(packageID string, quantity int) (bool, error) {
	if err := w.lockIdle(); err != nil {
		return false, err
	}
	defer w.mu.Unlock()

	return w.cart.UpdateQuantity(packageID, quantity), nil
}

func (w *Workflow) RemoveFromCart(packageID string) error {
	if err := w.lockIdle(); err != nil {
		return err
	}
	defer w.mu.Unlock()

	w.cart.Remove(packageID)
	w.afterCartShrink()
	return nil
}

// ClearCart empties the cart and discards the draft.
func (w *Workflow) ClearCart() error {
	if err := w.lockIdle(); err != nil {
		return err
	}
	defer w.mu.Unlock()

	w.cart.Clear()
	w.form.Reset()
	w.notice = ""
	if w.step == StepBookingDetails {
		w.step = StepReviewCart
	}
	return nil
}

func (w *Workflow) IsInCart(packageID string) bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.cart.IsInCart(packageID)
}

func (w *Workflow) QuantityOf(packageID string) int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.cart.QuantityOf(packageID)
}

// ==================== STEPS ====================

// ProceedToDetails moves from review to booking details. It needs a
// non-empty cart.
func (w *Workflow) ProceedToDetails() error {
	if err := w.lockIdle(); err != nil {
		return err
	}
	defer w.mu.Unlock()

	if w.step != StepReviewCart {
		return fmt.Errorf("%w: cannot proceed from %s", ErrInvalidStep, w.step)
	}
	if w.cart.IsEmpty() {
		return ErrEmptyCart
	}

	w.step = StepBookingDetails
	w.notice = ""
	return nil
}

// BackToCart returns to review. Cart and draft are kept as they are.
func (w *Workflow) BackToCart() error {
	if err := w.lockIdle(); err != nil {
		return err
	}
	defer w.mu.Unlock()

	if w.step != StepBookingDetails {
		return fmt.Errorf("%w: cannot go back from %s", ErrInvalidStep, w.step)
	}

	w.step = StepReviewCart
	w.notice = ""
	return nil
}

// Restart leaves the confirmation screen for a fresh review step.
func (w *Workflow) Restart() error {
	if err := w.lockIdle(); err != nil {
		return err
	}
	defer w.mu.Unlock()

	if w.step != StepConfirmation {
		return fmt.Errorf("%w: cannot restart from %s", ErrInvalidStep, w.step)
	}
	w.leaveConfirmation()
	return nil
}

// ==================== DRAFT ====================

// EditDraft applies field edits and returns the resulting field errors.
func (w *Workflow) EditDraft(values map[string]string) (booking.FieldErrors, error) {
	if err := w.lockIdle(); err != nil {
		return nil, err
	}
	defer w.mu.Unlock()

	if w.step != StepBookingDetails {
		return nil, fmt.Errorf("%w: booking details can only be edited at %s", ErrInvalidStep, StepBookingDetails)
	}
	if err := w.form.SetFields(values); err != nil {
		return nil, err
	}
	return w.form.Errors(), nil
}

// Validate runs the full form pass without submitting.
func (w *Workflow) Validate() booking.FieldErrors {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.form.ValidateAll()
}

// ==================== SUBMIT ====================

// Submit validates the draft, sends the booking and, on success, clears the
// cart, resets the draft and moves to confirmation. On failure nothing but
// the notice changes, so the user can retry.
func (w *Workflow) Submit(ctx context.Context) (*Confirmation, error) {
	if err := w.lockIdle(); err != nil {
		return nil, err
	}

	if w.step != StepBookingDetails {
		w.mu.Unlock()
		return nil, fmt.Errorf("%w: cannot submit from %s", ErrInvalidStep, w.step)
	}
	if w.cart.IsEmpty() {
		w.mu.Unlock()
		return nil, ErrEmptyCart
	}
	if !w.form.IsValid() {
		w.notice = noticeFixErrors
		errs := w.form.Errors()
		w.mu.Unlock()
		return nil, &ValidationError{Errors: errs}
	}

	summary := w.cart.Summary()
	draft := w.form.Draft()
	payload := buildPayload(summary, draft)
	w.submitting = true
	w.notice = ""
	w.mu.Unlock()

	ctx, cancel := context.WithTimeout(ctx, w.timeout)
	defer cancel()

	start := w.now()
	resp, err := w.client.CreateBooking(ctx, payload)

	w.mu.Lock()
	defer w.mu.Unlock()
	w.submitting = false

	if err != nil {
		w.notice = failureNotice(ctx, err)
		w.log.Warn("Booking submission failed",
			zap.Error(err),
			zap.Int("item_count", summary.ItemCount),
			zap.String("total", summary.Total.String()),
		)
		return nil, fmt.Errorf("%w: %w", ErrSubmissionFailed, err)
	}

	bookingID := resp.Identifier()
	if bookingID == "" {
		bookingID = utils.GenerateBookingReference(start)
	}

	conf := &Confirmation{
		BookingID:      bookingID,
		Items:          summary.Items,
		ItemCount:      summary.ItemCount,
		Total:          summary.Total,
		OriginalTotal:  summary.OriginalTotal,
		Savings:        summary.Savings,
		CustomerName:   strings.TrimSpace(draft.FullName),
		Email:          draft.Email,
		PreferredDate:  draft.PreferredDate,
		TimeSlot:       draft.TimeSlot,
		CollectionType: draft.CollectionType,
		SubmittedAt:    start,
	}

	w.cart.Clear()
	w.form.Reset()
	w.step = StepConfirmation
	w.confirmation = conf

	w.log.Info("Booking submitted",
		zap.String("booking_id", bookingID),
		zap.Int("item_count", conf.ItemCount),
		zap.String("total", conf.Total.String()),
		zap.String("savings", conf.Savings.String()),
	)
	return conf, nil
}

func failureNotice(ctx context.Context, err error) string {
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return noticeTimeout
	}
	return noticeFailed
}

func buildPayload(summary cart.Summary, draft booking.BookingDraft) *bookingapi.BookingRequest {
	items := make([]bookingapi.BookingItem, len(summary.Items))
	for i, item := range summary.Items {
		items[i] = bookingapi.BookingItem{
			PackageID:   item.Package.ID,
			PackageName: item.Package.Name,
			Quantity:    item.Quantity,
			UnitPrice:   item.Package.Price,
		}
	}

	// already validated as an integer in range
	age, _ := strconv.Atoi(strings.TrimSpace(draft.Age))

	return &bookingapi.BookingRequest{
		Items: items,
		Customer: bookingapi.Customer{
			FullName:            strings.TrimSpace(draft.FullName),
			Email:               strings.TrimSpace(draft.Email),
			Phone:               draft.Phone,
			Age:                 age,
			Gender:              draft.Gender,
			StreetAddress:       strings.TrimSpace(draft.StreetAddress),
			City:                strings.TrimSpace(draft.City),
			State:               draft.State,
			PinCode:             draft.PinCode,
			Landmark:            strings.TrimSpace(draft.Landmark),
			PreferredDate:       draft.PreferredDate,
			TimeSlot:            draft.TimeSlot,
			CollectionType:      draft.CollectionType,
			SpecialInstructions: strings.TrimSpace(draft.SpecialInstructions),
		},
		Totals: bookingapi.Totals{
			ItemCount:     summary.ItemCount,
			Total:         summary.Total,
			OriginalTotal: summary.OriginalTotal,
			Savings:       summary.Savings,
		},
	}
}

// ==================== READ ====================

func (w *Workflow) Step() Step {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.step
}

func (w *Workflow) Submitting() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.submitting
}

func (w *Workflow) Snapshot() State {
	w.mu.Lock()
	defer w.mu.Unlock()

	return State{
		Step:         w.step,
		Submitting:   w.submitting,
		Cart:         w.cart.Summary(),
		Draft:        w.form.Draft(),
		Errors:       w.form.Errors(),
		Notice:       w.notice,
		Confirmation: w.confirmation,
	}
}
