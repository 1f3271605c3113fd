// Package lifecycle enforces the booking status state machine. Every applied
// transition updates the booking row and appends one audit entry atomically;
// anything outside the transition table is rejected before the store is
// touched.
package lifecycle

import (
	"context"
	"fmt"
	"math"
	"strconv"

	"appliance-booking/logger"
	bookingModel "appliance-booking/models/booking"
	"appliance-booking/repository"
)

// AllowTransition is the directed graph of permitted status changes.
// Assigned is reachable from any non-terminal state because assignment may
// happen before or after admin confirmation; Cancelled is the administrative
// exit from every non-terminal state.
var AllowTransition = map[bookingModel.BookingStatus][]bookingModel.BookingStatus{
	bookingModel.BookingStatusRequested: {bookingModel.BookingStatusConfirmed, bookingModel.BookingStatusAssigned, bookingModel.BookingStatusCancelled},
	bookingModel.BookingStatusConfirmed: {bookingModel.BookingStatusAssigned, bookingModel.BookingStatusCancelled},
	bookingModel.BookingStatusAssigned:  {bookingModel.BookingStatusOnTheWay, bookingModel.BookingStatusStarted, bookingModel.BookingStatusCancelled},
	bookingModel.BookingStatusOnTheWay:  {bookingModel.BookingStatusStarted, bookingModel.BookingStatusCancelled},
	bookingModel.BookingStatusStarted:   {bookingModel.BookingStatusCompleted, bookingModel.BookingStatusCancelled},
	// Terminal: nothing leaves Completed or Cancelled.
	bookingModel.BookingStatusCompleted: {},
	bookingModel.BookingStatusCancelled: {},
}

// CanTransition reports whether from -> to is a permitted status change.
func CanTransition(from, to bookingModel.BookingStatus) bool {
	allowed, ok := AllowTransition[from]
	if !ok {
		return false
	}
	for _, s := range allowed {
		if s == to {
			return true
		}
	}
	return false
}

// InvalidTransitionError reports an attempted status change that violates
// the state machine. The caller should re-fetch before retrying.
type InvalidTransitionError struct {
	From bookingModel.BookingStatus
	To   bookingModel.BookingStatus
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("invalid booking status transition: %s -> %s", e.From, e.To)
}

// Notifier delivers a best-effort status message to the customer. A nil
// notifier disables notification entirely.
type Notifier interface {
	StatusChanged(ctx context.Context, phone, bookingID string, status bookingModel.BookingStatus) error
}

// Engine applies validated transitions against the booking store.
type Engine struct {
	bookings repository.BookingRepository
	notifier Notifier
}

func NewEngine(bookings repository.BookingRepository, notifier Notifier) *Engine {
	return &Engine{bookings: bookings, notifier: notifier}
}

// Apply moves b to the target status and persists the change together with
// one history entry. b must carry the current stored status; any technician
// or amount fields already set on b are persisted with the transition.
func (e *Engine) Apply(ctx context.Context, b *bookingModel.Booking, to bookingModel.BookingStatus, text string) error {
	from := b.Status
	if !CanTransition(from, to) {
		return &InvalidTransitionError{From: from, To: to}
	}

	b.Status = to
	if err := e.bookings.UpdateWithHistory(ctx, b, from, text); err != nil {
		b.Status = from
		return err
	}

	if e.notifier != nil {
		if err := e.notifier.StatusChanged(ctx, b.Phone, b.ID, to); err != nil {
			logger.Error("Failed to send status notification", err)
		}
	}
	return nil
}

// Confirm moves a Requested booking to Confirmed.
func (e *Engine) Confirm(ctx context.Context, id string) (*bookingModel.Booking, error) {
	b, err := e.bookings.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := e.Apply(ctx, b, bookingModel.BookingStatusConfirmed, "Booking confirmed"); err != nil {
		return nil, err
	}
	return b, nil
}

// Transition applies a generic status change. Assigned and Completed are
// rejected here: the former binds a technician, the latter requires an
// amount, and both have dedicated operations.
func (e *Engine) Transition(ctx context.Context, id string, to bookingModel.BookingStatus) (*bookingModel.Booking, error) {
	if !to.IsValid() {
		return nil, repository.NewValidationError("status", "unknown status "+strconv.Quote(to.String()))
	}
	switch to {
	case bookingModel.BookingStatusAssigned:
		return nil, repository.NewValidationError("status", "use the assign operation to bind a technician")
	case bookingModel.BookingStatusCompleted:
		return nil, repository.NewValidationError("status", "use the complete operation to close a job")
	case bookingModel.BookingStatusRequested:
		return nil, repository.NewValidationError("status", "Requested is the creation state")
	}

	b, err := e.bookings.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	text := "Status → " + to.String()
	if to == bookingModel.BookingStatusConfirmed {
		text = "Booking confirmed"
	}
	if to == bookingModel.BookingStatusCancelled {
		// A cancelled booking holds no technician; clearing the binding keeps
		// the invariant that a technician exists iff the booking is in an
		// assigned-family state.
		b.TechnicianID = nil
		b.TechnicianName = nil
		b.TechnicianPhone = nil
	}

	if err := e.Apply(ctx, b, to, text); err != nil {
		return nil, err
	}
	return b, nil
}

// Complete closes a Started job with its final bill.
func (e *Engine) Complete(ctx context.Context, id string, amount *float64) (*bookingModel.Booking, error) {
	if amount == nil {
		return nil, repository.NewValidationError("amount", "amount is required")
	}
	if math.IsNaN(*amount) || math.IsInf(*amount, 0) {
		return nil, repository.NewValidationError("amount", "amount must be a number")
	}
	if *amount < 0 {
		return nil, repository.NewValidationError("amount", "amount must not be negative")
	}

	b, err := e.bookings.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	b.Amount = amount
	text := "Completed • ₹" + strconv.FormatFloat(*amount, 'f', -1, 64)
	if err := e.Apply(ctx, b, bookingModel.BookingStatusCompleted, text); err != nil {
		return nil, err
	}
	return b, nil
}
