package order

import (
	"fmt"

	"farmmarket/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
// It implements a state machine with defined transitions to ensure orders
// follow the correct fulfillment workflow.
//
// State transitions:
//
//	Pending ──> Confirmed ──> Preparing ──> Ready ──> InTransit ──> Delivered
//	   │            │             │           │           │
//	   └────────────┴─────────────┴───────────┴───────────┴──> Cancelled
//
// Delivered and Cancelled are terminal: no transition leaves them.
// Status is a value object that validates state transitions and provides
// string representations for persistence and display.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status when an order is placed at checkout.
	Pending

	// Confirmed indicates the farmer accepted the order.
	// Dispatcher assignment happens in this status.
	Confirmed

	// Preparing indicates the farmer is packing the order.
	Preparing

	// Ready indicates the order awaits pickup by the dispatcher.
	Ready

	// InTransit indicates the dispatcher is carrying the order to the buyer.
	InTransit

	// Delivered indicates the order reached the buyer. Terminal.
	Delivered

	// Cancelled indicates the order was abandoned before delivery. Terminal.
	Cancelled
)

// getStatusStrings returns the wire/storage names of all statuses.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "unknown",
		Pending:   "pending",
		Confirmed: "confirmed",
		Preparing: "preparing",
		Ready:     "ready",
		InTransit: "in_transit",
		Delivered: "delivered",
		Cancelled: "cancelled",
	}
}

// getValidStatusStrings returns only valid statuses, to support validation.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:   "pending",
		Confirmed: "confirmed",
		Preparing: "preparing",
		Ready:     "ready",
		InTransit: "in_transit",
		Delivered: "delivered",
		Cancelled: "cancelled",
	}
}

// progression is the forward fulfillment chain, excluding Cancelled.
// Index order defines how far along the lifecycle a status is.
var progression = []Status{Pending, Confirmed, Preparing, Ready, InTransit, Delivered}

// StatusFromString parses the storage/wire name of a status.
// Returns a ValueIsInvalidError for unrecognized names.
func StatusFromString(s string) (Status, error) {
	for status, name := range getValidStatusStrings() {
		if name == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("order status",
		fmt.Errorf("%q is not a valid order status", s))
}

// Validate checks if the Status value is valid.
// Unknown (0) and out-of-range values are invalid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("order status",
			fmt.Errorf("%d is not a valid order status", s))
	}
	return nil
}

// String returns the storage/wire name of the status.
// Implements fmt.Stringer; safe on any value, including invalid ones.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// IsTerminal reports whether the status accepts no further transitions.
func (s Status) IsTerminal() bool {
	return s == Delivered || s == Cancelled
}

// ordinal returns the position of a status on the forward fulfillment chain,
// or -1 for Cancelled and invalid values.
func (s Status) ordinal() int {
	for i, st := range progression {
		if st == s {
			return i
		}
	}
	return -1
}

// ReachedAtLeast reports whether the order progressed to the given milestone
// on the forward chain. A cancelled order has reached nothing: its delivery
// must not progress either.
func (s Status) ReachedAtLeast(milestone Status) bool {
	own := s.ordinal()
	want := milestone.ordinal()
	if own < 0 || want < 0 {
		return false
	}
	return own >= want
}

// CanTransitionTo reports whether the transition from s to next is legal.
//
// Legal transitions:
//   - one step forward along the fulfillment chain
//   - to Cancelled from any non-terminal state
func (s Status) CanTransitionTo(next Status) bool {
	if s.Validate() != nil || next.Validate() != nil {
		return false
	}
	if s.IsTerminal() {
		return false
	}
	if next == Cancelled {
		return true
	}

	return next.ordinal() == s.ordinal()+1
}

// TransitionTo returns the next status when the transition is legal,
// or an InvalidTransitionError otherwise.
//
// Example:
//
//	newStatus, err := currentStatus.TransitionTo(order.Confirmed)
//	if err != nil {
//	    // illegal transition requested
//	}
func (s Status) TransitionTo(next Status) (Status, error) {
	if err := next.Validate(); err != nil {
		return Unknown, err
	}
	if !s.CanTransitionTo(next) {
		return Unknown, errs.NewInvalidTransitionError("order", s.String(), next.String())
	}

	return next, nil
}
