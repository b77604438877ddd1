package delivery

import (
	"fmt"

	"farmmarket/internal/core/domain/model/order"
	"farmmarket/internal/pkg/errs"
)

// Status represents the lifecycle state of a delivery.
// It mirrors a subset of the parent order's lifecycle and moves strictly
// forward:
//
//	Assigned ──> PickedUp ──> InTransit ──> Delivered
//
// A delivery has no cancelled state of its own; cancelling the parent order
// freezes its delivery, because every transition is checked against the order.
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	StatusUnknown Status = iota

	// Assigned is the initial status once a dispatcher is bound to the order.
	Assigned

	// PickedUp indicates the dispatcher collected the goods at the farm.
	PickedUp

	// InTransit indicates the dispatcher is on the way to the buyer.
	InTransit

	// Delivered indicates the goods were handed to the buyer. Terminal.
	Delivered
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown: "unknown",
		Assigned:      "assigned",
		PickedUp:      "picked_up",
		InTransit:     "in_transit",
		Delivered:     "delivered",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // StatusUnknown is intentionally excluded as it's invalid
	return map[Status]string{
		Assigned:  "assigned",
		PickedUp:  "picked_up",
		InTransit: "in_transit",
		Delivered: "delivered",
	}
}

// progression is the forward delivery chain; index order defines progress.
var progression = []Status{Assigned, PickedUp, InTransit, Delivered}

// requiredOrderStatus maps each delivery status to the minimum order status
// the parent must have reached. This is the "delivery must not outrun its
// order" invariant: a delivery cannot report delivered while the order is
// still preparing.
var requiredOrderStatus = map[Status]order.Status{
	Assigned:  order.Confirmed,
	PickedUp:  order.Ready,
	InTransit: order.InTransit,
	Delivered: order.Delivered,
}

// StatusFromString parses the storage/wire name of a delivery status.
func StatusFromString(s string) (Status, error) {
	for status, name := range getValidStatusStrings() {
		if name == s {
			return status, nil
		}
	}
	return StatusUnknown, errs.NewValueIsInvalidErrorWithCause("delivery status",
		fmt.Errorf("%q is not a valid delivery status", s))
}

// Validate checks if the Status value is valid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("delivery status",
			fmt.Errorf("%d is not a valid delivery status", s))
	}
	return nil
}

// String returns the storage/wire name of the status. Implements fmt.Stringer.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// IsTerminal reports whether the status accepts no further transitions.
func (s Status) IsTerminal() bool {
	return s == Delivered
}

func (s Status) ordinal() int {
	for i, st := range progression {
		if st == s {
			return i
		}
	}
	return -1
}

// RequiredOrderStatus returns the minimum order status the parent order must
// have reached before a delivery may enter s.
func (s Status) RequiredOrderStatus() order.Status {
	return requiredOrderStatus[s]
}

// TransitionTo returns the next status when the single-step forward transition
// is legal and the parent order has progressed far enough, or an
// InvalidTransition error otherwise.
func (s Status) TransitionTo(next Status, orderStatus order.Status) (Status, error) {
	if err := next.Validate(); err != nil {
		return StatusUnknown, err
	}

	if s.Validate() != nil || s.IsTerminal() || next.ordinal() != s.ordinal()+1 {
		return StatusUnknown, errs.NewInvalidTransitionError("delivery", s.String(), next.String())
	}

	if !orderStatus.ReachedAtLeast(next.RequiredOrderStatus()) {
		return StatusUnknown, errs.NewInvalidTransitionErrorWithCause("delivery", s.String(), next.String(),
			fmt.Errorf("order is still %s", orderStatus))
	}

	return next, nil
}
