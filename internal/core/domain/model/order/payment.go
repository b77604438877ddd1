package order

import (
	"fmt"

	"farmmarket/internal/pkg/errs"
)

// PaymentMethod identifies how the buyer settles an order.
type PaymentMethod int

const (
	// PaymentMethodUnknown represents an invalid or undefined method.
	PaymentMethodUnknown PaymentMethod = iota

	// PaymentMethodLiskZAR settles through the on-chain stablecoin contract.
	PaymentMethodLiskZAR

	// PaymentMethodCash settles in cash on delivery.
	PaymentMethodCash
)

func getPaymentMethodStrings() map[PaymentMethod]string {
	return map[PaymentMethod]string{
		PaymentMethodLiskZAR: "lisk_zar",
		PaymentMethodCash:    "cash",
	}
}

// PaymentMethodFromString parses the storage/wire name of a payment method.
func PaymentMethodFromString(s string) (PaymentMethod, error) {
	for method, name := range getPaymentMethodStrings() {
		if name == s {
			return method, nil
		}
	}
	return PaymentMethodUnknown, errs.NewValueIsInvalidErrorWithCause("payment method",
		fmt.Errorf("%q is not a valid payment method", s))
}

// Validate checks if the PaymentMethod value is valid.
func (m PaymentMethod) Validate() error {
	if _, ok := getPaymentMethodStrings()[m]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("payment method",
			fmt.Errorf("%d is not a valid payment method", m))
	}
	return nil
}

// String returns the storage/wire name of the method. Implements fmt.Stringer.
func (m PaymentMethod) String() string {
	if str, ok := getPaymentMethodStrings()[m]; ok {
		return str
	}
	return "unknown"
}

// PaymentStatus tracks settlement separately from the order lifecycle.
// It is mutated by payment callbacks only; the order state machine never
// derives it and never mutates it.
type PaymentStatus int

const (
	// PaymentStatusUnknown represents an invalid or undefined status.
	PaymentStatusUnknown PaymentStatus = iota

	// PaymentStatusPending means settlement has not been reported yet.
	PaymentStatusPending

	// PaymentStatusPaid means the settlement callback reported success.
	PaymentStatusPaid

	// PaymentStatusFailed means the settlement callback reported failure.
	PaymentStatusFailed
)

func getPaymentStatusStrings() map[PaymentStatus]string {
	return map[PaymentStatus]string{
		PaymentStatusPending: "pending",
		PaymentStatusPaid:    "paid",
		PaymentStatusFailed:  "failed",
	}
}

// PaymentStatusFromString parses the storage/wire name of a payment status.
func PaymentStatusFromString(s string) (PaymentStatus, error) {
	for status, name := range getPaymentStatusStrings() {
		if name == s {
			return status, nil
		}
	}
	return PaymentStatusUnknown, errs.NewValueIsInvalidErrorWithCause("payment status",
		fmt.Errorf("%q is not a valid payment status", s))
}

// Validate checks if the PaymentStatus value is valid.
func (s PaymentStatus) Validate() error {
	if _, ok := getPaymentStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("payment status",
			fmt.Errorf("%d is not a valid payment status", s))
	}
	return nil
}

// String returns the storage/wire name of the status. Implements fmt.Stringer.
func (s PaymentStatus) String() string {
	if str, ok := getPaymentStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}
