package order

import (
	"fmt"

	"ordering/internal/pkg/errs"
)

// Status represents the lifecycle state of an order. It implements a state
// machine with defined transitions to ensure orders follow the fulfillment
// workflow.
//
// State transitions:
//
//	PaymentWaiting ──> Preparing ──> Shipped ──> Delivered
//	       │               │
//	       └───────┬───────┘
//	               v
//	           Cancelled
//
// Shipping info may only change while the order is in the changeable set
// (PaymentWaiting, Preparing); cancellation is allowed from the same set.
// Cancelled and Delivered are terminal.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// PaymentWaiting is the initial status of a freshly placed order.
	PaymentWaiting

	// Preparing indicates payment is confirmed and fulfillment has started.
	Preparing

	// Shipped indicates the order has left the warehouse.
	Shipped

	// Delivered indicates the order reached its destination. Terminal.
	Delivered

	// Cancelled indicates the order was cancelled before shipment. Terminal.
	Cancelled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:        "Unknown",
		PaymentWaiting: "PaymentWaiting",
		Preparing:      "Preparing",
		Shipped:        "Shipped",
		Delivered:      "Delivered",
		Cancelled:      "Cancelled",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		PaymentWaiting: "PaymentWaiting",
		Preparing:      "Preparing",
		Shipped:        "Shipped",
		Delivered:      "Delivered",
		Cancelled:      "Cancelled",
	}
}

// Validate checks if the Status value is valid.
// Unknown (0) and any out-of-range values are invalid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the human-readable name of the status.
// Implements the fmt.Stringer interface and is safe to call on any Status
// value, including invalid ones.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// IsShippingChangeable reports whether the order's shipping info may still be
// replaced. Only PaymentWaiting and Preparing belong to the changeable set;
// from Shipped onward (and once Cancelled) the shipping record is frozen.
func (s Status) IsShippingChangeable() bool {
	return s == PaymentWaiting || s == Preparing
}

// Cancel transitions the status to Cancelled.
//
// Valid transitions:
//   - PaymentWaiting -> Cancelled
//   - Preparing -> Cancelled
//
// Any other source state fails with an illegal-state error carrying the
// current state. Cancelled is terminal.
func (s Status) Cancel() (Status, error) {
	if !s.IsShippingChangeable() {
		return 0, errs.NewIllegalStateError("cancel", s.String())
	}

	return Cancelled, nil
}

// Prepare transitions the status to Preparing.
// Only valid from PaymentWaiting, after payment is confirmed.
func (s Status) Prepare() (Status, error) {
	if s != PaymentWaiting {
		return 0, errs.NewIllegalStateError("start preparing", s.String())
	}

	return Preparing, nil
}

// Ship transitions the status to Shipped.
// Only valid from Preparing.
func (s Status) Ship() (Status, error) {
	if s != Preparing {
		return 0, errs.NewIllegalStateError("ship", s.String())
	}

	return Shipped, nil
}

// Deliver transitions the status to Delivered.
// Only valid from Shipped. Delivered is terminal.
func (s Status) Deliver() (Status, error) {
	if s != Shipped {
		return 0, errs.NewIllegalStateError("deliver", s.String())
	}

	return Delivered, nil
}
