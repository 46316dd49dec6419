package order

import (
	"errors"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/pkg/errs"
	"ordering/internal/pkg/guard"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created
	// through the NewOrder or RestoreOrder factory methods.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder constructors")

	// ErrOrderLinesAreRequired is returned when constructing an order with no
	// line items.
	ErrOrderLinesAreRequired = errs.NewValueIsRequiredErrorWithCause(
		"orderLines", errors.New("no products to purchase"))

	// ErrShippingInfoIsRequired is returned when constructing an order without
	// shipping information.
	ErrShippingInfoIsRequired = errs.NewValueIsRequiredErrorWithCause(
		"shippingInfo", errors.New("missing shipping information"))
)

// Order is the aggregate root of the purchase-order consistency boundary.
// It owns an ordered list of order lines, the current shipping info, a
// lifecycle status, and a derived total, and it is the only path through
// which any of them may change.
//
// Invariants:
//   - an order holds at least one order line
//   - shipping info is always present and valid
//   - totalAmount equals the sum of all line amounts and is recomputed
//     whenever the line list is established
//   - every line's product passed the orderability check at construction
//   - status transitions follow the lifecycle state machine; shipping info
//     may only be replaced, and the order cancelled, before shipment
//
// Identity is the order number: two Order instances with equal order numbers
// are the same logical order even when their in-memory snapshots differ.
//
// The aggregate is a single-threaded consistency boundary. It performs no
// I/O and never blocks; callers sharing one instance across goroutines must
// serialize access to the mutating operations.
type Order struct {
	// orderNo is the identity of the order
	orderNo kernel.OrderNo

	// status is the current lifecycle state
	status Status

	// shippingInfo is the current destination record, replaced wholesale
	shippingInfo ShippingInfo

	// lines is the ordered list of line items, owned exclusively
	lines []OrderLine

	// totalAmount is derived from the lines, never set independently
	totalAmount kernel.Money

	// guard ensures the order was created via a constructor
	guard guard.ConstructorGuard
}

// NewOrder creates a freshly placed Order in PaymentWaiting status.
//
// Validation is fail-fast: an empty line list, missing shipping info, or any
// invalid line aborts construction, and no partially built Order escapes.
// The total amount is computed here as the sum of all line amounts.
func NewOrder(orderNo kernel.OrderNo, lines []OrderLine, shippingInfo ShippingInfo) (*Order, error) {
	o := &Order{
		status: PaymentWaiting,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		o.setOrderNo(orderNo),
		o.setShippingInfo(shippingInfo),
		o.setOrderLines(lines),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOrder reconstructs an Order from persistence with an explicit
// lifecycle status. The restored order enforces the same invariants as a new
// one and behaves identically afterwards.
func RestoreOrder(orderNo kernel.OrderNo, lines []OrderLine, shippingInfo ShippingInfo, status Status) (*Order, error) {
	o := &Order{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		o.setOrderNo(orderNo),
		o.setShippingInfo(shippingInfo),
		o.setOrderLines(lines),
		o.setStatus(status),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// Validate ensures the Order instance was properly constructed.
// Returns ErrOrderIsNotConstructed for nil or literal-constructed instances.
func (o *Order) Validate() error {
	if o == nil {
		return ErrOrderIsNotConstructed
	}
	return o.guard.Validate(ErrOrderIsNotConstructed)
}

// IsEqual compares two orders by order number only. Orders with the same
// order number are the same domain entity regardless of differing lines,
// status, or shipping info.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.orderNo.IsEqual(other.orderNo)
}

// OrderNo returns the order's identity.
func (o *Order) OrderNo() kernel.OrderNo {
	return o.orderNo
}

// Status returns the current lifecycle status.
func (o *Order) Status() Status {
	return o.status
}

// ShippingInfo returns the current destination record.
func (o *Order) ShippingInfo() ShippingInfo {
	return o.shippingInfo
}

// Lines returns a copy of the order's line items. The aggregate keeps
// exclusive ownership of the underlying slice.
func (o *Order) Lines() []OrderLine {
	lines := make([]OrderLine, len(o.lines))
	copy(lines, o.lines)
	return lines
}

// TotalAmount returns the derived sum of all line amounts.
func (o *Order) TotalAmount() kernel.Money {
	return o.totalAmount
}

// Cancel cancels the order.
//
// Cancellation is allowed only before shipment (PaymentWaiting or Preparing).
// From any other state it fails with an illegal-state error carrying the
// current status, and the order is left unchanged. Cancelled is terminal.
func (o *Order) Cancel() error {
	if err := o.Validate(); err != nil {
		return err
	}

	newStatus, err := o.status.Cancel()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// ChangeShippingInfo replaces the entire shipping record with newInfo.
//
// The change is allowed only before shipment (PaymentWaiting or Preparing);
// otherwise it fails with an illegal-state error and the existing shipping
// info is left untouched. There is no partial field update.
func (o *Order) ChangeShippingInfo(newInfo ShippingInfo) error {
	if err := o.Validate(); err != nil {
		return err
	}

	if !o.status.IsShippingChangeable() {
		return errs.NewIllegalStateError("change shipping info", o.status.String())
	}

	return o.setShippingInfo(newInfo)
}

// StartPreparing moves the order from PaymentWaiting to Preparing,
// typically after payment confirmation.
func (o *Order) StartPreparing() error {
	if err := o.Validate(); err != nil {
		return err
	}

	newStatus, err := o.status.Prepare()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// Ship moves the order from Preparing to Shipped. After shipment neither
// cancellation nor shipping changes are possible.
func (o *Order) Ship() error {
	if err := o.Validate(); err != nil {
		return err
	}

	newStatus, err := o.status.Ship()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// CompleteDelivery moves the order from Shipped to Delivered, the final
// state of a fulfilled order.
func (o *Order) CompleteDelivery() error {
	if err := o.Validate(); err != nil {
		return err
	}

	newStatus, err := o.status.Deliver()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

func (o *Order) setOrderNo(orderNo kernel.OrderNo) error {
	if err := orderNo.Validate(); err != nil {
		return err
	}
	o.orderNo = orderNo
	return nil
}

func (o *Order) setShippingInfo(shippingInfo ShippingInfo) error {
	if err := shippingInfo.Validate(); err != nil {
		return ErrShippingInfoIsRequired
	}
	o.shippingInfo = shippingInfo
	return nil
}

// setOrderLines establishes the line list and recomputes the total.
// The slice is copied; the aggregate owns its lines exclusively.
func (o *Order) setOrderLines(lines []OrderLine) error {
	if len(lines) == 0 {
		return ErrOrderLinesAreRequired
	}

	owned := make([]OrderLine, len(lines))
	for i, line := range lines {
		if err := line.Validate(); err != nil {
			return err
		}
		owned[i] = line
	}

	o.lines = owned
	return o.calculateTotalAmount()
}

func (o *Order) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.status = status
	return nil
}

func (o *Order) calculateTotalAmount() error {
	total := kernel.NewMoney(0)
	for _, line := range o.lines {
		sum, err := total.Add(line.Amount())
		if err != nil {
			return err
		}
		total = sum
	}

	o.totalAmount = total
	return nil
}
