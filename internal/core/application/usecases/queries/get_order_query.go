// Package queries contains read-only operations in the CQRS architecture.
// Query handlers read the database directly and return plain response
// structures instead of rehydrating full domain aggregates.
package queries

import (
	"errors"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/pkg/guard"
)

var (
	ErrGetOrderQueryIsNotConstructed = errors.New(
		"GetOrderQuery must be created via NewGetOrderQuery constructor",
	)
)

// GetOrderQuery retrieves the full details of a single order.
//
// Example:
//
//	orderNo, _ := kernel.NewOrderNo("ORDER-0001")
//	query, _ := NewGetOrderQuery(orderNo)
//	handler := NewGetOrderQueryHandler(db)
//
//	details, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to get order: %w", err)
//	}
//	fmt.Printf("Order %s is %s\n", details.OrderNo, details.Status)
type GetOrderQuery struct { //nolint:recvcheck //using for validation
	orderNo kernel.OrderNo

	guard guard.ConstructorGuard
}

// NewGetOrderQuery creates a query for the order with the given number.
// Returns an error if the order number is not valid.
func NewGetOrderQuery(orderNo kernel.OrderNo) (GetOrderQuery, error) {
	query := GetOrderQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := query.setOrderNo(orderNo); err != nil {
		return GetOrderQuery{}, err
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetOrderQueryIsNotConstructed if validation fails.
func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

// OrderNo returns the number of the requested order.
func (q GetOrderQuery) OrderNo() kernel.OrderNo {
	return q.orderNo
}

func (q *GetOrderQuery) setOrderNo(orderNo kernel.OrderNo) error {
	if err := orderNo.Validate(); err != nil {
		return err
	}

	q.orderNo = orderNo
	return nil
}

// GetOrderQueryResponse is the read model of a single order, flattened for
// presentation: shipping fields inline, status as its display name.
type GetOrderQueryResponse struct {
	OrderNo       string
	Status        string
	ReceiverName  string
	ReceiverPhone string
	AddressLine1  string
	AddressLine2  string
	PostalCode    string
	TotalAmount   int64
	Lines         []GetOrderQueryLineResponse
}

// GetOrderQueryLineResponse is a single purchased line within the order read model.
type GetOrderQueryLineResponse struct {
	ProductName string
	ProductCode string
	Price       int64
	Quantity    int
	Amount      int64
}
