package queries

import (
	"errors"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/pkg/guard"
)

var (
	ErrGetPaymentAmountQueryIsNotConstructed = errors.New(
		"GetPaymentAmountQuery must be created via NewGetPaymentAmountQuery constructor",
	)
	ErrUserIDIsRequired = errors.New("user id is required")
	ErrGradeIsRequired  = errors.New("grade is required")
)

// GetPaymentAmountQuery computes the payable amount for an order after
// applying the buyer's discounts. Grade and purchase history of the buyer
// feed the discount calculation.
//
// Example:
//
//	orderNo, _ := kernel.NewOrderNo("ORDER-0001")
//	query, _ := NewGetPaymentAmountQuery(orderNo, "alice", "VIP")
//	handler := NewGetPaymentAmountQueryHandler(db, discountService)
//
//	payment, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to compute payment: %w", err)
//	}
//	fmt.Printf("Pay %d (list price %d)\n", payment.PayableAmount, payment.TotalAmount)
type GetPaymentAmountQuery struct { //nolint:recvcheck //using for validation
	orderNo kernel.OrderNo
	userID  string
	grade   string

	guard guard.ConstructorGuard
}

// NewGetPaymentAmountQuery creates a query computing the payable amount of
// the given order for the given buyer. Validates the order number and that
// the buyer's id and grade are present.
func NewGetPaymentAmountQuery(orderNo kernel.OrderNo, userID string, grade string) (GetPaymentAmountQuery, error) {
	query := GetPaymentAmountQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		query.setOrderNo(orderNo),
		query.setUserID(userID),
		query.setGrade(grade),
	); err != nil {
		return GetPaymentAmountQuery{}, err
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetPaymentAmountQueryIsNotConstructed if validation fails.
func (q GetPaymentAmountQuery) Validate() error {
	return q.guard.Validate(ErrGetPaymentAmountQueryIsNotConstructed)
}

// OrderNo returns the number of the order being paid.
func (q GetPaymentAmountQuery) OrderNo() kernel.OrderNo {
	return q.orderNo
}

// UserID returns the id of the paying buyer.
func (q GetPaymentAmountQuery) UserID() string {
	return q.userID
}

// Grade returns the membership grade of the paying buyer.
func (q GetPaymentAmountQuery) Grade() string {
	return q.grade
}

func (q *GetPaymentAmountQuery) setOrderNo(orderNo kernel.OrderNo) error {
	if err := orderNo.Validate(); err != nil {
		return err
	}

	q.orderNo = orderNo
	return nil
}

func (q *GetPaymentAmountQuery) setUserID(userID string) error {
	if userID == "" {
		return ErrUserIDIsRequired
	}

	q.userID = userID
	return nil
}

func (q *GetPaymentAmountQuery) setGrade(grade string) error {
	if grade == "" {
		return ErrGradeIsRequired
	}

	q.grade = grade
	return nil
}

// GetPaymentAmountQueryResponse reports the list total of an order and the
// amount actually payable after discounts.
type GetPaymentAmountQueryResponse struct {
	OrderNo       string
	TotalAmount   int64
	PayableAmount int64
}
