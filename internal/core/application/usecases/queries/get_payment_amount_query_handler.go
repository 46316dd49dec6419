package queries

import (
	"context"
	"database/sql"
	"errors"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/services"
	"ordering/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetPaymentAmountQueryHandler computes the payable amount for an order.
// Reads the order total from the database and runs the discount service
// for the requesting buyer.
type GetPaymentAmountQueryHandler struct {
	db              *gorm.DB
	discountService services.CalculateDiscountService
}

// NewGetPaymentAmountQueryHandler creates a handler for payment amount queries.
// Requires a GORM database connection and the discount calculation service.
func NewGetPaymentAmountQueryHandler(
	db *gorm.DB,
	discountService services.CalculateDiscountService,
) GetPaymentAmountQueryHandler {
	return GetPaymentAmountQueryHandler{
		db:              db,
		discountService: discountService,
	}
}

// Handle executes the payment amount query.
// Returns the order's list total alongside the discounted payable amount.
// Returns an ObjectNotFoundError when no order with the given number exists.
func (h GetPaymentAmountQueryHandler) Handle(
	ctx context.Context,
	query GetPaymentAmountQuery,
) (GetPaymentAmountQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetPaymentAmountQueryResponse{}, err
	}

	var totalAmount int64

	row := h.db.WithContext(ctx).Raw(`
		SELECT total_amount
		FROM orders
		WHERE order_no = ?
	`, query.OrderNo().String()).Row()

	if err := row.Scan(&totalAmount); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) || errors.Is(err, sql.ErrNoRows) {
			return GetPaymentAmountQueryResponse{},
				errs.NewObjectNotFoundError("order", query.OrderNo().String())
		}
		return GetPaymentAmountQueryResponse{}, err
	}

	payable, err := h.discountService.CalculateDiscount(
		kernel.NewMoney(totalAmount), query.UserID(), query.Grade())
	if err != nil {
		return GetPaymentAmountQueryResponse{}, err
	}

	return GetPaymentAmountQueryResponse{
		OrderNo:       query.OrderNo().String(),
		TotalAmount:   totalAmount,
		PayableAmount: payable.Amount(),
	}, nil
}
