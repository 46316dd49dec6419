package queries

import (
	"context"
	"database/sql"
	"errors"

	"ordering/internal/core/domain/model/order"
	"ordering/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetOrderQueryHandler retrieves single-order details from the database.
// Reads the order row and its lines directly, bypassing the domain aggregate.
type GetOrderQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderQueryHandler creates a handler for single-order queries.
// Requires a GORM database connection for query execution.
func NewGetOrderQueryHandler(db *gorm.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db}
}

// Handle executes the query for the requested order.
// Returns an ObjectNotFoundError when no order with the given number exists.
func (h GetOrderQueryHandler) Handle(
	ctx context.Context,
	query GetOrderQuery,
) (GetOrderQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderQueryResponse{}, err
	}

	var resp GetOrderQueryResponse
	var status int

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			order_no,
			status,
			receiver_name,
			receiver_phone,
			address_line1,
			address_line2,
			postal_code,
			total_amount
		FROM orders
		WHERE order_no = ?
	`, query.OrderNo().String()).Row()

	err := row.Scan(
		&resp.OrderNo,
		&status,
		&resp.ReceiverName,
		&resp.ReceiverPhone,
		&resp.AddressLine1,
		&resp.AddressLine2,
		&resp.PostalCode,
		&resp.TotalAmount,
	)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) || errors.Is(err, sql.ErrNoRows) {
			return GetOrderQueryResponse{}, errs.NewObjectNotFoundError("order", query.OrderNo().String())
		}
		return GetOrderQueryResponse{}, err
	}

	resp.Status = order.Status(status).String()

	lines, err := h.loadLines(ctx, resp.OrderNo)
	if err != nil {
		return GetOrderQueryResponse{}, err
	}
	resp.Lines = lines

	return resp, nil
}

func (h GetOrderQueryHandler) loadLines(
	ctx context.Context,
	orderNo string,
) ([]GetOrderQueryLineResponse, error) {
	lines := make([]GetOrderQueryLineResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			product_name,
			product_code,
			price,
			quantity,
			amount
		FROM order_lines
		WHERE order_no = ?
		ORDER BY id
	`, orderNo).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var line GetOrderQueryLineResponse
		if err = rows.Scan(
			&line.ProductName,
			&line.ProductCode,
			&line.Price,
			&line.Quantity,
			&line.Amount,
		); err != nil {
			return nil, err
		}

		lines = append(lines, line)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return lines, nil
}
