package queries

import (
	"context"

	"ordering/internal/core/domain/model/order"

	"gorm.io/gorm"
)

// GetUncompletedOrdersQueryHandler retrieves active orders from the database.
// Filters out delivered and cancelled orders to provide a view of the
// outstanding workload.
//
// Example:
//
//	handler := NewGetUncompletedOrdersQueryHandler(db)
//	query := NewGetUncompletedOrdersQuery()
//
//	activeOrders, err := handler.Handle(ctx, query)
//	if err != nil {
//	    log.Printf("Failed to get active orders: %v", err)
//	    return err
//	}
//
//	if len(activeOrders) > 0 {
//	    fmt.Printf("%d orders in flight\n", len(activeOrders))
//	}
type GetUncompletedOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetUncompletedOrdersQueryHandler creates a handler for active order queries.
// Requires a GORM database connection for query execution.
func NewGetUncompletedOrdersQueryHandler(db *gorm.DB) GetUncompletedOrdersQueryHandler {
	return GetUncompletedOrdersQueryHandler{db: db}
}

// Handle executes the query to retrieve all uncompleted orders.
// Returns orders in any status except the terminal ones (delivered, cancelled).
// Results are sorted by order number for consistent output.
func (h GetUncompletedOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetUncompletedOrdersQuery,
) ([]GetUncompletedOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders := make([]GetUncompletedOrdersQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			order_no,
			status,
			total_amount
		FROM orders
		WHERE status NOT IN (?, ?)
		ORDER BY order_no
	`, order.Delivered, order.Cancelled).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var orderResp GetUncompletedOrdersQueryResponse
		var status int

		if err = rows.Scan(
			&orderResp.OrderNo,
			&status,
			&orderResp.TotalAmount,
		); err != nil {
			return nil, err
		}

		orderResp.Status = order.Status(status).String()
		orders = append(orders, orderResp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
