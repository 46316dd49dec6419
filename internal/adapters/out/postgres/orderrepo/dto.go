// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"
	"ordering/internal/core/domain/model/product"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Maps order domain entities to relational database tables with an index on
// status for the fulfillment batch queries.
type OrderDTO struct {
	OrderNo       string         `gorm:"type:varchar(64);primaryKey"`
	Status        int            `gorm:"type:int;not null;index"`
	ReceiverName  string         `gorm:"type:varchar(255);not null"`
	ReceiverPhone string         `gorm:"type:varchar(64);not null"`
	AddressLine1  string         `gorm:"type:varchar(255);not null"`
	AddressLine2  string         `gorm:"type:varchar(255)"`
	PostalCode    string         `gorm:"type:varchar(32);not null"`
	TotalAmount   int64          `gorm:"type:bigint;not null"`
	Lines         []OrderLineDTO `gorm:"foreignKey:OrderNo;references:OrderNo;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for order entities.
// Overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// OrderLineDTO represents the database structure for persisting order lines.
// Links to its order via the order number foreign key.
type OrderLineDTO struct {
	ID          uint   `gorm:"primaryKey;autoIncrement"`
	OrderNo     string `gorm:"type:varchar(64);not null;index"`
	ProductName string `gorm:"type:varchar(255);not null"`
	ProductCode string `gorm:"type:varchar(64);not null"`
	Price       int64  `gorm:"type:bigint;not null"`
	Quantity    int    `gorm:"type:int;not null"`
	Amount      int64  `gorm:"type:bigint;not null"`
}

// TableName specifies the database table name for order line entities.
// Overrides GORM's default naming convention to use "order_lines".
func (OrderLineDTO) TableName() string {
	return "order_lines"
}

// fromDomain converts an order domain aggregate to its database representation.
// Maps the flattened shipping fields and every purchased line.
func fromDomain(aggregate *order.Order) OrderDTO {
	orderNo := aggregate.OrderNo().String()
	shippingInfo := aggregate.ShippingInfo()
	address := shippingInfo.Address()

	lines := make([]OrderLineDTO, 0, len(aggregate.Lines()))
	for _, line := range aggregate.Lines() {
		lines = append(lines, OrderLineDTO{
			OrderNo:     orderNo,
			ProductName: line.Product().Name(),
			ProductCode: line.Product().Code(),
			Price:       line.Price().Amount(),
			Quantity:    line.Quantity(),
			Amount:      line.Amount().Amount(),
		})
	}

	return OrderDTO{
		OrderNo:       orderNo,
		Status:        int(aggregate.Status()),
		ReceiverName:  shippingInfo.ReceiverName(),
		ReceiverPhone: shippingInfo.ReceiverPhone(),
		AddressLine1:  address.Line1(),
		AddressLine2:  address.Line2(),
		PostalCode:    address.PostalCode(),
		TotalAmount:   aggregate.TotalAmount().Amount(),
		Lines:         lines,
	}
}

// toDomain converts a database DTO to an order domain aggregate.
// Reconstructs the complete aggregate including lines and status using RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	orderNo, err := kernel.NewOrderNo(dto.OrderNo)
	if err != nil {
		return nil, err
	}

	lines := make([]order.OrderLine, 0, len(dto.Lines))
	for _, lineDto := range dto.Lines {
		line, lineErr := lineToDomain(lineDto)
		if lineErr != nil {
			return nil, lineErr
		}
		lines = append(lines, line)
	}

	address, err := order.NewAddress(dto.AddressLine1, dto.AddressLine2, dto.PostalCode)
	if err != nil {
		return nil, err
	}

	shippingInfo, err := order.NewShippingInfo(dto.ReceiverName, dto.ReceiverPhone, address)
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(orderNo, lines, shippingInfo, order.Status(dto.Status))
}

// lineToDomain converts an order line DTO to a domain value.
// Rebuilds the line through its constructor so persisted rows satisfy the
// same rules as fresh ones.
func lineToDomain(dto OrderLineDTO) (order.OrderLine, error) {
	lineProduct, err := product.NewProduct(dto.ProductName, dto.ProductCode)
	if err != nil {
		return order.OrderLine{}, err
	}

	return order.NewOrderLine(lineProduct, kernel.NewMoney(dto.Price), dto.Quantity)
}
