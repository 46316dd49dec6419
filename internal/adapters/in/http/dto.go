package http

// Request and response bodies of the HTTP API. Kept separate from the
// application read models so the wire format can evolve independently.

// ErrorResponse is the uniform error body returned by every handler.
// Violations is populated only for aggregated field validation failures.
type ErrorResponse struct {
	Code       int                 `json:"code"`
	Message    string              `json:"message"`
	Violations []ViolationResponse `json:"violations,omitempty"`
}

// ViolationResponse is a single field-level validation failure.
type ViolationResponse struct {
	Message string `json:"message"`
	Type    string `json:"type"`
}

// OrderProductRequest is one purchased product within a new order.
type OrderProductRequest struct {
	Name     string `json:"name"`
	Code     string `json:"code"`
	Price    int64  `json:"price"`
	Quantity int    `json:"quantity"`
}

// ShippingRequest carries the receiver and destination of a shipment.
type ShippingRequest struct {
	ReceiverName  string `json:"receiverName"`
	ReceiverPhone string `json:"receiverPhone"`
	AddressLine1  string `json:"addressLine1"`
	AddressLine2  string `json:"addressLine2,omitempty"`
	PostalCode    string `json:"postalCode"`
}

// PlaceOrderRequest is the body of POST /api/v1/orders.
type PlaceOrderRequest struct {
	Products []OrderProductRequest `json:"products"`
	Shipping ShippingRequest       `json:"shipping"`
}

// PlaceOrderResponse returns the number assigned to a freshly placed order.
type PlaceOrderResponse struct {
	OrderNo string `json:"orderNo"`
}

// RegisterMemberRequest is the body of POST /api/v1/members.
type RegisterMemberRequest struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Password string `json:"password"`
}

// OrderLineResponse is one purchased line in an order detail response.
type OrderLineResponse struct {
	ProductName string `json:"productName"`
	ProductCode string `json:"productCode"`
	Price       int64  `json:"price"`
	Quantity    int    `json:"quantity"`
	Amount      int64  `json:"amount"`
}

// OrderResponse is the full detail body of GET /api/v1/orders/:orderNo.
type OrderResponse struct {
	OrderNo     string              `json:"orderNo"`
	Status      string              `json:"status"`
	Shipping    ShippingRequest     `json:"shipping"`
	TotalAmount int64               `json:"totalAmount"`
	Lines       []OrderLineResponse `json:"lines"`
}

// OrderSummaryResponse is one element of the active order listing.
type OrderSummaryResponse struct {
	OrderNo     string `json:"orderNo"`
	Status      string `json:"status"`
	TotalAmount int64  `json:"totalAmount"`
}

// PaymentAmountResponse reports the discounted amount payable for an order.
type PaymentAmountResponse struct {
	OrderNo       string `json:"orderNo"`
	TotalAmount   int64  `json:"totalAmount"`
	PayableAmount int64  `json:"payableAmount"`
}
