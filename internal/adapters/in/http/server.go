// Package http exposes the ordering use cases over a REST API built on echo.
package http

import (
	"errors"
	"net/http"

	"ordering/internal/core/application/usecases/commands"
	"ordering/internal/core/application/usecases/queries"
	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	placeOrderHandler         commands.PlaceOrderCommandHandler
	cancelOrderHandler        commands.CancelOrderCommandHandler
	changeShippingInfoHandler commands.ChangeShippingInfoCommandHandler
	confirmPaymentHandler     commands.ConfirmPaymentCommandHandler
	registerMemberHandler     commands.RegisterMemberCommandHandler

	// Query handlers
	getOrderHandler             queries.GetOrderQueryHandler
	getUncompletedOrdersHandler queries.GetUncompletedOrdersQueryHandler
	getPaymentAmountHandler     queries.GetPaymentAmountQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	placeOrderHandler commands.PlaceOrderCommandHandler,
	cancelOrderHandler commands.CancelOrderCommandHandler,
	changeShippingInfoHandler commands.ChangeShippingInfoCommandHandler,
	confirmPaymentHandler commands.ConfirmPaymentCommandHandler,
	registerMemberHandler commands.RegisterMemberCommandHandler,
	getOrderHandler queries.GetOrderQueryHandler,
	getUncompletedOrdersHandler queries.GetUncompletedOrdersQueryHandler,
	getPaymentAmountHandler queries.GetPaymentAmountQueryHandler,
) *Server {
	return &Server{
		placeOrderHandler:           placeOrderHandler,
		cancelOrderHandler:          cancelOrderHandler,
		changeShippingInfoHandler:   changeShippingInfoHandler,
		confirmPaymentHandler:       confirmPaymentHandler,
		registerMemberHandler:       registerMemberHandler,
		getOrderHandler:             getOrderHandler,
		getUncompletedOrdersHandler: getUncompletedOrdersHandler,
		getPaymentAmountHandler:     getPaymentAmountHandler,
	}
}

// RegisterRoutes attaches every API route to the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	api.POST("/orders", s.PlaceOrder)
	api.GET("/orders", s.GetOrders)
	api.GET("/orders/:orderNo", s.GetOrder)
	api.POST("/orders/:orderNo/cancel", s.CancelOrder)
	api.PUT("/orders/:orderNo/shipping", s.ChangeShippingInfo)
	api.POST("/orders/:orderNo/payment", s.ConfirmPayment)
	api.GET("/orders/:orderNo/payment-amount", s.GetPaymentAmount)
	api.POST("/members", s.RegisterMember)
}

// PlaceOrder handles POST /api/v1/orders - places a new order.
func (s *Server) PlaceOrder(ctx echo.Context) error {
	var req PlaceOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	products := make([]commands.OrderProduct, 0, len(req.Products))
	for _, p := range req.Products {
		products = append(products, commands.OrderProduct{
			Name:     p.Name,
			Code:     p.Code,
			Price:    p.Price,
			Quantity: p.Quantity,
		})
	}

	orderNo := kernel.GenerateOrderNo()
	cmd, err := commands.NewPlaceOrderCommand(
		orderNo,
		products,
		req.Shipping.ReceiverName,
		req.Shipping.ReceiverPhone,
		req.Shipping.AddressLine1,
		req.Shipping.AddressLine2,
		req.Shipping.PostalCode,
	)
	if err != nil {
		return badRequest(ctx, "Invalid order data: "+err.Error())
	}

	if err = s.placeOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, PlaceOrderResponse{OrderNo: orderNo.String()})
}

// CancelOrder handles POST /api/v1/orders/:orderNo/cancel.
func (s *Server) CancelOrder(ctx echo.Context) error {
	orderNo, err := kernel.NewOrderNo(ctx.Param("orderNo"))
	if err != nil {
		return badRequest(ctx, "Invalid order number")
	}

	cmd, err := commands.NewCancelOrderCommand(orderNo)
	if err != nil {
		return badRequest(ctx, "Invalid cancellation request: "+err.Error())
	}

	if err = s.cancelOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ChangeShippingInfo handles PUT /api/v1/orders/:orderNo/shipping.
func (s *Server) ChangeShippingInfo(ctx echo.Context) error {
	orderNo, err := kernel.NewOrderNo(ctx.Param("orderNo"))
	if err != nil {
		return badRequest(ctx, "Invalid order number")
	}

	var req ShippingRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewChangeShippingInfoCommand(
		orderNo,
		req.ReceiverName,
		req.ReceiverPhone,
		req.AddressLine1,
		req.AddressLine2,
		req.PostalCode,
	)
	if err != nil {
		return badRequest(ctx, "Invalid shipping data: "+err.Error())
	}

	if err = s.changeShippingInfoHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ConfirmPayment handles POST /api/v1/orders/:orderNo/payment.
func (s *Server) ConfirmPayment(ctx echo.Context) error {
	orderNo, err := kernel.NewOrderNo(ctx.Param("orderNo"))
	if err != nil {
		return badRequest(ctx, "Invalid order number")
	}

	cmd, err := commands.NewConfirmPaymentCommand(orderNo)
	if err != nil {
		return badRequest(ctx, "Invalid payment confirmation: "+err.Error())
	}

	if err = s.confirmPaymentHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// RegisterMember handles POST /api/v1/members - registers a new member.
func (s *Server) RegisterMember(ctx echo.Context) error {
	var req RegisterMemberRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd := commands.NewRegisterMemberCommand(req.ID, req.Name, req.Password)

	if err := s.registerMemberHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.NoContent(http.StatusCreated)
}

// GetOrder handles GET /api/v1/orders/:orderNo - retrieves one order.
func (s *Server) GetOrder(ctx echo.Context) error {
	orderNo, err := kernel.NewOrderNo(ctx.Param("orderNo"))
	if err != nil {
		return badRequest(ctx, "Invalid order number")
	}

	query, err := queries.NewGetOrderQuery(orderNo)
	if err != nil {
		return badRequest(ctx, "Invalid order request: "+err.Error())
	}

	details, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, err)
	}

	lines := make([]OrderLineResponse, 0, len(details.Lines))
	for _, line := range details.Lines {
		lines = append(lines, OrderLineResponse{
			ProductName: line.ProductName,
			ProductCode: line.ProductCode,
			Price:       line.Price,
			Quantity:    line.Quantity,
			Amount:      line.Amount,
		})
	}

	return ctx.JSON(http.StatusOK, OrderResponse{
		OrderNo: details.OrderNo,
		Status:  details.Status,
		Shipping: ShippingRequest{
			ReceiverName:  details.ReceiverName,
			ReceiverPhone: details.ReceiverPhone,
			AddressLine1:  details.AddressLine1,
			AddressLine2:  details.AddressLine2,
			PostalCode:    details.PostalCode,
		},
		TotalAmount: details.TotalAmount,
		Lines:       lines,
	})
}

// GetOrders handles GET /api/v1/orders - retrieves all uncompleted orders.
func (s *Server) GetOrders(ctx echo.Context) error {
	query := queries.NewGetUncompletedOrdersQuery()

	orders, err := s.getUncompletedOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, err)
	}

	response := make([]OrderSummaryResponse, len(orders))
	for i, o := range orders {
		response[i] = OrderSummaryResponse{
			OrderNo:     o.OrderNo,
			Status:      o.Status,
			TotalAmount: o.TotalAmount,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetPaymentAmount handles GET /api/v1/orders/:orderNo/payment-amount.
// The buyer is identified by the userId and grade query parameters.
func (s *Server) GetPaymentAmount(ctx echo.Context) error {
	orderNo, err := kernel.NewOrderNo(ctx.Param("orderNo"))
	if err != nil {
		return badRequest(ctx, "Invalid order number")
	}

	query, err := queries.NewGetPaymentAmountQuery(
		orderNo, ctx.QueryParam("userId"), ctx.QueryParam("grade"))
	if err != nil {
		return badRequest(ctx, "Invalid payment query: "+err.Error())
	}

	payment, err := s.getPaymentAmountHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, PaymentAmountResponse{
		OrderNo:       payment.OrderNo,
		TotalAmount:   payment.TotalAmount,
		PayableAmount: payment.PayableAmount,
	})
}

// badRequest writes a 400 response with the given message.
func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, ErrorResponse{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

// errorResponse maps application errors onto HTTP status codes:
// missing objects to 404, rejected state transitions to 409, validation
// failures to 400 with the collected violations, everything else to 500.
func errorResponse(ctx echo.Context, err error) error {
	var validationErrs *errs.ValidationErrors
	if errors.As(err, &validationErrs) {
		violations := make([]ViolationResponse, 0, len(validationErrs.Violations))
		for _, v := range validationErrs.Violations {
			violations = append(violations, ViolationResponse{Message: v.Message, Type: v.Type})
		}
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:       http.StatusBadRequest,
			Message:    "Validation failed",
			Violations: violations,
		})
	}

	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return ctx.JSON(http.StatusNotFound, ErrorResponse{
			Code:    http.StatusNotFound,
			Message: err.Error(),
		})
	case errors.Is(err, errs.ErrIllegalState):
		return ctx.JSON(http.StatusConflict, ErrorResponse{
			Code:    http.StatusConflict,
			Message: err.Error(),
		})
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: err.Error(),
		})
	default:
		return ctx.JSON(http.StatusInternalServerError, ErrorResponse{
			Code:    http.StatusInternalServerError,
			Message: "Internal server error",
		})
	}
}
