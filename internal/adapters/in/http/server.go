// Package http exposes the admin dashboard API. It coordinates between HTTP
// handlers and application use cases; all domain rules live in the core.
package http

import (
	"errors"
	"net/http"

	"orderdesk/internal/core/application/querycache"
	"orderdesk/internal/core/application/usecases/commands"
	"orderdesk/internal/core/application/usecases/queries"
	"orderdesk/internal/core/domain/model/order"
	"orderdesk/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server implements the admin API handlers. It coordinates between HTTP
// requests and the command/query handlers of the core.
type Server struct {
	// Command handlers
	advanceDeliveryStatusHandler commands.AdvanceDeliveryStatusCommandHandler
	acceptOrderHandler           commands.AcceptOrderCommandHandler
	deleteOrderHandler           commands.DeleteOrderCommandHandler

	// Query handlers
	getOrdersHandler      queries.GetOrdersQueryHandler
	getOrderDetailHandler queries.GetOrderDetailQueryHandler
}

// NewServer creates an HTTP server with the required command and query handlers.
func NewServer(
	advanceDeliveryStatusHandler commands.AdvanceDeliveryStatusCommandHandler,
	acceptOrderHandler commands.AcceptOrderCommandHandler,
	deleteOrderHandler commands.DeleteOrderCommandHandler,
	getOrdersHandler queries.GetOrdersQueryHandler,
	getOrderDetailHandler queries.GetOrderDetailQueryHandler,
) *Server {
	return &Server{
		advanceDeliveryStatusHandler: advanceDeliveryStatusHandler,
		acceptOrderHandler:           acceptOrderHandler,
		deleteOrderHandler:           deleteOrderHandler,
		getOrdersHandler:             getOrdersHandler,
		getOrderDetailHandler:        getOrderDetailHandler,
	}
}

// RegisterRoutes attaches the admin API routes to e.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")
	api.GET("/orders", s.GetOrders)
	api.GET("/orders/:id", s.GetOrderDetail)
	api.PUT("/orders/:id/delivery-status", s.UpdateDeliveryStatus)
	api.PUT("/orders/:id/accept", s.AcceptOrder)
	api.DELETE("/orders/:id", s.DeleteOrder)
}

// GetOrders handles GET /api/v1/orders - retrieves an order collection.
//
// Query parameters:
//   - email: narrows the collection to one customer's orders
//   - view:  "delivery" applies the delivery-only projection; default "all"
func (s *Server) GetOrders(ctx echo.Context) error {
	key := querycache.AllOrders()
	if email := ctx.QueryParam("email"); email != "" {
		key = querycache.CustomerOrders(email)
	}

	view := ctx.QueryParam("view")
	if view != "" && view != "all" && view != "delivery" {
		return ctx.JSON(http.StatusBadRequest, apiError{
			Code:    http.StatusBadRequest,
			Message: "view must be \"all\" or \"delivery\"",
		})
	}

	query := queries.NewGetOrdersQuery(key, view == "delivery")
	response, err := s.getOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	orders := make([]orderResponse, len(response.Orders))
	for i, o := range response.Orders {
		orders[i] = toOrderResponse(o)
	}

	return ctx.JSON(http.StatusOK, ordersCollectionResponse{
		Orders:      orders,
		TotalOrders: response.TotalOrders,
		TotalAmount: response.TotalAmount,
		FetchedAt:   response.FetchedAt,
	})
}

// GetOrderDetail handles GET /api/v1/orders/:id - retrieves one order's detail.
func (s *Server) GetOrderDetail(ctx echo.Context) error {
	query, err := queries.NewGetOrderDetailQuery(ctx.Param("id"))
	if err != nil {
		return writeError(ctx, err)
	}

	response, err := s.getOrderDetailHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toOrderResponse(response.Order))
}

type updateDeliveryStatusRequest struct {
	DeliveryStatus string `json:"deliveryStatus"`
}

// UpdateDeliveryStatus handles PUT /api/v1/orders/:id/delivery-status -
// advances the order's delivery status.
func (s *Server) UpdateDeliveryStatus(ctx echo.Context) error {
	var body updateDeliveryStatusRequest
	if err := ctx.Bind(&body); err != nil {
		return ctx.JSON(http.StatusBadRequest, apiError{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	if body.DeliveryStatus == "" {
		return writeError(ctx, errs.NewValueIsRequiredError("deliveryStatus"))
	}

	cmd, err := commands.NewAdvanceDeliveryStatusCommand(ctx.Param("id"), order.DeliveryStatus(body.DeliveryStatus))
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.advanceDeliveryStatusHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// AcceptOrder handles PUT /api/v1/orders/:id/accept - marks the order accepted.
// Repeated accepts of the same order succeed without effect.
func (s *Server) AcceptOrder(ctx echo.Context) error {
	cmd, err := commands.NewAcceptOrderCommand(ctx.Param("id"))
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.acceptOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// DeleteOrder handles DELETE /api/v1/orders/:id - removes the order.
func (s *Server) DeleteOrder(ctx echo.Context) error {
	cmd, err := commands.NewDeleteOrderCommand(ctx.Param("id"))
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.deleteOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// writeError maps core errors to HTTP status codes. Local precondition
// failures and store rejections get distinct codes so the dashboard can tell
// "your request was wrong" from "the store is unreachable".
func writeError(ctx echo.Context, err error) error {
	var code int
	switch {
	case errors.Is(err, errs.ErrValueIsRequired), errors.Is(err, errs.ErrValueIsInvalid):
		code = http.StatusBadRequest
	case errors.Is(err, errs.ErrInvalidTransition):
		code = http.StatusConflict
	case errors.Is(err, errs.ErrObjectNotFound):
		code = http.StatusNotFound
	case errors.Is(err, errs.ErrUnauthorized):
		code = http.StatusUnauthorized
	case errors.Is(err, errs.ErrFetchFailed), errors.Is(err, errs.ErrTransitionFailed):
		code = http.StatusBadGateway
	default:
		code = http.StatusInternalServerError
	}

	return ctx.JSON(code, apiError{Code: code, Message: err.Error()})
}
