package queries

import (
	"errors"

	"orderdesk/internal/core/domain/model/order"
	"orderdesk/internal/pkg/errs"
	"orderdesk/internal/pkg/guard"
)

var ErrGetOrderDetailQueryIsNotConstructed = errors.New(
	"GetOrderDetailQuery must be created via NewGetOrderDetailQuery constructor",
)

// GetOrderDetailQuery retrieves one order's full detail (customer, line
// items, delivery info with geocoordinate) for the detail view. Detail is
// fetched on demand while the view is open, never pre-fetched.
type GetOrderDetailQuery struct {
	orderID string
	guard   guard.ConstructorGuard
}

// NewGetOrderDetailQuery creates a detail query for orderID.
func NewGetOrderDetailQuery(orderID string) (GetOrderDetailQuery, error) {
	if orderID == "" {
		return GetOrderDetailQuery{}, errs.NewValueIsRequiredError("orderID")
	}

	return GetOrderDetailQuery{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// OrderID returns the identifier of the order to inspect.
func (q GetOrderDetailQuery) OrderID() string {
	return q.orderID
}

// Validate ensures the query was created through the constructor.
func (q GetOrderDetailQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderDetailQueryIsNotConstructed)
}

// GetOrderDetailQueryResponse carries the inspected order.
type GetOrderDetailQueryResponse struct {
	Order order.Order
}
