// Package queries contains the read operations of the admin core. Reads go
// through the query cache, never straight to the backing store, so that a
// session's reads after its own mutations are always authoritative.
package queries

import (
	"errors"
	"time"

	"orderdesk/internal/core/application/querycache"
	"orderdesk/internal/core/domain/model/order"
	"orderdesk/internal/pkg/guard"
)

var ErrGetOrdersQueryIsNotConstructed = errors.New(
	"GetOrdersQuery must be created via NewGetOrdersQuery constructor",
)

// GetOrdersQuery retrieves an order collection by explicit cache key,
// optionally narrowed to the delivery-only projection both dashboards
// render.
//
// Example:
//
//	query := NewGetOrdersQuery(querycache.AllOrders(), true)
//	response, err := handler.Handle(ctx, query)
type GetOrdersQuery struct {
	key          querycache.QueryKey
	deliveryOnly bool
	guard        guard.ConstructorGuard
}

// NewGetOrdersQuery creates a collection query for key. When deliveryOnly is
// set, the result is the projection of orders with delivery type "delivery".
func NewGetOrdersQuery(key querycache.QueryKey, deliveryOnly bool) GetOrdersQuery {
	return GetOrdersQuery{
		key:          key,
		deliveryOnly: deliveryOnly,
		guard:        guard.NewConstructorGuard(),
	}
}

// Key returns the cache key the query targets.
func (q GetOrdersQuery) Key() querycache.QueryKey {
	return q.key
}

// DeliveryOnly reports whether the delivery projection is applied.
func (q GetOrdersQuery) DeliveryOnly() bool {
	return q.deliveryOnly
}

// Validate ensures the query was created through the constructor.
func (q GetOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetOrdersQueryIsNotConstructed)
}

// GetOrdersQueryResponse is the collection read result. TotalOrders and
// TotalAmount are the store-reported aggregates of the unprojected
// collection and are surfaced unchanged even when the delivery projection
// narrows Orders.
type GetOrdersQueryResponse struct {
	Orders      []order.Order
	TotalOrders int
	TotalAmount float64
	FetchedAt   time.Time
}
