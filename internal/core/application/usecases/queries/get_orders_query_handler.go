package queries

import (
	"context"

	"orderdesk/internal/core/application/querycache"
	"orderdesk/internal/core/domain/model/order"
)

// OrdersProvider is the cache-backed collection read the handler consumes.
// Satisfied by querycache.Cache.
type OrdersProvider interface {
	Orders(ctx context.Context, key querycache.QueryKey) (querycache.Snapshot, error)
}

// GetOrdersQueryHandler serves collection reads from the query cache and
// applies the delivery-only projection on demand. The projection is
// recomputed on every read; it holds no state of its own.
type GetOrdersQueryHandler struct {
	provider OrdersProvider
}

// NewGetOrdersQueryHandler creates a handler reading through provider.
func NewGetOrdersQueryHandler(provider OrdersProvider) GetOrdersQueryHandler {
	return GetOrdersQueryHandler{provider: provider}
}

// Handle executes the collection read. A fetch failure surfaces as a
// FetchFailed error: a distinct error state, never a blank or stale
// success.
func (h GetOrdersQueryHandler) Handle(ctx context.Context, query GetOrdersQuery) (GetOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrdersQueryResponse{}, err
	}

	snap, err := h.provider.Orders(ctx, query.Key())
	if err != nil {
		return GetOrdersQueryResponse{}, err
	}

	orders := snap.Orders
	if query.DeliveryOnly() {
		orders = order.FilterDeliveries(orders)
	}

	return GetOrdersQueryResponse{
		Orders:      orders,
		TotalOrders: snap.TotalOrders,
		TotalAmount: snap.TotalAmount,
		FetchedAt:   snap.FetchedAt,
	}, nil
}
