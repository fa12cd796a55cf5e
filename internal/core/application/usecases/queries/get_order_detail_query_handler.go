package queries

import (
	"context"

	"orderdesk/internal/core/domain/model/order"
)

// DetailProvider is the cache-backed detail read the handler consumes.
// Satisfied by querycache.Cache.
type DetailProvider interface {
	AcquireDetail(ctx context.Context, orderID string) (*order.Order, error)
	ReleaseDetail(orderID string)
}

// GetOrderDetailQueryHandler serves single-order detail reads. The detail
// entry is held for the duration of the read and released on return; the
// cache keeps it resident for reuse until the sweep job evicts it.
type GetOrderDetailQueryHandler struct {
	provider DetailProvider
}

// NewGetOrderDetailQueryHandler creates a handler reading through provider.
func NewGetOrderDetailQueryHandler(provider DetailProvider) GetOrderDetailQueryHandler {
	return GetOrderDetailQueryHandler{provider: provider}
}

// Handle executes the detail read. ObjectNotFound propagates when the order
// does not exist; a cancelled ctx discards the fetch without side effects.
func (h GetOrderDetailQueryHandler) Handle(ctx context.Context, query GetOrderDetailQuery) (GetOrderDetailQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderDetailQueryResponse{}, err
	}

	detail, err := h.provider.AcquireDetail(ctx, query.OrderID())
	if err != nil {
		return GetOrderDetailQueryResponse{}, err
	}
	defer h.provider.ReleaseDetail(query.OrderID())

	return GetOrderDetailQueryResponse{Order: *detail}, nil
}
