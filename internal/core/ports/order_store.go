// Package ports defines the outbound contracts of the admin core. The backing
// store is an external collaborator reached only through these interfaces;
// adapters under internal/adapters/out provide the concrete transports.
package ports

import (
	"context"

	"orderdesk/internal/core/domain/model/order"
)

// OrderFilter identifies which slice of the order collection a read targets.
// The zero value selects all orders. A non-empty CustomerEmail narrows the
// read to orders placed by that account.
//
// The filter is passed explicitly everywhere a collection is read; there is
// no ambient session-derived keying.
type OrderFilter struct {
	CustomerEmail string
}

// OrderPage is the collection read result, mirroring the store's response
// envelope. TotalOrders and TotalAmount are store-reported aggregates over
// the unfiltered result and are treated as opaque by this core.
type OrderPage struct {
	Orders      []order.Order
	TotalOrders int
	TotalAmount float64
}

// OrderStore is the request/response contract of the backing store.
//
// Reads fail with FetchFailed (network or non-success response) or
// ObjectNotFound. Mutations fail with TransitionFailed, ObjectNotFound or
// Unauthorized; a mutation error guarantees no local state was changed.
// All operations honor ctx cancellation, and none retries on its own.
type OrderStore interface {
	// GetOrders retrieves the order collection matching filter.
	GetOrders(ctx context.Context, filter OrderFilter) (OrderPage, error)

	// GetOrder retrieves a single order by its store-issued identifier.
	GetOrder(ctx context.Context, orderID string) (*order.Order, error)

	// UpdateDeliveryStatus requests the store to set the order's delivery
	// status. Requires a bearer credential.
	UpdateDeliveryStatus(ctx context.Context, orderID string, status order.DeliveryStatus) error

	// AcceptOrder requests the store to mark the order accepted. Requires a
	// bearer credential. The store treats repeated accepts as idempotent.
	AcceptOrder(ctx context.Context, orderID string) error

	// DeleteOrder requests removal of the order. Unconditional pass-through
	// with no state-machine implications.
	DeleteOrder(ctx context.Context, orderID string) error
}
