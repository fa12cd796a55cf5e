// Package commands contains the mutations of the order admin core: accepting
// an order, advancing its delivery status, and deleting it. Each operation is
// a command + handler pair following the CQRS write side.
//
// All three operations are fire-and-confirm: a handler never assumes success
// until the backing store acknowledges, keeps no speculative state past the
// single in-flight request, and never retries on its own. Local preconditions
// are checked before any mutation request is sent; after a confirmed mutation
// the handler invalidates the query cache before returning, so the issuing
// session's next read is authoritative.
package commands

import (
	"context"

	"orderdesk/internal/core/domain/model/order"
)

// Store-facing interfaces consumed by the command handlers. ports.OrderStore
// satisfies OrderReader and OrderMutator; the query cache satisfies
// CacheInvalidator.
type (
	// OrderReader provides the confirmed current state of a single order,
	// read fresh from the backing store for precondition checks.
	OrderReader interface {
		GetOrder(ctx context.Context, orderID string) (*order.Order, error)
	}

	// OrderMutator issues mutation requests to the backing store.
	OrderMutator interface {
		UpdateDeliveryStatus(ctx context.Context, orderID string, status order.DeliveryStatus) error
		AcceptOrder(ctx context.Context, orderID string) error
		DeleteOrder(ctx context.Context, orderID string) error
	}

	// CacheInvalidator marks cached reads affected by a confirmed mutation
	// stale and refetches them before returning.
	CacheInvalidator interface {
		InvalidateOrder(ctx context.Context, orderID string)
	}
)
