package commands

import (
	"context"
)

// AcceptOrderCommandHandler performs the acceptance transition. Acceptance
// sets isAccepted to true at the backing store exactly once; an order whose
// confirmed state is already accepted short-circuits to a no-op success
// without a store round trip or a cache invalidation.
type AcceptOrderCommandHandler struct {
	reader      OrderReader
	mutator     OrderMutator
	invalidator CacheInvalidator
}

// NewAcceptOrderCommandHandler creates a handler for order acceptance.
func NewAcceptOrderCommandHandler(
	reader OrderReader,
	mutator OrderMutator,
	invalidator CacheInvalidator,
) AcceptOrderCommandHandler {
	return AcceptOrderCommandHandler{
		reader:      reader,
		mutator:     mutator,
		invalidator: invalidator,
	}
}

// Handle processes the acceptance request.
//
// Failure modes: ObjectNotFound when the order does not exist, Unauthorized
// when no credential is available, TransitionFailed when the store rejects
// the mutation, in which case isAccepted remains false and the caller must
// continue to offer the accept action. On success the cache is invalidated
// before Handle returns.
func (h AcceptOrderCommandHandler) Handle(ctx context.Context, command AcceptOrderCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	current, err := h.reader.GetOrder(ctx, command.OrderID())
	if err != nil {
		return err
	}

	// Idempotent: the transition already happened, nothing to confirm.
	if current.IsAccepted {
		return nil
	}

	if err = h.mutator.AcceptOrder(ctx, command.OrderID()); err != nil {
		return err
	}

	h.invalidator.InvalidateOrder(ctx, command.OrderID())
	return nil
}
