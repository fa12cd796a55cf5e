package commands

import (
	"context"
)

// DeleteOrderCommandHandler issues the unconditional delete pass-through.
// The only precondition is existence, which the store itself reports.
type DeleteOrderCommandHandler struct {
	mutator     OrderMutator
	invalidator CacheInvalidator
}

// NewDeleteOrderCommandHandler creates a handler for order deletion.
func NewDeleteOrderCommandHandler(mutator OrderMutator, invalidator CacheInvalidator) DeleteOrderCommandHandler {
	return DeleteOrderCommandHandler{
		mutator:     mutator,
		invalidator: invalidator,
	}
}

// Handle processes the deletion request. ObjectNotFound and TransitionFailed
// propagate from the store; on success the cache is invalidated before
// Handle returns, removing the order from every affected collection view.
func (h DeleteOrderCommandHandler) Handle(ctx context.Context, command DeleteOrderCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	if err := h.mutator.DeleteOrder(ctx, command.OrderID()); err != nil {
		return err
	}

	h.invalidator.InvalidateOrder(ctx, command.OrderID())
	return nil
}
