package commands

import (
	"context"
)

// AdvanceDeliveryStatusCommandHandler owns the legality rules for delivery
// status transitions. It reads the order's confirmed state, validates the
// transition locally, and only then issues the mutation to the backing
// store. Terminal states are sticky; non-terminal states move freely.
//
// An InvalidTransition never reaches the store. A store rejection surfaces
// as TransitionFailed and leaves every cached read untouched, so the
// displayed value continues to reflect only confirmed state.
type AdvanceDeliveryStatusCommandHandler struct {
	reader      OrderReader
	mutator     OrderMutator
	invalidator CacheInvalidator
}

// NewAdvanceDeliveryStatusCommandHandler creates a handler for delivery
// status transitions.
func NewAdvanceDeliveryStatusCommandHandler(
	reader OrderReader,
	mutator OrderMutator,
	invalidator CacheInvalidator,
) AdvanceDeliveryStatusCommandHandler {
	return AdvanceDeliveryStatusCommandHandler{
		reader:      reader,
		mutator:     mutator,
		invalidator: invalidator,
	}
}

// Handle processes the transition request.
//
// Failure modes: ObjectNotFound when the order does not exist,
// InvalidTransition when the order is not a delivery order or its current
// status is terminal, Unauthorized when no credential is available,
// TransitionFailed when the store rejects the mutation. On success the cache
// is invalidated before Handle returns.
func (h AdvanceDeliveryStatusCommandHandler) Handle(ctx context.Context, command AdvanceDeliveryStatusCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	current, err := h.reader.GetOrder(ctx, command.OrderID())
	if err != nil {
		return err
	}

	if err = current.CanAdvanceTo(command.Target()); err != nil {
		return err
	}

	if err = h.mutator.UpdateDeliveryStatus(ctx, command.OrderID(), command.Target()); err != nil {
		return err
	}

	h.invalidator.InvalidateOrder(ctx, command.OrderID())
	return nil
}
