package commands

import (
	"errors"

	"orderdesk/internal/pkg/errs"
	"orderdesk/internal/pkg/guard"
)

var ErrDeleteOrderCommandIsNotConstructed = errors.New(
	"DeleteOrderCommand must be created via NewDeleteOrderCommand constructor",
)

// DeleteOrderCommand requests removal of an order from the backing store.
// Deletion is a pass-through with no state-machine rule; it shares the
// fire-and-confirm and cache-invalidation contract of the transitions.
type DeleteOrderCommand struct {
	orderID string
	guard   guard.ConstructorGuard
}

// NewDeleteOrderCommand creates a command to delete the order identified by
// orderID.
func NewDeleteOrderCommand(orderID string) (DeleteOrderCommand, error) {
	if orderID == "" {
		return DeleteOrderCommand{}, errs.NewValueIsRequiredError("orderID")
	}

	return DeleteOrderCommand{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// OrderID returns the identifier of the order to delete.
func (c DeleteOrderCommand) OrderID() string {
	return c.orderID
}

// Validate ensures the command was created through the constructor.
func (c DeleteOrderCommand) Validate() error {
	return c.guard.Validate(ErrDeleteOrderCommandIsNotConstructed)
}
