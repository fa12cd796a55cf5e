package commands

import (
	"errors"

	"orderdesk/internal/pkg/errs"
	"orderdesk/internal/pkg/guard"
)

var ErrAcceptOrderCommandIsNotConstructed = errors.New(
	"AcceptOrderCommand must be created via NewAcceptOrderCommand constructor",
)

// AcceptOrderCommand requests that a pending order be accepted for delivery.
// Acceptance is monotonic and idempotent: repeating it on an already-accepted
// order is a no-op success, which tolerates duplicate clicks and network
// retries.
type AcceptOrderCommand struct {
	orderID string
	guard   guard.ConstructorGuard
}

// NewAcceptOrderCommand creates a command to accept the order identified by
// orderID.
func NewAcceptOrderCommand(orderID string) (AcceptOrderCommand, error) {
	if orderID == "" {
		return AcceptOrderCommand{}, errs.NewValueIsRequiredError("orderID")
	}

	return AcceptOrderCommand{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// OrderID returns the identifier of the order to accept.
func (c AcceptOrderCommand) OrderID() string {
	return c.orderID
}

// Validate ensures the command was created through the constructor.
func (c AcceptOrderCommand) Validate() error {
	return c.guard.Validate(ErrAcceptOrderCommandIsNotConstructed)
}
