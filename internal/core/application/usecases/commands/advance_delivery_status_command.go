package commands

import (
	"errors"

	"orderdesk/internal/core/domain/model/order"
	"orderdesk/internal/pkg/errs"
	"orderdesk/internal/pkg/guard"
)

var ErrAdvanceDeliveryStatusCommandIsNotConstructed = errors.New(
	"AdvanceDeliveryStatusCommand must be created via NewAdvanceDeliveryStatusCommand constructor",
)

// AdvanceDeliveryStatusCommand requests that one order's delivery status be
// set to a new value. The target may be any of the six recognized statuses,
// since the dashboard offers free selection, but the handler rejects the request
// locally when the order's current status is terminal or the order is not a
// delivery order.
type AdvanceDeliveryStatusCommand struct {
	orderID string
	target  order.DeliveryStatus
	guard   guard.ConstructorGuard
}

// NewAdvanceDeliveryStatusCommand creates a command to advance the delivery
// status of the order identified by orderID to target.
//
// Returns a ValueIsRequiredError for an empty orderID and a
// ValueIsInvalidError for an unrecognized target, before any handler or
// store involvement.
func NewAdvanceDeliveryStatusCommand(orderID string, target order.DeliveryStatus) (AdvanceDeliveryStatusCommand, error) {
	if orderID == "" {
		return AdvanceDeliveryStatusCommand{}, errs.NewValueIsRequiredError("orderID")
	}
	if err := target.Validate(); err != nil {
		return AdvanceDeliveryStatusCommand{}, err
	}

	return AdvanceDeliveryStatusCommand{
		orderID: orderID,
		target:  target,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// OrderID returns the identifier of the order to mutate.
func (c AdvanceDeliveryStatusCommand) OrderID() string {
	return c.orderID
}

// Target returns the requested delivery status.
func (c AdvanceDeliveryStatusCommand) Target() order.DeliveryStatus {
	return c.target
}

// Validate ensures the command was created through the constructor.
func (c AdvanceDeliveryStatusCommand) Validate() error {
	return c.guard.Validate(ErrAdvanceDeliveryStatusCommandIsNotConstructed)
}
