package order

import (
	"fmt"

	"orderdesk/internal/pkg/errs"
)

// DeliveryStatus represents the lifecycle state of a delivery order.
// It implements a state machine whose transitions keep terminal states sticky
// while allowing administrators to correct any non-terminal mis-set.
//
// State transitions:
//
//	pending ──> processing ──> in_transit ──> delivered (terminal)
//	    │            │              │
//	    └────────────┴──────────────┴──> failed / cancelled (terminal)
//
// Movement among the non-terminal states is unrestricted in either direction;
// the only enforced rule is that once a terminal state is reached no further
// transition is accepted. DeliveryStatus is a value object that validates
// transitions and provides string representations for wire and display use.
type DeliveryStatus string

const (
	// StatusPending is the initial status assigned to a delivery order.
	// Orders whose wire payload omits the field default to this value.
	StatusPending DeliveryStatus = "pending"

	// StatusProcessing indicates the order is being prepared for dispatch.
	StatusProcessing DeliveryStatus = "processing"

	// StatusInTransit indicates the order has left for the delivery address.
	StatusInTransit DeliveryStatus = "in_transit"

	// StatusDelivered indicates successful delivery. Terminal.
	StatusDelivered DeliveryStatus = "delivered"

	// StatusFailed indicates the delivery attempt failed. Terminal.
	StatusFailed DeliveryStatus = "failed"

	// StatusCancelled indicates the order was cancelled before delivery. Terminal.
	StatusCancelled DeliveryStatus = "cancelled"
)

// getValidDeliveryStatuses returns the set of recognized wire-level statuses.
func getValidDeliveryStatuses() map[DeliveryStatus]struct{} {
	return map[DeliveryStatus]struct{}{
		StatusPending:    {},
		StatusProcessing: {},
		StatusInTransit:  {},
		StatusDelivered:  {},
		StatusFailed:     {},
		StatusCancelled:  {},
	}
}

// getTerminalDeliveryStatuses returns the statuses from which no transition is allowed.
func getTerminalDeliveryStatuses() map[DeliveryStatus]struct{} {
	return map[DeliveryStatus]struct{}{
		StatusDelivered: {},
		StatusFailed:    {},
		StatusCancelled: {},
	}
}

// ParseDeliveryStatus converts a wire-level value to a DeliveryStatus.
// An empty value yields StatusPending, matching the store's default for
// orders that predate the delivery workflow. An unrecognized value is
// rejected with a ValueIsInvalidError.
func ParseDeliveryStatus(value string) (DeliveryStatus, error) {
	if value == "" {
		return StatusPending, nil
	}

	status := DeliveryStatus(value)
	if err := status.Validate(); err != nil {
		return "", err
	}
	return status, nil
}

// Validate checks that the DeliveryStatus is one of the six recognized values.
func (s DeliveryStatus) Validate() error {
	if _, ok := getValidDeliveryStatuses()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"deliveryStatus",
			fmt.Errorf("%q is not a recognized delivery status", string(s)),
		)
	}
	return nil
}

// IsTerminal reports whether the status is one of delivered, failed or cancelled.
// Terminal statuses accept no further transitions.
func (s DeliveryStatus) IsTerminal() bool {
	_, ok := getTerminalDeliveryStatuses()[s]
	return ok
}

// CanAdvanceTo checks whether a transition from the current status to target
// is legal without performing it.
//
// Rules:
//   - target must be a recognized status
//   - the current status must not be terminal
//
// The four non-terminal states impose no ordering among themselves: the
// dashboard offers free selection, and a mis-set value may be corrected at
// any point before a terminal state is reached.
func (s DeliveryStatus) CanAdvanceTo(target DeliveryStatus) error {
	if err := target.Validate(); err != nil {
		return err
	}

	if s.IsTerminal() {
		return errs.NewValueIsInvalidErrorWithCause(
			"deliveryStatus",
			fmt.Errorf("%s is terminal and accepts no further transitions", s),
		)
	}

	return nil
}

// String returns the wire-level representation of the status.
func (s DeliveryStatus) String() string {
	return string(s)
}

// DeliveryType is the fulfillment channel of an order. Only orders of type
// TypeDelivery participate in the delivery-status workflow; all other values
// are informational and excluded from delivery views.
type DeliveryType string

const (
	// TypeDelivery marks orders fulfilled by courier delivery.
	TypeDelivery DeliveryType = "delivery"

	// TypePickup marks orders collected by the customer.
	TypePickup DeliveryType = "pickup"
)

// IsDelivery reports whether the order is fulfilled by delivery and therefore
// carries a meaningful delivery status.
func (t DeliveryType) IsDelivery() bool {
	return t == TypeDelivery
}

// String returns the wire-level representation of the delivery type.
func (t DeliveryType) String() string {
	return string(t)
}

// PaymentStatus is the upstream payment state of an order. It is informational
// to this core and never mutated by it.
type PaymentStatus string

const (
	PaymentPending PaymentStatus = "pending"
	PaymentPaid    PaymentStatus = "paid"
	PaymentFailed  PaymentStatus = "failed"
)

// String returns the wire-level representation of the payment status.
func (p PaymentStatus) String() string {
	return string(p)
}
