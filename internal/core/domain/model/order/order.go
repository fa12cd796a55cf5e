package order

import (
	"fmt"
	"time"

	"orderdesk/internal/pkg/errs"
)

// DefaultPaymentMethod is applied when the wire payload omits the payment
// method label. Matches the store's cash-on-delivery default.
const DefaultPaymentMethod = "cod"

// Customer is the purchasing account reference carried by every order.
// Immutable after order creation.
type Customer struct {
	ID    string
	Name  string
	Email string
}

// GeoPoint is an optional delivery geocoordinate.
type GeoPoint struct {
	Latitude  float64
	Longitude float64
}

// DeliveryInfo holds the recipient and address details of a delivery order.
// Present only when the order's delivery type is TypeDelivery.
type DeliveryInfo struct {
	FullName   string
	Phone      string
	Address    string
	City       string
	PostalCode string
	Coordinate *GeoPoint
}

// LineItem is one purchased product position. Line items are immutable after
// order placement and are never mutated by this core.
type LineItem struct {
	ProductID string
	Name      string
	Quantity  int
	UnitPrice float64
}

// Order is the aggregate root of the delivery workflow, read from the backing
// store and never created by this core. It is a read model: fields are
// exported, and the transition rules live in the status value objects and the
// command handlers rather than in mutating methods here.
//
// Invariants (enforced by the status transition service, not by this struct):
//   - DeliveryStatus is meaningful only when DeliveryType is TypeDelivery
//   - IsAccepted is monotonic: once true it is never reset
//   - DeliveryStatus transitions keep terminal states sticky
type Order struct {
	ID             string
	Customer       Customer
	DeliveryInfo   *DeliveryInfo
	LineItems      []LineItem
	Amount         float64
	DeliveryType   DeliveryType
	PaymentStatus  PaymentStatus
	PaymentMethod  string
	IsAccepted     bool
	DeliveryStatus DeliveryStatus
	OTPVerified    bool
	CreatedAt      time.Time
}

// IsDelivery reports whether the order participates in the delivery-status
// workflow.
func (o Order) IsDelivery() bool {
	return o.DeliveryType.IsDelivery()
}

// CanAdvanceTo checks every local precondition for advancing the order's
// delivery status to target, without sending anything to the store.
//
// Returns an InvalidTransitionError when the order is not a delivery order,
// when its current status is terminal, or when target is unrecognized.
func (o Order) CanAdvanceTo(target DeliveryStatus) error {
	if !o.IsDelivery() {
		return errs.NewInvalidTransitionErrorWithCause(
			o.ID, o.DeliveryStatus.String(), target.String(),
			fmt.Errorf("delivery status is not applicable to %q orders", o.DeliveryType),
		)
	}

	if err := o.DeliveryStatus.CanAdvanceTo(target); err != nil {
		return errs.NewInvalidTransitionErrorWithCause(
			o.ID, o.DeliveryStatus.String(), target.String(), err,
		)
	}

	return nil
}

// FilterDeliveries returns the delivery-only projection of an order
// collection: the subset with DeliveryType "delivery", in the original order.
// The projection is a pure derivation recomputed on every read; it holds no
// identity of its own.
func FilterDeliveries(orders []Order) []Order {
	deliveries := make([]Order, 0, len(orders))
	for _, o := range orders {
		if o.IsDelivery() {
			deliveries = append(deliveries, o)
		}
	}
	return deliveries
}
