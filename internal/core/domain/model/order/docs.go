// Package order defines the order read model and the delivery-status state
// machine of the admin dashboard core.
//
// Orders are created upstream at checkout and reach this core only through
// the backing store; the core reads them, accepts them, and advances their
// delivery status, but never creates them. The Order struct is therefore a
// plain read model with exported fields, while DeliveryStatus and
// DeliveryType are value objects that carry the transition and eligibility
// rules.
package order
