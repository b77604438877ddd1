// Package order provides domain entities and business logic for marketplace
// order management. It implements the Order aggregate root with lifecycle
// management and state transitions.
//
// The package includes:
//   - Order: the aggregate root owning identity, line items, amounts and lifecycle
//   - Status: a state machine enforcing valid order status transitions
//   - PaymentMethod / PaymentStatus: orthogonal payment fields
//   - Item: an immutable order line item
//
// Key business rules:
//   - Status follows pending -> confirmed -> preparing -> ready -> in_transit -> delivered
//   - cancelled is reachable from every state except delivered
//   - delivered and cancelled are terminal; no further transitions are accepted
//   - farmerAmount + dispatcherAmount never exceeds totalAmount (the remainder
//     is the platform fee)
//   - payment status is recorded independently of order status, except that an
//     order whose payment failed cannot be confirmed
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package order
