// Package delivery provides the dispatcher-side fulfillment record tied to one
// order. It implements the Delivery aggregate root with a narrow state machine
// that mirrors a subset of the order lifecycle.
//
// The package includes:
//   - Delivery: the aggregate root tracking pickup/drop-off locations and progress
//   - Status: the assigned -> picked_up -> in_transit -> delivered state machine
//
// Key business rules:
//   - a delivery references exactly one order; the reference is immutable
//   - delivery status moves strictly forward, one step at a time
//   - delivery status must never be ahead of the parent order's status; each
//     delivery status declares the minimum order status it requires and
//     transitions violating that ordering are rejected
package delivery
