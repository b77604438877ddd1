// Package dispatcher contains the Dispatcher aggregate root.
//
// A dispatcher is an independent driver who picks up orders at the farm and
// delivers them to buyers. The aggregate holds identity and contact details,
// the vehicle used for deliveries, the base point deliveries start from, and
// an availability flag that controls whether the dispatcher participates in
// automatic assignment.
package dispatcher
