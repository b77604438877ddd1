// Package services contains domain services that coordinate logic spanning
// multiple aggregates.
//
// The central service is the DispatcherSelector, which picks the least-loaded
// active dispatcher for a new order. Selection is deterministic given the
// same workload snapshot, which makes assignment decisions reproducible and
// easy to test. A uniform random fallback covers the case where workload data
// cannot be computed.
package services
