// Package services provides domain services that work across multiple
// aggregates of the distribution system.
//
// The package includes:
//   - AvailabilityEvaluator: a pure service joining order line items against
//     the inventory ledger to produce per-item and order-level fulfillment status
//
// Domain services hold no state and perform no I/O; callers load the aggregates
// and hand them in.
package services
