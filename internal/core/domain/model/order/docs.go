// Package order contains the order aggregate of the distribution domain.
//
// An Order is the aggregate root: a header plus immutable line items, created
// atomically. After creation the header changes only through the status state
// machine (TransitionTo), which also produces the append-only HistoryEntry
// audit rows. Completed and Cancelled are terminal states.
//
// The package owns three concerns:
//   - Status: the transition table and its validation
//   - LineItem: per-item quantities, discounts, and the exact amount rule
//   - HistoryEntry: the audit trail rows written together with header updates
package order
