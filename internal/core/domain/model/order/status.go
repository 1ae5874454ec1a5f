package order

import (
	"fmt"

	"distribution/internal/pkg/errs"
)

// Status represents the lifecycle state of a distribution order.
// It implements a state machine with defined transitions to ensure
// orders follow the correct fulfillment workflow.
//
// State transitions:
//
//	New ──> Pending ──> Processing ──> Picked ──> Dispatched ──> Completed
//	 │         │            │            │
//	 └─────────┴────────────┴── Hold ────┘
//	           (Hold can resume to any working state)
//
// New, Pending and Processing can also be Cancelled. Completed and
// Cancelled are terminal: no further transitions are allowed.
//
// Status is a value object that validates state transitions and provides
// string representations for persistence and display.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// New is the initial status assigned when an order is created.
	New

	// Pending indicates the order has been acknowledged and queued for processing.
	Pending

	// Processing indicates the branch has confirmed the order and is preparing it.
	Processing

	// Hold parks an order. Held orders can resume to any working state,
	// finish directly, or be cancelled.
	Hold

	// Picked indicates all items have been picked from the racks.
	Picked

	// Dispatched indicates the order has been packed and handed to transport.
	Dispatched

	// Completed indicates the order was delivered. Terminal.
	Completed

	// Cancelled indicates the order was abandoned. Terminal.
	Cancelled
)

// getStatusStrings returns a map of Status values to their string representations.
// All statuses are included for string conversion.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:    "Unknown",
		New:        "New",
		Pending:    "Pending",
		Processing: "Processing",
		Hold:       "Hold",
		Picked:     "Picked",
		Dispatched: "Dispatched",
		Completed:  "Completed",
		Cancelled:  "Cancelled",
	}
}

// getTransitionTable returns the allowed target statuses per current status.
// Terminal statuses map to an empty set.
func getTransitionTable() map[Status][]Status {
	return map[Status][]Status{
		New:        {Pending, Hold, Cancelled},
		Pending:    {Processing, Hold, Cancelled},
		Processing: {Picked, Hold, Cancelled},
		Hold:       {New, Pending, Processing, Picked, Dispatched, Completed, Cancelled},
		Picked:     {Dispatched, Hold},
		Dispatched: {Completed},
		Completed:  {},
		Cancelled:  {},
	}
}

// StatusFromString parses a status from its persisted or request representation.
// Returns an error for unrecognized values.
func StatusFromString(s string) (Status, error) {
	for status, str := range getStatusStrings() {
		if str == s && status != Unknown {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a valid status", s))
}

// Validate checks if the Status value is one of the defined states.
// Unknown (0) and out-of-range values are invalid.
func (s Status) Validate() error {
	if _, ok := getTransitionTable()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the human-readable name of the status.
// Implements fmt.Stringer and is safe to call on any Status value.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// IsTerminal reports whether the status allows no further transitions.
// Completed and Cancelled are terminal.
func (s Status) IsTerminal() bool {
	targets, ok := getTransitionTable()[s]
	return ok && len(targets) == 0
}

// CanTransitionTo reports whether the transition table allows moving
// from this status to target.
func (s Status) CanTransitionTo(target Status) bool {
	for _, allowed := range getTransitionTable()[s] {
		if allowed == target {
			return true
		}
	}
	return false
}

// TransitionTo validates and performs a state change.
//
// Returns:
//   - (target, nil) when the transition table allows the move
//   - (0, InvalidTransitionError naming both statuses) otherwise
//
// This method is used by Order.TransitionTo to enforce the workflow;
// it never mutates anything itself.
func (s Status) TransitionTo(target Status) (Status, error) {
	if err := target.Validate(); err != nil {
		return 0, err
	}

	if !s.CanTransitionTo(target) {
		return 0, errs.NewInvalidTransitionError(s.String(), target.String())
	}

	return target, nil
}
