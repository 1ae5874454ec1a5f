package order

import (
	"errors"
	"fmt"
	"time"

	"distribution/internal/core/domain/model/kernel"
)

// ErrHistoryEntryIsNotConstructed is returned when a HistoryEntry was not
// created through a constructor function.
var ErrHistoryEntryIsNotConstructed = errors.New("HistoryEntry must be created via NewHistoryEntry or RestoreHistoryEntry")

// HistoryEntry is one row of an order's append-only audit trail. Entries are
// never updated or deleted; per-order timestamps are non-decreasing, and the
// first entry of an order has no previous status.
type HistoryEntry struct {
	id             kernel.UUID
	orderID        kernel.UUID
	previousStatus *Status
	status         Status
	actorID        kernel.UUID
	actorName      string
	actorRole      kernel.Role
	note           string
	changedAt      time.Time
	source         string

	isConstructed bool
}

// NewHistoryEntry creates an audit row for a status change.
//
// previousStatus is nil only for the creation entry. When note is empty a
// default text is generated so the trail is always narratable.
func NewHistoryEntry(
	id kernel.UUID,
	orderID kernel.UUID,
	previousStatus *Status,
	status Status,
	actor kernel.Actor,
	note string,
	changedAt time.Time,
	source string,
) (*HistoryEntry, error) {
	if err := errors.Join(id.Validate(), orderID.Validate(), status.Validate(), actor.Validate()); err != nil {
		return nil, err
	}
	if previousStatus != nil {
		if err := previousStatus.Validate(); err != nil {
			return nil, err
		}
	}

	if note == "" {
		if previousStatus == nil {
			note = "order created"
		} else {
			note = fmt.Sprintf("status changed from %s to %s", previousStatus.String(), status.String())
		}
	}
	if source == "" {
		source = "system"
	}

	return &HistoryEntry{
		id:             id,
		orderID:        orderID,
		previousStatus: previousStatus,
		status:         status,
		actorID:        actor.ID(),
		actorName:      actor.Name(),
		actorRole:      actor.Role(),
		note:           note,
		changedAt:      changedAt,
		source:         source,
		isConstructed:  true,
	}, nil
}

// NewCreationHistoryEntry builds the first audit row for a freshly created
// order: status New with no previous status.
func NewCreationHistoryEntry(o *Order, actor kernel.Actor, source string) (*HistoryEntry, error) {
	if err := o.Validate(); err != nil {
		return nil, err
	}
	return NewHistoryEntry(kernel.NewUUID(), o.ID(), nil, o.Status(), actor, "", o.PlacedAt(), source)
}

// RestoreHistoryEntry reconstructs an audit row from persistence.
func RestoreHistoryEntry(
	id kernel.UUID,
	orderID kernel.UUID,
	previousStatus *Status,
	status Status,
	actorID kernel.UUID,
	actorName string,
	actorRole kernel.Role,
	note string,
	changedAt time.Time,
	source string,
) (*HistoryEntry, error) {
	if err := errors.Join(id.Validate(), orderID.Validate(), status.Validate()); err != nil {
		return nil, err
	}

	return &HistoryEntry{
		id:             id,
		orderID:        orderID,
		previousStatus: previousStatus,
		status:         status,
		actorID:        actorID,
		actorName:      actorName,
		actorRole:      actorRole,
		note:           note,
		changedAt:      changedAt,
		source:         source,
		isConstructed:  true,
	}, nil
}

// Validate ensures the entry was created through a constructor.
func (e *HistoryEntry) Validate() error {
	if e == nil || !e.isConstructed {
		return ErrHistoryEntryIsNotConstructed
	}
	return nil
}

// ID returns the entry's identifier.
func (e *HistoryEntry) ID() kernel.UUID { return e.id }

// OrderID returns the order the entry belongs to.
func (e *HistoryEntry) OrderID() kernel.UUID { return e.orderID }

// PreviousStatus returns the status before the change, nil for the creation entry.
func (e *HistoryEntry) PreviousStatus() *Status { return e.previousStatus }

// Status returns the status after the change.
func (e *HistoryEntry) Status() Status { return e.status }

// ActorID returns the id of the actor that made the change.
func (e *HistoryEntry) ActorID() kernel.UUID { return e.actorID }

// ActorName returns the display name recorded for the actor.
func (e *HistoryEntry) ActorName() string { return e.actorName }

// ActorRole returns the role recorded for the actor.
func (e *HistoryEntry) ActorRole() kernel.Role { return e.actorRole }

// Note returns the note, generated when the caller supplied none.
func (e *HistoryEntry) Note() string { return e.note }

// ChangedAt returns when the change happened.
func (e *HistoryEntry) ChangedAt() time.Time { return e.changedAt }

// Source returns the request provenance, e.g. a remote address or "system".
func (e *HistoryEntry) Source() string { return e.source }
