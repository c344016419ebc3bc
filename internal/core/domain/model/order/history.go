package order

import (
	"errors"
	"time"

	"homechef/internal/core/domain/model/kernel"
	"homechef/internal/pkg/guard"
)

// ErrHistoryEntryIsNotConstructed is returned when a HistoryEntry was not
// created via NewHistoryEntry.
var ErrHistoryEntryIsNotConstructed = errors.New(
	"HistoryEntry must be created via NewHistoryEntry constructor")

// HistoryEntry is one row of an order's append-only audit trail. Exactly one
// entry exists per transition (plus one for creation); entries are never
// mutated or deleted.
type HistoryEntry struct {
	status     Status
	actorRole  Role
	actorID    *kernel.UUID
	notes      string
	recordedAt time.Time

	guard guard.ConstructorGuard
}

// NewHistoryEntry records that an order entered status at recordedAt, driven
// by the given actor. Used by the Order aggregate and by persistence when
// restoring the trail.
func NewHistoryEntry(status Status, actor Actor, notes string, recordedAt time.Time) (HistoryEntry, error) {
	if err := errors.Join(status.Validate(), actor.Validate()); err != nil {
		return HistoryEntry{}, err
	}

	return HistoryEntry{
		status:     status,
		actorRole:  actor.Role(),
		actorID:    actor.UserID(),
		notes:      notes,
		recordedAt: recordedAt,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the entry was created through the constructor.
func (h HistoryEntry) Validate() error {
	return h.guard.Validate(ErrHistoryEntryIsNotConstructed)
}

// Status returns the status the order entered.
func (h HistoryEntry) Status() Status {
	return h.status
}

// ActorRole returns the role that drove the transition.
func (h HistoryEntry) ActorRole() Role {
	return h.actorRole
}

// ActorID returns the acting user's identifier, or nil for system actors.
func (h HistoryEntry) ActorID() *kernel.UUID {
	return h.actorID
}

// Notes returns the free-text note attached to the transition.
func (h HistoryEntry) Notes() string {
	return h.notes
}

// RecordedAt returns when the transition was recorded.
func (h HistoryEntry) RecordedAt() time.Time {
	return h.recordedAt
}
