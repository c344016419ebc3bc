package bulkorder

import (
	"homechef/internal/pkg/errs"
)

// Status represents the lifecycle state of a bulk order.
type Status int

const (
	// StatusUnknown is the zero value. It is not a valid bulk order status.
	StatusUnknown Status = iota

	// Pending is the initial status while the organizer's request awaits
	// administrative confirmation.
	Pending

	// Confirmed means the event was accepted and chefs may confirm their
	// assignments.
	Confirmed

	// Fulfilled means confirmed assignment quantities add up to the target
	// and every assignment reached a terminal state.
	Fulfilled

	// Cancelled means the bulk order was called off, by the organizer or by
	// the deadline sweep.
	Cancelled
)

var statusNames = map[Status]string{
	Pending:   "pending",
	Confirmed: "confirmed",
	Fulfilled: "fulfilled",
	Cancelled: "cancelled",
}

var statusSuccessors = map[Status][]Status{
	Pending:   {Confirmed, Fulfilled, Cancelled},
	Confirmed: {Fulfilled, Cancelled},
	Fulfilled: {},
	Cancelled: {},
}

// Validate checks that the status is one of the defined bulk order statuses.
func (s Status) Validate() error {
	if _, ok := statusNames[s]; !ok {
		return errs.NewValueIsInvalidError("status")
	}
	return nil
}

func (s Status) String() string {
	if name, ok := statusNames[s]; ok {
		return name
	}
	return "unknown"
}

// StatusFromString maps a stored wire name back to a Status.
func StatusFromString(name string) (Status, error) {
	for status, statusName := range statusNames {
		if statusName == name {
			return status, nil
		}
	}
	return StatusUnknown, errs.NewValueIsInvalidError("status")
}

// IsTerminal reports whether no further transitions are possible.
func (s Status) IsTerminal() bool {
	return s == Fulfilled || s == Cancelled
}

// CanTransitionTo reports whether target is a direct successor of s.
func (s Status) CanTransitionTo(target Status) bool {
	for _, successor := range statusSuccessors[s] {
		if successor == target {
			return true
		}
	}
	return false
}
