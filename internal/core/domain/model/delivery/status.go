package delivery

import (
	"homechef/internal/pkg/errs"
)

// Status represents the lifecycle state of a delivery.
type Status int

const (
	// StatusUnknown is the zero value. It is not a valid delivery status.
	StatusUnknown Status = iota

	// Unassigned is the initial status of every delivery.
	Unassigned

	// Assigned means a delivery agent accepted the delivery.
	Assigned

	// PickedUp means the agent collected the order from the chef.
	PickedUp

	// Delivered means the order reached the customer.
	Delivered

	// Cancelled means the delivery was called off before completion.
	Cancelled
)

var statusNames = map[Status]string{
	Unassigned: "unassigned",
	Assigned:   "assigned",
	PickedUp:   "picked_up",
	Delivered:  "delivered",
	Cancelled:  "cancelled",
}

// successors holds the allowed forward transitions for each status.
// Cancellation is possible from any non-terminal status.
var statusSuccessors = map[Status][]Status{
	Unassigned: {Assigned, Cancelled},
	Assigned:   {PickedUp, Cancelled},
	PickedUp:   {Delivered, Cancelled},
	Delivered:  {},
	Cancelled:  {},
}

// Validate checks that the status is one of the defined delivery statuses.
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
	return s == Delivered || s == Cancelled
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
