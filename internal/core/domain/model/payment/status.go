package payment

import (
	"homechef/internal/pkg/errs"
)

// Status represents the lifecycle state of a payment.
type Status int

const (
	// StatusUnknown is the zero value. It is not a valid payment status.
	StatusUnknown Status = iota

	// Pending is the initial status of every payment created at checkout.
	Pending

	// Completed means the payment provider confirmed the charge.
	Completed

	// Failed means the payment provider declined or aborted the charge.
	Failed

	// Refunded means at least one refund against this payment was processed.
	// Reachable only through refund processing, never by a direct transition.
	Refunded
)

var statusNames = map[Status]string{
	Pending:   "pending",
	Completed: "completed",
	Failed:    "failed",
	Refunded:  "refunded",
}

// successors holds the allowed forward transitions for each status.
var statusSuccessors = map[Status][]Status{
	Pending:   {Completed, Failed},
	Completed: {Refunded},
	Failed:    {},
	Refunded:  {},
}

// Validate checks that the status is one of the defined payment statuses.
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
	return s == Failed || s == Refunded
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
