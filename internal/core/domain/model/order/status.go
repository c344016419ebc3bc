package order

import (
	"fmt"

	"homechef/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
// It implements a state machine with defined transitions to ensure
// orders follow the correct business workflow.
//
// State transitions:
//
//	InCart ──> Pending ──> Confirmed ──> Preparing ──> Ready ──> Delivered
//	              │            │             │           │
//	              └────────────┴──────┬──────┴───────────┘
//	                                  v
//	                              Cancelled
//
// Delivered and Cancelled are terminal; no transition leaves them.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// InCart is the state before checkout; the order exists only as a cart.
	InCart

	// Pending is the initial status of a placed order awaiting confirmation.
	Pending

	// Confirmed indicates checkout succeeded and payment intent was recorded.
	Confirmed

	// Preparing indicates the chef has started preparing the order.
	Preparing

	// Ready indicates the food is ready for pickup by a delivery agent.
	Ready

	// Delivered indicates the order reached the customer. Terminal.
	Delivered

	// Cancelled indicates the order was abandoned. Terminal, reachable from
	// every non-terminal state.
	Cancelled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "unknown",
		InCart:    "cart",
		Pending:   "pending",
		Confirmed: "confirmed",
		Preparing: "preparing",
		Ready:     "ready",
		Delivered: "delivered",
		Cancelled: "cancelled",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		InCart:    "cart",
		Pending:   "pending",
		Confirmed: "confirmed",
		Preparing: "preparing",
		Ready:     "ready",
		Delivered: "delivered",
		Cancelled: "cancelled",
	}
}

// successors returns the allowed-successor set of each status.
// Cancellation is appended for every non-terminal status.
func successors() map[Status][]Status {
	m := map[Status][]Status{
		InCart:    {Pending},
		Pending:   {Confirmed},
		Confirmed: {Preparing},
		Preparing: {Ready},
		Ready:     {Delivered},
		Delivered: {},
		Cancelled: {},
	}

	for s, next := range m {
		if !s.IsTerminal() {
			m[s] = append(next, Cancelled)
		}
	}

	return m
}

// Validate checks if the Status value is valid.
// Unknown (0) and any other values are invalid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid",
			fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the wire name of the status, such as "pending".
// Safe to call on any Status value; invalid values yield "unknown".
// This method implements the fmt.Stringer interface.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// StatusFromString parses a wire name such as "preparing" into a Status.
func StatusFromString(name string) (Status, error) {
	for s, str := range getValidStatusStrings() {
		if str == name {
			return s, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status is invalid",
		fmt.Errorf("%q is not a valid status", name))
}

// IsTerminal reports whether the status permits no further transitions.
func (s Status) IsTerminal() bool {
	return s == Delivered || s == Cancelled
}

// CanTransitionTo reports whether target is in the allowed-successor set of s.
// Terminal and authority checks are enforced separately by Order.TransitionTo.
func (s Status) CanTransitionTo(target Status) bool {
	for _, next := range successors()[s] {
		if next == target {
			return true
		}
	}
	return false
}
