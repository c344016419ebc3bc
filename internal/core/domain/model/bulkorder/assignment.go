package bulkorder

import (
	"errors"

	"homechef/internal/core/domain/model/kernel"
	"homechef/internal/pkg/errs"
)

var ErrAssignmentIsNotConstructed = errors.New("assignment must be created via the bulk order or RestoreAssignment")

// AssignmentStatus represents the state of one chef's share of a bulk order.
type AssignmentStatus int

const (
	// AssignmentStatusUnknown is the zero value. It is not a valid status.
	AssignmentStatusUnknown AssignmentStatus = iota

	// AssignmentPending means the chef has not answered yet.
	AssignmentPending

	// AssignmentConfirmed means the chef committed to a quantity.
	AssignmentConfirmed

	// AssignmentRejected means the chef declined the assignment.
	AssignmentRejected
)

var assignmentStatusNames = map[AssignmentStatus]string{
	AssignmentPending:   "pending",
	AssignmentConfirmed: "confirmed",
	AssignmentRejected:  "rejected",
}

// Validate checks that the status is one of the defined assignment statuses.
func (s AssignmentStatus) Validate() error {
	if _, ok := assignmentStatusNames[s]; !ok {
		return errs.NewValueIsInvalidError("status")
	}
	return nil
}

func (s AssignmentStatus) String() string {
	if name, ok := assignmentStatusNames[s]; ok {
		return name
	}
	return "unknown"
}

// AssignmentStatusFromString maps a stored wire name back to an AssignmentStatus.
func AssignmentStatusFromString(name string) (AssignmentStatus, error) {
	for status, statusName := range assignmentStatusNames {
		if statusName == name {
			return status, nil
		}
	}
	return AssignmentStatusUnknown, errs.NewValueIsInvalidError("status")
}

// IsTerminal reports whether the chef has answered, one way or the other.
func (s AssignmentStatus) IsTerminal() bool {
	return s == AssignmentConfirmed || s == AssignmentRejected
}

// Assignment is one chef's share of a bulk order. Assignments live inside
// their BulkOrder aggregate; quantity caps are enforced there.
type Assignment struct {
	id                kernel.UUID
	chefID            kernel.UUID
	assignedQuantity  int
	confirmedQuantity int
	status            AssignmentStatus

	isConstructed bool
}

func newAssignment(id kernel.UUID, chefID kernel.UUID, assignedQuantity int) (Assignment, error) {
	a := Assignment{
		status:        AssignmentPending,
		isConstructed: true,
	}

	if err := errors.Join(
		a.setID(id),
		a.setChefID(chefID),
		a.setAssignedQuantity(assignedQuantity),
	); err != nil {
		return Assignment{}, err
	}

	return a, nil
}

// RestoreAssignment reconstructs an assignment from persistence.
func RestoreAssignment(
	id kernel.UUID,
	chefID kernel.UUID,
	assignedQuantity int,
	confirmedQuantity int,
	status AssignmentStatus,
) (Assignment, error) {
	a := Assignment{isConstructed: true}

	if err := errors.Join(
		a.setID(id),
		a.setChefID(chefID),
		a.setAssignedQuantity(assignedQuantity),
		status.Validate(),
	); err != nil {
		return Assignment{}, err
	}

	if confirmedQuantity < 0 || confirmedQuantity > assignedQuantity {
		return Assignment{}, errs.NewValueIsOutOfRangeError(
			"confirmedQuantity", confirmedQuantity, 0, assignedQuantity)
	}

	a.confirmedQuantity = confirmedQuantity
	a.status = status
	return a, nil
}

// Validate ensures the Assignment instance was properly constructed.
func (a Assignment) Validate() error {
	if !a.isConstructed {
		return ErrAssignmentIsNotConstructed
	}
	return nil
}

// ID returns the assignment's unique identifier.
func (a Assignment) ID() kernel.UUID {
	return a.id
}

// ChefID returns the chef this share was offered to.
func (a Assignment) ChefID() kernel.UUID {
	return a.chefID
}

// AssignedQuantity returns the quantity offered to the chef.
func (a Assignment) AssignedQuantity() int {
	return a.assignedQuantity
}

// ConfirmedQuantity returns the quantity the chef committed to, zero until
// confirmation.
func (a Assignment) ConfirmedQuantity() int {
	return a.confirmedQuantity
}

// Status returns the assignment's current status.
func (a Assignment) Status() AssignmentStatus {
	return a.status
}

func (a *Assignment) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("id", err)
	}
	a.id = id
	return nil
}

func (a *Assignment) setChefID(chefID kernel.UUID) error {
	if err := chefID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("chefID", err)
	}
	a.chefID = chefID
	return nil
}

func (a *Assignment) setAssignedQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidError("assignedQuantity")
	}
	a.assignedQuantity = quantity
	return nil
}
