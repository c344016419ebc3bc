package commands

import (
	"errors"

	"homechef/internal/core/domain/model/kernel"
	"homechef/internal/pkg/guard"
)

var ErrRejectBulkAssignmentCommandIsNotConstructed = errors.New(
	"RejectBulkAssignmentCommand must be created via NewRejectBulkAssignmentCommand constructor",
)

// RejectBulkAssignmentCommand represents a chef declining their bulk order
// assignment.
type RejectBulkAssignmentCommand struct { //nolint:recvcheck //using for validation
	bulkOrderID  kernel.UUID
	assignmentID kernel.UUID

	guard guard.ConstructorGuard
}

// NewRejectBulkAssignmentCommand creates a command to reject a bulk order
// assignment.
func NewRejectBulkAssignmentCommand(
	bulkOrderID kernel.UUID,
	assignmentID kernel.UUID,
) (RejectBulkAssignmentCommand, error) {
	command := RejectBulkAssignmentCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setBulkOrderID(bulkOrderID),
		command.setAssignmentID(assignmentID),
	); err != nil {
		return RejectBulkAssignmentCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c RejectBulkAssignmentCommand) Validate() error {
	return c.guard.Validate(ErrRejectBulkAssignmentCommandIsNotConstructed)
}

// BulkOrderID returns the bulk order owning the assignment.
func (c RejectBulkAssignmentCommand) BulkOrderID() kernel.UUID {
	return c.bulkOrderID
}

// AssignmentID returns the assignment being rejected.
func (c RejectBulkAssignmentCommand) AssignmentID() kernel.UUID {
	return c.assignmentID
}

func (c *RejectBulkAssignmentCommand) setBulkOrderID(bulkOrderID kernel.UUID) error {
	if err := bulkOrderID.Validate(); err != nil {
		return err
	}
	c.bulkOrderID = bulkOrderID
	return nil
}

func (c *RejectBulkAssignmentCommand) setAssignmentID(assignmentID kernel.UUID) error {
	if err := assignmentID.Validate(); err != nil {
		return err
	}
	c.assignmentID = assignmentID
	return nil
}
