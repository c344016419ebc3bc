package commands

import (
	"errors"

	"homechef/internal/core/domain/model/kernel"
	"homechef/internal/pkg/errs"
	"homechef/internal/pkg/guard"
)

var ErrConfirmBulkAssignmentCommandIsNotConstructed = errors.New(
	"ConfirmBulkAssignmentCommand must be created via NewConfirmBulkAssignmentCommand constructor",
)

// ConfirmBulkAssignmentCommand represents a chef committing to a quantity
// on their bulk order assignment.
type ConfirmBulkAssignmentCommand struct { //nolint:recvcheck //using for validation
	bulkOrderID  kernel.UUID
	assignmentID kernel.UUID
	quantity     int

	guard guard.ConstructorGuard
}

// NewConfirmBulkAssignmentCommand creates a command to confirm a bulk order
// assignment.
func NewConfirmBulkAssignmentCommand(
	bulkOrderID kernel.UUID,
	assignmentID kernel.UUID,
	quantity int,
) (ConfirmBulkAssignmentCommand, error) {
	command := ConfirmBulkAssignmentCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setBulkOrderID(bulkOrderID),
		command.setAssignmentID(assignmentID),
		command.setQuantity(quantity),
	); err != nil {
		return ConfirmBulkAssignmentCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c ConfirmBulkAssignmentCommand) Validate() error {
	return c.guard.Validate(ErrConfirmBulkAssignmentCommandIsNotConstructed)
}

// BulkOrderID returns the bulk order owning the assignment.
func (c ConfirmBulkAssignmentCommand) BulkOrderID() kernel.UUID {
	return c.bulkOrderID
}

// AssignmentID returns the assignment being confirmed.
func (c ConfirmBulkAssignmentCommand) AssignmentID() kernel.UUID {
	return c.assignmentID
}

// Quantity returns the quantity the chef commits to.
func (c ConfirmBulkAssignmentCommand) Quantity() int {
	return c.quantity
}

func (c *ConfirmBulkAssignmentCommand) setBulkOrderID(bulkOrderID kernel.UUID) error {
	if err := bulkOrderID.Validate(); err != nil {
		return err
	}
	c.bulkOrderID = bulkOrderID
	return nil
}

func (c *ConfirmBulkAssignmentCommand) setAssignmentID(assignmentID kernel.UUID) error {
	if err := assignmentID.Validate(); err != nil {
		return err
	}
	c.assignmentID = assignmentID
	return nil
}

func (c *ConfirmBulkAssignmentCommand) setQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidError("quantity")
	}
	c.quantity = quantity
	return nil
}
