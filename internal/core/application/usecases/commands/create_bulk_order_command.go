package commands

import (
	"errors"
	"time"

	"homechef/internal/core/domain/model/kernel"
	"homechef/internal/pkg/errs"
	"homechef/internal/pkg/guard"
)

var ErrCreateBulkOrderCommandIsNotConstructed = errors.New(
	"CreateBulkOrderCommand must be created via NewCreateBulkOrderCommand constructor",
)

// BulkAssignmentRequest is one chef's proposed share of a new bulk order.
type BulkAssignmentRequest struct {
	AssignmentID kernel.UUID
	ChefID       kernel.UUID
	Quantity     int
}

// CreateBulkOrderCommand represents an organizer's request to cater an
// event, split across the given chef assignments.
type CreateBulkOrderCommand struct { //nolint:recvcheck //using for validation
	bulkOrderID    kernel.UUID
	organizerID    kernel.UUID
	eventName      string
	eventLocation  kernel.GeoPoint
	eventDate      time.Time
	targetQuantity int
	deadline       time.Time
	assignments    []BulkAssignmentRequest

	guard guard.ConstructorGuard
}

// NewCreateBulkOrderCommand creates a command to register a bulk order.
// assignments may be empty; chefs can be invited later.
func NewCreateBulkOrderCommand(
	bulkOrderID kernel.UUID,
	organizerID kernel.UUID,
	eventName string,
	eventLocation kernel.GeoPoint,
	eventDate time.Time,
	targetQuantity int,
	deadline time.Time,
	assignments []BulkAssignmentRequest,
) (CreateBulkOrderCommand, error) {
	command := CreateBulkOrderCommand{
		eventDate: eventDate,
		deadline:  deadline,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setBulkOrderID(bulkOrderID),
		command.setOrganizerID(organizerID),
		command.setEventName(eventName),
		command.setEventLocation(eventLocation),
		command.setTargetQuantity(targetQuantity),
		command.setAssignments(assignments),
	); err != nil {
		return CreateBulkOrderCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateBulkOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateBulkOrderCommandIsNotConstructed)
}

// BulkOrderID returns the identifier the new bulk order will carry.
func (c CreateBulkOrderCommand) BulkOrderID() kernel.UUID {
	return c.bulkOrderID
}

// OrganizerID returns the customer organizing the event.
func (c CreateBulkOrderCommand) OrganizerID() kernel.UUID {
	return c.organizerID
}

// EventName returns the name of the event.
func (c CreateBulkOrderCommand) EventName() string {
	return c.eventName
}

// EventLocation returns where the event takes place.
func (c CreateBulkOrderCommand) EventLocation() kernel.GeoPoint {
	return c.eventLocation
}

// EventDate returns when the event takes place.
func (c CreateBulkOrderCommand) EventDate() time.Time {
	return c.eventDate
}

// TargetQuantity returns the total quantity requested.
func (c CreateBulkOrderCommand) TargetQuantity() int {
	return c.targetQuantity
}

// Deadline returns the confirmation cutoff.
func (c CreateBulkOrderCommand) Deadline() time.Time {
	return c.deadline
}

// Assignments returns the initial chef assignments.
func (c CreateBulkOrderCommand) Assignments() []BulkAssignmentRequest {
	return append([]BulkAssignmentRequest(nil), c.assignments...)
}

func (c *CreateBulkOrderCommand) setBulkOrderID(bulkOrderID kernel.UUID) error {
	if err := bulkOrderID.Validate(); err != nil {
		return err
	}
	c.bulkOrderID = bulkOrderID
	return nil
}

func (c *CreateBulkOrderCommand) setOrganizerID(organizerID kernel.UUID) error {
	if err := organizerID.Validate(); err != nil {
		return err
	}
	c.organizerID = organizerID
	return nil
}

func (c *CreateBulkOrderCommand) setEventName(eventName string) error {
	if eventName == "" {
		return errs.NewValueIsRequiredError("eventName")
	}
	c.eventName = eventName
	return nil
}

func (c *CreateBulkOrderCommand) setEventLocation(eventLocation kernel.GeoPoint) error {
	if err := eventLocation.Validate(); err != nil {
		return err
	}
	c.eventLocation = eventLocation
	return nil
}

func (c *CreateBulkOrderCommand) setTargetQuantity(targetQuantity int) error {
	if targetQuantity <= 0 {
		return errs.NewValueIsInvalidError("targetQuantity")
	}
	c.targetQuantity = targetQuantity
	return nil
}

func (c *CreateBulkOrderCommand) setAssignments(assignments []BulkAssignmentRequest) error {
	for _, assignment := range assignments {
		if err := errors.Join(
			assignment.AssignmentID.Validate(),
			assignment.ChefID.Validate(),
		); err != nil {
			return err
		}
		if assignment.Quantity <= 0 {
			return errs.NewValueIsInvalidError("quantity")
		}
	}

	c.assignments = append([]BulkAssignmentRequest(nil), assignments...)
	return nil
}
