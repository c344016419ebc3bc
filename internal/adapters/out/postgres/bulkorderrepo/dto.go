// Package bulkorderrepo provides data transfer objects and mapping functions for bulk order persistence.
// This package implements the repository pattern for the bulk order domain aggregate, handling
// the conversion between domain entities and database representations.
package bulkorderrepo

import (
	"time"

	"homechef/internal/core/domain/model/bulkorder"
	"homechef/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// BulkOrderDTO represents the database structure for persisting bulk order
// aggregates. Version backs the optimistic concurrency check on updates:
// two chefs confirming against the same stale remainder collide here.
type BulkOrderDTO struct {
	ID             uuid.UUID   `gorm:"type:uuid;primaryKey"`
	Number         string      `gorm:"type:varchar(32);not null;uniqueIndex"`
	OrganizerID    uuid.UUID   `gorm:"type:uuid;not null;index"`
	EventName      string      `gorm:"type:varchar(255);not null"`
	Event          GeoPointDTO `gorm:"embedded;embeddedPrefix:event_"`
	EventDate      time.Time   `gorm:"not null"`
	TargetQuantity int         `gorm:"type:int;not null"`
	Status         int         `gorm:"type:int;not null;index"`
	OrderID        *uuid.UUID  `gorm:"type:uuid"`
	Deadline       time.Time   `gorm:"not null;index"`
	CreatedAt      time.Time   `gorm:"not null"`
	UpdatedAt      time.Time   `gorm:"not null"`
	Version        int         `gorm:"type:int;not null"`
	Assignments    []AssignmentDTO `gorm:"foreignKey:BulkOrderID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for bulk order entities.
func (BulkOrderDTO) TableName() string {
	return "bulk_orders"
}

// GeoPointDTO represents embedded geographic coordinates.
type GeoPointDTO struct {
	Latitude  float64 `gorm:"type:double precision;not null"`
	Longitude float64 `gorm:"type:double precision;not null"`
}

// AssignmentDTO represents one chef's slice of a bulk order.
type AssignmentDTO struct {
	ID                uuid.UUID `gorm:"type:uuid;primaryKey"`
	BulkOrderID       uuid.UUID `gorm:"type:uuid;not null;index"`
	ChefID            uuid.UUID `gorm:"type:uuid;not null;index"`
	AssignedQuantity  int       `gorm:"type:int;not null"`
	ConfirmedQuantity int       `gorm:"type:int;not null"`
	Status            int       `gorm:"type:int;not null"`
}

// TableName specifies the database table name for bulk assignment entities.
func (AssignmentDTO) TableName() string {
	return "bulk_assignments"
}

// fromDomain converts a bulk order domain aggregate to its database representation.
func fromDomain(aggregate *bulkorder.BulkOrder) BulkOrderDTO {
	bulkOrderID := aggregate.ID().Bytes()

	var orderID *uuid.UUID
	if id := aggregate.OrderID(); id != nil {
		raw := id.Bytes()
		orderID = &raw
	}

	assignments := make([]AssignmentDTO, 0, len(aggregate.Assignments()))
	for _, assignment := range aggregate.Assignments() {
		assignments = append(assignments, AssignmentDTO{
			ID:                assignment.ID().Bytes(),
			BulkOrderID:       bulkOrderID,
			ChefID:            assignment.ChefID().Bytes(),
			AssignedQuantity:  assignment.AssignedQuantity(),
			ConfirmedQuantity: assignment.ConfirmedQuantity(),
			Status:            int(assignment.Status()),
		})
	}

	location := aggregate.EventLocation()

	return BulkOrderDTO{
		ID:             bulkOrderID,
		Number:         aggregate.Number(),
		OrganizerID:    aggregate.OrganizerID().Bytes(),
		EventName:      aggregate.EventName(),
		Event: GeoPointDTO{
			Latitude:  location.Latitude(),
			Longitude: location.Longitude(),
		},
		EventDate:      aggregate.EventDate(),
		TargetQuantity: aggregate.TargetQuantity(),
		Status:         int(aggregate.Status()),
		OrderID:        orderID,
		Deadline:       aggregate.Deadline(),
		CreatedAt:      aggregate.CreatedAt(),
		UpdatedAt:      aggregate.UpdatedAt(),
		Version:        aggregate.Version(),
		Assignments:    assignments,
	}
}

// toDomain converts a database DTO to a bulk order domain aggregate using
// RestoreBulkOrder.
func toDomain(dto BulkOrderDTO) (*bulkorder.BulkOrder, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	organizerID, err := kernel.UUIDFromBytes(dto.OrganizerID[:])
	if err != nil {
		return nil, err
	}

	var orderID *kernel.UUID
	if dto.OrderID != nil {
		oID, orderErr := kernel.UUIDFromBytes((*dto.OrderID)[:])
		if orderErr != nil {
			return nil, orderErr
		}
		orderID = &oID
	}

	location, err := kernel.NewGeoPoint(dto.Event.Latitude, dto.Event.Longitude)
	if err != nil {
		return nil, err
	}

	assignments := make([]bulkorder.Assignment, 0, len(dto.Assignments))
	for _, assignmentDto := range dto.Assignments {
		assignment, assignmentErr := assignmentToDomain(assignmentDto)
		if assignmentErr != nil {
			return nil, assignmentErr
		}
		assignments = append(assignments, assignment)
	}

	return bulkorder.RestoreBulkOrder(
		id, dto.Number, organizerID, dto.EventName, location, dto.EventDate,
		dto.TargetQuantity, bulkorder.Status(dto.Status), assignments, orderID,
		dto.Deadline, dto.CreatedAt, dto.UpdatedAt, dto.Version)
}

func assignmentToDomain(dto AssignmentDTO) (bulkorder.Assignment, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return bulkorder.Assignment{}, err
	}

	chefID, err := kernel.UUIDFromBytes(dto.ChefID[:])
	if err != nil {
		return bulkorder.Assignment{}, err
	}

	return bulkorder.RestoreAssignment(
		id, chefID, dto.AssignedQuantity, dto.ConfirmedQuantity,
		bulkorder.AssignmentStatus(dto.Status))
}
