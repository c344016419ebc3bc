// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"time"

	"homechef/internal/core/domain/model/kernel"
	"homechef/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Charges are flattened into columns and the delivery point is embedded with
// a delivery_ prefix. Version backs the optimistic concurrency check on
// updates.
type OrderDTO struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Number      string          `gorm:"type:varchar(32);not null;uniqueIndex"`
	CustomerID  uuid.UUID       `gorm:"type:uuid;not null;index"`
	ChefID      *uuid.UUID      `gorm:"type:uuid;index"`
	Status      int             `gorm:"type:int;not null;index"`
	Subtotal    decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	DeliveryFee decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	Tax         decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	Discount    decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	Total       decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	Delivery    GeoPointDTO     `gorm:"embedded;embeddedPrefix:delivery_"`
	CreatedAt   time.Time       `gorm:"not null"`
	UpdatedAt   time.Time       `gorm:"not null"`
	DeliveredAt *time.Time
	Version     int               `gorm:"type:int;not null"`
	Items       []OrderItemDTO    `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	History     []OrderHistoryDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for order entities.
// Overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// GeoPointDTO represents embedded geographic coordinates.
type GeoPointDTO struct {
	Latitude  float64 `gorm:"type:double precision;not null"`
	Longitude float64 `gorm:"type:double precision;not null"`
}

// OrderItemDTO represents one order line. Lines are written once at checkout
// and never change afterwards.
type OrderItemDTO struct {
	OrderID      uuid.UUID       `gorm:"type:uuid;primaryKey"`
	PricePointID uuid.UUID       `gorm:"type:uuid;primaryKey"`
	ItemName     string          `gorm:"type:varchar(255);not null"`
	Quantity     int             `gorm:"type:int;not null"`
	UnitPrice    decimal.Decimal `gorm:"type:numeric(12,2);not null"`
}

// TableName specifies the database table name for order line entities.
func (OrderItemDTO) TableName() string {
	return "order_items"
}

// OrderHistoryDTO represents one entry of the order's status trail. Rows are
// insert-only: Seq is the entry's position in the aggregate's history, so
// re-persisting an aggregate only appends the new tail.
type OrderHistoryDTO struct {
	OrderID     uuid.UUID `gorm:"type:uuid;primaryKey"`
	Seq         int       `gorm:"type:int;primaryKey;autoIncrement:false"`
	Status      int       `gorm:"type:int;not null"`
	ActorRole   int       `gorm:"type:int;not null"`
	ActorUserID *uuid.UUID `gorm:"type:uuid"`
	Notes       string    `gorm:"type:text;not null;default:''"`
	RecordedAt  time.Time `gorm:"not null"`
}

// TableName specifies the database table name for order history entries.
func (OrderHistoryDTO) TableName() string {
	return "order_history"
}

// fromDomain converts an order domain aggregate to its database representation.
func fromDomain(aggregate *order.Order) OrderDTO {
	orderID := aggregate.ID().Bytes()

	var chefID *uuid.UUID
	if id := aggregate.ChefID(); id != nil {
		raw := id.Bytes()
		chefID = &raw
	}

	items := make([]OrderItemDTO, 0, len(aggregate.Items()))
	for _, item := range aggregate.Items() {
		items = append(items, OrderItemDTO{
			OrderID:      orderID,
			PricePointID: item.PricePointID().Bytes(),
			ItemName:     item.ItemName(),
			Quantity:     item.Quantity(),
			UnitPrice:    item.UnitPrice().Decimal(),
		})
	}

	history := make([]OrderHistoryDTO, 0, len(aggregate.History()))
	for seq, entry := range aggregate.History() {
		var actorUserID *uuid.UUID
		if id := entry.ActorID(); id != nil {
			raw := id.Bytes()
			actorUserID = &raw
		}

		history = append(history, OrderHistoryDTO{
			OrderID:     orderID,
			Seq:         seq,
			Status:      int(entry.Status()),
			ActorRole:   int(entry.ActorRole()),
			ActorUserID: actorUserID,
			Notes:       entry.Notes(),
			RecordedAt:  entry.RecordedAt(),
		})
	}

	charges := aggregate.Charges()
	location := aggregate.DeliveryLocation()

	return OrderDTO{
		ID:          orderID,
		Number:      aggregate.Number(),
		CustomerID:  aggregate.CustomerID().Bytes(),
		ChefID:      chefID,
		Status:      int(aggregate.Status()),
		Subtotal:    charges.Subtotal().Decimal(),
		DeliveryFee: charges.DeliveryFee().Decimal(),
		Tax:         charges.Tax().Decimal(),
		Discount:    charges.Discount().Decimal(),
		Total:       charges.Total().Decimal(),
		Delivery: GeoPointDTO{
			Latitude:  location.Latitude(),
			Longitude: location.Longitude(),
		},
		CreatedAt:   aggregate.CreatedAt(),
		UpdatedAt:   aggregate.UpdatedAt(),
		DeliveredAt: aggregate.DeliveredAt(),
		Version:     aggregate.Version(),
		Items:       items,
		History:     history,
	}
}

// toDomain converts a database DTO to an order domain aggregate.
// Reconstructs the complete aggregate including items and the history trail
// using RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	customerID, err := kernel.UUIDFromBytes(dto.CustomerID[:])
	if err != nil {
		return nil, err
	}

	var chefID *kernel.UUID
	if dto.ChefID != nil {
		cID, chefErr := kernel.UUIDFromBytes((*dto.ChefID)[:])
		if chefErr != nil {
			return nil, chefErr
		}
		chefID = &cID
	}

	items := make([]order.Item, 0, len(dto.Items))
	for _, itemDto := range dto.Items {
		item, itemErr := itemToDomain(itemDto)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	history := make([]order.HistoryEntry, 0, len(dto.History))
	for _, entryDto := range dto.History {
		entry, entryErr := historyToDomain(entryDto)
		if entryErr != nil {
			return nil, entryErr
		}
		history = append(history, entry)
	}

	charges, err := chargesToDomain(dto)
	if err != nil {
		return nil, err
	}

	location, err := kernel.NewGeoPoint(dto.Delivery.Latitude, dto.Delivery.Longitude)
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(
		id, dto.Number, customerID, chefID, items, charges, location,
		order.Status(dto.Status), history,
		dto.CreatedAt, dto.UpdatedAt, dto.DeliveredAt, dto.Version)
}

func itemToDomain(dto OrderItemDTO) (order.Item, error) {
	pricePointID, err := kernel.UUIDFromBytes(dto.PricePointID[:])
	if err != nil {
		return order.Item{}, err
	}

	unitPrice, err := kernel.NewMoney(dto.UnitPrice)
	if err != nil {
		return order.Item{}, err
	}

	return order.NewItem(pricePointID, dto.ItemName, dto.Quantity, unitPrice)
}

func historyToDomain(dto OrderHistoryDTO) (order.HistoryEntry, error) {
	actor, err := actorToDomain(dto.ActorRole, dto.ActorUserID)
	if err != nil {
		return order.HistoryEntry{}, err
	}

	return order.NewHistoryEntry(order.Status(dto.Status), actor, dto.Notes, dto.RecordedAt)
}

func actorToDomain(role int, userID *uuid.UUID) (order.Actor, error) {
	if order.Role(role) == order.RoleSystem {
		return order.SystemActor(), nil
	}

	var id kernel.UUID
	if userID != nil {
		restored, err := kernel.UUIDFromBytes((*userID)[:])
		if err != nil {
			return order.Actor{}, err
		}
		id = restored
	}

	switch order.Role(role) {
	case order.RoleAdmin:
		return order.AdminActor(id)
	case order.RoleCustomer:
		return order.CustomerActor(id)
	case order.RoleChef:
		return order.ChefActor(id)
	case order.RoleAgent:
		return order.AgentActor(id)
	default:
		return order.SystemActor(), nil
	}
}

func chargesToDomain(dto OrderDTO) (order.Charges, error) {
	subtotal, err := kernel.NewMoney(dto.Subtotal)
	if err != nil {
		return order.Charges{}, err
	}
	deliveryFee, err := kernel.NewMoney(dto.DeliveryFee)
	if err != nil {
		return order.Charges{}, err
	}
	tax, err := kernel.NewMoney(dto.Tax)
	if err != nil {
		return order.Charges{}, err
	}
	discount, err := kernel.NewMoney(dto.Discount)
	if err != nil {
		return order.Charges{}, err
	}

	return order.NewCharges(subtotal, deliveryFee, tax, discount)
}
