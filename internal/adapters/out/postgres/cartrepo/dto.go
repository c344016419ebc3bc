// Package cartrepo provides data transfer objects and mapping functions for cart persistence.
// This package implements the repository pattern for the cart domain aggregate, handling
// the conversion between domain entities and database representations.
package cartrepo

import (
	"homechef/internal/core/domain/model/cart"
	"homechef/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CartDTO represents the database structure for persisting cart aggregates.
// One cart per customer; the lines live in their own table.
type CartDTO struct {
	ID         uuid.UUID     `gorm:"type:uuid;primaryKey"`
	CustomerID uuid.UUID     `gorm:"type:uuid;not null;uniqueIndex"`
	Lines      []CartLineDTO `gorm:"foreignKey:CartID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for cart entities.
func (CartDTO) TableName() string {
	return "carts"
}

// CartLineDTO represents one cart line with the price captured when the
// line was added.
type CartLineDTO struct {
	CartID       uuid.UUID       `gorm:"type:uuid;primaryKey"`
	PricePointID uuid.UUID       `gorm:"type:uuid;primaryKey"`
	ChefID       uuid.UUID       `gorm:"type:uuid;not null;index"`
	ItemName     string          `gorm:"type:varchar(255);not null"`
	Quantity     int             `gorm:"type:int;not null"`
	UnitPrice    decimal.Decimal `gorm:"type:numeric(12,2);not null"`
}

// TableName specifies the database table name for cart line entities.
func (CartLineDTO) TableName() string {
	return "cart_lines"
}

// fromDomain converts a cart domain aggregate to its database representation.
func fromDomain(aggregate *cart.Cart) CartDTO {
	cartID := aggregate.ID().Bytes()

	lines := make([]CartLineDTO, 0, len(aggregate.Lines()))
	for _, line := range aggregate.Lines() {
		lines = append(lines, CartLineDTO{
			CartID:       cartID,
			PricePointID: line.PricePointID().Bytes(),
			ChefID:       line.ChefID().Bytes(),
			ItemName:     line.ItemName(),
			Quantity:     line.Quantity(),
			UnitPrice:    line.UnitPrice().Decimal(),
		})
	}

	return CartDTO{
		ID:         cartID,
		CustomerID: aggregate.CustomerID().Bytes(),
		Lines:      lines,
	}
}

// toDomain converts a database DTO to a cart domain aggregate using
// RestoreCart.
func toDomain(dto CartDTO) (*cart.Cart, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	customerID, err := kernel.UUIDFromBytes(dto.CustomerID[:])
	if err != nil {
		return nil, err
	}

	lines := make([]cart.Line, 0, len(dto.Lines))
	for _, lineDto := range dto.Lines {
		line, lineErr := lineToDomain(lineDto)
		if lineErr != nil {
			return nil, lineErr
		}
		lines = append(lines, line)
	}

	return cart.RestoreCart(id, customerID, lines)
}

func lineToDomain(dto CartLineDTO) (cart.Line, error) {
	pricePointID, err := kernel.UUIDFromBytes(dto.PricePointID[:])
	if err != nil {
		return cart.Line{}, err
	}

	chefID, err := kernel.UUIDFromBytes(dto.ChefID[:])
	if err != nil {
		return cart.Line{}, err
	}

	unitPrice, err := kernel.NewMoney(dto.UnitPrice)
	if err != nil {
		return cart.Line{}, err
	}

	return cart.NewLine(pricePointID, chefID, dto.ItemName, dto.Quantity, unitPrice)
}
