// Package catalogrepo implements the read-side directories the checkout and
// dispatch flows depend on: chef snapshots, live price points, promo codes,
// and available delivery agents. These are lookups over reference tables
// owned elsewhere; no aggregate writes happen here.
package catalogrepo

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ChefDTO represents the chef reference table.
type ChefDTO struct {
	ID               uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name             string    `gorm:"type:varchar(255);not null"`
	AcceptingOrders  bool      `gorm:"not null"`
	KitchenLatitude  float64   `gorm:"type:double precision;not null"`
	KitchenLongitude float64   `gorm:"type:double precision;not null"`
}

// TableName specifies the database table name for chef entities.
func (ChefDTO) TableName() string {
	return "chefs"
}

// PricePointDTO represents one sellable item with its current price and
// availability flag.
type PricePointDTO struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey"`
	ChefID      uuid.UUID       `gorm:"type:uuid;not null;index"`
	ItemName    string          `gorm:"type:varchar(255);not null"`
	Price       decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	IsAvailable bool            `gorm:"not null"`
}

// TableName specifies the database table name for price point entities.
func (PricePointDTO) TableName() string {
	return "price_points"
}

// AgentDTO represents the delivery agent reference table.
type AgentDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name      string    `gorm:"type:varchar(255);not null"`
	IsOnShift bool      `gorm:"not null;index"`
}

// TableName specifies the database table name for agent entities.
func (AgentDTO) TableName() string {
	return "agents"
}

// PromoDTO represents a promo campaign code. A percentage code discounts a
// share of the subtotal; a flat code takes a fixed amount off.
type PromoDTO struct {
	Code       string          `gorm:"type:varchar(64);primaryKey"`
	Percent    int             `gorm:"type:int;not null;default:0"`
	FlatAmount decimal.Decimal `gorm:"type:numeric(12,2);not null;default:0"`
	IsActive   bool            `gorm:"not null"`
	ValidUntil *time.Time
}

// TableName specifies the database table name for promo entities.
func (PromoDTO) TableName() string {
	return "promotions"
}
