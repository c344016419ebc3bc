// Package paymentrepo provides data transfer objects and mapping functions for payment persistence.
// This package implements the repository pattern for the payment domain aggregate, handling
// the conversion between domain entities and database representations.
package paymentrepo

import (
	"time"

	"homechef/internal/core/domain/model/kernel"
	"homechef/internal/core/domain/model/payment"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PaymentDTO represents the database structure for persisting payment
// aggregates. One payment per order; the refunds live in their own table.
// Version backs the optimistic concurrency check on updates.
type PaymentDTO struct {
	ID        uuid.UUID       `gorm:"type:uuid;primaryKey"`
	OrderID   uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex"`
	Amount    decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	Method    int             `gorm:"type:int;not null"`
	Status    int             `gorm:"type:int;not null;index"`
	CreatedAt time.Time       `gorm:"not null"`
	UpdatedAt time.Time       `gorm:"not null"`
	Version   int             `gorm:"type:int;not null"`
	Refunds   []RefundDTO     `gorm:"foreignKey:PaymentID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for payment entities.
func (PaymentDTO) TableName() string {
	return "payments"
}

// RefundDTO represents one refund request against a payment.
type RefundDTO struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey"`
	PaymentID   uuid.UUID       `gorm:"type:uuid;not null;index"`
	Amount      decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	Reason      string          `gorm:"type:text;not null"`
	Status      int             `gorm:"type:int;not null"`
	RequestedAt time.Time       `gorm:"not null"`
	ProcessedAt *time.Time
}

// TableName specifies the database table name for refund entities.
func (RefundDTO) TableName() string {
	return "refunds"
}

// fromDomain converts a payment domain aggregate to its database representation.
func fromDomain(aggregate *payment.Payment) PaymentDTO {
	paymentID := aggregate.ID().Bytes()

	refunds := make([]RefundDTO, 0, len(aggregate.Refunds()))
	for _, refund := range aggregate.Refunds() {
		refunds = append(refunds, RefundDTO{
			ID:          refund.ID().Bytes(),
			PaymentID:   paymentID,
			Amount:      refund.Amount().Decimal(),
			Reason:      refund.Reason(),
			Status:      int(refund.Status()),
			RequestedAt: refund.RequestedAt(),
			ProcessedAt: refund.ProcessedAt(),
		})
	}

	return PaymentDTO{
		ID:        paymentID,
		OrderID:   aggregate.OrderID().Bytes(),
		Amount:    aggregate.Amount().Decimal(),
		Method:    int(aggregate.Method()),
		Status:    int(aggregate.Status()),
		CreatedAt: aggregate.CreatedAt(),
		UpdatedAt: aggregate.UpdatedAt(),
		Version:   aggregate.Version(),
		Refunds:   refunds,
	}
}

// toDomain converts a database DTO to a payment domain aggregate using
// RestorePayment.
func toDomain(dto PaymentDTO) (*payment.Payment, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}

	amount, err := kernel.NewMoney(dto.Amount)
	if err != nil {
		return nil, err
	}

	refunds := make([]payment.Refund, 0, len(dto.Refunds))
	for _, refundDto := range dto.Refunds {
		refund, refundErr := refundToDomain(refundDto)
		if refundErr != nil {
			return nil, refundErr
		}
		refunds = append(refunds, refund)
	}

	return payment.RestorePayment(
		id, orderID, amount, payment.Method(dto.Method), payment.Status(dto.Status),
		refunds, dto.CreatedAt, dto.UpdatedAt, dto.Version)
}

func refundToDomain(dto RefundDTO) (payment.Refund, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return payment.Refund{}, err
	}

	amount, err := kernel.NewMoney(dto.Amount)
	if err != nil {
		return payment.Refund{}, err
	}

	return payment.RestoreRefund(
		id, amount, dto.Reason, payment.RefundStatus(dto.Status),
		dto.RequestedAt, dto.ProcessedAt)
}
