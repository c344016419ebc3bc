package catalogrepo

import (
	"context"
	"errors"
	"time"

	"homechef/internal/core/domain/model/delivery"
	"homechef/internal/core/domain/model/kernel"
	"homechef/internal/core/ports"
	"homechef/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GormCatalog implements the ChefDirectory, PriceCatalog, PromoResolver,
// and AgentDirectory ports over the reference tables.
type GormCatalog struct {
	db *gorm.DB
}

// NewGormCatalog creates a catalog over the given database connection.
func NewGormCatalog(db *gorm.DB) *GormCatalog {
	return &GormCatalog{db: db}
}

// GetChef retrieves the chef snapshot, or ObjectNotFound.
func (c *GormCatalog) GetChef(ctx context.Context, chefID kernel.UUID) (ports.ChefSnapshot, error) {
	if err := chefID.Validate(); err != nil {
		return ports.ChefSnapshot{}, err
	}

	var dto ChefDTO
	err := c.db.WithContext(ctx).First(&dto, "id = ?", chefID.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ports.ChefSnapshot{}, errs.NewObjectNotFoundError("chef", chefID.String())
		}
		return ports.ChefSnapshot{}, err
	}

	kitchen, err := kernel.NewGeoPoint(dto.KitchenLatitude, dto.KitchenLongitude)
	if err != nil {
		return ports.ChefSnapshot{}, err
	}

	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return ports.ChefSnapshot{}, err
	}

	return ports.ChefSnapshot{
		ID:              id,
		Name:            dto.Name,
		AcceptingOrders: dto.AcceptingOrders,
		KitchenLocation: kitchen,
	}, nil
}

// GetPricePoints retrieves snapshots for the given price point ids, keyed by
// id. Missing ids are absent from the result, not an error.
func (c *GormCatalog) GetPricePoints(
	ctx context.Context,
	ids []kernel.UUID,
) (map[kernel.UUID]ports.PricePoint, error) {
	result := make(map[kernel.UUID]ports.PricePoint, len(ids))
	if len(ids) == 0 {
		return result, nil
	}

	raw := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		raw = append(raw, id.Bytes())
	}

	var dtos []PricePointDTO
	err := c.db.WithContext(ctx).Find(&dtos, "id IN ?", raw).Error
	if err != nil {
		return nil, err
	}

	for _, dto := range dtos {
		id, idErr := kernel.UUIDFromBytes(dto.ID[:])
		if idErr != nil {
			return nil, idErr
		}
		chefID, chefErr := kernel.UUIDFromBytes(dto.ChefID[:])
		if chefErr != nil {
			return nil, chefErr
		}
		price, priceErr := kernel.NewMoney(dto.Price)
		if priceErr != nil {
			return nil, priceErr
		}

		result[id] = ports.PricePoint{
			ID:          id,
			ChefID:      chefID,
			ItemName:    dto.ItemName,
			Price:       price,
			IsAvailable: dto.IsAvailable,
		}
	}

	return result, nil
}

// Resolve turns a promo code into a discount for the given subtotal. An
// unknown, inactive, or expired code resolves to a zero discount rather
// than an error; checkout never fails on a bad code.
func (c *GormCatalog) Resolve(
	ctx context.Context,
	code string,
	subtotal kernel.Money,
) (kernel.Money, error) {
	if code == "" {
		return kernel.ZeroMoney(), nil
	}

	var dto PromoDTO
	err := c.db.WithContext(ctx).First(&dto, "code = ?", code).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return kernel.ZeroMoney(), nil
		}
		return kernel.ZeroMoney(), err
	}

	if !dto.IsActive || (dto.ValidUntil != nil && dto.ValidUntil.Before(time.Now())) {
		return kernel.ZeroMoney(), nil
	}

	if dto.Percent > 0 {
		rate := decimal.NewFromInt(int64(dto.Percent)).Div(decimal.NewFromInt(100))
		return subtotal.Mul(rate), nil
	}

	return kernel.NewMoney(dto.FlatAmount)
}

// GetAvailableAgents retrieves agents currently on shift together with
// their active delivery counts, least loaded first.
func (c *GormCatalog) GetAvailableAgents(ctx context.Context) ([]ports.AgentSnapshot, error) {
	agents := make([]ports.AgentSnapshot, 0)

	rows, err := c.db.WithContext(ctx).Raw(`
		SELECT
			a.id,
			a.name,
			COUNT(d.id) AS active_deliveries
		FROM agents a
		LEFT JOIN deliveries d
			ON d.agent_id = a.id AND d.status IN (?, ?)
		WHERE a.is_on_shift
		GROUP BY a.id, a.name
		ORDER BY active_deliveries, a.name
	`, int(delivery.Assigned), int(delivery.PickedUp)).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var agent ports.AgentSnapshot
		var id uuid.UUID

		if err = rows.Scan(&id, &agent.Name, &agent.ActiveDeliveries); err != nil {
			return nil, err
		}

		agentID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		agent.ID = agentID
		agent.IsOnShift = true
		agents = append(agents, agent)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return agents, nil
}
