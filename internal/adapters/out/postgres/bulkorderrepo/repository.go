package bulkorderrepo

import (
	"context"
	"errors"
	"time"

	"homechef/internal/core/domain/model/bulkorder"
	"homechef/internal/core/domain/model/kernel"
	"homechef/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// bulkOrderColumns are the columns rewritten on every update.
var bulkOrderColumns = []string{
	"number", "organizer_id", "event_name",
	"event_latitude", "event_longitude", "event_date",
	"target_quantity", "status", "order_id", "deadline",
	"updated_at", "version",
}

// GormBulkOrderRepository implements BulkOrderRepository using GORM.
type GormBulkOrderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormBulkOrderRepository creates a new GORM bulk order repository.
func NewGormBulkOrderRepository(db *gorm.DB, tracker aggregateTracker) *GormBulkOrderRepository {
	return &GormBulkOrderRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new bulk order to the database, assignments included.
func (r *GormBulkOrderRepository) Add(ctx context.Context, aggregate *bulkorder.BulkOrder) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing bulk order under an optimistic version check.
// Assignment rows are upserted by primary key, so two chefs racing to
// confirm against the same remainder collide on the version guard, not on
// each other's rows.
func (r *GormBulkOrderRepository) Update(ctx context.Context, aggregate *bulkorder.BulkOrder) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	loadedVersion := dto.Version
	dto.Version = loadedVersion + 1

	result := r.db.WithContext(ctx).Model(&BulkOrderDTO{}).
		Where("id = ? AND version = ?", dto.ID, loadedVersion).
		Select(bulkOrderColumns).
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewConcurrencyConflictError("bulk order", aggregate.ID().String())
	}

	if len(dto.Assignments) > 0 {
		err := r.db.WithContext(ctx).
			Clauses(clause.OnConflict{
				Columns:   []clause.Column{{Name: "id"}},
				UpdateAll: true,
			}).
			Create(&dto.Assignments).Error
		if err != nil {
			return err
		}
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a bulk order by ID, assignments included.
func (r *GormBulkOrderRepository) Get(
	ctx context.Context,
	id kernel.UUID,
) (*bulkorder.BulkOrder, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto BulkOrderDTO
	err := r.db.WithContext(ctx).
		Preload("Assignments").
		First(&dto, "id = ?", id.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("bulk order", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAllPendingExpired retrieves pending bulk orders whose confirmation
// deadline lies before now, oldest deadline first.
func (r *GormBulkOrderRepository) GetAllPendingExpired(
	ctx context.Context,
	now time.Time,
) ([]*bulkorder.BulkOrder, error) {
	var dtos []BulkOrderDTO
	err := r.db.WithContext(ctx).
		Preload("Assignments").
		Where("status = ? AND deadline < ?", int(bulkorder.Pending), now).
		Order("deadline").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	bulkOrders := make([]*bulkorder.BulkOrder, 0, len(dtos))
	for _, dto := range dtos {
		b, domainErr := toDomain(dto)
		if domainErr != nil {
			return nil, domainErr
		}
		bulkOrders = append(bulkOrders, b)
	}

	return bulkOrders, nil
}
