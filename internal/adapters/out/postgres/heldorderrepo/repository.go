package heldorderrepo

import (
	"context"
	"errors"

	"digisales/internal/core/domain/model/heldorder"
	"digisales/internal/core/domain/model/kernel"
	"digisales/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormHeldOrderRepository implements HeldOrderRepository using GORM.
// Requires a connection opened with TranslateError so that unique-index
// violations surface as gorm.ErrDuplicatedKey.
type GormHeldOrderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormHeldOrderRepository creates a new GORM held-order repository.
func NewGormHeldOrderRepository(db *gorm.DB, tracker aggregateTracker) *GormHeldOrderRepository {
	return &GormHeldOrderRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new held order with its line records.
// A lost uniqueness race on order_name comes back as a NameConflictError.
func (r *GormHeldOrderRepository) Add(ctx context.Context, aggregate *heldorder.HeldOrder) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return errs.NewNameConflictErrorWithCause("orderName", aggregate.OrderName(), err)
		}
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update persists the status of an existing held order.
// Lines are immutable after creation, so only the header is touched.
func (r *GormHeldOrderRepository) Update(ctx context.Context, aggregate *heldorder.HeldOrder) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).
		Model(&HeldOrderDTO{}).
		Where("id = ?", aggregate.ID().Bytes()).
		Update("status", aggregate.Status().String())
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("heldOrder", aggregate.OrderName())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// GetByName retrieves a held order with its lines in cart position order.
func (r *GormHeldOrderRepository) GetByName(ctx context.Context, orderName string) (*heldorder.HeldOrder, error) {
	var dto HeldOrderDTO
	err := r.db.WithContext(ctx).
		Preload("Lines", func(db *gorm.DB) *gorm.DB {
			return db.Order("held_order_lines.position ASC")
		}).
		First(&dto, "order_name = ?", orderName).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("heldOrder", orderName)
		}
		return nil, err
	}

	return toDomain(dto)
}

// DeleteByName removes a held order; its lines go with it via the cascade
// constraint.
func (r *GormHeldOrderRepository) DeleteByName(ctx context.Context, orderName string) error {
	result := r.db.WithContext(ctx).
		Where("order_name = ?", orderName).
		Delete(&HeldOrderDTO{})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("heldOrder", orderName)
	}

	return nil
}
