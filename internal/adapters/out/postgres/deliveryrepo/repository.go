package deliveryrepo

import (
	"context"
	"errors"
	"time"

	"couriermanagement/internal/core/domain/model/delivery"
	"couriermanagement/internal/core/domain/model/kernel"
	"couriermanagement/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormDeliveryRepository implements DeliveryRepository using GORM.
type GormDeliveryRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormDeliveryRepository creates a new GORM delivery repository.
func NewGormDeliveryRepository(db *gorm.DB, tracker aggregateTracker) *GormDeliveryRepository {
	return &GormDeliveryRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new delivery to the database.
func (r *GormDeliveryRepository) Add(ctx context.Context, aggregate *delivery.Delivery) error {
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

// Update saves an existing delivery to the database.
func (r *GormDeliveryRepository) Update(ctx context.Context, aggregate *delivery.Delivery) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&DeliveryDTO{}).Where("id = ?", dto.ID).Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Remove deletes a delivery from the database.
func (r *GormDeliveryRepository) Remove(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Delete(&DeliveryDTO{}, "id = ?", id.Bytes())
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("delivery", id.String())
	}

	return nil
}

// Get retrieves a delivery by ID.
func (r *GormDeliveryRepository) Get(ctx context.Context, id kernel.UUID) (*delivery.Delivery, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto DeliveryDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("delivery", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetByCourierAndDate retrieves the courier's non-cancelled deliveries on the
// given date. These rows are the conflict snapshot for candidate validation.
func (r *GormDeliveryRepository) GetByCourierAndDate(
	ctx context.Context,
	courierID kernel.UUID,
	date kernel.Date,
) ([]*delivery.Delivery, error) {
	if err := errors.Join(courierID.Validate(), date.Validate()); err != nil {
		return nil, err
	}

	var dtos []DeliveryDTO
	err := r.db.WithContext(ctx).
		Find(&dtos, "courier_id = ? AND delivery_date = ? AND status <> ?",
			courierID.Bytes(), date.Time(), delivery.Cancelled.String()).Error
	if err != nil {
		return nil, err
	}

	return toDomainSlice(dtos)
}

// GetByVehicleAndDate retrieves the vehicle's non-cancelled deliveries on the
// given date.
func (r *GormDeliveryRepository) GetByVehicleAndDate(
	ctx context.Context,
	vehicleID kernel.UUID,
	date kernel.Date,
) ([]*delivery.Delivery, error) {
	if err := errors.Join(vehicleID.Validate(), date.Validate()); err != nil {
		return nil, err
	}

	var dtos []DeliveryDTO
	err := r.db.WithContext(ctx).
		Find(&dtos, "vehicle_id = ? AND delivery_date = ? AND status <> ?",
			vehicleID.Bytes(), date.Time(), delivery.Cancelled.String()).Error
	if err != nil {
		return nil, err
	}

	return toDomainSlice(dtos)
}

// GetByDates retrieves all non-cancelled deliveries on the given dates.
func (r *GormDeliveryRepository) GetByDates(
	ctx context.Context,
	dates []kernel.Date,
) ([]*delivery.Delivery, error) {
	if len(dates) == 0 {
		return []*delivery.Delivery{}, nil
	}

	days := make([]time.Time, 0, len(dates))
	for _, date := range dates {
		if err := date.Validate(); err != nil {
			return nil, err
		}
		days = append(days, date.Time())
	}

	var dtos []DeliveryDTO
	err := r.db.WithContext(ctx).
		Find(&dtos, "delivery_date IN ? AND status <> ?", days, delivery.Cancelled.String()).Error
	if err != nil {
		return nil, err
	}

	return toDomainSlice(dtos)
}

// GetAllDue retrieves Created deliveries whose dispatch time is at or before
// now. Past delivery days qualify wholesale; today's rows qualify once the
// window start minute has been reached.
func (r *GormDeliveryRepository) GetAllDue(ctx context.Context, now time.Time) ([]*delivery.Delivery, error) {
	utc := now.UTC()
	today := kernel.DateFromTime(utc).Time()
	minutes := utc.Hour()*60 + utc.Minute()

	var dtos []DeliveryDTO
	err := r.db.WithContext(ctx).
		Find(&dtos, "status = ? AND (delivery_date < ? OR (delivery_date = ? AND window_start <= ?))",
			delivery.Created.String(), today, today, minutes).Error
	if err != nil {
		return nil, err
	}

	return toDomainSlice(dtos)
}

func toDomainSlice(dtos []DeliveryDTO) ([]*delivery.Delivery, error) {
	deliveries := make([]*delivery.Delivery, 0, len(dtos))
	for _, dto := range dtos {
		d, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		deliveries = append(deliveries, d)
	}

	return deliveries, nil
}
