package courierrepo

import (
	"context"
	"errors"

	"courierdesk/internal/core/domain/model/courier"
	"courierdesk/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormCourierRepository implements ports.CourierRepository using GORM.
type GormCourierRepository struct {
	db *gorm.DB
}

func NewGormCourierRepository(db *gorm.DB) *GormCourierRepository {
	return &GormCourierRepository{db: db}
}

// Save inserts the courier or overwrites the row with the same national ID.
func (r *GormCourierRepository) Save(ctx context.Context, aggregate *courier.Courier) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{UpdateAll: true}).Create(&dto).Error
}

func (r *GormCourierRepository) FindAll(ctx context.Context) ([]*courier.Courier, error) {
	var dtos []CourierDTO
	if err := r.db.WithContext(ctx).Order("national_id").Find(&dtos).Error; err != nil {
		return nil, err
	}

	couriers := make([]*courier.Courier, 0, len(dtos))
	for _, dto := range dtos {
		c, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		couriers = append(couriers, c)
	}
	return couriers, nil
}

func (r *GormCourierRepository) FindByID(ctx context.Context, id string) (*courier.Courier, error) {
	var dto CourierDTO
	if err := r.db.WithContext(ctx).First(&dto, "national_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundErrorWithCause("courier", id, err)
		}
		return nil, err
	}

	return toDomain(dto)
}

func (r *GormCourierRepository) DeleteByID(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&CourierDTO{}, "national_id = ?", id).Error
}

// UpdateAvailability rewrites the availability column only.
func (r *GormCourierRepository) UpdateAvailability(ctx context.Context, id string, available bool) error {
	result := r.db.WithContext(ctx).
		Model(&CourierDTO{}).
		Where("national_id = ?", id).
		Update("available", available)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("courier", id)
	}
	return nil
}
