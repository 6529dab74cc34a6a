package historyrepo

import (
	"context"
	"errors"
	"fmt"

	"courierdesk/internal/core/domain/model/history"
	"courierdesk/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormHistoryRepository implements ports.HistoryRepository using GORM.
type GormHistoryRepository struct {
	db *gorm.DB
}

func NewGormHistoryRepository(db *gorm.DB) *GormHistoryRepository {
	return &GormHistoryRepository{db: db}
}

// Add inserts the record. An existing row with the same ID is left untouched
// and reported as history.ErrRecordAlreadyExists.
func (r *GormHistoryRepository) Add(ctx context.Context, record *history.Record) error {
	if err := record.Validate(); err != nil {
		return err
	}

	dto := fromDomain(record)
	result := r.db.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return fmt.Errorf("%w: %s", history.ErrRecordAlreadyExists, record.ID())
	}
	return nil
}

func (r *GormHistoryRepository) FindAll(ctx context.Context) ([]*history.Record, error) {
	var dtos []RecordDTO
	if err := r.db.WithContext(ctx).Order("occurred_at NULLS FIRST").Order("id").Find(&dtos).Error; err != nil {
		return nil, err
	}

	records := make([]*history.Record, 0, len(dtos))
	for _, dto := range dtos {
		rec, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, nil
}

func (r *GormHistoryRepository) FindByID(ctx context.Context, id string) (*history.Record, error) {
	var dto RecordDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundErrorWithCause("history record", id, err)
		}
		return nil, err
	}

	return toDomain(dto)
}

func (r *GormHistoryRepository) DeleteByID(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&RecordDTO{}, "id = ?", id).Error
}
