package clientrepo

import (
	"context"
	"errors"

	"courierdesk/internal/core/domain/model/client"
	"courierdesk/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormClientRepository implements ports.ClientRepository using GORM.
type GormClientRepository struct {
	db *gorm.DB
}

func NewGormClientRepository(db *gorm.DB) *GormClientRepository {
	return &GormClientRepository{db: db}
}

// Save inserts the client or overwrites the row with the same national ID.
func (r *GormClientRepository) Save(ctx context.Context, aggregate *client.Client) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{UpdateAll: true}).Create(&dto).Error
}

func (r *GormClientRepository) FindAll(ctx context.Context) ([]*client.Client, error) {
	var dtos []ClientDTO
	if err := r.db.WithContext(ctx).Order("national_id").Find(&dtos).Error; err != nil {
		return nil, err
	}

	clients := make([]*client.Client, 0, len(dtos))
	for _, dto := range dtos {
		c, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		clients = append(clients, c)
	}
	return clients, nil
}

func (r *GormClientRepository) FindByID(ctx context.Context, id string) (*client.Client, error) {
	var dto ClientDTO
	if err := r.db.WithContext(ctx).First(&dto, "national_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundErrorWithCause("client", id, err)
		}
		return nil, err
	}

	return toDomain(dto)
}

func (r *GormClientRepository) DeleteByID(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&ClientDTO{}, "national_id = ?", id).Error
}
