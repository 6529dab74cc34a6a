// Package courierrepo persists courier aggregates in PostgreSQL.
package courierrepo

import (
	"courierdesk/internal/core/domain/model/courier"
)

// CourierDTO is the couriers table row.
type CourierDTO struct {
	NationalID string `gorm:"primaryKey"`
	Name       string
	Phone      string
	Available  bool `gorm:"index"`
	Password   string
}

func (CourierDTO) TableName() string {
	return "couriers"
}

func fromDomain(c *courier.Courier) CourierDTO {
	return CourierDTO{
		NationalID: c.ID(),
		Name:       c.Name(),
		Phone:      c.Phone(),
		Available:  c.IsAvailable(),
		Password:   c.Password(),
	}
}

func toDomain(dto CourierDTO) (*courier.Courier, error) {
	return courier.RestoreCourier(dto.NationalID, dto.Name, dto.Phone, dto.Available, dto.Password)
}
