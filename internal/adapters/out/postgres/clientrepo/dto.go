// Package clientrepo persists client aggregates in PostgreSQL.
package clientrepo

import (
	"courierdesk/internal/core/domain/model/client"
)

// ClientDTO is the clients table row.
type ClientDTO struct {
	NationalID string `gorm:"primaryKey"`
	Name       string
	Phone      string
	Address    string
}

func (ClientDTO) TableName() string {
	return "clients"
}

func fromDomain(c *client.Client) ClientDTO {
	return ClientDTO{
		NationalID: c.ID(),
		Name:       c.Name(),
		Phone:      c.Phone(),
		Address:    c.Address(),
	}
}

func toDomain(dto ClientDTO) (*client.Client, error) {
	return client.RestoreClient(dto.NationalID, dto.Name, dto.Phone, dto.Address)
}
