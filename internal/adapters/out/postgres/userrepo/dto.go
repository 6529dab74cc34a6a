// Package userrepo persists login accounts in PostgreSQL.
package userrepo

import (
	"courierdesk/internal/core/domain/model/user"
)

type UserDTO struct {
	NationalID string `gorm:"primaryKey"`
	Password   string
	Role       string
}

func (UserDTO) TableName() string {
	return "users"
}

func fromDomain(u *user.User) UserDTO {
	return UserDTO{
		NationalID: u.ID(),
		Password:   u.Password(),
		Role:       u.Role().String(),
	}
}

func toDomain(dto UserDTO) (*user.User, error) {
	return user.NewUser(dto.NationalID, dto.Password, user.ParseRole(dto.Role))
}
