// Package userrepo provides data transfer objects and mapping functions
// for user persistence.
package userrepo

import (
	"time"

	"shop/internal/core/domain/model/kernel"
	"shop/internal/core/domain/model/user"
)

// UserDTO represents the database structure for persisting users.
type UserDTO struct {
	ID        int64 `gorm:"primaryKey;autoIncrement"`
	Name      string
	Email     string `gorm:"index"`
	Role      string
	CreatedAt time.Time
}

// TableName specifies the database table name for user entities.
func (UserDTO) TableName() string {
	return "users"
}

// fromDomain converts a user entity to its database representation.
// A zero ID is left for the database sequence to fill on insert.
func fromDomain(entity *user.User) UserDTO {
	var id int64
	if entity.ID().Validate() == nil {
		id = entity.ID().Int64()
	}

	return UserDTO{
		ID:        id,
		Name:      entity.Name(),
		Email:     entity.Email(),
		Role:      entity.Role(),
		CreatedAt: entity.CreatedAt(),
	}
}

// toDomain converts a database row to a user entity using RestoreUser.
func toDomain(dto UserDTO) (*user.User, error) {
	id, err := kernel.NewID(dto.ID)
	if err != nil {
		return nil, err
	}

	return user.RestoreUser(id, dto.Name, dto.Email, dto.Role, dto.CreatedAt)
}
