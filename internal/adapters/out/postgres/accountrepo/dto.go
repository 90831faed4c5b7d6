// Package accountrepo provides data transfer objects and mapping functions
// for user account persistence.
package accountrepo

import (
	"time"

	"parcelpilot/internal/core/domain/model/account"
	"parcelpilot/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// UserDTO represents the database structure for persisting user accounts.
type UserDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name        string    `gorm:"type:varchar(255);not null"`
	Email       string    `gorm:"type:varchar(255);not null;uniqueIndex"`
	Role        string    `gorm:"type:varchar(32);not null;index"`
	CreatedAt   time.Time `gorm:"not null"`
	LastLoginAt time.Time `gorm:"not null"`
}

// TableName overrides GORM's default naming to use "users".
func (UserDTO) TableName() string {
	return "users"
}

// fromDomain converts a user account to its database representation.
func fromDomain(user *account.User) UserDTO {
	return UserDTO{
		ID:          user.ID().Bytes(),
		Name:        user.Name(),
		Email:       user.Email(),
		Role:        user.Role().String(),
		CreatedAt:   user.CreatedAt(),
		LastLoginAt: user.LastLoginAt(),
	}
}

// toDomain converts a database DTO back to a user account.
func toDomain(dto UserDTO) (*account.User, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	role, err := account.RoleFromString(dto.Role)
	if err != nil {
		return nil, err
	}

	return account.RestoreUser(id, dto.Name, dto.Email, role, dto.CreatedAt, dto.LastLoginAt)
}
