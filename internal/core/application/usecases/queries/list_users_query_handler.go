package queries

import (
	"context"

	"parcelpilot/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ListUsersQueryHandler retrieves account listings.
type ListUsersQueryHandler struct {
	db *gorm.DB
}

// NewListUsersQueryHandler creates a handler for account listing queries.
func NewListUsersQueryHandler(db *gorm.DB) ListUsersQueryHandler {
	return ListUsersQueryHandler{db: db}
}

// Handle executes the query and returns accounts sorted by creation time,
// newest first.
func (h ListUsersQueryHandler) Handle(
	ctx context.Context,
	query ListUsersQuery,
) ([]UserResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	users := make([]UserResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			email,
			role,
			created_at,
			last_login_at
		FROM users
		WHERE (? = '' OR role = ?)
		ORDER BY created_at DESC
	`, query.Role(), query.Role()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var u UserResponse
		var id uuid.UUID

		err = rows.Scan(
			&id,
			&u.Name,
			&u.Email,
			&u.Role,
			&u.CreatedAt,
			&u.LastLoginAt,
		)
		if err != nil {
			return nil, err
		}

		userID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		u.ID = userID
		users = append(users, u)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return users, nil
}
