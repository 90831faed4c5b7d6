package queries

import (
	"context"
	"database/sql"
	"errors"

	"parcelpilot/internal/core/domain/model/kernel"
	"parcelpilot/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetUserQueryHandler retrieves single accounts by email.
type GetUserQueryHandler struct {
	db *gorm.DB
}

// NewGetUserQueryHandler creates a handler for account lookup queries.
func NewGetUserQueryHandler(db *gorm.DB) GetUserQueryHandler {
	return GetUserQueryHandler{db: db}
}

// Handle executes the query. Returns errs.ObjectNotFoundError when no
// account carries the requested email.
func (h GetUserQueryHandler) Handle(
	ctx context.Context,
	query GetUserQuery,
) (UserResponse, error) {
	if err := query.Validate(); err != nil {
		return UserResponse{}, err
	}

	var u UserResponse
	var id uuid.UUID

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			email,
			role,
			created_at,
			last_login_at
		FROM users
		WHERE email = ?
	`, query.Email()).Row()

	err := row.Scan(
		&id,
		&u.Name,
		&u.Email,
		&u.Role,
		&u.CreatedAt,
		&u.LastLoginAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return UserResponse{}, errs.NewObjectNotFoundError("userEmail", query.Email())
	}
	if err != nil {
		return UserResponse{}, err
	}

	userID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return UserResponse{}, err
	}
	u.ID = userID

	return u, nil
}
