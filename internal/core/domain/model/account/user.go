// Package account contains the User entity and its role. A User and a Rider
// sharing an email are the same human in two roles; role writes are separate
// from the lifecycle transactions (the sync points are documented on the
// commands that perform them).
package account

import (
	"errors"
	"fmt"
	"time"

	"parcelpilot/internal/core/domain/model/kernel"
	"parcelpilot/internal/pkg/errs"
)

// ErrUserIsNotConstructed is returned when a User instance was not created
// through NewUser or RestoreUser.
var ErrUserIsNotConstructed = errors.New("User must be created via NewUser constructor")

// Role is the capability level of a caller: user, rider or admin.
type Role int

const (
	// UnknownRole represents an invalid or undefined role.
	UnknownRole Role = iota

	// RoleUser is the default role of a registered account.
	RoleUser

	// RoleRider is granted when a rider application is accepted.
	RoleRider

	// RoleAdmin is granted and revoked by other admins.
	RoleAdmin
)

// RoleFromString parses the storage/wire form of a role.
func RoleFromString(s string) (Role, error) {
	switch s {
	case "user":
		return RoleUser, nil
	case "rider":
		return RoleRider, nil
	case "admin":
		return RoleAdmin, nil
	default:
		return UnknownRole, errs.NewValueIsInvalidErrorWithCause(
			"role", fmt.Errorf("%q is not a valid role", s))
	}
}

// Validate checks that the role is user, rider or admin.
func (r Role) Validate() error {
	if r != RoleUser && r != RoleRider && r != RoleAdmin {
		return errs.NewValueIsInvalidErrorWithCause(
			"role", fmt.Errorf("%d is not a valid role", r))
	}
	return nil
}

// String returns the wire form of the role.
func (r Role) String() string {
	switch r {
	case RoleUser:
		return "user"
	case RoleRider:
		return "rider"
	case RoleAdmin:
		return "admin"
	default:
		return "Unknown"
	}
}

// User is an account known to the service, identified by its unique email.
type User struct {
	id          kernel.UUID
	name        string
	email       string
	role        Role
	createdAt   time.Time
	lastLoginAt time.Time

	isConstructed bool
}

// NewUser creates an account with the default user role. Creation time also
// seeds the last-login timestamp.
func NewUser(id kernel.UUID, name, email string, createdAt time.Time) (*User, error) {
	u := &User{
		role:          RoleUser,
		createdAt:     createdAt,
		lastLoginAt:   createdAt,
		isConstructed: true,
	}

	if err := errors.Join(
		u.setID(id),
		u.setEmail(email),
	); err != nil {
		return nil, err
	}
	u.name = name

	return u, nil
}

// RestoreUser reconstructs an account from persistence.
func RestoreUser(
	id kernel.UUID,
	name, email string,
	role Role,
	createdAt, lastLoginAt time.Time,
) (*User, error) {
	u := &User{
		name:          name,
		role:          role,
		createdAt:     createdAt,
		lastLoginAt:   lastLoginAt,
		isConstructed: true,
	}

	if err := errors.Join(
		u.setID(id),
		u.setEmail(email),
		role.Validate(),
	); err != nil {
		return nil, err
	}

	return u, nil
}

// Validate ensures the User was created through a constructor.
func (u *User) Validate() error {
	if u == nil || !u.isConstructed {
		return ErrUserIsNotConstructed
	}
	return nil
}

// ID returns the account's unique identifier.
func (u *User) ID() kernel.UUID {
	return u.id
}

// Name returns the account's display name.
func (u *User) Name() string {
	return u.name
}

// Email returns the unique account email.
func (u *User) Email() string {
	return u.email
}

// Role returns the account's capability level.
func (u *User) Role() Role {
	return u.role
}

// CreatedAt returns when the account was first seen.
func (u *User) CreatedAt() time.Time {
	return u.createdAt
}

// LastLoginAt returns the most recent login.
func (u *User) LastLoginAt() time.Time {
	return u.lastLoginAt
}

// SetRole changes the account's capability level.
func (u *User) SetRole(role Role) error {
	if err := role.Validate(); err != nil {
		return err
	}
	u.role = role
	return nil
}

// TouchLogin records a login at the given time.
func (u *User) TouchLogin(at time.Time) {
	u.lastLoginAt = at
}

func (u *User) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	u.id = id
	return nil
}

func (u *User) setEmail(email string) error {
	if email == "" {
		return errs.NewValueIsRequiredError("user email")
	}
	u.email = email
	return nil
}
