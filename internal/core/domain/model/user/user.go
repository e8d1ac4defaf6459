// Package user contains the user aggregate. Order creation only reads users
// to validate that an order's owner exists; all mutation happens through the
// user-management use cases.
package user

import (
	"errors"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/pkg/errs"
)

const (
	// UsernameMinLength and UsernameMaxLength bound the accepted username size.
	UsernameMinLength = 3
	UsernameMaxLength = 20
)

var (
	// ErrUserIsNotConstructed is returned when a User instance was not created
	// through NewUser or RestoreUser.
	ErrUserIsNotConstructed = errors.New("User must be created via NewUser constructor")
)

// User represents an account that can own orders.
type User struct {
	id       kernel.UUID
	username string

	isConstructed bool
}

// NewUser creates a User with a validated username (3-20 characters).
// Username uniqueness is enforced by the create-user use case, not here.
func NewUser(id kernel.UUID, username string) (*User, error) {
	u := &User{
		isConstructed: true,
	}

	if err := errors.Join(
		u.setID(id),
		u.setUsername(username),
	); err != nil {
		return nil, err
	}

	return u, nil
}

// RestoreUser rehydrates a User from persistence.
func RestoreUser(id kernel.UUID, username string) (*User, error) {
	return NewUser(id, username)
}

// Validate ensures the User was built through a constructor.
func (u *User) Validate() error {
	if u == nil || !u.isConstructed {
		return ErrUserIsNotConstructed
	}

	return nil
}

// IsEqual compares two users by identifier.
func (u *User) IsEqual(other *User) bool {
	return other != nil && u.id.IsEqual(other.id)
}

// ID returns the user's unique identifier.
func (u *User) ID() kernel.UUID {
	return u.id
}

// Username returns the display name.
func (u *User) Username() string {
	return u.username
}

func (u *User) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	u.id = id
	return nil
}

func (u *User) setUsername(username string) error {
	if username == "" {
		return errs.NewValueIsRequiredError("username")
	}
	if len(username) < UsernameMinLength || len(username) > UsernameMaxLength {
		return errs.NewValueIsOutOfRangeError("username length", len(username), UsernameMinLength, UsernameMaxLength)
	}
	u.username = username
	return nil
}
