// Package user provides the User aggregate for authentication flows.
// A User is an identity plus credential holder: it carries an email and a
// one-way password hash. The hash is produced outside the domain (by the
// password hasher port); the aggregate never sees a plaintext password.
package user

import (
	"errors"

	"laborders/internal/core/domain/model/kernel"
	"laborders/internal/pkg/errs"
)

var (
	// ErrUserIsNotConstructed is returned when a User instance was not created
	// through NewUser or RestoreUser.
	ErrUserIsNotConstructed = errors.New("User must be created via NewUser or RestoreUser")
)

// User represents a registered account.
//
// Email uniqueness is not enforced by the aggregate itself; it is delegated
// to the repository's unique index, which is the only place that can decide
// it atomically.
type User struct {
	id           kernel.UUID
	email        string
	passwordHash string

	isConstructed bool
}

// NewUser creates a User from an already-hashed credential.
// Email and passwordHash must be non-empty.
func NewUser(id kernel.UUID, email, passwordHash string) (*User, error) {
	user := &User{
		isConstructed: true,
	}

	if err := errors.Join(
		user.setID(id),
		user.setEmail(email),
		user.setPasswordHash(passwordHash),
	); err != nil {
		return nil, err
	}

	return user, nil
}

// RestoreUser reconstructs a User from persistence.
// It applies the same validation as NewUser.
func RestoreUser(id kernel.UUID, email, passwordHash string) (*User, error) {
	return NewUser(id, email, passwordHash)
}

// Validate ensures the User instance was properly constructed.
func (u *User) Validate() error {
	if u == nil || !u.isConstructed {
		return ErrUserIsNotConstructed
	}

	return nil
}

// IsEqual compares two users by their unique identifiers.
func (u *User) IsEqual(other *User) bool {
	return other != nil && u.id.IsEqual(other.id)
}

// ID returns the user's unique identifier.
func (u *User) ID() kernel.UUID {
	return u.id
}

// Email returns the user's email address.
func (u *User) Email() string {
	return u.email
}

// PasswordHash returns the one-way hash of the user's password.
func (u *User) PasswordHash() string {
	return u.passwordHash
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
		return errs.NewValueIsRequiredError("email")
	}
	u.email = email
	return nil
}

func (u *User) setPasswordHash(passwordHash string) error {
	if passwordHash == "" {
		return errs.NewValueIsRequiredError("password hash")
	}
	u.passwordHash = passwordHash
	return nil
}
