package queries

import (
	"errors"

	"laborders/internal/core/domain/model/kernel"
	"laborders/internal/pkg/errs"
	"laborders/internal/pkg/guard"
)

var (
	ErrAuthenticateUserQueryIsNotConstructed = errors.New(
		"AuthenticateUserQuery must be created via NewAuthenticateUserQuery constructor",
	)
)

// AuthenticateUserQuery verifies a user's credentials and produces an access
// token. Modeled as a query: it reads account state and derives a token
// without changing anything.
type AuthenticateUserQuery struct { //nolint:recvcheck //using for validation
	email    string
	password string

	guard guard.ConstructorGuard
}

// NewAuthenticateUserQuery creates a query to authenticate the given credentials.
func NewAuthenticateUserQuery(email, password string) (AuthenticateUserQuery, error) {
	query := AuthenticateUserQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		query.setEmail(email),
		query.setPassword(password),
	); err != nil {
		return AuthenticateUserQuery{}, err
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrAuthenticateUserQueryIsNotConstructed if validation fails.
func (q AuthenticateUserQuery) Validate() error {
	return q.guard.Validate(ErrAuthenticateUserQueryIsNotConstructed)
}

// Email returns the login email to check.
func (q AuthenticateUserQuery) Email() string {
	return q.email
}

// Password returns the plaintext password to check.
func (q AuthenticateUserQuery) Password() string {
	return q.password
}

func (q *AuthenticateUserQuery) setEmail(email string) error {
	if email == "" {
		return errs.NewValueIsRequiredError("email")
	}

	q.email = email
	return nil
}

func (q *AuthenticateUserQuery) setPassword(password string) error {
	if password == "" {
		return errs.NewValueIsRequiredError("password")
	}

	q.password = password
	return nil
}

// AuthenticateUserQueryResponse carries the issued token and the
// authenticated account's public fields.
type AuthenticateUserQueryResponse struct {
	Token string
	User  AuthenticatedUserResponse
}

// AuthenticatedUserResponse represents the account in the auth read model.
// The password hash never leaves the application layer.
type AuthenticatedUserResponse struct {
	ID    kernel.UUID
	Email string
}
