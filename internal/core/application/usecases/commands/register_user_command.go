package commands

import (
	"errors"

	"laborders/internal/core/domain/model/kernel"
	"laborders/internal/pkg/errs"
	"laborders/internal/pkg/guard"
)

var (
	ErrRegisterUserCommandIsNotConstructed = errors.New(
		"RegisterUserCommand must be created via NewRegisterUserCommand constructor",
	)
)

// RegisterUserCommand represents a request to create a user account.
// Carries the plaintext password; hashing happens in the handler so the
// command stays transport-shaped.
type RegisterUserCommand struct { //nolint:recvcheck //using for validation
	userID   kernel.UUID
	email    string
	password string

	guard guard.ConstructorGuard
}

// NewRegisterUserCommand creates a command to register a new user.
// Validates that the user ID is valid and email/password are non-empty.
func NewRegisterUserCommand(userID kernel.UUID, email, password string) (RegisterUserCommand, error) {
	command := RegisterUserCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setUserID(userID),
		command.setEmail(email),
		command.setPassword(password),
	); err != nil {
		return RegisterUserCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrRegisterUserCommandIsNotConstructed if validation fails.
func (c RegisterUserCommand) Validate() error {
	return c.guard.Validate(ErrRegisterUserCommandIsNotConstructed)
}

// UserID returns the identity the new user will be created under.
func (c RegisterUserCommand) UserID() kernel.UUID {
	return c.userID
}

// Email returns the login email of the account.
func (c RegisterUserCommand) Email() string {
	return c.email
}

// Password returns the plaintext password to hash.
func (c RegisterUserCommand) Password() string {
	return c.password
}

func (c *RegisterUserCommand) setUserID(userID kernel.UUID) error {
	if err := userID.Validate(); err != nil {
		return err
	}

	c.userID = userID
	return nil
}

func (c *RegisterUserCommand) setEmail(email string) error {
	if email == "" {
		return errs.NewValueIsRequiredError("email")
	}

	c.email = email
	return nil
}

func (c *RegisterUserCommand) setPassword(password string) error {
	if password == "" {
		return errs.NewValueIsRequiredError("password")
	}

	c.password = password
	return nil
}
