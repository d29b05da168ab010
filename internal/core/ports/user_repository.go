package ports

import (
	"context"

	"laborders/internal/core/domain/model/kernel"
	"laborders/internal/core/domain/model/user"
)

// UserRepository defines the persistence contract for user aggregates.
// The storage engine owns the email uniqueness constraint: Add returns an
// ObjectAlreadyExistsError when the email is already taken.
type UserRepository interface {
	// Add persists a new user aggregate to storage.
	Add(ctx context.Context, aggregate *user.User) error

	// Get retrieves a user aggregate by its unique identifier.
	// Returns an ObjectNotFoundError if no user exists for the identity.
	Get(ctx context.Context, id kernel.UUID) (*user.User, error)

	// GetByEmail retrieves a user aggregate by email address.
	// Returns an ObjectNotFoundError if no user is registered with the email.
	GetByEmail(ctx context.Context, email string) (*user.User, error)
}
