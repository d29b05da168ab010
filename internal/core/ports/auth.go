package ports

import (
	"laborders/internal/core/domain/model/kernel"
)

// PasswordHasher produces and verifies one-way password hashes.
// The core never sees the hashing algorithm; the concrete adapter decides.
type PasswordHasher interface {
	// Hash derives a one-way hash from a plaintext password.
	Hash(password string) (string, error)

	// Compare reports whether the plaintext password matches the hash.
	Compare(hash, password string) bool
}

// TokenIssuer issues and verifies bearer tokens for authenticated users.
type TokenIssuer interface {
	// Issue creates a signed token whose subject is the user's identity.
	Issue(userID kernel.UUID) (string, error)

	// Verify validates a token and returns the user identity it was issued
	// for. Implementations surface expiry as a distinct error so transports
	// can report it separately from other validation failures.
	Verify(token string) (kernel.UUID, error)
}
