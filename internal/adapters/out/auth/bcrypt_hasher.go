// Package auth provides the outbound adapters for credential hashing and
// access token issuing.
package auth

import (
	"golang.org/x/crypto/bcrypt"
)

// bcryptCost balances hashing time against brute-force resistance.
const bcryptCost = 10

// BcryptHasher implements PasswordHasher using bcrypt.
type BcryptHasher struct{}

// NewBcryptHasher creates a bcrypt-backed password hasher.
func NewBcryptHasher() BcryptHasher {
	return BcryptHasher{}
}

// Hash derives a salted bcrypt hash from the plaintext password.
func (BcryptHasher) Hash(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// Compare reports whether the plaintext password matches the stored hash.
func (BcryptHasher) Compare(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
