package auth

import (
	"golang.org/x/crypto/bcrypt"
)

// MinBcryptCost is the lowest hashing cost the hasher accepts
const MinBcryptCost = 10

// PasswordHasher hashes and verifies passwords
type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(password, digest string) bool
}

// BcryptHasher is a PasswordHasher backed by bcrypt
type BcryptHasher struct {
	cost int
}

// NewBcryptHasher creates a hasher; costs below MinBcryptCost are raised to it
func NewBcryptHasher(cost int) *BcryptHasher {
	if cost < MinBcryptCost {
		cost = MinBcryptCost
	}
	return &BcryptHasher{cost: cost}
}

// Hash returns a salted bcrypt digest of password
func (h *BcryptHasher) Hash(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", err
	}
	return string(bytes), nil
}

// Verify reports whether password matches digest
func (h *BcryptHasher) Verify(password, digest string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(password)) == nil
}
