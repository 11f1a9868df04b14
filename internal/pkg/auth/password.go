package auth

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// MaxPasswordBytes is the longest secret bcrypt can represent.
const MaxPasswordBytes = 72

var (
	// ErrCredentialMismatch reports a password that does not match the stored hash.
	ErrCredentialMismatch = errors.New("credential mismatch")
	// ErrPasswordTooLong reports a secret bcrypt would silently truncate.
	ErrPasswordTooLong = fmt.Errorf("password exceeds %d bytes", MaxPasswordBytes)
)

// PasswordHasher hashes the configured administrator secret and checks sign-in attempts against it.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Compare(hash string, password string) error
}

type BcryptHasher struct {
	cost int
}

// NewBcryptHasher creates BcryptHasher. Costs below bcrypt.MinCost fall back to bcrypt.DefaultCost.
func NewBcryptHasher(cost int) *BcryptHasher {
	if cost < bcrypt.MinCost {
		cost = bcrypt.DefaultCost
	}
	return &BcryptHasher{cost: cost}
}

func (h *BcryptHasher) Hash(password string) (string, error) {
	if len(password) > MaxPasswordBytes {
		return "", ErrPasswordTooLong
	}
	encoded, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", fmt.Errorf("hash credential: %w", err)
	}
	return string(encoded), nil
}

// Compare returns ErrCredentialMismatch for a wrong or overlong password and
// wraps any other bcrypt failure, such as a malformed hash.
func (h *BcryptHasher) Compare(hash string, password string) error {
	if len(password) > MaxPasswordBytes {
		return ErrCredentialMismatch
	}
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	switch {
	case err == nil:
		return nil
	case errors.Is(err, bcrypt.ErrMismatchedHashAndPassword):
		return ErrCredentialMismatch
	default:
		return fmt.Errorf("compare credential: %w", err)
	}
}
