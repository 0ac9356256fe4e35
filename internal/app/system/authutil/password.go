// Package authutil provides credential hashing and verification.
//
// The store speaks to credentials only through the Scheme interface, so the
// storage format can change without touching the authentication contract:
// lookup by email, compare, and a failed compare is indistinguishable from a
// missing account.
package authutil

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// Password validation constants.
const (
	MinPasswordLength = 6
	MaxPasswordLength = 128
	BcryptCost        = 12
)

// Password validation errors.
var (
	ErrPasswordTooShort = errors.New("password must be at least 6 characters")
	ErrPasswordTooLong  = errors.New("password must be less than 128 characters")
)

// ValidatePassword checks if a password meets the length requirements.
func ValidatePassword(password string) error {
	if len(password) < MinPasswordLength {
		return ErrPasswordTooShort
	}
	if len(password) > MaxPasswordLength {
		return ErrPasswordTooLong
	}
	return nil
}

// Scheme hashes passwords for storage and verifies submitted passwords
// against the stored value.
type Scheme interface {
	// Hash returns the storage form of a password.
	Hash(password string) (string, error)
	// Verify reports whether password matches the stored value.
	Verify(password, stored string) bool
	// Name identifies the scheme in config and logs.
	Name() string
}

// NewScheme returns the scheme named in configuration: "plain" or "bcrypt".
func NewScheme(name string) (Scheme, error) {
	switch name {
	case "plain", "":
		return Plain{}, nil
	case "bcrypt":
		return Bcrypt{}, nil
	default:
		return nil, fmt.Errorf("unknown credential scheme %q", name)
	}
}

// Plain stores passwords verbatim. It preserves the legacy exact-match
// behavior and exists for data compatibility; prefer bcrypt for new
// deployments.
type Plain struct{}

func (Plain) Hash(password string) (string, error) { return password, nil }

func (Plain) Verify(password, stored string) bool { return password == stored }

func (Plain) Name() string { return "plain" }

// Bcrypt stores bcrypt hashes.
type Bcrypt struct{}

func (Bcrypt) Hash(password string) (string, error) {
	h, err := bcrypt.GenerateFromPassword([]byte(password), BcryptCost)
	if err != nil {
		return "", err
	}
	return string(h), nil
}

func (Bcrypt) Verify(password, stored string) bool {
	return bcrypt.CompareHashAndPassword([]byte(stored), []byte(password)) == nil
}

func (Bcrypt) Name() string { return "bcrypt" }
