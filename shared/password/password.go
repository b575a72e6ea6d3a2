package password

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

const (
	// DefaultCost is the bcrypt cost used for hashes made at startup.
	DefaultCost = bcrypt.DefaultCost
	// MaxLength is the longest password bcrypt accepts.
	MaxLength = 72
)

var (
	ErrInvalidPassword   = errors.New("invalid password")
	ErrEmptyPassword     = errors.New("password cannot be empty")
	ErrPasswordTooLong   = errors.New("password longer than 72 bytes")
	ErrMalformedHash     = errors.New("malformed bcrypt hash")
	ErrVerifyingPassword = errors.New("error verifying password")
)

// Hash generates a bcrypt hash of the password.
func Hash(password string) (string, error) {
	switch {
	case password == "":
		return "", ErrEmptyPassword
	case len(password) > MaxLength:
		return "", ErrPasswordTooLong
	}

	bytes, err := bcrypt.GenerateFromPassword([]byte(password), DefaultCost)
	if err != nil {
		return "", fmt.Errorf("hashing password: %w", err)
	}

	return string(bytes), nil
}

// FromConfig returns the admin credential hash. A configured hash wins over the plain password
// and must be a well formed bcrypt hash.
func FromConfig(plain, hash string) (string, error) {
	if hash == "" {
		return Hash(plain)
	}

	if _, err := bcrypt.Cost([]byte(hash)); err != nil {
		return "", fmt.Errorf("%w: %v", ErrMalformedHash, err)
	}

	return hash, nil
}

// Verify checks the candidate password against hash. A mismatch yields ErrInvalidPassword.
func Verify(password, hash string) error {
	if password == "" || hash == "" {
		return ErrInvalidPassword
	}

	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	if err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return ErrInvalidPassword
		}

		return fmt.Errorf("%w: %v", ErrVerifyingPassword, err)
	}

	return nil
}
