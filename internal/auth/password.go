// Package auth holds the identity primitives: password hashing, bearer
// tokens, phone validation and one-time verification codes.
package auth

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// BcryptCost is the work factor for stored password hashes.
const BcryptCost = 10

// MinPasswordLength is the shortest accepted password, in characters.
const MinPasswordLength = 6

// MaxPasswordBytes is the bcrypt input limit. Longer passwords are
// rejected rather than silently truncated.
const MaxPasswordBytes = 72

// ErrPasswordMismatch is returned when a password does not match its hash.
var ErrPasswordMismatch = errors.New("password mismatch")

// HashPassword returns the bcrypt hash of pwd.
func HashPassword(pwd string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(pwd), BcryptCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hash), nil
}

// CheckPassword compares pwd with a stored hash.
func CheckPassword(hash, pwd string) error {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(pwd))
	if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		return ErrPasswordMismatch
	}
	if err != nil {
		return fmt.Errorf("check password: %w", err)
	}
	return nil
}

// ValidPassword reports whether pwd meets the minimum length rule.
func ValidPassword(pwd string) bool {
	return len([]rune(pwd)) >= MinPasswordLength
}

// PasswordTooLong reports whether pwd exceeds what bcrypt can hash.
func PasswordTooLong(pwd string) bool {
	return len(pwd) > MaxPasswordBytes
}
