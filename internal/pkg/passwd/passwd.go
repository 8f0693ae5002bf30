package passwd

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

const (
	DefaultCost    = 12
	MaxPasswordLen = 72 // bcrypt input limit
)

// Hash hashes a password using bcrypt with DefaultCost. The result is
// salted, so repeated calls with the same input produce different hashes.
func Hash(password string) (string, error) {
	if len(password) > MaxPasswordLen {
		return "", errors.New("password exceeds 72 bytes and would be truncated by bcrypt")
	}

	hashedBytes, err := bcrypt.GenerateFromPassword([]byte(password), DefaultCost)
	if err != nil {
		return "", err
	}

	return string(hashedBytes), nil
}

// Verify compares a plaintext password with a bcrypt hash. Any mismatch or
// malformed hash yields false, never an error.
func Verify(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}
