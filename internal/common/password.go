package common

import (
	"golang.org/x/crypto/bcrypt"
)

// HashPassword hashes with bcrypt at the default cost. The salt is random,
// so two hashes of the same password differ.
func HashPassword(password string) (string, error) {
	hashedBytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashedBytes), nil
}

// CheckPassword returns nil iff password matches the hash. A mismatch is an
// error value, never a panic.
func CheckPassword(password, hashedPassword string) error {
	return bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password))
}
