package password

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

// MinLength is the shortest admin password accepted
const MinLength = 10

var ErrTooShort = errors.New("password is too short")

const cost = 12

// Hash hashes an admin password using bcrypt
func Hash(password string) (string, error) {
	if len(password) < MinLength {
		return "", ErrTooShort
	}
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	return string(bytes), err
}

// Verify compares password with hash
func Verify(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
