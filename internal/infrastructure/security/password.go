// Package security hashes admin passwords.
//
// Stored format: base64(salt) + "$" + base64(PBKDF2-SHA256(password, salt)).
package security

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/pbkdf2"
)

const (
	saltLength = 16
	keyLength  = 32
	iterations = 100_000
)

var ErrEmptyPassword = errors.New("password is empty")

// HashPassword returns a salted "salt$hash" digest of password.
func HashPassword(password string) (string, error) {
	if password == "" {
		return "", ErrEmptyPassword
	}

	salt := make([]byte, saltLength)
	if _, err := rand.Read(salt); err != nil {
		return "", fmt.Errorf("generate salt: %w", err)
	}

	hash := pbkdf2.Key([]byte(password), salt, iterations, keyLength, sha256.New)
	return base64.RawStdEncoding.EncodeToString(salt) + "$" + base64.RawStdEncoding.EncodeToString(hash), nil
}

// CheckPassword reports whether password matches stored. Malformed digests
// never match.
func CheckPassword(password, stored string) bool {
	if password == "" || stored == "" {
		return false
	}

	saltStr, hashStr, ok := strings.Cut(stored, "$")
	if !ok {
		return false
	}
	salt, err := base64.RawStdEncoding.DecodeString(saltStr)
	if err != nil {
		return false
	}
	expected, err := base64.RawStdEncoding.DecodeString(hashStr)
	if err != nil || len(expected) == 0 {
		return false
	}

	hash := pbkdf2.Key([]byte(password), salt, iterations, len(expected), sha256.New)
	return subtle.ConstantTimeCompare(hash, expected) == 1
}
