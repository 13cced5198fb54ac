// Package pwhash hashes admin passwords with PBKDF2-SHA256. The stored
// format is "iterations$salt$hash" with base64 raw url encoding, so the
// parameters travel with the hash and can be raised later without
// invalidating existing rows.
package pwhash

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/base64"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/crypto/pbkdf2"
)

const keyLength = 32

var ErrMismatch = errors.New("password does not match")

type PasswordHasher struct {
	saltSize   int
	iterations int
}

func New(saltSize, iterations int) (*PasswordHasher, error) {
	if saltSize < 8 {
		return nil, fmt.Errorf("salt size too small: %d", saltSize)
	}
	if iterations < 1000 {
		return nil, fmt.Errorf("iteration count too small: %d", iterations)
	}
	return &PasswordHasher{
		saltSize:   saltSize,
		iterations: iterations,
	}, nil
}

func (ph *PasswordHasher) HashPassword(password string) (string, error) {
	salt := make([]byte, ph.saltSize)
	if _, err := rand.Read(salt); err != nil {
		return "", fmt.Errorf("can't generate salt: %w", err)
	}
	key := pbkdf2.Key([]byte(password), salt, ph.iterations, keyLength, sha256.New)
	enc := base64.RawURLEncoding
	return fmt.Sprintf("%d$%s$%s",
		ph.iterations,
		enc.EncodeToString(salt),
		enc.EncodeToString(key),
	), nil
}

// Validate checks the password against a stored hash using the iteration
// count and salt embedded in the hash itself.
func (ph *PasswordHasher) Validate(password, hash string) error {
	parts := strings.Split(hash, "$")
	if len(parts) != 3 {
		return fmt.Errorf("malformed password hash")
	}
	iterations, err := strconv.Atoi(parts[0])
	if err != nil || iterations <= 0 {
		return fmt.Errorf("malformed iteration count in hash")
	}
	enc := base64.RawURLEncoding
	salt, err := enc.DecodeString(parts[1])
	if err != nil {
		return fmt.Errorf("malformed salt in hash")
	}
	want, err := enc.DecodeString(parts[2])
	if err != nil {
		return fmt.Errorf("malformed key in hash")
	}

	got := pbkdf2.Key([]byte(password), salt, iterations, len(want), sha256.New)
	if subtle.ConstantTimeCompare(got, want) != 1 {
		return ErrMismatch
	}
	return nil
}
