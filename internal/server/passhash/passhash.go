// Package passhash provides one-way, salted password hashing for stored
// credentials. Hashes use PBKDF2-SHA256 and are encoded as
// "pbkdf2:sha256:<iterations>$<salt>$<hexdigest>", so the stored string is
// self-describing and iteration counts can be raised without breaking
// existing records.
package passhash

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/pbkdf2"
)

const (
	iterations = 260000
	saltLength = 16
	hashLength = 32
)

// HashPassword returns an encoded PBKDF2-SHA256 hash string for the
// provided password, with a fresh random salt.
func HashPassword(password string) (string, error) {
	raw := make([]byte, saltLength)
	if _, err := rand.Read(raw); err != nil {
		return "", err
	}
	salt := hex.EncodeToString(raw)
	hash := pbkdf2.Key([]byte(password), []byte(salt), iterations, hashLength, sha256.New)
	encoded := fmt.Sprintf("pbkdf2:sha256:%d$%s$%s", iterations, salt, hex.EncodeToString(hash))
	return encoded, nil
}

// VerifyPassword compares a plaintext password with an encoded hash.
// It returns false, nil for a well-formed hash that does not match, and a
// non-nil error only when the stored hash cannot be parsed.
func VerifyPassword(encoded, password string) (bool, error) {
	if encoded == "" {
		return false, errors.New("empty hash")
	}
	parts := strings.Split(encoded, "$")
	if len(parts) != 3 {
		return false, errors.New("invalid hash format")
	}

	var iter int
	if _, err := fmt.Sscanf(parts[0], "pbkdf2:sha256:%d", &iter); err != nil {
		return false, fmt.Errorf("invalid hash header: %w", err)
	}
	if iter < 1 {
		return false, errors.New("invalid iteration count")
	}

	salt := parts[1]
	want, err := hex.DecodeString(parts[2])
	if err != nil {
		return false, fmt.Errorf("invalid hash digest: %w", err)
	}

	calc := pbkdf2.Key([]byte(password), []byte(salt), iter, len(want), sha256.New)
	return subtle.ConstantTimeCompare(calc, want) == 1, nil
}
