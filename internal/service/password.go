package service

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// HashPassword produces a salted, non-deterministic stored form: hashing
// the same password twice yields two different strings that both verify.
func HashPassword(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// CheckPassword reports whether password matches the stored form. A
// malformed stored form is simply a mismatch, never an error.
func CheckPassword(password, storedForm string) bool {
	return bcrypt.CompareHashAndPassword([]byte(storedForm), []byte(password)) == nil
}

// newRefreshToken returns an opaque URL-safe token with 32 bytes of entropy.
func newRefreshToken() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to generate refresh token: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(buf), nil
}

// hashRefreshToken digests a raw refresh token for storage. The digest is
// deterministic so the token row can be found with a single indexed lookup.
func hashRefreshToken(raw string) string {
	sum := sha256.Sum256([]byte(raw))
	return hex.EncodeToString(sum[:])
}
