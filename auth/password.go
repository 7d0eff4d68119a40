package auth

import (
	"crypto/sha256"
	"encoding/hex"
)

// HashPassword returns the hex SHA-256 digest of a password.
//
// The digest is deliberately unsalted: login performs an equality lookup
// against the stored hash, and existing credentials were written with
// this exact scheme. Changing it requires a migration of stored hashes.
func HashPassword(password string) string {
	sum := sha256.Sum256([]byte(password))
	return hex.EncodeToString(sum[:])
}
