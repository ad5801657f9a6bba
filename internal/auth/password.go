package auth

import (
	"crypto/sha256"
	"encoding/hex"
)

// HashPassword returns the lowercase hex SHA-256 digest of password. Login
// matches users by digest equality, so the digest must be deterministic;
// this mirrors the digest the database enforced historically.
func HashPassword(password string) string {
	sum := sha256.Sum256([]byte(password))
	return hex.EncodeToString(sum[:])
}
