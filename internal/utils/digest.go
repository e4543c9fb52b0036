package utils

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
)

// SHA256Hex concatenates parts and returns the hex encoded SHA-256 digest.
func SHA256Hex(parts ...string) string {
	sum := sha256.Sum256([]byte(strings.Join(parts, "")))
	return hex.EncodeToString(sum[:])
}
