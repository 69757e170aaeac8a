package utils

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
)

// GenerateID builds a prefixed record id like "meal_a1b2c3d4e5f60718".
func GenerateID(prefix string) string {
	b := make([]byte, 8)
	_, _ = rand.Read(b)
	return fmt.Sprintf("%s_%s", prefix, hex.EncodeToString(b))
}

// GenerateRandomToken returns n random bytes hex-encoded.
func GenerateRandomToken(n int) string {
	b := make([]byte, n)
	_, _ = rand.Read(b)
	return hex.EncodeToString(b)
}
