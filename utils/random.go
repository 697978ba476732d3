// utils/random.go
package utils

import (
	"crypto/rand"
	"encoding/hex"
)

// GenerateRandomString returns n bytes of randomness hex-encoded,
// used for stored file names.
func GenerateRandomString(n int) string {
	b := make([]byte, n)
	if _, err := rand.Read(b); err != nil {
		panic("failed to read random bytes")
	}
	return hex.EncodeToString(b)
}
