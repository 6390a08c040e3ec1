package usecase

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
)

const publicTokenBytes = 32

// generatePublicToken returns 256 bits of randomness, URL-safe base64 without padding.
func generatePublicToken() (string, error) {
	b := make([]byte, publicTokenBytes)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("generate public token: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}
