package security

import (
	"crypto/rand"
	"encoding/base64"
)

// NewSessionToken returns 32 bytes of entropy encoded for cookie transport.
func NewSessionToken() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(buf), nil
}
