package otp

import (
	"crypto/rand"
	"encoding/base32"
	"fmt"
	"strings"
	"unicode"
)

// DecodeSecret normalizes and base32-decodes a user-supplied secret.
// Lowercase input is accepted, whitespace anywhere in the string is
// ignored, and stripped "=" padding is restored before decoding. An
// empty or undecodable secret returns ErrInvalidSecret.
func DecodeSecret(secret string) ([]byte, error) {
	var b strings.Builder
	for _, r := range secret {
		if unicode.IsSpace(r) {
			continue
		}
		b.WriteRune(unicode.ToUpper(r))
	}
	s := b.String()
	if s == "" {
		return nil, fmt.Errorf("%w: secret must not be empty", ErrInvalidSecret)
	}
	if n := len(s) % 8; n != 0 {
		s += strings.Repeat("=", 8-n)
	}
	key, err := base32.StdEncoding.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("%w: secret must be valid base32: %v", ErrInvalidSecret, err)
	}
	if len(key) == 0 {
		return nil, fmt.Errorf("%w: secret must not be empty", ErrInvalidSecret)
	}
	return key, nil
}

// GenerateSecret generates a cryptographically random shared secret,
// returned as an unpadded base32 string suitable for DecodeSecret or
// the Config.Secret field.
func GenerateSecret() (string, error) {
	// 20 bytes (160 bits), the RFC 4226 recommended secret length.
	secret := make([]byte, 20)
	if _, err := rand.Read(secret); err != nil {
		return "", fmt.Errorf("otp: failed to generate random secret: %w", err)
	}
	return base32.StdEncoding.WithPadding(base32.NoPadding).EncodeToString(secret), nil
}
