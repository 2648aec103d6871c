package otp

import (
	"crypto/hmac"
	"encoding/binary"
	"fmt"
)

// Defaults applied by the zero value of HOTPOptions and TOTPOptions.
const (
	// DefaultDigits is the standard 6-digit code length.
	DefaultDigits uint = 6
	// DefaultWindow is the number of forward counters probed during
	// HOTP validation when none is configured.
	DefaultWindow uint = 1
)

// HOTPOptions carries the parameters of counter-based generation and
// validation. The zero value selects 6 digits, SHA1, and a window of 1.
type HOTPOptions struct {
	// Digits is the length of the emitted code (1..MaxDigits).
	Digits uint
	// Algorithm is the HMAC digest.
	Algorithm Algorithm
	// Window is the number of counters past last probed by ValidateHOTP.
	Window uint
}

func (o HOTPOptions) digits() (uint, error) {
	if o.Digits == 0 {
		return DefaultDigits, nil
	}
	if o.Digits > MaxDigits {
		return 0, fmt.Errorf("%w: digits must be between 1 and %d", ErrInvalidParameter, MaxDigits)
	}
	return o.Digits, nil
}

// GenerateHOTP computes the RFC 4226 code for a secret and counter. The
// result is a decimal string of exactly opts.Digits characters; leading
// zeros are significant and preserved.
func GenerateHOTP(secret []byte, counter uint64, opts HOTPOptions) (string, error) {
	if len(secret) == 0 {
		return "", fmt.Errorf("%w: secret must not be empty", ErrInvalidSecret)
	}
	digits, err := opts.digits()
	if err != nil {
		return "", err
	}
	newHash, err := opts.Algorithm.hashFunc()
	if err != nil {
		return "", err
	}

	var msg [8]byte
	binary.BigEndian.PutUint64(msg[:], counter)
	mac := hmac.New(newHash, secret)
	mac.Write(msg[:])
	return truncate(mac.Sum(nil), digits), nil
}

// ValidateHOTP searches the counters last+1 through last+opts.Window, in
// increasing order, for one whose code matches the submitted value. On a
// match it returns the absolute counter that matched and true; the caller
// must persist that counter as the new last before trusting any further
// validation, which is what makes an accepted counter unrepeatable.
//
// last is the highest counter already accepted, or -1 if no code has ever
// been accepted for this secret. Counters at or below last are never
// probed. No match within the window returns false with a nil error.
func ValidateHOTP(code string, secret []byte, last int64, opts HOTPOptions) (uint64, bool, error) {
	if last < -1 {
		return 0, false, fmt.Errorf("%w: last counter must be >= -1", ErrInvalidParameter)
	}
	digits, err := opts.digits()
	if err != nil {
		return 0, false, err
	}
	if err := checkToken(code, digits); err != nil {
		return 0, false, err
	}
	window := opts.Window
	if window == 0 {
		window = DefaultWindow
	}

	next := uint64(last + 1)
	for i := uint64(0); i < uint64(window); i++ {
		counter := next + i
		candidate, err := GenerateHOTP(secret, counter, opts)
		if err != nil {
			return 0, false, err
		}
		if hmac.Equal([]byte(candidate), []byte(code)) {
			return counter, true, nil
		}
	}
	return 0, false, nil
}
