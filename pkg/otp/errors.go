package otp

import "errors"

// Error kinds returned by this package. Validation functions additionally
// report "no match in window" as a plain false result, not an error.
var (
	// ErrInvalidSecret indicates an empty secret or one that does not
	// decode as base32 after normalization.
	ErrInvalidSecret = errors.New("otp: invalid secret")
	// ErrInvalidParameter indicates an out-of-range digit count, a
	// non-positive period, an unsupported algorithm, or a bad window.
	ErrInvalidParameter = errors.New("otp: invalid parameter")
	// ErrMalformedToken indicates a submitted code that is not a string
	// of exactly the configured number of decimal digits.
	ErrMalformedToken = errors.New("otp: malformed token")
	// ErrInvalidCode indicates the provided OTP code did not match.
	ErrInvalidCode = errors.New("otp: invalid code")
	// ErrInvalidConfig indicates the authenticator configuration is invalid.
	ErrInvalidConfig = errors.New("otp: invalid configuration")
	// ErrNilAuthenticator indicates a nil authenticator was used.
	ErrNilAuthenticator = errors.New("otp: authenticator is nil")
)
