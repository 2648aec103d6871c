package otp

import (
	"context"
	"fmt"
	"strings"
	"time"
)

// Type represents the OTP algorithm type.
type Type string

const (
	// TypeTOTP represents Time-based OTP (RFC 6238).
	TypeTOTP Type = "totp"
	// TypeHOTP represents Counter-based OTP (RFC 4226).
	TypeHOTP Type = "hotp"
)

// Config holds OTP authenticator configuration.
type Config struct {
	// Type specifies the OTP type (TOTP or HOTP).
	Type Type
	// Secret is the base32-encoded shared secret key (required).
	// Lowercase and embedded whitespace are tolerated.
	Secret string
	// Digits specifies the number of digits in the OTP code (1..10).
	// Default: 6
	Digits uint
	// Period specifies the time step in seconds for TOTP.
	// Default: 30
	Period uint
	// Counter specifies the next expected counter value for HOTP
	// when validating via Authenticate.
	// Default: 0
	Counter uint64
	// Algorithm specifies the hash algorithm to use.
	// Default: SHA1
	Algorithm Algorithm
	// Window specifies how many counters past the caller's last
	// accepted value ValidateCounter probes (HOTP drift tolerance).
	// Default: 1
	Window uint
	// Skew specifies the number of adjacent time steps accepted during
	// TOTP validation (tolerance for clock drift).
	// Default: 0 (only the current step)
	Skew uint
	// SkewDirection selects which side(s) of the current time step
	// Skew applies to. Default: both sides.
	SkewDirection SkewDirection
}

// validate checks that the configuration is valid.
func (c Config) validate() error {
	if c.Type != TypeTOTP && c.Type != TypeHOTP {
		return fmt.Errorf("%w: type must be 'totp' or 'hotp'", ErrInvalidConfig)
	}

	if _, err := DecodeSecret(c.Secret); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	if c.Digits > MaxDigits {
		return fmt.Errorf("%w: digits must be between 1 and %d", ErrInvalidConfig, MaxDigits)
	}

	if _, err := c.Algorithm.hashFunc(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	return nil
}

// Authenticator validates OTP codes against a single shared secret.
// It is safe for concurrent use; for HOTP the caller still serializes
// per-secret counter updates.
type Authenticator struct {
	cfg Config
	key []byte
}

// NewAuthenticator creates a new OTP authenticator.
// The configuration is validated and an error is returned if invalid.
func NewAuthenticator(cfg Config) (*Authenticator, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	// Apply defaults
	if cfg.Digits == 0 {
		cfg.Digits = DefaultDigits
	}
	if cfg.Period == 0 {
		cfg.Period = uint(DefaultPeriod)
	}
	if cfg.Algorithm == "" {
		cfg.Algorithm = AlgorithmSHA1
	}
	if cfg.Window == 0 {
		cfg.Window = DefaultWindow
	}

	key, err := DecodeSecret(cfg.Secret)
	if err != nil {
		return nil, err
	}

	return &Authenticator{cfg: cfg, key: key}, nil
}

func (a *Authenticator) totpOptions() TOTPOptions {
	return TOTPOptions{
		Digits:        a.cfg.Digits,
		Algorithm:     a.cfg.Algorithm,
		Period:        int(a.cfg.Period),
		Skew:          a.cfg.Skew,
		SkewDirection: a.cfg.SkewDirection,
	}
}

func (a *Authenticator) hotpOptions() HOTPOptions {
	return HOTPOptions{
		Digits:    a.cfg.Digits,
		Algorithm: a.cfg.Algorithm,
		Window:    a.cfg.Window,
	}
}

// Authenticate validates an OTP code.
// For TOTP, it validates against the current time with the configured
// skew tolerance. For HOTP, it validates against the configured counter.
func (a *Authenticator) Authenticate(ctx context.Context, code string) error {
	if a == nil {
		return ErrNilAuthenticator
	}

	if ctx == nil {
		ctx = context.Background()
	}

	if err := ctx.Err(); err != nil {
		return err
	}

	if strings.TrimSpace(code) == "" {
		return fmt.Errorf("%w: code must not be empty", ErrInvalidCode)
	}

	if a.cfg.Type == TypeTOTP {
		_, ok, err := ValidateTOTP(code, a.key, time.Now().UTC(), a.totpOptions())
		if err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidCode, err)
		}
		if !ok {
			return ErrInvalidCode
		}
		return nil
	}

	// HOTP validation against exactly the configured counter
	opts := a.hotpOptions()
	opts.Window = 1
	_, ok, err := ValidateHOTP(code, a.key, int64(a.cfg.Counter)-1, opts)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidCode, err)
	}
	if !ok {
		return ErrInvalidCode
	}

	return nil
}

// ValidateCounter validates an HOTP code within the configured window and
// returns the counter that matched. This method is only valid for HOTP
// authenticators.
//
// last is the highest counter previously accepted for this secret, or -1
// if none. The returned counter must be stored as the new last before the
// next validation; a previously accepted counter can never match again.
func (a *Authenticator) ValidateCounter(ctx context.Context, code string, last int64) (uint64, error) {
	if a == nil {
		return 0, ErrNilAuthenticator
	}

	if ctx == nil {
		ctx = context.Background()
	}

	if err := ctx.Err(); err != nil {
		return 0, err
	}

	if a.cfg.Type != TypeHOTP {
		return 0, fmt.Errorf("%w: ValidateCounter is only valid for HOTP", ErrInvalidConfig)
	}

	if strings.TrimSpace(code) == "" {
		return 0, fmt.Errorf("%w: code must not be empty", ErrInvalidCode)
	}

	counter, ok, err := ValidateHOTP(code, a.key, last, a.hotpOptions())
	if err != nil {
		return 0, err
	}
	if !ok {
		return 0, ErrInvalidCode
	}

	return counter, nil
}

// ValidateAt validates a TOTP code at an explicit time and returns the
// time-step counter that matched. This method is only valid for TOTP
// authenticators; it exists so validation is testable without touching
// the system clock.
func (a *Authenticator) ValidateAt(ctx context.Context, code string, t time.Time) (uint64, error) {
	if a == nil {
		return 0, ErrNilAuthenticator
	}

	if ctx == nil {
		ctx = context.Background()
	}

	if err := ctx.Err(); err != nil {
		return 0, err
	}

	if a.cfg.Type != TypeTOTP {
		return 0, fmt.Errorf("%w: ValidateAt is only valid for TOTP", ErrInvalidConfig)
	}

	if strings.TrimSpace(code) == "" {
		return 0, fmt.Errorf("%w: code must not be empty", ErrInvalidCode)
	}

	counter, ok, err := ValidateTOTP(code, a.key, t, a.totpOptions())
	if err != nil {
		return 0, err
	}
	if !ok {
		return 0, ErrInvalidCode
	}

	return counter, nil
}

// Generate generates an OTP code.
// For TOTP, it generates the code for the current time.
// For HOTP, a counter value must be provided.
func (a *Authenticator) Generate(counter ...uint64) (string, error) {
	if a == nil {
		return "", ErrNilAuthenticator
	}

	if a.cfg.Type == TypeTOTP {
		return a.GenerateAt(time.Now().UTC())
	}

	// HOTP requires counter
	if len(counter) == 0 {
		return "", fmt.Errorf("otp: counter required for HOTP generation")
	}

	code, err := GenerateHOTP(a.key, counter[0], a.hotpOptions())
	if err != nil {
		return "", fmt.Errorf("otp: failed to generate HOTP code: %w", err)
	}

	return code, nil
}

// GenerateAt generates a TOTP code for an explicit time.
// This method is only valid for TOTP authenticators.
func (a *Authenticator) GenerateAt(t time.Time) (string, error) {
	if a == nil {
		return "", ErrNilAuthenticator
	}

	if a.cfg.Type != TypeTOTP {
		return "", fmt.Errorf("%w: GenerateAt is only valid for TOTP", ErrInvalidConfig)
	}

	code, err := GenerateTOTP(a.key, t, a.totpOptions())
	if err != nil {
		return "", fmt.Errorf("otp: failed to generate TOTP code: %w", err)
	}

	return code, nil
}
