// Package otp implements HOTP (RFC 4226) and TOTP (RFC 6238) one-time
// password generation and validation.
//
// HOTP (HMAC-based One-Time Password) derives codes from a shared secret
// and a monotonic counter, used in hardware tokens and some mobile apps.
// TOTP (Time-based One-Time Password) derives the counter from wall-clock
// time and is what authenticator apps like Google Authenticator implement.
//
// The package exposes two layers. The functional layer operates on raw
// secret bytes and explicit parameters:
//
//	key, err := otp.DecodeSecret("MFRG GZDF MZTW Q2LK")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	code, err := otp.GenerateHOTP(key, 3, otp.HOTPOptions{})
//
//	// Later, verify a submitted code. last is the highest counter the
//	// caller has already accepted (-1 if none); the returned counter
//	// must be persisted as the new last before the result is trusted.
//	counter, ok, err := otp.ValidateHOTP(submitted, key, last, otp.HOTPOptions{Window: 3})
//
// The Authenticator layer wraps the functional layer in a validated
// Config with context-aware methods.
//
//	auth, err := otp.NewAuthenticator(otp.Config{
//	    Type:   otp.TypeTOTP,
//	    Secret: "JBSWY3DPEHPK3PXP",
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	err = auth.Authenticate(ctx, "123456")
//
// The package holds no state between calls. For HOTP the caller owns the
// last-accepted counter and must serialize validations per secret;
// otherwise two concurrent validations can both accept overlapping
// windows and reopen a replay. For TOTP, callers that need per-step
// replay rejection must track the matched step themselves.
//
// Secrets are raw key material: they are never logged by this package,
// and submitted codes are compared in constant time.
package otp
