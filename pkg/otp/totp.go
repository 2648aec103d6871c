package otp

import (
	"crypto/hmac"
	"fmt"
	"time"
)

// DefaultPeriod is the standard 30-second TOTP step.
const DefaultPeriod int = 30

// SkewDirection selects which neighboring time-steps ValidateTOTP probes
// in addition to the current one.
type SkewDirection int

const (
	// SkewBoth probes steps on both sides of the current one.
	SkewBoth SkewDirection = iota
	// SkewPast probes only earlier steps (submitter's clock behind).
	SkewPast
	// SkewFuture probes only later steps (submitter's clock ahead).
	SkewFuture
)

// TOTPOptions carries the parameters of time-based generation and
// validation. The zero value selects 6 digits, SHA1, a 30-second period,
// the Unix epoch, and no skew tolerance.
type TOTPOptions struct {
	// Digits is the length of the emitted code (1..MaxDigits).
	Digits uint
	// Algorithm is the HMAC digest.
	Algorithm Algorithm
	// Period is the step length in seconds. Zero means DefaultPeriod;
	// a negative value is rejected.
	Period int
	// Epoch is the reference time T0 as Unix seconds.
	Epoch int64
	// Skew is the number of adjacent steps also accepted during
	// validation. Zero accepts only the current step.
	Skew uint
	// SkewDirection selects which side(s) of the current step Skew
	// applies to. Ignored when Skew is zero.
	SkewDirection SkewDirection
}

func (o TOTPOptions) period() (int, error) {
	if o.Period == 0 {
		return DefaultPeriod, nil
	}
	if o.Period < 0 {
		return 0, fmt.Errorf("%w: period must be positive", ErrInvalidParameter)
	}
	return o.Period, nil
}

func (o TOTPOptions) hotp() HOTPOptions {
	return HOTPOptions{Digits: o.Digits, Algorithm: o.Algorithm}
}

// TimeCounter returns the step counter for t: floor((t - epoch) / period).
// Times before the epoch clamp to step 0 rather than going negative.
func TimeCounter(t time.Time, opts TOTPOptions) (uint64, error) {
	period, err := opts.period()
	if err != nil {
		return 0, err
	}
	delta := t.Unix() - opts.Epoch
	if delta < 0 {
		return 0, nil
	}
	return uint64(delta) / uint64(period), nil
}

// GenerateTOTP computes the RFC 6238 code for a secret at time t. Passing
// an explicit t makes generation deterministic and testable; callers
// wanting "now" pass time.Now().
func GenerateTOTP(secret []byte, t time.Time, opts TOTPOptions) (string, error) {
	counter, err := TimeCounter(t, opts)
	if err != nil {
		return "", err
	}
	return GenerateHOTP(secret, counter, opts.hotp())
}

// ValidateTOTP checks a submitted code against the step counter derived
// from t, plus up to opts.Skew neighboring steps on the configured
// side(s). On a match it returns the absolute step counter that matched
// and true; no match returns false with a nil error.
//
// Time already advances monotonically, so unlike ValidateHOTP there is no
// forward-only progression here. Callers that must also reject a replay
// of the same code within its validity window track the returned counter
// themselves and refuse repeats.
func ValidateTOTP(code string, secret []byte, t time.Time, opts TOTPOptions) (uint64, bool, error) {
	digits, err := opts.hotp().digits()
	if err != nil {
		return 0, false, err
	}
	if err := checkToken(code, digits); err != nil {
		return 0, false, err
	}
	counter, err := TimeCounter(t, opts)
	if err != nil {
		return 0, false, err
	}

	candidates := make([]uint64, 0, 2*opts.Skew+1)
	candidates = append(candidates, counter)
	for i := uint64(1); i <= uint64(opts.Skew); i++ {
		if opts.SkewDirection != SkewFuture && counter >= i {
			candidates = append(candidates, counter-i)
		}
		if opts.SkewDirection != SkewPast {
			candidates = append(candidates, counter+i)
		}
	}

	for _, c := range candidates {
		candidate, err := GenerateHOTP(secret, c, opts.hotp())
		if err != nil {
			return 0, false, err
		}
		if hmac.Equal([]byte(candidate), []byte(code)) {
			return c, true, nil
		}
	}
	return 0, false, nil
}
