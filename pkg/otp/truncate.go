package otp

import (
	"encoding/binary"
	"fmt"
)

// MaxDigits is the largest supported code length. The truncated value is
// 31 bits, so ten decimal digits already cover its full range.
const MaxDigits uint = 10

// pow10[d] is 10^d for every supported digit count.
var pow10 = [MaxDigits + 1]uint64{
	1, 10, 100, 1000, 10000, 100000,
	1000000, 10000000, 100000000, 1000000000, 10000000000,
}

// truncate applies RFC 4226 dynamic truncation to an HMAC digest and
// renders the result as a zero-padded decimal string of exactly digits
// characters. digits must already be validated to 1..MaxDigits.
func truncate(digest []byte, digits uint) string {
	offset := digest[len(digest)-1] & 0x0f
	value := binary.BigEndian.Uint32(digest[offset:offset+4]) & 0x7fffffff
	code := uint64(value) % pow10[digits]
	return fmt.Sprintf("%0*d", int(digits), code)
}

// checkToken verifies that a submitted code is a plausible token: exactly
// digits ASCII decimal characters. Anything else is ErrMalformedToken; a
// shorter bare number is ambiguous (leading-zero loss) and the caller
// must zero-pad it explicitly.
func checkToken(code string, digits uint) error {
	if uint(len(code)) != digits {
		return fmt.Errorf("%w: code must be exactly %d digits", ErrMalformedToken, digits)
	}
	for i := 0; i < len(code); i++ {
		if code[i] < '0' || code[i] > '9' {
			return fmt.Errorf("%w: code must contain only decimal digits", ErrMalformedToken)
		}
	}
	return nil
}
