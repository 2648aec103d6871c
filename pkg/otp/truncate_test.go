package otp

import (
	"encoding/hex"
	"errors"
	"testing"
)

// TestTruncate pins the worked example from RFC 4226 section 5.3: the
// HMAC-SHA1 digest for the reference secret at counter 0x0...0, whose
// dynamic truncation selects offset 0xa and yields 0x50ef7f19.
func TestTruncate(t *testing.T) {
	digest, err := hex.DecodeString("1f8698690e02ca16618550ef7f19da8e945b555a")
	if err != nil {
		t.Fatalf("failed to decode digest: %v", err)
	}

	tests := []struct {
		name   string
		digits uint
		want   string
	}{
		{name: "6 digits", digits: 6, want: "872921"},
		{name: "8 digits", digits: 8, want: "57872921"},
		{name: "10 digits keeps full 31-bit value", digits: 10, want: "1357872921"},
		{name: "1 digit", digits: 1, want: "1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := truncate(digest, tt.digits)
			if got != tt.want {
				t.Errorf("truncate() = %q, want %q", got, tt.want)
			}
		})
	}
}

// TestTruncatePadding verifies that small truncated values keep their
// leading zeros.
func TestTruncatePadding(t *testing.T) {
	// offset nibble 0 selects the first four bytes: 0x0000002a = 42.
	digest := make([]byte, 20)
	digest[3] = 42

	if got := truncate(digest, 6); got != "000042" {
		t.Errorf("truncate() = %q, want %q", got, "000042")
	}
	if got := truncate(digest, 2); got != "42" {
		t.Errorf("truncate() = %q, want %q", got, "42")
	}
}

func TestCheckToken(t *testing.T) {
	tests := []struct {
		name    string
		code    string
		digits  uint
		wantErr bool
	}{
		{name: "valid", code: "123456", digits: 6, wantErr: false},
		{name: "valid with leading zeros", code: "000042", digits: 6, wantErr: false},
		{name: "too short", code: "12345", digits: 6, wantErr: true},
		{name: "too long", code: "1234567", digits: 6, wantErr: true},
		{name: "empty", code: "", digits: 6, wantErr: true},
		{name: "letters", code: "12345a", digits: 6, wantErr: true},
		{name: "sign", code: "-12345", digits: 6, wantErr: true},
		{name: "whitespace", code: "123 56", digits: 6, wantErr: true},
		{name: "eight digits", code: "94287082", digits: 8, wantErr: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := checkToken(tt.code, tt.digits)
			if tt.wantErr {
				if !errors.Is(err, ErrMalformedToken) {
					t.Errorf("expected ErrMalformedToken, got %v", err)
				}
				return
			}
			if err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}
