package otp

import (
	"crypto/sha1"
	"crypto/sha256"
	"crypto/sha512"
	"fmt"
	"hash"
)

// Algorithm represents the HMAC digest used for code generation. It must
// match between the issuing and validating side of a deployment.
type Algorithm string

const (
	// AlgorithmSHA1 uses HMAC-SHA1, the RFC 4226 default.
	AlgorithmSHA1 Algorithm = "SHA1"
	// AlgorithmSHA256 uses HMAC-SHA256.
	AlgorithmSHA256 Algorithm = "SHA256"
	// AlgorithmSHA512 uses HMAC-SHA512.
	AlgorithmSHA512 Algorithm = "SHA512"
)

// hashFunc returns the digest constructor for the algorithm. The empty
// string selects SHA1 so zero-value options behave like the RFC default.
func (a Algorithm) hashFunc() (func() hash.Hash, error) {
	switch a {
	case AlgorithmSHA1, "":
		return sha1.New, nil
	case AlgorithmSHA256:
		return sha256.New, nil
	case AlgorithmSHA512:
		return sha512.New, nil
	}
	return nil, fmt.Errorf("%w: algorithm must be SHA1, SHA256, or SHA512", ErrInvalidParameter)
}
