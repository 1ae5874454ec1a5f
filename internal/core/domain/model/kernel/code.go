package kernel

import (
	"crypto/rand"
	"fmt"
	"strings"

	"distribution/internal/pkg/errs"
)

const (
	codePrefix = "ORD-"
	codeLength = 10

	// codeAlphabet excludes easily confused characters (0/O, 1/I/L).
	codeAlphabet = "23456789ABCDEFGHJKMNPQRSTUVWXYZ"
)

// ErrCodeIsNotConstructed indicates a Code was not created through one of the
// constructor functions. It is returned when validating a zero-value Code.
var ErrCodeIsNotConstructed = errs.NewValueIsRequiredError("Code must be created via NewCode or CodeFromString")

// Code is the human-facing correlation code of an order, distinct from the
// internal UUID. Operators quote it on phone calls and printed documents, so
// it is short, upper-case, and avoids ambiguous characters.
//
// Codes are generated from crypto/rand rather than a wall-clock suffix, so
// concurrent order creation cannot produce colliding codes.
type Code struct {
	value string
}

// NewCode generates a new random correlation code, e.g. "ORD-7GKQ2MWXRB".
func NewCode() Code {
	buf := make([]byte, codeLength)
	// rand.Read never returns an error on supported platforms; it panics
	// internally if the source of randomness is unavailable.
	_, _ = rand.Read(buf)

	chars := make([]byte, codeLength)
	for i, b := range buf {
		chars[i] = codeAlphabet[int(b)%len(codeAlphabet)]
	}

	return Code{value: codePrefix + string(chars)}
}

// CodeFromString restores a Code from its persisted representation.
// Returns an error if the string does not have the expected shape.
func CodeFromString(s string) (Code, error) {
	if !strings.HasPrefix(s, codePrefix) || len(s) != len(codePrefix)+codeLength {
		return Code{}, errs.NewValueIsInvalidErrorWithCause("code",
			fmt.Errorf("%q is not a valid order code", s))
	}

	for _, r := range s[len(codePrefix):] {
		if !strings.ContainsRune(codeAlphabet, r) {
			return Code{}, errs.NewValueIsInvalidErrorWithCause("code",
				fmt.Errorf("%q is not a valid order code", s))
		}
	}

	return Code{value: s}, nil
}

// String returns the code text, e.g. "ORD-7GKQ2MWXRB".
func (c Code) String() string {
	return c.value
}

// IsEqual reports whether two codes are the same.
func (c Code) IsEqual(other Code) bool {
	return c.value == other.value
}

// Validate returns ErrCodeIsNotConstructed for a zero-value Code.
func (c Code) Validate() error {
	if c.value == "" {
		return ErrCodeIsNotConstructed
	}
	return nil
}
