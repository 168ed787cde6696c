package uln

import (
	"crypto/rand"
	"fmt"
	"regexp"
	"strconv"

	dErrors "uln/pkg/domain-errors"
)

// prefixPattern matches the 9-digit body a check digit is computed from.
var prefixPattern = regexp.MustCompile(`^[0-9]{9}$`)

// CheckDigit returns the check digit for a 9-digit prefix.
//
// Errors: CodeNullInput for an empty prefix, CodeInvalidFormat when the
// prefix is not exactly nine ASCII digits, and CodeInvalidValue when the
// checksum remainder is 0 — no check digit can complete such a prefix into
// a valid ULN.
func CheckDigit(prefix string) (int, error) {
	if prefix == "" {
		return 0, dErrors.New(dErrors.CodeNullInput, "ULN prefix cannot be empty")
	}
	if !prefixPattern.MatchString(prefix) {
		return 0, dErrors.New(dErrors.CodeInvalidFormat, "ULN prefix must be exactly 9 digits")
	}

	remainder := checksum(prefix) % 11
	if remainder == 0 {
		return 0, dErrors.New(dErrors.CodeInvalidValue, "no valid check digit exists for this prefix")
	}

	return 10 - remainder, nil
}

// Complete appends the computed check digit to a 9-digit prefix, yielding a
// valid ULN. Errors are those of CheckDigit.
func Complete(prefix string) (ULN, error) {
	digit, err := CheckDigit(prefix)
	if err != nil {
		return Zero, err
	}
	return ULN{value: prefix + strconv.Itoa(digit)}, nil
}

// New generates a random valid ULN from crypto/rand digits, redrawing the
// rare prefixes whose checksum remainder is 0.
func New() ULN {
	buf := make([]byte, 9)
	for {
		if _, err := rand.Read(buf); err != nil {
			panic(fmt.Sprintf("uln: reading random source: %v", err))
		}
		for i := range buf {
			buf[i] = '0' + buf[i]%10
		}

		prefix := string(buf)
		remainder := checksum(prefix) % 11
		if remainder == 0 {
			continue
		}

		return ULN{value: prefix + strconv.Itoa(10-remainder)}
	}
}
