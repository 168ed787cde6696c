package uln

import (
	"regexp"

	dErrors "uln/pkg/domain-errors"
)

// ulnPattern matches a 9-digit body followed by a single check digit.
var ulnPattern = regexp.MustCompile(`^[0-9]{10}$`)

// checksum computes the weighted sum over the first nine digits, weights
// 10 down to 2 left to right, per the LRS ULN validation procedure (WSLP02).
func checksum(digits string) int {
	sum := 0
	for i := 0; i < 9; i++ {
		sum += (10 - i) * int(digits[i]-'0')
	}
	return sum
}

// IsValid reports whether candidate is a checksum-correct ULN.
//
// Structural problems are errors, not negative results: an empty candidate
// yields CodeNullInput and anything other than exactly ten ASCII digits
// yields CodeInvalidFormat. A well-formed candidate whose checksum does not
// hold returns (false, nil) — that is routine bad data (a mistyped ULN),
// not a caller bug. A checksum remainder of 0 means no check digit can make
// the value valid, so it is likewise a plain false.
func IsValid(candidate string) (bool, error) {
	if candidate == "" {
		return false, dErrors.New(dErrors.CodeNullInput, "ULN value cannot be empty")
	}
	if !ulnPattern.MatchString(candidate) {
		return false, dErrors.New(dErrors.CodeInvalidFormat, "ULN value must be exactly 10 digits")
	}

	remainder := checksum(candidate) % 11
	if remainder == 0 {
		return false, nil
	}

	return int(candidate[9]-'0') == 10-remainder, nil
}

// RequireValid validates candidate and returns it unchanged on success.
//
// Errors: CodeNullInput for an empty candidate; CodeInvalidValue otherwise,
// whether the candidate is structurally malformed or fails the checksum.
// Structural failures keep their CodeInvalidFormat cause in the wrap chain
// for callers that need the distinction.
func RequireValid(candidate string) (string, error) {
	if candidate == "" {
		return "", dErrors.New(dErrors.CodeNullInput, "ULN value cannot be empty")
	}

	ok, err := IsValid(candidate)
	if err != nil {
		return "", dErrors.Wrap(err, dErrors.CodeInvalidValue, "invalid ULN value")
	}
	if !ok {
		return "", dErrors.New(dErrors.CodeInvalidValue, "invalid ULN value")
	}

	return candidate, nil
}

// RequireValidULN enforces presence of an already-constructed ULN.
//
// Existence of a non-zero ULN already guarantees validity, so no
// re-validation happens; the value is returned unchanged. The Zero value
// yields CodeNullInput.
func RequireValidULN(u ULN) (ULN, error) {
	if u.IsZero() {
		return Zero, dErrors.New(dErrors.CodeNullInput, "ULN cannot be absent")
	}
	return u, nil
}
