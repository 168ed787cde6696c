// Package uln implements the UK Unique Learner Number (ULN), the 10-digit
// learner identifier issued by the Learning Records Service.
//
// A ULN is nine digits plus a trailing check digit computed with a weighted
// mod-11 sum, so transcription errors are detectable at the point of entry.
// The ULN type enforces that invariant at construction: FromString is the
// only public constructor and every value it returns has already passed the
// format and checksum checks. Construct via FromString at trust boundaries;
// a ULN value can never exist in an invalid state.
package uln

import (
	"database/sql/driver"
	"fmt"
	"strings"

	"github.com/cespare/xxhash/v2"

	dErrors "uln/pkg/domain-errors"
)

// ULN is a validated 10-digit Unique Learner Number.
//
// The zero value represents an absent ULN (see IsZero); all non-zero values
// hold a checksum-correct digit string. ULN is a comparable value type and
// is safe to copy, share, and use as a map key.
type ULN struct {
	value string
}

// Zero is the absent ULN.
var Zero ULN

// FromString creates a validated ULN.
//
// Errors: CodeNullInput for an empty candidate, CodeInvalidValue when the
// candidate is malformed or fails the checksum. Construction never partially
// succeeds; on error the Zero value is returned.
func FromString(candidate string) (ULN, error) {
	value, err := RequireValid(candidate)
	if err != nil {
		return Zero, err
	}
	return ULN{value: value}, nil
}

// Must creates a ULN, panicking if invalid.
// Use only in tests or when the value is known to be valid.
func Must(candidate string) ULN {
	u, err := FromString(candidate)
	if err != nil {
		panic(err)
	}
	return u
}

// Digits returns the raw 10-digit string.
func (u ULN) Digits() string {
	return u.value
}

// IsZero returns true if this is the zero value (absent ULN).
func (u ULN) IsZero() bool {
	return u.value == ""
}

// String renders the ULN for display and logs, e.g. "ULN(0000000042)".
// Serialization hooks use the bare digits; see Digits and MarshalText.
func (u ULN) String() string {
	return "ULN(" + u.value + ")"
}

// Equal reports whether both ULNs hold the same digit string.
// ULN is comparable, so == is equivalent.
func (u ULN) Equal(other ULN) bool {
	return u.value == other.value
}

// Compare returns -1, 0, or 1 as u is less than, equal to, or greater than
// other. Lexicographic order on the fixed-width digit strings, which matches
// numeric order.
func (u ULN) Compare(other ULN) int {
	return strings.Compare(u.value, other.value)
}

// Hash returns a deterministic hash of the digit string.
// Equal ULNs always hash equal.
func (u ULN) Hash() uint64 {
	return xxhash.Sum64String(u.value)
}

// MarshalText implements encoding.TextMarshaler. The Zero value marshals to
// an empty string.
func (u ULN) MarshalText() ([]byte, error) {
	return []byte(u.value), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. Non-empty input is
// re-validated through FromString; empty input restores the Zero value.
func (u *ULN) UnmarshalText(data []byte) error {
	if len(data) == 0 {
		*u = Zero
		return nil
	}

	parsed, err := FromString(string(data))
	if err != nil {
		return err
	}

	*u = parsed
	return nil
}

// MarshalBinary implements encoding.BinaryMarshaler.
func (u ULN) MarshalBinary() ([]byte, error) {
	return u.MarshalText()
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler.
func (u *ULN) UnmarshalBinary(data []byte) error {
	return u.UnmarshalText(data)
}

// Value implements driver.Valuer for database storage.
// Returns nil for the Zero value so optional columns store NULL.
func (u ULN) Value() (driver.Value, error) {
	if u.IsZero() {
		return nil, nil
	}
	return u.value, nil
}

// Scan implements sql.Scanner for database retrieval.
func (u *ULN) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		*u = Zero
		return nil
	case string:
		return u.UnmarshalText([]byte(v))
	case []byte:
		return u.UnmarshalText(v)
	default:
		return dErrors.New(dErrors.CodeInvalidFormat, fmt.Sprintf("cannot scan %T into ULN", src))
	}
}
