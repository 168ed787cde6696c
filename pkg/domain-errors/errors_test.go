package domainerrors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	err := New(CodeInvalidFormat, "value must be exactly 10 digits")

	assert.EqualError(t, err, "value must be exactly 10 digits")
	assert.Equal(t, CodeInvalidFormat, err.Code())
	assert.Nil(t, err.Unwrap())
}

func TestWrap(t *testing.T) {
	inner := New(CodeInvalidFormat, "value must be exactly 10 digits")
	outer := Wrap(inner, CodeInvalidValue, "invalid ULN value")

	assert.EqualError(t, outer, "invalid ULN value: value must be exactly 10 digits")
	assert.Equal(t, CodeInvalidValue, outer.Code())
	assert.True(t, errors.Is(outer, inner))
}

func TestHasCode(t *testing.T) {
	inner := New(CodeInvalidFormat, "bad format")
	outer := Wrap(inner, CodeInvalidValue, "rejected")

	tests := []struct {
		name string
		err  error
		code Code
		want bool
	}{
		{"outer code", outer, CodeInvalidValue, true},
		{"inner code through chain", outer, CodeInvalidFormat, true},
		{"absent code", outer, CodeNullInput, false},
		{"plain error", errors.New("boom"), CodeInvalidValue, false},
		{"nil error", nil, CodeInvalidValue, false},
		{"coded error behind fmt.Errorf", fmt.Errorf("context: %w", inner), CodeInvalidFormat, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, HasCode(tt.err, tt.code))
		})
	}
}

func TestCodeOf(t *testing.T) {
	inner := New(CodeNullInput, "absent")

	t.Run("returns outermost code", func(t *testing.T) {
		outer := Wrap(inner, CodeInvalidValue, "rejected")
		assert.Equal(t, CodeInvalidValue, CodeOf(outer))
	})

	t.Run("sees through plain wrapping", func(t *testing.T) {
		wrapped := fmt.Errorf("context: %w", inner)
		assert.Equal(t, CodeNullInput, CodeOf(wrapped))
	})

	t.Run("empty for uncoded errors", func(t *testing.T) {
		assert.Equal(t, Code(""), CodeOf(errors.New("boom")))
		assert.Equal(t, Code(""), CodeOf(nil))
	})
}

func TestPassthroughs(t *testing.T) {
	inner := New(CodeInvalidValue, "rejected")
	wrapped := fmt.Errorf("context: %w", inner)

	require.True(t, Is(wrapped, inner))

	var target *Error
	require.True(t, As(wrapped, &target))
	assert.Equal(t, CodeInvalidValue, target.Code())
}
