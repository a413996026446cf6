package common

import (
	"errors"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseError_UnwrapsToFormat(t *testing.T) {
	_, convErr := strconv.ParseFloat("abc", 64)
	err := NewParseError(3, 1, "abc", convErr)

	assert.ErrorIs(t, err, ErrorFormat)
	assert.ErrorIs(t, err, strconv.ErrSyntax)
	assert.Contains(t, err.Error(), "line 3")
	assert.Contains(t, err.Error(), "field 1")

	var pe *ParseError
	assert.True(t, errors.As(err, &pe))
	assert.Equal(t, 3, pe.Line)
}

func TestParseError_NilCause(t *testing.T) {
	err := NewParseError(7, 1, "no-separator", nil)
	assert.ErrorIs(t, err, ErrorFormat)
	assert.Equal(t, `line 7, field 1 ("no-separator"): malformed`, err.Error())
}
