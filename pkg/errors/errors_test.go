package errors

import (
	stdErrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseErrorWrapsUnderlying(t *testing.T) {
	t.Parallel()

	underlying := fmt.Errorf("unexpected token")
	err := NewParseError("layout.yaml", 12, underlying)

	var parseErr *ParseError
	require.ErrorAs(t, err, &parseErr)
	require.Equal(t, "layout.yaml", parseErr.Path)
	require.Equal(t, 12, parseErr.Line)
	require.True(t, stdErrors.Is(err, underlying))
	require.Equal(t, "parse error: layout.yaml:12: unexpected token", err.Error())
}

func TestParseErrorWithoutLine(t *testing.T) {
	t.Parallel()

	err := NewParseError("layout.yaml", 0, stdErrors.New("no such file"))
	require.Equal(t, "parse error: layout.yaml: no such file", err.Error())
}

func TestValidationErrorFields(t *testing.T) {
	t.Parallel()

	err := NewValidationError("tabs[1].key", "duplicate tab key \"notes\"", nil)

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	require.Equal(t, "tabs[1].key", validationErr.Field)
	require.Contains(t, validationErr.Message, "duplicate tab key")
	require.Nil(t, validationErr.Unwrap())
}

func TestValidationErrorSuggestion(t *testing.T) {
	t.Parallel()

	err := NewValidationErrorWithSuggestion("active", `unknown tab "nots"`, "notes")
	require.Equal(t, `validation error: active: unknown tab "nots" (did you mean "notes"?)`, err.Error())

	bare := NewValidationError("", "layout is nil", nil)
	require.Equal(t, "validation error: layout is nil", bare.Error())
}

func TestNilErrorsRenderEmpty(t *testing.T) {
	t.Parallel()

	var parseErr *ParseError
	var validationErr *ValidationError
	require.Empty(t, parseErr.Error())
	require.Empty(t, validationErr.Error())
	require.Nil(t, parseErr.Unwrap())
}
