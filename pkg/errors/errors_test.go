package errors

import (
	stdErrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseErrorWrapsUnderlying(t *testing.T) {
	t.Parallel()

	underlying := fmt.Errorf("mapping values are not allowed")
	err := NewParseError("config.yaml", 4, underlying)

	var parseErr *ParseError
	require.ErrorAs(t, err, &parseErr)
	require.Equal(t, "config.yaml", parseErr.Path)
	require.Equal(t, 4, parseErr.Line)
	require.True(t, stdErrors.Is(err, underlying))
	require.Equal(t, "parse error: config.yaml:4: mapping values are not allowed", err.Error())
}

func TestParseErrorWithoutLine(t *testing.T) {
	t.Parallel()

	err := NewParseError("config.yaml", 0, stdErrors.New("permission denied"))
	require.Equal(t, "parse error: config.yaml: permission denied", err.Error())
}

func TestValidationErrorNamesField(t *testing.T) {
	t.Parallel()

	err := NewValidationError("email", "Please include a valid email address.", nil)

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	require.Equal(t, "email", validationErr.Field)
	require.Equal(t, "validation error: email: Please include a valid email address.", err.Error())
}

func TestValidationErrorWithoutField(t *testing.T) {
	t.Parallel()

	err := NewValidationError("", "configuration is nil", nil)
	require.Equal(t, "validation error: configuration is nil", err.Error())
}

func TestCommandErrorFormatsSuggestion(t *testing.T) {
	t.Parallel()

	underlying := stdErrors.New("disk full")
	err := NewCommandError("save theme", "dark", underlying, "Free some space and retry")

	var cmdErr *CommandError
	require.ErrorAs(t, err, &cmdErr)
	require.True(t, stdErrors.Is(err, underlying))
	require.Equal(t, "Failed to save theme: dark\n\nError: disk full\n\nSuggestion: Free some space and retry", err.Error())
}

func TestNilReceiversAreSafe(t *testing.T) {
	t.Parallel()

	var parseErr *ParseError
	var validationErr *ValidationError
	var cmdErr *CommandError

	require.Empty(t, parseErr.Error())
	require.Nil(t, parseErr.Unwrap())
	require.Empty(t, validationErr.Error())
	require.Nil(t, validationErr.Unwrap())
	require.Empty(t, cmdErr.Error())
	require.Nil(t, cmdErr.Unwrap())
}
