package common

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestValidateUsername(t *testing.T) {
	require.NoError(t, ValidateUsername("alice"))
	require.NoError(t, ValidateUsername("user_123"))

	require.ErrorIs(t, ValidateUsername("ab"), ErrValidation)
	require.ErrorIs(t, ValidateUsername(strings.Repeat("a", 51)), ErrValidation)
	require.ErrorIs(t, ValidateUsername("no spaces"), ErrValidation)
	require.ErrorIs(t, ValidateUsername("bad!char"), ErrValidation)

	// padded input is rejected, never trimmed and accepted
	require.ErrorIs(t, ValidateUsername(" alice "), ErrValidation)
	require.ErrorIs(t, ValidateUsername("alice\n"), ErrValidation)
	require.ErrorIs(t, ValidateUsername("\talice"), ErrValidation)
}

func TestValidatePassword(t *testing.T) {
	require.NoError(t, ValidatePassword("secret1"))

	require.ErrorIs(t, ValidatePassword("short"), ErrValidation)
	require.ErrorIs(t, ValidatePassword(strings.Repeat("x", 101)), ErrValidation)
}

func TestValidatePostContent(t *testing.T) {
	require.NoError(t, ValidatePostContent("hello"))
	require.NoError(t, ValidatePostContent(strings.Repeat("x", MaxPostContentLen)))

	require.ErrorIs(t, ValidatePostContent(""), ErrValidation)
	require.ErrorIs(t, ValidatePostContent("   "), ErrValidation)
	require.ErrorIs(t, ValidatePostContent(strings.Repeat("x", MaxPostContentLen+1)), ErrValidation)
}

func TestValidateRequiredContent(t *testing.T) {
	require.NoError(t, ValidateRequiredContent("hi"))
	// no length cap, unlike posts
	require.NoError(t, ValidateRequiredContent(strings.Repeat("x", 10000)))

	require.ErrorIs(t, ValidateRequiredContent(""), ErrValidation)
	require.ErrorIs(t, ValidateRequiredContent(" \t "), ErrValidation)
}
