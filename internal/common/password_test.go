package common

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHashPassword(t *testing.T) {
	h1, err := HashPassword("hunter22")
	require.NoError(t, err)
	h2, err := HashPassword("hunter22")
	require.NoError(t, err)

	// random salt: same password, different hashes
	require.NotEqual(t, h1, h2)

	require.NoError(t, CheckPassword("hunter22", h1))
	require.NoError(t, CheckPassword("hunter22", h2))
}

func TestCheckPassword_Mismatch(t *testing.T) {
	h, err := HashPassword("hunter22")
	require.NoError(t, err)

	require.Error(t, CheckPassword("wrong", h))
	require.Error(t, CheckPassword("", h))
	require.Error(t, CheckPassword("hunter22", "not-a-hash"))
}
