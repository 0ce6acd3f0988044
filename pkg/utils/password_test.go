package utils

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPasswordHashAndCompare(t *testing.T) {
	hash, err := HashPassword("Str0ng!Pass")
	require.NoError(t, err)
	require.NotEqual(t, "Str0ng!Pass", hash)

	require.True(t, ComparePassword(hash, "Str0ng!Pass"))
	require.False(t, ComparePassword(hash, "str0ng!pass"))
	require.False(t, ComparePassword(hash, ""))
}
