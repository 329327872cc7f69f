package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPasswordHashing(t *testing.T) {
	hash, err := HashPassword("pw12345")
	require.NoError(t, err)
	require.NotEmpty(t, hash)
	assert.NotEqual(t, "pw12345", hash)

	assert.True(t, CheckPassword("pw12345", hash))
	assert.False(t, CheckPassword("wrong-pw", hash))
	assert.False(t, CheckPassword("pw12345", "not-a-hash"))
}

func TestHashesAreSalted(t *testing.T) {
	first, err := HashPassword("pw12345")
	require.NoError(t, err)
	second, err := HashPassword("pw12345")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
	assert.True(t, CheckPassword("pw12345", first))
	assert.True(t, CheckPassword("pw12345", second))
}
