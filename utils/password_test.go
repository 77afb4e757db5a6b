package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPasswordHashRoundTrip(t *testing.T) {
	hash, err := HashPassword("crimson123")
	require.NoError(t, err)
	assert.NotEqual(t, "crimson123", hash)

	assert.True(t, CheckPasswordHash("crimson123", hash))
	assert.False(t, CheckPasswordHash("wrong", hash))
}
