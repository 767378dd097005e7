package security

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPasswordHasher_RequiresPepper(t *testing.T) {
	_, err := NewPasswordHasher("")
	assert.Error(t, err)

	hasher, err := NewPasswordHasher("s3cret")
	require.NoError(t, err)
	assert.NotNil(t, hasher)
}

func TestPasswordHasher_HashAndCheck(t *testing.T) {
	hasher, err := NewPasswordHasher("s3cret")
	require.NoError(t, err)

	hash, err := hasher.Hash("correct-horse")
	require.NoError(t, err)
	assert.NotEqual(t, "correct-horse", hash)

	assert.True(t, hasher.Check("correct-horse", hash))
	assert.False(t, hasher.Check("battery-staple", hash))
}

func TestPasswordHasher_DifferentPepperRejects(t *testing.T) {
	first, err := NewPasswordHasher("pepper-one")
	require.NoError(t, err)
	second, err := NewPasswordHasher("pepper-two")
	require.NoError(t, err)

	hash, err := first.Hash("password")
	require.NoError(t, err)

	assert.False(t, second.Check("password", hash))
}
