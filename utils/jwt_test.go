package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWTRoundTrip(t *testing.T) {
	token, err := GenerateJWT("secret", "user_abc", time.Hour)
	require.NoError(t, err)

	userID, err := ParseJWT("secret", token)
	require.NoError(t, err)
	assert.Equal(t, "user_abc", userID)
}

func TestParseJWTWrongSecret(t *testing.T) {
	token, err := GenerateJWT("secret", "user_abc", time.Hour)
	require.NoError(t, err)

	_, err = ParseJWT("other-secret", token)
	assert.Error(t, err)
}

func TestParseJWTExpired(t *testing.T) {
	token, err := GenerateJWT("secret", "user_abc", -time.Minute)
	require.NoError(t, err)

	_, err = ParseJWT("secret", token)
	assert.Error(t, err)
}

func TestParseJWTGarbage(t *testing.T) {
	_, err := ParseJWT("secret", "not.a.jwt")
	assert.Error(t, err)
}

func TestGenerateID(t *testing.T) {
	id := GenerateID("meal")
	assert.Regexp(t, `^meal_[0-9a-f]{16}$`, id)
	assert.NotEqual(t, id, GenerateID("meal"))
}
