package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndValidateToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	token, expiresAt, err := GenerateToken("user-1", "iot-a@university.ac.id", "group")
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.WithinDuration(t, time.Now().Add(24*time.Hour), expiresAt, time.Minute)

	claims, err := ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, "iot-a@university.ac.id", claims.Email)
	assert.Equal(t, "group", claims.Role)
}

func TestValidateTokenWrongSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	token, _, err := GenerateToken("user-1", "iot-a@university.ac.id", "group")
	require.NoError(t, err)

	t.Setenv("JWT_SECRET", "other-secret")
	_, err = ValidateToken(token)
	assert.Error(t, err)
}

func TestValidateTokenGarbage(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	_, err := ValidateToken("not-a-token")
	assert.Error(t, err)
}

func TestGenerateTokenRequiresSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")
	_, _, err := GenerateToken("user-1", "iot-a@university.ac.id", "group")
	assert.Error(t, err)
}
