// internal/utils/jwt_test.go
package utils

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndValidateJWT(t *testing.T) {
	userID := uuid.New()

	token, err := GenerateJWT(userID, "testuser", "shop_owner", 1)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := ValidateJWT(token)
	require.NoError(t, err)
	assert.Equal(t, userID.String(), claims.UserID)
	assert.Equal(t, "testuser", claims.Username)
	assert.Equal(t, "shop_owner", claims.UserType)
}

func TestValidateJWTRejectsGarbage(t *testing.T) {
	_, err := ValidateJWT("not-a-token")
	assert.Error(t, err)
}

func TestRefreshTokenRoundTrip(t *testing.T) {
	userID := uuid.New()

	token, err := GenerateRefreshToken(userID, 1)
	require.NoError(t, err)

	subject, err := ValidateRefreshToken(token)
	require.NoError(t, err)
	assert.Equal(t, userID.String(), subject)
}
