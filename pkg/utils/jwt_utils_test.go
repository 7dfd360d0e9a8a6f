package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAccessTokenRoundTrip(t *testing.T) {
	tokenString, err := GenerateAccessToken(42, "admin@example.com", "Admin User", 1)
	require.NoError(t, err)
	require.NotEmpty(t, tokenString)

	claims, err := ValidateToken(tokenString)
	require.NoError(t, err)
	assert.Equal(t, int64(42), claims.UserID)
	assert.Equal(t, "admin@example.com", claims.Email)
	assert.Equal(t, "Admin User", claims.Name)
	assert.Equal(t, 1, claims.AdminLevel)
	assert.Equal(t, "incubator-backend", claims.Issuer)
	assert.WithinDuration(t, time.Now().Add(AccessTokenTTL), claims.ExpiresAt.Time, time.Minute)
}

func TestRefreshTokenRoundTrip(t *testing.T) {
	tokenString, err := GenerateRefreshToken(7)
	require.NoError(t, err)

	claims, err := ValidateToken(tokenString)
	require.NoError(t, err)
	assert.Equal(t, int64(7), claims.UserID)
	assert.Equal(t, 0, claims.AdminLevel)
	assert.WithinDuration(t, time.Now().Add(RefreshTokenTTL), claims.ExpiresAt.Time, time.Minute)
}

func TestValidateTokenRejectsGarbage(t *testing.T) {
	_, err := ValidateToken("not.a.token")
	assert.Error(t, err)

	_, err = ValidateToken("")
	assert.Error(t, err)
}

func TestValidateTokenRejectsTamperedToken(t *testing.T) {
	tokenString, err := GenerateAccessToken(42, "admin@example.com", "Admin User", 1)
	require.NoError(t, err)

	tampered := tokenString[:len(tokenString)-2] + "xx"
	_, err = ValidateToken(tampered)
	assert.Error(t, err)
}
