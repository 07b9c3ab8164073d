package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"okaziyo-api-io/api/pkg/models"
)

const testSecret = "sessions-test-secret"

func TestValidateTokenRoundTrip(t *testing.T) {
	t.Setenv("SECRET", testSecret)

	token, expiresAt, err := GenerateJWT("652d1d9c0000000000000001", "ada@okaziyo.io", "Ada", models.RoleCreator)
	require.NoError(t, err)
	assert.Greater(t, expiresAt, time.Now().Unix())

	claims, err := ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "ada@okaziyo.io", claims.Email)
	assert.Equal(t, models.RoleCreator, claims.Role)
}

func TestValidateTokenWithoutExpiry(t *testing.T) {
	// A validly signed token that carries no exp claim is rejected,
	// not treated as eternal.
	t.Setenv("SECRET", testSecret)

	bare := jwt.NewWithClaims(jwt.SigningMethodHS256, JWTClaim{Id: "abc", Role: models.RoleUser})
	signed, err := bare.SignedString([]byte(testSecret))
	require.NoError(t, err)

	_, err = ValidateToken(signed)
	assert.Error(t, err)
}

func TestValidateTokenExpired(t *testing.T) {
	t.Setenv("SECRET", testSecret)

	stale := jwt.NewWithClaims(jwt.SigningMethodHS256, JWTClaim{
		Id:   "abc",
		Role: models.RoleUser,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
		},
	})
	signed, err := stale.SignedString([]byte(testSecret))
	require.NoError(t, err)

	_, err = ValidateToken(signed)
	assert.Error(t, err)
}
