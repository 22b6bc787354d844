package middleware

import (
	"testing"
	"time"

	"mobitrack/globals"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signToken(t *testing.T, claims Claims) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(globals.JwtSecret)
	require.NoError(t, err)
	return signed
}

func TestValidateJWTRoundTrip(t *testing.T) {
	signed := signToken(t, Claims{
		Username: "asha",
		UserID:   "u-1",
		Role:     "admin",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	})

	claims, err := ValidateJWT("Bearer " + signed)
	require.NoError(t, err)
	assert.Equal(t, "asha", claims.Username)
	assert.Equal(t, "u-1", claims.UserID)
	assert.Equal(t, "admin", claims.Role)
}

func TestValidateJWTRejectsExpired(t *testing.T) {
	signed := signToken(t, Claims{
		UserID: "u-1",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
		},
	})

	_, err := ValidateJWT("Bearer " + signed)
	assert.Error(t, err)
}

func TestValidateJWTRejectsGarbage(t *testing.T) {
	_, err := ValidateJWT("")
	assert.Error(t, err)

	_, err = ValidateJWT("Bearer not-a-token")
	assert.Error(t, err)
}
