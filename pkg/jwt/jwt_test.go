package jwt

import (
	"testing"

	"deviantdare/backend/internal/config"

	gojwt "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateToken(t *testing.T) {
	config.AppConfig = &config.Config{JWTSecret: "test-secret"}

	tokenString, err := GenerateToken(42)
	require.NoError(t, err)
	require.NotEmpty(t, tokenString)

	parsed, err := gojwt.Parse(tokenString, func(token *gojwt.Token) (interface{}, error) {
		return []byte("test-secret"), nil
	})
	require.NoError(t, err)
	require.True(t, parsed.Valid)

	claims, ok := parsed.Claims.(gojwt.MapClaims)
	require.True(t, ok)
	assert.EqualValues(t, 42, claims["sub"])
}
