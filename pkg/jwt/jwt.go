package jwt

import (
	"time"

	"deviantdare/backend/internal/config"

	"github.com/golang-jwt/jwt/v5"
)

// GenerateToken creates a new JWT for a given user ID.
func GenerateToken(userID uint) (string, error) {
	claims := jwt.MapClaims{
		"sub": userID,
		"exp": time.Now().Add(time.Hour * 24 * 7).Unix(), // Token expires in 7 days
		"iat": time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	return token.SignedString([]byte(config.AppConfig.JWTSecret))
}
