package security

import (
	"errors"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/golang-jwt/jwt/v5"
)

var (
	TokenAuth *jwtauth.JWTAuth
	tokenExp  time.Duration
)

func InitJWT(key []byte, exp time.Duration) {
	TokenAuth = jwtauth.New("HS256", key, nil)
	tokenExp = exp
}

// GenerateToken issues the auth token handed back on register/login.
// Claim shape: id, username, email, exp, iat. Nothing in the service
// consumes it yet; clients hold it for future authenticated flows.
func GenerateToken(userID, username, email string) (string, error) {
	claims := jwt.MapClaims{
		"id":       userID,
		"username": username,
		"email":    email,
		"exp":      time.Now().Add(tokenExp).Unix(),
		"iat":      time.Now().Unix(),
	}
	_, tokenString, err := TokenAuth.Encode(claims)
	return tokenString, err
}

// GetUserIDFromClaims pulls the subject id out of decoded claims.
func GetUserIDFromClaims(claims map[string]interface{}) (string, error) {
	id, ok := claims["id"].(string)
	if !ok {
		return "", errors.New("id claim is missing or not a string")
	}
	return id, nil
}
