package utils

import (
	"errors"

	"github.com/golang-jwt/jwt/v4"
)

// AccessTokenClaims are the claims the backend puts in access tokens.
type AccessTokenClaims struct {
	Permissions []string `json:"permissions,omitempty"`
	Roles       []string `json:"roles,omitempty"`
	jwt.RegisteredClaims
}

func ParseAccessToken(tokenString, secret string) (*AccessTokenClaims, error) {
	if secret == "" {
		return nil, errors.New("jwt secret is not configured")
	}

	claims := new(AccessTokenClaims)
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("invalid token signing method")
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, err
	}

	if !token.Valid || claims.Subject == "" {
		return nil, errors.New("invalid token")
	}

	return claims, nil
}
