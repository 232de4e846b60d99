// Package auth implements the identity primitives of the server: signed
// time-bounded access tokens and password credential hashing.
package auth

import (
	"errors"
	"time"

	"github.com/dmitrijs2005/newsportal/internal/common"
	"github.com/golang-jwt/jwt/v5"
)

// Claims carries the registered claim set plus the subject user id.
type Claims struct {
	jwt.RegisteredClaims
	UserID string
}

// GenerateToken issues an HS256-signed token for userID that expires
// validityDuration from now. The secret is process-wide configuration;
// rotating it invalidates every outstanding token.
func GenerateToken(userID string, secretKey []byte, validityDuration time.Duration) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(validityDuration)),
		},
		UserID: userID,
	})

	tokenString, err := token.SignedString(secretKey)
	if err != nil {
		return "", err
	}

	return tokenString, nil
}

// GetUserIDFromToken verifies the token signature and expiry and returns
// the embedded user id. A token that verifies but is past its expiry
// yields common.ErrTokenExpired; any other failure (bad signature,
// malformed string, wrong algorithm) yields common.ErrInvalidToken so
// that the two cases stay distinguishable to callers.
func GetUserIDFromToken(tokenString string, secretKey []byte) (string, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, common.ErrInvalidToken
		}
		return secretKey, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", common.ErrTokenExpired
		}
		return "", common.ErrInvalidToken
	}

	if !token.Valid {
		return "", common.ErrInvalidToken
	}

	return claims.UserID, nil
}
