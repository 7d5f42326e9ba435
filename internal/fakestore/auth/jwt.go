// Package auth issues and checks the tokens handed out by the fakestore
// login endpoint.
package auth

import (
	"strconv"
	"time"

	"github.com/dmitrijs2005/storefront/internal/common"
	"github.com/golang-jwt/jwt/v5"
)

// Claims mirror the demo upstream: the subject is the user id and "user"
// carries the username.
type Claims struct {
	jwt.RegisteredClaims
	User string `json:"user"`
}

// GenerateToken signs an HS256 token for the user. A zero validity issues
// a token without expiry, as the demo upstream does.
func GenerateToken(userID int, username string, secretKey []byte, validity time.Duration) (string, error) {
	now := time.Now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:  strconv.Itoa(userID),
			IssuedAt: jwt.NewNumericDate(now),
		},
		User: username,
	}
	if validity != 0 {
		claims.ExpiresAt = jwt.NewNumericDate(now.Add(validity))
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secretKey)
}

// ParseToken verifies tokenString and returns the user id it was issued to.
func ParseToken(tokenString string, secretKey []byte) (int, *Claims, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return secretKey, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return 0, nil, err
	}
	if !token.Valid {
		return 0, nil, common.ErrInvalidToken
	}

	id, err := strconv.Atoi(claims.Subject)
	if err != nil {
		return 0, nil, common.ErrInvalidToken
	}
	return id, claims, nil
}
