// Package auth holds the two credential primitives of the marketplace:
// signed session tokens (jwt.go) and password hashing (password.go).
package auth

import (
	"time"

	"github.com/foundergrid/perkmarket/internal/common"
	"github.com/golang-jwt/jwt/v5"
)

// Claims is the session token payload: the registered claim set plus the
// subject's user id and platform role. The role is fixed at issuance time
// and is not re-checked against the user record until the token expires.
type Claims struct {
	jwt.RegisteredClaims
	UserID string `json:"uid"`
	Role   string `json:"role"`
}

// IssueAccessToken mints a signed HS256 token for the given user and role,
// valid for validityDuration from now.
func IssueAccessToken(userID, role string, secretKey []byte, validityDuration time.Duration) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(validityDuration)),
		},
		UserID: userID,
		Role:   role,
	})

	tokenString, err := token.SignedString(secretKey)
	if err != nil {
		return "", err
	}

	return tokenString, nil
}

// ParseAccessToken verifies the signature and expiry of tokenString and
// returns its claims. Malformed, tampered, and expired tokens all yield
// common.ErrInvalidToken; callers cannot distinguish the cases.
func ParseAccessToken(tokenString string, secretKey []byte) (*Claims, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return secretKey, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return nil, common.ErrInvalidToken
	}

	if !token.Valid {
		return nil, common.ErrInvalidToken
	}

	return claims, nil
}
