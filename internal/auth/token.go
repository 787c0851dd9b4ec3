package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Role ids as seeded in the roles table.
const (
	RoleAdministrator = 1
	RoleMember        = 2
)

// tokenTTL bounds a token's lifetime. Tokens are verified on every protected
// request, so an unbounded token would be a forever-credential.
const tokenTTL = 24 * time.Hour

// Claims are the signed contents of an auth token.
type Claims struct {
	UserID int `json:"id"`
	RoleID int `json:"role_id"`
	jwt.RegisteredClaims
}

// IssueToken signs a token carrying the user's id and role id.
func IssueToken(secret []byte, userID, roleID int) (string, error) {
	now := time.Now()
	claims := Claims{
		UserID: userID,
		RoleID: roleID,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(tokenTTL)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret)
}

// VerifyToken parses a token and checks its signature and expiry. Claims from
// an unverified token are never returned.
func VerifyToken(secret []byte, token string) (*Claims, error) {
	parsed, err := jwt.ParseWithClaims(token, &Claims{}, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return secret, nil
	})
	if err != nil {
		return nil, err
	}
	claims, ok := parsed.Claims.(*Claims)
	if !ok || !parsed.Valid {
		return nil, jwt.ErrTokenInvalidClaims
	}
	return claims, nil
}
