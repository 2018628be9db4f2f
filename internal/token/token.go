// Package token issues and verifies the bearer tokens used by the API.
// Tokens are HS256 JWTs carrying the user id and email; there is no
// revocation list, so a token stays valid for its full lifetime.
package token

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"vita/internal/models"
)

// Verification failure kinds. The middleware surfaces a different message for
// each, so expired tokens are reported distinctly from tampered ones.
var (
	ErrMalformed = errors.New("token is malformed or has an invalid signature")
	ErrExpired   = errors.New("token has expired")
)

// Claims is the signed payload inside a bearer token.
type Claims struct {
	UserID uint   `json:"id"`
	Email  string `json:"email"`
	jwt.RegisteredClaims
}

// Issuer signs and verifies tokens with a server-held symmetric secret.
type Issuer struct {
	secret []byte
	expiry time.Duration
}

// NewIssuer creates an Issuer with the given secret and token lifetime.
func NewIssuer(secret string, expiry time.Duration) *Issuer {
	return &Issuer{secret: []byte(secret), expiry: expiry}
}

// Issue signs a token for the given user with the configured expiry.
func (i *Issuer) Issue(user *models.User) (string, error) {
	now := time.Now()
	claims := &Claims{
		UserID: user.ID,
		Email:  user.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(i.expiry)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    "vita-api",
			Subject:   fmt.Sprintf("%d", user.ID),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(i.secret)
}

// Verify parses and validates a token, returning its claims. It reports
// ErrExpired for tokens past their expiry and ErrMalformed for everything
// else (bad signature, wrong algorithm, garbage input).
func (i *Issuer) Verify(tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return i.secret, nil
	})

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpired
		}
		return nil, ErrMalformed
	}
	if !token.Valid {
		return nil, ErrMalformed
	}

	return claims, nil
}
