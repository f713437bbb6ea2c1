// Package auth mints and verifies the session tokens handed out on login.
package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/taskboard/internal/common"
	"github.com/dmitrijs2005/taskboard/internal/models"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Claims carries the registered claims plus the session's user.
type Claims struct {
	jwt.RegisteredClaims
	UserID   string `json:"uid"`
	Username string `json:"usr"`
}

// TokenIssuer signs HS256 session tokens. A zero TTL issues tokens that do
// not expire.
type TokenIssuer struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewTokenIssuer(secret string, ttl time.Duration) *TokenIssuer {
	return &TokenIssuer{secret: []byte(secret), ttl: ttl, now: time.Now}
}

// Issue returns a fresh token for u. Every call yields a distinct token
// because each carries its own jti.
func (i *TokenIssuer) Issue(u models.User) (string, error) {
	now := i.now()
	rc := jwt.RegisteredClaims{
		ID:       uuid.NewString(),
		Subject:  u.ID,
		IssuedAt: jwt.NewNumericDate(now),
	}
	if i.ttl > 0 {
		rc.ExpiresAt = jwt.NewNumericDate(now.Add(i.ttl))
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: rc,
		UserID:           u.ID,
		Username:         u.Username,
	})
	s, err := token.SignedString(i.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return s, nil
}

// Parse verifies tokenString and returns its claims. Any failure is
// reported as common.ErrInvalidToken.
func (i *TokenIssuer) Parse(tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
		return i.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(i.now),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, fmt.Errorf("%w: expired", common.ErrInvalidToken)
		}
		return nil, fmt.Errorf("%w: %v", common.ErrInvalidToken, err)
	}
	if !token.Valid || claims.UserID == "" {
		return nil, common.ErrInvalidToken
	}
	return claims, nil
}

// UserID is a shortcut for Parse(tokenString).UserID.
func (i *TokenIssuer) UserID(tokenString string) (string, error) {
	c, err := i.Parse(tokenString)
	if err != nil {
		return "", err
	}
	return c.UserID, nil
}
