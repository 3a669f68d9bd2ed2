// Package auth verifies bearer tokens: an HS256 JWT carrying a userId claim
// that must also be backed by a stored session.
package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"event_hotels/internal/domain"
)

var (
	ErrMissingToken = errors.New("missing bearer token")
	ErrInvalidToken = errors.New("invalid token")
	ErrNoSession    = errors.New("no session for token")
)

type Claims struct {
	UserID int64 `json:"userId"`
	jwt.RegisteredClaims
}

type Authenticator struct {
	secret   []byte
	sessions domain.SessionReader
}

func New(secret string, sessions domain.SessionReader) *Authenticator {
	return &Authenticator{secret: []byte(secret), sessions: sessions}
}

// Issue signs a token for userID. A zero ttl issues a token without expiry.
func (a *Authenticator) Issue(userID int64, ttl time.Duration) (string, error) {
	claims := Claims{UserID: userID, RegisteredClaims: jwt.RegisteredClaims{IssuedAt: jwt.NewNumericDate(time.Now())}}
	if ttl != 0 {
		claims.ExpiresAt = jwt.NewNumericDate(time.Now().Add(ttl))
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(a.secret)
}

// Authenticate returns the user id for a valid token with a live session.
// Token problems wrap ErrInvalidToken or ErrNoSession; storage failures are
// returned as-is.
func (a *Authenticator) Authenticate(ctx context.Context, token string) (int64, error) {
	if token == "" {
		return 0, ErrMissingToken
	}
	claims := &Claims{}
	tok, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (any, error) {
		return a.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if !tok.Valid || claims.UserID <= 0 {
		return 0, ErrInvalidToken
	}

	s, err := a.sessions.FindSessionByToken(ctx, token)
	if err != nil {
		return 0, err
	}
	if s == nil || s.UserID != claims.UserID {
		return 0, ErrNoSession
	}
	return claims.UserID, nil
}

// BearerToken extracts the token from an Authorization header value.
func BearerToken(header string) (string, error) {
	scheme, token, ok := strings.Cut(strings.TrimSpace(header), " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return "", ErrMissingToken
	}
	token = strings.TrimSpace(token)
	if token == "" {
		return "", ErrMissingToken
	}
	return token, nil
}

// IsUnauthorized reports whether err means the caller is not authenticated.
func IsUnauthorized(err error) bool {
	return errors.Is(err, ErrMissingToken) || errors.Is(err, ErrInvalidToken) || errors.Is(err, ErrNoSession)
}

type ctxKey struct{}

func WithUserID(ctx context.Context, id int64) context.Context {
	return context.WithValue(ctx, ctxKey{}, id)
}

func UserID(ctx context.Context) (int64, bool) {
	id, ok := ctx.Value(ctxKey{}).(int64)
	return id, ok
}
