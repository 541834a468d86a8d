package server

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var errNoSession = errors.New("no valid session")

const tokenTTL = 12 * time.Hour

// tokenAuth issues and verifies signed team session tokens. The token
// carries only the team name; game state is never embedded.
type tokenAuth struct {
	secret []byte
}

func newTokenAuth(secret []byte) *tokenAuth {
	return &tokenAuth{secret: secret}
}

func (a *tokenAuth) Issue(team string) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   team,
		ID:        uuid.NewString(),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(tokenTTL)),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(a.secret)
}

// Verify returns the team name a valid token was issued to.
func (a *tokenAuth) Verify(token string) (string, error) {
	parsed, err := jwt.ParseWithClaims(token, &jwt.RegisteredClaims{}, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %q", t.Header["alg"])
		}
		return a.secret, nil
	})
	if err != nil || !parsed.Valid {
		return "", errNoSession
	}
	claims, ok := parsed.Claims.(*jwt.RegisteredClaims)
	if !ok || claims.Subject == "" {
		return "", errNoSession
	}
	return claims.Subject, nil
}

// teamFromToken resolves the Authorization header to a team name.
func teamFromToken(r *http.Request, tokens *tokenAuth) (string, error) {
	auth := r.Header.Get("Authorization")
	token, found := strings.CutPrefix(auth, "Bearer ")
	if !found || token == "" {
		return "", errNoSession
	}
	return tokens.Verify(token)
}
