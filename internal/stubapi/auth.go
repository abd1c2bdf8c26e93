package stubapi

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/carepoint/hospital-desk/internal/model"
)

// TokenTTL is the lifetime of issued access tokens
const TokenTTL = 24 * time.Hour

// ErrBadToken is returned for tokens that fail signature, algorithm or expiry checks
var ErrBadToken = errors.New("invalid token")

// Tokens issues and verifies HS256 access tokens whose subject is the user id
type Tokens struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// NewTokens creates a token codec for secret
func NewTokens(secret string) *Tokens {
	return &Tokens{secret: []byte(secret), ttl: TokenTTL, now: time.Now}
}

// Issue signs a token for userID
func (t *Tokens) Issue(userID string) (string, error) {
	now := t.now()
	claims := jwt.RegisteredClaims{
		Subject:   userID,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(t.ttl)),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(t.secret)
}

// Verify checks the signature and expiry of raw and returns its subject
func (t *Tokens) Verify(raw string) (string, error) {
	claims := &jwt.RegisteredClaims{}
	tok, err := jwt.ParseWithClaims(raw, claims, func(tok *jwt.Token) (any, error) {
		// block alg confusion
		if _, ok := tok.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrBadToken
		}
		return t.secret, nil
	}, jwt.WithTimeFunc(t.now))
	if err != nil || !tok.Valid || claims.Subject == "" {
		return "", ErrBadToken
	}
	return claims.Subject, nil
}

type ctxKey string

const userKey ctxKey = "user"

// userFrom returns the account attached by requireAuth
func userFrom(ctx context.Context) model.User {
	u, _ := ctx.Value(userKey).(model.User)
	return u
}

// requireAuth resolves the bearer token to an account or answers 401
func (s *Server) requireAuth(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		raw := strings.TrimPrefix(r.Header.Get("Authorization"), "Bearer ")
		if raw == "" || raw == r.Header.Get("Authorization") {
			writeDetail(w, http.StatusUnauthorized, "Not authenticated")
			return
		}
		uid, err := s.tokens.Verify(raw)
		if err != nil {
			writeDetail(w, http.StatusUnauthorized, "Invalid token")
			return
		}
		user, err := s.store.UserByID(uid)
		if err != nil {
			writeDetail(w, http.StatusUnauthorized, "User not found")
			return
		}
		next(w, r.WithContext(context.WithValue(r.Context(), userKey, user)))
	}
}
