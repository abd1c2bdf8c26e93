package session

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrMalformedToken is returned when a token cannot be decoded as a JWT
var ErrMalformedToken = errors.New("malformed token")

// TokenExpiry decodes the exp claim of a JWT without verifying its signature;
// verification is the backend's job. ok is false when the token carries no exp claim.
func TokenExpiry(raw string) (exp time.Time, ok bool, err error) {
	claims := &jwt.RegisteredClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(raw, claims); err != nil {
		return time.Time{}, false, fmt.Errorf("%w: %v", ErrMalformedToken, err)
	}
	if claims.ExpiresAt == nil {
		return time.Time{}, false, nil
	}
	return claims.ExpiresAt.Time, true, nil
}

// expired reports whether raw is past its exp claim at now. Undecodable
// tokens count as expired.
func expired(raw string, now time.Time) bool {
	exp, ok, err := TokenExpiry(raw)
	if err != nil {
		return true
	}
	return ok && exp.Before(now)
}
