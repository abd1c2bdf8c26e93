package session

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	"fyne.io/fyne/v2/test"
	"github.com/golang-jwt/jwt/v5"

	"github.com/carepoint/hospital-desk/internal/model"
)

var testNow = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

func fixedClock() time.Time { return testNow }

func makeToken(t *testing.T, exp time.Time) string {
	t.Helper()
	claims := jwt.RegisteredClaims{Subject: "user-1"}
	if !exp.IsZero() {
		claims.ExpiresAt = jwt.NewNumericDate(exp)
	}
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return tok
}

func patient() model.User {
	return model.User{ID: "user-1", Name: "Jane Roe", Email: "jane@example.com", UserType: model.UserTypePatient}
}

func TestLoginPersistsTokenAndUser(t *testing.T) {
	prefs := test.NewApp().Preferences()
	store := NewStore(prefs, WithClock(fixedClock))
	token := makeToken(t, testNow.Add(time.Hour))

	if err := store.Login(token, patient()); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if prefs.String(KeyToken) != token {
		t.Error("Token should be persisted")
	}
	var stored model.User
	if err := json.Unmarshal([]byte(prefs.String(KeyUser)), &stored); err != nil {
		t.Fatalf("Persisted user should be JSON: %v", err)
	}
	if stored.ID != "user-1" || stored.UserType != model.UserTypePatient {
		t.Errorf("Unexpected persisted user %+v", stored)
	}
	if !store.IsAuthenticated() {
		t.Error("Store should be authenticated after login")
	}
	if store.Token() != token {
		t.Error("Token() should return the active token")
	}
}

func TestLoginThenLogoutClearsStorage(t *testing.T) {
	prefs := test.NewApp().Preferences()
	store := NewStore(prefs, WithClock(fixedClock))

	if err := store.Login(makeToken(t, testNow.Add(time.Hour)), patient()); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	store.Logout()

	if prefs.String(KeyToken) != "" || prefs.String(KeyUser) != "" {
		t.Error("Logout should clear both persisted keys")
	}
	if store.CurrentUser() != nil || store.Token() != "" {
		t.Error("Logout should clear the active session")
	}
}

func TestLoginRejectsIncompleteOrExpiredSession(t *testing.T) {
	store := NewStore(test.NewApp().Preferences(), WithClock(fixedClock))

	tests := []struct {
		name  string
		token string
		user  model.User
		want  error
	}{
		{"empty token", "", patient(), ErrInvalidSession},
		{"empty user id", makeToken(t, testNow.Add(time.Hour)), model.User{Name: "x"}, ErrInvalidSession},
		{"expired token", makeToken(t, testNow.Add(-time.Minute)), patient(), ErrSessionExpired},
		{"garbage token", "not-a-jwt", patient(), ErrSessionExpired},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := store.Login(tt.token, tt.user)
			if !errors.Is(err, tt.want) {
				t.Errorf("Expected %v, got %v", tt.want, err)
			}
			if store.IsAuthenticated() {
				t.Error("Rejected login must not authenticate")
			}
		})
	}
}

func TestRestore(t *testing.T) {
	userJSON, _ := json.Marshal(patient())

	tests := []struct {
		name          string
		token         string
		user          string
		authenticated bool
	}{
		{"nothing stored", "", "", false},
		{"valid token", makeToken(t, testNow.Add(time.Hour)), string(userJSON), true},
		{"token without exp", makeToken(t, time.Time{}), string(userJSON), true},
		{"expired token", makeToken(t, testNow.Add(-time.Second)), string(userJSON), false},
		{"malformed token", "abc.def", string(userJSON), false},
		{"token without user", makeToken(t, testNow.Add(time.Hour)), "", false},
		{"user without token", "", string(userJSON), false},
		{"corrupt user", makeToken(t, testNow.Add(time.Hour)), "{", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			prefs := test.NewApp().Preferences()
			if tt.token != "" {
				prefs.SetString(KeyToken, tt.token)
			}
			if tt.user != "" {
				prefs.SetString(KeyUser, tt.user)
			}

			store := NewStore(prefs, WithClock(fixedClock))
			restored := store.Restore()

			if (restored != nil) != tt.authenticated {
				t.Errorf("Restore() = %v, expected authenticated=%v", restored, tt.authenticated)
			}
			if store.IsAuthenticated() != tt.authenticated {
				t.Errorf("IsAuthenticated() = %v, expected %v", store.IsAuthenticated(), tt.authenticated)
			}
			if !tt.authenticated && (prefs.String(KeyToken) != "" || prefs.String(KeyUser) != "") {
				t.Error("Unusable persisted session should be cleared")
			}
		})
	}
}

func TestUserPresentIffTokenNotExpired(t *testing.T) {
	now := testNow
	prefs := test.NewApp().Preferences()
	store := NewStore(prefs, WithClock(func() time.Time { return now }))

	var notified []*Session
	store.SetChangeCallback(func(s *Session) { notified = append(notified, s) })

	if err := store.Login(makeToken(t, testNow.Add(10*time.Minute)), patient()); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if store.CurrentUser() == nil {
		t.Fatal("User should be present while the token is valid")
	}

	// Move the clock past expiry
	now = testNow.Add(11 * time.Minute)

	if store.CurrentUser() != nil {
		t.Error("User must be absent once the token has expired")
	}
	if prefs.String(KeyToken) != "" || prefs.String(KeyUser) != "" {
		t.Error("Expiry should clear persisted state")
	}
	if len(notified) != 2 || notified[0] == nil || notified[1] != nil {
		t.Errorf("Expected login then logout notifications, got %v", notified)
	}
}

func TestTokenExpiry(t *testing.T) {
	exp := testNow.Add(time.Hour)

	got, ok, err := TokenExpiry(makeToken(t, exp))
	if err != nil || !ok {
		t.Fatalf("Expected exp claim, got ok=%v err=%v", ok, err)
	}
	if !got.Equal(exp) {
		t.Errorf("Expected %v, got %v", exp, got)
	}

	_, ok, err = TokenExpiry(makeToken(t, time.Time{}))
	if err != nil || ok {
		t.Errorf("Expected no exp claim, got ok=%v err=%v", ok, err)
	}

	if _, _, err := TokenExpiry("definitely not a token"); !errors.Is(err, ErrMalformedToken) {
		t.Errorf("Expected ErrMalformedToken, got %v", err)
	}
}
