package session

import (
	"encoding/json"
	"errors"
	"log"
	"sync"
	"time"

	"github.com/carepoint/hospital-desk/internal/model"
)

// Preferences keys. The token and the user are always written and cleared together.
const (
	KeyToken = "session_token"
	KeyUser  = "session_user"
)

var (
	// ErrInvalidSession is returned when a login is attempted without a token or user ID
	ErrInvalidSession = errors.New("session requires a token and a user")
	// ErrSessionExpired is returned when a login is attempted with an already expired token
	ErrSessionExpired = errors.New("session expired")
)

// Storage is the durable key/value store a session is persisted in.
// fyne.Preferences satisfies it.
type Storage interface {
	String(key string) string
	SetString(key string, value string)
	RemoveValue(key string)
}

// Session is an authenticated token together with its user profile
type Session struct {
	Token string
	User  model.User
}

// Option configures a Store
type Option func(*Store)

// WithClock overrides the time source used for expiry checks
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		s.now = now
	}
}

// Store owns the active session and its persisted copy.
// It is safe for concurrent use.
type Store struct {
	mu       sync.RWMutex
	storage  Storage
	current  *Session
	now      func() time.Time
	onChange func(*Session)
}

// NewStore creates a store backed by storage. Call Restore to load a persisted session.
func NewStore(storage Storage, opts ...Option) *Store {
	s := &Store{
		storage: storage,
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// SetChangeCallback sets the function called after every login, logout and
// forced expiry. It receives the new session, or nil when logged out.
func (s *Store) SetChangeCallback(callback func(*Session)) {
	s.mu.Lock()
	s.onChange = callback
	s.mu.Unlock()
}

// Restore loads the persisted session. A token that is expired, undecodable
// or stored without its user is cleared. It returns the restored session or nil.
func (s *Store) Restore() *Session {
	token := s.storage.String(KeyToken)
	rawUser := s.storage.String(KeyUser)

	s.mu.Lock()
	defer s.mu.Unlock()

	if token == "" && rawUser == "" {
		s.current = nil
		return nil
	}

	var user model.User
	if token == "" || rawUser == "" || json.Unmarshal([]byte(rawUser), &user) != nil || user.ID == "" {
		log.Printf("Discarding incomplete persisted session")
		s.clearLocked()
		return nil
	}

	if expired(token, s.now()) {
		log.Printf("Persisted session for user %s has expired", user.ID)
		s.clearLocked()
		return nil
	}

	s.current = &Session{Token: token, User: user}
	log.Printf("Restored session for user %s (%s)", user.ID, user.UserType)
	return s.copyLocked()
}

// Login persists token and user and makes them the active session
func (s *Store) Login(token string, user model.User) error {
	if token == "" || user.ID == "" {
		return ErrInvalidSession
	}
	if expired(token, s.now()) {
		return ErrSessionExpired
	}
	rawUser, err := json.Marshal(user)
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.storage.SetString(KeyToken, token)
	s.storage.SetString(KeyUser, string(rawUser))
	s.current = &Session{Token: token, User: user}
	snapshot := s.copyLocked()
	callback := s.onChange
	s.mu.Unlock()

	log.Printf("Logged in as %s (%s)", user.ID, user.UserType)
	if callback != nil {
		callback(snapshot)
	}
	return nil
}

// Logout clears the active and the persisted session
func (s *Store) Logout() {
	s.mu.Lock()
	s.clearLocked()
	callback := s.onChange
	s.mu.Unlock()

	log.Printf("Logged out")
	if callback != nil {
		callback(nil)
	}
}

// Current returns a copy of the active session, or nil when logged out.
// An expired session is cleared and reported as nil.
func (s *Store) Current() *Session {
	s.mu.RLock()
	cur := s.current
	var snapshot *Session
	if cur != nil && !expired(cur.Token, s.now()) {
		snapshot = s.copyLocked()
	}
	s.mu.RUnlock()

	if cur != nil && snapshot == nil {
		s.expire(cur.Token)
	}
	return snapshot
}

// CurrentUser returns the active user, or nil when logged out
func (s *Store) CurrentUser() *model.User {
	if cur := s.Current(); cur != nil {
		return &cur.User
	}
	return nil
}

// Token returns the active access token, or "" when logged out
func (s *Store) Token() string {
	if cur := s.Current(); cur != nil {
		return cur.Token
	}
	return ""
}

// IsAuthenticated reports whether a non-expired session is active
func (s *Store) IsAuthenticated() bool {
	return s.Current() != nil
}

// expire logs out if token is still the active one
func (s *Store) expire(token string) {
	s.mu.Lock()
	if s.current == nil || s.current.Token != token {
		s.mu.Unlock()
		return
	}
	s.clearLocked()
	callback := s.onChange
	s.mu.Unlock()

	log.Printf("Session expired, logging out")
	if callback != nil {
		callback(nil)
	}
}

func (s *Store) clearLocked() {
	s.storage.RemoveValue(KeyToken)
	s.storage.RemoveValue(KeyUser)
	s.current = nil
}

func (s *Store) copyLocked() *Session {
	if s.current == nil {
		return nil
	}
	cp := *s.current
	return &cp
}
