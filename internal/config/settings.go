package config

import (
	"net/url"
	"os"
	"strings"
	"time"

	"fyne.io/fyne/v2"
)

// Settings keys for Fyne preferences
const (
	KeyBackendURL     = "backend_url"
	KeyLanguage       = "app_language"
	KeyRequestTimeout = "request_timeout_seconds"
)

// Environment variables that override stored preferences
const (
	EnvBackendURL = "HOSPITAL_BACKEND_URL"
)

// Default values
const (
	DefaultBackendURL     = "http://localhost:8001"
	DefaultLanguage       = "system"
	DefaultRequestTimeout = 30 * time.Second
)

// Bounds for the request timeout, in seconds
const (
	MinRequestTimeoutSeconds = 5
	MaxRequestTimeoutSeconds = 120
)

// Settings manages application configuration
type Settings struct {
	app fyne.App
}

// NewSettings creates a new settings manager
func NewSettings(app fyne.App) *Settings {
	return &Settings{app: app}
}

// GetBackendURL returns the stored backend base URL
func (s *Settings) GetBackendURL() string {
	u := s.app.Preferences().String(KeyBackendURL)
	if u == "" {
		s.SetBackendURL(DefaultBackendURL)
		return DefaultBackendURL
	}
	return u
}

// SetBackendURL stores the backend base URL without a trailing slash.
// An empty value restores the default.
func (s *Settings) SetBackendURL(u string) {
	u = NormalizeBackendURL(u)
	if u == "" {
		u = DefaultBackendURL
	}
	s.app.Preferences().SetString(KeyBackendURL, u)
}

// ResolveBackendURL returns the backend URL to use for this run: the
// environment override when set, otherwise the stored preference
func (s *Settings) ResolveBackendURL() string {
	if env := NormalizeBackendURL(os.Getenv(EnvBackendURL)); env != "" {
		return env
	}
	return s.GetBackendURL()
}

// GetRequestTimeout returns the HTTP client timeout
func (s *Settings) GetRequestTimeout() time.Duration {
	secs := s.app.Preferences().Int(KeyRequestTimeout)
	if secs <= 0 {
		s.SetRequestTimeout(DefaultRequestTimeout)
		return DefaultRequestTimeout
	}
	return time.Duration(secs) * time.Second
}

// SetRequestTimeout stores the HTTP client timeout, clamped to the allowed range
func (s *Settings) SetRequestTimeout(d time.Duration) {
	secs := int(d / time.Second)
	if secs < MinRequestTimeoutSeconds {
		secs = MinRequestTimeoutSeconds
	}
	if secs > MaxRequestTimeoutSeconds {
		secs = MaxRequestTimeoutSeconds
	}
	s.app.Preferences().SetInt(KeyRequestTimeout, secs)
}

// GetLanguage returns the configured language
func (s *Settings) GetLanguage() string {
	lang := s.app.Preferences().String(KeyLanguage)
	if lang == "" {
		s.SetLanguage(DefaultLanguage)
		return DefaultLanguage
	}
	return lang
}

// SetLanguage sets the application language
func (s *Settings) SetLanguage(lang string) {
	s.app.Preferences().SetString(KeyLanguage, lang)
}

// GetLanguageOptions returns available language options
func (s *Settings) GetLanguageOptions() map[string]string {
	return map[string]string{
		"system": "System Default",
		"en":     "English",
		"ru":     "Русский",
		"pt":     "Português",
	}
}

// NormalizeBackendURL trims whitespace and trailing slashes. It returns ""
// for values that are not absolute http(s) URLs.
func NormalizeBackendURL(raw string) string {
	raw = strings.TrimRight(strings.TrimSpace(raw), "/")
	if raw == "" {
		return ""
	}
	parsed, err := url.Parse(raw)
	if err != nil || parsed.Host == "" {
		return ""
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return ""
	}
	return raw
}
