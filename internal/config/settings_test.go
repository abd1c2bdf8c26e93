package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"fyne.io/fyne/v2/test"
)

func TestNewSettings(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if settings.app != app {
		t.Error("Settings app reference should match provided app")
	}
}

func TestBackendURL(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	// Test default value
	if got := settings.GetBackendURL(); got != DefaultBackendURL {
		t.Errorf("Expected default backend URL %s, got %s", DefaultBackendURL, got)
	}

	// Trailing slash is trimmed
	settings.SetBackendURL("https://clinic.example.com/ ")
	if got := settings.GetBackendURL(); got != "https://clinic.example.com" {
		t.Errorf("Expected trimmed URL, got %s", got)
	}

	// Invalid values fall back to the default
	settings.SetBackendURL("ftp://clinic.example.com")
	if got := settings.GetBackendURL(); got != DefaultBackendURL {
		t.Errorf("Invalid URL should reset to default, got %s", got)
	}
}

func TestResolveBackendURL(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)
	settings.SetBackendURL("http://stored.example.com")

	t.Setenv(EnvBackendURL, "")
	if got := settings.ResolveBackendURL(); got != "http://stored.example.com" {
		t.Errorf("Expected stored URL without override, got %s", got)
	}

	t.Setenv(EnvBackendURL, "http://env.example.com/")
	if got := settings.ResolveBackendURL(); got != "http://env.example.com" {
		t.Errorf("Expected environment override, got %s", got)
	}

	t.Setenv(EnvBackendURL, "not a url")
	if got := settings.ResolveBackendURL(); got != "http://stored.example.com" {
		t.Errorf("Invalid override should be ignored, got %s", got)
	}
}

func TestRequestTimeout(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if got := settings.GetRequestTimeout(); got != DefaultRequestTimeout {
		t.Errorf("Expected default timeout %v, got %v", DefaultRequestTimeout, got)
	}

	settings.SetRequestTimeout(45 * time.Second)
	if got := settings.GetRequestTimeout(); got != 45*time.Second {
		t.Errorf("Expected 45s, got %v", got)
	}

	// Test boundary values
	settings.SetRequestTimeout(time.Second)
	if got := settings.GetRequestTimeout(); got != MinRequestTimeoutSeconds*time.Second {
		t.Errorf("Timeout should be clamped to minimum, got %v", got)
	}

	settings.SetRequestTimeout(time.Hour)
	if got := settings.GetRequestTimeout(); got != MaxRequestTimeoutSeconds*time.Second {
		t.Errorf("Timeout should be clamped to maximum, got %v", got)
	}
}

func TestLanguage(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	// Test default value
	lang := settings.GetLanguage()
	if lang != DefaultLanguage {
		t.Errorf("Expected default language %s, got %s", DefaultLanguage, lang)
	}

	// Test setting custom value
	settings.SetLanguage("pt")

	retrievedLang := settings.GetLanguage()
	if retrievedLang != "pt" {
		t.Errorf("Expected language 'pt', got %s", retrievedLang)
	}
}

func TestGetLanguageOptions(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	options := settings.GetLanguageOptions()

	expectedLangs := []string{"system", "en", "ru", "pt"}
	for _, lang := range expectedLangs {
		if _, exists := options[lang]; !exists {
			t.Errorf("Expected language option '%s' to exist", lang)
		}
	}

	if len(options) != len(expectedLangs) {
		t.Errorf("Expected %d language options, got %d", len(expectedLangs), len(options))
	}
}

func TestLoadEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.env")
	if err := os.WriteFile(path, []byte("HOSPITAL_DESK_TEST_VALUE=from-file\n"), 0600); err != nil {
		t.Fatalf("write env file: %v", err)
	}
	t.Cleanup(func() { os.Unsetenv("HOSPITAL_DESK_TEST_VALUE") })

	if err := LoadEnv(path, filepath.Join(dir, "missing.env")); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if got := os.Getenv("HOSPITAL_DESK_TEST_VALUE"); got != "from-file" {
		t.Errorf("Expected value from file, got %q", got)
	}
}
