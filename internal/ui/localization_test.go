package ui

import "testing"

func TestLocalizationFallback(t *testing.T) {
	l := NewLocalization()

	if got := l.GetText(KeyLogin); got != "Login" {
		t.Errorf("Expected English default, got %q", got)
	}

	l.SetLanguage("ru")
	if l.GetCurrentLanguage() != "ru" {
		t.Fatalf("Expected ru, got %s", l.GetCurrentLanguage())
	}
	if got := l.GetText(KeyLogin); got == "Login" {
		t.Error("Expected a Russian caption")
	}

	// Unknown codes keep the current language
	l.SetLanguage("xx")
	if l.GetCurrentLanguage() != "ru" {
		t.Errorf("Unknown language should be ignored, got %s", l.GetCurrentLanguage())
	}

	l.SetLanguage("system")
	if l.GetCurrentLanguage() != "en" {
		t.Errorf("system should map to en, got %s", l.GetCurrentLanguage())
	}

	if got := l.GetText("no_such_key"); got != "no_such_key" {
		t.Errorf("Missing keys should return the key, got %q", got)
	}
}

func TestEveryKeyTranslated(t *testing.T) {
	l := NewLocalization()
	english := l.texts["en"]

	for lang := range l.GetAvailableLanguages() {
		texts, ok := l.texts[lang]
		if !ok {
			t.Errorf("Language %s has no table", lang)
			continue
		}
		for key := range english {
			if _, ok := texts[key]; !ok {
				t.Errorf("Language %s is missing %s", lang, key)
			}
		}
	}
}
