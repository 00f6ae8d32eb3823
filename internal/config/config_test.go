package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatal(err)
	}
	if cfg.APIBaseURL != "http://localhost:8000" {
		t.Errorf("unexpected default API URL %q", cfg.APIBaseURL)
	}
	if cfg.HTTPTimeout != 60*time.Second {
		t.Errorf("unexpected default timeout %v", cfg.HTTPTimeout)
	}
	if !cfg.QuizTimer {
		t.Error("quiz timer should default to on")
	}
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("SOCRATIC_API_URL", "https://api.example.com")
	t.Setenv("SOCRATIC_HTTP_TIMEOUT", "30s")
	t.Setenv("SOCRATIC_QUIZ_TIMER", "false")

	cfg, err := Load()
	if err != nil {
		t.Fatal(err)
	}
	if cfg.APIBaseURL != "https://api.example.com" {
		t.Errorf("API URL not read from env: %q", cfg.APIBaseURL)
	}
	if cfg.HTTPTimeout != 30*time.Second {
		t.Errorf("timeout not read from env: %v", cfg.HTTPTimeout)
	}
	if cfg.QuizTimer {
		t.Error("quiz timer should be off")
	}
}

func TestLoadRejectsInvalidURL(t *testing.T) {
	for _, bad := range []string{"not a url", "localhost:8000", "/just/a/path"} {
		t.Setenv("SOCRATIC_API_URL", bad)
		if _, err := Load(); err == nil {
			t.Errorf("expected error for %q", bad)
		}
	}
}

func TestLoadRejectsNonPositiveTimeout(t *testing.T) {
	t.Setenv("SOCRATIC_HTTP_TIMEOUT", "0s")
	if _, err := Load(); err == nil {
		t.Error("expected error for zero timeout")
	}
}
