package config

import (
	"testing"
	"time"
)

// Load Tests

func TestLoad_Defaults(t *testing.T) {
	// Все переменные пусты — действуют значения по умолчанию
	for _, name := range []string{
		"API_PORT", "OFFICIAL_EMAIL", "ANSWER_PROVIDER", "WOLFRAM_APP_ID",
		"GEMINI_API_KEY", "ANSWER_TIMEOUT_SEC", "RATE_LIMIT_RPS", "RATE_LIMIT_BURST",
	} {
		t.Setenv(name, "")
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Port != "8080" {
		t.Errorf("expected port 8080, got %s", cfg.Port)
	}
	if cfg.OfficialEmail != "official@numerix.dev" {
		t.Errorf("unexpected official email %s", cfg.OfficialEmail)
	}
	if cfg.AnswerProvider != ProviderWolfram {
		t.Errorf("expected wolfram provider, got %s", cfg.AnswerProvider)
	}
	if cfg.AnswerTimeout != 10*time.Second {
		t.Errorf("expected 10s timeout, got %s", cfg.AnswerTimeout)
	}
	if cfg.RateLimitRPS != 10 {
		t.Errorf("expected rps 10, got %v", cfg.RateLimitRPS)
	}
	if cfg.RateLimitBurst != 20 {
		t.Errorf("expected burst 20, got %d", cfg.RateLimitBurst)
	}
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("API_PORT", "9090")
	t.Setenv("OFFICIAL_EMAIL", "ops@example.com")
	t.Setenv("ANSWER_PROVIDER", "gemini")
	t.Setenv("GEMINI_API_KEY", "key-123")
	t.Setenv("ANSWER_TIMEOUT_SEC", "3")
	t.Setenv("RATE_LIMIT_RPS", "2.5")
	t.Setenv("RATE_LIMIT_BURST", "5")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Port != "9090" {
		t.Errorf("expected port 9090, got %s", cfg.Port)
	}
	if cfg.OfficialEmail != "ops@example.com" {
		t.Errorf("unexpected official email %s", cfg.OfficialEmail)
	}
	if cfg.AnswerProvider != ProviderGemini {
		t.Errorf("expected gemini provider, got %s", cfg.AnswerProvider)
	}
	if cfg.GeminiAPIKey != "key-123" {
		t.Errorf("unexpected gemini key %s", cfg.GeminiAPIKey)
	}
	if cfg.AnswerTimeout != 3*time.Second {
		t.Errorf("expected 3s timeout, got %s", cfg.AnswerTimeout)
	}
	if cfg.RateLimitRPS != 2.5 {
		t.Errorf("expected rps 2.5, got %v", cfg.RateLimitRPS)
	}
	if cfg.RateLimitBurst != 5 {
		t.Errorf("expected burst 5, got %d", cfg.RateLimitBurst)
	}
}

func TestLoad_UnknownProvider(t *testing.T) {
	t.Setenv("ANSWER_PROVIDER", "oracle")

	if _, err := Load(); err == nil {
		t.Fatal("expected error for unknown provider")
	}
}

func TestLoad_BadNumbersFallBack(t *testing.T) {
	t.Setenv("ANSWER_PROVIDER", "")
	t.Setenv("ANSWER_TIMEOUT_SEC", "soon")
	t.Setenv("RATE_LIMIT_RPS", "many")
	t.Setenv("RATE_LIMIT_BURST", "lots")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.AnswerTimeout != 10*time.Second {
		t.Errorf("expected default timeout, got %s", cfg.AnswerTimeout)
	}
	if cfg.RateLimitRPS != 10 {
		t.Errorf("expected default rps, got %v", cfg.RateLimitRPS)
	}
	if cfg.RateLimitBurst != 20 {
		t.Errorf("expected default burst, got %d", cfg.RateLimitBurst)
	}
}
