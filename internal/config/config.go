package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Провайдеры ответов, допустимые в ANSWER_PROVIDER.
const (
	// ProviderWolfram — Wolfram|Alpha Short Answers API (по умолчанию).
	ProviderWolfram = "wolfram"

	// ProviderGemini — Google GenAI.
	ProviderGemini = "gemini"
)

// Config — конфигурация процесса.
//
// Заполняется из переменных окружения один раз при старте и дальше
// только читается. Отсутствие учётных данных провайдера не считается
// ошибкой загрузки: числовые операции работают без них, а операция AI
// вернёт ошибку провайдера при обращении.
type Config struct {
	// Port — порт HTTP-сервера (API_PORT).
	Port string

	// OfficialEmail — значение official_email в каждом конверте ответа
	// (OFFICIAL_EMAIL).
	OfficialEmail string

	// AnswerProvider — выбранный провайдер ответов (ANSWER_PROVIDER):
	// wolfram либо gemini.
	AnswerProvider string

	// WolframAppID — учётные данные Short Answers API (WOLFRAM_APP_ID).
	WolframAppID string

	// GeminiAPIKey — учётные данные GenAI (GEMINI_API_KEY).
	GeminiAPIKey string

	// AnswerTimeout — тайм-аут исходящего вызова провайдера
	// (ANSWER_TIMEOUT_SEC).
	AnswerTimeout time.Duration

	// RateLimitRPS — устойчивая частота запросов на клиента
	// (RATE_LIMIT_RPS). Ноль и меньше отключает лимитер.
	RateLimitRPS float64

	// RateLimitBurst — размер всплеска на клиента (RATE_LIMIT_BURST).
	RateLimitBurst int
}

// Load читает конфигурацию из окружения.
// Возвращает ошибку при неизвестном ANSWER_PROVIDER.
func Load() (*Config, error) {
	cfg := &Config{
		Port:           envOr("API_PORT", "8080"),
		OfficialEmail:  envOr("OFFICIAL_EMAIL", "official@numerix.dev"),
		AnswerProvider: envOr("ANSWER_PROVIDER", ProviderWolfram),
		WolframAppID:   os.Getenv("WOLFRAM_APP_ID"),
		GeminiAPIKey:   os.Getenv("GEMINI_API_KEY"),
		AnswerTimeout:  time.Duration(envIntOr("ANSWER_TIMEOUT_SEC", 10)) * time.Second,
		RateLimitRPS:   envFloatOr("RATE_LIMIT_RPS", 10),
		RateLimitBurst: envIntOr("RATE_LIMIT_BURST", 20),
	}

	switch cfg.AnswerProvider {
	case ProviderWolfram, ProviderGemini:
	default:
		return nil, fmt.Errorf("unknown ANSWER_PROVIDER: %q", cfg.AnswerProvider)
	}

	return cfg, nil
}

// envOr возвращает значение переменной окружения или значение
// по умолчанию, если переменная пуста.
func envOr(name, def string) string {
	if v := os.Getenv(name); v != "" {
		return v
	}
	return def
}

// envIntOr читает целую переменную окружения.
// Нечисловые значения молча заменяются значением по умолчанию.
func envIntOr(name string, def int) int {
	v := os.Getenv(name)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}

// envFloatOr читает вещественную переменную окружения.
func envFloatOr(name string, def float64) float64 {
	v := os.Getenv(name)
	if v == "" {
		return def
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return def
	}
	return f
}
