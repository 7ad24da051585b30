package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/shaiso/Numerix/internal/answer"
	"github.com/shaiso/Numerix/internal/api"
	"github.com/shaiso/Numerix/internal/compute"
	"github.com/shaiso/Numerix/internal/config"
	"github.com/shaiso/Numerix/internal/ratelimit"
	"github.com/shaiso/Numerix/internal/telemetry"
)

func main() {
	// Инициализируем structured logging
	logger := telemetry.SetupLogger()
	logger.Info("starting numerix-api")

	cfg, err := config.Load()
	if err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	// Провайдер ответов для операции AI
	provider, err := buildProvider(context.Background(), cfg)
	if err != nil {
		logger.Error("failed to create answer provider", "error", err)
		os.Exit(1)
	}
	if closer, ok := provider.(interface{ Close() error }); ok {
		defer closer.Close()
	}
	logger.Info("answer provider ready", "provider", cfg.AnswerProvider)

	// Реестр операций: числовые плюс AI
	registry := compute.DefaultRegistry()
	registry.Register(answer.NewOperation(provider))

	limiter := ratelimit.New(cfg.RateLimitRPS, cfg.RateLimitBurst)

	// Создаём API handler
	handler := api.NewHandler(api.Config{
		Registry:      registry,
		Limiter:       limiter,
		OfficialEmail: cfg.OfficialEmail,
		Logger:        logger,
	})

	mux := http.NewServeMux()

	// Metrics вне цепочки middleware и контракта конвертов
	mux.Handle("GET /metrics", promhttp.Handler())

	// Регистрируем API маршруты
	handler.RegisterRoutes(mux)

	addr := ":" + cfg.Port

	// Создаём HTTP сервер с возможностью graceful shutdown
	server := &http.Server{
		Addr:    addr,
		Handler: mux,
	}

	// Запускаем сервер в горутине
	go func() {
		logger.Info("listening", "addr", addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	// Ожидаем сигнал завершения
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	<-ctx.Done()
	logger.Info("shutting down")

	// Graceful shutdown с таймаутом 10 секунд
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("shutdown error", "error", err)
	}

	logger.Info("stopped")
}

// buildProvider создаёт провайдера ответов по конфигурации.
// Отсутствие учётных данных не мешает старту: операция AI вернёт
// ошибку провайдера при обращении.
func buildProvider(ctx context.Context, cfg *config.Config) (answer.Provider, error) {
	switch cfg.AnswerProvider {
	case config.ProviderGemini:
		return answer.NewGeminiProvider(ctx, cfg.GeminiAPIKey)
	default:
		return answer.NewWolframProvider(cfg.WolframAppID, cfg.AnswerTimeout), nil
	}
}
