package api

import (
	"log/slog"

	"github.com/shaiso/Numerix/internal/compute"
	"github.com/shaiso/Numerix/internal/ratelimit"
)

// Handler — главный обработчик API с зависимостями.
type Handler struct {
	registry *compute.Registry
	limiter  *ratelimit.Limiter
	email    string
	logger   *slog.Logger
}

// Config — конфигурация для создания Handler.
type Config struct {
	// Registry — реестр операций, включая AI.
	Registry *compute.Registry

	// Limiter — лимитер запросов на клиента. nil отключает лимитирование.
	Limiter *ratelimit.Limiter

	// OfficialEmail — значение official_email каждого конверта.
	OfficialEmail string

	// Logger — базовый логгер процесса.
	Logger *slog.Logger
}

// NewHandler создаёт новый Handler.
func NewHandler(cfg Config) *Handler {
	return &Handler{
		registry: cfg.Registry,
		limiter:  cfg.Limiter,
		email:    cfg.OfficialEmail,
		logger:   cfg.Logger,
	}
}
