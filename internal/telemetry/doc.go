// Package telemetry обеспечивает наблюдаемость сервиса.
//
// Включает:
//   - logging.go — structured logging через slog
//   - metrics.go — Prometheus метрики
//
// Логгер настраивается один раз при старте процесса (LOG_LEVEL,
// LOG_FORMAT) и передаётся по запросу через context. Метрики
// экспортируются на /metrics endpoint.
package telemetry
