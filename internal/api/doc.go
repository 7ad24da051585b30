// Package api содержит HTTP API сервер.
//
// Структура:
//   - handler.go    — Handler с DI (реестр операций, лимитер, logger)
//   - routes.go     — регистрация маршрутов
//   - middleware.go — middleware (recovery, request ID, logging, metrics, rate limit)
//   - response.go   — конверты ответов и отображение ошибок
//   - dispatch.go   — диспетчер /bfhl, health, fallback 404
//
// API предоставляет единственный рабочий endpoint POST /bfhl:
// тело запроса — JSON-объект ровно с одним ключом операции
// (fibonacci, prime, hcf, lcm, AI). Ответ всегда в едином конверте
// с is_success, official_email и ровно одним из data/error.
package api
