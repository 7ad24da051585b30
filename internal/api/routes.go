package api

import (
	"net/http"
)

// RegisterRoutes регистрирует все маршруты API.
func (h *Handler) RegisterRoutes(mux *http.ServeMux) {
	// Middleware chain
	chain := Chain(
		Recovery(h.logger, h.email),
		RequestID(h.logger),
		Logging(),
		Metrics(),
		RateLimit(h.limiter, h.email),
	)

	// Метод проверяется внутри Dispatch: не-POST должен получить
	// конверт method_not_allowed, а не пустой 405 от mux.
	mux.Handle("/bfhl", chain(http.HandlerFunc(h.Dispatch)))
	mux.Handle("GET /health", chain(http.HandlerFunc(h.Health)))

	// Несуществующие маршруты тоже отвечают конвертом.
	mux.Handle("/", chain(http.HandlerFunc(h.NotFound)))
}
