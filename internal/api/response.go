package api

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/shaiso/Numerix/internal/domain"
)

// SuccessResponse — конверт успешного ответа.
//
// Несёт data и никогда — error: взаимоисключение полей закреплено
// раздельными типами конвертов.
type SuccessResponse struct {
	IsSuccess     bool   `json:"is_success"`
	OfficialEmail string `json:"official_email"`
	Data          any    `json:"data"`
}

// ErrorResponse — конверт ответа с ошибкой.
type ErrorResponse struct {
	IsSuccess     bool             `json:"is_success"`
	OfficialEmail string           `json:"official_email"`
	Error         string           `json:"error"`
	ErrorCode     domain.ErrorCode `json:"error_code"`
}

// HealthData — содержимое data ответа GET /health.
type HealthData struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
}

// JSON отправляет JSON ответ.
func JSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// Success отправляет 200 с данными в конверте.
func Success(w http.ResponseWriter, email string, data any) {
	JSON(w, http.StatusOK, SuccessResponse{
		IsSuccess:     true,
		OfficialEmail: email,
		Data:          data,
	})
}

// Failure отправляет конверт ошибки со статусом, закреплённым за кодом.
func Failure(w http.ResponseWriter, email string, code domain.ErrorCode, message string) {
	JSON(w, code.HTTPStatus(), ErrorResponse{
		OfficialEmail: email,
		Error:         message,
		ErrorCode:     code,
	})
}

// FailureFromError извлекает код конверта из ошибки и отправляет ответ.
//
// Ошибки без кода — неожиданные: подробности уходят в лог, клиенту
// отдаётся internal_error без внутренностей. Возвращает записанный код.
func FailureFromError(w http.ResponseWriter, logger *slog.Logger, email string, err error) domain.ErrorCode {
	if e, ok := domain.AsError(err); ok {
		Failure(w, email, e.Code, e.Message)
		return e.Code
	}

	logger.Error("internal error", "error", err)
	Failure(w, email, domain.ErrCodeInternal, "internal server error")
	return domain.ErrCodeInternal
}
