package api

import (
	"errors"
	"io"
	"mime"
	"net/http"
	"time"

	"github.com/shaiso/Numerix/internal/compute"
	"github.com/shaiso/Numerix/internal/domain"
	"github.com/shaiso/Numerix/internal/telemetry"
)

// maxBodySize — предел чтения тела запроса. Самое большое допустимое
// тело — массив из 500 целых, это десятки килобайт с запасом.
const maxBodySize = 1 << 20

// Dispatch обрабатывает POST /bfhl.
//
// Порядок проверок фиксирован: метод → Content-Type → декодирование
// тела в вариант операции → выполнение по реестру → конверт. Любое
// нарушение прерывает обработку на своём шаге, до вычислений дело
// не доходит.
func (h *Handler) Dispatch(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		Failure(w, h.email, domain.ErrCodeMethodNotAllowed,
			"only POST is allowed on this route")
		return
	}

	if !isJSONContentType(r.Header.Get("Content-Type")) {
		Failure(w, h.email, domain.ErrCodeInvalidContentType,
			"Content-Type must be application/json")
		return
	}

	body, err := io.ReadAll(io.LimitReader(r.Body, maxBodySize))
	if err != nil {
		Failure(w, h.email, domain.ErrCodeInvalidJSON,
			"failed to read request body")
		return
	}

	logger := telemetry.FromContext(r.Context())

	op, err := domain.ParseOperation(body)
	if err != nil {
		FailureFromError(w, logger, h.email, err)
		return
	}

	impl, err := h.registry.Get(op.Kind)
	if err != nil {
		// распознанный ключ без зарегистрированной операции:
		// для клиента это такой же неизвестный ключ
		if errors.Is(err, compute.ErrUnknownOperation) {
			Failure(w, h.email, domain.ErrCodeUnknownKey,
				"operation is not available")
			return
		}
		FailureFromError(w, logger, h.email, err)
		return
	}

	logger = telemetry.WithOperation(logger, op.Kind.String())

	data, err := impl.Execute(r.Context(), op.Raw)
	if err != nil {
		code := FailureFromError(w, logger, h.email, err)
		logger.Info("operation failed", "error_code", code.String())
		telemetry.OperationsTotal.WithLabelValues(op.Kind.String(), code.String()).Inc()
		return
	}

	telemetry.OperationsTotal.WithLabelValues(op.Kind.String(), "success").Inc()
	Success(w, h.email, data)
}

// Health обрабатывает GET /health.
func (h *Handler) Health(w http.ResponseWriter, _ *http.Request) {
	Success(w, h.email, HealthData{
		Status:    "ok",
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
}

// NotFound обрабатывает несуществующие маршруты.
func (h *Handler) NotFound(w http.ResponseWriter, _ *http.Request) {
	Failure(w, h.email, domain.ErrCodeNotFound, "route not found")
}

// isJSONContentType проверяет, что заявленный Content-Type —
// application/json. Параметры вида "; charset=utf-8" допустимы.
func isJSONContentType(ct string) bool {
	mediaType, _, err := mime.ParseMediaType(ct)
	if err != nil {
		return false
	}
	return mediaType == "application/json"
}
