package domain

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrorCode — машиночитаемый код ошибки в конверте ответа.
//
// Закрытое перечисление: каждый код имеет фиксированный HTTP-статус
// (см. HTTPStatus). Коды стабильны и входят в контракт API — клиенты
// ветвятся по ним программно.
type ErrorCode string

const (
	// ErrCodeInvalidContentType — Content-Type запроса не application/json.
	ErrCodeInvalidContentType ErrorCode = "invalid_content_type"

	// ErrCodeInvalidJSON — тело запроса не является корректным JSON.
	ErrCodeInvalidJSON ErrorCode = "invalid_json"

	// ErrCodeBadKeyCount — тело не объект или содержит не ровно один ключ.
	ErrCodeBadKeyCount ErrorCode = "bad_key_count"

	// ErrCodeUnknownKey — единственный ключ не входит в набор операций.
	ErrCodeUnknownKey ErrorCode = "unknown_key"

	// ErrCodeNotFound — маршрут не найден.
	ErrCodeNotFound ErrorCode = "not_found"

	// ErrCodeMethodNotAllowed — метод запроса не поддерживается маршрутом.
	ErrCodeMethodNotAllowed ErrorCode = "method_not_allowed"

	// ErrCodeInvalidFibonacci — значение fibonacci не является
	// неотрицательным целым числом.
	ErrCodeInvalidFibonacci ErrorCode = "invalid_fibonacci"

	// ErrCodeFibonacciTooLarge — индекс fibonacci превышает максимум.
	ErrCodeFibonacciTooLarge ErrorCode = "fibonacci_too_large"

	// ErrCodeInvalidPrime — значение prime не является непустым массивом.
	ErrCodeInvalidPrime ErrorCode = "invalid_prime"

	// ErrCodePrimeTooLarge — массив prime длиннее допустимого.
	ErrCodePrimeTooLarge ErrorCode = "prime_too_large"

	// ErrCodePrimeBadValue — элемент массива prime не является
	// безопасным целым.
	ErrCodePrimeBadValue ErrorCode = "prime_bad_value"

	// ErrCodeInvalidHCF — значение hcf не является непустым массивом.
	ErrCodeInvalidHCF ErrorCode = "invalid_hcf"

	// ErrCodeHCFTooLarge — массив hcf длиннее допустимого.
	ErrCodeHCFTooLarge ErrorCode = "hcf_too_large"

	// ErrCodeHCFBadValue — элемент массива hcf не является безопасным целым.
	ErrCodeHCFBadValue ErrorCode = "hcf_bad_value"

	// ErrCodeInvalidLCM — значение lcm не является непустым массивом.
	ErrCodeInvalidLCM ErrorCode = "invalid_lcm"

	// ErrCodeLCMTooLarge — массив lcm длиннее допустимого.
	ErrCodeLCMTooLarge ErrorCode = "lcm_too_large"

	// ErrCodeLCMBadValue — элемент массива lcm не является безопасным целым.
	ErrCodeLCMBadValue ErrorCode = "lcm_bad_value"

	// ErrCodeLCMOverflow — промежуточное НОК вышло за безопасную границу.
	ErrCodeLCMOverflow ErrorCode = "lcm_overflow"

	// ErrCodeInvalidAI — значение AI не является непустой строкой
	// (в том числе после санитизации).
	ErrCodeInvalidAI ErrorCode = "invalid_ai"

	// ErrCodeAIProviderError — вызов внешнего провайдера ответов не удался
	// либо учётные данные не настроены.
	ErrCodeAIProviderError ErrorCode = "ai_provider_error"

	// ErrCodeAINoAnswer — провайдер ответил, но пригодного токена нет.
	ErrCodeAINoAnswer ErrorCode = "ai_no_answer"

	// ErrCodeInternal — неожиданная внутренняя ошибка.
	ErrCodeInternal ErrorCode = "internal_error"
)

// HTTPStatus возвращает HTTP-статус, закреплённый за кодом.
// Неизвестные коды считаются внутренней ошибкой.
func (c ErrorCode) HTTPStatus() int {
	switch c {
	case ErrCodeInvalidContentType, ErrCodeInvalidJSON, ErrCodeBadKeyCount:
		return http.StatusBadRequest
	case ErrCodeUnknownKey, ErrCodeNotFound:
		return http.StatusNotFound
	case ErrCodeMethodNotAllowed:
		return http.StatusMethodNotAllowed
	case ErrCodeFibonacciTooLarge, ErrCodePrimeTooLarge, ErrCodeHCFTooLarge, ErrCodeLCMTooLarge:
		return http.StatusRequestEntityTooLarge
	case ErrCodeInvalidFibonacci, ErrCodeInvalidPrime, ErrCodeInvalidHCF, ErrCodeInvalidLCM,
		ErrCodeInvalidAI, ErrCodePrimeBadValue, ErrCodeHCFBadValue, ErrCodeLCMBadValue,
		ErrCodeLCMOverflow:
		return http.StatusUnprocessableEntity
	case ErrCodeAIProviderError:
		return http.StatusBadGateway
	case ErrCodeAINoAnswer, ErrCodeInternal:
		return http.StatusInternalServerError
	default:
		return http.StatusInternalServerError
	}
}

// String возвращает строковое представление кода.
func (c ErrorCode) String() string {
	return string(c)
}

// Error — ошибка с привязанным кодом из перечисления ErrorCode.
//
// Переносит код через границы пакетов до диспетчера, который
// преобразует его в HTTP-ответ. Message предназначен для клиента,
// Err — для логов и errors.Is.
type Error struct {
	Code    ErrorCode // машиночитаемый код
	Message string    // человекочитаемое описание
	Err     error     // исходная ошибка (опционально)
}

// Error реализует интерфейс error.
func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap возвращает исходную ошибку.
func (e *Error) Unwrap() error {
	return e.Err
}

// NewError создаёт Error с кодом и сообщением.
func NewError(code ErrorCode, message string) *Error {
	return &Error{Code: code, Message: message}
}

// WrapError создаёт Error, оборачивающий исходную ошибку.
func WrapError(code ErrorCode, message string, err error) *Error {
	return &Error{Code: code, Message: message, Err: err}
}

// AsError извлекает *Error из цепочки ошибок.
func AsError(err error) (*Error, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e, true
	}
	return nil, false
}
