package answer

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/shaiso/Numerix/internal/domain"
)

// Operation — операция AI: вопрос внешнему провайдеру ответов.
//
// Значение ключа — непустая строка. Вопрос санитизируется, уходит
// провайдеру одним синхронным вызовом, из текстового ответа
// извлекается первый токен. Реализует compute.Operation.
type Operation struct {
	provider Provider
}

// NewOperation создаёт операцию AI поверх провайдера.
func NewOperation(p Provider) *Operation {
	return &Operation{provider: p}
}

// Kind возвращает вид операции.
func (o *Operation) Kind() domain.OpKind {
	return domain.OpAI
}

// Execute валидирует вопрос, вызывает провайдера и извлекает токен.
func (o *Operation) Execute(ctx context.Context, raw json.RawMessage) (string, error) {
	var question string
	if err := json.Unmarshal(raw, &question); err != nil {
		return "", domain.WrapError(domain.ErrCodeInvalidAI,
			"AI expects a non-empty string", err)
	}

	question = Sanitize(question)
	if question == "" {
		return "", domain.WrapError(domain.ErrCodeInvalidAI,
			"AI expects a non-empty question", ErrEmptyQuestion)
	}

	text, err := o.provider.Ask(ctx, question)
	if err != nil {
		return "", toDomainError(err)
	}

	token := FirstToken(text)
	if token == "" {
		return "", domain.WrapError(domain.ErrCodeAINoAnswer,
			"provider returned no usable answer", ErrNoAnswer)
	}

	return token, nil
}

// toDomainError сопоставляет ошибки провайдера кодам конверта.
// Отсутствие учётных данных и неуспешный вызов — ошибка провайдера;
// успешный вызов без пригодного ответа — отдельный код.
func toDomainError(err error) error {
	if errors.Is(err, ErrNoAnswer) {
		return domain.WrapError(domain.ErrCodeAINoAnswer,
			"provider returned no usable answer", err)
	}
	return domain.WrapError(domain.ErrCodeAIProviderError,
		"answer provider request failed", err)
}
