package answer

import (
	"context"
	"errors"
	"strings"
	"unicode"
)

// Ошибки провайдеров ответов.
var (
	// ErrEmptyQuestion — после санитизации от вопроса ничего не осталось.
	ErrEmptyQuestion = errors.New("question is empty")

	// ErrNoCredential — учётные данные провайдера не настроены.
	ErrNoCredential = errors.New("provider credential is not configured")

	// ErrProvider — вызов провайдера не удался.
	ErrProvider = errors.New("provider call failed")

	// ErrNoAnswer — вызов удался, но пригодного токена в ответе нет.
	ErrNoAnswer = errors.New("no usable answer")
)

// Provider — внешний провайдер коротких ответов.
//
// Единственная сетевая зависимость системы. Контракт: один синхронный
// вызов без повторов; неуспех немедленно возвращается вызывающему.
// Вопрос к моменту вызова уже санитизирован и непуст.
type Provider interface {
	// Ask отправляет вопрос и возвращает сырой текст ответа.
	Ask(ctx context.Context, question string) (string, error)
}

// Sanitize удаляет из вопроса управляющие символы и крайние пробелы.
func Sanitize(q string) string {
	var b strings.Builder
	b.Grow(len(q))
	for _, r := range q {
		if !unicode.IsControl(r) {
			b.WriteRune(r)
		}
	}
	return strings.TrimSpace(b.String())
}

// FirstToken извлекает первый разделённый пробелами токен текста и
// срезает крайние не-словесные символы (вне [A-Za-z0-9_]).
// Возвращает пустую строку, если пригодного токена нет.
func FirstToken(text string) string {
	fields := strings.Fields(text)
	if len(fields) == 0 {
		return ""
	}
	return strings.TrimFunc(fields[0], func(r rune) bool {
		return !isWordRune(r)
	})
}

// isWordRune сообщает, входит ли символ в класс словесных [A-Za-z0-9_].
func isWordRune(r rune) bool {
	return r == '_' ||
		(r >= '0' && r <= '9') ||
		(r >= 'a' && r <= 'z') ||
		(r >= 'A' && r <= 'Z')
}
