package domain

import (
	"encoding/json"
	"errors"
	"fmt"
)

// OpKind — вид операции, выбираемый единственным ключом тела запроса.
type OpKind string

const (
	// OpFibonacci — генерация последовательности Фибоначчи.
	OpFibonacci OpKind = "fibonacci"

	// OpPrime — фильтрация простых чисел из массива.
	OpPrime OpKind = "prime"

	// OpHCF — наибольший общий делитель массива.
	OpHCF OpKind = "hcf"

	// OpLCM — наименьшее общее кратное массива.
	OpLCM OpKind = "lcm"

	// OpAI — вопрос к внешнему провайдеру ответов.
	OpAI OpKind = "AI"
)

// Kinds возвращает все виды операций в фиксированном порядке.
func Kinds() []OpKind {
	return []OpKind{OpFibonacci, OpPrime, OpHCF, OpLCM, OpAI}
}

// String возвращает строковое представление вида операции.
func (k OpKind) String() string {
	return string(k)
}

// Operation — размеченный вариант запроса: вид операции плюс сырое
// JSON-значение единственного заполненного ключа.
//
// Значение не интерпретируется на границе декодирования; валидация
// выполняется обработчиком соответствующей операции.
type Operation struct {
	// Kind — вид операции.
	Kind OpKind

	// Raw — значение ключа как есть.
	Raw json.RawMessage
}

// ParseOperation разбирает тело запроса в Operation.
//
// Граница декодирования: тело должно быть JSON-объектом ровно с одним
// ключом из набора операций. Нарушения:
//   - синтаксически некорректный JSON → ErrCodeInvalidJSON;
//   - не объект либо не ровно один ключ → ErrCodeBadKeyCount;
//   - единственный ключ вне набора → ErrCodeUnknownKey.
//
// Кардинальность проверяется по всем ключам, включая нераспознанные:
// два ключа — ошибка кардинальности, даже если один из них известен.
func ParseOperation(body []byte) (Operation, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(body, &fields); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) {
			// корректный JSON, но не объект (массив, строка, число)
			return Operation{}, NewError(ErrCodeBadKeyCount,
				"request body must be a JSON object with exactly one key")
		}
		return Operation{}, WrapError(ErrCodeInvalidJSON,
			"request body is not valid JSON", err)
	}

	if len(fields) != 1 {
		return Operation{}, NewError(ErrCodeBadKeyCount,
			fmt.Sprintf("expected exactly one key, got %d", len(fields)))
	}

	for key, raw := range fields {
		switch kind := OpKind(key); kind {
		case OpFibonacci, OpPrime, OpHCF, OpLCM, OpAI:
			return Operation{Kind: kind, Raw: raw}, nil
		default:
			return Operation{}, NewError(ErrCodeUnknownKey,
				fmt.Sprintf("unknown operation key: %q", key))
		}
	}

	// недостижимо: len(fields) == 1
	return Operation{}, NewError(ErrCodeBadKeyCount, "empty request object")
}
