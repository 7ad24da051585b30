package compute

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/shaiso/Numerix/internal/domain"
)

// SafeBound — максимальный модуль целого, принимаемого числовыми
// операциями над массивами. Ограничение держит промежуточные
// произведения свёртки НОК в пределах int64.
const SafeBound = 1_000_000_000

// decodeValue декодирует сырое JSON-значение, сохраняя числа
// как json.Number.
func decodeValue(raw json.RawMessage) (any, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()

	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, err
	}
	return v, nil
}

// asInt64 приводит декодированное JSON-значение к int64.
//
// Принимает целые json.Number, включая запись с плавающей точкой
// (10.0, 1e9). Целые за пределами int64 насыщаются до MaxInt64 или
// MinInt64 — последующим проверкам диапазона этого достаточно.
// ok=false, если значение не целое число.
func asInt64(v any) (int64, bool) {
	num, ok := v.(json.Number)
	if !ok {
		return 0, false
	}

	if n, err := num.Int64(); err == nil {
		return n, true
	}

	f, err := num.Float64()
	if err != nil || f != math.Trunc(f) {
		return 0, false
	}
	if f >= math.MaxInt64 {
		return math.MaxInt64, true
	}
	if f <= math.MinInt64 {
		return math.MinInt64, true
	}
	return int64(f), true
}

// parseIntArray декодирует raw как непустой массив целых чисел
// в пределах SafeBound.
//
// Коды ошибок зависят от операции и передаются вызывающим:
// invalidCode — не массив либо пустой массив; tooLargeCode — длина
// больше maxLen; badValueCode — элемент не целое число или за
// пределами SafeBound.
func parseIntArray(raw json.RawMessage, maxLen int, invalidCode, tooLargeCode, badValueCode domain.ErrorCode) ([]int64, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()

	var items []any
	if err := dec.Decode(&items); err != nil {
		return nil, domain.WrapError(invalidCode, "expected a non-empty array of integers", err)
	}
	if len(items) == 0 {
		return nil, domain.NewError(invalidCode, "expected a non-empty array of integers")
	}
	if len(items) > maxLen {
		return nil, domain.NewError(tooLargeCode,
			fmt.Sprintf("array must not exceed %d elements", maxLen))
	}

	vals := make([]int64, len(items))
	for i, item := range items {
		n, ok := asInt64(item)
		if !ok || n > SafeBound || n < -SafeBound {
			return nil, domain.NewError(badValueCode,
				fmt.Sprintf("element at index %d is not a safe integer", i))
		}
		vals[i] = n
	}

	return vals, nil
}

// joinInts форматирует значения через запятую для поля data.
func joinInts(vals []int64) string {
	parts := make([]string, len(vals))
	for i, v := range vals {
		parts[i] = strconv.FormatInt(v, 10)
	}
	return strings.Join(parts, ",")
}

// abs64 возвращает модуль n.
func abs64(n int64) int64 {
	if n < 0 {
		return -n
	}
	return n
}
