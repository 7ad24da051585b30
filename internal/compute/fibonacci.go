package compute

import (
	"context"
	"encoding/json"
	"fmt"
	"math/big"
	"strings"

	"github.com/shaiso/Numerix/internal/domain"
)

// MaxFibonacciIndex — максимальный принимаемый индекс Фибоначчи.
const MaxFibonacciIndex = 100

// FibonacciOp — операция fibonacci: генерация последовательности.
//
// Значение ключа — неотрицательное целое n, не больше
// MaxFibonacciIndex. Результат — первые n+1 чисел Фибоначчи через
// запятую: {"fibonacci": 10} → "0,1,1,2,3,5,8,13,21,34,55".
type FibonacciOp struct{}

// NewFibonacciOp создаёт FibonacciOp.
func NewFibonacciOp() *FibonacciOp {
	return &FibonacciOp{}
}

// Kind возвращает вид операции.
func (o *FibonacciOp) Kind() domain.OpKind {
	return domain.OpFibonacci
}

// Execute валидирует индекс и генерирует последовательность.
func (o *FibonacciOp) Execute(_ context.Context, raw json.RawMessage) (string, error) {
	n, err := o.parseIndex(raw)
	if err != nil {
		return "", err
	}

	seq := FibonacciSequence(n)
	parts := make([]string, len(seq))
	for i, v := range seq {
		parts[i] = v.String()
	}
	return strings.Join(parts, ","), nil
}

// parseIndex извлекает индекс из сырого значения.
func (o *FibonacciOp) parseIndex(raw json.RawMessage) (int, error) {
	v, err := decodeValue(raw)
	if err != nil {
		return 0, domain.WrapError(domain.ErrCodeInvalidFibonacci,
			"fibonacci expects a non-negative integer", err)
	}

	n, ok := asInt64(v)
	if !ok || n < 0 {
		return 0, domain.NewError(domain.ErrCodeInvalidFibonacci,
			"fibonacci expects a non-negative integer")
	}
	if n > MaxFibonacciIndex {
		return 0, domain.NewError(domain.ErrCodeFibonacciTooLarge,
			fmt.Sprintf("fibonacci index must not exceed %d", MaxFibonacciIndex))
	}

	return int(n), nil
}

// FibonacciSequence возвращает первые n+1 чисел Фибоначчи:
// 0, 1, 1, 2, 3, ...
//
// Значения произвольной точности: уже fib(93) не помещается в int64,
// а индексы принимаются вплоть до MaxFibonacciIndex. n должен быть
// неотрицательным.
func FibonacciSequence(n int) []*big.Int {
	seq := make([]*big.Int, n+1)
	seq[0] = big.NewInt(0)
	if n == 0 {
		return seq
	}

	seq[1] = big.NewInt(1)
	for i := 2; i <= n; i++ {
		seq[i] = new(big.Int).Add(seq[i-1], seq[i-2])
	}
	return seq
}
