package compute

import (
	"context"
	"encoding/json"

	"github.com/shaiso/Numerix/internal/domain"
)

// MaxPrimeElements — максимальная длина массива операции prime.
const MaxPrimeElements = 500

// PrimeOp — операция prime: фильтрация простых чисел.
//
// Значение ключа — непустой массив целых в пределах SafeBound.
// Результат — подпоследовательность простых элементов в исходном
// порядке через запятую. Это фильтр, а не классификатор: элементы,
// не прошедшие проверку простоты, просто отбрасываются.
type PrimeOp struct{}

// NewPrimeOp создаёт PrimeOp.
func NewPrimeOp() *PrimeOp {
	return &PrimeOp{}
}

// Kind возвращает вид операции.
func (o *PrimeOp) Kind() domain.OpKind {
	return domain.OpPrime
}

// Execute валидирует массив и фильтрует простые числа.
func (o *PrimeOp) Execute(_ context.Context, raw json.RawMessage) (string, error) {
	vals, err := parseIntArray(raw, MaxPrimeElements,
		domain.ErrCodeInvalidPrime, domain.ErrCodePrimeTooLarge, domain.ErrCodePrimeBadValue)
	if err != nil {
		return "", err
	}

	return joinInts(FilterPrimes(vals)), nil
}

// IsPrime проверяет простоту n пробным делением.
//
// Отрицательные числа, 0 и 1 простыми не считаются. Чётные больше 2
// отсекаются сразу, остальные проверяются делением на нечётные
// делители до квадратного корня.
func IsPrime(n int64) bool {
	if n <= 1 {
		return false
	}
	if n <= 3 {
		return true
	}
	if n%2 == 0 {
		return false
	}

	for d := int64(3); d*d <= n; d += 2 {
		if n%d == 0 {
			return false
		}
	}
	return true
}

// FilterPrimes возвращает подпоследовательность простых чисел
// в исходном порядке.
func FilterPrimes(vals []int64) []int64 {
	primes := make([]int64, 0, len(vals))
	for _, v := range vals {
		if IsPrime(v) {
			primes = append(primes, v)
		}
	}
	return primes
}
