package compute

import (
	"context"
	"encoding/json"
	"strconv"

	"github.com/shaiso/Numerix/internal/domain"
)

// MaxHCFElements — максимальная длина массива операции hcf.
const MaxHCFElements = 500

// HCFOp — операция hcf: наибольший общий делитель массива.
//
// Значение ключа — непустой массив целых в пределах SafeBound.
// Результат — единственное число: {"hcf": [12, 18]} → "6".
type HCFOp struct{}

// NewHCFOp создаёт HCFOp.
func NewHCFOp() *HCFOp {
	return &HCFOp{}
}

// Kind возвращает вид операции.
func (o *HCFOp) Kind() domain.OpKind {
	return domain.OpHCF
}

// Execute валидирует массив и вычисляет НОД.
func (o *HCFOp) Execute(_ context.Context, raw json.RawMessage) (string, error) {
	vals, err := parseIntArray(raw, MaxHCFElements,
		domain.ErrCodeInvalidHCF, domain.ErrCodeHCFTooLarge, domain.ErrCodeHCFBadValue)
	if err != nil {
		return "", err
	}

	return strconv.FormatInt(HCF(vals), 10), nil
}

// GCD возвращает наибольший общий делитель пары по алгоритму Евклида.
//
// Работает с модулями аргументов; GCD(a, 0) = |a|. Симметрична.
func GCD(a, b int64) int64 {
	a, b = abs64(a), abs64(b)
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

// HCF сворачивает массив слева направо через GCD.
// Массив должен быть непустым.
func HCF(vals []int64) int64 {
	acc := abs64(vals[0])
	for _, v := range vals[1:] {
		acc = GCD(acc, v)
	}
	return acc
}
