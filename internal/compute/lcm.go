package compute

import (
	"context"
	"encoding/json"
	"strconv"

	"github.com/shaiso/Numerix/internal/domain"
)

// MaxLCMElements — максимальная длина массива операции lcm.
const MaxLCMElements = 200

// LCMOp — операция lcm: наименьшее общее кратное массива.
//
// Значение ключа — непустой массив целых в пределах SafeBound.
// Результат — единственное число: {"lcm": [4, 6]} → "12".
// Рост аккумулятора за SafeBound прерывает вычисление с кодом
// lcm_overflow.
type LCMOp struct{}

// NewLCMOp создаёт LCMOp.
func NewLCMOp() *LCMOp {
	return &LCMOp{}
}

// Kind возвращает вид операции.
func (o *LCMOp) Kind() domain.OpKind {
	return domain.OpLCM
}

// Execute валидирует массив и вычисляет НОК.
func (o *LCMOp) Execute(_ context.Context, raw json.RawMessage) (string, error) {
	vals, err := parseIntArray(raw, MaxLCMElements,
		domain.ErrCodeInvalidLCM, domain.ErrCodeLCMTooLarge, domain.ErrCodeLCMBadValue)
	if err != nil {
		return "", err
	}

	lcm, err := LCM(vals)
	if err != nil {
		return "", err
	}
	return strconv.FormatInt(lcm, 10), nil
}

// LCMPair возвращает наименьшее общее кратное пары.
// Ноль в любом аргументе даёт 0; результат всегда неотрицателен.
func LCMPair(a, b int64) int64 {
	if a == 0 || b == 0 {
		return 0
	}
	g := GCD(a, b)
	return abs64(a / g * b)
}

// LCM сворачивает массив слева направо через LCMPair.
//
// После каждого шага аккумулятор сверяется с SafeBound: превышение
// немедленно прерывает свёртку с ErrCodeLCMOverflow. Оба операнда
// каждого шага не больше SafeBound, поэтому промежуточное
// произведение не превышает 1e18 и не переполняет int64.
// Массив должен быть непустым, элементы — в пределах SafeBound.
func LCM(vals []int64) (int64, error) {
	acc := abs64(vals[0])
	for _, v := range vals[1:] {
		acc = LCMPair(acc, v)
		if acc > SafeBound {
			return 0, domain.NewError(domain.ErrCodeLCMOverflow,
				"least common multiple exceeds the safe integer bound")
		}
	}
	return acc, nil
}
