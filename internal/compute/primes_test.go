package compute

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/shaiso/Numerix/internal/domain"
)

// IsPrime Tests

func TestIsPrime_Known(t *testing.T) {
	cases := map[int64]bool{
		-7:         false,
		0:          false,
		1:          false,
		2:          true,
		3:          true,
		4:          false,
		9:          false,
		17:         true,
		25:         false,
		7919:       true,
		999999937:  true, // простое вблизи безопасной границы
		1000000000: false,
	}

	for n, want := range cases {
		if got := IsPrime(n); got != want {
			t.Errorf("IsPrime(%d): expected %v, got %v", n, want, got)
		}
	}
}

// FilterPrimes Tests

func TestFilterPrimes_OneToTwenty(t *testing.T) {
	vals := make([]int64, 0, 20)
	for i := int64(1); i <= 20; i++ {
		vals = append(vals, i)
	}

	got := FilterPrimes(vals)
	want := []int64{2, 3, 5, 7, 11, 13, 17, 19}

	if len(got) != len(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, got)
		}
	}
}

func TestFilterPrimes_PreservesOrder(t *testing.T) {
	got := FilterPrimes([]int64{7, 4, 5, 2})
	want := []int64{7, 5, 2}

	if len(got) != len(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("order not preserved: expected %v, got %v", want, got)
		}
	}
}

func TestFilterPrimes_Empty(t *testing.T) {
	if got := FilterPrimes([]int64{4, 6, 8, 9}); len(got) != 0 {
		t.Errorf("expected no primes, got %v", got)
	}
}

// PrimeOp Tests

func TestPrimeOp_Execute(t *testing.T) {
	op := NewPrimeOp()

	got, err := op.Execute(context.Background(), json.RawMessage(`[1,2,3,4,5,6,7,8,9,10]`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "2,3,5,7" {
		t.Errorf("expected %q, got %q", "2,3,5,7", got)
	}
}

func TestPrimeOp_Execute_NoPrimes(t *testing.T) {
	// Фильтр без совпадений — пустая строка data, не ошибка
	op := NewPrimeOp()

	got, err := op.Execute(context.Background(), json.RawMessage(`[4,6,8]`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "" {
		t.Errorf("expected empty data, got %q", got)
	}
}

func TestPrimeOp_Execute_Invalid(t *testing.T) {
	op := NewPrimeOp()

	for _, raw := range []string{`[]`, `5`, `"2,3"`, `null`, `{}`} {
		_, err := op.Execute(context.Background(), json.RawMessage(raw))
		if err == nil {
			t.Errorf("%s: expected error", raw)
			continue
		}
		assertCode(t, err, domain.ErrCodeInvalidPrime)
	}
}

func TestPrimeOp_Execute_BadValue(t *testing.T) {
	op := NewPrimeOp()

	for _, raw := range []string{`[2, 2.5]`, `[1000000001]`, `[-1000000001]`, `["3"]`, `[2, null]`} {
		_, err := op.Execute(context.Background(), json.RawMessage(raw))
		if err == nil {
			t.Errorf("%s: expected error", raw)
			continue
		}
		assertCode(t, err, domain.ErrCodePrimeBadValue)
	}
}

func TestPrimeOp_Execute_TooLarge(t *testing.T) {
	op := NewPrimeOp()

	raw := "[" + strings.TrimSuffix(strings.Repeat("2,", MaxPrimeElements+1), ",") + "]"
	_, err := op.Execute(context.Background(), json.RawMessage(raw))
	assertCode(t, err, domain.ErrCodePrimeTooLarge)
}

func TestPrimeOp_Execute_BoundInclusive(t *testing.T) {
	// Ровно 1e9 по модулю — ещё допустимо
	op := NewPrimeOp()

	if _, err := op.Execute(context.Background(), json.RawMessage(`[1000000000, -1000000000]`)); err != nil {
		t.Errorf("bound values must be accepted: %v", err)
	}
}
