package compute

import (
	"context"
	"encoding/json"
	"math/big"
	"testing"

	"github.com/shaiso/Numerix/internal/domain"
)

// FibonacciSequence Tests

func TestFibonacciSequence_Base(t *testing.T) {
	seq := FibonacciSequence(0)
	if len(seq) != 1 || seq[0].Int64() != 0 {
		t.Errorf("expected [0], got %v", seq)
	}

	seq = FibonacciSequence(1)
	if len(seq) != 2 || seq[0].Int64() != 0 || seq[1].Int64() != 1 {
		t.Errorf("expected [0 1], got %v", seq)
	}
}

func TestFibonacciSequence_Recurrence(t *testing.T) {
	// Свойство для всего принимаемого диапазона индексов
	for n := 0; n <= MaxFibonacciIndex; n++ {
		seq := FibonacciSequence(n)

		if len(seq) != n+1 {
			t.Fatalf("n=%d: expected length %d, got %d", n, n+1, len(seq))
		}
		if seq[0].Sign() != 0 {
			t.Fatalf("n=%d: sequence must start with 0", n)
		}
		if n >= 1 && seq[1].Cmp(big.NewInt(1)) != 0 {
			t.Fatalf("n=%d: second element must be 1", n)
		}

		for i := 2; i <= n; i++ {
			sum := new(big.Int).Add(seq[i-1], seq[i-2])
			if seq[i].Cmp(sum) != 0 {
				t.Fatalf("n=%d: recurrence broken at index %d", n, i)
			}
		}
	}
}

func TestFibonacciSequence_BeyondInt64(t *testing.T) {
	// fib(100) не помещается в int64 — значение известно точно
	seq := FibonacciSequence(100)
	want := "354224848179261915075"
	if got := seq[100].String(); got != want {
		t.Errorf("expected fib(100)=%s, got %s", want, got)
	}
}

// FibonacciOp Tests

func TestFibonacciOp_Execute(t *testing.T) {
	op := NewFibonacciOp()

	got, err := op.Execute(context.Background(), json.RawMessage(`10`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := "0,1,1,2,3,5,8,13,21,34,55"
	if got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestFibonacciOp_Execute_Zero(t *testing.T) {
	op := NewFibonacciOp()

	got, err := op.Execute(context.Background(), json.RawMessage(`0`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "0" {
		t.Errorf("expected %q, got %q", "0", got)
	}
}

func TestFibonacciOp_Execute_FloatForm(t *testing.T) {
	// 10.0 — целое число в записи с плавающей точкой
	op := NewFibonacciOp()

	got, err := op.Execute(context.Background(), json.RawMessage(`10.0`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "0,1,1,2,3,5,8,13,21,34,55" {
		t.Errorf("10.0 should behave like 10, got %q", got)
	}
}

func TestFibonacciOp_Execute_Invalid(t *testing.T) {
	op := NewFibonacciOp()

	for _, raw := range []string{`true`, `"ten"`, `-1`, `2.5`, `null`, `[10]`, `{}`} {
		_, err := op.Execute(context.Background(), json.RawMessage(raw))
		if err == nil {
			t.Errorf("%s: expected error", raw)
			continue
		}
		assertCode(t, err, domain.ErrCodeInvalidFibonacci)
	}
}

func TestFibonacciOp_Execute_TooLarge(t *testing.T) {
	op := NewFibonacciOp()

	// 101 — сразу за границей; 1e300 — целое, но далеко за ней
	for _, raw := range []string{`101`, `1e300`} {
		_, err := op.Execute(context.Background(), json.RawMessage(raw))
		if err == nil {
			t.Errorf("%s: expected error", raw)
			continue
		}
		assertCode(t, err, domain.ErrCodeFibonacciTooLarge)
	}
}

func TestFibonacciOp_Execute_MaxIndex(t *testing.T) {
	op := NewFibonacciOp()

	if _, err := op.Execute(context.Background(), json.RawMessage(`100`)); err != nil {
		t.Errorf("index 100 must be accepted: %v", err)
	}
}
