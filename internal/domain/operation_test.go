package domain

import (
	"testing"
)

// ParseOperation Tests

func TestParseOperation_AllKinds(t *testing.T) {
	bodies := map[OpKind]string{
		OpFibonacci: `{"fibonacci": 10}`,
		OpPrime:     `{"prime": [2, 3, 4]}`,
		OpHCF:       `{"hcf": [12, 18]}`,
		OpLCM:       `{"lcm": [4, 6]}`,
		OpAI:        `{"AI": "capital of France"}`,
	}

	for kind, body := range bodies {
		op, err := ParseOperation([]byte(body))
		if err != nil {
			t.Errorf("%s: unexpected error: %v", kind, err)
			continue
		}
		if op.Kind != kind {
			t.Errorf("expected kind %s, got %s", kind, op.Kind)
		}
		if len(op.Raw) == 0 {
			t.Errorf("%s: raw value should be preserved", kind)
		}
	}
}

func TestParseOperation_RawPreserved(t *testing.T) {
	op, err := ParseOperation([]byte(`{"fibonacci": 10}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(op.Raw) != "10" {
		t.Errorf("expected raw %q, got %q", "10", string(op.Raw))
	}
}

func TestParseOperation_TwoKeys(t *testing.T) {
	// Кардинальность проверяется до распознавания ключей:
	// два ключа — ошибка, даже если оба известны.
	_, err := ParseOperation([]byte(`{"prime":[2,3],"hcf":[4,6]}`))
	assertCode(t, err, ErrCodeBadKeyCount)
}

func TestParseOperation_EmptyObject(t *testing.T) {
	_, err := ParseOperation([]byte(`{}`))
	assertCode(t, err, ErrCodeBadKeyCount)
}

func TestParseOperation_NonObjectBodies(t *testing.T) {
	// Корректный JSON, но не объект — у таких тел нет ключей.
	for _, body := range []string{`[1,2,3]`, `"fibonacci"`, `42`, `null`, `true`} {
		_, err := ParseOperation([]byte(body))
		if err == nil {
			t.Errorf("%s: expected error", body)
			continue
		}
		assertCode(t, err, ErrCodeBadKeyCount)
	}
}

func TestParseOperation_MalformedJSON(t *testing.T) {
	for _, body := range []string{``, `{`, `{"fibonacci": }`, `nope`} {
		_, err := ParseOperation([]byte(body))
		if err == nil {
			t.Errorf("%q: expected error", body)
			continue
		}
		assertCode(t, err, ErrCodeInvalidJSON)
	}
}

func TestParseOperation_UnknownKey(t *testing.T) {
	_, err := ParseOperation([]byte(`{"factorial": 5}`))
	assertCode(t, err, ErrCodeUnknownKey)
}

func TestKinds_Complete(t *testing.T) {
	kinds := Kinds()
	if len(kinds) != 5 {
		t.Fatalf("expected 5 kinds, got %d", len(kinds))
	}
}

// assertCode проверяет, что ошибка несёт ожидаемый код.
func assertCode(t *testing.T, err error, want ErrorCode) {
	t.Helper()
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	e, ok := AsError(err)
	if !ok {
		t.Fatalf("expected *domain.Error, got %T: %v", err, err)
	}
	if e.Code != want {
		t.Errorf("expected code %s, got %s", want, e.Code)
	}
}
