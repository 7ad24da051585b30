package compute

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/shaiso/Numerix/internal/domain"
)

// Ошибки реестра операций.
var (
	// ErrUnknownOperation — операция не зарегистрирована в реестре.
	ErrUnknownOperation = errors.New("unknown operation")
)

// Operation — обработчик одной операции API.
//
// Реализация валидирует сырое JSON-значение ключа и выполняет
// вычисление. Результат — строка для поля data конверта. Ошибки
// валидации и вычисления возвращаются как *domain.Error с кодом
// из перечисления.
type Operation interface {
	// Kind возвращает вид операции.
	Kind() domain.OpKind

	// Execute валидирует сырое значение и выполняет операцию.
	Execute(ctx context.Context, raw json.RawMessage) (string, error)
}

// Registry — реестр операций по виду.
//
// Потокобезопасен.
type Registry struct {
	mu  sync.RWMutex
	ops map[domain.OpKind]Operation
}

// NewRegistry создаёт пустой реестр.
func NewRegistry() *Registry {
	return &Registry{
		ops: make(map[domain.OpKind]Operation),
	}
}

// DefaultRegistry создаёт реестр с числовыми операциями.
// Операция AI регистрируется отдельно, когда настроен провайдер ответов.
func DefaultRegistry() *Registry {
	r := NewRegistry()

	r.Register(NewFibonacciOp())
	r.Register(NewPrimeOp())
	r.Register(NewHCFOp())
	r.Register(NewLCMOp())

	return r
}

// Register регистрирует операцию в реестре.
// Операция с тем же видом перезаписывается.
func (r *Registry) Register(op Operation) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.ops[op.Kind()] = op
}

// Get возвращает операцию по виду.
// Возвращает ErrUnknownOperation, если операция не зарегистрирована.
func (r *Registry) Get(kind domain.OpKind) (Operation, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	op, exists := r.ops[kind]
	if !exists {
		return nil, fmt.Errorf("%w: %s", ErrUnknownOperation, kind)
	}

	return op, nil
}

// Has проверяет, зарегистрирована ли операция.
func (r *Registry) Has(kind domain.OpKind) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, exists := r.ops[kind]
	return exists
}

// Count возвращает количество зарегистрированных операций.
func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.ops)
}
