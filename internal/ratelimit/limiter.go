package ratelimit

import (
	"strings"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// evictEvery — период амортизированной очистки: простаивающие ключи
// проверяются раз в столько обращений, фоновых горутин нет.
const evictEvery = 512

// defaultIdleTTL — время простоя ключа до выселения.
const defaultIdleTTL = 10 * time.Minute

// Limiter — ведро токенов на каждый строковый ключ (адрес клиента).
//
// Ключи создаются лениво при первом обращении и выселяются после
// простоя, чтобы карта не росла неограниченно. Потокобезопасен.
// Нулевой *Limiter пропускает всё — лимитирование выключено.
type Limiter struct {
	limit   rate.Limit
	burst   int
	idleTTL time.Duration

	mu    sync.Mutex
	byKey map[string]*bucket
	hits  uint64
}

// bucket — состояние одного ключа.
type bucket struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// New создаёт лимитер: rps — устойчивая скорость, burst — размер
// всплеска. Возвращает nil при недопустимых параметрах, что означает
// «без ограничений».
func New(rps float64, burst int) *Limiter {
	if rps <= 0 || burst <= 0 {
		return nil
	}
	return &Limiter{
		limit:   rate.Limit(rps),
		burst:   burst,
		idleTTL: defaultIdleTTL,
		byKey:   make(map[string]*bucket),
	}
}

// Allow сообщает, можно ли выдать ключу один токен в момент now.
// Пустой ключ не ограничивается.
func (l *Limiter) Allow(key string, now time.Time) bool {
	if l == nil {
		return true
	}
	key = strings.TrimSpace(key)
	if key == "" {
		return true
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	b, ok := l.byKey[key]
	if !ok {
		b = &bucket{limiter: rate.NewLimiter(l.limit, l.burst)}
		l.byKey[key] = b
	}
	b.lastSeen = now
	allowed := b.limiter.AllowN(now, 1)

	l.hits++
	if l.hits%evictEvery == 0 {
		l.evictIdle(now)
	}

	return allowed
}

// Size возвращает количество отслеживаемых ключей.
func (l *Limiter) Size() int {
	if l == nil {
		return 0
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.byKey)
}

// evictIdle удаляет ключи, не появлявшиеся дольше idleTTL.
// Вызывается под мьютексом.
func (l *Limiter) evictIdle(now time.Time) {
	cutoff := now.Add(-l.idleTTL)
	for k, b := range l.byKey {
		if b.lastSeen.Before(cutoff) {
			delete(l.byKey, k)
		}
	}
}
