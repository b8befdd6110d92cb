package resilience

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/Gunvolt24/cart-store/internal/ports"
	"github.com/Gunvolt24/cart-store/pkg/metrics"
	"github.com/sony/gobreaker"
)

// Config — параметры retry/breaker. Незаданные значения заменяются дефолтами:
// 3 повтора (MaxRetries < 0 — тоже 3, явный 0 отключает повторы), базовая
// задержка 1s (→ 2s, 4s, 8s), размыкание после 2 подряд ошибок,
// длительность Open — 1 минута.
type Config struct {
	MaxRetries      int           // дополнительные попытки после первой
	RetryBase       time.Duration // задержка перед n-м повтором: RetryBase * 2^n
	BreakerFailures uint32        // подряд идущих ошибок до Open
	BreakerTimeout  time.Duration // длительность состояния Open
}

func (c Config) withDefaults() Config {
	if c.MaxRetries < 0 {
		c.MaxRetries = 3
	}
	if c.RetryBase <= 0 {
		c.RetryBase = time.Second
	}
	if c.BreakerFailures == 0 {
		c.BreakerFailures = 2
	}
	if c.BreakerTimeout <= 0 {
		c.BreakerTimeout = time.Minute
	}
	return c
}

// Policy — исполняет единицу работы с удалённым кэшем: ретраи с экспоненциальной
// задержкой поверх общего circuit breaker. Ретраи оборачивают breaker: пока он
// разомкнут, попытки отбиваются сразу, но бюджет повторов и задержки расходуются.
// Breaker один на процесс и общий для всех user_id.
type Policy struct {
	cfg Config
	cb  *gobreaker.CircuitBreaker
	log ports.Logger

	mu      sync.Mutex
	lastErr error // последняя ошибка обёрнутой операции — для события «breaker opened»
}

// NewPolicy — конструктор; политика создаётся один раз на процесс и переиспользуется.
func NewPolicy(cfg Config, log ports.Logger) *Policy {
	cfg = cfg.withDefaults()
	p := &Policy{cfg: cfg, log: log}

	p.cb = gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name: "remote-cache",
		// Half-Open: ровно одна пробная попытка.
		MaxRequests: 1,
		Timeout:     cfg.BreakerTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= cfg.BreakerFailures
		},
		OnStateChange: func(_ string, from, to gobreaker.State) {
			p.onStateChange(from, to)
		},
	})
	return p
}

// Execute — выполняет fn под политикой; возвращает ошибку последней попытки,
// если бюджет повторов исчерпан. Ошибки никогда не глотаются: деградация
// в fallback — ответственность вызывающего кода.
func (p *Policy) Execute(ctx context.Context, op string, fn func() error) error {
	for attempt := 0; ; attempt++ {
		_, err := p.cb.Execute(func() (interface{}, error) {
			if callErr := fn(); callErr != nil {
				p.noteFailure(callErr)
				return nil, callErr
			}
			return nil, nil
		})
		if err == nil {
			return nil
		}
		if attempt >= p.cfg.MaxRetries {
			return err
		}

		// Задержка перед n-м повтором: RetryBase * 2^n.
		delay := p.cfg.RetryBase << uint(attempt+1)
		metrics.RetryAttempts.WithLabelValues(op).Inc()
		p.log.Warnf(ctx, "retry op=%s attempt=%d/%d delay=%s cause=%v",
			op, attempt+1, p.cfg.MaxRetries, delay, err)

		if !sleepCtx(ctx, delay) {
			return ctx.Err()
		}
	}
}

// State — текущее состояние breaker (для health/отладки).
func (p *Policy) State() gobreaker.State { return p.cb.State() }

// IsBreakerOpen — ошибка вызвана разомкнутым breaker, а не удалённым кэшем.
func IsBreakerOpen(err error) bool {
	return errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests)
}

func (p *Policy) noteFailure(err error) {
	p.mu.Lock()
	p.lastErr = err
	p.mu.Unlock()
}

func (p *Policy) lastFailure() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.lastErr
}

// onStateChange — диагностические события переходов breaker.
// Контекста вызова здесь нет: переход может случиться внутри любого запроса.
func (p *Policy) onStateChange(from, to gobreaker.State) {
	ctx := context.Background()

	metrics.BreakerState.Set(stateGauge(to))
	metrics.BreakerTransitions.WithLabelValues(to.String()).Inc()

	switch to {
	case gobreaker.StateOpen:
		p.log.Warnf(ctx, "breaker opened (%s -> %s) cause=%v", from, to, p.lastFailure())
	case gobreaker.StateHalfOpen:
		p.log.Infof(ctx, "breaker half-open (%s -> %s): next call is a trial", from, to)
	case gobreaker.StateClosed:
		p.log.Infof(ctx, "breaker reset (%s -> %s)", from, to)
	}
}

func stateGauge(s gobreaker.State) float64 {
	switch s {
	case gobreaker.StateOpen:
		return 2
	case gobreaker.StateHalfOpen:
		return 1
	default:
		return 0
	}
}

// sleepCtx — ждёт delay или останавливается по контексту.
func sleepCtx(ctx context.Context, delay time.Duration) bool {
	select {
	case <-ctx.Done():
		return false
	case <-time.After(delay):
		return true
	}
}
