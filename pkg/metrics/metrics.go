package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

// Метрики операций хранилища корзин.
var (
	CartOps = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cart_operations_total",
			Help: "Cart store operations",
		},
		[]string{"op"}, // add_item|empty_cart|get_cart|ping
	)
	RemoteOps = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cart_remote_ops_total",
			Help: "Remote cache calls by result",
		},
		[]string{"op", "result"}, // get|set|ping, ok|absent|error
	)
	FallbackEngaged = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cart_fallback_engaged_total",
			Help: "Operations degraded to the local fallback cache",
		},
		[]string{"op"},
	)
)

// Метрики resilience-политики (retry + circuit breaker).
var (
	RetryAttempts = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cart_retry_attempts_total",
			Help: "Retry attempts against the remote cache",
		},
		[]string{"op"},
	)
	// BreakerState: 0 — closed, 1 — half-open, 2 — open.
	BreakerState = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "cart_breaker_state",
			Help: "Circuit breaker state (0=closed, 1=half-open, 2=open)",
		},
	)
	BreakerTransitions = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cart_breaker_transitions_total",
			Help: "Circuit breaker state transitions",
		},
		[]string{"to"}, // closed|half-open|open
	)
)

// Метрики локального fallback-кэша.
var (
	CacheOps = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cart_fallback_cache_operations_total",
			Help: "Fallback cache operations",
		},
		[]string{"op"}, // hit|miss
	)
	CacheSize = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "cart_fallback_cache_size",
			Help: "Number of carts currently in the fallback cache",
		},
	)
)

// Метрики публикации событий.
var (
	EventsPublished = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cart_events_published_total",
			Help: "Cart events published to the broker",
		},
		[]string{"type", "result"}, // cart_updated|cart_emptied, ok|error
	)
)

var registerOnce sync.Once

// MustRegister — регистрирует все коллекторы; повторный вызов безопасен.
func MustRegister() {
	registerOnce.Do(func() {
		prometheus.MustRegister(
			CartOps, RemoteOps, FallbackEngaged,
			RetryAttempts, BreakerState, BreakerTransitions,
			CacheOps, CacheSize,
			EventsPublished,
		)
	})
}
