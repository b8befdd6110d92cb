package redis

import (
	"context"
	"time"

	"github.com/Gunvolt24/cart-store/internal/ports"
	goredis "github.com/redis/go-redis/v9"
)

// Options — параметры подключения к удалённому кэшу.
type Options struct {
	Addr            string
	DB              int
	PoolSize        int
	DialTimeout     time.Duration
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	ConnectAttempts int
}

// NewClient — клиент Redis с проверкой соединения на старте.
// Подключение ретраится с экспоненциальной задержкой (cap 30s). Если кэш так и
// не ответил, клиент всё равно возвращается: сервис остаётся доступен за счёт
// fallback-кэша, а breaker оградит операции от мёртвого удалённого кэша.
func NewClient(ctx context.Context, opts Options, log ports.Logger) *goredis.Client {
	rdb := goredis.NewClient(&goredis.Options{
		Addr:         opts.Addr,
		DB:           opts.DB,
		PoolSize:     opts.PoolSize,
		MinIdleConns: 1,
		DialTimeout:  opts.DialTimeout,
		ReadTimeout:  opts.ReadTimeout,
		WriteTimeout: opts.WriteTimeout,
	})

	attempts := opts.ConnectAttempts
	if attempts <= 0 {
		attempts = 5
	}

	backoff := time.Second
	for i := 0; i < attempts; i++ {
		pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
		err := rdb.Ping(pingCtx).Err()
		cancel()

		if err == nil {
			log.Infof(ctx, "redis connected addr=%s db=%d", opts.Addr, opts.DB)
			return rdb
		}
		if i == attempts-1 {
			log.Warnf(ctx, "redis unreachable after %d attempts: %v (starting degraded, fallback only)", attempts, err)
			break
		}

		log.Warnf(ctx, "redis not ready (attempt %d/%d): %v, retry in %s", i+1, attempts, err, backoff)
		select {
		case <-ctx.Done():
			return rdb
		case <-time.After(backoff):
		}
		backoff *= 2
		if backoff > 30*time.Second {
			backoff = 30 * time.Second
		}
	}
	return rdb
}
