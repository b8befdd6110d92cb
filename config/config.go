package config

import (
	"time"

	"github.com/kelseyhightower/envconfig"
)

// HTTP — параметры HTTP-сервера.
type HTTP struct {
	Addr              string        `default:":8080" envconfig:"HTTP_ADDR"`
	GinMode           string        `default:"debug" envconfig:"HTTP_GIN_MODE"`
	ReadTimeout       time.Duration `default:"10s" envconfig:"HTTP_READ_TIMEOUT"`
	WriteTimeout      time.Duration `default:"10s" envconfig:"HTTP_WRITE_TIMEOUT"`
	ReadHeaderTimeout time.Duration `default:"5s" envconfig:"HTTP_READ_HEADER_TIMEOUT"`
	IdleTimeout       time.Duration `default:"60s" envconfig:"HTTP_IDLE_TIMEOUT"`
	HandlerTimeout    time.Duration `default:"30s" envconfig:"HTTP_HANDLER_TIMEOUT"`
	GracefulTimeout   time.Duration `default:"5s" envconfig:"HTTP_GRACEFUL_TIMEOUT"`
}

// Redis — подключение к удалённому кэшу корзин.
type Redis struct {
	Addr            string        `default:"redis:6379" envconfig:"REDIS_ADDR"`
	DB              int           `default:"0" envconfig:"REDIS_DB"`
	PoolSize        int           `default:"10" envconfig:"REDIS_POOL_SIZE"`
	DialTimeout     time.Duration `default:"5s" envconfig:"REDIS_DIAL_TIMEOUT"`
	ReadTimeout     time.Duration `default:"3s" envconfig:"REDIS_READ_TIMEOUT"`
	WriteTimeout    time.Duration `default:"3s" envconfig:"REDIS_WRITE_TIMEOUT"`
	ConnectAttempts int           `default:"5" envconfig:"REDIS_CONNECT_ATTEMPTS"`
}

// Resilience — политика повторов и circuit breaker вокруг удалённого кэша.
// HandlerTimeout HTTP обязан перекрывать сумму задержек повторов,
// иначе запрос отвалится по таймауту раньше, чем сработает fallback.
type Resilience struct {
	MaxRetries      int           `default:"3" envconfig:"RESILIENCE_MAX_RETRIES"`
	RetryBase       time.Duration `default:"1s" envconfig:"RESILIENCE_RETRY_BASE"`
	BreakerFailures uint32        `default:"2" envconfig:"RESILIENCE_BREAKER_FAILURES"`
	BreakerTimeout  time.Duration `default:"1m" envconfig:"RESILIENCE_BREAKER_TIMEOUT"`
}

// Kafka — издатель событий корзины. Пустой список брокеров отключает издателя.
type Kafka struct {
	Brokers      []string      `default:"" envconfig:"KAFKA_BROKERS"`
	Topic        string        `default:"cart-events" envconfig:"KAFKA_TOPIC"`
	WriteTimeout time.Duration `default:"5s" envconfig:"KAFKA_WRITE_TIMEOUT"`
}

// Logger — режим логгера (dev/prod).
type Logger struct {
	IsProd bool `default:"false" envconfig:"LOGGER_IS_PROD"`
}

// Tracing — OTEL-трейсинг (по умолчанию выключен).
type Tracing struct {
	Enabled     bool    `default:"false" envconfig:"TRACING_OTEL_ENABLED"`
	ServiceName string  `default:"cart-store" envconfig:"TRACING_OTEL_SERVICE_NAME"`
	Endpoint    string  `default:"jaeger:4318" envconfig:"TRACING_OTEL_ENDPOINT"`
	SampleRatio float64 `default:"1" envconfig:"TRACING_OTEL_SAMPLE_RATIO"`
}

type Config struct {
	HTTP       HTTP
	Redis      Redis
	Resilience Resilience
	Kafka      Kafka
	Logger     Logger
	Tracing    Tracing
}

// Load — конфигурация из окружения с префиксом CART (CART_HTTP_ADDR и т.д.).
func Load() (*Config, error) {
	return LoadWithPrefix("CART")
}

// LoadWithPrefix — то же с произвольным префиксом; нужен тестам,
// чтобы не толкаться в общем окружении.
func LoadWithPrefix(prefix string) (*Config, error) {
	var c Config
	if err := envconfig.Process(prefix, &c); err != nil {
		return nil, err
	}
	return &c, nil
}
