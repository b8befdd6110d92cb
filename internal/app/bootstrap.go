package app

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Gunvolt24/cart-store/config"
	cachemem "github.com/Gunvolt24/cart-store/internal/cache/memory"
	"github.com/Gunvolt24/cart-store/internal/codec"
	"github.com/Gunvolt24/cart-store/internal/kafka"
	"github.com/Gunvolt24/cart-store/internal/ports"
	credis "github.com/Gunvolt24/cart-store/internal/repo/redis"
	"github.com/Gunvolt24/cart-store/internal/resilience"
	rest "github.com/Gunvolt24/cart-store/internal/transport/http"
	"github.com/Gunvolt24/cart-store/internal/usecase"
	"github.com/Gunvolt24/cart-store/pkg/logger"
	"github.com/Gunvolt24/cart-store/pkg/metrics"
	"github.com/Gunvolt24/cart-store/pkg/telemetry"
)

// App — собранное приложение и его внешние интерфейсы.
type App struct {
	Logger          ports.Logger
	HTTPServer      *http.Server
	gracefulTimeout time.Duration
}

// Cleanup — функция освобождения ресурсов.
type Cleanup func()

// applyGinMode — устанавливает режим Gin по строке;
// неизвестное значение → debug и предупреждение в лог.
func applyGinMode(ctx context.Context, mode string, log ports.Logger) {
	switch strings.ToLower(strings.TrimSpace(mode)) {
	case "release":
		gin.SetMode(gin.ReleaseMode)
	case "test":
		gin.SetMode(gin.TestMode)
	case "", "debug":
		gin.SetMode(gin.DebugMode)
	default:
		gin.SetMode(gin.DebugMode)
		log.Warnf(ctx, "unknown GIN_MODE=%q, fallback to debug", mode)
	}
}

// Bootstrap — собирает зависимости и возвращает приложение, функцию очистки и ошибку.
// Недоступный Redis или брокер не срывают старт: сервис поднимается в
// деградированном режиме на fallback-кэше.
func Bootstrap(ctx context.Context, cfg *config.Config) (*App, Cleanup, error) {
	// Логгер (dev/prod режим задаётся конфигурацией).
	logg, cleanupLogger, err := logger.NewZapLogger(cfg.Logger.IsProd)
	if err != nil {
		return nil, func() {}, err
	}

	// Регистрация метрик (Prometheus).
	metrics.MustRegister()

	// Трейсинг OTEL (при включённой конфигурации); по умолчанию — no-op.
	shutdownTrace := func(context.Context) error { return nil }
	if cfg.Tracing.Enabled {
		setup, tErr := telemetry.SetupTracing(ctx, cfg.Tracing.ServiceName, cfg.Tracing.Endpoint, cfg.Tracing.SampleRatio)
		if tErr != nil {
			logg.Warnf(ctx, "failed to setup tracing: %v", tErr)
		} else {
			logg.Infof(ctx, "otel tracing enabled service=%s endpoint=%s sample=%.2f",
				cfg.Tracing.ServiceName, cfg.Tracing.Endpoint, cfg.Tracing.SampleRatio)
			shutdownTrace = setup
		}
	}

	// Клиент Redis: ошибка подключения не фатальна, breaker и fallback прикроют.
	rdb := credis.NewClient(ctx, credis.Options{
		Addr:            cfg.Redis.Addr,
		DB:              cfg.Redis.DB,
		PoolSize:        cfg.Redis.PoolSize,
		DialTimeout:     cfg.Redis.DialTimeout,
		ReadTimeout:     cfg.Redis.ReadTimeout,
		WriteTimeout:    cfg.Redis.WriteTimeout,
		ConnectAttempts: cfg.Redis.ConnectAttempts,
	}, logg)

	// Политика повторов и breaker вокруг удалённого кэша.
	policy := resilience.NewPolicy(resilience.Config{
		MaxRetries:      cfg.Resilience.MaxRetries,
		RetryBase:       cfg.Resilience.RetryBase,
		BreakerFailures: cfg.Resilience.BreakerFailures,
		BreakerTimeout:  cfg.Resilience.BreakerTimeout,
	}, logg)

	// Издатель событий: без брокеров — заглушка.
	var publisher ports.EventPublisher = kafka.NopPublisher{}
	if len(cfg.Kafka.Brokers) > 0 {
		publisher = kafka.NewProducer(&kafka.ProducerConfig{
			Brokers:      cfg.Kafka.Brokers,
			Topic:        cfg.Kafka.Topic,
			WriteTimeout: cfg.Kafka.WriteTimeout,
		})
		logg.Infof(ctx, "kafka producer enabled brokers=%v topic=%s", cfg.Kafka.Brokers, cfg.Kafka.Topic)
	} else {
		logg.Infof(ctx, "kafka brokers not configured, events disabled")
	}

	// Сборка доменного слоя.
	cartService := usecase.NewCartService(
		credis.NewCartRemoteCache(rdb),
		codec.NewJSONCodec(),
		cachemem.NewCartCache(),
		policy,
		publisher,
		logg,
	)

	// Режим Gin.
	applyGinMode(ctx, cfg.HTTP.GinMode, logg)

	// Имя сервиса для otelgin (только при включённом трейсинге).
	otelServiceName := ""
	if cfg.Tracing.Enabled {
		otelServiceName = cfg.Tracing.ServiceName
	}

	// Роутер и HTTP-сервер.
	httpHandler := rest.NewHandler(cartService, logg, cfg.HTTP.HandlerTimeout)
	router := rest.NewRouter(httpHandler, otelServiceName)

	httpSrv := &http.Server{
		Addr:              cfg.HTTP.Addr,
		Handler:           router,
		ReadTimeout:       cfg.HTTP.ReadTimeout,
		WriteTimeout:      cfg.HTTP.WriteTimeout,
		ReadHeaderTimeout: cfg.HTTP.ReadHeaderTimeout,
		IdleTimeout:       cfg.HTTP.IdleTimeout,
	}

	app := &App{
		Logger:          logg,
		HTTPServer:      httpSrv,
		gracefulTimeout: cfg.HTTP.GracefulTimeout,
	}

	// Очистка ресурсов (в обратном порядке).
	cleanup := func() {
		if terr := shutdownTrace(context.Background()); terr != nil {
			logg.Warnf(ctx, "shutdown tracing: %v", terr)
		}
		if perr := publisher.Close(); perr != nil {
			logg.Warnf(ctx, "kafka producer close error: %v", perr)
		}
		if rerr := rdb.Close(); rerr != nil {
			logg.Warnf(ctx, "redis close error: %v", rerr)
		}
		if cerr := cleanupLogger(); cerr != nil {
			logg.Warnf(ctx, "cleanup logger: %v", cerr)
		}
	}

	return app, cleanup, nil
}

// Run — запускает HTTP-сервер; ждёт отмены контекста или ошибки и останавливает его.
func (a *App) Run(ctx context.Context) error {
	errCh := make(chan error, 1)

	go func() {
		a.Logger.Infof(ctx, "http server starting (addr=%s)", a.HTTPServer.Addr)
		if err := a.HTTPServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	// Ожидание сигнала остановки или фоновой ошибки.
	select {
	case <-ctx.Done():
		a.Logger.Infof(ctx, "shutdown requested, starting graceful shutdown")
	case err := <-errCh:
		a.Logger.Warnf(ctx, "http server error: %v", err)
	}

	gt := a.gracefulTimeout
	if gt <= 0 {
		gt = 5 * time.Second
	}

	// Корректная остановка HTTP-сервера.
	shutdownCtx, cancel := context.WithTimeout(context.Background(), gt)
	defer cancel()

	if err := a.HTTPServer.Shutdown(shutdownCtx); err != nil {
		a.Logger.Warnf(ctx, "http server shutdown failed: %v", err)
	} else {
		a.Logger.Infof(ctx, "http server stopped gracefully")
	}

	a.Logger.Infof(ctx, "service stopped")
	return nil
}
