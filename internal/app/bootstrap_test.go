package app_test

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/Gunvolt24/cart-store/internal/app"
)

// логгер-заглушка
type nopLogger struct{}

func (nopLogger) Infof(context.Context, string, ...any)  {}
func (nopLogger) Warnf(context.Context, string, ...any)  {}
func (nopLogger) Errorf(context.Context, string, ...any) {}

func TestAppRun_GracefulShutdown(t *testing.T) {
	// HTTP-сервер на случайном свободном порту
	srv := &http.Server{
		Addr:    "127.0.0.1:0",
		Handler: http.NewServeMux(),
	}

	a := &app.App{
		Logger:     nopLogger{},
		HTTPServer: srv,
	}

	// Запуск и быстрая остановка по отмене контекста
	ctx, cancel := context.WithTimeout(context.Background(), 300*time.Millisecond)
	defer cancel()

	if err := a.Run(ctx); err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
}

func TestAppRun_ServerErrorTriggersShutdown(t *testing.T) {
	// заведомо занятой/невалидный адрес — ListenAndServe упадёт сразу
	srv := &http.Server{
		Addr:    "256.256.256.256:0",
		Handler: http.NewServeMux(),
	}

	a := &app.App{
		Logger:     nopLogger{},
		HTTPServer: srv,
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	// Run не должен зависнуть и не должен паниковать
	if err := a.Run(ctx); err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
}
