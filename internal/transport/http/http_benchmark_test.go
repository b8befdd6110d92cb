//go:build !integration

package rest

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Gunvolt24/cart-store/internal/domain"
)

// --- Бенчмарки ---

// Базовый бенч: GetCart — сравниваем LEAN vs FULL пайплайн
func BenchmarkHTTP_GetCart(b *testing.B) {
	log := nopLogger{}

	for _, n := range []int{1, 10, 100} {
		b.Run("items="+strconv.Itoa(n), func(b *testing.B) {
			h := NewHandler(storeStub{cart: benchCart("bench-user", n)}, log, 2*time.Second)

			b.Run("lean/no-mw", func(b *testing.B) {
				benchServeGET(b, makeLeanRouter(h), "/cart/bench-user")
			})
			b.Run("full/prod-mw", func(b *testing.B) {
				benchServeGET(b, makeFullRouter(h), "/cart/bench-user")
			})
		})
	}
}

// Потолок без маршалинга: та же корзина, но заранее закодированный JSON.
// Показывает, сколько «ест» encoding/json в хендлере.
func BenchmarkHTTP_GetCart_PreMarshaledBytes(b *testing.B) {
	raw, _ := json.Marshal(benchCart("bench-user", 10))

	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	// отдельный эндпоинт, который просто отдаёт готовый []byte
	r.GET("/cart/:user_id", func(c *gin.Context) {
		c.Data(http.StatusOK, "application/json", raw)
	})

	benchServeGET(b, r, "/cart/bench-user")
}

// Ошибочный путь (404): "цена" роутера и 404-хендлера
func BenchmarkHTTP_404(b *testing.B) {
	h := NewHandler(storeStub{cart: benchCart("bench-user", 1)}, nopLogger{}, 2*time.Second)
	r := makeLeanRouter(h)

	b.ReportAllocs()
	b.ResetTimer()

	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			req, _ := http.NewRequest(http.MethodGet, "/nope", nil)
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)
			_, _ = io.Copy(io.Discard, w.Body)
			if w.Code != http.StatusNotFound {
				b.Fatalf("status=%d", w.Code)
			}
		}
	})
}

// --- nopLogger — логгер, который не делает ничего. ---

type nopLogger struct{}

func (nopLogger) Infof(context.Context, string, ...any)  {}
func (nopLogger) Warnf(context.Context, string, ...any)  {}
func (nopLogger) Errorf(context.Context, string, ...any) {}

// --- Стабы ---

type storeStub struct{ cart *domain.Cart }

func (s storeStub) AddItem(context.Context, string, string, int32) error { return nil }
func (s storeStub) EmptyCart(context.Context, string) error              { return nil }
func (s storeStub) GetCart(context.Context, string) (*domain.Cart, error) {
	return s.cart, nil
}
func (s storeStub) Ping(context.Context) bool { return true }

func benchCart(userID string, items int) *domain.Cart {
	c := domain.NewCart(userID)
	for i := 0; i < items; i++ {
		c.AddItem("product-"+strconv.Itoa(i), int32(i%5+1))
	}
	return c
}

// --- функции-помощники ---

func makeLeanRouter(h *Handler) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New() // без Recovery/otel/logger — получаем меньшую аллокацию
	r.GET("/cart/:user_id", h.getCart)
	return r
}

func makeFullRouter(h *Handler) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	// prod пайплайн из NewRouter
	return NewRouter(h, "")
}

func benchServeGET(b *testing.B, r *gin.Engine, path string) {
	b.Helper()
	b.ReportAllocs()
	b.ResetTimer()

	// Параллельный режим ближе к реальности без TCP
	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			req, _ := http.NewRequest(http.MethodGet, path, nil)
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)
			// вычитываем тело
			_, _ = io.Copy(io.Discard, w.Body)
			if w.Code != http.StatusOK {
				b.Fatalf("status=%d", w.Code)
			}
		}
	})
}
