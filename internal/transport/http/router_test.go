package rest_test

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"

	"github.com/Gunvolt24/cart-store/internal/domain"
	"github.com/Gunvolt24/cart-store/internal/ports/mocks"
	rest "github.com/Gunvolt24/cart-store/internal/transport/http"
	"github.com/Gunvolt24/cart-store/internal/usecase"
)

type noopLogger struct{}

func (noopLogger) Infof(context.Context, string, ...any)  {}
func (noopLogger) Warnf(context.Context, string, ...any)  {}
func (noopLogger) Errorf(context.Context, string, ...any) {}

func newTestRouter(t *testing.T) (*mocks.MockCartStore, http.Handler) {
	t.Helper()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	store := mocks.NewMockCartStore(ctrl)
	h := rest.NewHandler(store, noopLogger{}, 0)
	return store, rest.NewRouter(h, "")
}

func TestGetCart_OK(t *testing.T) {
	store, r := newTestRouter(t)

	want := domain.NewCart("u1")
	want.AddItem("p1", 2)
	store.EXPECT().GetCart(gomock.Any(), "u1").Return(want, nil)

	req := httptest.NewRequest(http.MethodGet, "/cart/u1", http.NoBody)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("want 200, got %d, body=%s", w.Code, w.Body.String())
	}
	var got domain.Cart
	if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if got.UserID != "u1" || got.Quantity("p1") != 2 {
		t.Fatalf("wrong cart: %+v", got)
	}
}

func TestGetCart_EmptyForUnknownUser(t *testing.T) {
	store, r := newTestRouter(t)

	store.EXPECT().GetCart(gomock.Any(), "ghost").Return(domain.NewCart("ghost"), nil)

	req := httptest.NewRequest(http.MethodGet, "/cart/ghost", http.NoBody)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	// несуществующая корзина — это пустая корзина, не 404
	if w.Code != http.StatusOK {
		t.Fatalf("want 200, got %d, body=%s", w.Code, w.Body.String())
	}
	if !strings.Contains(w.Body.String(), `"items":[]`) {
		t.Fatalf("want empty items array, body=%s", w.Body.String())
	}
}

func TestAddItem_NoContent(t *testing.T) {
	store, r := newTestRouter(t)

	store.EXPECT().AddItem(gomock.Any(), "u1", "p1", int32(3)).Return(nil)

	body := strings.NewReader(`{"product_id":"p1","quantity":3}`)
	req := httptest.NewRequest(http.MethodPost, "/cart/u1/items", body)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusNoContent {
		t.Fatalf("want 204, got %d, body=%s", w.Code, w.Body.String())
	}
}

func TestAddItem_BadBody(t *testing.T) {
	_, r := newTestRouter(t)

	cases := []struct {
		name string
		body string
	}{
		{"not json", "not-a-json"},
		{"missing product", `{"quantity":3}`},
		{"zero quantity", `{"product_id":"p1","quantity":0}`},
		{"negative quantity", `{"product_id":"p1","quantity":-1}`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/cart/u1/items", strings.NewReader(tc.body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			if w.Code != http.StatusBadRequest {
				t.Fatalf("want 400, got %d, body=%s", w.Code, w.Body.String())
			}
		})
	}
}

func TestAddItem_InvalidInputFromService(t *testing.T) {
	store, r := newTestRouter(t)

	store.EXPECT().AddItem(gomock.Any(), "u1", "p1", int32(1)).
		Return(fmt.Errorf("%w: bad product", usecase.ErrInvalidInput))

	body := strings.NewReader(`{"product_id":"p1","quantity":1}`)
	req := httptest.NewRequest(http.MethodPost, "/cart/u1/items", body)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("want 400, got %d, body=%s", w.Code, w.Body.String())
	}
}

func TestEmptyCart_NoContent(t *testing.T) {
	store, r := newTestRouter(t)

	store.EXPECT().EmptyCart(gomock.Any(), "u1").Return(nil)

	req := httptest.NewRequest(http.MethodDelete, "/cart/u1", http.NoBody)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusNoContent {
		t.Fatalf("want 204, got %d, body=%s", w.Code, w.Body.String())
	}
}

func TestPing_OK(t *testing.T) {
	store, r := newTestRouter(t)

	store.EXPECT().Ping(gomock.Any()).Return(true)

	req := httptest.NewRequest(http.MethodGet, "/ping", http.NoBody)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK || w.Body.String() != "pong" {
		t.Fatalf("want 200 pong, got %d %q", w.Code, w.Body.String())
	}
}

func TestPing_Down(t *testing.T) {
	store, r := newTestRouter(t)

	store.EXPECT().Ping(gomock.Any()).Return(false)

	req := httptest.NewRequest(http.MethodGet, "/ping", http.NoBody)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusServiceUnavailable {
		t.Fatalf("want 503, got %d", w.Code)
	}
}

func TestRequestIDHeaderPropagated(t *testing.T) {
	store, r := newTestRouter(t)

	store.EXPECT().Ping(gomock.Any()).Return(true)

	req := httptest.NewRequest(http.MethodGet, "/ping", http.NoBody)
	req.Header.Set("X-Request-ID", "rid-42")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if got := w.Header().Get("X-Request-ID"); got != "rid-42" {
		t.Fatalf("want X-Request-ID=rid-42, got %q", got)
	}
}
