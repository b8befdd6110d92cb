//go:build integration

package rest_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	cachemem "github.com/Gunvolt24/cart-store/internal/cache/memory"
	"github.com/Gunvolt24/cart-store/internal/codec"
	"github.com/Gunvolt24/cart-store/internal/domain"
	"github.com/Gunvolt24/cart-store/internal/kafka"
	credis "github.com/Gunvolt24/cart-store/internal/repo/redis"
	"github.com/Gunvolt24/cart-store/internal/resilience"
	"github.com/Gunvolt24/cart-store/internal/testutil"
	rest "github.com/Gunvolt24/cart-store/internal/transport/http"
	"github.com/Gunvolt24/cart-store/internal/usecase"
	"github.com/Gunvolt24/cart-store/pkg/logger"
)

// Полный стек поверх живого Redis: сервис + роутер, без моков.
// stopRedis гасит контейнер — для сценариев деградации.
func newHTTPStack(t *testing.T) (ts *httptest.Server, stopRedis func()) {
	t.Helper()

	ctxStart, cancelStart := context.WithTimeout(context.Background(), 2*time.Minute)
	t.Cleanup(cancelStart)

	env, stop, err := testutil.StartRedisTC(ctxStart)
	require.NoError(t, err)
	t.Cleanup(func() { _ = stop(context.Background()) })

	logg, cleanup, err := logger.NewZapLogger(false)
	require.NoError(t, err)
	t.Cleanup(func() { _ = cleanup() })

	rdb := credis.NewClient(ctxStart, credis.Options{
		Addr:            env.Addr,
		ConnectAttempts: 3,
	}, logg)
	t.Cleanup(func() { _ = rdb.Close() })

	policy := resilience.NewPolicy(resilience.Config{
		MaxRetries:      1,
		RetryBase:       50 * time.Millisecond,
		BreakerFailures: 100,
		BreakerTimeout:  time.Minute,
	}, logg)

	svc := usecase.NewCartService(
		credis.NewCartRemoteCache(rdb),
		codec.NewJSONCodec(),
		cachemem.NewCartCache(),
		policy,
		kafka.NopPublisher{},
		logg,
	)

	h := rest.NewHandler(svc, logg, 5*time.Second)
	ts = httptest.NewServer(rest.NewRouter(h, ""))
	t.Cleanup(ts.Close)

	return ts, func() { _ = stop(context.Background()) }
}

func postItem(t *testing.T, ts *httptest.Server, userID, productID string, quantity int32) {
	t.Helper()
	body := strings.NewReader(`{"product_id":"` + productID + `","quantity":` + strconv.Itoa(int(quantity)) + `}`)
	resp, err := http.Post(ts.URL+"/cart/"+userID+"/items", "application/json", body)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusNoContent, resp.StatusCode)
}

func getCart(t *testing.T, ts *httptest.Server, userID string) domain.Cart {
	t.Helper()
	resp, err := http.Get(ts.URL + "/cart/" + userID)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var cart domain.Cart
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&cart))
	return cart
}

// 1) Добавление и чтение через HTTP: слияние позиций и порядок вставки.
func TestHTTP_AddAndGetCart_TC(t *testing.T) {
	ts, _ := newHTTPStack(t)

	postItem(t, ts, "u1", "p1", 2)
	postItem(t, ts, "u1", "p2", 1)
	postItem(t, ts, "u1", "p1", 3)

	cart := getCart(t, ts, "u1")
	require.Equal(t, "u1", cart.UserID)
	require.Len(t, cart.Items, 2)
	require.Equal(t, "p1", cart.Items[0].ProductID)
	require.Equal(t, int32(5), cart.Items[0].Quantity)
	require.Equal(t, "p2", cart.Items[1].ProductID)
	require.Equal(t, int32(1), cart.Items[1].Quantity)
}

// 2) Несуществующая корзина — пустая, не 404.
func TestHTTP_GetCart_UnknownUserIsEmpty_TC(t *testing.T) {
	ts, _ := newHTTPStack(t)

	cart := getCart(t, ts, "ghost")
	require.Equal(t, "ghost", cart.UserID)
	require.Empty(t, cart.Items)
}

// 3) Очистка корзины.
func TestHTTP_EmptyCart_TC(t *testing.T) {
	ts, _ := newHTTPStack(t)

	postItem(t, ts, "u1", "p1", 2)

	req, err := http.NewRequest(http.MethodDelete, ts.URL+"/cart/u1", http.NoBody)
	require.NoError(t, err)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusNoContent, resp.StatusCode)

	cart := getCart(t, ts, "u1")
	require.Empty(t, cart.Items)
}

// 4) Деградация: Redis умер — сервис продолжает отвечать из fallback-кэша.
func TestHTTP_SurvivesRedisOutage_TC(t *testing.T) {
	ts, stopRedis := newHTTPStack(t)

	postItem(t, ts, "u1", "p1", 2)

	stopRedis()

	// чтение отдаёт fallback-копию
	cart := getCart(t, ts, "u1")
	require.Equal(t, int32(2), cart.Quantity("p1"))

	// запись сливается в fallback и не падает
	postItem(t, ts, "u1", "p1", 3)
	cart = getCart(t, ts, "u1")
	require.Equal(t, int32(5), cart.Quantity("p1"))

	// ping остаётся живым: сервис доступен и без удалённого кэша
	resp, err := http.Get(ts.URL + "/ping")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
}

// 5) /metrics отвечает и содержит метрики сервиса.
func TestHTTP_Metrics_TC(t *testing.T) {
	ts, _ := newHTTPStack(t)

	postItem(t, ts, "u1", "p1", 1)

	resp, err := http.Get(ts.URL + "/metrics")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
}
