package rest

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	"github.com/Gunvolt24/cart-store/internal/ports"
	"github.com/Gunvolt24/cart-store/internal/usecase"
	"github.com/Gunvolt24/cart-store/pkg/httpx"
)

type Handler struct {
	store   ports.CartStore
	log     ports.Logger
	timeout time.Duration // таймаут обработки одного запроса; <=0 — без таймаута
}

func NewHandler(store ports.CartStore, log ports.Logger, timeout time.Duration) *Handler {
	return &Handler{store: store, log: log, timeout: timeout}
}

// NewRouter — роутер сервиса. otelServiceName непустой — включает otelgin.
func NewRouter(h *Handler, otelServiceName string) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	if otelServiceName != "" {
		r.Use(otelgin.Middleware(otelServiceName))
	}
	r.Use(httpx.RequestIDMiddleware())
	r.Use(httpx.RequestLogger(h.log))

	r.GET("/ping", h.ping)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	r.GET("/cart/:user_id", h.getCart)
	r.POST("/cart/:user_id/items", h.addItem)
	r.DELETE("/cart/:user_id", h.emptyCart)

	return r
}

// addItemRequest — тело POST /cart/:user_id/items.
type addItemRequest struct {
	ProductID string `json:"product_id" binding:"required"`
	Quantity  int32  `json:"quantity" binding:"required,gt=0"`
}

func (h *Handler) requestCtx(c *gin.Context) (context.Context, context.CancelFunc) {
	if h.timeout <= 0 {
		return c.Request.Context(), func() {}
	}
	return context.WithTimeout(c.Request.Context(), h.timeout)
}

func (h *Handler) ping(c *gin.Context) {
	if !h.store.Ping(c.Request.Context()) {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "down"})
		return
	}
	c.String(http.StatusOK, "pong")
}

func (h *Handler) getCart(c *gin.Context) {
	ctx, cancel := h.requestCtx(c)
	defer cancel()

	cart, err := h.store.GetCart(ctx, c.Param("user_id"))
	if err != nil {
		h.respondError(c, "GetCart", err)
		return
	}
	c.JSON(http.StatusOK, cart)
}

func (h *Handler) addItem(c *gin.Context) {
	var req addItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body: product_id and positive quantity required"})
		return
	}

	ctx, cancel := h.requestCtx(c)
	defer cancel()

	if err := h.store.AddItem(ctx, c.Param("user_id"), req.ProductID, req.Quantity); err != nil {
		h.respondError(c, "AddItem", err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) emptyCart(c *gin.Context) {
	ctx, cancel := h.requestCtx(c)
	defer cancel()

	if err := h.store.EmptyCart(ctx, c.Param("user_id")); err != nil {
		h.respondError(c, "EmptyCart", err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) respondError(c *gin.Context, op string, err error) {
	if errors.Is(err, usecase.ErrInvalidInput) {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	h.log.Errorf(c.Request.Context(), "%s failed user=%s err=%v", op, c.Param("user_id"), err)
	c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
}
