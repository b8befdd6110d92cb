package memory

import (
	"context"
	"sync"

	"github.com/Gunvolt24/cart-store/internal/domain"
	"github.com/Gunvolt24/cart-store/pkg/metrics"
)

// CartCache — процесс-локальный fallback-кэш корзин: map user_id → Cart под мьютексом.
// Без вытеснения, TTL и персистентности: содержимое живёт ровно столько, сколько процесс.
// Наружу отдаются и внутрь кладутся только копии.
type CartCache struct {
	mu    sync.RWMutex
	carts map[string]*domain.Cart
}

func NewCartCache() *CartCache {
	return &CartCache{carts: make(map[string]*domain.Cart)}
}

// Get — вернуть корзину по user_id; (cart, true) при попадании, (nil, false) при промахе.
func (c *CartCache) Get(_ context.Context, userID string) (*domain.Cart, bool) {
	c.mu.RLock()
	cart, ok := c.carts[userID]
	c.mu.RUnlock()

	if !ok {
		metrics.CacheOps.WithLabelValues("miss").Inc()
		return nil, false
	}
	metrics.CacheOps.WithLabelValues("hit").Inc()
	return cart.Clone(), true
}

// Set — сохранить/перезаписать корзину пользователя.
// Запись с пустым user_id молча игнорируется.
func (c *CartCache) Set(_ context.Context, cart *domain.Cart) error {
	if cart == nil || cart.UserID == "" {
		return nil
	}

	c.mu.Lock()
	c.carts[cart.UserID] = cart.Clone()
	size := len(c.carts)
	c.mu.Unlock()

	metrics.CacheSize.Set(float64(size))
	return nil
}

// Len — текущее число корзин в кэше.
func (c *CartCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.carts)
}
