package ports

import (
	"context"

	"github.com/Gunvolt24/cart-store/internal/domain"
)

// EventPublisher — издатель событий об изменениях корзины (best-effort).
type EventPublisher interface {
	Publish(ctx context.Context, event domain.CartEvent) error
	Close() error
}
