package ports

import (
	"context"

	"github.com/Gunvolt24/cart-store/internal/domain"
)

// CartStore — публичные операции хранилища корзин.
// Контракт доступности: AddItem/EmptyCart/GetCart не возвращают ошибку из-за
// недоступности удалённого кэша — операции деградируют в локальное состояние.
// Ошибка возможна только на невалидных аргументах.
type CartStore interface {
	AddItem(ctx context.Context, userID, productID string, quantity int32) error
	EmptyCart(ctx context.Context, userID string) error
	GetCart(ctx context.Context, userID string) (*domain.Cart, error)

	// Ping — health-check; никогда не паникует, всегда возвращает bool.
	Ping(ctx context.Context) bool
}
