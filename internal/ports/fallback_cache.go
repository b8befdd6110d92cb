package ports

import (
	"context"

	"github.com/Gunvolt24/cart-store/internal/domain"
)

// FallbackCache — процесс-локальный кэш корзин на случай недоступности удалённого.
// Требования к реализации: потокобезопасность; без вытеснения и TTL; возврат копий сущности.
// Содержимое не переживает рестарт процесса — это осознанный компромисс.
type FallbackCache interface {
	// Get — вернуть корзину по user_id; (cart, true) при попадании, (nil, false) при промахе.
	Get(ctx context.Context, userID string) (*domain.Cart, bool)

	// Set — сохранить/перезаписать корзину пользователя.
	Set(ctx context.Context, cart *domain.Cart) error
}
