package ports

import "github.com/Gunvolt24/cart-store/internal/domain"

// CartCodec — кодек записи корзины (внешне заданная схема сериализации).
type CartCodec interface {
	// Encode — сериализует корзину в байты.
	Encode(cart *domain.Cart) ([]byte, error)

	// Decode — восстанавливает корзину из байтов;
	// на повреждённых данных возвращает ошибку декодирования.
	Decode(data []byte) (*domain.Cart, error)
}
