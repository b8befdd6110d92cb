package codec

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/Gunvolt24/cart-store/internal/domain"
)

// ErrMalformed — повреждённые/неожиданные байты записи корзины.
var ErrMalformed = errors.New("malformed cart record")

// JSONCodec — кодек записи корзины поверх канонического JSON.
// Decode строгий: неизвестные поля и хвостовые данные — ошибка,
// чтобы повреждение записи в удалённом кэше не проходило молча.
type JSONCodec struct{}

func NewJSONCodec() *JSONCodec { return &JSONCodec{} }

func (JSONCodec) Encode(cart *domain.Cart) ([]byte, error) {
	if cart == nil {
		return nil, fmt.Errorf("%w: nil cart", ErrMalformed)
	}
	data, err := json.Marshal(cart)
	if err != nil {
		return nil, fmt.Errorf("encode cart: %w", err)
	}
	return data, nil
}

func (JSONCodec) Decode(data []byte) (*domain.Cart, error) {
	var cart domain.Cart

	// Строгое декодирование: запрещаем неизвестные поля.
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&cart); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}

	// Убеждаемся, что после объекта нет лишних данных.
	if err := dec.Decode(new(struct{})); err != io.EOF {
		return nil, fmt.Errorf("%w: trailing data", ErrMalformed)
	}

	if cart.Items == nil {
		cart.Items = []domain.CartItem{}
	}
	return &cart, nil
}
