package domain

import "time"

// Типы событий об изменениях корзины.
const (
	EventCartUpdated = "cart_updated"
	EventCartEmptied = "cart_emptied"
)

// CartEvent — событие об изменении корзины для внешних потребителей (аналитика и т.д.).
// Публикация best-effort: потеря события не влияет на результат операции.
type CartEvent struct {
	Type       string    `json:"type"`
	UserID     string    `json:"user_id"`
	ItemCount  int       `json:"item_count"`
	OccurredAt time.Time `json:"occurred_at"`
}
