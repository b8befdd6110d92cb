package domain

// Cart — корзина пользователя.
// Инвариант: не более одной позиции (CartItem) на каждый product_id.
type Cart struct {
	UserID string     `json:"user_id"`
	Items  []CartItem `json:"items"`
}

// CartItem — позиция корзины. Quantity только растёт при добавлениях.
type CartItem struct {
	ProductID string `json:"product_id"`
	Quantity  int32  `json:"quantity"`
}

// NewCart — пустая корзина для пользователя.
// «Никогда не создавалась» и «явно опустошена» для вызывающего кода неразличимы.
func NewCart(userID string) *Cart {
	return &Cart{UserID: userID, Items: []CartItem{}}
}

// AddItem — слить (productID, quantity) в корзину:
// если позиция с таким product_id есть — увеличить количество, иначе добавить в конец.
func (c *Cart) AddItem(productID string, quantity int32) {
	for i := range c.Items {
		if c.Items[i].ProductID == productID {
			c.Items[i].Quantity += quantity
			return
		}
	}
	c.Items = append(c.Items, CartItem{ProductID: productID, Quantity: quantity})
}

// Quantity — количество по product_id; 0, если позиции нет.
func (c *Cart) Quantity(productID string) int32 {
	for i := range c.Items {
		if c.Items[i].ProductID == productID {
			return c.Items[i].Quantity
		}
	}
	return 0
}

// Clone — глубокая копия корзины, чтобы внешние изменения
// не отражались на данных внутри кэшей.
func (c *Cart) Clone() *Cart {
	if c == nil {
		return nil
	}
	cloned := *c
	if c.Items != nil {
		cloned.Items = append([]CartItem(nil), c.Items...)
	}
	return &cloned
}
