package domain

// Storefront — настройки витрины, в контексте которой выполняется запрос.
type Storefront struct {
	ShopName          string
	DefaultCartName   string
	GiftCardProductID string
	DefaultCurrency   string
}

// Visitor — посетитель текущего запроса.
// ID — идентичность покупателя (анонимная или аутентифицированная).
type Visitor struct {
	ID              string
	IsAuthenticated bool
	Email           string
}

// CartInvalidationEvent — событие бэкенда: серверное состояние корзины покупателя изменилось.
type CartInvalidationEvent struct {
	CustomerID string `json:"customer_id" validate:"required"`
	Reason     string `json:"reason,omitempty"`
}
