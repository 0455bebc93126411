package ports

import (
	"context"

	"github.com/Gunvolt24/wb_cart/internal/domain"
)

// CartRepository — хранилище корзин коммерческого бэкенда.
// Корзина идентифицируется тройкой (магазин, имя корзины, покупатель).
type CartRepository interface {
	// FindCart — (nil, nil), если корзины нет.
	FindCart(ctx context.Context, shopName, cartName, customerID string) (*domain.Cart, error)
	// SaveCart — upsert корзины целиком (строки заменяются).
	SaveCart(ctx context.Context, cart *domain.Cart) error
	// DeleteCart — удаление; отсутствие корзины не ошибка.
	DeleteCart(ctx context.Context, shopName, cartName, customerID string) error
}
