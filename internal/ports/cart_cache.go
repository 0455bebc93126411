package ports

import (
	"context"

	"github.com/Gunvolt24/wb_cart/internal/domain"
)

// CartCache — кэш последних известных снимков корзин по идентичности покупателя.
// Требования к реализации: потокобезопасность; возврат копий; промах — не ошибка.
// Кэш не авторитетен: любая запись восстанавливается из CartStore.
type CartCache interface {
	// Get — вернуть снимок корзины покупателя; (nil, false) при промахе/истечении.
	Get(ctx context.Context, customerID string) (*domain.Cart, bool)

	// Set — сохранить снимок по cart.CustomerID.
	Set(ctx context.Context, cart *domain.Cart) error

	// Invalidate — удалить снимок покупателя (отсутствие записи — не ошибка).
	Invalidate(ctx context.Context, customerID string) error
}
