package ports

import (
	"context"

	"github.com/Gunvolt24/wb_cart/internal/domain"
)

// CartStore — контракт удалённого коммерческого бэкенда для операций с корзиной.
// Отказ бэкенда возвращается в CartResult (Success=false + сообщения);
// error — только для сбоев самого вызова (сеть, БД, таймаут).
type CartStore interface {
	LoadCart(ctx context.Context, shopName, cartName, customerID string) (domain.CartResult, error)
	// FindCart — только чтение: отсутствующая корзина даёт CartNotFound, новая не создаётся.
	FindCart(ctx context.Context, shopName, cartName, customerID string) (domain.CartResult, error)

	AddCartLines(ctx context.Context, cart *domain.Cart, lines []domain.CartLine, refresh bool) (domain.CartResult, error)
	RemoveCartLines(ctx context.Context, cart *domain.Cart, lines []domain.CartLine, refresh bool) (domain.CartResult, error)
	UpdateCartLines(ctx context.Context, cart *domain.Cart, lines []domain.CartLine, refresh bool) (domain.CartResult, error)

	AddPromoCode(ctx context.Context, cart *domain.Cart, code string) (domain.CartResult, error)
	RemovePromoCode(ctx context.Context, cart *domain.Cart, code string) (domain.CartResult, error)

	AddShippingInfo(ctx context.Context, cart *domain.Cart, preference domain.ShippingPreference, shipments []domain.ShippingInfo) (domain.CartResult, error)
	AddCartParties(ctx context.Context, cart *domain.Cart, parties []domain.Party) (domain.CartResult, error)
	AddPaymentInfo(ctx context.Context, cart *domain.Cart, payments []domain.PaymentInfo) (domain.CartResult, error)

	MergeCart(ctx context.Context, source, target *domain.Cart) (domain.CartResult, error)
	UpdateCartCurrency(ctx context.Context, cart *domain.Cart, currencyCode string) (domain.CartResult, error)
}
