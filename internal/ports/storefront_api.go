package ports

import (
	"context"

	"github.com/Gunvolt24/wb_cart/internal/domain"
)

// CartAPI — операции корзины, доступные транспортному слою.
type CartAPI interface {
	GetCurrentCart(ctx context.Context, sf domain.Storefront, v domain.Visitor, refresh bool) domain.Response[*domain.Cart]
	FindCart(ctx context.Context, sf domain.Storefront, customerID string) domain.Response[*domain.Cart]
	AddLineItems(ctx context.Context, sf domain.Storefront, v domain.Visitor, lines []domain.CartLineInput) domain.Response[*domain.Cart]
	RemoveLineItem(ctx context.Context, sf domain.Storefront, v domain.Visitor, lineID string) domain.Response[*domain.Cart]
	ChangeLineQuantity(ctx context.Context, sf domain.Storefront, v domain.Visitor, lineID string, quantity int) domain.Response[*domain.Cart]
	AddPromoCode(ctx context.Context, sf domain.Storefront, v domain.Visitor, code string) domain.Response[*domain.Cart]
	RemovePromoCode(ctx context.Context, sf domain.Storefront, v domain.Visitor, code string) domain.Response[*domain.Cart]
	SetShippingMethods(ctx context.Context, sf domain.Storefront, v domain.Visitor, input domain.SetShippingInput) domain.Response[*domain.Cart]
	SetPaymentMethods(ctx context.Context, sf domain.Storefront, v domain.Visitor, input domain.SetPaymentInput) domain.Response[*domain.Cart]
	UpdateCartCurrency(ctx context.Context, sf domain.Storefront, v domain.Visitor, currencyCode string) domain.Response[*domain.Cart]
	MergeCarts(ctx context.Context, sf domain.Storefront, v domain.Visitor, anonymousID string, anonymousCart *domain.Cart) domain.Response[*domain.Cart]

	GetParties(ctx context.Context, sf domain.Storefront, v domain.Visitor) domain.Response[[]domain.CommerceParty]
	SaveParties(ctx context.Context, sf domain.Storefront, v domain.Visitor, parties []domain.CommerceParty) domain.Response[[]domain.CommerceParty]
	RemoveParties(ctx context.Context, sf domain.Storefront, v domain.Visitor, partyIDs []string) domain.Response[bool]
}

// CheckoutAPI — агрегатор данных оформления заказа.
type CheckoutAPI interface {
	GetCheckoutData(ctx context.Context, sf domain.Storefront, v domain.Visitor) domain.Response[*domain.CheckoutData]
	GetAvailableStates(ctx context.Context, countryCode string) domain.Response[map[string]string]
}
