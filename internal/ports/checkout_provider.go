package ports

import (
	"context"

	"github.com/Gunvolt24/wb_cart/internal/domain"
)

// CheckoutProvider — справочные запросы оформления заказа к бэкенду.
type CheckoutProvider interface {
	GetShippingOptions(ctx context.Context, cart *domain.Cart) (domain.ShippingOptionsResult, error)
	GetShippingMethods(ctx context.Context, req domain.ShippingMethodsRequest) (domain.ShippingMethodsResult, error)
	GetAvailableCountries(ctx context.Context) (domain.CountriesResult, error)
	GetAvailableStates(ctx context.Context, countryCode string) (domain.StatesResult, error)
	GetPaymentOptions(ctx context.Context, cart *domain.Cart) (domain.PaymentOptionsResult, error)
	GetPaymentMethods(ctx context.Context, cart *domain.Cart, option domain.PaymentOption) (domain.PaymentMethodsResult, error)
}
