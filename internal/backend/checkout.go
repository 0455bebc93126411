package backend

import (
	"context"
	"fmt"
	"slices"

	"github.com/Gunvolt24/wb_cart/internal/domain"
)

// GetShippingOptions — варианты доставки корзины и каждой строки.
// Подарочные карты доставляются только электронно.
func (c *Commerce) GetShippingOptions(_ context.Context, cart *domain.Cart) (domain.ShippingOptionsResult, error) {
	if cart == nil {
		return domain.ShippingOptionsResult{ServiceResult: domain.Fail(domain.MsgCartNotFound, "cart is required")}, nil
	}

	result := domain.ShippingOptionsResult{ServiceResult: domain.OK()}
	physical, electronic := 0, 0
	for _, line := range cart.Lines {
		lineOpts := domain.LineShippingOptions{LineID: line.ExternalID}
		if c.isGiftCard(line) {
			electronic++
			lineOpts.Options = []domain.ShippingOption{shippingOption(domain.ElectronicDelivery)}
		} else {
			physical++
			lineOpts.Options = []domain.ShippingOption{
				shippingOption(domain.ShipToAddress),
				shippingOption(domain.PickupFromStore),
			}
		}
		result.LineOptions = append(result.LineOptions, lineOpts)
	}

	if physical > 0 {
		result.Options = append(result.Options, shippingOption(domain.ShipToAddress), shippingOption(domain.PickupFromStore))
	}
	if electronic > 0 && physical == 0 {
		result.Options = append(result.Options, shippingOption(domain.ElectronicDelivery))
	}
	if len(cart.Lines) > 1 {
		result.Options = append(result.Options, shippingOption(domain.DeliverItemsIndividually))
	}
	return result, nil
}

// GetShippingMethods — методы для предпочтения; пустое или «по строкам» — все методы.
// Стоимость пересчитывается в валюту корзины.
func (c *Commerce) GetShippingMethods(_ context.Context, req domain.ShippingMethodsRequest) (domain.ShippingMethodsResult, error) {
	if req.Party != nil && req.Party.Country != "" {
		if _, ok := c.catalog.Countries[req.Party.Country]; !ok {
			return domain.ShippingMethodsResult{
				ServiceResult: domain.Fail(domain.MsgInvalidInput, fmt.Sprintf("shipping to %s is not available", req.Party.Country)),
			}, nil
		}
	}

	currency := c.catalog.BaseCurrency
	if req.Cart != nil && req.Cart.CurrencyCode != "" {
		currency = req.Cart.CurrencyCode
	}

	all := req.Preference == "" || req.Preference == domain.DeliverItemsIndividually
	result := domain.ShippingMethodsResult{ServiceResult: domain.OK()}
	for _, entry := range c.catalog.Shipping {
		if !all && !slices.Contains(entry.Preferences, req.Preference) {
			continue
		}
		method := entry.Method
		method.Cost = c.catalog.convert(method.Cost, currency)
		result.Methods = append(result.Methods, method)
	}
	return result, nil
}

func (c *Commerce) GetAvailableCountries(context.Context) (domain.CountriesResult, error) {
	countries := make(map[string]string, len(c.catalog.Countries))
	for code, name := range c.catalog.Countries {
		countries[code] = name
	}
	return domain.CountriesResult{ServiceResult: domain.OK(), Countries: countries}, nil
}

// GetAvailableStates — регионы страны; страна без регионов даёт пустой справочник.
func (c *Commerce) GetAvailableStates(_ context.Context, countryCode string) (domain.StatesResult, error) {
	if _, ok := c.catalog.Countries[countryCode]; !ok {
		return domain.StatesResult{
			ServiceResult: domain.Fail(domain.MsgInvalidInput, fmt.Sprintf("country %s is not available", countryCode)),
		}, nil
	}
	states := make(map[string]string, len(c.catalog.States[countryCode]))
	for code, name := range c.catalog.States[countryCode] {
		states[code] = name
	}
	return domain.StatesResult{ServiceResult: domain.OK(), States: states}, nil
}

// GetPaymentOptions — подарочную карту нельзя оплатить подарочной картой.
func (c *Commerce) GetPaymentOptions(_ context.Context, cart *domain.Cart) (domain.PaymentOptionsResult, error) {
	if cart == nil {
		return domain.PaymentOptionsResult{ServiceResult: domain.Fail(domain.MsgCartNotFound, "cart is required")}, nil
	}
	hasGiftCard := false
	for _, line := range cart.Lines {
		if c.isGiftCard(line) {
			hasGiftCard = true
			break
		}
	}

	result := domain.PaymentOptionsResult{ServiceResult: domain.OK()}
	for _, option := range c.catalog.PaymentOptions {
		if hasGiftCard && option.Type == domain.PaymentTypeGiftCard {
			continue
		}
		result.Options = append(result.Options, option)
	}
	return result, nil
}

func (c *Commerce) GetPaymentMethods(_ context.Context, _ *domain.Cart, option domain.PaymentOption) (domain.PaymentMethodsResult, error) {
	methods, ok := c.catalog.PaymentMethods[option.Type]
	if !ok {
		return domain.PaymentMethodsResult{
			ServiceResult: domain.Fail(domain.MsgInvalidInput, fmt.Sprintf("payment option %s is not available", option.Type)),
		}, nil
	}
	return domain.PaymentMethodsResult{
		ServiceResult: domain.OK(),
		Methods:       append([]domain.PaymentMethod(nil), methods...),
	}, nil
}

func (c *Commerce) isGiftCard(line domain.CartLine) bool {
	product, ok := c.catalog.product(line.ProductID, line.CatalogName)
	return ok && product.GiftCard
}

var shippingOptionNames = map[domain.ShippingPreference]string{
	domain.ShipToAddress:            "Ship items",
	domain.PickupFromStore:          "Pick up items from store",
	domain.ElectronicDelivery:       "Email delivery",
	domain.DeliverItemsIndividually: "Select delivery per item",
}

func shippingOption(pref domain.ShippingPreference) domain.ShippingOption {
	return domain.ShippingOption{Preference: pref, Name: shippingOptionNames[pref]}
}
