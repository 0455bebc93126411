package backend

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/Gunvolt24/wb_cart/internal/domain"
)

// priceLine — цена единицы строки в валюте корзины.
func (c *Catalog) priceLine(line domain.CartLine, currency string) (int64, error) {
	product, ok := c.product(line.ProductID, line.CatalogName)
	if !ok {
		return 0, fmt.Errorf("product %s not found in catalog %s", line.ProductID, line.CatalogName)
	}
	if !product.GiftCard {
		return c.convert(product.Price, currency), nil
	}
	// номинал подарочной карты уже в валюте корзины
	raw := strings.TrimSpace(line.Properties[domain.PropertyGiftCardAmount])
	amount, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || amount <= 0 {
		return 0, fmt.Errorf("gift card %s requires a positive %s property", line.ProductID, domain.PropertyGiftCardAmount)
	}
	return amount, nil
}

// recalculate — цены строк (для новых или при refresh) и итоги корзины.
func (c *Catalog) recalculate(cart *domain.Cart, refresh bool) []string {
	var basketErrors []string
	var subtotal int64
	for i := range cart.Lines {
		line := &cart.Lines[i]
		if refresh || line.UnitPrice == 0 {
			price, err := c.priceLine(*line, cart.CurrencyCode)
			if err != nil {
				basketErrors = append(basketErrors, err.Error())
			} else {
				line.UnitPrice = price
			}
		}
		line.LineTotal = line.UnitPrice * int64(line.Quantity)
		subtotal += line.LineTotal
	}

	var percent int64
	for _, code := range cart.PromoCodes {
		if promo, ok := c.promotion(code); ok {
			percent += promo.PercentOff
		}
	}
	if percent > 100 {
		percent = 100
	}
	discount := subtotal * percent / 100

	var shipping int64
	for _, info := range cart.Shipping {
		if method, ok := c.shippingMethod(info.ShippingMethodID); ok {
			shipping += c.convert(method.Cost, cart.CurrencyCode)
		}
	}

	tax := (subtotal - discount) * c.TaxRateBP / 10000

	cart.Totals = domain.Totals{
		Subtotal: subtotal,
		Discount: discount,
		Shipping: shipping,
		Tax:      tax,
		Total:    subtotal - discount + shipping + tax,
	}
	return basketErrors
}
