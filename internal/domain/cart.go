package domain

// Cart — корзина покупателя: строки, адреса, оплата, доставка, промокоды и итоги.
// Идентифицируется парой (ShopName, Name) и владельцем CustomerID.
type Cart struct {
	ExternalID   string         `json:"external_id"`
	ShopName     string         `json:"shop_name"`
	Name         string         `json:"name"`
	CustomerID   string         `json:"customer_id"`
	CurrencyCode string         `json:"currency_code"`
	Lines        []CartLine     `json:"lines"`
	Parties      []Party        `json:"parties,omitempty"`
	Payments     []PaymentInfo  `json:"payments,omitempty"`
	Shipping     []ShippingInfo `json:"shipping,omitempty"`
	PromoCodes   []string       `json:"promo_codes,omitempty"`
	Totals       Totals         `json:"totals"`

	// BasketErrors — ошибки уровня строк, которые бэкенд вернул вместе с успешным ответом.
	BasketErrors []string `json:"basket_errors,omitempty"`
}

// CartLine — строка корзины.
type CartLine struct {
	ExternalID  string            `json:"external_id"`
	ProductID   string            `json:"product_id"`
	VariantID   string            `json:"variant_id,omitempty"`
	CatalogName string            `json:"catalog_name"`
	Quantity    int               `json:"quantity"`
	UnitPrice   int64             `json:"unit_price"`
	LineTotal   int64             `json:"line_total"`
	Properties  map[string]string `json:"properties,omitempty"`
}

// Totals — производные суммы корзины (в минимальных единицах валюты).
type Totals struct {
	Subtotal int64 `json:"subtotal"`
	Discount int64 `json:"discount"`
	Shipping int64 `json:"shipping"`
	Tax      int64 `json:"tax"`
	Total    int64 `json:"total"`
}

// PaymentInfo — способ оплаты, привязанный к корзине.
type PaymentInfo struct {
	PaymentMethodID string `json:"payment_method_id" validate:"required"`
	PartyID         string `json:"party_id,omitempty"`
	Amount          int64  `json:"amount"`
}

// ShippingInfo — привязка упорядоченного набора строк к методу доставки и адресу.
type ShippingInfo struct {
	ShippingMethodID string   `json:"shipping_method_id" validate:"required"`
	PartyID          string   `json:"party_id,omitempty"`
	ElectronicEmail  string   `json:"electronic_email,omitempty"`
	LineIDs          []string `json:"line_ids"`
}

// CartLineInput — запрос на добавление строки (валидируется до похода в бэкенд).
type CartLineInput struct {
	ProductID   string            `json:"product_id"   validate:"required"`
	VariantID   string            `json:"variant_id,omitempty"`
	CatalogName string            `json:"catalog_name" validate:"required"`
	Quantity    int               `json:"quantity"     validate:"required,min=1"`
	Properties  map[string]string `json:"properties,omitempty"`
}

// PropertyGiftCardAmount — номинал подарочной карты, у каждой карты свой.
const PropertyGiftCardAmount = "GiftCardAmount"

// HasBasketErrors — бэкенд сообщил об ошибках в строках.
func (c *Cart) HasBasketErrors() bool {
	return c != nil && len(c.BasketErrors) > 0
}

// LineByID — поиск строки по внешнему идентификатору.
func (c *Cart) LineByID(lineID string) (CartLine, bool) {
	if c == nil {
		return CartLine{}, false
	}
	for _, line := range c.Lines {
		if line.ExternalID == lineID {
			return line, true
		}
	}
	return CartLine{}, false
}

// LineIDs — идентификаторы всех строк в исходном порядке (новый срез на каждый вызов).
func (c *Cart) LineIDs() []string {
	if c == nil {
		return nil
	}
	ids := make([]string, 0, len(c.Lines))
	for _, line := range c.Lines {
		ids = append(ids, line.ExternalID)
	}
	return ids
}

// Clone — глубокая копия корзины, чтобы кэш и вызывающий код не делили срезы и карты.
func (c *Cart) Clone() *Cart {
	if c == nil {
		return nil
	}
	cloned := *c
	if c.Lines != nil {
		cloned.Lines = make([]CartLine, len(c.Lines))
		for i, line := range c.Lines {
			cloned.Lines[i] = line.Clone()
		}
	}
	if c.Parties != nil {
		cloned.Parties = append([]Party(nil), c.Parties...)
	}
	if c.Payments != nil {
		cloned.Payments = append([]PaymentInfo(nil), c.Payments...)
	}
	if c.Shipping != nil {
		cloned.Shipping = make([]ShippingInfo, len(c.Shipping))
		for i, info := range c.Shipping {
			info.LineIDs = append([]string(nil), info.LineIDs...)
			cloned.Shipping[i] = info
		}
	}
	if c.PromoCodes != nil {
		cloned.PromoCodes = append([]string(nil), c.PromoCodes...)
	}
	if c.BasketErrors != nil {
		cloned.BasketErrors = append([]string(nil), c.BasketErrors...)
	}
	return &cloned
}

// Clone — копия строки с собственной картой свойств.
func (l CartLine) Clone() CartLine {
	if l.Properties != nil {
		props := make(map[string]string, len(l.Properties))
		for k, v := range l.Properties {
			props[k] = v
		}
		l.Properties = props
	}
	return l
}
