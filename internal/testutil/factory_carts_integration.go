//go:build integration

package testutil

import (
	"crypto/rand"
	"encoding/hex"

	"github.com/Gunvolt24/wb_cart/internal/domain"
)

func randHex(n int) string {
	b := make([]byte, n)
	_, _ = rand.Read(b)
	return hex.EncodeToString(b)
}

func UniqSuffix() string { return randHex(6) }

// Мини-генератор корзины с одной строкой и посчитанными итогами
func MakeCart(opts ...func(*domain.Cart)) domain.Cart {
	c := domain.Cart{
		ExternalID:   "cart-" + UniqSuffix(),
		ShopName:     "Storefront",
		Name:         "Default",
		CustomerID:   "cust-" + UniqSuffix(),
		CurrencyCode: "USD",
		Lines: []domain.CartLine{
			{
				ExternalID:  "line-" + UniqSuffix(),
				ProductID:   "P-1001",
				CatalogName: "Storefront",
				Quantity:    2,
				UnitPrice:   24900,
				LineTotal:   49800,
			},
		},
		Totals: domain.Totals{Subtotal: 49800, Tax: 3984, Total: 53784},
	}

	for _, fn := range opts {
		fn(&c)
	}
	return c
}

func WithCustomer(cust string) func(*domain.Cart) {
	return func(c *domain.Cart) { c.CustomerID = cust }
}

// WithLines — n строк с разными товарами и свойствами.
func WithLines(n int) func(*domain.Cart) {
	return func(c *domain.Cart) {
		c.Lines = make([]domain.CartLine, 0, n)
		var subtotal int64
		for i := 0; i < n; i++ {
			price := int64(100 * (i + 1))
			c.Lines = append(c.Lines, domain.CartLine{
				ExternalID:  "line-" + UniqSuffix(),
				ProductID:   "P-" + UniqSuffix(),
				CatalogName: "Storefront",
				Quantity:    1,
				UnitPrice:   price,
				LineTotal:   price,
				Properties:  map[string]string{"position": hex.EncodeToString([]byte{byte(i)})},
			})
			subtotal += price
		}
		c.Totals = domain.Totals{Subtotal: subtotal, Total: subtotal}
	}
}

// WithCheckoutState — адрес, доставка, оплата и промокод.
func WithCheckoutState() func(*domain.Cart) {
	return func(c *domain.Cart) {
		c.Parties = []domain.Party{{ExternalID: "addr-" + UniqSuffix(), City: "Austin", Country: "US"}}
		c.Shipping = []domain.ShippingInfo{{ShippingMethodID: "ground", PartyID: c.Parties[0].ExternalID, LineIDs: c.LineIDs()}}
		c.Payments = []domain.PaymentInfo{{PaymentMethodID: "visa", PartyID: c.Parties[0].ExternalID, Amount: c.Totals.Total}}
		c.PromoCodes = []string{"WELCOME10"}
	}
}
