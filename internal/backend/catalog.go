package backend

import (
	"math"
	"strings"

	"github.com/Gunvolt24/wb_cart/internal/domain"
)

// Product — позиция каталога; цена в минимальных единицах базовой валюты.
type Product struct {
	ID          string
	CatalogName string
	Name        string
	Price       int64
	// GiftCard — цена берётся из свойства строки GiftCardAmount, строки не склеиваются.
	GiftCard bool
}

// Promotion — промокод с процентной скидкой на подытог.
type Promotion struct {
	Code       string
	PercentOff int64
}

// ShippingEntry — метод доставки и предпочтения, для которых он доступен.
type ShippingEntry struct {
	Method      domain.ShippingMethod
	Preferences []domain.ShippingPreference
}

// Catalog — справочные данные бэкенда: товары, промо, курсы, налоги, доставка и оплата.
type Catalog struct {
	BaseCurrency string
	// Rates — курс к базовой валюте: цена_в_валюте = цена_базовая * rate.
	Rates        map[string]float64
	TaxRateBP    int64 // базисные пункты (1% = 100)

	Products   map[string]Product
	Promotions map[string]Promotion

	Countries map[string]string
	States    map[string]map[string]string

	Shipping       []ShippingEntry
	PaymentOptions []domain.PaymentOption
	PaymentMethods map[string][]domain.PaymentMethod // по типу оплаты
}

// DefaultCatalog — демонстрационный каталог витрины.
func DefaultCatalog(giftCardProductID string) *Catalog {
	c := &Catalog{
		BaseCurrency: "USD",
		Rates:        map[string]float64{"USD": 1, "EUR": 0.92, "GBP": 0.79, "CAD": 1.36},
		TaxRateBP:    800,
		Products: map[string]Product{
			"P-1001": {ID: "P-1001", CatalogName: "Storefront", Name: "Espresso Machine", Price: 24900},
			"P-1002": {ID: "P-1002", CatalogName: "Storefront", Name: "Coffee Grinder", Price: 8900},
			"P-1003": {ID: "P-1003", CatalogName: "Storefront", Name: "Milk Frother", Price: 2999},
			"P-2001": {ID: "P-2001", CatalogName: "Storefront", Name: "Coffee Beans 1kg", Price: 1850},
		},
		Promotions: map[string]Promotion{
			"WELCOME10": {Code: "WELCOME10", PercentOff: 10},
			"COFFEE25":  {Code: "COFFEE25", PercentOff: 25},
		},
		Countries: map[string]string{"US": "United States", "CA": "Canada", "DE": "Germany", "GB": "United Kingdom"},
		States: map[string]map[string]string{
			"US": {"CA": "California", "NY": "New York", "TX": "Texas", "WA": "Washington"},
			"CA": {"ON": "Ontario", "QC": "Quebec", "BC": "British Columbia"},
		},
		Shipping: []ShippingEntry{
			{
				Method:      domain.ShippingMethod{ExternalID: "ground", Name: "Ground", Description: "3-5 business days", Cost: 799, Delivery: domain.DeliveryStandard},
				Preferences: []domain.ShippingPreference{domain.ShipToAddress},
			},
			{
				Method:      domain.ShippingMethod{ExternalID: "express", Name: "Next Day Air", Description: "1 business day", Cost: 2499, Delivery: domain.DeliveryStandard},
				Preferences: []domain.ShippingPreference{domain.ShipToAddress},
			},
			{
				Method:      domain.ShippingMethod{ExternalID: "store-pickup", Name: "Ship to Store", Description: "Pick up at a store", Delivery: domain.DeliveryShipToStore},
				Preferences: []domain.ShippingPreference{domain.PickupFromStore},
			},
			{
				Method:      domain.ShippingMethod{ExternalID: "email", Name: "Email", Description: "Electronic delivery", Delivery: domain.DeliveryEmail},
				Preferences: []domain.ShippingPreference{domain.ElectronicDelivery},
			},
		},
		PaymentOptions: []domain.PaymentOption{
			{Type: domain.PaymentTypeCard, Name: "Credit card"},
			{Type: domain.PaymentTypeGiftCard, Name: "Gift card"},
			{Type: domain.PaymentTypeLoyaltyCard, Name: "Loyalty card"},
		},
		PaymentMethods: map[string][]domain.PaymentMethod{
			domain.PaymentTypeCard: {
				{ExternalID: "visa", Name: "Visa"},
				{ExternalID: "mastercard", Name: "MasterCard"},
				{ExternalID: "amex", Name: "American Express"},
			},
			domain.PaymentTypeGiftCard:    {{ExternalID: "giftcard", Name: "Gift card"}},
			domain.PaymentTypeLoyaltyCard: {{ExternalID: "loyalty", Name: "Loyalty points"}},
		},
	}
	if giftCardProductID != "" {
		c.Products[giftCardProductID] = Product{ID: giftCardProductID, CatalogName: "Storefront", Name: "Gift Card", GiftCard: true}
	}
	return c
}

// product — поиск товара; пустой catalogName проверку каталога не делает.
func (c *Catalog) product(productID, catalogName string) (Product, bool) {
	p, ok := c.Products[productID]
	if !ok {
		return Product{}, false
	}
	if catalogName != "" && !strings.EqualFold(p.CatalogName, catalogName) {
		return Product{}, false
	}
	return p, true
}

func (c *Catalog) promotion(code string) (Promotion, bool) {
	p, ok := c.Promotions[normalizeCode(code)]
	return p, ok
}

func (c *Catalog) hasCurrency(code string) bool {
	_, ok := c.Rates[code]
	return ok
}

// convert — пересчёт суммы из базовой валюты в currency (неизвестная валюта — без пересчёта).
func (c *Catalog) convert(amount int64, currency string) int64 {
	rate, ok := c.Rates[currency]
	if !ok || currency == c.BaseCurrency {
		return amount
	}
	return int64(math.Round(float64(amount) * rate))
}

func (c *Catalog) shippingMethod(id string) (domain.ShippingMethod, bool) {
	for _, entry := range c.Shipping {
		if entry.Method.ExternalID == id {
			return entry.Method, true
		}
	}
	return domain.ShippingMethod{}, false
}

func (c *Catalog) paymentMethodKnown(id string) bool {
	for _, methods := range c.PaymentMethods {
		for _, m := range methods {
			if m.ExternalID == id {
				return true
			}
		}
	}
	return false
}

func normalizeCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}
