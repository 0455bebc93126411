package domain

// ShippingPreference — политика доставки на уровне заказа.
type ShippingPreference string

const (
	ShipToAddress            ShippingPreference = "ShipToAddress"
	PickupFromStore          ShippingPreference = "PickupFromStore"
	ElectronicDelivery       ShippingPreference = "ElectronicDelivery"
	DeliverItemsIndividually ShippingPreference = "DeliverItemsIndividually"
)

// DeliveryKind — закрытый тег способа доставки вместо проверки свойств расширения.
type DeliveryKind string

const (
	DeliveryStandard    DeliveryKind = "standard"
	DeliveryEmail       DeliveryKind = "email"
	DeliveryShipToStore DeliveryKind = "ship_to_store"
)

// ShippingOption — вариант доставки, доступный для корзины.
type ShippingOption struct {
	Preference  ShippingPreference `json:"preference"`
	Name        string             `json:"name"`
	Description string             `json:"description,omitempty"`
}

// LineShippingOptions — варианты доставки для конкретной строки.
type LineShippingOptions struct {
	LineID  string           `json:"line_id"`
	Options []ShippingOption `json:"options"`
}

// ShippingMethod — метод доставки.
type ShippingMethod struct {
	ExternalID  string       `json:"external_id"`
	Name        string       `json:"name"`
	Description string       `json:"description,omitempty"`
	Cost        int64        `json:"cost"`
	Delivery    DeliveryKind `json:"delivery"`
}

// Типы оплаты.
const (
	PaymentTypeCard        = "PayCard"
	PaymentTypeGiftCard    = "PayGiftCard"
	PaymentTypeLoyaltyCard = "PayLoyaltyCard"
)

// PaymentOption — тип оплаты.
type PaymentOption struct {
	Type string `json:"type"`
	Name string `json:"name"`
}

// PaymentMethod — конкретный метод оплаты.
type PaymentMethod struct {
	ExternalID  string `json:"external_id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

// ShippingOptionsResult — ответ бэкенда с вариантами доставки.
type ShippingOptionsResult struct {
	ServiceResult
	Options     []ShippingOption
	LineOptions []LineShippingOptions
}

// ShippingMethodsRequest — параметры запроса методов доставки.
type ShippingMethodsRequest struct {
	Cart       *Cart
	Preference ShippingPreference
	Party      *Party
	LineIDs    []string
}

// ShippingMethodsResult — ответ бэкенда с методами доставки.
type ShippingMethodsResult struct {
	ServiceResult
	Methods []ShippingMethod
}

// CountriesResult — справочник стран (код → название).
type CountriesResult struct {
	ServiceResult
	Countries map[string]string
}

// StatesResult — справочник регионов страны (код → название).
type StatesResult struct {
	ServiceResult
	States map[string]string
}

// PaymentOptionsResult — ответ бэкенда с типами оплаты.
type PaymentOptionsResult struct {
	ServiceResult
	Options []PaymentOption
}

// PaymentMethodsResult — ответ бэкенда с методами оплаты.
type PaymentMethodsResult struct {
	ServiceResult
	Methods []PaymentMethod
}

// PartiesResult — ответ конвейера профилей.
type PartiesResult struct {
	ServiceResult
	Parties []CommerceParty
}

// CheckoutData — агрегированные данные для страницы оформления заказа.
type CheckoutData struct {
	Cart                      *Cart                 `json:"cart,omitempty"`
	ShippingOptions           []ShippingOption      `json:"shipping_options,omitempty"`
	LineShippingOptions       []LineShippingOptions `json:"line_shipping_options,omitempty"`
	EmailDeliveryMethod       *ShippingMethod       `json:"email_delivery_method,omitempty"`
	ShipToStoreDeliveryMethod *ShippingMethod       `json:"ship_to_store_delivery_method,omitempty"`
	Countries                 map[string]string     `json:"countries,omitempty"`
	PaymentOptions            []PaymentOption       `json:"payment_options,omitempty"`
	PaymentMethods            []PaymentMethod       `json:"payment_methods,omitempty"`
	IsUserAuthenticated       bool                  `json:"is_user_authenticated"`
	UserEmailAddress          string                `json:"user_email_address,omitempty"`
	UserAddresses             []CommerceParty       `json:"user_addresses,omitempty"`
	CurrencyCode              string                `json:"currency_code,omitempty"`
}

// SetShippingInput — входные данные SetShippingMethods.
type SetShippingInput struct {
	Preference ShippingPreference `json:"order_shipping_preference" validate:"required"`
	Addresses  []Party            `json:"shipping_addresses,omitempty"`
	Methods    []ShippingInfo     `json:"shipping_methods"          validate:"required,min=1,dive"`
}

// SetPaymentInput — входные данные SetPaymentMethods.
type SetPaymentInput struct {
	BillingAddress *Party        `json:"billing_address,omitempty"`
	Payments       []PaymentInfo `json:"payments" validate:"required,min=1,dive"`
}
