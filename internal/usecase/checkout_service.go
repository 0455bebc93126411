package usecase

import (
	"context"

	"github.com/Gunvolt24/wb_cart/internal/domain"
	"github.com/Gunvolt24/wb_cart/internal/ports"
	"github.com/Gunvolt24/wb_cart/pkg/metrics"
)

var _ ports.CheckoutAPI = (*CheckoutService)(nil)

// CheckoutService — сборка данных страницы оформления заказа.
type CheckoutService struct {
	carts    ports.CartAPI
	provider ports.CheckoutProvider
	parties  ports.PartyService
	log      ports.Logger
	steps    []checkoutStep
}

// checkoutState — накапливаемый результат шагов.
type checkoutState struct {
	sf     domain.Storefront
	v      domain.Visitor
	data   *domain.CheckoutData
	result domain.ServiceResult
}

// checkoutStep — шаг конвейера; false — остановить конвейер.
type checkoutStep struct {
	name string
	run  func(ctx context.Context, st *checkoutState) (bool, error)
}

// NewCheckoutService — DI-конструктор. Порядок шагов фиксирован.
func NewCheckoutService(carts ports.CartAPI, provider ports.CheckoutProvider, parties ports.PartyService, log ports.Logger) *CheckoutService {
	s := &CheckoutService{
		carts:    carts,
		provider: provider,
		parties:  parties,
		log:      log,
	}
	s.steps = []checkoutStep{
		{name: "shipping_options", run: s.shippingOptions},
		{name: "shipping_methods", run: s.shippingMethods},
		{name: "countries", run: s.countries},
		{name: "payment_options", run: s.paymentOptions},
		{name: "payment_methods", run: s.paymentMethods},
		{name: "user_info", run: s.userInfo},
	}
	return s
}

// GetCheckoutData — шаги выполняются строго по очереди, первый неуспешный останавливает сборку.
// Сообщения каждого выполненного шага попадают в результат, уже собранные данные возвращаются.
func (s *CheckoutService) GetCheckoutData(ctx context.Context, sf domain.Storefront, v domain.Visitor) domain.Response[*domain.CheckoutData] {
	cartResp := s.carts.GetCurrentCart(ctx, sf, v, false)
	if !cartResp.Result.Success || cartResp.Payload == nil {
		return domain.NewResponse(cartResp.Result, (*domain.CheckoutData)(nil))
	}

	currency := cartResp.Payload.CurrencyCode
	if currency == "" {
		currency = sf.DefaultCurrency
	}
	st := &checkoutState{
		sf: sf,
		v:  v,
		data: &domain.CheckoutData{
			Cart:         cartResp.Payload,
			CurrencyCode: currency,
		},
		result: domain.OK(),
	}

	for _, step := range s.steps {
		ok, err := step.run(ctx, st)
		if err != nil {
			res := systemError(ctx, s.log, "checkout "+step.name, err)
			st.result.Append(res)
			ok = false
		}
		if !ok {
			st.result.Success = false
			metrics.CheckoutHalts.WithLabelValues(step.name).Inc()
			s.log.Warnf(ctx, "checkout halted at step=%s messages=%d", step.name, len(st.result.Messages))
			break
		}
	}
	return domain.NewResponse(st.result, st.data)
}

// GetAvailableStates — регионы страны (для формы адреса).
func (s *CheckoutService) GetAvailableStates(ctx context.Context, countryCode string) domain.Response[map[string]string] {
	res, err := s.provider.GetAvailableStates(ctx, countryCode)
	if err != nil {
		return domain.NewResponse(systemError(ctx, s.log, "get states", err), map[string]string(nil))
	}
	if !res.Success {
		logFailure(ctx, s.log, "get states", res.ServiceResult)
	}
	return domain.NewResponse(res.ServiceResult, res.States)
}

// ------шаги------

func (s *CheckoutService) shippingOptions(ctx context.Context, st *checkoutState) (bool, error) {
	res, err := s.provider.GetShippingOptions(ctx, st.data.Cart)
	if err != nil {
		return false, err
	}
	st.result.Append(res.ServiceResult)
	st.data.ShippingOptions = res.Options
	st.data.LineShippingOptions = res.LineOptions
	return res.Success, nil
}

// shippingMethods — методы уровня заказа; методы электронной доставки и самовывоза
// раскладываются по своим слотам, пустой слот получает метод-заглушку.
func (s *CheckoutService) shippingMethods(ctx context.Context, st *checkoutState) (bool, error) {
	res, err := s.provider.GetShippingMethods(ctx, domain.ShippingMethodsRequest{
		Cart:    st.data.Cart,
		LineIDs: st.data.Cart.LineIDs(),
	})
	if err != nil {
		return false, err
	}
	st.result.Append(res.ServiceResult)

	for i := range res.Methods {
		method := res.Methods[i]
		switch method.Delivery {
		case domain.DeliveryEmail:
			if st.data.EmailDeliveryMethod == nil {
				st.data.EmailDeliveryMethod = &method
			}
		case domain.DeliveryShipToStore:
			if st.data.ShipToStoreDeliveryMethod == nil {
				st.data.ShipToStoreDeliveryMethod = &method
			}
		}
	}
	if st.data.EmailDeliveryMethod == nil {
		st.data.EmailDeliveryMethod = &domain.ShippingMethod{}
	}
	if st.data.ShipToStoreDeliveryMethod == nil {
		st.data.ShipToStoreDeliveryMethod = &domain.ShippingMethod{}
	}
	return res.Success, nil
}

func (s *CheckoutService) countries(ctx context.Context, st *checkoutState) (bool, error) {
	res, err := s.provider.GetAvailableCountries(ctx)
	if err != nil {
		return false, err
	}
	st.result.Append(res.ServiceResult)
	st.data.Countries = res.Countries
	return res.Success, nil
}

func (s *CheckoutService) paymentOptions(ctx context.Context, st *checkoutState) (bool, error) {
	res, err := s.provider.GetPaymentOptions(ctx, st.data.Cart)
	if err != nil {
		return false, err
	}
	st.result.Append(res.ServiceResult)
	st.data.PaymentOptions = res.Options
	return res.Success, nil
}

// paymentMethods — методы для оплаты картой.
func (s *CheckoutService) paymentMethods(ctx context.Context, st *checkoutState) (bool, error) {
	res, err := s.provider.GetPaymentMethods(ctx, st.data.Cart, domain.PaymentOption{Type: domain.PaymentTypeCard})
	if err != nil {
		return false, err
	}
	st.result.Append(res.ServiceResult)
	st.data.PaymentMethods = res.Methods
	return res.Success, nil
}

// userInfo — адресная книга только для аутентифицированных; покупатель без записи — пустая книга.
func (s *CheckoutService) userInfo(ctx context.Context, st *checkoutState) (bool, error) {
	st.data.IsUserAuthenticated = st.v.IsAuthenticated
	if !st.v.IsAuthenticated {
		return true, nil
	}
	st.data.UserEmailAddress = st.v.Email

	res, err := s.parties.GetParties(ctx, st.v.ID)
	if err != nil {
		return false, err
	}
	if !res.Success && onlyCustomerNotFound(res.ServiceResult) {
		st.data.UserAddresses = []domain.CommerceParty{}
		return true, nil
	}
	st.result.Append(res.ServiceResult)
	st.data.UserAddresses = res.Parties
	return res.Success, nil
}

func onlyCustomerNotFound(result domain.ServiceResult) bool {
	if len(result.Messages) == 0 {
		return false
	}
	for _, msg := range result.Messages {
		if msg.Key != domain.MsgCustomerNotFound {
			return false
		}
	}
	return true
}
