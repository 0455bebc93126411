package usecase

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/Gunvolt24/wb_cart/internal/domain"
	"github.com/Gunvolt24/wb_cart/internal/ports"
	"github.com/Gunvolt24/wb_cart/pkg/validate"
	"github.com/google/uuid"
)

var _ ports.CartAPI = (*CartService)(nil)

// CartService — корзина посетителя поверх коммерческого бэкенда (без знаний о транспорте).
//
// Протокол кэша для всех изменяющих операций: снимок инвалидируется до удалённого вызова
// и кладётся обратно только после подтверждённого успеха. Блокировок по покупателю нет:
// две параллельные мутации могут оставить в кэше снимок проигравшей, TTL это ограничивает.
type CartService struct {
	store     ports.CartStore
	cache     ports.CartCache
	parties   ports.PartyService
	validator ports.LineValidator
	log       ports.Logger
}

// NewCartService — DI-конструктор.
func NewCartService(
	store ports.CartStore,
	cache ports.CartCache,
	parties ports.PartyService,
	validator ports.LineValidator,
	log ports.Logger,
) *CartService {
	return &CartService{
		store:     store,
		cache:     cache,
		parties:   parties,
		validator: validator,
		log:       log,
	}
}

// GetCurrentCart — корзина посетителя: сначала кэш, при промахе — бэкенд с записью в кэш.
func (s *CartService) GetCurrentCart(ctx context.Context, sf domain.Storefront, v domain.Visitor, refresh bool) domain.Response[*domain.Cart] {
	if refresh {
		s.invalidate(ctx, v.ID)
	}
	cart, result := s.currentCart(ctx, sf, v)
	return domain.NewResponse(result, cart)
}

// FindCart — чужая (например, анонимная) корзина по id покупателя: кэш или бэкенд, без создания.
// Кэш не пополняется: корзина читается не от имени её владельца.
func (s *CartService) FindCart(ctx context.Context, sf domain.Storefront, customerID string) domain.Response[*domain.Cart] {
	if cart, ok := s.cache.Get(ctx, customerID); ok {
		return domain.NewResponse(domain.OK(), cart)
	}
	res, err := s.store.FindCart(ctx, sf.ShopName, sf.DefaultCartName, customerID)
	if err != nil {
		return domain.NewResponse(systemError(ctx, s.log, "find cart", err), (*domain.Cart)(nil))
	}
	if !res.Success || res.Cart == nil {
		result := res.ServiceResult
		result.Success = false
		if len(result.Messages) == 0 {
			result.Append(domain.Fail(domain.MsgCartNotFound, "cart not found"))
		}
		return domain.NewResponse(result, (*domain.Cart)(nil))
	}
	return domain.NewResponse(res.ServiceResult, res.Cart)
}

// AddLineItems — строки проверяются до вызова бэкенда.
// Подарочная карта с количеством K превращается в K строк по одной штуке:
// у каждого экземпляра свой номинал.
func (s *CartService) AddLineItems(ctx context.Context, sf domain.Storefront, v domain.Visitor, lines []domain.CartLineInput) domain.Response[*domain.Cart] {
	const op = "add_lines"
	if len(lines) == 0 {
		observe(op, outcomeInvalid)
		return domain.NewResponse(domain.Fail(domain.MsgInvalidLine, "no lines to add"), (*domain.Cart)(nil))
	}
	for i := range lines {
		if err := s.validator.ValidateLine(ctx, &lines[i]); err != nil {
			s.log.Warnf(ctx, "add lines: line %d rejected: %v", i, err)
			observe(op, outcomeInvalid)
			return domain.NewResponse(domain.Fail(domain.MsgInvalidLine, err.Error()), (*domain.Cart)(nil))
		}
	}

	cart, result := s.currentCart(ctx, sf, v)
	if !result.Success {
		observe(op, outcomeFailed)
		return domain.NewResponse(result, cart)
	}

	cartLines := expandLines(lines, sf.GiftCardProductID)
	return s.mutate(ctx, op, v, func() (domain.CartResult, error) {
		return s.store.AddCartLines(ctx, cart, cartLines, false)
	})
}

// RemoveLineItem — удаление строки по внешнему id; отсутствующая строка — успех без изменений.
func (s *CartService) RemoveLineItem(ctx context.Context, sf domain.Storefront, v domain.Visitor, lineID string) domain.Response[*domain.Cart] {
	const op = "remove_line"
	if strings.TrimSpace(lineID) == "" {
		observe(op, outcomeInvalid)
		return domain.NewResponse(domain.Fail(domain.MsgInvalidInput, "line id is required"), (*domain.Cart)(nil))
	}

	cart, result := s.currentCart(ctx, sf, v)
	if !result.Success {
		observe(op, outcomeFailed)
		return domain.NewResponse(result, cart)
	}
	line, ok := cart.LineByID(lineID)
	if !ok {
		s.log.Infof(ctx, "remove line: line %s already absent", lineID)
		return domain.NewResponse(domain.OK(), cart)
	}

	return s.mutate(ctx, op, v, func() (domain.CartResult, error) {
		return s.store.RemoveCartLines(ctx, cart, []domain.CartLine{line}, false)
	})
}

// ChangeLineQuantity — количество 0 равносильно удалению строки.
func (s *CartService) ChangeLineQuantity(ctx context.Context, sf domain.Storefront, v domain.Visitor, lineID string, quantity int) domain.Response[*domain.Cart] {
	const op = "change_quantity"
	if quantity < 0 {
		observe(op, outcomeInvalid)
		return domain.NewResponse(domain.Fail(domain.MsgInvalidQuantity, "quantity must not be negative"), (*domain.Cart)(nil))
	}
	if quantity == 0 {
		return s.RemoveLineItem(ctx, sf, v, lineID)
	}

	cart, result := s.currentCart(ctx, sf, v)
	if !result.Success {
		observe(op, outcomeFailed)
		return domain.NewResponse(result, cart)
	}
	line, ok := cart.LineByID(lineID)
	if !ok {
		observe(op, outcomeFailed)
		return domain.NewResponse(domain.Fail(domain.MsgLineNotFound, fmt.Sprintf("line %s not found", lineID)), cart)
	}
	line.Quantity = quantity

	return s.mutate(ctx, op, v, func() (domain.CartResult, error) {
		return s.store.UpdateCartLines(ctx, cart, []domain.CartLine{line}, false)
	})
}

func (s *CartService) AddPromoCode(ctx context.Context, sf domain.Storefront, v domain.Visitor, code string) domain.Response[*domain.Cart] {
	const op = "add_promo"
	code = strings.TrimSpace(code)
	if err := s.validator.ValidateVar(ctx, code, "required,alphanum,max=64"); err != nil {
		observe(op, outcomeInvalid)
		return domain.NewResponse(domain.Fail(domain.MsgInvalidPromoCode, err.Error()), (*domain.Cart)(nil))
	}

	cart, result := s.currentCart(ctx, sf, v)
	if !result.Success {
		observe(op, outcomeFailed)
		return domain.NewResponse(result, cart)
	}
	return s.mutate(ctx, op, v, func() (domain.CartResult, error) {
		return s.store.AddPromoCode(ctx, cart, code)
	})
}

func (s *CartService) RemovePromoCode(ctx context.Context, sf domain.Storefront, v domain.Visitor, code string) domain.Response[*domain.Cart] {
	const op = "remove_promo"
	code = strings.TrimSpace(code)
	if err := s.validator.ValidateVar(ctx, code, "required,alphanum,max=64"); err != nil {
		observe(op, outcomeInvalid)
		return domain.NewResponse(domain.Fail(domain.MsgInvalidPromoCode, err.Error()), (*domain.Cart)(nil))
	}

	cart, result := s.currentCart(ctx, sf, v)
	if !result.Success {
		observe(op, outcomeFailed)
		return domain.NewResponse(result, cart)
	}
	return s.mutate(ctx, op, v, func() (domain.CartResult, error) {
		return s.store.RemovePromoCode(ctx, cart, code)
	})
}

// SetShippingMethods — сначала адреса доставки (если переданы), затем привязки доставки.
// Для любой политики, кроме «по строкам», каждая привязка получает все текущие строки.
func (s *CartService) SetShippingMethods(ctx context.Context, sf domain.Storefront, v domain.Visitor, input domain.SetShippingInput) domain.Response[*domain.Cart] {
	const op = "set_shipping"
	if err := s.validator.ValidateStruct(ctx, &input); err != nil {
		observe(op, outcomeInvalid)
		return domain.NewResponse(domain.Fail(domain.MsgInvalidInput, err.Error()), (*domain.Cart)(nil))
	}

	cart, result := s.currentCart(ctx, sf, v)
	if !result.Success {
		observe(op, outcomeFailed)
		return domain.NewResponse(result, cart)
	}

	return s.mutate(ctx, op, v, func() (domain.CartResult, error) {
		if len(input.Addresses) > 0 {
			res, err := s.store.AddCartParties(ctx, cart, input.Addresses)
			if err != nil || !res.Success {
				return res, err
			}
			cart = res.Cart
		}
		return s.store.AddShippingInfo(ctx, cart, input.Preference, stampShipments(cart, input.Preference, input.Methods))
	})
}

// SetPaymentMethods — адрес плательщика (если передан) и способы оплаты.
// Оплаты без PartyID привязываются к адресу плательщика.
func (s *CartService) SetPaymentMethods(ctx context.Context, sf domain.Storefront, v domain.Visitor, input domain.SetPaymentInput) domain.Response[*domain.Cart] {
	const op = "set_payment"
	if err := s.validator.ValidateStruct(ctx, &input); err != nil {
		observe(op, outcomeInvalid)
		return domain.NewResponse(domain.Fail(domain.MsgInvalidInput, err.Error()), (*domain.Cart)(nil))
	}

	cart, result := s.currentCart(ctx, sf, v)
	if !result.Success {
		observe(op, outcomeFailed)
		return domain.NewResponse(result, cart)
	}

	payments := append([]domain.PaymentInfo(nil), input.Payments...)
	return s.mutate(ctx, op, v, func() (domain.CartResult, error) {
		if input.BillingAddress != nil {
			billing := *input.BillingAddress
			if billing.ExternalID == "" {
				billing.ExternalID = uuid.NewString()
			}
			res, err := s.store.AddCartParties(ctx, cart, []domain.Party{billing})
			if err != nil || !res.Success {
				return res, err
			}
			cart = res.Cart
			for i := range payments {
				if payments[i].PartyID == "" {
					payments[i].PartyID = billing.ExternalID
				}
			}
		}
		return s.store.AddPaymentInfo(ctx, cart, payments)
	})
}

// UpdateCartCurrency — всегда идёт в бэкенд: итоги пересчитываются даже для той же валюты.
func (s *CartService) UpdateCartCurrency(ctx context.Context, sf domain.Storefront, v domain.Visitor, currencyCode string) domain.Response[*domain.Cart] {
	const op = "update_currency"
	currencyCode = strings.ToUpper(strings.TrimSpace(currencyCode))
	if err := s.validator.ValidateVar(ctx, currencyCode, "required,iso4217"); err != nil {
		observe(op, outcomeInvalid)
		return domain.NewResponse(domain.Fail(domain.MsgInvalidCurrency, err.Error()), (*domain.Cart)(nil))
	}

	cart, result := s.currentCart(ctx, sf, v)
	if !result.Success {
		observe(op, outcomeFailed)
		return domain.NewResponse(result, cart)
	}
	return s.mutate(ctx, op, v, func() (domain.CartResult, error) {
		return s.store.UpdateCartCurrency(ctx, cart, currencyCode)
	})
}

// MergeCarts — перенос анонимной корзины в корзину вошедшего покупателя.
// Ничего не делает (успех), если идентичности совпадают, анонимная корзина пуста
// или это фактически та же корзина.
func (s *CartService) MergeCarts(ctx context.Context, sf domain.Storefront, v domain.Visitor, anonymousID string, anonymousCart *domain.Cart) domain.Response[*domain.Cart] {
	const op = "merge"
	cart, result := s.currentCart(ctx, sf, v)
	if !result.Success {
		observe(op, outcomeFailed)
		return domain.NewResponse(result, cart)
	}
	if !shouldMerge(v.ID, anonymousID, anonymousCart, cart) {
		s.log.Infof(ctx, "merge skipped: anonymous=%s", anonymousID)
		return domain.NewResponse(domain.OK(), cart)
	}

	resp := s.mutate(ctx, op, v, func() (domain.CartResult, error) {
		return s.store.MergeCart(ctx, anonymousCart, cart)
	})
	if resp.Result.Success {
		s.invalidate(ctx, anonymousID)
	}
	return resp
}

// InvalidateFromMessage — событие бэкенда об изменении корзины (raw JSON).
// Некорректное событие оборачивает validate.ErrInvalidEvent: повтор не поможет.
func (s *CartService) InvalidateFromMessage(ctx context.Context, raw []byte) error {
	var ev domain.CartInvalidationEvent
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&ev); err != nil {
		s.log.Warnf(ctx, "invalid event json err=%v", err)
		return fmt.Errorf("%w: invalid json: %v", validate.ErrInvalidEvent, err)
	}
	if err := dec.Decode(new(struct{})); err != io.EOF {
		s.log.Warnf(ctx, "invalid event json: trailing data")
		return fmt.Errorf("%w: invalid json: trailing data", validate.ErrInvalidEvent)
	}
	if err := s.validator.ValidateEvent(ctx, &ev); err != nil {
		s.log.Warnf(ctx, "event validation failed err=%v", err)
		return err
	}

	if err := s.cache.Invalidate(ctx, ev.CustomerID); err != nil {
		return fmt.Errorf("invalidate cart customer=%s: %w", ev.CustomerID, err)
	}
	s.log.Infof(ctx, "cart invalidated by event customer=%s reason=%s", ev.CustomerID, ev.Reason)
	return nil
}

// ------вспомогательные функции------

// currentCart — снимок из кэша или загрузка из бэкенда по (магазин, корзина по умолчанию, посетитель).
func (s *CartService) currentCart(ctx context.Context, sf domain.Storefront, v domain.Visitor) (*domain.Cart, domain.ServiceResult) {
	if cart, ok := s.cache.Get(ctx, v.ID); ok {
		return cart, domain.OK()
	}

	res, err := s.store.LoadCart(ctx, sf.ShopName, sf.DefaultCartName, v.ID)
	if err != nil {
		result := systemError(ctx, s.log, "load cart", err)
		result.Append(domain.Fail(domain.MsgCartNotFound, "cart could not be loaded"))
		return nil, result
	}
	if !res.Success || res.Cart == nil {
		logFailure(ctx, s.log, "load cart", res.ServiceResult)
		result := res.ServiceResult
		result.Success = false
		result.Append(domain.Fail(domain.MsgCartNotFound, "cart not found"))
		return nil, result
	}

	s.repopulate(ctx, res.Cart)
	return res.Cart, res.ServiceResult
}

// mutate — инвалидация, удалённый вызов, запись в кэш только при успехе без ошибок строк.
func (s *CartService) mutate(ctx context.Context, op string, v domain.Visitor, call func() (domain.CartResult, error)) domain.Response[*domain.Cart] {
	s.invalidate(ctx, v.ID)

	res, err := call()
	if err != nil {
		observe(op, outcomeError)
		return domain.NewResponse(systemError(ctx, s.log, op, err), (*domain.Cart)(nil))
	}
	if !res.Success {
		logFailure(ctx, s.log, op, res.ServiceResult)
		observe(op, outcomeFailed)
		return domain.NewResponse(res.ServiceResult, res.Cart)
	}

	if res.Cart != nil && !res.Cart.HasBasketErrors() {
		s.repopulate(ctx, res.Cart)
	} else if res.Cart.HasBasketErrors() {
		s.log.Warnf(ctx, "%s: basket errors, cache left empty: %v", op, res.Cart.BasketErrors)
	}
	observe(op, outcomeOK)
	return domain.NewResponse(res.ServiceResult, res.Cart)
}

func (s *CartService) invalidate(ctx context.Context, customerID string) {
	if err := s.cache.Invalidate(ctx, customerID); err != nil {
		s.log.Warnf(ctx, "cache.Invalidate failed customer=%s err=%v", customerID, err)
	}
}

func (s *CartService) repopulate(ctx context.Context, cart *domain.Cart) {
	if err := s.cache.Set(ctx, cart); err != nil {
		s.log.Warnf(ctx, "cache.Set failed customer=%s err=%v", cart.CustomerID, err)
	}
}

// expandLines — перевод запросов в строки корзины с разбиением подарочных карт.
func expandLines(lines []domain.CartLineInput, giftCardProductID string) []domain.CartLine {
	out := make([]domain.CartLine, 0, len(lines))
	for _, in := range lines {
		line := domain.CartLine{
			ProductID:   in.ProductID,
			VariantID:   in.VariantID,
			CatalogName: in.CatalogName,
			Quantity:    in.Quantity,
			Properties:  in.Properties,
		}
		if giftCardProductID == "" || in.ProductID != giftCardProductID || in.Quantity <= 1 {
			out = append(out, line.Clone())
			continue
		}
		for i := 0; i < in.Quantity; i++ {
			single := line.Clone()
			single.Quantity = 1
			out = append(out, single)
		}
	}
	return out
}

// stampShipments — копии привязок; при политике уровня заказа каждой достаётся свой срез всех строк.
func stampShipments(cart *domain.Cart, pref domain.ShippingPreference, methods []domain.ShippingInfo) []domain.ShippingInfo {
	out := make([]domain.ShippingInfo, len(methods))
	for i, info := range methods {
		if pref == domain.DeliverItemsIndividually {
			info.LineIDs = append([]string(nil), info.LineIDs...)
		} else {
			info.LineIDs = cart.LineIDs()
		}
		out[i] = info
	}
	return out
}

func shouldMerge(visitorID, anonymousID string, anonymousCart, current *domain.Cart) bool {
	if visitorID == anonymousID || anonymousCart == nil || len(anonymousCart.Lines) == 0 {
		return false
	}
	return anonymousCart.ShopName == current.ShopName || anonymousCart.ExternalID != current.ExternalID
}
