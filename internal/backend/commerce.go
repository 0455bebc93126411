package backend

import (
	"context"
	"fmt"

	"github.com/Gunvolt24/wb_cart/internal/domain"
	"github.com/Gunvolt24/wb_cart/internal/ports"
	"github.com/google/uuid"
)

var (
	_ ports.CartStore        = (*Commerce)(nil)
	_ ports.CheckoutProvider = (*Commerce)(nil)
)

// Commerce — коммерческий бэкенд: корзины поверх CartRepository и справочник Catalog.
// Отказы предметной области возвращаются в результате, error — только сбои хранилища.
type Commerce struct {
	repo    ports.CartRepository
	catalog *Catalog
	newID   func() string
}

func NewCommerce(repo ports.CartRepository, catalog *Catalog) *Commerce {
	return &Commerce{repo: repo, catalog: catalog, newID: uuid.NewString}
}

// LoadCart — корзина покупателя; при отсутствии создаётся пустая в базовой валюте.
func (c *Commerce) LoadCart(ctx context.Context, shopName, cartName, customerID string) (domain.CartResult, error) {
	if customerID == "" {
		return cartFail(domain.MsgCartNotFound, "customer id is empty"), nil
	}
	cart, err := c.repo.FindCart(ctx, shopName, cartName, customerID)
	if err != nil {
		return domain.CartResult{}, fmt.Errorf("find cart: %w", err)
	}
	if cart == nil {
		cart = &domain.Cart{
			ExternalID:   c.newID(),
			ShopName:     shopName,
			Name:         cartName,
			CustomerID:   customerID,
			CurrencyCode: c.catalog.BaseCurrency,
			Lines:        []domain.CartLine{},
		}
		if err := c.repo.SaveCart(ctx, cart); err != nil {
			return domain.CartResult{}, fmt.Errorf("create cart: %w", err)
		}
	}
	return domain.CartResult{ServiceResult: domain.OK(), Cart: cart}, nil
}

// FindCart — существующая корзина покупателя без создания новой.
func (c *Commerce) FindCart(ctx context.Context, shopName, cartName, customerID string) (domain.CartResult, error) {
	if customerID == "" {
		return cartFail(domain.MsgCartNotFound, "customer id is empty"), nil
	}
	cart, err := c.repo.FindCart(ctx, shopName, cartName, customerID)
	if err != nil {
		return domain.CartResult{}, fmt.Errorf("find cart: %w", err)
	}
	if cart == nil {
		return cartFail(domain.MsgCartNotFound, fmt.Sprintf("cart of %s not found", customerID)), nil
	}
	return domain.CartResult{ServiceResult: domain.OK(), Cart: cart}, nil
}

// AddCartLines — неизвестные товары не прерывают операцию, а попадают в BasketErrors.
func (c *Commerce) AddCartLines(ctx context.Context, cart *domain.Cart, lines []domain.CartLine, refresh bool) (domain.CartResult, error) {
	stored, fail, err := c.load(ctx, cart)
	if err != nil || stored == nil {
		return fail, err
	}

	var basketErrors []string
	for _, line := range lines {
		if line.Quantity < 1 {
			basketErrors = append(basketErrors, fmt.Sprintf("product %s: quantity must be at least 1", line.ProductID))
			continue
		}
		if _, err := c.catalog.priceLine(line, stored.CurrencyCode); err != nil {
			basketErrors = append(basketErrors, err.Error())
			continue
		}
		c.addLine(stored, line)
	}
	return c.commit(ctx, stored, refresh, basketErrors)
}

// RemoveCartLines — неизвестные строки пропускаются.
func (c *Commerce) RemoveCartLines(ctx context.Context, cart *domain.Cart, lines []domain.CartLine, refresh bool) (domain.CartResult, error) {
	stored, fail, err := c.load(ctx, cart)
	if err != nil || stored == nil {
		return fail, err
	}
	drop := make(map[string]struct{}, len(lines))
	for _, line := range lines {
		drop[line.ExternalID] = struct{}{}
	}
	removeLines(stored, drop)
	return c.commit(ctx, stored, refresh, nil)
}

// UpdateCartLines — количество по ExternalID; количество 0 удаляет строку.
func (c *Commerce) UpdateCartLines(ctx context.Context, cart *domain.Cart, lines []domain.CartLine, refresh bool) (domain.CartResult, error) {
	stored, fail, err := c.load(ctx, cart)
	if err != nil || stored == nil {
		return fail, err
	}

	drop := make(map[string]struct{})
	for _, update := range lines {
		idx := lineIndex(stored, update.ExternalID)
		if idx < 0 {
			return cartFail(domain.MsgLineNotFound, fmt.Sprintf("line %s not found", update.ExternalID)), nil
		}
		if update.Quantity < 0 {
			return cartFail(domain.MsgInvalidQuantity, fmt.Sprintf("line %s: negative quantity", update.ExternalID)), nil
		}
		if update.Quantity == 0 {
			drop[update.ExternalID] = struct{}{}
			continue
		}
		stored.Lines[idx].Quantity = update.Quantity
		for k, v := range update.Properties {
			if stored.Lines[idx].Properties == nil {
				stored.Lines[idx].Properties = make(map[string]string)
			}
			stored.Lines[idx].Properties[k] = v
		}
	}
	removeLines(stored, drop)
	return c.commit(ctx, stored, refresh, nil)
}

func (c *Commerce) AddPromoCode(ctx context.Context, cart *domain.Cart, code string) (domain.CartResult, error) {
	stored, fail, err := c.load(ctx, cart)
	if err != nil || stored == nil {
		return fail, err
	}
	promo, ok := c.catalog.promotion(code)
	if !ok {
		return cartFail(domain.MsgInvalidPromoCode, fmt.Sprintf("promo code %q is not valid", code)), nil
	}
	if !containsCode(stored.PromoCodes, promo.Code) {
		stored.PromoCodes = append(stored.PromoCodes, promo.Code)
	}
	return c.commit(ctx, stored, false, nil)
}

func (c *Commerce) RemovePromoCode(ctx context.Context, cart *domain.Cart, code string) (domain.CartResult, error) {
	stored, fail, err := c.load(ctx, cart)
	if err != nil || stored == nil {
		return fail, err
	}
	normalized := normalizeCode(code)
	if !containsCode(stored.PromoCodes, normalized) {
		return cartFail(domain.MsgInvalidPromoCode, fmt.Sprintf("promo code %q is not applied", code)), nil
	}
	kept := stored.PromoCodes[:0]
	for _, existing := range stored.PromoCodes {
		if existing != normalized {
			kept = append(kept, existing)
		}
	}
	stored.PromoCodes = kept
	return c.commit(ctx, stored, false, nil)
}

// AddShippingInfo — заменяет привязки доставки корзины.
func (c *Commerce) AddShippingInfo(ctx context.Context, cart *domain.Cart, preference domain.ShippingPreference, shipments []domain.ShippingInfo) (domain.CartResult, error) {
	stored, fail, err := c.load(ctx, cart)
	if err != nil || stored == nil {
		return fail, err
	}

	infos := make([]domain.ShippingInfo, 0, len(shipments))
	for _, info := range shipments {
		method, ok := c.catalog.shippingMethod(info.ShippingMethodID)
		if !ok {
			return cartFail(domain.MsgInvalidInput, fmt.Sprintf("shipping method %s is not available", info.ShippingMethodID)), nil
		}
		if method.Delivery == domain.DeliveryEmail && info.ElectronicEmail == "" {
			return cartFail(domain.MsgInvalidInput, "electronic delivery requires an email address"), nil
		}
		if preference == domain.PickupFromStore && method.Delivery != domain.DeliveryShipToStore {
			return cartFail(domain.MsgInvalidInput, fmt.Sprintf("shipping method %s does not support store pickup", method.ExternalID)), nil
		}
		for _, lineID := range info.LineIDs {
			if lineIndex(stored, lineID) < 0 {
				return cartFail(domain.MsgLineNotFound, fmt.Sprintf("line %s not found", lineID)), nil
			}
		}
		info.LineIDs = append([]string(nil), info.LineIDs...)
		infos = append(infos, info)
	}
	stored.Shipping = infos
	return c.commit(ctx, stored, false, nil)
}

// AddCartParties — адреса без ExternalID получают новый id, существующие заменяются.
func (c *Commerce) AddCartParties(ctx context.Context, cart *domain.Cart, parties []domain.Party) (domain.CartResult, error) {
	stored, fail, err := c.load(ctx, cart)
	if err != nil || stored == nil {
		return fail, err
	}
	for _, party := range parties {
		if party.ExternalID == "" {
			party.ExternalID = c.newID()
		}
		replaced := false
		for i := range stored.Parties {
			if stored.Parties[i].ExternalID == party.ExternalID {
				stored.Parties[i] = party
				replaced = true
				break
			}
		}
		if !replaced {
			stored.Parties = append(stored.Parties, party)
		}
	}
	return c.commit(ctx, stored, false, nil)
}

// AddPaymentInfo — заменяет способы оплаты; нулевая сумма означает «остаток к оплате».
func (c *Commerce) AddPaymentInfo(ctx context.Context, cart *domain.Cart, payments []domain.PaymentInfo) (domain.CartResult, error) {
	stored, fail, err := c.load(ctx, cart)
	if err != nil || stored == nil {
		return fail, err
	}
	for _, payment := range payments {
		if !c.catalog.paymentMethodKnown(payment.PaymentMethodID) {
			return cartFail(domain.MsgInvalidInput, fmt.Sprintf("payment method %s is not available", payment.PaymentMethodID)), nil
		}
		if payment.PartyID != "" && !hasParty(stored, payment.PartyID) {
			return cartFail(domain.MsgPartyNotFound, fmt.Sprintf("billing party %s is not attached to the cart", payment.PartyID)), nil
		}
	}
	stored.Payments = append([]domain.PaymentInfo(nil), payments...)

	c.catalog.recalculate(stored, false)
	var assigned int64
	for _, p := range stored.Payments {
		assigned += p.Amount
	}
	for i := range stored.Payments {
		if stored.Payments[i].Amount == 0 {
			stored.Payments[i].Amount = max(stored.Totals.Total-assigned, 0)
			break
		}
	}
	return c.commit(ctx, stored, false, nil)
}

// MergeCart — переносит строки и промокоды source в target, source удаляется.
func (c *Commerce) MergeCart(ctx context.Context, source, target *domain.Cart) (domain.CartResult, error) {
	from, fail, err := c.load(ctx, source)
	if err != nil || from == nil {
		return fail, err
	}
	to, fail, err := c.load(ctx, target)
	if err != nil || to == nil {
		return fail, err
	}

	var basketErrors []string
	for _, line := range from.Lines {
		if _, err := c.catalog.priceLine(line, to.CurrencyCode); err != nil {
			basketErrors = append(basketErrors, err.Error())
			continue
		}
		c.addLine(to, line)
	}
	for _, code := range from.PromoCodes {
		if !containsCode(to.PromoCodes, code) {
			to.PromoCodes = append(to.PromoCodes, code)
		}
	}

	result, err := c.commit(ctx, to, false, basketErrors)
	if err != nil || !result.Success {
		return result, err
	}
	if err := c.repo.DeleteCart(ctx, from.ShopName, from.Name, from.CustomerID); err != nil {
		return domain.CartResult{}, fmt.Errorf("delete merged cart: %w", err)
	}
	return result, nil
}

// UpdateCartCurrency — смена валюты с переоценкой всех строк.
func (c *Commerce) UpdateCartCurrency(ctx context.Context, cart *domain.Cart, currencyCode string) (domain.CartResult, error) {
	stored, fail, err := c.load(ctx, cart)
	if err != nil || stored == nil {
		return fail, err
	}
	if !c.catalog.hasCurrency(currencyCode) {
		return cartFail(domain.MsgInvalidCurrency, fmt.Sprintf("currency %s is not supported", currencyCode)), nil
	}
	stored.CurrencyCode = currencyCode
	return c.commit(ctx, stored, true, nil)
}

// ------вспомогательные функции------

// load — актуальное состояние корзины из хранилища.
// (nil, fail, nil) — корзина не найдена, fail уже заполнен.
func (c *Commerce) load(ctx context.Context, cart *domain.Cart) (*domain.Cart, domain.CartResult, error) {
	if cart == nil {
		return nil, cartFail(domain.MsgCartNotFound, "cart is required"), nil
	}
	stored, err := c.repo.FindCart(ctx, cart.ShopName, cart.Name, cart.CustomerID)
	if err != nil {
		return nil, domain.CartResult{}, fmt.Errorf("find cart: %w", err)
	}
	if stored == nil {
		return nil, cartFail(domain.MsgCartNotFound, fmt.Sprintf("cart %s not found", cart.Name)), nil
	}
	return stored, domain.CartResult{}, nil
}

// commit — пересчёт, сохранение и ответ; basketErrors возвращаются только в ответе.
func (c *Commerce) commit(ctx context.Context, cart *domain.Cart, refresh bool, basketErrors []string) (domain.CartResult, error) {
	basketErrors = append(basketErrors, c.catalog.recalculate(cart, refresh)...)
	cart.BasketErrors = nil
	if err := c.repo.SaveCart(ctx, cart); err != nil {
		return domain.CartResult{}, fmt.Errorf("save cart: %w", err)
	}
	out := cart.Clone()
	out.BasketErrors = basketErrors
	return domain.CartResult{ServiceResult: domain.OK(), Cart: out}, nil
}

// addLine — обычные товары склеиваются по (товар, вариант, каталог), подарочные карты — нет.
func (c *Commerce) addLine(cart *domain.Cart, line domain.CartLine) {
	product, _ := c.catalog.product(line.ProductID, line.CatalogName)
	if !product.GiftCard {
		for i := range cart.Lines {
			existing := &cart.Lines[i]
			if existing.ProductID == line.ProductID && existing.VariantID == line.VariantID && existing.CatalogName == line.CatalogName {
				existing.Quantity += line.Quantity
				return
			}
		}
	}
	line.ExternalID = c.newID()
	line.UnitPrice = 0
	line.LineTotal = 0
	if line.Properties != nil {
		props := make(map[string]string, len(line.Properties))
		for k, v := range line.Properties {
			props[k] = v
		}
		line.Properties = props
	}
	cart.Lines = append(cart.Lines, line)
}

// removeLines — удаляет строки и их упоминания в привязках доставки.
func removeLines(cart *domain.Cart, drop map[string]struct{}) {
	if len(drop) == 0 {
		return
	}
	kept := make([]domain.CartLine, 0, len(cart.Lines))
	for _, line := range cart.Lines {
		if _, ok := drop[line.ExternalID]; !ok {
			kept = append(kept, line)
		}
	}
	cart.Lines = kept

	for i := range cart.Shipping {
		ids := cart.Shipping[i].LineIDs[:0]
		for _, id := range cart.Shipping[i].LineIDs {
			if _, ok := drop[id]; !ok {
				ids = append(ids, id)
			}
		}
		cart.Shipping[i].LineIDs = ids
	}
}

func lineIndex(cart *domain.Cart, lineID string) int {
	for i, line := range cart.Lines {
		if line.ExternalID == lineID {
			return i
		}
	}
	return -1
}

func hasParty(cart *domain.Cart, partyID string) bool {
	for _, p := range cart.Parties {
		if p.ExternalID == partyID {
			return true
		}
	}
	return false
}

func containsCode(codes []string, code string) bool {
	for _, existing := range codes {
		if existing == code {
			return true
		}
	}
	return false
}

func cartFail(key, text string) domain.CartResult {
	return domain.CartResult{ServiceResult: domain.Fail(key, text)}
}
