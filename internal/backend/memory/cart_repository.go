package memory

import (
	"context"
	"errors"
	"sync"

	"github.com/Gunvolt24/wb_cart/internal/domain"
	"github.com/Gunvolt24/wb_cart/internal/ports"
)

var _ ports.CartRepository = (*CartRepository)(nil)

type cartKey struct {
	shop, name, customer string
}

// CartRepository — корзины в памяти процесса (однонодовый режим и тесты).
type CartRepository struct {
	mu    sync.RWMutex
	carts map[cartKey]*domain.Cart
}

func NewCartRepository() *CartRepository {
	return &CartRepository{carts: make(map[cartKey]*domain.Cart)}
}

func (r *CartRepository) FindCart(_ context.Context, shopName, cartName, customerID string) (*domain.Cart, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.carts[cartKey{shopName, cartName, customerID}].Clone(), nil
}

func (r *CartRepository) SaveCart(_ context.Context, cart *domain.Cart) error {
	if cart == nil || cart.CustomerID == "" {
		return errors.New("cart is empty or customer_id is required")
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.carts[cartKey{cart.ShopName, cart.Name, cart.CustomerID}] = cart.Clone()
	return nil
}

func (r *CartRepository) DeleteCart(_ context.Context, shopName, cartName, customerID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.carts, cartKey{shopName, cartName, customerID})
	return nil
}
