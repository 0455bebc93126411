package memory

import (
	"container/list"
	"context"
	"sync"
	"time"

	"github.com/Gunvolt24/wb_cart/internal/domain"
	"github.com/Gunvolt24/wb_cart/internal/ports"
	"github.com/Gunvolt24/wb_cart/pkg/metrics"
)

var _ ports.CartCache = (*LRUCacheTTL)(nil)

type entry struct {
	customerID string
	cart       *domain.Cart
	expiresAt  time.Time
}

// LRUCacheTTL — кэш снимков корзин в памяти процесса: LRU по ёмкости плюс TTL.
// Ключ — идентичность покупателя. Наружу отдаются только копии.
type LRUCacheTTL struct {
	capacity int
	ttl      time.Duration

	ll    *list.List
	index map[string]*list.Element

	mu  sync.Mutex
	now func() time.Time
}

func NewLRUCacheTTL(capacity int, ttl time.Duration) *LRUCacheTTL {
	if capacity <= 0 {
		capacity = 1
	}
	return &LRUCacheTTL{
		capacity: capacity,
		ttl:      ttl,
		ll:       list.New(),
		index:    make(map[string]*list.Element),
		now:      time.Now,
	}
}

// Get — снимок корзины покупателя; промах — не ошибка.
func (c *LRUCacheTTL) Get(_ context.Context, customerID string) (*domain.Cart, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()

	elem, ok := c.index[customerID]
	if !ok {
		metrics.CacheOps.WithLabelValues("miss").Inc()
		return nil, false
	}
	ent := elem.Value.(*entry)
	if c.isExpired(ent, now) {
		metrics.CacheOps.WithLabelValues("expired").Inc()
		c.removeElement(elem)
		metrics.CacheSize.Set(float64(len(c.index)))
		return nil, false
	}
	c.ll.MoveToFront(elem)

	metrics.CacheOps.WithLabelValues("hit").Inc()
	return ent.cart.Clone(), true
}

// Set — сохраняет снимок под cart.CustomerID (TTL отсчитывается заново).
func (c *LRUCacheTTL) Set(_ context.Context, cart *domain.Cart) error {
	if cart == nil || cart.CustomerID == "" {
		return nil
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()
	metrics.CacheOps.WithLabelValues("set").Inc()

	if elem, ok := c.index[cart.CustomerID]; ok {
		ent := elem.Value.(*entry)
		ent.cart = cart.Clone()
		ent.expiresAt = c.expiryFrom(now)
		c.ll.MoveToFront(elem)
		return nil
	}

	c.pruneExpiredFromBack(now)

	elem := c.ll.PushFront(&entry{
		customerID: cart.CustomerID,
		cart:       cart.Clone(),
		expiresAt:  c.expiryFrom(now),
	})
	c.index[cart.CustomerID] = elem
	metrics.CacheSize.Set(float64(len(c.index)))

	if c.ll.Len() > c.capacity {
		c.evictLRU()
	}
	return nil
}

// Invalidate — удаляет снимок; отсутствие записи не ошибка.
func (c *LRUCacheTTL) Invalidate(_ context.Context, customerID string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if elem, ok := c.index[customerID]; ok {
		c.removeElement(elem)
		metrics.CacheOps.WithLabelValues("invalidated").Inc()
		metrics.CacheSize.Set(float64(len(c.index)))
	}
	return nil
}

// Len — число записей (включая ещё не вычищенные просроченные).
func (c *LRUCacheTTL) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.ll.Len()
}

// ------вспомогательные функции------

// evictLRU — удаляет наименее используемый элемент.
func (c *LRUCacheTTL) evictLRU() {
	if back := c.ll.Back(); back != nil {
		c.removeElement(back)
		metrics.CacheOps.WithLabelValues("evicted").Inc()
		metrics.CacheSize.Set(float64(len(c.index)))
	}
}

func (c *LRUCacheTTL) removeElement(elem *list.Element) {
	ent := elem.Value.(*entry)
	delete(c.index, ent.customerID)
	c.ll.Remove(elem)
}

func (c *LRUCacheTTL) isExpired(ent *entry, now time.Time) bool {
	if c.ttl <= 0 {
		return false
	}
	return now.After(ent.expiresAt)
}

func (c *LRUCacheTTL) expiryFrom(now time.Time) time.Time {
	if c.ttl <= 0 {
		return time.Time{}
	}
	return now.Add(c.ttl)
}

// pruneExpiredFromBack — удаляет просроченные записи с хвоста до первой актуальной.
func (c *LRUCacheTTL) pruneExpiredFromBack(now time.Time) {
	if c.ttl <= 0 {
		return
	}
	for {
		back := c.ll.Back()
		if back == nil {
			return
		}
		if !now.After(back.Value.(*entry).expiresAt) {
			return
		}
		c.removeElement(back)
		metrics.CacheOps.WithLabelValues("expired").Inc()
		metrics.CacheSize.Set(float64(len(c.index)))
	}
}
