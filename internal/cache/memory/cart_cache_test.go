package memory

import (
	"context"
	"testing"
	"time"

	"github.com/Gunvolt24/wb_cart/internal/domain"
)

func newCart(customerID string) *domain.Cart {
	return &domain.Cart{
		ExternalID:   "cart-" + customerID,
		ShopName:     "shop",
		Name:         "default",
		CustomerID:   customerID,
		CurrencyCode: "USD",
		Lines: []domain.CartLine{{
			ExternalID: "l1", ProductID: "p1", CatalogName: "main", Quantity: 1,
			Properties: map[string]string{"color": "red"},
		}},
	}
}

// fakeClock — управляемое время для проверок TTL без sleep.
type fakeClock struct{ t time.Time }

func (f *fakeClock) now() time.Time          { return f.t }
func (f *fakeClock) advance(d time.Duration) { f.t = f.t.Add(d) }

func TestSetGet_HitMiss(t *testing.T) {
	c := NewLRUCacheTTL(2, 5*time.Minute)
	ctx := context.Background()

	// miss
	if _, ok := c.Get(ctx, "c-1"); ok {
		t.Fatalf("expected miss before Set")
	}

	// hit после Set
	_ = c.Set(ctx, newCart("c-1"))
	got, ok := c.Get(ctx, "c-1")
	if !ok || got.CustomerID != "c-1" {
		t.Fatalf("expected hit for c-1")
	}
}

func TestSet_IgnoresCartWithoutCustomer(t *testing.T) {
	c := NewLRUCacheTTL(2, 0)
	ctx := context.Background()

	if err := c.Set(ctx, nil); err != nil {
		t.Fatalf("Set(nil) err=%v", err)
	}
	if err := c.Set(ctx, &domain.Cart{Name: "anon"}); err != nil {
		t.Fatalf("Set(no customer) err=%v", err)
	}
	if c.Len() != 0 {
		t.Fatalf("expected empty cache, got %d", c.Len())
	}
}

func TestTTL_Expiry(t *testing.T) {
	clock := &fakeClock{t: time.Unix(1_700_000_000, 0)}
	c := NewLRUCacheTTL(2, time.Minute)
	c.now = clock.now
	ctx := context.Background()

	_ = c.Set(ctx, newCart("ttl"))
	if _, ok := c.Get(ctx, "ttl"); !ok {
		t.Fatalf("expected hit right after Set")
	}
	clock.advance(2 * time.Minute)
	if _, ok := c.Get(ctx, "ttl"); ok {
		t.Fatalf("expected miss after TTL expires")
	}
	if c.Len() != 0 {
		t.Fatalf("expired entry must be removed")
	}
}

func TestTTL_ReadDoesNotExtendLifetime(t *testing.T) {
	clock := &fakeClock{t: time.Unix(1_700_000_000, 0)}
	c := NewLRUCacheTTL(2, time.Minute)
	c.now = clock.now
	ctx := context.Background()

	_ = c.Set(ctx, newCart("x"))
	clock.advance(50 * time.Second)
	if _, ok := c.Get(ctx, "x"); !ok {
		t.Fatalf("expected hit before TTL")
	}
	clock.advance(20 * time.Second)
	if _, ok := c.Get(ctx, "x"); ok {
		t.Fatalf("snapshot must expire counting from Set, not from last read")
	}
}

func TestLRUEviction(t *testing.T) {
	c := NewLRUCacheTTL(2, 0) // 0 = без TTL
	ctx := context.Background()

	_ = c.Set(ctx, newCart("A"))
	_ = c.Set(ctx, newCart("B"))
	// A сделать «свежим»
	if _, ok := c.Get(ctx, "A"); !ok {
		t.Fatalf("expected hit for A")
	}
	// Добавляем C — вытеснит B (самый старый)
	_ = c.Set(ctx, newCart("C"))

	if _, ok := c.Get(ctx, "B"); ok {
		t.Fatalf("expected B to be evicted")
	}
	if _, ok := c.Get(ctx, "A"); !ok || c.ll.Len() != 2 {
		t.Fatalf("expected A & C to stay in cache")
	}
}

func TestInvalidate(t *testing.T) {
	c := NewLRUCacheTTL(4, 0)
	ctx := context.Background()

	_ = c.Set(ctx, newCart("A"))
	_ = c.Set(ctx, newCart("B"))

	if err := c.Invalidate(ctx, "A"); err != nil {
		t.Fatalf("Invalidate err=%v", err)
	}
	if _, ok := c.Get(ctx, "A"); ok {
		t.Fatalf("A must be gone after Invalidate")
	}
	if _, ok := c.Get(ctx, "B"); !ok {
		t.Fatalf("B must stay")
	}
	// повторная инвалидация и неизвестный ключ — не ошибка
	if err := c.Invalidate(ctx, "A"); err != nil {
		t.Fatalf("second Invalidate err=%v", err)
	}
	if err := c.Invalidate(ctx, "unknown"); err != nil {
		t.Fatalf("Invalidate(unknown) err=%v", err)
	}
}

func TestCloneImmutability(t *testing.T) {
	c := NewLRUCacheTTL(1, 0)
	ctx := context.Background()
	orig := newCart("Z")
	_ = c.Set(ctx, orig)

	// изменение исходника после Set не должно попадать в кэш
	orig.Lines[0].Quantity = 99

	// меняем то, что вернул Get — не должно влиять на кэш
	c1, _ := c.Get(ctx, "Z")
	c1.Lines[0].Properties["color"] = "changed"
	c1.Lines = append(c1.Lines, domain.CartLine{ExternalID: "l2"})

	c2, _ := c.Get(ctx, "Z")
	if c2.Lines[0].Properties["color"] == "changed" || len(c2.Lines) != 1 {
		t.Fatalf("cache should return clones, not pointers to internal value")
	}
	if c2.Lines[0].Quantity != 1 {
		t.Fatalf("cache must store a copy on Set, got quantity %d", c2.Lines[0].Quantity)
	}
}
