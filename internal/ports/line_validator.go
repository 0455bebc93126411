package ports

import (
	"context"

	"github.com/Gunvolt24/wb_cart/internal/domain"
)

// LineValidator — проверка входных данных корзины до вызова бэкенда.
type LineValidator interface {
	// ValidateLine — обязательные поля строки (product_id, catalog_name, quantity >= 1).
	ValidateLine(ctx context.Context, line *domain.CartLineInput) error
	// ValidateStruct — теги validate на произвольной структуре запроса.
	ValidateStruct(ctx context.Context, v any) error
	// ValidateVar — одиночное значение по тегу (например "required,iso4217").
	ValidateVar(ctx context.Context, value any, tag string) error
	// ValidateEvent — событие инвалидации кэша из брокера.
	ValidateEvent(ctx context.Context, ev *domain.CartInvalidationEvent) error
}
