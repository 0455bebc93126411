package validate

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/Gunvolt24/wb_cart/internal/domain"
	"github.com/Gunvolt24/wb_cart/internal/ports"
	"github.com/go-playground/validator/v10"
)

// Проверка, что LineValidator удовлетворяет интерфейсу LineValidator.
var _ ports.LineValidator = (*LineValidator)(nil)

var (
	// ErrInvalidLine — базовая (sentinel error) ошибка валидации строки корзины.
	ErrInvalidLine = errors.New("cart line validation failed")
	// ErrInvalidInput — ошибка валидации прочих входных данных.
	ErrInvalidInput = errors.New("input validation failed")
	// ErrInvalidEvent — событие инвалидации не прошло проверку (не ретраится).
	ErrInvalidEvent = errors.New("cart event validation failed")
)

// LineValidator — валидатор на go-playground/validator, имена полей берутся из json-тегов.
type LineValidator struct {
	v *validator.Validate
}

// NewLineValidator — конструктор LineValidator.
func NewLineValidator() *LineValidator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})
	return &LineValidator{v: v}
}

// ValidateLine — проверяет строку корзины.
func (lv *LineValidator) ValidateLine(ctx context.Context, line *domain.CartLineInput) error {
	if line == nil {
		return fmt.Errorf("%w: строка не может быть nil", ErrInvalidLine)
	}
	if err := lv.v.StructCtx(ctx, line); err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidLine, describe(err))
	}
	return nil
}

// ValidateStruct — проверяет структуру запроса по тегам validate.
func (lv *LineValidator) ValidateStruct(ctx context.Context, s any) error {
	if err := lv.v.StructCtx(ctx, s); err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidInput, describe(err))
	}
	return nil
}

// ValidateVar — проверяет одиночное значение.
func (lv *LineValidator) ValidateVar(ctx context.Context, value any, tag string) error {
	if err := lv.v.VarCtx(ctx, value, tag); err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidInput, describe(err))
	}
	return nil
}

// ValidateEvent — проверяет событие инвалидации корзины.
func (lv *LineValidator) ValidateEvent(ctx context.Context, ev *domain.CartInvalidationEvent) error {
	if ev == nil {
		return fmt.Errorf("%w: событие не может быть nil", ErrInvalidEvent)
	}
	if err := lv.v.StructCtx(ctx, ev); err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidEvent, describe(err))
	}
	return nil
}

// describe — компактное описание ошибок валидатора: "product_id:required; quantity:min".
func describe(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err.Error()
	}
	parts := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		field := fe.Field()
		if field == "" {
			field = "value"
		}
		parts = append(parts, field+":"+fe.Tag())
	}
	return strings.Join(parts, "; ")
}
