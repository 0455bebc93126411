package validate

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/Gunvolt24/wb_cart/internal/domain"
	"github.com/Gunvolt24/wb_cart/internal/ports"
)

// LineFromJSON — строгий разбор одной строки корзины из JSON с валидацией.
func LineFromJSON(ctx context.Context, validator ports.LineValidator, raw []byte) (*domain.CartLineInput, error) {
	var line domain.CartLineInput
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&line); err != nil {
		return nil, fmt.Errorf("invalid json: %w", err)
	}
	// гарантируем отсутствие данных после объекта
	if err := dec.Decode(new(struct{})); err != io.EOF {
		return nil, fmt.Errorf("invalid json: trailing data")
	}
	if err := validator.ValidateLine(ctx, &line); err != nil {
		return nil, err
	}
	return &line, nil
}

// LinesFromJSONArray — разбор JSON-массива строк; любая невалидная строка — ошибка всего файла.
func LinesFromJSONArray(ctx context.Context, validator ports.LineValidator, raw []byte) ([]domain.CartLineInput, error) {
	var items []json.RawMessage
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, fmt.Errorf("invalid json: %w", err)
	}
	lines := make([]domain.CartLineInput, 0, len(items))
	for i, item := range items {
		line, err := LineFromJSON(ctx, validator, item)
		if err != nil {
			return nil, fmt.Errorf("lines[%d]: %w", i, err)
		}
		lines = append(lines, *line)
	}
	return lines, nil
}
