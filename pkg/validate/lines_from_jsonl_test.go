package validate

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/Gunvolt24/wb_cart/internal/domain"
)

func lineJSON(product string, qty int) string {
	return `{"product_id":"` + product + `","catalog_name":"Storefront","quantity":` + itoa(qty) + `}`
}

func itoa(n int) string {
	raw, _ := json.Marshal(n)
	return string(raw)
}

func TestLinesFromJSONL_Mixed(t *testing.T) {
	ctx := context.Background()
	validator := NewLineValidator()

	input := strings.Join([]string{
		lineJSON("P-1", 1),
		lineJSON("P-2", 0), // quantity < 1
		"",                 // пустая строка — ок
		lineJSON("P-3", 4),
		`{"product_id":"P-4","catalog_name":"S","quantity":1,"unknown":true}`, // неизвестное поле
	}, "\n")

	lines, res, err := LinesFromJSONL(ctx, validator, strings.NewReader(input))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.ValidLinesCount != 2 || res.InvalidLinesCount != 2 {
		t.Fatalf("unexpected counters: %+v", res)
	}
	if _, ok := res.Errors[2]; !ok {
		t.Fatalf("line 2 must be reported, got %v", res.Errors)
	}
	if _, ok := res.Errors[5]; !ok {
		t.Fatalf("line 5 must be reported, got %v", res.Errors)
	}
	if len(lines) != 2 || lines[0].ProductID != "P-1" || lines[1].ProductID != "P-3" {
		t.Fatalf("unexpected lines: %+v", lines)
	}
}

func TestLineFromJSON_TrailingData(t *testing.T) {
	_, err := LineFromJSON(context.Background(), NewLineValidator(), []byte(lineJSON("P-1", 1)+" {}"))
	if err == nil || !strings.Contains(err.Error(), "trailing data") {
		t.Fatalf("want trailing data error, got %v", err)
	}
}

func TestWriteLinesJSONL_Canonical(t *testing.T) {
	var out bytes.Buffer
	lines := []domain.CartLineInput{
		{ProductID: "P-1", CatalogName: "S", Quantity: 1},
		{ProductID: "P-2", CatalogName: "S", Quantity: 2},
	}
	if err := WriteLinesJSONL(&out, lines); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got := strings.Split(strings.TrimSpace(out.String()), "\n")
	if len(got) != 2 {
		t.Fatalf("expected 2 output lines, got %d", len(got))
	}
	var l2 domain.CartLineInput
	if err := json.Unmarshal([]byte(got[1]), &l2); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if l2.ProductID != "P-2" || l2.Quantity != 2 {
		t.Fatalf("unexpected line: %+v", l2)
	}
}
