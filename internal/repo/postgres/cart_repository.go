package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/Gunvolt24/wb_cart/internal/domain"
	"github.com/Gunvolt24/wb_cart/internal/ports"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Проверка, что CartRepository удовлетворяет интерфейсу CartRepository.
var _ ports.CartRepository = (*CartRepository)(nil)

// CartRepository — хранилище корзин на Postgres (pgxpool).
// Строки лежат в cart_lines, адреса/оплаты/доставка — jsonb-колонками корзины.
type CartRepository struct {
	pool *pgxpool.Pool
}

// NewCartRepository - конструктор CartRepository.
func NewCartRepository(pool *pgxpool.Pool) *CartRepository { return &CartRepository{pool: pool} }

// SaveCart — транзакционно сохраняет корзину (upsert шапки, полная замена строк).
// BasketErrors не сохраняются: это часть ответа, а не состояния.
func (r *CartRepository) SaveCart(ctx context.Context, cart *domain.Cart) error {
	if cart == nil || cart.ExternalID == "" {
		return errors.New("cart is empty or external_id is required")
	}
	if cart.CustomerID == "" {
		return errors.New("customer_id is required")
	}

	parties, err := marshalJSON(cart.Parties)
	if err != nil {
		return fmt.Errorf("marshal parties: %w", err)
	}
	payments, err := marshalJSON(cart.Payments)
	if err != nil {
		return fmt.Errorf("marshal payments: %w", err)
	}
	shipping, err := marshalJSON(cart.Shipping)
	if err != nil {
		return fmt.Errorf("marshal shipping: %w", err)
	}

	transaction, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		// При уже завершённой транзакции Rollback вернёт ErrTxClosed — игнорируем.
		if rbErr := transaction.Rollback(ctx); rbErr != nil && !errors.Is(rbErr, pgx.ErrTxClosed) {
			_ = rbErr
		}
	}()

	// 1) carts — upsert по external_id.
	if _, err = transaction.Exec(ctx, `
		INSERT INTO carts (
			external_id, shop_name, cart_name, customer_id, currency_code, promo_codes,
			parties, payments, shipping, subtotal, discount, shipping_cost, tax, total, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, now())
		ON CONFLICT (external_id) DO UPDATE SET
			currency_code = EXCLUDED.currency_code,
			promo_codes = EXCLUDED.promo_codes,
			parties = EXCLUDED.parties,
			payments = EXCLUDED.payments,
			shipping = EXCLUDED.shipping,
			subtotal = EXCLUDED.subtotal,
			discount = EXCLUDED.discount,
			shipping_cost = EXCLUDED.shipping_cost,
			tax = EXCLUDED.tax,
			total = EXCLUDED.total,
			updated_at = now()
	`,
		cart.ExternalID, cart.ShopName, cart.Name, cart.CustomerID, cart.CurrencyCode, cart.PromoCodes,
		parties, payments, shipping, cart.Totals.Subtotal, cart.Totals.Discount, cart.Totals.Shipping,
		cart.Totals.Tax, cart.Totals.Total,
	); err != nil {
		return fmt.Errorf("upsert cart: %w", err)
	}

	// 2) cart_lines — replace: удаляем и вставляем список заново.
	if _, err = transaction.Exec(ctx, `DELETE FROM cart_lines WHERE cart_id = $1`, cart.ExternalID); err != nil {
		return fmt.Errorf("delete lines: %w", err)
	}
	if len(cart.Lines) > 0 {
		if err = copyLines(ctx, transaction, cart.ExternalID, cart.Lines); err != nil {
			return err
		}
	}

	if err := transaction.Commit(ctx); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}

// FindCart — корзина по (магазин, имя, покупатель). Если не нашли, возвращает (nil, nil).
func (r *CartRepository) FindCart(ctx context.Context, shopName, cartName, customerID string) (*domain.Cart, error) {
	var (
		cart                        domain.Cart
		parties, payments, shipping []byte
	)
	err := r.pool.QueryRow(ctx, `
		SELECT external_id, shop_name, cart_name, customer_id, currency_code, promo_codes,
			parties, payments, shipping, subtotal, discount, shipping_cost, tax, total
		FROM carts WHERE shop_name = $1 AND cart_name = $2 AND customer_id = $3
	`, shopName, cartName, customerID).Scan(
		&cart.ExternalID, &cart.ShopName, &cart.Name, &cart.CustomerID, &cart.CurrencyCode, &cart.PromoCodes,
		&parties, &payments, &shipping, &cart.Totals.Subtotal, &cart.Totals.Discount, &cart.Totals.Shipping,
		&cart.Totals.Tax, &cart.Totals.Total,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("select cart: %w", err)
	}

	if err := unmarshalJSON(parties, &cart.Parties); err != nil {
		return nil, fmt.Errorf("decode parties: %w", err)
	}
	if err := unmarshalJSON(payments, &cart.Payments); err != nil {
		return nil, fmt.Errorf("decode payments: %w", err)
	}
	if err := unmarshalJSON(shipping, &cart.Shipping); err != nil {
		return nil, fmt.Errorf("decode shipping: %w", err)
	}

	// cart_lines (0..N) в порядке добавления
	rows, err := r.pool.Query(ctx, `
		SELECT external_id, product_id, variant_id, catalog_name, quantity, unit_price, line_total, properties
		FROM cart_lines WHERE cart_id = $1
		ORDER BY position
	`, cart.ExternalID)
	if err != nil {
		return nil, fmt.Errorf("select lines: %w", err)
	}
	defer rows.Close()

	cart.Lines = []domain.CartLine{}
	for rows.Next() {
		var (
			line  domain.CartLine
			props []byte
		)
		if err := rows.Scan(
			&line.ExternalID, &line.ProductID, &line.VariantID, &line.CatalogName, &line.Quantity,
			&line.UnitPrice, &line.LineTotal, &props,
		); err != nil {
			return nil, fmt.Errorf("scan line: %w", err)
		}
		if err := unmarshalJSON(props, &line.Properties); err != nil {
			return nil, fmt.Errorf("decode line %s properties: %w", line.ExternalID, err)
		}
		cart.Lines = append(cart.Lines, line)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("lines rows: %w", err)
	}

	return &cart, nil
}

// DeleteCart — удаление корзины (строки удаляются каскадом).
func (r *CartRepository) DeleteCart(ctx context.Context, shopName, cartName, customerID string) error {
	if _, err := r.pool.Exec(ctx, `
		DELETE FROM carts WHERE shop_name = $1 AND cart_name = $2 AND customer_id = $3
	`, shopName, cartName, customerID); err != nil {
		return fmt.Errorf("delete cart: %w", err)
	}
	return nil
}

// copyLines — вставка строк через COPY (CopyFromRows); position сохраняет порядок.
func copyLines(ctx context.Context, tx pgx.Tx, cartID string, lines []domain.CartLine) error {
	rows := make([][]any, 0, len(lines))
	for i, line := range lines {
		props, err := marshalJSON(line.Properties)
		if err != nil {
			return fmt.Errorf("marshal line %s properties: %w", line.ExternalID, err)
		}
		rows = append(rows, []any{cartID, i, line.ExternalID, line.ProductID, line.VariantID, line.CatalogName,
			line.Quantity, line.UnitPrice, line.LineTotal, props})
	}

	_, err := tx.CopyFrom(
		ctx,
		pgx.Identifier{"cart_lines"},
		[]string{
			"cart_id", "position", "external_id", "product_id", "variant_id", "catalog_name",
			"quantity", "unit_price", "line_total", "properties",
		},
		pgx.CopyFromRows(rows),
	)
	if err != nil {
		return fmt.Errorf("copy lines: %w", err)
	}
	return nil
}

// marshalJSON — nil остаётся SQL NULL.
func marshalJSON(v any) ([]byte, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	if string(raw) == "null" {
		return nil, nil
	}
	return raw, nil
}

func unmarshalJSON(raw []byte, dst any) error {
	if len(raw) == 0 {
		return nil
	}
	return json.Unmarshal(raw, dst)
}
