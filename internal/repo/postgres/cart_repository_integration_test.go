//go:build integration

package postgres_test

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"

	"github.com/Gunvolt24/wb_cart/internal/backend"
	"github.com/Gunvolt24/wb_cart/internal/domain"
	pgrepo "github.com/Gunvolt24/wb_cart/internal/repo/postgres"
	"github.com/Gunvolt24/wb_cart/internal/testutil"
)

// startPool — контейнер Postgres с применёнными миграциями.
func startPool(t *testing.T) (*pgxpool.Pool, context.Context) {
	t.Helper()

	// длинный контекст — только на подъём контейнера
	ctxStart, cancelStart := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancelStart()

	pg, stopPG, err := testutil.StartPostgresTC(ctxStart)
	require.NoError(t, err)
	t.Cleanup(func() { _ = stopPG(context.Background()) })

	require.NoError(t, testutil.ApplyMigrationsGoose(pg.DSN))

	// короткий контекст — на сами БД-операции
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	t.Cleanup(cancel)

	pool, err := pgxpool.New(ctx, pg.DSN)
	require.NoError(t, err)
	t.Cleanup(pool.Close)
	return pool, ctx
}

// 1) Сохранение и получение корзины
func TestCartRepo_SaveAndFind_TC(t *testing.T) {
	t.Parallel()
	pool, ctx := startPool(t)
	repo := pgrepo.NewCartRepository(pool)

	cart := testutil.MakeCart(testutil.WithCheckoutState())
	require.NoError(t, repo.SaveCart(ctx, &cart))

	got, err := repo.FindCart(ctx, cart.ShopName, cart.Name, cart.CustomerID)
	require.NoError(t, err)
	require.NotNil(t, got)
	require.Equal(t, cart.ExternalID, got.ExternalID)
	require.Equal(t, cart.Totals, got.Totals)
	require.Equal(t, cart.Lines, got.Lines)
	require.Equal(t, cart.Parties, got.Parties)
	require.Equal(t, cart.Shipping, got.Shipping)
	require.Equal(t, cart.Payments, got.Payments)
	require.Equal(t, cart.PromoCodes, got.PromoCodes)
}

// 2) Повторный Save — апдейт шапки и полная замена строк с сохранением порядка
func TestCartRepo_Save_UpsertAndLinesReplace_TC(t *testing.T) {
	t.Parallel()
	pool, ctx := startPool(t)
	repo := pgrepo.NewCartRepository(pool)

	cart := testutil.MakeCart(testutil.WithLines(3))
	require.NoError(t, repo.SaveCart(ctx, &cart))

	cart.CurrencyCode = "EUR"
	cart.Lines = []domain.CartLine{cart.Lines[2], cart.Lines[0]}
	cart.BasketErrors = []string{"not persisted"}
	require.NoError(t, repo.SaveCart(ctx, &cart))

	got, err := repo.FindCart(ctx, cart.ShopName, cart.Name, cart.CustomerID)
	require.NoError(t, err)
	require.NotNil(t, got)
	require.Equal(t, "EUR", got.CurrencyCode)
	require.Len(t, got.Lines, 2)
	require.Equal(t, cart.Lines[0].ExternalID, got.Lines[0].ExternalID)
	require.Equal(t, cart.Lines[1].ExternalID, got.Lines[1].ExternalID)
	require.Equal(t, cart.Lines[0].Properties, got.Lines[0].Properties)
	require.Empty(t, got.BasketErrors)
}

// 3) Отсутствующая корзина — (nil, nil); удаление каскадом убирает строки
func TestCartRepo_FindMissingAndDelete_TC(t *testing.T) {
	t.Parallel()
	pool, ctx := startPool(t)
	repo := pgrepo.NewCartRepository(pool)

	got, err := repo.FindCart(ctx, "Storefront", "Default", "nobody")
	require.NoError(t, err)
	require.Nil(t, got)

	cart := testutil.MakeCart(testutil.WithLines(2))
	require.NoError(t, repo.SaveCart(ctx, &cart))
	require.NoError(t, repo.DeleteCart(ctx, cart.ShopName, cart.Name, cart.CustomerID))
	require.NoError(t, repo.DeleteCart(ctx, cart.ShopName, cart.Name, cart.CustomerID))

	got, err = repo.FindCart(ctx, cart.ShopName, cart.Name, cart.CustomerID)
	require.NoError(t, err)
	require.Nil(t, got)

	var lines int
	require.NoError(t, pool.QueryRow(ctx, `SELECT count(*) FROM cart_lines WHERE cart_id = $1`, cart.ExternalID).Scan(&lines))
	require.Zero(t, lines)
}

// 4) Бэкенд поверх Postgres: добавление строк, промокод, смена валюты
func TestCommerce_OverPostgres_TC(t *testing.T) {
	t.Parallel()
	pool, ctx := startPool(t)
	commerce := backend.NewCommerce(pgrepo.NewCartRepository(pool), backend.DefaultCatalog(""))

	loaded, err := commerce.LoadCart(ctx, "Storefront", "Default", "cust-"+testutil.UniqSuffix())
	require.NoError(t, err)
	require.True(t, loaded.Success)

	res, err := commerce.AddCartLines(ctx, loaded.Cart, []domain.CartLine{
		{ProductID: "P-1001", CatalogName: "Storefront", Quantity: 2},
	}, false)
	require.NoError(t, err)
	require.True(t, res.Success)

	res, err = commerce.AddPromoCode(ctx, res.Cart, "WELCOME10")
	require.NoError(t, err)
	require.True(t, res.Success)
	require.Equal(t, domain.Totals{Subtotal: 49800, Discount: 4980, Tax: 3585, Total: 48405}, res.Cart.Totals)

	res, err = commerce.UpdateCartCurrency(ctx, res.Cart, "EUR")
	require.NoError(t, err)
	require.True(t, res.Success)
	require.Equal(t, "EUR", res.Cart.CurrencyCode)
}
