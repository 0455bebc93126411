//go:build integration

package postgres_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Gunvolt24/wb_cart/internal/domain"
	"github.com/Gunvolt24/wb_cart/internal/party"
	pgrepo "github.com/Gunvolt24/wb_cart/internal/repo/postgres"
	"github.com/Gunvolt24/wb_cart/internal/testutil"
)

type noopLogger struct{}

func (noopLogger) Infof(context.Context, string, ...any)  {}
func (noopLogger) Warnf(context.Context, string, ...any)  {}
func (noopLogger) Errorf(context.Context, string, ...any) {}

// 1) Профили: создание, сохранение свойств, удаление
func TestProfileStore_Profiles_TC(t *testing.T) {
	t.Parallel()
	pool, ctx := startPool(t)
	store := pgrepo.NewProfileStore(pool)

	profile, err := store.CreateProfile(ctx)
	require.NoError(t, err)
	require.NotEmpty(t, profile.ID)

	profile.Properties[party.PropCity] = "Austin"
	require.NoError(t, store.SaveProfile(ctx, profile))

	got, err := store.GetProfile(ctx, profile.ID)
	require.NoError(t, err)
	require.Equal(t, "Austin", got.Properties[party.PropCity])

	require.NoError(t, store.DeleteProfile(ctx, profile.ID))
	got, err = store.GetProfile(ctx, profile.ID)
	require.NoError(t, err)
	require.Nil(t, got)
}

// 2) NULL в address_list отличается от пустого списка
func TestProfileStore_AddressListNullVsEmpty_TC(t *testing.T) {
	t.Parallel()
	pool, ctx := startPool(t)
	store := pgrepo.NewProfileStore(pool)

	unset := &domain.CustomerProfile{ID: "cust-" + testutil.UniqSuffix()}
	require.NoError(t, store.SaveCustomer(ctx, unset))
	got, err := store.GetCustomer(ctx, unset.ID)
	require.NoError(t, err)
	require.Nil(t, got.AddressList)

	empty := &domain.CustomerProfile{ID: "cust-" + testutil.UniqSuffix(), AddressList: []string{}}
	require.NoError(t, store.SaveCustomer(ctx, empty))
	got, err = store.GetCustomer(ctx, empty.ID)
	require.NoError(t, err)
	require.NotNil(t, got.AddressList)
	require.Empty(t, got.AddressList)

	missing, err := store.GetCustomer(ctx, "nobody")
	require.NoError(t, err)
	require.Nil(t, missing)
}

// 3) Конвейер адресов поверх Postgres: предпочтительный адрес переключается и снимается
func TestPipeline_OverPostgres_TC(t *testing.T) {
	t.Parallel()
	pool, ctx := startPool(t)
	pipeline := party.NewPipeline(pgrepo.NewProfileStore(pool), noopLogger{})
	customerID := "cust-" + testutil.UniqSuffix()

	reg, err := pipeline.RegisterCustomer(ctx, customerID, "c@example.com")
	require.NoError(t, err)
	require.True(t, reg.Success)

	first := &domain.CommerceParty{Party: domain.Party{FirstName: "Ann", Country: "US", IsPrimary: true}}
	second := &domain.CommerceParty{Party: domain.Party{FirstName: "Bob", Country: "DE"}}
	added, err := pipeline.AddParties(ctx, customerID, []domain.PartyEntity{first, second})
	require.NoError(t, err)
	require.True(t, added.Success)

	second.IsPrimary = true
	upd, err := pipeline.UpdateParties(ctx, customerID, []domain.PartyEntity{second})
	require.NoError(t, err)
	require.True(t, upd.Success)

	customer, err := pgrepo.NewProfileStore(pool).GetCustomer(ctx, customerID)
	require.NoError(t, err)
	require.Equal(t, second.ExternalID, customer.PreferredAddress)

	rm, err := pipeline.RemoveParties(ctx, customerID, []domain.PartyEntity{second})
	require.NoError(t, err)
	require.True(t, rm.Success)

	customer, err = pgrepo.NewProfileStore(pool).GetCustomer(ctx, customerID)
	require.NoError(t, err)
	require.Empty(t, customer.PreferredAddress)
	require.Equal(t, []string{first.ExternalID}, customer.AddressList)
}
