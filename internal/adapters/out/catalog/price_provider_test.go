package catalog_test

import (
	"testing"
	"time"

	"shop/internal/adapters/out/catalog"
	"shop/internal/adapters/out/memory"
	"shop/internal/core/domain/model/kernel"
	"shop/internal/core/domain/model/product"
	"shop/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPriceProvider_UnitPrice(t *testing.T) {
	ctx := t.Context()
	store := memory.NewStore()
	repo := memory.NewProductRepository(store)

	price, err := kernel.NewMoneyFromFloat(1499.99)
	require.NoError(t, err)
	laptop, err := product.NewProduct("Laptop Pro", "", price, "electronics", true, time.Now().UTC())
	require.NoError(t, err)
	require.NoError(t, repo.Add(ctx, laptop))

	provider := catalog.NewPriceProvider(repo)

	resolved, err := provider.UnitPrice(ctx, laptop.ID())
	require.NoError(t, err)
	assert.Equal(t, "1499.99", resolved.String())
}

func TestPriceProvider_UnitPrice_UnknownProduct(t *testing.T) {
	provider := catalog.NewPriceProvider(memory.NewProductRepository(memory.NewStore()))

	_, err := provider.UnitPrice(t.Context(), kernel.MustNewID(42))
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrObjectNotFound)
}
