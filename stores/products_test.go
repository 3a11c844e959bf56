package stores

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetByID(t *testing.T) {
	store := NewProductsStore()

	core, ok := store.GetByID(ProductCore)
	require.True(t, ok)
	assert.Equal(t, "Panther Core", core.Name)
	assert.Equal(t, 1999, core.Price)
	assert.True(t, core.Available)

	_, ok = store.GetByID("panther-unknown")
	assert.False(t, ok)
}

func TestAvailabilityFilters(t *testing.T) {
	store := NewProductsStore()

	all := store.All()
	available := store.Available()
	comingSoon := store.ComingSoon()

	assert.Len(t, all, 3)
	require.Len(t, available, 1)
	assert.Equal(t, ProductCore, available[0].ID)
	assert.Len(t, comingSoon, 2)
	assert.Equal(t, len(all), len(available)+len(comingSoon))

	for _, p := range comingSoon {
		assert.False(t, p.Available)
	}
}

func TestCatalogIsCopiedOut(t *testing.T) {
	store := NewProductsStore()

	all := store.All()
	all[0].Price = 1

	fresh, ok := store.GetByID(all[0].ID)
	require.True(t, ok)
	assert.NotEqual(t, 1, fresh.Price)
}
