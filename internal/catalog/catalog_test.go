package catalog

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDefaultCatalogSeed(t *testing.T) {
	c := Default()

	require.Equal(t, 16, c.Len())

	p, ok := c.FindByID(1)
	require.True(t, ok)
	require.Equal(t, "iPhone 15 Pro Max", p.Name)
	require.Equal(t, 1199.0, p.Price)
	require.NotNil(t, p.OriginalPrice)
	require.Equal(t, 1299.0, *p.OriginalPrice)

	_, ok = c.FindByID(9999)
	require.False(t, ok)
}

func TestCategoriesAndBrandsAreDistinctFirstSeen(t *testing.T) {
	c := Default()

	require.Equal(t, []string{"Smartphones", "Laptops", "Audio", "Tablets", "Accessories"}, c.Categories())
	require.Equal(t, []string{
		"Apple", "Samsung", "Sony", "Google", "OnePlus",
		"Dell", "Microsoft", "Bose", "Sennheiser", "Logitech",
	}, c.Brands())
}

func TestProductsReturnsCopy(t *testing.T) {
	c := Default()

	list := c.Products()
	list[0].Name = "mutated"

	p, _ := c.FindByID(list[0].ID)
	require.NotEqual(t, "mutated", p.Name)
}

func TestPriceDecimal(t *testing.T) {
	p := Product{Price: 1199}
	require.Equal(t, "1199", p.PriceDecimal().String())
}
