package products

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/techmart-labs/techmart-backend/internal/catalog"
	"github.com/techmart-labs/techmart-backend/pkg/enums"
	pkgerrors "github.com/techmart-labs/techmart-backend/pkg/errors"
)

func newTestService(t *testing.T) Service {
	t.Helper()
	svc, err := NewService(ServiceParams{Catalog: catalog.Default()})
	require.NoError(t, err)
	return svc
}

func TestNewServiceRequiresCatalog(t *testing.T) {
	_, err := NewService(ServiceParams{})
	require.Error(t, err)
}

func TestListProductsNoFiltersReturnsWholeCatalog(t *testing.T) {
	svc := newTestService(t)

	result, err := svc.ListProducts(context.Background(), ListProductsInput{})
	require.NoError(t, err)
	require.Equal(t, 16, result.Total)
	require.Len(t, result.Products, 16)
}

func TestListProductsQueryMatchesNameBrandCategory(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	byName, err := svc.ListProducts(ctx, ListProductsInput{Query: "iphone"})
	require.NoError(t, err)
	require.Equal(t, 1, byName.Total)
	require.Equal(t, "iPhone 15 Pro Max", byName.Products[0].Name)

	byBrand, err := svc.ListProducts(ctx, ListProductsInput{Query: "sony"})
	require.NoError(t, err)
	require.NotZero(t, byBrand.Total)
	for _, p := range byBrand.Products {
		require.Equal(t, "Sony", p.Brand)
	}

	byCategory, err := svc.ListProducts(ctx, ListProductsInput{Query: "laptops"})
	require.NoError(t, err)
	require.NotZero(t, byCategory.Total)
	for _, p := range byCategory.Products {
		require.Equal(t, "Laptops", p.Category)
	}
}

func TestListProductsCategoryAndBrandFilters(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	result, err := svc.ListProducts(ctx, ListProductsInput{Category: "Audio", Brand: "Bose"})
	require.NoError(t, err)
	require.Equal(t, 1, result.Total)
	require.Equal(t, "Bose QuietComfort Ultra", result.Products[0].Name)
}

func TestListProductsPriceRange(t *testing.T) {
	svc := newTestService(t)

	result, err := svc.ListProducts(context.Background(), ListProductsInput{MinPrice: 100, MaxPrice: 300})
	require.NoError(t, err)
	require.NotZero(t, result.Total)
	for _, p := range result.Products {
		require.GreaterOrEqual(t, p.Price, 100.0)
		require.LessOrEqual(t, p.Price, 300.0)
	}
}

func TestListProductsSortOrders(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	low, err := svc.ListProducts(ctx, ListProductsInput{Sort: enums.ProductSortPriceLow})
	require.NoError(t, err)
	for i := 1; i < len(low.Products); i++ {
		require.LessOrEqual(t, low.Products[i-1].Price, low.Products[i].Price)
	}

	high, err := svc.ListProducts(ctx, ListProductsInput{Sort: enums.ProductSortPriceHigh})
	require.NoError(t, err)
	for i := 1; i < len(high.Products); i++ {
		require.GreaterOrEqual(t, high.Products[i-1].Price, high.Products[i].Price)
	}

	rating, err := svc.ListProducts(ctx, ListProductsInput{Sort: enums.ProductSortRating})
	require.NoError(t, err)
	for i := 1; i < len(rating.Products); i++ {
		require.GreaterOrEqual(t, rating.Products[i-1].Rating, rating.Products[i].Rating)
	}

	name, err := svc.ListProducts(ctx, ListProductsInput{})
	require.NoError(t, err)
	for i := 1; i < len(name.Products); i++ {
		require.LessOrEqual(t, name.Products[i-1].Name, name.Products[i].Name)
	}
}

func TestListProductsRejectsUnknownSort(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.ListProducts(context.Background(), ListProductsInput{Sort: enums.ProductSort("newest")})
	require.Error(t, err)

	var coded *pkgerrors.Error
	require.ErrorAs(t, err, &coded)
	require.Equal(t, pkgerrors.CodeValidation, coded.Code())
}

func TestGetProduct(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	product, err := svc.GetProduct(ctx, 1)
	require.NoError(t, err)
	require.Equal(t, "iPhone 15 Pro Max", product.Name)

	_, err = svc.GetProduct(ctx, 4242)
	var coded *pkgerrors.Error
	require.ErrorAs(t, err, &coded)
	require.Equal(t, pkgerrors.CodeNotFound, coded.Code())
}

func TestFeaturedProducts(t *testing.T) {
	svc := newTestService(t)

	featured, err := svc.FeaturedProducts(context.Background())
	require.NoError(t, err)
	require.NotEmpty(t, featured)
	for _, p := range featured {
		require.True(t, p.IsFeatured)
	}
}

func TestCategoriesAndBrands(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	categories, err := svc.Categories(ctx)
	require.NoError(t, err)
	require.Equal(t, []string{"Smartphones", "Laptops", "Audio", "Tablets", "Accessories"}, categories)

	brands, err := svc.Brands(ctx)
	require.NoError(t, err)
	require.Contains(t, brands, "Apple")
	require.Contains(t, brands, "Logitech")
}
