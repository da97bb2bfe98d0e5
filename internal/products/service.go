package products

import (
	"context"
	"sort"
	"strings"

	"github.com/techmart-labs/techmart-backend/internal/catalog"
	"github.com/techmart-labs/techmart-backend/pkg/enums"
	pkgerrors "github.com/techmart-labs/techmart-backend/pkg/errors"
)

// Service exposes read-only catalog browsing operations.
type Service interface {
	ListProducts(ctx context.Context, input ListProductsInput) (*ProductListResult, error)
	GetProduct(ctx context.Context, id int) (*catalog.Product, error)
	FeaturedProducts(ctx context.Context) ([]catalog.Product, error)
	Categories(ctx context.Context) ([]string, error)
	Brands(ctx context.Context) ([]string, error)
}

// ListProductsInput holds validated browse filters. Zero values mean "no
// filter"; MaxPrice of zero is treated as unbounded.
type ListProductsInput struct {
	Query    string
	Category string
	Brand    string
	MinPrice float64
	MaxPrice float64
	Sort     enums.ProductSort
}

// ProductListResult carries a filtered page of products with the total count
// after filtering.
type ProductListResult struct {
	Products []catalog.Product `json:"products"`
	Total    int               `json:"total"`
}

// ServiceParams groups dependencies for the products service.
type ServiceParams struct {
	Catalog *catalog.Catalog
}

type service struct {
	catalog *catalog.Catalog
}

// NewService builds the products service.
func NewService(params ServiceParams) (Service, error) {
	if params.Catalog == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "catalog is required")
	}
	return &service{catalog: params.Catalog}, nil
}

// ListProducts filters and sorts the catalog in a single linear pass. The
// text query matches name, brand and category case-insensitively.
func (s *service) ListProducts(_ context.Context, input ListProductsInput) (*ProductListResult, error) {
	if input.Sort != "" && !input.Sort.IsValid() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "unknown sort order").
			WithDetails(map[string]any{"sort": string(input.Sort)})
	}

	query := strings.ToLower(strings.TrimSpace(input.Query))
	filtered := make([]catalog.Product, 0, s.catalog.Len())
	for _, product := range s.catalog.Products() {
		if query != "" && !matchesQuery(product, query) {
			continue
		}
		if input.Category != "" && !strings.EqualFold(product.Category, input.Category) {
			continue
		}
		if input.Brand != "" && !strings.EqualFold(product.Brand, input.Brand) {
			continue
		}
		if product.Price < input.MinPrice {
			continue
		}
		if input.MaxPrice > 0 && product.Price > input.MaxPrice {
			continue
		}
		filtered = append(filtered, product)
	}

	sortProducts(filtered, input.Sort)
	return &ProductListResult{Products: filtered, Total: len(filtered)}, nil
}

// GetProduct returns one product by id.
func (s *service) GetProduct(_ context.Context, id int) (*catalog.Product, error) {
	product, ok := s.catalog.FindByID(id)
	if !ok {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, "product not found").
			WithDetails(map[string]any{"id": id})
	}
	return &product, nil
}

// FeaturedProducts returns the products flagged for the storefront landing
// page, in catalog order.
func (s *service) FeaturedProducts(_ context.Context) ([]catalog.Product, error) {
	featured := make([]catalog.Product, 0, 4)
	for _, product := range s.catalog.Products() {
		if product.IsFeatured {
			featured = append(featured, product)
		}
	}
	return featured, nil
}

// Categories returns the distinct category names in first-seen catalog order.
func (s *service) Categories(_ context.Context) ([]string, error) {
	return s.catalog.Categories(), nil
}

// Brands returns the distinct brand names in first-seen catalog order.
func (s *service) Brands(_ context.Context) ([]string, error) {
	return s.catalog.Brands(), nil
}

func matchesQuery(product catalog.Product, query string) bool {
	return strings.Contains(strings.ToLower(product.Name), query) ||
		strings.Contains(strings.ToLower(product.Brand), query) ||
		strings.Contains(strings.ToLower(product.Category), query)
}

func sortProducts(products []catalog.Product, order enums.ProductSort) {
	switch order {
	case enums.ProductSortPriceLow:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].Price < products[j].Price
		})
	case enums.ProductSortPriceHigh:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].Price > products[j].Price
		})
	case enums.ProductSortRating:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].Rating > products[j].Rating
		})
	default:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].Name < products[j].Name
		})
	}
}
