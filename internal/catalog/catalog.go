package catalog

import "github.com/shopspring/decimal"

// Product is one purchasable item. The catalog is supplied at build time and
// is immutable for the lifetime of the process; prices are plain dollar
// amounts as rendered by the storefront.
type Product struct {
	ID             int               `json:"id"`
	Name           string            `json:"name"`
	Price          float64           `json:"price"`
	OriginalPrice  *float64          `json:"originalPrice,omitempty"`
	Image          string            `json:"image"`
	Category       string            `json:"category"`
	Brand          string            `json:"brand"`
	Rating         float64           `json:"rating"`
	Reviews        int               `json:"reviews"`
	Description    string            `json:"description"`
	Features       []string          `json:"features"`
	Specifications map[string]string `json:"specifications"`
	InStock        bool              `json:"inStock"`
	IsNew          bool              `json:"isNew,omitempty"`
	IsFeatured     bool              `json:"isFeatured,omitempty"`
}

// PriceDecimal returns the price as a decimal for money arithmetic.
func (p Product) PriceDecimal() decimal.Decimal {
	return decimal.NewFromFloat(p.Price)
}

// Catalog is the static read-only product list plus its derived
// category/brand indexes.
type Catalog struct {
	products   []Product
	byID       map[int]Product
	categories []string
	brands     []string
}

// New builds a catalog from the given products. Categories and brands are
// collected distinct, in first-seen order.
func New(products []Product) *Catalog {
	c := &Catalog{
		products: make([]Product, len(products)),
		byID:     make(map[int]Product, len(products)),
	}
	copy(c.products, products)

	seenCategory := map[string]bool{}
	seenBrand := map[string]bool{}
	for _, p := range c.products {
		c.byID[p.ID] = p
		if !seenCategory[p.Category] {
			seenCategory[p.Category] = true
			c.categories = append(c.categories, p.Category)
		}
		if !seenBrand[p.Brand] {
			seenBrand[p.Brand] = true
			c.brands = append(c.brands, p.Brand)
		}
	}
	return c
}

// Default returns the catalog seeded with the storefront's product data.
func Default() *Catalog {
	return New(seedProducts)
}

// FindByID looks up a product by integer id.
func (c *Catalog) FindByID(id int) (Product, bool) {
	p, ok := c.byID[id]
	return p, ok
}

// Products returns a copy of the full product list.
func (c *Catalog) Products() []Product {
	out := make([]Product, len(c.products))
	copy(out, c.products)
	return out
}

// Categories returns the distinct category names.
func (c *Catalog) Categories() []string {
	out := make([]string, len(c.categories))
	copy(out, c.categories)
	return out
}

// Brands returns the distinct brand names.
func (c *Catalog) Brands() []string {
	out := make([]string, len(c.brands))
	copy(out, c.brands)
	return out
}

// Len reports the number of products in the catalog.
func (c *Catalog) Len() int {
	return len(c.products)
}

func ptr(f float64) *float64 {
	return &f
}
