package session

import (
	"github.com/shopspring/decimal"
	"github.com/techmart-labs/techmart-backend/internal/catalog"
)

// CartLine joins a cart entry with its catalog product.
type CartLine struct {
	CartItem
	Product catalog.Product `json:"product"`
}

// WishlistLine joins a wishlist entry with its catalog product.
type WishlistLine struct {
	WishlistItem
	Product catalog.Product `json:"product"`
}

// IsInWishlist reports wishlist membership for the product id.
func (s *Store) IsInWishlist(productID int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, item := range s.state.WishlistItems {
		if item.ProductID == productID {
			return true
		}
	}
	return false
}

// CartLines left-joins cart entries against the catalog. Entries whose
// product id no longer resolves are dropped, not reported as errors.
func (s *Store) CartLines() []CartLine {
	state := s.State()
	lines := make([]CartLine, 0, len(state.CartItems))
	for _, item := range state.CartItems {
		product, ok := s.catalog.FindByID(item.ProductID)
		if !ok {
			continue
		}
		lines = append(lines, CartLine{CartItem: item, Product: product})
	}
	return lines
}

// WishlistLines applies the same join/filter policy to wishlist entries.
func (s *Store) WishlistLines() []WishlistLine {
	state := s.State()
	lines := make([]WishlistLine, 0, len(state.WishlistItems))
	for _, item := range state.WishlistItems {
		product, ok := s.catalog.FindByID(item.ProductID)
		if !ok {
			continue
		}
		lines = append(lines, WishlistLine{WishlistItem: item, Product: product})
	}
	return lines
}

// CartTotal sums quantity times price over resolvable cart entries; entries
// with an unknown product id contribute zero.
func (s *Store) CartTotal() float64 {
	return s.CartTotalDecimal().InexactFloat64()
}

// CartTotalDecimal is CartTotal with decimal precision, used by checkout
// pricing.
func (s *Store) CartTotalDecimal() decimal.Decimal {
	state := s.State()
	total := decimal.Zero
	for _, item := range state.CartItems {
		product, ok := s.catalog.FindByID(item.ProductID)
		if !ok {
			continue
		}
		line := product.PriceDecimal().Mul(decimal.NewFromInt(int64(item.Quantity)))
		total = total.Add(line)
	}
	return total
}
