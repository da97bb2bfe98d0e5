package session

import (
	"time"

	"github.com/techmart-labs/techmart-backend/pkg/enums"
)

// Address is a shipping or billing destination attached to a user or order.
type Address struct {
	ID        string `json:"id"`
	Type      string `json:"type"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Company   string `json:"company,omitempty"`
	Address1  string `json:"address1"`
	Address2  string `json:"address2,omitempty"`
	City      string `json:"city"`
	State     string `json:"state"`
	ZipCode   string `json:"zipCode"`
	Country   string `json:"country"`
	IsDefault bool   `json:"isDefault"`
}

// User is the signed-in shopper. Created on login/register, replaced
// wholesale on update, cleared on logout.
type User struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
	Phone     string    `json:"phone,omitempty"`
	Avatar    string    `json:"avatar,omitempty"`
	Addresses []Address `json:"addresses"`
	CreatedAt time.Time `json:"createdAt"`
}

// UserPatch carries the fields of a partial profile update. Nil fields are
// left untouched.
type UserPatch struct {
	Email     *string    `json:"email,omitempty"`
	FirstName *string    `json:"firstName,omitempty"`
	LastName  *string    `json:"lastName,omitempty"`
	Phone     *string    `json:"phone,omitempty"`
	Avatar    *string    `json:"avatar,omitempty"`
	Addresses *[]Address `json:"addresses,omitempty"`
}

// CartItem references a catalog product by id. At most one entry exists per
// productId; adding an existing product merges quantities instead.
type CartItem struct {
	ProductID int       `json:"productId"`
	Quantity  int       `json:"quantity"`
	AddedAt   time.Time `json:"addedAt"`
}

// WishlistItem marks a liked product. Membership is unique per productId.
type WishlistItem struct {
	ProductID int       `json:"productId"`
	AddedAt   time.Time `json:"addedAt"`
}

// OrderItem is a line-item snapshot captured at order time, so later catalog
// changes never rewrite order history.
type OrderItem struct {
	ID           string  `json:"id"`
	ProductID    int     `json:"productId"`
	ProductName  string  `json:"productName"`
	ProductImage string  `json:"productImage"`
	Price        float64 `json:"price"`
	Quantity     int     `json:"quantity"`
	Total        float64 `json:"total"`
}

// Order is the cart's successful terminal state. Immutable once created
// except for status/updatedAt.
type Order struct {
	ID              string            `json:"id"`
	UserID          string            `json:"userId"`
	Items           []OrderItem       `json:"items"`
	Subtotal        float64           `json:"subtotal"`
	Tax             float64           `json:"tax"`
	Shipping        float64           `json:"shipping"`
	Total           float64           `json:"total"`
	Status          enums.OrderStatus `json:"status"`
	ShippingAddress Address           `json:"shippingAddress"`
	BillingAddress  Address           `json:"billingAddress"`
	PaymentMethod   string            `json:"paymentMethod"`
	TrackingNumber  string            `json:"trackingNumber,omitempty"`
	CreatedAt       time.Time         `json:"createdAt"`
	UpdatedAt       time.Time         `json:"updatedAt"`
}

// OrderDraft is everything the caller supplies to CreateOrder; the store
// stamps id and timestamps itself.
type OrderDraft struct {
	UserID          string            `json:"userId"`
	Items           []OrderItem       `json:"items"`
	Subtotal        float64           `json:"subtotal"`
	Tax             float64           `json:"tax"`
	Shipping        float64           `json:"shipping"`
	Total           float64           `json:"total"`
	Status          enums.OrderStatus `json:"status"`
	ShippingAddress Address           `json:"shippingAddress"`
	BillingAddress  Address           `json:"billingAddress"`
	PaymentMethod   string            `json:"paymentMethod"`
	TrackingNumber  string            `json:"trackingNumber,omitempty"`
}

// State is the full application snapshot: the sole unit of persistence and
// the single source of truth for every derived view.
type State struct {
	User            *User          `json:"user"`
	IsAuthenticated bool           `json:"isAuthenticated"`
	CartItems       []CartItem     `json:"cartItems"`
	WishlistItems   []WishlistItem `json:"wishlistItems"`
	Orders          []Order        `json:"orders"`
}

// DefaultState returns the empty session with non-nil collections, matching
// the persisted layout.
func DefaultState() State {
	return State{
		CartItems:     []CartItem{},
		WishlistItems: []WishlistItem{},
		Orders:        []Order{},
	}
}

// Clone deep-copies the snapshot so callers can never mutate the store's
// authoritative value through a returned reference.
func (s State) Clone() State {
	out := State{
		IsAuthenticated: s.IsAuthenticated,
		CartItems:       make([]CartItem, len(s.CartItems)),
		WishlistItems:   make([]WishlistItem, len(s.WishlistItems)),
		Orders:          make([]Order, len(s.Orders)),
	}
	copy(out.CartItems, s.CartItems)
	copy(out.WishlistItems, s.WishlistItems)
	for i, order := range s.Orders {
		cloned := order
		cloned.Items = make([]OrderItem, len(order.Items))
		copy(cloned.Items, order.Items)
		out.Orders[i] = cloned
	}
	if s.User != nil {
		user := *s.User
		user.Addresses = make([]Address, len(s.User.Addresses))
		copy(user.Addresses, s.User.Addresses)
		out.User = &user
	}
	return out
}

// normalize replaces nil collections with empty ones so snapshots always
// serialize as arrays.
func (s State) normalize() State {
	if s.CartItems == nil {
		s.CartItems = []CartItem{}
	}
	if s.WishlistItems == nil {
		s.WishlistItems = []WishlistItem{}
	}
	if s.Orders == nil {
		s.Orders = []Order{}
	}
	if s.User != nil && s.User.Addresses == nil {
		s.User.Addresses = []Address{}
	}
	return s
}
