package session

import "time"

// action is a named, parameterized request to transition the state from one
// snapshot to the next. Each variant maps to exactly one atomic transition
// in reduce.
type action interface {
	name() string
}

type loginAction struct {
	user User
}

type logoutAction struct{}

type updateUserAction struct {
	patch UserPatch
}

type addToCartAction struct {
	productID int
	quantity  int
	at        time.Time
}

type removeFromCartAction struct {
	productID int
}

type updateCartQuantityAction struct {
	productID int
	quantity  int
}

type clearCartAction struct{}

type addToWishlistAction struct {
	productID int
	at        time.Time
}

type removeFromWishlistAction struct {
	productID int
}

type createOrderAction struct {
	order Order
}

func (loginAction) name() string              { return "login" }
func (logoutAction) name() string             { return "logout" }
func (updateUserAction) name() string         { return "updateUser" }
func (addToCartAction) name() string          { return "addToCart" }
func (removeFromCartAction) name() string     { return "removeFromCart" }
func (updateCartQuantityAction) name() string { return "updateCartQuantity" }
func (clearCartAction) name() string          { return "clearCart" }
func (addToWishlistAction) name() string      { return "addToWishlist" }
func (removeFromWishlistAction) name() string { return "removeFromWishlist" }
func (createOrderAction) name() string        { return "createOrder" }

// reduce is the pure transition function: given the previous snapshot and an
// action it produces a wholly new snapshot, never mutating its input.
func reduce(state State, act action) State {
	next := state.Clone()

	switch a := act.(type) {
	case loginAction:
		user := a.user
		next.User = &user
		next.IsAuthenticated = true

	case logoutAction:
		next = DefaultState()

	case updateUserAction:
		if next.User != nil {
			applyPatch(next.User, a.patch)
		}

	case addToCartAction:
		merged := false
		for i := range next.CartItems {
			if next.CartItems[i].ProductID == a.productID {
				next.CartItems[i].Quantity += a.quantity
				merged = true
				break
			}
		}
		if !merged {
			next.CartItems = append(next.CartItems, CartItem{
				ProductID: a.productID,
				Quantity:  a.quantity,
				AddedAt:   a.at,
			})
		}

	case removeFromCartAction:
		next.CartItems = removeCartItem(next.CartItems, a.productID)

	case updateCartQuantityAction:
		if a.quantity <= 0 {
			next.CartItems = removeCartItem(next.CartItems, a.productID)
			break
		}
		for i := range next.CartItems {
			if next.CartItems[i].ProductID == a.productID {
				next.CartItems[i].Quantity = a.quantity
				break
			}
		}

	case clearCartAction:
		next.CartItems = []CartItem{}

	case addToWishlistAction:
		for _, item := range next.WishlistItems {
			if item.ProductID == a.productID {
				return next
			}
		}
		next.WishlistItems = append(next.WishlistItems, WishlistItem{
			ProductID: a.productID,
			AddedAt:   a.at,
		})

	case removeFromWishlistAction:
		kept := next.WishlistItems[:0]
		for _, item := range next.WishlistItems {
			if item.ProductID != a.productID {
				kept = append(kept, item)
			}
		}
		next.WishlistItems = kept

	case createOrderAction:
		// An order is the cart's terminal state: prepending it and clearing
		// the cart happen in the same transition.
		next.Orders = append([]Order{a.order}, next.Orders...)
		next.CartItems = []CartItem{}
	}

	return next.normalize()
}

func removeCartItem(items []CartItem, productID int) []CartItem {
	kept := items[:0]
	for _, item := range items {
		if item.ProductID != productID {
			kept = append(kept, item)
		}
	}
	return kept
}

func applyPatch(user *User, patch UserPatch) {
	if patch.Email != nil {
		user.Email = *patch.Email
	}
	if patch.FirstName != nil {
		user.FirstName = *patch.FirstName
	}
	if patch.LastName != nil {
		user.LastName = *patch.LastName
	}
	if patch.Phone != nil {
		user.Phone = *patch.Phone
	}
	if patch.Avatar != nil {
		user.Avatar = *patch.Avatar
	}
	if patch.Addresses != nil {
		addresses := make([]Address, len(*patch.Addresses))
		copy(addresses, *patch.Addresses)
		user.Addresses = addresses
	}
}
