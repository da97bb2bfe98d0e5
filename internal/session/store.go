package session

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sethvargo/go-retry"
	"github.com/techmart-labs/techmart-backend/internal/catalog"
	pkgerrors "github.com/techmart-labs/techmart-backend/pkg/errors"
	"github.com/techmart-labs/techmart-backend/pkg/logger"
	"github.com/techmart-labs/techmart-backend/pkg/metrics"
)

// ProductFinder is the read surface the store needs from the catalog.
type ProductFinder interface {
	FindByID(id int) (catalog.Product, bool)
}

// StoreParams groups dependencies for the state container.
type StoreParams struct {
	Snapshots SnapshotStore
	Catalog   ProductFinder
	Logger    *logger.Logger
	Metrics   *metrics.StoreMetrics

	// AuthDelay is the artificial latency simulating the auth network round
	// trip on Login/Register.
	AuthDelay time.Duration

	// Clock and NewID are injectable for tests.
	Clock func() time.Time
	NewID func() string
}

// Store is the single authority over session state. Every mutation goes
// through dispatch, which applies one action atomically and persists the
// resulting snapshot before returning.
type Store struct {
	mu        sync.Mutex
	state     State
	snapshots SnapshotStore
	catalog   ProductFinder
	logg      *logger.Logger
	metrics   *metrics.StoreMetrics
	authDelay time.Duration
	clock     func() time.Time
	newID     func() string
}

// NewStore builds the container and rehydrates the last persisted snapshot.
// A missing or unreadable snapshot falls back to the empty default.
func NewStore(ctx context.Context, params StoreParams) (*Store, error) {
	if params.Snapshots == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "snapshot store is required")
	}
	if params.Catalog == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "catalog is required")
	}
	if params.Clock == nil {
		params.Clock = time.Now
	}
	if params.NewID == nil {
		params.NewID = uuid.NewString
	}

	s := &Store{
		snapshots: params.Snapshots,
		catalog:   params.Catalog,
		logg:      params.Logger,
		metrics:   params.Metrics,
		authDelay: params.AuthDelay,
		clock:     params.Clock,
		newID:     params.NewID,
	}

	state, err := params.Snapshots.Load(ctx)
	if err != nil {
		if s.logg != nil {
			s.logg.Error(ctx, "snapshot load failed, starting from empty state", err)
		}
		state = DefaultState()
	}
	s.state = state.normalize()
	return s, nil
}

// State returns a deep copy of the current snapshot.
func (s *Store) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Clone()
}

// dispatch applies one action, swaps in the new snapshot and persists it.
// Persistence is best-effort: failures are retried once, then logged and
// dropped while the in-memory state stays authoritative.
func (s *Store) dispatch(ctx context.Context, act action) State {
	s.mu.Lock()
	next := reduce(s.state, act)
	s.state = next
	persisted := next.Clone()
	s.mu.Unlock()

	if s.metrics != nil {
		s.metrics.IncAction(act.name())
	}
	s.persist(ctx, act.name(), persisted)
	return persisted
}

func (s *Store) persist(ctx context.Context, actionName string, state State) {
	start := s.clock()
	backoff := retry.WithMaxRetries(1, retry.NewConstant(50*time.Millisecond))
	err := retry.Do(ctx, backoff, func(ctx context.Context) error {
		if saveErr := s.snapshots.Save(ctx, state); saveErr != nil {
			return retry.RetryableError(saveErr)
		}
		return nil
	})
	if s.metrics != nil {
		s.metrics.ObservePersist(s.clock().Sub(start))
	}
	if err != nil {
		if s.metrics != nil {
			s.metrics.IncPersistFailure()
		}
		if s.logg != nil {
			ctx = s.logg.WithAction(ctx, actionName)
			s.logg.Error(ctx, "snapshot persist failed, continuing with unsynced state", err)
		}
	}
}

// RegisterInput carries registration form fields. The password is accepted
// and discarded: no credential store exists in this prototype.
type RegisterInput struct {
	Email     string
	Password  string
	FirstName string
	LastName  string
	Phone     string
}

// Login simulates an auth round trip and signs the user in. Any credentials
// are accepted; the mock user's first name is derived from the email.
func (s *Store) Login(ctx context.Context, email, _ string) (User, error) {
	if err := s.simulateLatency(ctx); err != nil {
		return User{}, err
	}

	user := User{
		ID:        "1",
		Email:     email,
		FirstName: emailLocalPart(email),
		LastName:  "User",
		Addresses: []Address{},
		CreatedAt: s.clock(),
	}

	s.dispatch(ctx, loginAction{user: user})
	return user, nil
}

// Register simulates an auth round trip and signs up a fresh user.
func (s *Store) Register(ctx context.Context, input RegisterInput) (User, error) {
	if err := s.simulateLatency(ctx); err != nil {
		return User{}, err
	}

	user := User{
		ID:        s.newID(),
		Email:     input.Email,
		FirstName: input.FirstName,
		LastName:  input.LastName,
		Phone:     input.Phone,
		Addresses: []Address{},
		CreatedAt: s.clock(),
	}

	s.dispatch(ctx, loginAction{user: user})
	return user, nil
}

// Logout resets the entire session: user, cart, wishlist and order history
// are all cleared.
func (s *Store) Logout(ctx context.Context) {
	s.dispatch(ctx, logoutAction{})
}

// UpdateUser merges the patch into the current user; a no-op when nobody is
// signed in.
func (s *Store) UpdateUser(ctx context.Context, patch UserPatch) {
	s.dispatch(ctx, updateUserAction{patch: patch})
}

// AddToCart merges quantity into an existing line for the product or appends
// a new one. Quantity defaults to 1 when zero; bounds are a UI concern.
func (s *Store) AddToCart(ctx context.Context, product catalog.Product, quantity int) {
	if quantity == 0 {
		quantity = 1
	}
	s.dispatch(ctx, addToCartAction{productID: product.ID, quantity: quantity, at: s.clock()})
}

// RemoveFromCart drops the line for productID if present.
func (s *Store) RemoveFromCart(ctx context.Context, productID int) {
	s.dispatch(ctx, removeFromCartAction{productID: productID})
}

// UpdateCartQuantity replaces the stored quantity; zero or below removes the
// line entirely.
func (s *Store) UpdateCartQuantity(ctx context.Context, productID, quantity int) {
	s.dispatch(ctx, updateCartQuantityAction{productID: productID, quantity: quantity})
}

// ClearCart empties the cart collection.
func (s *Store) ClearCart(ctx context.Context) {
	s.dispatch(ctx, clearCartAction{})
}

// AddToWishlist inserts the product id once; re-adding is a no-op.
func (s *Store) AddToWishlist(ctx context.Context, productID int) {
	s.dispatch(ctx, addToWishlistAction{productID: productID, at: s.clock()})
}

// RemoveFromWishlist drops the entry if present.
func (s *Store) RemoveFromWishlist(ctx context.Context, productID int) {
	s.dispatch(ctx, removeFromWishlistAction{productID: productID})
}

// CreateOrder stamps id and timestamps onto the draft, prepends the order to
// the history and clears the cart in the same transition.
func (s *Store) CreateOrder(ctx context.Context, draft OrderDraft) Order {
	now := s.clock()
	order := Order{
		ID:              s.newID(),
		UserID:          draft.UserID,
		Items:           draft.Items,
		Subtotal:        draft.Subtotal,
		Tax:             draft.Tax,
		Shipping:        draft.Shipping,
		Total:           draft.Total,
		Status:          draft.Status,
		ShippingAddress: draft.ShippingAddress,
		BillingAddress:  draft.BillingAddress,
		PaymentMethod:   draft.PaymentMethod,
		TrackingNumber:  draft.TrackingNumber,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	s.dispatch(ctx, createOrderAction{order: order})
	return order
}

func (s *Store) simulateLatency(ctx context.Context) error {
	if s.authDelay <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(s.authDelay)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

func emailLocalPart(email string) string {
	if idx := strings.Index(email, "@"); idx > 0 {
		return email[:idx]
	}
	return email
}
