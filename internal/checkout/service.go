package checkout

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/techmart-labs/techmart-backend/internal/session"
	"github.com/techmart-labs/techmart-backend/pkg/config"
	"github.com/techmart-labs/techmart-backend/pkg/enums"
	pkgerrors "github.com/techmart-labs/techmart-backend/pkg/errors"
	"github.com/techmart-labs/techmart-backend/pkg/logger"
)

// Service prices the cart and turns it into an order. Payment is simulated:
// after the artificial processing delay every attempt succeeds.
type Service interface {
	Quote(ctx context.Context, method enums.ShippingMethod) (*QuoteDTO, error)
	PlaceOrder(ctx context.Context, input PlaceOrderInput) (*session.Order, error)
}

// QuoteDTO is a priced view of the current cart.
type QuoteDTO struct {
	Items    []session.CartLine `json:"items"`
	Subtotal float64            `json:"subtotal"`
	Tax      float64            `json:"tax"`
	Shipping float64            `json:"shipping"`
	Total    float64            `json:"total"`
}

// PlaceOrderInput holds the validated checkout payload.
type PlaceOrderInput struct {
	ShippingMethod  enums.ShippingMethod
	ShippingAddress session.Address
	BillingAddress  session.Address
	CardNumber      string
}

// ServiceParams groups dependencies for the checkout service.
type ServiceParams struct {
	Store   *session.Store
	Pricing config.CheckoutConfig
	Logger  *logger.Logger
	Delay   time.Duration
	Clock   func() time.Time
	NewID   func() string
}

type service struct {
	store   *session.Store
	taxRate decimal.Decimal
	logg    *logger.Logger
	delay   time.Duration
	clock   func() time.Time
	newID   func() string
}

// NewService builds the checkout service.
func NewService(params ServiceParams) (Service, error) {
	if params.Store == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "session store is required")
	}
	if params.Clock == nil {
		params.Clock = time.Now
	}
	if params.NewID == nil {
		params.NewID = uuid.NewString
	}
	return &service{
		store:   params.Store,
		taxRate: decimal.NewFromFloat(params.Pricing.TaxRate),
		logg:    params.Logger,
		delay:   params.Delay,
		clock:   params.Clock,
		newID:   params.NewID,
	}, nil
}

var shippingRates = map[enums.ShippingMethod]decimal.Decimal{
	enums.ShippingStandard:  decimal.Zero,
	enums.ShippingExpress:   decimal.NewFromInt(15),
	enums.ShippingOvernight: decimal.NewFromInt(35),
}

// ShippingRate returns the flat fee for the method; unknown methods ship free
// like standard.
func ShippingRate(method enums.ShippingMethod) decimal.Decimal {
	if rate, ok := shippingRates[method]; ok {
		return rate
	}
	return decimal.Zero
}

// Quote prices the current cart: subtotal over resolvable lines, flat tax,
// flat shipping by method, all rounded to cents.
func (s *service) Quote(_ context.Context, method enums.ShippingMethod) (*QuoteDTO, error) {
	if method != "" && !method.IsValid() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "unknown shipping method").
			WithDetails(map[string]any{"shippingMethod": string(method)})
	}

	lines := s.store.CartLines()
	subtotal := s.store.CartTotalDecimal()
	tax := subtotal.Mul(s.taxRate).Round(2)
	shipping := ShippingRate(method)
	total := subtotal.Add(tax).Add(shipping).Round(2)

	return &QuoteDTO{
		Items:    lines,
		Subtotal: subtotal.InexactFloat64(),
		Tax:      tax.InexactFloat64(),
		Shipping: shipping.InexactFloat64(),
		Total:    total.InexactFloat64(),
	}, nil
}

// PlaceOrder simulates the payment round trip and converts the cart into an
// order. The cart must not be empty and the shopper must be signed in.
func (s *service) PlaceOrder(ctx context.Context, input PlaceOrderInput) (*session.Order, error) {
	state := s.store.State()
	if !state.IsAuthenticated || state.User == nil {
		return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, "no active session")
	}

	lines := s.store.CartLines()
	if len(lines) == 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "cart is empty")
	}

	quote, err := s.Quote(ctx, input.ShippingMethod)
	if err != nil {
		return nil, err
	}

	if err := s.simulatePayment(ctx); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "payment interrupted")
	}

	items := make([]session.OrderItem, 0, len(lines))
	for _, line := range lines {
		price := line.Product.PriceDecimal()
		lineTotal := price.Mul(decimal.NewFromInt(int64(line.Quantity))).Round(2)
		items = append(items, session.OrderItem{
			ID:           s.newID(),
			ProductID:    line.ProductID,
			ProductName:  line.Product.Name,
			ProductImage: line.Product.Image,
			Price:        price.InexactFloat64(),
			Quantity:     line.Quantity,
			Total:        lineTotal.InexactFloat64(),
		})
	}

	order := s.store.CreateOrder(ctx, session.OrderDraft{
		UserID:          state.User.ID,
		Items:           items,
		Subtotal:        quote.Subtotal,
		Tax:             quote.Tax,
		Shipping:        quote.Shipping,
		Total:           quote.Total,
		Status:          enums.OrderStatusProcessing,
		ShippingAddress: input.ShippingAddress,
		BillingAddress:  input.BillingAddress,
		PaymentMethod:   MaskCard(input.CardNumber),
	})

	if s.logg != nil {
		s.logg.Info(ctx, "order placed")
	}
	return &order, nil
}

// MaskCard reduces a card number to its last four digits in display form.
// Short or empty input masks to a fixed placeholder.
func MaskCard(number string) string {
	digits := make([]rune, 0, len(number))
	for _, r := range number {
		if r >= '0' && r <= '9' {
			digits = append(digits, r)
		}
	}
	if len(digits) < 4 {
		return "**** **** **** 1234"
	}
	return "**** **** **** " + string(digits[len(digits)-4:])
}

func (s *service) simulatePayment(ctx context.Context) error {
	if s.delay <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(s.delay)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
