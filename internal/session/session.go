package session

import (
	"context"
	"sync"

	"github.com/Dharmendra7798/sports-store/internal/cart"
	"github.com/Dharmendra7798/sports-store/internal/checkout"
	"github.com/Dharmendra7798/sports-store/internal/order"
	"github.com/google/uuid"
)

// Session is one shopper's application state: a private cart, the handshake
// for it, and the order confirmed by the boundary, if any. Constructed at
// session start, discarded at session end; nothing survives it.
type Session struct {
	ID       string
	Cart     *cart.Cart
	checkout *checkout.Checkout

	mu           sync.Mutex
	currentOrder *order.Order
}

func New(client checkout.OrderPlacer) *Session {
	return &Session{
		ID:       uuid.NewString(),
		Cart:     cart.New(),
		checkout: checkout.New(client),
	}
}

// PlaceOrder runs the submission handshake. On success the confirmed order is
// stored before the cart is cleared, so a failure to render confirmation can
// never lose the order. On any failure the cart keeps its exact contents.
func (s *Session) PlaceOrder(ctx context.Context, details checkout.ShippingDetails, paymentMethod string) (*order.Order, error) {
	saved, err := s.checkout.Submit(ctx, s.Cart, details, paymentMethod)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.currentOrder = saved
	s.mu.Unlock()

	s.Cart.Clear()
	return saved, nil
}

// CurrentOrder returns the confirmed order, or nil before a successful
// submission or after a clear.
func (s *Session) CurrentOrder() *order.Order {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.currentOrder
}

// ConfirmedOrder is the confirmation-view read: it returns the order when one
// is populated, otherwise it reports false and the caller is expected to
// leave the view.
func (s *Session) ConfirmedOrder() (*order.Order, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.currentOrder == nil {
		return nil, false
	}
	return s.currentOrder, true
}

// ClearOrder drops the confirmed order, e.g. when the shopper leaves the
// confirmation view.
func (s *Session) ClearOrder() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.currentOrder = nil
}

func (s *Session) CheckoutStatus() checkout.Status {
	return s.checkout.Status()
}

// FailureReason exposes the user-visible text for the last failed submission.
func (s *Session) FailureReason() string {
	return s.checkout.FailureReason()
}
