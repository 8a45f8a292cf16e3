package checkout

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"sync"

	"github.com/Dharmendra7798/sports-store/internal/cart"
	"github.com/Dharmendra7798/sports-store/internal/order"
)

// ShippingDetails is the ephemeral checkout form. It is never persisted on
// its own; at submission time it folds into a single address string.
type ShippingDetails struct {
	Name        string
	Email       string
	AddressLine string
	City        string
	Zip         string
}

// Validate checks that every field is filled in. No format validation, the
// form only guards against blanks.
func (d ShippingDetails) Validate() error {
	fields := []string{d.Name, d.Email, d.AddressLine, d.City, d.Zip}
	for _, f := range fields {
		if strings.TrimSpace(f) == "" {
			return ErrIncompleteShipping
		}
	}
	return nil
}

// PaymentMethods are labels only; nothing is ever charged.
var PaymentMethods = []string{"Credit Card", "PayPal", "COD"}

func ValidPaymentMethod(method string) bool {
	for _, m := range PaymentMethods {
		if m == method {
			return true
		}
	}
	return false
}

// GenericFailureMessage is shown for transport failures, where there is no
// boundary message to surface.
const GenericFailureMessage = "Network error or connection failed. Ensure the order service is reachable."

// Checkout runs the submission handshake for one cart instance. One
// submission may be in flight at a time; a failed submission keeps the cart
// and form intact and may be retried, success is terminal.
type Checkout struct {
	client OrderPlacer

	mu      sync.Mutex
	status  Status
	failure string
}

func New(client OrderPlacer) *Checkout {
	return &Checkout{
		client: client,
		status: StatusIdle,
	}
}

func (c *Checkout) Status() Status {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.status
}

// FailureReason returns the user-visible text for the last failed submission,
// empty unless the handshake is in the Failed state.
func (c *Checkout) FailureReason() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.failure
}

// BuildRequest assembles the wire payload: line items projected to their lean
// shape, shipping fields concatenated into one address, and the cart's
// current total attached.
func BuildRequest(items []cart.LineItem, details ShippingDetails, paymentMethod string) order.Request {
	leanItems := make([]order.Item, 0, len(items))
	for _, item := range items {
		leanItems = append(leanItems, order.Item{
			ID:       item.ID,
			Name:     item.Name,
			Price:    item.UnitPrice,
			Quantity: item.Quantity,
		})
	}

	return order.Request{
		Items: leanItems,
		Customer: order.Customer{
			Name:    details.Name,
			Email:   details.Email,
			Address: fmt.Sprintf("%s, %s, %s", details.AddressLine, details.City, details.Zip),
		},
		Total:         cart.ComputeSnapshot(items).Total,
		PaymentMethod: paymentMethod,
	}
}

// Submit runs one pass of the handshake against the boundary. Validation
// failures return before any network call and leave the status untouched.
// The cart is never modified here; clearing it after success is the caller's
// job so the confirmed order is stored first.
func (c *Checkout) Submit(ctx context.Context, crt *cart.Cart, details ShippingDetails, paymentMethod string) (*order.Order, error) {
	c.mu.Lock()
	if c.status == StatusSubmitting {
		c.mu.Unlock()
		return nil, ErrSubmissionInFlight
	}
	if !CanTransitionTo(c.status, StatusSubmitting) {
		c.mu.Unlock()
		return nil, ErrCheckoutCompleted
	}

	items := crt.Items()
	if len(items) == 0 {
		c.mu.Unlock()
		return nil, ErrEmptyCart
	}
	if err := details.Validate(); err != nil {
		c.mu.Unlock()
		return nil, err
	}
	if !ValidPaymentMethod(paymentMethod) {
		c.mu.Unlock()
		return nil, ErrUnknownPaymentMethod
	}

	c.status = StatusSubmitting
	c.failure = ""
	req := BuildRequest(items, details, paymentMethod)
	c.mu.Unlock()

	saved, err := c.client.PlaceOrder(ctx, req)

	c.mu.Lock()
	defer c.mu.Unlock()

	if err != nil {
		c.status = StatusFailed
		c.failure = failureReason(err)
		log.Printf("order submission failed: %v", err)
		return nil, err
	}

	c.status = StatusSucceeded
	return saved, nil
}

func failureReason(err error) string {
	var be *BoundaryError
	if errors.As(err, &be) {
		// Application errors surface the boundary's message verbatim
		return be.Message
	}
	return GenericFailureMessage
}
