package checkout

import "errors"

var (
	ErrEmptyCart            = errors.New("cart is empty, nothing to checkout")
	ErrIncompleteShipping   = errors.New("all shipping fields are required")
	ErrUnknownPaymentMethod = errors.New("unknown payment method")
	ErrSubmissionInFlight   = errors.New("a submission is already in flight")
	ErrCheckoutCompleted    = errors.New("checkout already succeeded for this cart")
)
