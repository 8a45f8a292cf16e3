package cart

// Shipping tiers: orders strictly above the threshold ship free, everything
// else pays the flat fee.
const (
	FreeShippingThreshold = 500.0
	FlatShippingFee       = 10.0
)

// PricingSnapshot is the subtotal/shipping/total triple derived from cart
// contents. It is never stored, only recomputed.
type PricingSnapshot struct {
	Subtotal float64 `json:"subtotal"`
	Shipping float64 `json:"shipping"`
	Total    float64 `json:"total"`
}

// ComputeSnapshot derives pricing from the given line items. Pure and
// deterministic: an empty cart still yields the flat shipping fee since a
// zero subtotal does not clear the free-shipping threshold.
func ComputeSnapshot(items []LineItem) PricingSnapshot {
	subtotal := 0.0
	for _, item := range items {
		subtotal += item.UnitPrice * float64(item.Quantity)
	}

	shipping := FlatShippingFee
	if subtotal > FreeShippingThreshold {
		shipping = 0
	}

	return PricingSnapshot{
		Subtotal: subtotal,
		Shipping: shipping,
		Total:    subtotal + shipping,
	}
}

// Snapshot returns the pricing for the cart's current contents. The result is
// memoized against the cart revision, so repeated reads without a mutation in
// between do not recompute.
func (c *Cart) Snapshot() PricingSnapshot {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.snapshotRev != c.revision || c.revision == 0 {
		c.snapshot = ComputeSnapshot(c.items)
		c.snapshotRev = c.revision
	}
	return c.snapshot
}
