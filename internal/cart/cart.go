package cart

import (
	"sync"

	"github.com/Dharmendra7798/sports-store/internal/catalog"
)

// LineItem is one product entry in the cart with its quantity. ImageURL is a
// display-only field and is dropped when the cart is projected onto an order.
type LineItem struct {
	ID        string
	Name      string
	UnitPrice float64
	Quantity  int
	ImageURL  string
}

// Cart holds the line items for one session. Items keep insertion order and
// product ids are unique within the cart. All mutations are synchronous and
// immediately visible to readers; nothing is persisted.
type Cart struct {
	mu       sync.Mutex
	items    []LineItem
	revision uint64

	snapshot    PricingSnapshot
	snapshotRev uint64
}

func New() *Cart {
	return &Cart{}
}

// AddItem puts the product into the cart. A product already present has its
// quantity incremented by one, clamped to stockLimit; a stockLimit of zero or
// less means no clamp, so the increment always goes through. The first add is
// always quantity 1 regardless of stock. Hitting the limit is not an error,
// the increment is silently dropped.
func (c *Cart) AddItem(p catalog.Product, stockLimit int) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.items {
		if c.items[i].ID == p.ID {
			next := c.items[i].Quantity + 1
			if stockLimit > 0 && next > stockLimit {
				next = stockLimit
			}
			if next != c.items[i].Quantity {
				c.items[i].Quantity = next
				c.revision++
			}
			return
		}
	}

	c.items = append(c.items, LineItem{
		ID:        p.ID,
		Name:      p.Name,
		UnitPrice: p.Price,
		Quantity:  1,
		ImageURL:  p.ImageURL,
	})
	c.revision++
}

// UpdateQuantity sets the quantity for the given product directly; absent ids
// are a no-op. Bounds against stock are the caller's responsibility. A
// quantity below one removes the item, a cart never retains a zero-quantity
// line.
func (c *Cart) UpdateQuantity(id string, quantity int) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.items {
		if c.items[i].ID == id {
			if quantity < 1 {
				c.items = append(c.items[:i], c.items[i+1:]...)
			} else {
				c.items[i].Quantity = quantity
			}
			c.revision++
			return
		}
	}
}

// RemoveItem deletes the line item; no-op if absent.
func (c *Cart) RemoveItem(id string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.items {
		if c.items[i].ID == id {
			c.items = append(c.items[:i], c.items[i+1:]...)
			c.revision++
			return
		}
	}
}

// Clear empties the cart unconditionally.
func (c *Cart) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.items = nil
	c.revision++
}

// Items returns a copy of the current line items in insertion order.
func (c *Cart) Items() []LineItem {
	c.mu.Lock()
	defer c.mu.Unlock()

	items := make([]LineItem, len(c.items))
	copy(items, c.items)
	return items
}

// Len returns the number of distinct line items.
func (c *Cart) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.items)
}

func (c *Cart) IsEmpty() bool {
	return c.Len() == 0
}

// ItemCount returns the total unit count across all line items.
func (c *Cart) ItemCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	count := 0
	for _, item := range c.items {
		count += item.Quantity
	}
	return count
}
