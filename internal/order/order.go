package order

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Item is the lean wire shape of a cart line item, stripped of display-only
// fields. A stored order keeps a copy of these, not references.
type Item struct {
	ID       string  `json:"id" bson:"id"`
	Name     string  `json:"name" bson:"name"`
	Price    float64 `json:"price" bson:"price"`
	Quantity int     `json:"quantity" bson:"quantity"`
}

// Customer carries the shipping details folded into a single address string.
type Customer struct {
	Name    string `json:"name" bson:"name"`
	Email   string `json:"email" bson:"email"`
	Address string `json:"address" bson:"address"`
}

// Request is the client-to-boundary payload for creating an order.
// PaymentMethod is a label only; the boundary persists it without reading it.
type Request struct {
	Items         []Item   `json:"items"`
	Customer      Customer `json:"customer"`
	Total         float64  `json:"total"`
	PaymentMethod string   `json:"paymentMethod,omitempty"`
}

// Order is the persisted record: the request fields plus the boundary-assigned
// identity and timestamps. Immutable once returned.
type Order struct {
	ID            primitive.ObjectID `json:"_id" bson:"_id,omitempty"`
	Items         []Item             `json:"items" bson:"items"`
	Customer      Customer           `json:"customer" bson:"customer"`
	Total         float64            `json:"total" bson:"total"`
	PaymentMethod string             `json:"paymentMethod,omitempty" bson:"paymentMethod,omitempty"`
	CreatedAt     time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt     time.Time          `json:"updatedAt" bson:"updatedAt"`
}
