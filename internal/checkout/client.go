package checkout

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/Dharmendra7798/sports-store/internal/order"
	"github.com/sony/gobreaker/v2"
)

// DefaultTimeout bounds a single submission round-trip; expiry is treated as
// a transport failure.
const DefaultTimeout = 30 * time.Second

// OrderPlacer is the persistence boundary as seen by the handshake.
type OrderPlacer interface {
	PlaceOrder(ctx context.Context, req order.Request) (*order.Order, error)
}

// BoundaryError is an application-level rejection from the boundary: the
// request reached the server and was turned down with a message.
type BoundaryError struct {
	StatusCode int
	Message    string
}

func (e *BoundaryError) Error() string {
	return fmt.Sprintf("boundary rejected order (%d): %s", e.StatusCode, e.Message)
}

// Client submits orders to the boundary over HTTP. A circuit breaker guards
// the transport; application-level rejections do not count against it.
type Client struct {
	baseURL string
	http    *http.Client
	breaker *gobreaker.CircuitBreaker[*order.Order]
}

func NewClient(baseURL string) *Client {
	settings := gobreaker.Settings{
		Name: "order-boundary",
		IsSuccessful: func(err error) bool {
			if err == nil {
				return true
			}
			var be *BoundaryError
			return errors.As(err, &be)
		},
	}

	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: DefaultTimeout},
		breaker: gobreaker.NewCircuitBreaker[*order.Order](settings),
	}
}

func (c *Client) PlaceOrder(ctx context.Context, req order.Request) (*order.Order, error) {
	return c.breaker.Execute(func() (*order.Order, error) {
		return c.placeOrder(ctx, req)
	})
}

func (c *Client) placeOrder(ctx context.Context, req order.Request) (*order.Order, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal order request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.baseURL+"/api/orders", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("failed to reach order boundary: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated {
		var apiErr struct {
			Message string `json:"message"`
		}
		if decErr := json.NewDecoder(resp.Body).Decode(&apiErr); decErr != nil || apiErr.Message == "" {
			// Non-JSON failure body reads as a transport problem
			return nil, fmt.Errorf("unexpected response from order boundary: status %d", resp.StatusCode)
		}
		return nil, &BoundaryError{StatusCode: resp.StatusCode, Message: apiErr.Message}
	}

	var saved order.Order
	if err := json.NewDecoder(resp.Body).Decode(&saved); err != nil {
		return nil, fmt.Errorf("failed to decode saved order: %w", err)
	}

	return &saved, nil
}
