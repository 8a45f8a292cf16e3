package httpapi

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/Dharmendra7798/sports-store/internal/order"
)

// OrderService is what the handlers need from the order layer.
type OrderService interface {
	CreateOrder(ctx context.Context, o *order.Order) (*order.Order, error)
	ListOrders(ctx context.Context) ([]order.Order, error)
}

type OrdersHandler struct {
	orders  OrderService
	timeout time.Duration
}

func NewOrdersHandler(orders OrderService, timeout time.Duration) *OrdersHandler {
	return &OrdersHandler{
		orders:  orders,
		timeout: timeout,
	}
}

// ErrorResponse is the body of every failure reply.
type ErrorResponse struct {
	Message string `json:"message"`
}

// POST /api/orders
func (h *OrdersHandler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	var req order.Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid JSON body.")
		return
	}

	// Presence validation only. A customer with a blank name, email or
	// address counts as missing. paymentMethod is accepted and persisted
	// but never inspected here.
	if len(req.Items) == 0 || !customerPresent(req.Customer) || req.Total == 0 {
		respondError(w, http.StatusBadRequest,
			"Missing required order fields: items, customer, or total.")
		return
	}

	saved, err := h.orders.CreateOrder(ctx, &order.Order{
		Items:         req.Items,
		Customer:      req.Customer,
		Total:         req.Total,
		PaymentMethod: req.PaymentMethod,
	})
	if err != nil {
		log.Printf("[%s] error creating order: %v", getRequestID(r.Context()), err)
		respondError(w, http.StatusInternalServerError, "Failed to place order")
		return
	}

	respondJSON(w, http.StatusCreated, saved)
}

// GET /api/orders
func (h *OrdersHandler) ListOrders(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	orders, err := h.orders.ListOrders(ctx)
	if err != nil {
		log.Printf("[%s] error fetching orders: %v", getRequestID(r.Context()), err)
		respondError(w, http.StatusInternalServerError, "Server Error")
		return
	}

	respondJSON(w, http.StatusOK, orders)
}

func customerPresent(c order.Customer) bool {
	return c.Name != "" && c.Email != "" && c.Address != ""
}

func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Printf("failed to encode response: %v", err)
	}
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, ErrorResponse{Message: message})
}
