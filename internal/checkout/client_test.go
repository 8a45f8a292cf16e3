package checkout

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Dharmendra7798/sports-store/internal/order"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func sampleRequest() order.Request {
	return order.Request{
		Items:         []order.Item{{ID: "p-001", Name: "Racket", Price: 300, Quantity: 1}},
		Customer:      order.Customer{Name: "Ravi", Email: "ravi@example.com", Address: "221 MG Road, Pune, 411001"},
		Total:         310,
		PaymentMethod: "COD",
	}
}

func TestPlaceOrder_Created(t *testing.T) {
	id := primitive.NewObjectID()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/orders", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var req order.Request
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, 310.0, req.Total)

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(order.Order{
			ID:        id,
			Items:     req.Items,
			Customer:  req.Customer,
			Total:     req.Total,
			CreatedAt: time.Now().UTC(),
			UpdatedAt: time.Now().UTC(),
		})
	}))
	defer srv.Close()

	client := NewClient(srv.URL)
	saved, err := client.PlaceOrder(context.Background(), sampleRequest())

	require.NoError(t, err)
	assert.Equal(t, id, saved.ID)
	assert.Equal(t, 310.0, saved.Total)
	assert.False(t, saved.CreatedAt.IsZero())
}

func TestPlaceOrder_BadRequest_ReturnsBoundaryError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(map[string]string{
			"message": "Missing required order fields: items, customer, or total.",
		})
	}))
	defer srv.Close()

	client := NewClient(srv.URL)
	_, err := client.PlaceOrder(context.Background(), sampleRequest())

	var be *BoundaryError
	require.ErrorAs(t, err, &be)
	assert.Equal(t, http.StatusBadRequest, be.StatusCode)
	assert.Equal(t, "Missing required order fields: items, customer, or total.", be.Message)
}

func TestPlaceOrder_StorageError_ReturnsBoundaryError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		json.NewEncoder(w).Encode(map[string]string{"message": "Failed to place order"})
	}))
	defer srv.Close()

	client := NewClient(srv.URL)
	_, err := client.PlaceOrder(context.Background(), sampleRequest())

	var be *BoundaryError
	require.ErrorAs(t, err, &be)
	assert.Equal(t, http.StatusInternalServerError, be.StatusCode)
	assert.Equal(t, "Failed to place order", be.Message)
}

func TestPlaceOrder_NonJSONFailure_IsTransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte("<html>upstream unavailable</html>"))
	}))
	defer srv.Close()

	client := NewClient(srv.URL)
	_, err := client.PlaceOrder(context.Background(), sampleRequest())

	require.Error(t, err)
	var be *BoundaryError
	assert.False(t, errors.As(err, &be), "a non-JSON body must not read as an application error")
}

func TestPlaceOrder_Unreachable(t *testing.T) {
	client := NewClient("http://127.0.0.1:1")
	_, err := client.PlaceOrder(context.Background(), sampleRequest())

	require.Error(t, err)
}

func TestPlaceOrder_RejectionsDoNotTripBreaker(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(map[string]string{"message": "nope"})
	}))
	defer srv.Close()

	client := NewClient(srv.URL)

	// Well past the breaker's consecutive-failure trip point
	for i := 0; i < 10; i++ {
		_, err := client.PlaceOrder(context.Background(), sampleRequest())
		var be *BoundaryError
		require.ErrorAs(t, err, &be, "breaker must stay closed for application rejections")
	}
}
