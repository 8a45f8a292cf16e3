package httpapi

import (
	"bytes"
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

// mockOrderService implements OrderService for testing
type mockOrderService struct {
	Created *order.Order
	Orders  []order.Order
	Err     error
}

func (m *mockOrderService) CreateOrder(_ context.Context, o *order.Order) (*order.Order, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	o.ID = primitive.NewObjectID()
	o.CreatedAt = time.Now().UTC()
	o.UpdatedAt = o.CreatedAt
	m.Created = o
	return o, nil
}

func (m *mockOrderService) ListOrders(context.Context) ([]order.Order, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Orders, nil
}

func setupRouter(svc OrderService) http.Handler {
	return NewRouter(NewOrdersHandler(svc, 5*time.Second), 5*time.Second)
}

func validBody() map[string]interface{} {
	return map[string]interface{}{
		"items": []map[string]interface{}{
			{"id": "p-001", "name": "Racket", "price": 300.0, "quantity": 1},
		},
		"customer": map[string]string{
			"name":    "Ravi Sharma",
			"email":   "ravi@example.com",
			"address": "221 MG Road, Pune, 411001",
		},
		"total":         310.0,
		"paymentMethod": "COD",
	}
}

func postOrder(t *testing.T, h http.Handler, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	raw, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/orders", bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestCreateOrder_Created(t *testing.T) {
	svc := &mockOrderService{}
	rec := postOrder(t, setupRouter(svc), validBody())

	require.Equal(t, http.StatusCreated, rec.Code)

	var saved order.Order
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &saved))
	assert.False(t, saved.ID.IsZero(), "response must carry the boundary-assigned identity")
	assert.False(t, saved.CreatedAt.IsZero())
	assert.Equal(t, 310.0, saved.Total)
	assert.Equal(t, "COD", saved.PaymentMethod)

	require.NotNil(t, svc.Created)
	assert.Equal(t, "Ravi Sharma", svc.Created.Customer.Name)
}

func TestCreateOrder_MissingItems(t *testing.T) {
	body := validBody()
	body["items"] = []map[string]interface{}{}
	rec := postOrder(t, setupRouter(&mockOrderService{}), body)

	require.Equal(t, http.StatusBadRequest, rec.Code)

	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "Missing required order fields: items, customer, or total.", resp.Message)
}

func TestCreateOrder_EmptyCustomerAddress(t *testing.T) {
	svc := &mockOrderService{}
	body := validBody()
	body["customer"] = map[string]string{
		"name":    "Ravi Sharma",
		"email":   "ravi@example.com",
		"address": "",
	}
	rec := postOrder(t, setupRouter(svc), body)

	require.Equal(t, http.StatusBadRequest, rec.Code)

	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.Message)
	assert.Nil(t, svc.Created, "nothing may be persisted for a rejected order")
}

func TestCreateOrder_ZeroTotal(t *testing.T) {
	body := validBody()
	body["total"] = 0.0
	rec := postOrder(t, setupRouter(&mockOrderService{}), body)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCreateOrder_InvalidJSON(t *testing.T) {
	h := setupRouter(&mockOrderService{})
	req := httptest.NewRequest(http.MethodPost, "/api/orders", bytes.NewReader([]byte("{not json")))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCreateOrder_StorageError(t *testing.T) {
	svc := &mockOrderService{Err: errors.New("mongo unavailable")}
	rec := postOrder(t, setupRouter(svc), validBody())

	require.Equal(t, http.StatusInternalServerError, rec.Code)

	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "Failed to place order", resp.Message)
}

func TestCreateOrder_PaymentMethodPersistedUnread(t *testing.T) {
	svc := &mockOrderService{}
	body := validBody()
	body["paymentMethod"] = "PayPal"
	rec := postOrder(t, setupRouter(svc), body)

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "PayPal", svc.Created.PaymentMethod)
}

func TestListOrders(t *testing.T) {
	newer := order.Order{ID: primitive.NewObjectID(), Total: 550, CreatedAt: time.Now().UTC()}
	older := order.Order{ID: primitive.NewObjectID(), Total: 210, CreatedAt: time.Now().UTC().Add(-time.Hour)}
	svc := &mockOrderService{Orders: []order.Order{newer, older}}

	req := httptest.NewRequest(http.MethodGet, "/api/orders", nil)
	rec := httptest.NewRecorder()
	setupRouter(svc).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var orders []order.Order
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &orders))
	require.Len(t, orders, 2)
	assert.Equal(t, newer.ID, orders[0].ID)
	assert.Equal(t, older.ID, orders[1].ID)
}

func TestListOrders_ServerError(t *testing.T) {
	svc := &mockOrderService{Err: errors.New("cursor timeout")}

	req := httptest.NewRequest(http.MethodGet, "/api/orders", nil)
	rec := httptest.NewRecorder()
	setupRouter(svc).ServeHTTP(rec, req)

	require.Equal(t, http.StatusInternalServerError, rec.Code)

	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "Server Error", resp.Message)
}

func TestLiveness(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	setupRouter(&mockOrderService{}).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "running")
}

func TestRequestIDMiddleware_AssignsID(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	setupRouter(&mockOrderService{}).ServeHTTP(rec, req)

	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))
}

func TestRequestIDMiddleware_EchoesCallerID(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Request-ID", "caller-42")
	rec := httptest.NewRecorder()
	setupRouter(&mockOrderService{}).ServeHTTP(rec, req)

	assert.Equal(t, "caller-42", rec.Header().Get("X-Request-ID"))
}
