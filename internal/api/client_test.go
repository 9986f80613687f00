package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lautaroCastilloJ/storefront/internal/domain"
)

type staticTokens struct {
	token string
}

func (s staticTokens) Token() string { return s.token }

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return NewClient(server.URL, 5*time.Second)
}

func TestLogin_Success(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/auth/login", r.URL.Path)

		var req loginRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "cliente1", req.Username)
		assert.Equal(t, "password123", req.Password)

		json.NewEncoder(w).Encode(map[string]string{
			"token":      "tok-123",
			"role":       "Customer",
			"username":   "cliente1",
			"customerId": "cust-9",
		})
	})

	res, err := client.Login(context.Background(), "cliente1", "password123")
	require.NoError(t, err)
	assert.Equal(t, "tok-123", res.Token)
	assert.Equal(t, domain.RoleCustomer, res.Role)
	assert.Equal(t, "cust-9", res.CustomerID)
}

func TestLogin_InvalidCredentials(t *testing.T) {
	hookFired := false
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(map[string]any{
			"code":    "INVALID_CREDENTIALS",
			"message": "invalid username or password",
			"status":  401,
			"traceId": "0HNHC01EFPDIP:00000009",
		})
	})
	client.SetUnauthorizedHook(func() { hookFired = true })

	_, err := client.Login(context.Background(), "cliente1", "wrong")
	require.Error(t, err)

	apiErr, ok := err.(*Error)
	require.True(t, ok)
	assert.Equal(t, "INVALID_CREDENTIALS", apiErr.Code)
	assert.Equal(t, "invalid username or password", apiErr.Message)
	assert.Equal(t, 401, apiErr.Status)
	assert.True(t, IsUnauthorized(err))

	// An anonymous 401 is a failed login, not a credential rejection.
	assert.False(t, hookFired)
}

func TestBearerHeaderAttached(t *testing.T) {
	var gotAuth string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		json.NewEncoder(w).Encode(domain.Order{})
	})
	client.SetTokenSource(staticTokens{token: "tok-123"})

	_, err := client.GetOrder(context.Background(), "o1")
	require.NoError(t, err)
	assert.Equal(t, "Bearer tok-123", gotAuth)
}

func TestNoTokenMeansNoHeader(t *testing.T) {
	var gotAuth string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		json.NewEncoder(w).Encode(ProductPage{})
	})
	client.SetTokenSource(staticTokens{})

	_, err := client.ListProducts(context.Background(), ListProductsParams{})
	require.NoError(t, err)
	assert.Empty(t, gotAuth)
}

func TestUnauthorizedHook_FiresOnAuthenticatedRequest(t *testing.T) {
	hookFired := false
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	})
	client.SetTokenSource(staticTokens{token: "expired"})
	client.SetUnauthorizedHook(func() { hookFired = true })

	_, err := client.GetOrder(context.Background(), "o1")
	require.Error(t, err)
	assert.True(t, IsUnauthorized(err))
	assert.True(t, hookFired, "401 with a token attached must trigger the reset hook")
}

func TestError_FallbackMessageWithoutEnvelope(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	_, err := client.ListProducts(context.Background(), ListProductsParams{})
	require.Error(t, err)

	apiErr, ok := err.(*Error)
	require.True(t, ok)
	assert.Equal(t, 500, apiErr.Status)
	assert.Equal(t, "internal server error, try again later", apiErr.Message)
}

func TestListProducts_PassesPascalCaseParams(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		assert.Equal(t, "laptop", q.Get("Search"))
		assert.Equal(t, "Active", q.Get("Status"))
		assert.Equal(t, "2", q.Get("PageNumber"))
		assert.Equal(t, "20", q.Get("PageSize"))
		json.NewEncoder(w).Encode(ProductPage{})
	})

	_, err := client.ListProducts(context.Background(), ListProductsParams{
		Search:     "laptop",
		Status:     "Active",
		PageNumber: 2,
		PageSize:   20,
	})
	require.NoError(t, err)
}

func TestListMyOrders_PassesCamelCaseParams(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/orders/my-orders", r.URL.Path)
		q := r.URL.Query()
		assert.Equal(t, "Pending", q.Get("status"))
		assert.Equal(t, "3", q.Get("pageNumber"))
		assert.Equal(t, "10", q.Get("pageSize"))
		json.NewEncoder(w).Encode(OrderPage{})
	})
	client.SetTokenSource(staticTokens{token: "tok-123"})

	_, err := client.ListMyOrders(context.Background(), ListOrdersParams{
		Status:     "Pending",
		PageNumber: 3,
		PageSize:   10,
	})
	require.NoError(t, err)
}

func TestCreateOrder_SendsOrderPayload(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		var req domain.OrderRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "Calle Falsa 123", req.ShippingAddress)
		require.Len(t, req.OrderItems, 1)
		assert.Equal(t, "p1", req.OrderItems[0].ProductID)
		assert.Equal(t, 2, req.OrderItems[0].Quantity)
		assert.Equal(t, 10.0, req.OrderItems[0].UnitPrice)

		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(domain.Order{
			ID:          "o1",
			Status:      domain.OrderStatusPending,
			TotalAmount: 20.0,
		})
	})
	client.SetTokenSource(staticTokens{token: "tok-123"})

	order, err := client.CreateOrder(context.Background(), domain.OrderRequest{
		ShippingAddress: "Calle Falsa 123",
		BillingAddress:  "Calle Falsa 123",
		OrderItems: []domain.OrderItem{
			{ProductID: "p1", Quantity: 2, UnitPrice: 10.0},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, "o1", order.ID)
	assert.Equal(t, domain.OrderStatusPending, order.Status)
	assert.Equal(t, 20.0, order.TotalAmount)
}
