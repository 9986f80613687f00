package api

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/lautaroCastilloJ/storefront/internal/domain"
)

// ListOrdersParams filters order listings. CustomerID only applies to the
// admin listing.
type ListOrdersParams struct {
	Status     string
	CustomerID string
	PageNumber int
	PageSize   int
}

// The order endpoints take camelCase query parameters, unlike the product
// ones. That asymmetry is the backend's, not ours.
func (p ListOrdersParams) query() url.Values {
	q := url.Values{}
	if p.Status != "" {
		q.Set("status", p.Status)
	}
	if p.CustomerID != "" {
		q.Set("customerId", p.CustomerID)
	}
	if p.PageNumber > 0 {
		q.Set("pageNumber", strconv.Itoa(p.PageNumber))
	}
	if p.PageSize > 0 {
		q.Set("pageSize", strconv.Itoa(p.PageSize))
	}
	return q
}

type OrderPage struct {
	Items       []domain.Order `json:"items"`
	TotalCount  int            `json:"totalCount"`
	TotalPages  int            `json:"totalPages"`
	PageNumber  int            `json:"pageNumber"`
	PageSize    int            `json:"pageSize"`
	HasNext     bool           `json:"hasNext"`
	HasPrevious bool           `json:"hasPrevious"`
}

// CreateOrder places an order from the cart contents. On success the
// caller is expected to clear the cart.
func (c *Client) CreateOrder(ctx context.Context, req domain.OrderRequest) (domain.Order, error) {
	var order domain.Order
	err := c.do(ctx, http.MethodPost, "/api/orders", nil, req, &order)
	return order, err
}

// ListMyOrders returns the authenticated customer's own orders.
func (c *Client) ListMyOrders(ctx context.Context, params ListOrdersParams) (OrderPage, error) {
	var page OrderPage
	err := c.do(ctx, http.MethodGet, "/api/orders/my-orders", params.query(), nil, &page)
	return page, err
}

// ListOrdersAdmin returns all orders. Requires the Administrator role.
func (c *Client) ListOrdersAdmin(ctx context.Context, params ListOrdersParams) (OrderPage, error) {
	var page OrderPage
	err := c.do(ctx, http.MethodGet, "/api/orders/admin", params.query(), nil, &page)
	return page, err
}

func (c *Client) GetOrder(ctx context.Context, orderID string) (domain.Order, error) {
	var order domain.Order
	err := c.do(ctx, http.MethodGet, "/api/orders/"+orderID, nil, nil, &order)
	return order, err
}

type updateStatusRequest struct {
	NewStatus domain.OrderStatus `json:"newStatus"`
}

// UpdateOrderStatus moves an order through its lifecycle. Requires the
// Administrator role.
func (c *Client) UpdateOrderStatus(ctx context.Context, orderID string, status domain.OrderStatus) (domain.Order, error) {
	var order domain.Order
	err := c.do(ctx, http.MethodPut, "/api/orders/"+orderID+"/status", nil,
		updateStatusRequest{NewStatus: status}, &order)
	return order, err
}
