package domain

import "time"

type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "Pending"
	OrderStatusProcessing OrderStatus = "Processing"
	OrderStatusShipped    OrderStatus = "Shipped"
	OrderStatusDelivered  OrderStatus = "Delivered"
	OrderStatusCancelled  OrderStatus = "Cancelled"
)

func (s OrderStatus) Valid() bool {
	switch s {
	case OrderStatusPending, OrderStatusProcessing, OrderStatusShipped,
		OrderStatusDelivered, OrderStatusCancelled:
		return true
	}
	return false
}

// OrderItem is one line of an order request, priced with the unit price the
// customer saw in the cart. The backend is the price authority and may
// reject a stale price.
type OrderItem struct {
	ProductID string  `json:"productId"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unitPrice"`
}

type OrderRequest struct {
	ShippingAddress string      `json:"shippingAddress"`
	BillingAddress  string      `json:"billingAddress"`
	Notes           string      `json:"notes"`
	OrderItems      []OrderItem `json:"orderItems"`
}

type Order struct {
	ID              string      `json:"id"`
	CustomerID      string      `json:"customerId"`
	Status          OrderStatus `json:"status"`
	ShippingAddress string      `json:"shippingAddress"`
	BillingAddress  string      `json:"billingAddress"`
	Notes           string      `json:"notes"`
	TotalAmount     float64     `json:"totalAmount"`
	Items           []OrderItem `json:"orderItems"`
	CreatedAt       time.Time   `json:"createdAt"`
}
