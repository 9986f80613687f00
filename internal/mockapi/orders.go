package mockapi

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/lautaroCastilloJ/storefront/internal/domain"
)

func (s *Server) handleCreateOrder(w http.ResponseWriter, r *http.Request) {
	c := claimsFrom(r.Context())
	if c.CustomerID == "" {
		respondError(w, r, http.StatusForbidden, "NOT_A_CUSTOMER", "only customers can place orders")
		return
	}

	var req domain.OrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, r, http.StatusBadRequest, "INVALID_REQUEST", "invalid JSON body")
		return
	}
	if len(req.OrderItems) == 0 {
		respondError(w, r, http.StatusBadRequest, "EMPTY_ORDER", "order must contain at least one item")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	// The backend is the price and stock authority: items are re-priced
	// from the catalog, regardless of what the client sent.
	var total float64
	items := make([]domain.OrderItem, 0, len(req.OrderItems))
	for _, it := range req.OrderItems {
		if it.Quantity < 1 {
			respondError(w, r, http.StatusBadRequest, "INVALID_QUANTITY", "quantity must be positive")
			return
		}
		p, ok := s.findProduct(it.ProductID)
		if !ok || p.Status != domain.ProductStatusActive {
			respondError(w, r, http.StatusBadRequest, "PRODUCT_NOT_AVAILABLE",
				"product "+it.ProductID+" is not available")
			return
		}
		if it.Quantity > p.StockQuantity {
			respondError(w, r, http.StatusBadRequest, "INSUFFICIENT_STOCK",
				"not enough stock for "+p.Name)
			return
		}
		item := domain.OrderItem{
			ProductID: p.ID,
			Quantity:  it.Quantity,
			UnitPrice: p.CurrentUnitPrice,
		}
		total += item.UnitPrice * float64(item.Quantity)
		items = append(items, item)
	}

	order := domain.Order{
		ID:              uuid.NewString(),
		CustomerID:      c.CustomerID,
		Status:          domain.OrderStatusPending,
		ShippingAddress: req.ShippingAddress,
		BillingAddress:  req.BillingAddress,
		Notes:           req.Notes,
		TotalAmount:     total,
		Items:           items,
		CreatedAt:       time.Now().UTC(),
	}
	s.orders = append(s.orders, order)

	respondJSON(w, http.StatusCreated, order)
}

func (s *Server) handleMyOrders(w http.ResponseWriter, r *http.Request) {
	c := claimsFrom(r.Context())
	if c.CustomerID == "" {
		respondError(w, r, http.StatusForbidden, "NOT_A_CUSTOMER", "only customers have own orders")
		return
	}
	s.listOrders(w, r, c.CustomerID)
}

func (s *Server) handleListOrdersAdmin(w http.ResponseWriter, r *http.Request) {
	s.listOrders(w, r, r.URL.Query().Get("customerId"))
}

func (s *Server) listOrders(w http.ResponseWriter, r *http.Request, customerID string) {
	q := r.URL.Query()
	status := q.Get("status")
	pageNumber, _ := strconv.Atoi(q.Get("pageNumber"))
	pageSize, _ := strconv.Atoi(q.Get("pageSize"))

	s.mu.RLock()
	defer s.mu.RUnlock()

	var filtered []domain.Order
	for _, o := range s.orders {
		if customerID != "" && o.CustomerID != customerID {
			continue
		}
		if status != "" && string(o.Status) != status {
			continue
		}
		filtered = append(filtered, o)
	}

	respondJSON(w, http.StatusOK, paginate(filtered, pageNumber, pageSize))
}

func (s *Server) handleGetOrder(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "order_id")
	c := claimsFrom(r.Context())

	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, o := range s.orders {
		if o.ID != id {
			continue
		}
		// Customers can only read their own orders.
		if c.Role != domain.RoleAdministrator && o.CustomerID != c.CustomerID {
			break
		}
		respondJSON(w, http.StatusOK, o)
		return
	}
	respondError(w, r, http.StatusNotFound, "ORDER_NOT_FOUND", "order not found")
}

type updateStatusRequest struct {
	NewStatus domain.OrderStatus `json:"newStatus"`
}

func (s *Server) handleUpdateOrderStatus(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "order_id")

	var req updateStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, r, http.StatusBadRequest, "INVALID_REQUEST", "invalid JSON body")
		return
	}
	if !req.NewStatus.Valid() {
		respondError(w, r, http.StatusBadRequest, "INVALID_STATUS",
			"unknown order status '"+string(req.NewStatus)+"'")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.orders {
		if s.orders[i].ID == id {
			s.orders[i].Status = req.NewStatus
			respondJSON(w, http.StatusOK, s.orders[i])
			return
		}
	}
	respondError(w, r, http.StatusNotFound, "ORDER_NOT_FOUND", "order not found")
}

func (s *Server) findProduct(id string) (domain.Product, bool) {
	for _, p := range s.products {
		if p.ID == id {
			return p, true
		}
	}
	return domain.Product{}, false
}
