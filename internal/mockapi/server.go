// Package mockapi is a self-contained stand-in for the commerce backend,
// good enough to run the CLI against during development and to back the
// client tests. It keeps everything in memory.
package mockapi

import (
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"

	"github.com/lautaroCastilloJ/storefront/internal/domain"
)

type user struct {
	Username   string
	Password   string
	Role       domain.Role
	CustomerID string
}

type Server struct {
	secret   []byte
	tokenTTL time.Duration

	mu       sync.RWMutex
	users    map[string]user
	products []domain.Product
	orders   []domain.Order

	router chi.Router
}

func NewServer(secret string) *Server {
	s := &Server{
		secret:   []byte(secret),
		tokenTTL: time.Hour,
		users:    make(map[string]user),
	}
	s.seed()

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Post("/api/auth/login", s.handleLogin)
	r.Post("/api/auth/register", s.handleRegister)

	r.Get("/api/products", s.handleListProducts)
	r.Get("/api/products/{product_id}", s.handleGetProduct)

	r.Group(func(r chi.Router) {
		r.Use(s.requireAuth)
		r.Post("/api/orders", s.handleCreateOrder)
		r.Get("/api/orders/my-orders", s.handleMyOrders)
		r.Get("/api/orders/{order_id}", s.handleGetOrder)
	})

	r.Group(func(r chi.Router) {
		r.Use(s.requireAuth, s.requireAdmin)
		r.Get("/api/products/admin", s.handleListProductsAdmin)
		r.Post("/api/products", s.handleCreateProduct)
		r.Put("/api/products/{product_id}", s.handleUpdateProduct)
		r.Patch("/api/products/{product_id}/enable", s.handleEnableProduct)
		r.Patch("/api/products/{product_id}/disable", s.handleDisableProduct)
		r.Get("/api/orders/admin", s.handleListOrdersAdmin)
		r.Put("/api/orders/{order_id}/status", s.handleUpdateOrderStatus)
	})

	s.router = r
	return s
}

func (s *Server) Handler() http.Handler {
	return s.router
}

// seed loads the demo users and a small catalog.
func (s *Server) seed() {
	s.users["cliente1"] = user{
		Username:   "cliente1",
		Password:   "password123",
		Role:       domain.RoleCustomer,
		CustomerID: uuid.NewString(),
	}
	s.users["admin"] = user{
		Username: "admin",
		Password: "admin123",
		Role:     domain.RoleAdministrator,
	}

	s.products = []domain.Product{
		{
			ID:               uuid.NewString(),
			SKU:              "NB-100",
			InternalCode:     "INT-2001",
			Name:             "Laptop",
			Description:      "14 inch, 16GB RAM",
			CurrentUnitPrice: 1299.99,
			StockQuantity:    12,
			Status:           domain.ProductStatusActive,
		},
		{
			ID:               uuid.NewString(),
			SKU:              "KB-200",
			InternalCode:     "INT-2002",
			Name:             "Mechanical Keyboard",
			Description:      "Tenkeyless, brown switches",
			CurrentUnitPrice: 89.50,
			StockQuantity:    40,
			Status:           domain.ProductStatusActive,
		},
		{
			ID:               uuid.NewString(),
			SKU:              "MS-300",
			InternalCode:     "INT-2003",
			Name:             "Wireless Mouse",
			Description:      "Discontinued model",
			CurrentUnitPrice: 25.00,
			StockQuantity:    0,
			Status:           domain.ProductStatusInactive,
		},
	}
}
