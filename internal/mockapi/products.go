package mockapi

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/lautaroCastilloJ/storefront/internal/domain"
)

func (s *Server) handleListProducts(w http.ResponseWriter, r *http.Request) {
	s.listProducts(w, r, false)
}

func (s *Server) handleListProductsAdmin(w http.ResponseWriter, r *http.Request) {
	s.listProducts(w, r, true)
}

func (s *Server) listProducts(w http.ResponseWriter, r *http.Request, includeInactive bool) {
	q := r.URL.Query()
	search := strings.ToLower(q.Get("Search"))
	status := q.Get("Status")
	pageNumber, _ := strconv.Atoi(q.Get("PageNumber"))
	pageSize, _ := strconv.Atoi(q.Get("PageSize"))

	s.mu.RLock()
	defer s.mu.RUnlock()

	var filtered []domain.Product
	for _, p := range s.products {
		if !includeInactive && p.Status != domain.ProductStatusActive {
			continue
		}
		if status != "" && string(p.Status) != status {
			continue
		}
		if search != "" &&
			!strings.Contains(strings.ToLower(p.Name), search) &&
			!strings.Contains(strings.ToLower(p.SKU), search) {
			continue
		}
		filtered = append(filtered, p)
	}

	respondJSON(w, http.StatusOK, paginate(filtered, pageNumber, pageSize))
}

func (s *Server) handleGetProduct(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "product_id")

	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, p := range s.products {
		if p.ID == id {
			respondJSON(w, http.StatusOK, p)
			return
		}
	}
	respondError(w, r, http.StatusNotFound, "PRODUCT_NOT_FOUND", "product not found")
}

type productRequest struct {
	SKU              string  `json:"sku"`
	InternalCode     string  `json:"internalCode"`
	Name             string  `json:"name"`
	Description      string  `json:"description"`
	CurrentUnitPrice float64 `json:"currentUnitPrice"`
	StockQuantity    int     `json:"stockQuantity"`
	ImageURL         string  `json:"imageUrl"`
}

func (s *Server) handleCreateProduct(w http.ResponseWriter, r *http.Request) {
	var req productRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, r, http.StatusBadRequest, "INVALID_REQUEST", "invalid JSON body")
		return
	}
	if req.Name == "" || req.SKU == "" {
		respondError(w, r, http.StatusBadRequest, "INVALID_REQUEST", "name and sku are required")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for _, p := range s.products {
		if p.InternalCode == req.InternalCode {
			respondError(w, r, http.StatusBadRequest, "PRODUCT_ALREADY_EXISTS",
				"a product with InternalCode '"+req.InternalCode+"' already exists")
			return
		}
	}

	p := domain.Product{
		ID:               uuid.NewString(),
		SKU:              req.SKU,
		InternalCode:     req.InternalCode,
		Name:             req.Name,
		Description:      req.Description,
		CurrentUnitPrice: req.CurrentUnitPrice,
		StockQuantity:    req.StockQuantity,
		ImageURL:         req.ImageURL,
		Status:           domain.ProductStatusActive,
	}
	s.products = append(s.products, p)

	respondJSON(w, http.StatusCreated, p)
}

func (s *Server) handleUpdateProduct(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "product_id")

	var req productRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, r, http.StatusBadRequest, "INVALID_REQUEST", "invalid JSON body")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.products {
		if s.products[i].ID != id {
			continue
		}
		s.products[i].SKU = req.SKU
		s.products[i].InternalCode = req.InternalCode
		s.products[i].Name = req.Name
		s.products[i].Description = req.Description
		s.products[i].CurrentUnitPrice = req.CurrentUnitPrice
		s.products[i].StockQuantity = req.StockQuantity
		s.products[i].ImageURL = req.ImageURL
		respondJSON(w, http.StatusOK, s.products[i])
		return
	}
	respondError(w, r, http.StatusNotFound, "PRODUCT_NOT_FOUND", "product not found")
}

func (s *Server) handleEnableProduct(w http.ResponseWriter, r *http.Request) {
	s.setProductStatus(w, r, domain.ProductStatusActive)
}

func (s *Server) handleDisableProduct(w http.ResponseWriter, r *http.Request) {
	s.setProductStatus(w, r, domain.ProductStatusInactive)
}

func (s *Server) setProductStatus(w http.ResponseWriter, r *http.Request, status domain.ProductStatus) {
	id := chi.URLParam(r, "product_id")

	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.products {
		if s.products[i].ID == id {
			s.products[i].Status = status
			respondJSON(w, http.StatusOK, s.products[i])
			return
		}
	}
	respondError(w, r, http.StatusNotFound, "PRODUCT_NOT_FOUND", "product not found")
}
