package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/lautaroCastilloJ/storefront/internal/domain"
)

// ListProductsParams is a pass-through of the backend's paging and filter
// query parameters. Zero values are omitted from the query.
type ListProductsParams struct {
	Search     string
	Status     string
	PageNumber int
	PageSize   int
}

// The product endpoints take PascalCase query parameters.
func (p ListProductsParams) query() url.Values {
	q := url.Values{}
	if p.Search != "" {
		q.Set("Search", p.Search)
	}
	if p.Status != "" {
		q.Set("Status", p.Status)
	}
	if p.PageNumber > 0 {
		q.Set("PageNumber", strconv.Itoa(p.PageNumber))
	}
	if p.PageSize > 0 {
		q.Set("PageSize", strconv.Itoa(p.PageSize))
	}
	return q
}

// ProductPage is the backend's paged product listing.
type ProductPage struct {
	Items       []domain.Product `json:"items"`
	TotalCount  int              `json:"totalCount"`
	TotalPages  int              `json:"totalPages"`
	PageNumber  int              `json:"pageNumber"`
	PageSize    int              `json:"pageSize"`
	HasNext     bool             `json:"hasNext"`
	HasPrevious bool             `json:"hasPrevious"`
}

// ListProducts returns the public catalog page (active products only).
func (c *Client) ListProducts(ctx context.Context, params ListProductsParams) (ProductPage, error) {
	var page ProductPage
	err := c.do(ctx, http.MethodGet, "/api/products", params.query(), nil, &page)
	return page, err
}

// ListProductsAdmin returns the full catalog page, inactive products
// included. Requires the Administrator role.
func (c *Client) ListProductsAdmin(ctx context.Context, params ListProductsParams) (ProductPage, error) {
	var page ProductPage
	err := c.do(ctx, http.MethodGet, "/api/products/admin", params.query(), nil, &page)
	return page, err
}

func (c *Client) GetProduct(ctx context.Context, productID string) (domain.Product, error) {
	var p domain.Product
	err := c.do(ctx, http.MethodGet, "/api/products/"+productID, nil, nil, &p)
	return p, err
}

// CreateProductRequest carries the fields the backend accepts on create
// and update.
type CreateProductRequest struct {
	SKU              string  `json:"sku"`
	InternalCode     string  `json:"internalCode"`
	Name             string  `json:"name"`
	Description      string  `json:"description"`
	CurrentUnitPrice float64 `json:"currentUnitPrice"`
	StockQuantity    int     `json:"stockQuantity"`
	ImageURL         string  `json:"imageUrl,omitempty"`
}

func (c *Client) CreateProduct(ctx context.Context, req CreateProductRequest) (domain.Product, error) {
	var p domain.Product
	err := c.do(ctx, http.MethodPost, "/api/products", nil, req, &p)
	return p, err
}

func (c *Client) UpdateProduct(ctx context.Context, productID string, req CreateProductRequest) (domain.Product, error) {
	var p domain.Product
	err := c.do(ctx, http.MethodPut, "/api/products/"+productID, nil, req, &p)
	return p, err
}

// SetProductEnabled toggles a product in or out of the public catalog.
func (c *Client) SetProductEnabled(ctx context.Context, productID string, enabled bool) error {
	action := "disable"
	if enabled {
		action = "enable"
	}
	path := fmt.Sprintf("/api/products/%s/%s", productID, action)
	return c.do(ctx, http.MethodPatch, path, nil, nil, nil)
}
