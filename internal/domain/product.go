package domain

type ProductStatus string

const (
	ProductStatusActive   ProductStatus = "Active"
	ProductStatusInactive ProductStatus = "Inactive"
)

type Product struct {
	ID               string        `json:"id"`
	SKU              string        `json:"sku"`
	InternalCode     string        `json:"internalCode"`
	Name             string        `json:"name"`
	Description      string        `json:"description"`
	CurrentUnitPrice float64       `json:"currentUnitPrice"`
	StockQuantity    int           `json:"stockQuantity"`
	ImageURL         string        `json:"imageUrl"`
	Status           ProductStatus `json:"status"`
}
