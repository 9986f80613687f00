package domain

// LineItem is one product-quantity pairing in the cart. The display fields
// are a snapshot of the product taken when the line was first added, so the
// cart keeps rendering even if the catalog entry changes afterwards.
type LineItem struct {
	ProductID      string  `json:"product_id"`
	Name           string  `json:"name"`
	SKU            string  `json:"sku"`
	UnitPrice      float64 `json:"unit_price"`
	ImageURL       string  `json:"image_url"`
	AvailableStock int     `json:"available_stock"`
	Quantity       int     `json:"quantity"`
}

// Subtotal is the line's contribution to the cart total.
func (li LineItem) Subtotal() float64 {
	return li.UnitPrice * float64(li.Quantity)
}

// NewLineItem snapshots a product into a cart line.
func NewLineItem(p Product, quantity int) LineItem {
	return LineItem{
		ProductID:      p.ID,
		Name:           p.Name,
		SKU:            p.SKU,
		UnitPrice:      p.CurrentUnitPrice,
		ImageURL:       p.ImageURL,
		AvailableStock: p.StockQuantity,
		Quantity:       quantity,
	}
}
