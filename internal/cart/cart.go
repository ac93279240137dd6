package cart

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/bloomcart/checkout-backend/pkg/enums"
)

// Item is one line of a user's cart. Variant attributes are free-form since
// the product catalog lives in a remote service.
type Item struct {
	ID        uuid.UUID       `json:"id"`
	ProductID uuid.UUID       `json:"product_id"`
	Name      string          `json:"name"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Quantity  int             `json:"quantity"`
	Size      string          `json:"size,omitempty"`
	Color     string          `json:"color,omitempty"`
	Variant   string          `json:"variant,omitempty"`
	ImageURL  string          `json:"image_url,omitempty"`
}

// Cart is the full cart document stored per user.
type Cart struct {
	Items     []Item    `json:"items"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Totals is the computed money breakdown for a cart.
type Totals struct {
	Subtotal decimal.Decimal `json:"subtotal"`
	Shipping decimal.Decimal `json:"shipping"`
	Tax      decimal.Decimal `json:"tax"`
	Total    decimal.Decimal `json:"total"`
}

// Quote pairs the cart contents with totals for a chosen shipping method.
type Quote struct {
	Items  []Item               `json:"items"`
	Method enums.ShippingMethod `json:"shipping_method"`
	Totals Totals               `json:"totals"`
}

// ItemCount returns the number of distinct lines in the cart.
func (c *Cart) ItemCount() int {
	if c == nil {
		return 0
	}
	return len(c.Items)
}
