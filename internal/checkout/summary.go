package checkout

import (
	"fmt"
	"time"

	"github.com/bloomcart/checkout-backend/internal/cart"
	"github.com/bloomcart/checkout-backend/pkg/enums"
)

// ShippingSnapshot freezes the shipping portion of the form at submission
// time; the live form is discarded with the session.
type ShippingSnapshot struct {
	FirstName            string               `json:"first_name"`
	LastName             string               `json:"last_name"`
	Email                string               `json:"email"`
	Phone                string               `json:"phone"`
	Address              string               `json:"address"`
	City                 string               `json:"city"`
	State                string               `json:"state"`
	Zip                  string               `json:"zip"`
	Country              string               `json:"country"`
	Method               enums.ShippingMethod `json:"method"`
	DeliveryInstructions string               `json:"delivery_instructions,omitempty"`
	IsGift               bool                 `json:"is_gift"`
	GiftMessage          string               `json:"gift_message,omitempty"`
}

// PaymentDescriptor carries only the method name and last four card digits.
// The full card number never leaves the session.
type PaymentDescriptor struct {
	Method string `json:"method"`
	Last4  string `json:"last4"`
}

// OrderSummary is the record handed to the order-complete publisher once per
// successful submission.
type OrderSummary struct {
	OrderID           string            `json:"order_id"`
	Total             string            `json:"total"`
	ItemCount         int               `json:"item_count"`
	Items             []cart.Item       `json:"items"`
	Shipping          ShippingSnapshot  `json:"shipping"`
	Payment           PaymentDescriptor `json:"payment"`
	EstimatedDelivery time.Time         `json:"estimated_delivery"`
	PlacedAt          time.Time         `json:"placed_at"`
}

func newOrderSummary(now time.Time, leadDays int, form FormState, quote *cart.Quote) *OrderSummary {
	items := append([]cart.Item(nil), quote.Items...)
	return &OrderSummary{
		OrderID:   fmt.Sprintf("ORD-%d", now.UnixMilli()),
		Total:     quote.Totals.Total.StringFixed(2),
		ItemCount: len(items),
		Items:     items,
		Shipping: ShippingSnapshot{
			FirstName:            form.FirstName,
			LastName:             form.LastName,
			Email:                form.Email,
			Phone:                form.Phone,
			Address:              form.Address,
			City:                 form.City,
			State:                form.State,
			Zip:                  form.Zip,
			Country:              form.Country,
			Method:               form.ShippingMethod,
			DeliveryInstructions: form.DeliveryInstructions,
			IsGift:               form.IsGift,
			GiftMessage:          form.GiftMessage,
		},
		Payment: PaymentDescriptor{
			Method: "card",
			Last4:  cardLast4(form.CardNumber),
		},
		EstimatedDelivery: now.AddDate(0, 0, leadDays),
		PlacedAt:          now,
	}
}

// cardLast4 strips display formatting before slicing so a trailing space from
// a mid-edit value can never leak into the descriptor.
func cardLast4(cardNumber string) string {
	digits := nonDigits.ReplaceAllString(cardNumber, "")
	if len(digits) <= 4 {
		return digits
	}
	return digits[len(digits)-4:]
}
