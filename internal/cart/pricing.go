package cart

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/bloomcart/checkout-backend/pkg/config"
	"github.com/bloomcart/checkout-backend/pkg/enums"
)

// Pricing holds the parsed money knobs used for every quote.
type Pricing struct {
	TaxRate               decimal.Decimal
	FreeShippingThreshold decimal.Decimal
	Rates                 map[enums.ShippingMethod]decimal.Decimal
}

// NewPricing parses the string-typed cart config into decimals once.
func NewPricing(cfg config.CartConfig) (Pricing, error) {
	taxRate, err := decimal.NewFromString(cfg.TaxRate)
	if err != nil {
		return Pricing{}, fmt.Errorf("parsing tax rate %q: %w", cfg.TaxRate, err)
	}
	threshold, err := decimal.NewFromString(cfg.FreeShippingThreshold)
	if err != nil {
		return Pricing{}, fmt.Errorf("parsing free shipping threshold %q: %w", cfg.FreeShippingThreshold, err)
	}
	rates := map[enums.ShippingMethod]decimal.Decimal{}
	for method, raw := range map[enums.ShippingMethod]string{
		enums.ShippingMethodStandard:  cfg.StandardRate,
		enums.ShippingMethodExpress:   cfg.ExpressRate,
		enums.ShippingMethodOvernight: cfg.OvernightRate,
	} {
		rate, err := decimal.NewFromString(raw)
		if err != nil {
			return Pricing{}, fmt.Errorf("parsing %s shipping rate %q: %w", method, raw, err)
		}
		rates[method] = rate
	}
	return Pricing{
		TaxRate:               taxRate,
		FreeShippingThreshold: threshold,
		Rates:                 rates,
	}, nil
}

// Totals computes subtotal, shipping, tax, and total for the given items.
// Standard shipping is free once the subtotal reaches the threshold.
func (p Pricing) Totals(items []Item, method enums.ShippingMethod) Totals {
	subtotal := decimal.Zero
	for _, item := range items {
		subtotal = subtotal.Add(item.UnitPrice.Mul(decimal.NewFromInt(int64(item.Quantity))))
	}
	subtotal = subtotal.Round(2)

	shipping := p.Rates[method]
	if method == enums.ShippingMethodStandard && subtotal.GreaterThanOrEqual(p.FreeShippingThreshold) {
		shipping = decimal.Zero
	}

	tax := subtotal.Mul(p.TaxRate).Round(2)

	return Totals{
		Subtotal: subtotal,
		Shipping: shipping,
		Tax:      tax,
		Total:    subtotal.Add(shipping).Add(tax).Round(2),
	}
}
