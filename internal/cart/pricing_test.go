package cart

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/bloomcart/checkout-backend/pkg/config"
	"github.com/bloomcart/checkout-backend/pkg/enums"
)

func defaultPricingConfig() config.CartConfig {
	return config.CartConfig{
		TaxRate:               "0.08",
		FreeShippingThreshold: "100",
		StandardRate:          "5.99",
		ExpressRate:           "12.99",
		OvernightRate:         "24.99",
	}
}

func TestNewPricingParsesConfig(t *testing.T) {
	pricing, err := NewPricing(defaultPricingConfig())
	require.NoError(t, err)
	require.True(t, pricing.TaxRate.Equal(decimal.RequireFromString("0.08")))
	require.True(t, pricing.Rates[enums.ShippingMethodOvernight].Equal(decimal.RequireFromString("24.99")))
}

func TestNewPricingRejectsBadRate(t *testing.T) {
	cfg := defaultPricingConfig()
	cfg.ExpressRate = "cheap"
	_, err := NewPricing(cfg)
	require.Error(t, err)
}

func TestPricingTotals(t *testing.T) {
	pricing, err := NewPricing(defaultPricingConfig())
	require.NoError(t, err)

	line := func(price string, qty int) Item {
		return Item{UnitPrice: decimal.RequireFromString(price), Quantity: qty}
	}

	cases := []struct {
		name     string
		items    []Item
		method   enums.ShippingMethod
		subtotal string
		shipping string
		tax      string
		total    string
	}{
		{
			name:     "express below threshold",
			items:    []Item{line("10.00", 3)},
			method:   enums.ShippingMethodExpress,
			subtotal: "30",
			shipping: "12.99",
			tax:      "2.4",
			total:    "45.39",
		},
		{
			name:     "standard below threshold pays shipping",
			items:    []Item{line("39.50", 2)},
			method:   enums.ShippingMethodStandard,
			subtotal: "79",
			shipping: "5.99",
			tax:      "6.32",
			total:    "91.31",
		},
		{
			name:     "standard at threshold ships free",
			items:    []Item{line("50.00", 2)},
			method:   enums.ShippingMethodStandard,
			subtotal: "100",
			shipping: "0",
			tax:      "8",
			total:    "108",
		},
		{
			name:     "overnight never ships free",
			items:    []Item{line("200.00", 1)},
			method:   enums.ShippingMethodOvernight,
			subtotal: "200",
			shipping: "24.99",
			tax:      "16",
			total:    "240.99",
		},
		{
			name:     "empty cart",
			items:    nil,
			method:   enums.ShippingMethodStandard,
			subtotal: "0",
			shipping: "5.99",
			tax:      "0",
			total:    "5.99",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			totals := pricing.Totals(tc.items, tc.method)
			require.True(t, totals.Subtotal.Equal(decimal.RequireFromString(tc.subtotal)), "subtotal %s", totals.Subtotal)
			require.True(t, totals.Shipping.Equal(decimal.RequireFromString(tc.shipping)), "shipping %s", totals.Shipping)
			require.True(t, totals.Tax.Equal(decimal.RequireFromString(tc.tax)), "tax %s", totals.Tax)
			require.True(t, totals.Total.Equal(decimal.RequireFromString(tc.total)), "total %s", totals.Total)
		})
	}
}
