package payment

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"
)

// ErrDeclined is returned when the processor rejects the charge.
var ErrDeclined = errors.New("payment declined")

// ChargeRequest carries everything the processor needs for one charge.
type ChargeRequest struct {
	Amount     decimal.Decimal
	Currency   string
	CardNumber string
	Expiry     string
	CVV        string
	Holder     string
}

// ChargeResult identifies a settled charge.
type ChargeResult struct {
	Reference string
}

// Gateway processes a single charge. No retry or cancellation semantics;
// callers surface a failure once and the user retries manually.
type Gateway interface {
	Charge(ctx context.Context, req ChargeRequest) (*ChargeResult, error)
}
