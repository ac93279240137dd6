package payment

import (
	"context"
	"fmt"
	"regexp"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/bloomcart/checkout-backend/pkg/config"
)

var nonDigits = regexp.MustCompile(`\D`)

// Simulator stands in for a real processor. It waits the configured latency
// and declines a single designated test card so failure paths stay
// exercisable end to end.
type Simulator struct {
	latency     time.Duration
	declineCard string
}

// NewSimulator builds the simulated gateway from config.
func NewSimulator(cfg config.PaymentConfig) *Simulator {
	return &Simulator{
		latency:     cfg.Latency,
		declineCard: nonDigits.ReplaceAllString(cfg.DeclineCard, ""),
	}
}

func (s *Simulator) Charge(ctx context.Context, req ChargeRequest) (*ChargeResult, error) {
	if req.Amount.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("charge amount must be positive, got %s", req.Amount)
	}

	if s.latency > 0 {
		timer := time.NewTimer(s.latency)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-timer.C:
		}
	}

	if s.declineCard != "" && nonDigits.ReplaceAllString(req.CardNumber, "") == s.declineCard {
		return nil, ErrDeclined
	}

	return &ChargeResult{Reference: "sim_" + uuid.NewString()}, nil
}
