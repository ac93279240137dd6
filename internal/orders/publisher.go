// Package orders forwards completed checkouts to the remote orders service.
package orders

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/bloomcart/checkout-backend/internal/checkout"
	"github.com/bloomcart/checkout-backend/pkg/config"
)

type httpPublisher struct {
	baseURL string
	client  *http.Client
}

// NewHTTPPublisher builds the publisher over the remote orders API.
func NewHTTPPublisher(cfg config.OrdersAPIConfig) (checkout.CompletePublisher, error) {
	base := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if base == "" {
		return nil, fmt.Errorf("orders api base url required")
	}
	if _, err := url.Parse(base); err != nil {
		return nil, fmt.Errorf("parsing orders api base url: %w", err)
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &httpPublisher{
		baseURL: base,
		client:  &http.Client{Timeout: timeout},
	}, nil
}

func (p *httpPublisher) Publish(ctx context.Context, summary *checkout.OrderSummary) error {
	payload, err := json.Marshal(summary)
	if err != nil {
		return fmt.Errorf("encoding order summary: %w", err)
	}

	endpoint := fmt.Sprintf("%s/v1/orders", p.baseURL)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("building orders request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	// Retries after a publish failure resend the same order id; the orders
	// service dedupes on it.
	req.Header.Set("Idempotency-Key", summary.OrderID)

	resp, err := p.client.Do(req)
	if err != nil {
		return fmt.Errorf("publishing order: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated && resp.StatusCode != http.StatusOK {
		return fmt.Errorf("orders api returned %d", resp.StatusCode)
	}
	return nil
}
