package orders

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/bloomcart/checkout-backend/internal/checkout"
	"github.com/bloomcart/checkout-backend/pkg/config"
)

func TestPublishPostsSummary(t *testing.T) {
	var gotPath, gotKey string
	var gotBody map[string]any
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotKey = r.Header.Get("Idempotency-Key")
		if err := json.NewDecoder(r.Body).Decode(&gotBody); err != nil {
			t.Errorf("decoding body: %v", err)
		}
		w.WriteHeader(http.StatusCreated)
	}))
	defer server.Close()

	publisher, err := NewHTTPPublisher(config.OrdersAPIConfig{BaseURL: server.URL})
	if err != nil {
		t.Fatalf("publisher failed: %v", err)
	}

	summary := &checkout.OrderSummary{
		OrderID:  "ORD-1700000000000",
		Total:    "70.25",
		PlacedAt: time.Now(),
	}
	if err := publisher.Publish(context.Background(), summary); err != nil {
		t.Fatalf("publish failed: %v", err)
	}
	if gotPath != "/v1/orders" {
		t.Fatalf("unexpected path %q", gotPath)
	}
	if gotKey != "ORD-1700000000000" {
		t.Fatalf("unexpected idempotency key %q", gotKey)
	}
	if gotBody["order_id"] != "ORD-1700000000000" || gotBody["total"] != "70.25" {
		t.Fatalf("unexpected body %v", gotBody)
	}
}

func TestPublishRejectsNon2xx(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	publisher, err := NewHTTPPublisher(config.OrdersAPIConfig{BaseURL: server.URL})
	if err != nil {
		t.Fatalf("publisher failed: %v", err)
	}
	if err := publisher.Publish(context.Background(), &checkout.OrderSummary{OrderID: "ORD-1"}); err == nil {
		t.Fatal("expected error for 502 response")
	}
}

func TestNewHTTPPublisherRequiresBaseURL(t *testing.T) {
	if _, err := NewHTTPPublisher(config.OrdersAPIConfig{}); err == nil {
		t.Fatal("expected error for missing base url")
	}
}
