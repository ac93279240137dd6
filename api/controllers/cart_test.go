package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	cartsvc "github.com/bloomcart/checkout-backend/internal/cart"
	"github.com/bloomcart/checkout-backend/pkg/enums"
)

type stubCartService struct {
	cart  *cartsvc.Cart
	quote *cartsvc.Quote
	err   error

	lastInput cartsvc.ItemInput
	calls     int
}

func (s *stubCartService) Get(context.Context, uuid.UUID) (*cartsvc.Cart, error) {
	return s.cart, s.err
}

func (s *stubCartService) Quote(_ context.Context, _ uuid.UUID, method enums.ShippingMethod) (*cartsvc.Quote, error) {
	if s.err != nil {
		return nil, s.err
	}
	quote := *s.quote
	quote.Method = method
	return &quote, nil
}

func (s *stubCartService) AddItem(_ context.Context, _ uuid.UUID, input cartsvc.ItemInput) (*cartsvc.Cart, error) {
	s.lastInput = input
	s.calls++
	return s.cart, s.err
}

func (s *stubCartService) UpdateItemQuantity(context.Context, uuid.UUID, uuid.UUID, int) (*cartsvc.Cart, error) {
	return s.cart, s.err
}

func (s *stubCartService) RemoveItem(context.Context, uuid.UUID, uuid.UUID) (*cartsvc.Cart, error) {
	return s.cart, s.err
}

func (s *stubCartService) Clear(context.Context, uuid.UUID) error {
	return s.err
}

func TestCartAddItemSuccess(t *testing.T) {
	t.Parallel()

	userID := uuid.New()
	productID := uuid.New()
	svc := &stubCartService{cart: &cartsvc.Cart{Items: []cartsvc.Item{{ID: uuid.New(), ProductID: productID}}}}
	handler := CartAddItem(svc, nil)

	body := `{"product_id":"` + productID.String() + `","name":"Linen Shirt","unit_price":"39.50","quantity":2,"size":"M"}`
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, authedRequest(http.MethodPost, "/api/v1/cart/items", body, userID))

	if resp.Code != http.StatusCreated {
		t.Fatalf("expected 201 got %d: %s", resp.Code, resp.Body.String())
	}
	if svc.lastInput.ProductID != productID {
		t.Fatalf("unexpected product id %s", svc.lastInput.ProductID)
	}
	if !svc.lastInput.UnitPrice.Equal(decimal.RequireFromString("39.50")) {
		t.Fatalf("unexpected unit price %s", svc.lastInput.UnitPrice)
	}
	if svc.lastInput.Quantity != 2 || svc.lastInput.Size != "M" {
		t.Fatalf("unexpected input %+v", svc.lastInput)
	}
}

func TestCartAddItemInvalidPrice(t *testing.T) {
	t.Parallel()

	svc := &stubCartService{cart: &cartsvc.Cart{}}
	handler := CartAddItem(svc, nil)

	body := `{"product_id":"` + uuid.NewString() + `","name":"Mug","unit_price":"ten dollars","quantity":1}`
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, authedRequest(http.MethodPost, "/api/v1/cart/items", body, uuid.New()))

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", resp.Code)
	}
	if svc.calls != 0 {
		t.Fatal("service must not be called with an unparseable price")
	}
}

func TestCartAddItemMissingFields(t *testing.T) {
	t.Parallel()

	handler := CartAddItem(&stubCartService{cart: &cartsvc.Cart{}}, nil)

	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, authedRequest(http.MethodPost, "/api/v1/cart/items", `{}`, uuid.New()))

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", resp.Code)
	}

	var envelope struct {
		Error struct {
			Details map[string]string `json:"details"`
		} `json:"error"`
	}
	if err := json.Unmarshal(resp.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if envelope.Error.Details["name"] != "is required" {
		t.Fatalf("expected name detail, got %v", envelope.Error.Details)
	}
}

func TestCartQuoteDefaultsToStandard(t *testing.T) {
	t.Parallel()

	svc := &stubCartService{quote: &cartsvc.Quote{}}
	handler := CartQuote(svc, nil)

	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, authedRequest(http.MethodGet, "/api/v1/cart/quote", "", uuid.New()))

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", resp.Code)
	}

	var envelope struct {
		Data cartsvc.Quote `json:"data"`
	}
	if err := json.Unmarshal(resp.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if envelope.Data.Method != enums.ShippingMethodStandard {
		t.Fatalf("expected standard method, got %s", envelope.Data.Method)
	}
}

func TestCartQuoteRejectsUnknownMethod(t *testing.T) {
	t.Parallel()

	handler := CartQuote(&stubCartService{quote: &cartsvc.Quote{}}, nil)

	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, authedRequest(http.MethodGet, "/api/v1/cart/quote?method=teleport", "", uuid.New()))

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", resp.Code)
	}
}

func TestCartFetchRequiresAuth(t *testing.T) {
	t.Parallel()

	handler := CartFetch(&stubCartService{cart: &cartsvc.Cart{}}, nil)

	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/api/v1/cart", nil))

	if resp.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 got %d", resp.Code)
	}
}
