package profile

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"

	"github.com/bloomcart/checkout-backend/pkg/config"
)

func TestFetchDecodesProfile(t *testing.T) {
	userID := uuid.New()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/users/"+userID.String()+"/profile" {
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"data":{"first_name":"Jane","last_name":"Doe","email":"jane@example.com","city":"Portland"}}`))
	}))
	defer srv.Close()

	source, err := NewHTTPSource(config.ProfileAPIConfig{BaseURL: srv.URL})
	if err != nil {
		t.Fatalf("source failed: %v", err)
	}

	got, err := source.Fetch(context.Background(), userID)
	if err != nil {
		t.Fatalf("fetch failed: %v", err)
	}
	if got == nil || got.FirstName != "Jane" || got.Email != "jane@example.com" {
		t.Fatalf("unexpected profile %+v", got)
	}
}

func TestFetchMissingProfileIsNil(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	source, err := NewHTTPSource(config.ProfileAPIConfig{BaseURL: srv.URL})
	if err != nil {
		t.Fatalf("source failed: %v", err)
	}

	got, err := source.Fetch(context.Background(), uuid.New())
	if err != nil {
		t.Fatalf("fetch failed: %v", err)
	}
	if got != nil {
		t.Fatalf("expected nil profile, got %+v", got)
	}
}

func TestNewHTTPSourceWithoutBaseURL(t *testing.T) {
	source, err := NewHTTPSource(config.ProfileAPIConfig{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if source != nil {
		t.Fatal("expected nil source when base url unset")
	}
}
