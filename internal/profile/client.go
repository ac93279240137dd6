package profile

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/bloomcart/checkout-backend/pkg/config"
)

type httpSource struct {
	baseURL string
	client  *http.Client
}

// NewHTTPSource builds a Source over the remote accounts API. Returns nil
// when no base URL is configured; callers treat a nil Source as "no profile".
func NewHTTPSource(cfg config.ProfileAPIConfig) (Source, error) {
	base := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if base == "" {
		return nil, nil
	}
	if _, err := url.Parse(base); err != nil {
		return nil, fmt.Errorf("parsing profile api base url: %w", err)
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &httpSource{
		baseURL: base,
		client:  &http.Client{Timeout: timeout},
	}, nil
}

func (s *httpSource) Fetch(ctx context.Context, userID uuid.UUID) (*Profile, error) {
	endpoint := fmt.Sprintf("%s/v1/users/%s/profile", s.baseURL, userID)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("building profile request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching profile: %w", err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return nil, nil
	case resp.StatusCode != http.StatusOK:
		return nil, fmt.Errorf("profile api returned %d", resp.StatusCode)
	}

	var payload struct {
		Data Profile `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("decoding profile: %w", err)
	}
	return &payload.Data, nil
}
