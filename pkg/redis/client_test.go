package redis

import (
	"testing"

	"github.com/bloomcart/checkout-backend/pkg/config"
)

func TestOptionsFromConfigRequiresTarget(t *testing.T) {
	if _, err := optionsFromConfig(config.RedisConfig{}); err == nil {
		t.Fatal("expected error when neither url nor address is set")
	}
}

func TestOptionsFromConfigParsesURL(t *testing.T) {
	opts, err := optionsFromConfig(config.RedisConfig{
		URL:      "redis://:sekret@localhost:6380/2",
		PoolSize: 15,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if opts.Addr != "localhost:6380" {
		t.Fatalf("unexpected addr %q", opts.Addr)
	}
	if opts.DB != 2 {
		t.Fatalf("unexpected db %d", opts.DB)
	}
	if opts.Password != "sekret" {
		t.Fatalf("unexpected password %q", opts.Password)
	}
	if opts.PoolSize != 15 {
		t.Fatalf("pool size from config should apply, got %d", opts.PoolSize)
	}
}

func TestKeyBuilders(t *testing.T) {
	c := &Client{}
	if got := c.CheckoutSessionKey("abc"); got != "bc:checkout_session:abc" {
		t.Fatalf("unexpected session key %q", got)
	}
	if got := c.CartKey("user-1"); got != "bc:cart:user-1" {
		t.Fatalf("unexpected cart key %q", got)
	}
	if got := c.RateLimitKey("submit"); got != "bc:rate_limit:submit" {
		t.Fatalf("unexpected rate limit key %q", got)
	}
}
