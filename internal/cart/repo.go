package cart

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	redisclient "github.com/bloomcart/checkout-backend/pkg/redis"
)

// Repository stores one cart document per user. A missing document reads as
// an empty cart.
type Repository interface {
	Find(ctx context.Context, userID uuid.UUID) (*Cart, error)
	Save(ctx context.Context, userID uuid.UUID, cart *Cart) error
	Delete(ctx context.Context, userID uuid.UUID) error
}

type redisRepository struct {
	client *redisclient.Client
	ttl    time.Duration
}

// NewRedisRepository builds the Redis-backed cart repository.
func NewRedisRepository(client *redisclient.Client, ttl time.Duration) (Repository, error) {
	if client == nil {
		return nil, fmt.Errorf("redis client required")
	}
	return &redisRepository{client: client, ttl: ttl}, nil
}

func (r *redisRepository) Find(ctx context.Context, userID uuid.UUID) (*Cart, error) {
	raw, err := r.client.Get(ctx, r.client.CartKey(userID.String()))
	if err != nil {
		if redisclient.IsNotFound(err) {
			return &Cart{}, nil
		}
		return nil, fmt.Errorf("loading cart: %w", err)
	}
	var cart Cart
	if err := json.Unmarshal([]byte(raw), &cart); err != nil {
		return nil, fmt.Errorf("decoding cart: %w", err)
	}
	return &cart, nil
}

func (r *redisRepository) Save(ctx context.Context, userID uuid.UUID, cart *Cart) error {
	payload, err := json.Marshal(cart)
	if err != nil {
		return fmt.Errorf("encoding cart: %w", err)
	}
	return r.client.Set(ctx, r.client.CartKey(userID.String()), payload, r.ttl)
}

func (r *redisRepository) Delete(ctx context.Context, userID uuid.UUID) error {
	return r.client.Del(ctx, r.client.CartKey(userID.String()))
}

type memoryRepository struct {
	mu    sync.RWMutex
	carts map[uuid.UUID]*Cart
}

// NewMemoryRepository builds an in-process cart repository for tests and
// single-node dev runs.
func NewMemoryRepository() Repository {
	return &memoryRepository{carts: map[uuid.UUID]*Cart{}}
}

func (r *memoryRepository) Find(_ context.Context, userID uuid.UUID) (*Cart, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	cart, ok := r.carts[userID]
	if !ok {
		return &Cart{}, nil
	}
	clone := *cart
	clone.Items = append([]Item(nil), cart.Items...)
	return &clone, nil
}

func (r *memoryRepository) Save(_ context.Context, userID uuid.UUID, cart *Cart) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	clone := *cart
	clone.Items = append([]Item(nil), cart.Items...)
	r.carts[userID] = &clone
	return nil
}

func (r *memoryRepository) Delete(_ context.Context, userID uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.carts, userID)
	return nil
}
