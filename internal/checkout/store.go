package checkout

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	redisclient "github.com/bloomcart/checkout-backend/pkg/redis"
)

// ErrSessionNotFound is returned when a session id is unknown or expired.
var ErrSessionNotFound = errors.New("checkout session not found")

// Store persists checkout sessions. Sessions have no durability requirement
// beyond their TTL; abandoning a checkout simply lets the document expire.
type Store interface {
	Save(ctx context.Context, session *Session) error
	Find(ctx context.Context, id uuid.UUID) (*Session, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type redisStore struct {
	client *redisclient.Client
	ttl    time.Duration
}

// NewRedisStore builds the Redis-backed session store.
func NewRedisStore(client *redisclient.Client, ttl time.Duration) (Store, error) {
	if client == nil {
		return nil, fmt.Errorf("redis client required")
	}
	if ttl <= 0 {
		return nil, fmt.Errorf("session ttl must be positive")
	}
	return &redisStore{client: client, ttl: ttl}, nil
}

func (s *redisStore) Save(ctx context.Context, session *Session) error {
	payload, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("encoding session: %w", err)
	}
	return s.client.Set(ctx, s.client.CheckoutSessionKey(session.ID.String()), payload, s.ttl)
}

func (s *redisStore) Find(ctx context.Context, id uuid.UUID) (*Session, error) {
	raw, err := s.client.Get(ctx, s.client.CheckoutSessionKey(id.String()))
	if err != nil {
		if redisclient.IsNotFound(err) {
			return nil, ErrSessionNotFound
		}
		return nil, fmt.Errorf("loading session: %w", err)
	}
	var session Session
	if err := json.Unmarshal([]byte(raw), &session); err != nil {
		return nil, fmt.Errorf("decoding session: %w", err)
	}
	return &session, nil
}

func (s *redisStore) Delete(ctx context.Context, id uuid.UUID) error {
	return s.client.Del(ctx, s.client.CheckoutSessionKey(id.String()))
}

type memoryStore struct {
	mu       sync.RWMutex
	sessions map[uuid.UUID]*Session
}

// NewMemoryStore builds an in-process session store for tests and single-node
// dev runs.
func NewMemoryStore() Store {
	return &memoryStore{sessions: map[uuid.UUID]*Session{}}
}

func (s *memoryStore) Save(_ context.Context, session *Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	clone := session.clone()
	s.sessions[session.ID] = clone
	return nil
}

func (s *memoryStore) Find(_ context.Context, id uuid.UUID) (*Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	session, ok := s.sessions[id]
	if !ok {
		return nil, ErrSessionNotFound
	}
	return session.clone(), nil
}

func (s *memoryStore) Delete(_ context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, id)
	return nil
}
