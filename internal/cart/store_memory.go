package cart

import (
	"context"
	"sync"
)

type InMemoryStore struct {
	mu    sync.Mutex
	carts map[string]Cart
}

func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{
		carts: make(map[string]Cart),
	}
}

func (s *InMemoryStore) Get(ctx context.Context, sessionID string) (Cart, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored, ok := s.carts[sessionID]
	if !ok {
		return Cart{}, nil
	}

	// Copy so callers never mutate the stored cart without Save.
	cart := make(Cart, len(stored))
	for id, entry := range stored {
		cart[id] = entry
	}
	return cart, nil
}

func (s *InMemoryStore) Save(ctx context.Context, sessionID string, cart Cart) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored := make(Cart, len(cart))
	for id, entry := range cart {
		stored[id] = entry
	}
	s.carts[sessionID] = stored
	return nil
}

func (s *InMemoryStore) Clear(ctx context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.carts, sessionID)
	return nil
}
