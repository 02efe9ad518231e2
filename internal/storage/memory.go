package storage

import (
	"context"
	"sync"
)

var _ DeliveryStore = (*MemoryDeliveryStore)(nil)

// MemoryDeliveryStore backs the receiver when no external store is
// configured. Deliveries do not survive a restart.
type MemoryDeliveryStore struct {
	mu         sync.Mutex
	seen       map[string]struct{}
	deliveries []Delivery
}

func NewMemoryDeliveryStore() *MemoryDeliveryStore {
	return &MemoryDeliveryStore{seen: make(map[string]struct{})}
}

func (s *MemoryDeliveryStore) Record(_ context.Context, d Delivery) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.seen[d.DeliveryID]; ok {
		return false, nil
	}
	s.seen[d.DeliveryID] = struct{}{}
	s.deliveries = append(s.deliveries, d)
	return true, nil
}

func (s *MemoryDeliveryStore) Recent(_ context.Context, limit int) ([]Delivery, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	n := len(s.deliveries)
	if limit > n {
		limit = n
	}

	out := make([]Delivery, 0, limit)
	for i := n - 1; i >= n-limit; i-- {
		out = append(out, s.deliveries[i])
	}
	return out, nil
}

func (s *MemoryDeliveryStore) Close() error { return nil }
