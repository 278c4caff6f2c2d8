package rate_limit

import (
	"sync"
	"time"
)

type memoryCounter struct {
	count     int64
	expiresAt time.Time
}

// MemoryCounterStore keeps counters in process memory with lazy expiry.
// Single-instance deployments and tests use it; multi-instance setups
// share counters through the valkey store instead.
type MemoryCounterStore struct {
	mu       sync.Mutex
	counters map[string]*memoryCounter
	now      func() time.Time
}

func NewMemoryCounterStore() *MemoryCounterStore {
	return NewMemoryCounterStoreWithClock(time.Now)
}

func NewMemoryCounterStoreWithClock(now func() time.Time) *MemoryCounterStore {
	return &MemoryCounterStore{
		counters: make(map[string]*memoryCounter),
		now:      now,
	}
}

func (s *MemoryCounterStore) Increment(key string, ttl time.Duration) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	counter, exists := s.counters[key]
	if !exists || !s.now().Before(counter.expiresAt) {
		counter = &memoryCounter{expiresAt: s.now().Add(ttl)}
		s.counters[key] = counter
	}

	counter.count++

	return counter.count, nil
}

func (s *MemoryCounterStore) Get(key string) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	counter, exists := s.counters[key]
	if !exists {
		return 0, nil
	}

	if !s.now().Before(counter.expiresAt) {
		delete(s.counters, key)
		return 0, nil
	}

	return counter.count, nil
}
