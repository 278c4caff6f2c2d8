package rate_limit

import (
	"context"
	"fmt"
	"time"

	"sportsdata/internal/cache"

	"github.com/valkey-io/valkey-go"
)

const defaultTimeout = 5 * time.Second

// ValkeyCounterStore backs counters with valkey, whose INCR is atomic and
// whose per-entry TTL makes window expiry a store primitive rather than
// application logic.
type ValkeyCounterStore struct {
	client  valkey.Client
	timeout time.Duration
}

func NewValkeyCounterStore() *ValkeyCounterStore {
	return &ValkeyCounterStore{
		client:  cache.GetCache(),
		timeout: defaultTimeout,
	}
}

func (s *ValkeyCounterStore) Increment(key string, ttl time.Duration) (int64, error) {
	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()

	result := s.client.Do(ctx, s.client.B().Incr().Key(key).Build())
	if result.Error() != nil {
		return 0, fmt.Errorf("failed to increment counter: %w", result.Error())
	}

	count, err := result.AsInt64()
	if err != nil {
		return 0, fmt.Errorf("failed to parse counter value: %w", err)
	}

	// First increment created the entry: set the window TTL exactly once.
	if count == 1 {
		expire := s.client.Do(ctx, s.client.B().Expire().Key(key).Seconds(int64(ttl.Seconds())).Build())
		if expire.Error() != nil {
			return count, fmt.Errorf("failed to set counter expiry: %w", expire.Error())
		}
	}

	return count, nil
}

func (s *ValkeyCounterStore) Get(key string) (int64, error) {
	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()

	result := s.client.Do(ctx, s.client.B().Get().Key(key).Build())
	if result.Error() != nil {
		if result.Error() == valkey.Nil {
			return 0, nil
		}
		return 0, fmt.Errorf("failed to read counter: %w", result.Error())
	}

	return result.AsInt64()
}
