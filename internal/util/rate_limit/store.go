package rate_limit

import "time"

// CounterStore is the narrow surface the limiter needs from its backing
// store: an atomic increment that creates the counter with a TTL on first
// use, and a plain read. Implementations must leave the TTL untouched on
// subsequent increments so windows stay fixed rather than sliding.
type CounterStore interface {
	Increment(key string, ttl time.Duration) (int64, error)
	Get(key string) (int64, error)
}
