package rate_limit

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

const keyPrefix = "rate_limit:key:"

type AdmitResult struct {
	Allowed bool
	Reason  string
}

type Remaining struct {
	Minute int64
	Day    int64
}

// RateLimiter enforces fixed per-minute and per-day windows for each API
// key. The two windows are counted independently, so exhausting one never
// consumes the other.
//
// Admission checks read the counters and usage is recorded afterwards in a
// separate increment. Between the two steps concurrent requests can slip a
// few extra calls past the limit; that slight over-admission is accepted in
// exchange for keeping reads cheap and failure modes simple.
type RateLimiter struct {
	store        CounterStore
	minuteWindow time.Duration
	dayWindow    time.Duration
}

func NewRateLimiter(store CounterStore) *RateLimiter {
	return NewRateLimiterWithWindows(store, time.Minute, 24*time.Hour)
}

func NewRateLimiterWithWindows(store CounterStore, minuteWindow time.Duration, dayWindow time.Duration) *RateLimiter {
	return &RateLimiter{
		store:        store,
		minuteWindow: minuteWindow,
		dayWindow:    dayWindow,
	}
}

func (l *RateLimiter) CheckAdmit(keyID uuid.UUID, limitPerMinute int, limitPerDay int) (*AdmitResult, error) {
	minuteCount, err := l.store.Get(l.minuteKey(keyID))
	if err != nil {
		return nil, fmt.Errorf("failed to read minute counter: %w", err)
	}

	if minuteCount >= int64(limitPerMinute) {
		return &AdmitResult{
			Allowed: false,
			Reason:  "Rate limit exceeded: too many requests per minute",
		}, nil
	}

	dayCount, err := l.store.Get(l.dayKey(keyID))
	if err != nil {
		return nil, fmt.Errorf("failed to read day counter: %w", err)
	}

	if dayCount >= int64(limitPerDay) {
		return &AdmitResult{
			Allowed: false,
			Reason:  "Rate limit exceeded: too many requests per day",
		}, nil
	}

	return &AdmitResult{Allowed: true}, nil
}

func (l *RateLimiter) RecordUsage(keyID uuid.UUID) error {
	if _, err := l.store.Increment(l.minuteKey(keyID), l.minuteWindow); err != nil {
		return fmt.Errorf("failed to increment minute counter: %w", err)
	}

	if _, err := l.store.Increment(l.dayKey(keyID), l.dayWindow); err != nil {
		return fmt.Errorf("failed to increment day counter: %w", err)
	}

	return nil
}

func (l *RateLimiter) GetRemaining(keyID uuid.UUID, limitPerMinute int, limitPerDay int) (*Remaining, error) {
	minuteCount, err := l.store.Get(l.minuteKey(keyID))
	if err != nil {
		return nil, fmt.Errorf("failed to read minute counter: %w", err)
	}

	dayCount, err := l.store.Get(l.dayKey(keyID))
	if err != nil {
		return nil, fmt.Errorf("failed to read day counter: %w", err)
	}

	return &Remaining{
		Minute: clampRemaining(int64(limitPerMinute), minuteCount),
		Day:    clampRemaining(int64(limitPerDay), dayCount),
	}, nil
}

func clampRemaining(limit int64, used int64) int64 {
	remaining := limit - used
	if remaining < 0 {
		return 0
	}

	return remaining
}

func (l *RateLimiter) minuteKey(keyID uuid.UUID) string {
	return keyPrefix + keyID.String() + ":minute"
}

func (l *RateLimiter) dayKey(keyID uuid.UUID) string {
	return keyPrefix + keyID.String() + ":day"
}
