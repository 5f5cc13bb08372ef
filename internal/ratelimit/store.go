package ratelimit

import (
	"context"
	"sync"
	"time"
)

// Store is an in-memory sliding-window rate limiter keyed by identifier
// (client IP or normalized sender email). State is volatile; a restart
// resets all counters, which is accepted for a single-process deployment.
type Store struct {
	mu      sync.Mutex
	entries map[string][]time.Time
	now     func() time.Time
}

// NewStore creates an empty limiter store
func NewStore() *Store {
	return &Store{
		entries: make(map[string][]time.Time),
		now:     time.Now,
	}
}

// Allow reports whether another event for id fits inside the window.
// Stale timestamps are pruned first; at or above max the event is rejected
// without being recorded and the time until the oldest retained timestamp
// leaves the window is returned. A non-positive max rejects every event
// with the full window as the retry time. Check-and-append is atomic under
// the store mutex, so two concurrent requests cannot both slip under the
// limit.
func (s *Store) Allow(id string, max int, window time.Duration) (bool, time.Duration) {
	now := s.now()
	cutoff := now.Add(-window)

	s.mu.Lock()
	defer s.mu.Unlock()

	recent := make([]time.Time, 0, len(s.entries[id])+1)
	for _, ts := range s.entries[id] {
		if ts.After(cutoff) {
			recent = append(recent, ts)
		}
	}

	if len(recent) >= max {
		if len(recent) == 0 {
			// max <= 0 disables the identifier; there is no oldest
			// timestamp to derive a retry time from, and nothing to keep
			delete(s.entries, id)
			return false, window
		}
		s.entries[id] = recent
		return false, recent[0].Add(window).Sub(now)
	}

	recent = append(recent, now)
	s.entries[id] = recent
	return true, 0
}

// Sweep drops identifiers whose newest timestamp is older than idleTTL.
// Not request-critical; it only bounds memory between bursts.
func (s *Store) Sweep(idleTTL time.Duration) {
	cutoff := s.now().Add(-idleTTL)

	s.mu.Lock()
	defer s.mu.Unlock()

	for id, stamps := range s.entries {
		if len(stamps) == 0 || stamps[len(stamps)-1].Before(cutoff) {
			delete(s.entries, id)
		}
	}
}

// Len returns the number of tracked identifiers
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}

// StartJanitor starts a goroutine sweeping idle identifiers periodically.
// Stop it by cancelling the context.
func (s *Store) StartJanitor(ctx context.Context, every, idleTTL time.Duration) {
	if every <= 0 {
		return
	}

	t := time.NewTicker(every)
	go func() {
		defer t.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-t.C:
				s.Sweep(idleTTL)
			}
		}
	}()
}
