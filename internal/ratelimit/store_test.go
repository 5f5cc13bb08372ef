package ratelimit

import (
	"testing"
	"time"
)

func newTestStore(start time.Time) (*Store, *time.Time) {
	s := NewStore()
	now := start
	s.now = func() time.Time { return now }
	return s, &now
}

func TestAllowUpToLimit(t *testing.T) {
	s, _ := newTestStore(time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC))

	for i := 0; i < 3; i++ {
		allowed, _ := s.Allow("1.2.3.4", 3, time.Hour)
		if !allowed {
			t.Fatalf("call %d should be allowed", i+1)
		}
	}

	allowed, retryAfter := s.Allow("1.2.3.4", 3, time.Hour)
	if allowed {
		t.Fatal("4th call within window should be rejected")
	}
	if retryAfter <= 0 || retryAfter > time.Hour {
		t.Fatalf("retryAfter = %v, want in (0, 1h]", retryAfter)
	}
}

func TestRejectionDoesNotRecord(t *testing.T) {
	s, now := newTestStore(time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC))

	s.Allow("k", 1, time.Hour)
	for i := 0; i < 5; i++ {
		if allowed, _ := s.Allow("k", 1, time.Hour); allowed {
			t.Fatal("should be rejected while window holds")
		}
	}

	// Only the single accepted timestamp should age out
	*now = now.Add(time.Hour + time.Second)
	if allowed, _ := s.Allow("k", 1, time.Hour); !allowed {
		t.Fatal("should be allowed after window elapsed; rejections must not extend it")
	}
}

func TestWindowSlides(t *testing.T) {
	s, now := newTestStore(time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC))

	s.Allow("k", 2, time.Hour)
	*now = now.Add(30 * time.Minute)
	s.Allow("k", 2, time.Hour)

	if allowed, retryAfter := s.Allow("k", 2, time.Hour); allowed {
		t.Fatal("third call should be rejected")
	} else if got, want := retryAfter, 30*time.Minute; got != want {
		t.Fatalf("retryAfter = %v, want %v (time until oldest leaves window)", got, want)
	}

	// Oldest timestamp falls out; one slot frees up
	*now = now.Add(31 * time.Minute)
	if allowed, _ := s.Allow("k", 2, time.Hour); !allowed {
		t.Fatal("call should be allowed once oldest timestamp expired")
	}
}

func TestZeroLimitAlwaysRejects(t *testing.T) {
	s, _ := newTestStore(time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC))

	allowed, retryAfter := s.Allow("1.2.3.4", 0, time.Hour)
	if allowed {
		t.Fatal("a zero limit must reject every request")
	}
	if retryAfter != time.Hour {
		t.Fatalf("retryAfter = %v, want the full window", retryAfter)
	}
	if got := s.Len(); got != 0 {
		t.Fatalf("Len() = %d, rejections must not record state", got)
	}

	if allowed, _ := s.Allow("1.2.3.4", -1, time.Hour); allowed {
		t.Fatal("a negative limit must reject every request")
	}
}

func TestIdentifiersAreIndependent(t *testing.T) {
	s, _ := newTestStore(time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC))

	s.Allow("a", 1, time.Hour)
	if allowed, _ := s.Allow("a", 1, time.Hour); allowed {
		t.Fatal("a should be limited")
	}
	if allowed, _ := s.Allow("b", 1, time.Hour); !allowed {
		t.Fatal("b must not be affected by a's count")
	}
}

func TestSweep(t *testing.T) {
	s, now := newTestStore(time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC))

	s.Allow("stale", 3, time.Hour)
	*now = now.Add(25 * time.Hour)
	s.Allow("fresh", 3, time.Hour)

	s.Sweep(24 * time.Hour)

	if got := s.Len(); got != 1 {
		t.Fatalf("Len() = %d after sweep, want 1", got)
	}
	// The surviving key must still carry its state
	s.Allow("fresh", 2, time.Hour)
	if allowed, _ := s.Allow("fresh", 2, time.Hour); allowed {
		t.Fatal("fresh should be at its limit")
	}
}
