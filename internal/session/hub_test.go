package session

import (
	"errors"
	"testing"
	"time"
)

func TestHubOpenAndLookup(t *testing.T) {
	h := NewHub(time.Hour)

	token, s, err := h.Open()
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if token == "" || s.ID == "" {
		t.Fatalf("expected token and session id, got %q %q", token, s.ID)
	}

	got, err := h.Lookup(token)
	if err != nil {
		t.Fatalf("lookup: %v", err)
	}
	if got != s {
		t.Fatalf("expected the same session back")
	}
}

func TestHubLookupUnknownToken(t *testing.T) {
	h := NewHub(time.Hour)
	if _, err := h.Lookup("nope"); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestHubExpiry(t *testing.T) {
	now := time.Unix(1700000000, 0)
	h := NewHub(time.Minute)
	h.now = func() time.Time { return now }

	token, _, err := h.Open()
	if err != nil {
		t.Fatalf("open: %v", err)
	}

	now = now.Add(2 * time.Minute)
	if _, err := h.Lookup(token); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected expired token to be invalid, got %v", err)
	}
	// Expired sessions are dropped on lookup.
	if _, err := h.Lookup(token); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected token to stay invalid, got %v", err)
	}
}

func TestHubSlidingExpiry(t *testing.T) {
	now := time.Unix(1700000000, 0)
	h := NewHub(time.Minute)
	h.now = func() time.Time { return now }

	token, _, err := h.Open()
	if err != nil {
		t.Fatalf("open: %v", err)
	}

	// Touch the session every 40s; it must stay alive past the TTL.
	for i := 0; i < 3; i++ {
		now = now.Add(40 * time.Second)
		if _, err := h.Lookup(token); err != nil {
			t.Fatalf("lookup %d: %v", i, err)
		}
	}
}

func TestHubDistinctSessions(t *testing.T) {
	h := NewHub(time.Hour)
	t1, s1, err := h.Open()
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	t2, s2, err := h.Open()
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if t1 == t2 || s1.ID == s2.ID {
		t.Fatalf("expected distinct tokens and ids")
	}
}
