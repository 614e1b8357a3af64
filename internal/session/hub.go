package session

import (
	"crypto/rand"
	"encoding/base64"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
)

// ErrInvalidToken indicates the session token is unknown or expired.
var ErrInvalidToken = errors.New("invalid session token")

// Hub issues bearer tokens and maps them to live sessions. Expiry is
// sliding: a successful lookup extends the session by the hub TTL.
type Hub struct {
	mu       sync.RWMutex
	sessions map[string]*Session
	ttl      time.Duration
	now      func() time.Time
}

// NewHub creates a Hub whose sessions live for ttl since last use.
func NewHub(ttl time.Duration) *Hub {
	return &Hub{
		sessions: make(map[string]*Session),
		ttl:      ttl,
		now:      time.Now,
	}
}

// Open creates a fresh session and returns its bearer token.
func (h *Hub) Open() (string, *Session, error) {
	token, err := randomToken()
	if err != nil {
		return "", nil, err
	}
	s := newSession(uuid.NewString(), h.now, h.ttl)
	h.mu.Lock()
	h.sessions[token] = s
	h.mu.Unlock()
	return token, s, nil
}

// Lookup resolves a token to its session, dropping it when expired.
func (h *Hub) Lookup(token string) (*Session, error) {
	h.mu.RLock()
	s, ok := h.sessions[token]
	h.mu.RUnlock()
	if !ok {
		return nil, ErrInvalidToken
	}
	now := h.now()
	if s.expired(now) {
		h.mu.Lock()
		delete(h.sessions, token)
		h.mu.Unlock()
		return nil, ErrInvalidToken
	}
	s.touch(now, h.ttl)
	return s, nil
}

// TTLSeconds is the session lifetime in whole seconds, for clients.
func (h *Hub) TTLSeconds() int {
	return int(h.ttl.Seconds())
}

func randomToken() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}
