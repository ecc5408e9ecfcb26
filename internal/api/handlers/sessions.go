package handlers

import (
	"sync"

	"github.com/yourlocalshop/storefront/internal/service"
)

// Session bundles the per-customer checkout state. Each session owns its
// cart exclusively; only this registry is shared between requests.
type Session struct {
	Cart  *service.Cart
	Front *service.StoreFront
}

// Sessions is the registry of live checkout sessions keyed by the
// X-Session-ID header.
type Sessions struct {
	mu       sync.RWMutex
	sessions map[string]*Session
	factory  func() *Session
}

// NewSessions creates a session registry. factory builds the cart/checkout
// wiring for a fresh session.
func NewSessions(factory func() *Session) *Sessions {
	return &Sessions{
		sessions: make(map[string]*Session),
		factory:  factory,
	}
}

// Get returns the session for the given id, creating it on first use.
func (s *Sessions) Get(sessionID string) *Session {
	s.mu.RLock()
	session, ok := s.sessions[sessionID]
	s.mu.RUnlock()
	if ok {
		return session
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if session, ok = s.sessions[sessionID]; ok {
		return session
	}
	session = s.factory()
	s.sessions[sessionID] = session
	return session
}
