package session

import (
	"context"
	"sync"
	"time"

	"github.com/ndewijer/Investment-Fund-Dashboard/internal/dashboard"
)

// Session is the live dashboard of one client.
type Session struct {
	mu         sync.Mutex
	ClientID   string
	Controller *dashboard.Controller
	Document   *dashboard.Document
	lastSeen   time.Time
}

// Do runs fn while holding the session lock so that one event at a time
// reaches the controller.
func (s *Session) Do(fn func(*Session) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return fn(s)
}

// Locker returns the lock that serializes the session's events.
func (s *Session) Locker() sync.Locker {
	return &s.mu
}

// Factory builds the controller and document of a new session. guard must be
// passed to the controller so delayed scrolls take the session lock.
type Factory func(clientID string, guard sync.Locker) (*dashboard.Controller, *dashboard.Document)

// Registry keeps the sessions of all connected clients.
type Registry struct {
	mu       sync.Mutex
	sessions map[string]*Session
	factory  Factory
	now      func() time.Time
}

// NewRegistry creates an empty registry using factory for new sessions.
func NewRegistry(factory Factory) *Registry {
	return &Registry{
		sessions: make(map[string]*Session),
		factory:  factory,
		now:      time.Now,
	}
}

// Get returns the session of clientID, creating and initializing it on first
// use.
func (r *Registry) Get(ctx context.Context, clientID string) *Session {
	r.mu.Lock()
	s, ok := r.sessions[clientID]
	if ok {
		s.lastSeen = r.now()
		r.mu.Unlock()
		return s
	}

	// The session is published locked so concurrent requests of the same
	// client wait in Do until Init has run.
	s = &Session{ClientID: clientID}
	s.Controller, s.Document = r.factory(clientID, &s.mu)
	s.mu.Lock()
	s.lastSeen = r.now()
	r.sessions[clientID] = s
	r.mu.Unlock()

	defer s.mu.Unlock()
	s.Controller.Init(ctx)
	return s
}

// Len returns the number of live sessions.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.sessions)
}

// PruneIdle closes and drops sessions not used within idle and returns how
// many were removed.
func (r *Registry) PruneIdle(idle time.Duration) int {
	cutoff := r.now().Add(-idle)

	r.mu.Lock()
	var stale []*Session
	for id, s := range r.sessions {
		if s.lastSeen.Before(cutoff) {
			stale = append(stale, s)
			delete(r.sessions, id)
		}
	}
	r.mu.Unlock()

	for _, s := range stale {
		s.mu.Lock()
		s.Controller.Close()
		s.mu.Unlock()
	}
	return len(stale)
}

// Close closes every session.
func (r *Registry) Close() {
	r.mu.Lock()
	sessions := r.sessions
	r.sessions = make(map[string]*Session)
	r.mu.Unlock()

	for _, s := range sessions {
		s.mu.Lock()
		s.Controller.Close()
		s.mu.Unlock()
	}
}
