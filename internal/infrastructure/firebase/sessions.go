package firebase

import (
	"sync"

	"tecnoseguridad/internal/domain/entity"
)

// Sessions is the single-producer identity observable. The auth use case
// publishes sign-in/sign-out transitions; subscribers receive the current
// identity immediately on subscription and again on every change, until
// they unsubscribe. A nil identity means signed out.
type Sessions struct {
	mu      sync.Mutex
	current *entity.Identity
	nextID  int
	subs    map[int]func(*entity.Identity)
}

func NewSessions() *Sessions {
	return &Sessions{
		subs: make(map[int]func(*entity.Identity)),
	}
}

// Subscribe registers fn and invokes it once synchronously with the
// current identity. The returned function removes the subscription.
func (s *Sessions) Subscribe(fn func(*entity.Identity)) func() {
	s.mu.Lock()
	id := s.nextID
	s.nextID++
	s.subs[id] = fn
	current := s.current
	s.mu.Unlock()

	fn(current)

	return func() {
		s.mu.Lock()
		delete(s.subs, id)
		s.mu.Unlock()
	}
}

// Publish replaces the current identity and notifies every subscriber.
func (s *Sessions) Publish(identity *entity.Identity) {
	s.mu.Lock()
	s.current = identity
	fns := make([]func(*entity.Identity), 0, len(s.subs))
	for _, fn := range s.subs {
		fns = append(fns, fn)
	}
	s.mu.Unlock()

	for _, fn := range fns {
		fn(identity)
	}
}

// Current returns the last published identity, nil when signed out.
func (s *Sessions) Current() *entity.Identity {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current
}
