package session

import (
	"sync"

	"github.com/louisbranch/retroboard/internal/platform/id"
)

// Store is the injectable session container.
//
// Dispatch is the single writer: it reduces the event under a lock and then
// notifies subscribers with the resulting snapshot. Snapshots are deep copies,
// so readers can hold them across dispatches.
type Store struct {
	mu        sync.Mutex
	state     State
	listeners map[string]func(State)
}

// NewStore creates a store holding the empty initial session.
func NewStore() *Store {
	return &Store{
		state:     NewState(),
		listeners: make(map[string]func(State)),
	}
}

// State returns a snapshot of the current session.
func (s *Store) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.clone()
}

// Dispatch applies an event and notifies subscribers in an unspecified order.
func (s *Store) Dispatch(event Event) {
	s.mu.Lock()
	s.state = Reduce(s.state, event)
	snapshot := s.state
	listeners := make([]func(State), 0, len(s.listeners))
	for _, listener := range s.listeners {
		listeners = append(listeners, listener)
	}
	s.mu.Unlock()

	for _, listener := range listeners {
		listener(snapshot.clone())
	}
}

// Subscribe registers a listener for future snapshots and returns a function
// that removes it. The listener is not called with the current state.
func (s *Store) Subscribe(listener func(State)) func() {
	key, err := id.NewID()
	if err != nil {
		// fixed fallback key; the collision loop below keeps it unique
		key = "listener"
	}

	s.mu.Lock()
	for {
		if _, taken := s.listeners[key]; !taken {
			break
		}
		key += "+"
	}
	s.listeners[key] = listener
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		delete(s.listeners, key)
		s.mu.Unlock()
	}
}
