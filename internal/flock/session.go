package flock

import "sync"

// Session is one connected player. Events are buffered; a slow reader loses
// the oldest ones.
type Session struct {
	id       SessionID
	player   string
	events   chan Event
	done     chan struct{}
	doneOnce sync.Once
}

// NewSession creates a new session handle.
// eventBufferSize controls how many events can be buffered before dropping.
func NewSession(id SessionID, player string, eventBufferSize int) *Session {
	if eventBufferSize < 1 {
		eventBufferSize = 16 // Default buffer size
	}
	return &Session{
		id:     id,
		player: player,
		events: make(chan Event, eventBufferSize),
		done:   make(chan struct{}),
	}
}

// ID returns the session identifier.
func (s *Session) ID() SessionID {
	return s.id
}

// Player returns the player name.
func (s *Session) Player() string {
	return s.player
}

// Send delivers an event without blocking.
// If the buffer is full, the oldest event is dropped.
func (s *Session) Send(evt Event) {
	select {
	case <-s.done:
		return
	default:
	}

	select {
	case s.events <- evt:
	default:
		// Buffer full, drop oldest and retry
		select {
		case <-s.events:
		default:
		}
		select {
		case s.events <- evt:
		default:
		}
	}
}

// Events returns the channel to receive events from.
func (s *Session) Events() <-chan Event {
	return s.events
}

// Done returns a channel that closes when the session ends.
func (s *Session) Done() <-chan struct{} {
	return s.done
}

// Close marks the session as done.
// Safe to call multiple times.
func (s *Session) Close() {
	s.doneOnce.Do(func() {
		close(s.done)
	})
}

// Registry tracks active sessions.
// Thread-safe for concurrent access.
type Registry struct {
	mu       sync.RWMutex
	sessions map[SessionID]*Session
}

// NewRegistry creates a new session registry.
func NewRegistry() *Registry {
	return &Registry{
		sessions: make(map[SessionID]*Session),
	}
}

// Register adds a session and tells everyone else about it.
func (r *Registry) Register(s *Session) {
	r.mu.Lock()
	r.sessions[s.ID()] = s
	r.mu.Unlock()

	r.Broadcast(s.ID(), JoinedEvent{Player: s.Player()})
}

// Unregister removes and closes a session and tells everyone else.
func (r *Registry) Unregister(id SessionID) {
	r.mu.Lock()
	s, ok := r.sessions[id]
	delete(r.sessions, id)
	r.mu.Unlock()

	if !ok {
		return
	}
	s.Close()
	r.Broadcast(id, LeftEvent{Player: s.Player()})
}

// Broadcast sends evt to every session except from.
func (r *Registry) Broadcast(from SessionID, evt Event) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for id, s := range r.sessions {
		if id != from {
			s.Send(evt)
		}
	}
}

// Get retrieves a session by ID.
func (r *Registry) Get(id SessionID) (*Session, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.sessions[id]
	return s, ok
}

// Count returns the number of registered sessions.
func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.sessions)
}
