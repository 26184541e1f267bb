package session

import "sync"

// Store holds live sessions keyed by ID. Requests that carry no session id
// fall back to the default session, so a single-client deployment works
// without ever passing one.
type Store struct {
	mu            sync.RWMutex
	sessions      map[string]*Session
	def           *Session
	initialPrompt string
}

func NewStore(initialPrompt string) *Store {
	st := &Store{
		sessions:      make(map[string]*Session),
		initialPrompt: initialPrompt,
	}
	st.def = New(initialPrompt)
	st.sessions[st.def.ID()] = st.def
	return st
}

// Get resolves id to a live session. An empty id resolves to the default
// session; an unknown id returns nil.
func (st *Store) Get(id string) *Session {
	st.mu.RLock()
	defer st.mu.RUnlock()
	if id == "" {
		return st.def
	}
	return st.sessions[id]
}

// Create registers a fresh session and returns it.
func (st *Store) Create() *Session {
	s := New(st.initialPrompt)
	st.mu.Lock()
	st.sessions[s.ID()] = s
	st.mu.Unlock()
	return s
}

// Reset resets a session in place and re-keys it under its regenerated ID.
func (st *Store) Reset(s *Session) {
	st.mu.Lock()
	defer st.mu.Unlock()
	delete(st.sessions, s.ID())
	s.Reset()
	st.sessions[s.ID()] = s
}
