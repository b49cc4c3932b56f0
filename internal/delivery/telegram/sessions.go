package telegram

import (
	"sync"

	"github.com/aliskhannn/jeopardy-bot/internal/game"
)

// session is one chat's game: its board state plus the loading flag that
// keeps a restart from being triggered while a fetch batch is in flight.
type session struct {
	mu      sync.Mutex
	state   *game.State
	loading bool
}

// beginLoading marks the session as loading. It reports false if a load is
// already in flight; the caller must then ignore the request.
func (s *session) beginLoading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.loading {
		return false
	}
	s.loading = true
	return true
}

func (s *session) endLoading() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading = false
}

func (s *session) isLoading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading
}

// sessionStore keeps one session per chat.
type sessionStore struct {
	mu       sync.Mutex
	sessions map[int64]*session
}

func newSessionStore() *sessionStore {
	return &sessionStore{
		sessions: make(map[int64]*session),
	}
}

// get returns the chat's session, creating it on first use.
func (st *sessionStore) get(chatID int64) *session {
	st.mu.Lock()
	defer st.mu.Unlock()

	s, ok := st.sessions[chatID]
	if !ok {
		s = &session{state: game.NewState()}
		st.sessions[chatID] = s
	}

	return s
}
