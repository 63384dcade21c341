package service

import (
	"sync"

	"github.com/google/uuid"

	"todo-planner/internal/todo"
)

type chatSession struct {
	id      string
	session *todo.Session
}

// SessionService owns one in-memory to-do session per chat. Every access goes
// through Run, which holds the lock for the duration of the callback.
type SessionService struct {
	mu       sync.Mutex
	sessions map[int64]*chatSession
}

func NewSessionService() *SessionService {
	return &SessionService{sessions: make(map[int64]*chatSession)}
}

// Run calls fn with the chat's session, creating it on first use.
func (s *SessionService) Run(chatID int64, fn func(sessionID string, session *todo.Session)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	cs, ok := s.sessions[chatID]
	if !ok {
		cs = newChatSession()
		s.sessions[chatID] = cs
	}
	fn(cs.id, cs.session)
}

// RunExisting is Run without creating a session; it reports whether one existed.
func (s *SessionService) RunExisting(chatID int64, fn func(sessionID string, session *todo.Session)) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	cs, ok := s.sessions[chatID]
	if !ok {
		return false
	}
	fn(cs.id, cs.session)
	return true
}

// Reset replaces the chat's session with an empty one and returns its id.
func (s *SessionService) Reset(chatID int64) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	cs := newChatSession()
	s.sessions[chatID] = cs
	return cs.id
}

// SessionID returns the current session id of the chat, creating the session if needed.
func (s *SessionService) SessionID(chatID int64) string {
	var id string
	s.Run(chatID, func(sessionID string, _ *todo.Session) { id = sessionID })
	return id
}

func newChatSession() *chatSession {
	return &chatSession{id: uuid.NewString(), session: todo.NewSession()}
}
