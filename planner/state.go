package planner

import (
	"sync"

	"github.com/google/uuid"
)

// State holds one planning session per discord channel.
type State struct {
	sessionMap map[string]*Session
	windowSize int
	mu         sync.RWMutex
}

// Session is a single channel's planning conversation: the live event details
// and the rolling window of recent lines. The session lock is held for the
// whole turn so messages arriving back to back cannot race the state merge.
type Session struct {
	ID     string
	Event  *EventDetails
	Window *Window
	mu     sync.Mutex
}

func (session *Session) Lock() {
	session.mu.Lock()
}

func (session *Session) Unlock() {
	session.mu.Unlock()
}

func NewState(windowSize int) *State {
	return &State{
		sessionMap: make(map[string]*Session),
		windowSize: windowSize,
	}
}

func (s *State) GetSession(channelID string) (*Session, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	session, exists := s.sessionMap[channelID]
	return session, exists
}

// GetOrCreateSession returns the channel's session, creating an empty one on
// the first message.
func (s *State) GetOrCreateSession(channelID string) *Session {
	s.mu.Lock()
	defer s.mu.Unlock()
	if session, exists := s.sessionMap[channelID]; exists {
		return session
	}
	session := s.newSession()
	s.sessionMap[channelID] = session
	return session
}

// ResetSession discards the channel's session and starts a fresh one.
func (s *State) ResetSession(channelID string) *Session {
	s.mu.Lock()
	defer s.mu.Unlock()
	session := s.newSession()
	s.sessionMap[channelID] = session
	return session
}

func (s *State) newSession() *Session {
	return &Session{
		ID:     uuid.New().String(),
		Event:  NewEventDetails(),
		Window: NewWindow(s.windowSize),
	}
}
