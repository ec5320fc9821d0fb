// Package client talks to the chat API and tracks who is logged in.
package client

import (
	"sync"

	authdomain "chat-backend/internal/auth/domain"
)

// Session holds the identity of the logged-in user. It is owned by the UI
// shell and passed to whatever needs it.
type Session struct {
	mu       sync.RWMutex
	user     *authdomain.PublicUser
	onChange func(*authdomain.PublicUser)
}

func NewSession() *Session {
	return &Session{}
}

// User returns a copy of the current identity.
func (s *Session) User() (*authdomain.PublicUser, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.user == nil {
		return nil, false
	}
	u := *s.user
	return &u, true
}

func (s *Session) Authenticated() bool {
	_, ok := s.User()
	return ok
}

func (s *Session) SetIdentity(u *authdomain.PublicUser) {
	if u == nil {
		s.ClearIdentity()
		return
	}
	cp := *u
	s.set(&cp)
}

func (s *Session) ClearIdentity() {
	s.set(nil)
}

// OnChange registers fn to run after every identity change. fn is called
// outside the lock and receives nil on logout.
func (s *Session) OnChange(fn func(*authdomain.PublicUser)) {
	s.mu.Lock()
	s.onChange = fn
	s.mu.Unlock()
}

func (s *Session) set(u *authdomain.PublicUser) {
	s.mu.Lock()
	s.user = u
	fn := s.onChange
	s.mu.Unlock()

	if fn != nil {
		if u == nil {
			fn(nil)
			return
		}
		cp := *u
		fn(&cp)
	}
}
