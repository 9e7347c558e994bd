// Package session tracks the signed-in account. The local store never
// consults it; only remote pushes and pulls are gated on an active session.
package session

import "sync"

// Session holds the currently signed-in account id, if any.
type Session struct {
	mu        sync.RWMutex
	accountID string
}

// New creates an empty (signed-out) session.
func New() *Session {
	return &Session{}
}

// Open signs the account in, replacing any previous one.
func (s *Session) Open(accountID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.accountID = accountID
}

// Close signs out. Local data is untouched.
func (s *Session) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.accountID = ""
}

// AccountID returns the signed-in account id and whether one is active.
func (s *Session) AccountID() (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.accountID, s.accountID != ""
}

// Active reports whether an account is signed in.
func (s *Session) Active() bool {
	_, ok := s.AccountID()
	return ok
}
