// Package session holds the single currently-authenticated identity for
// the running process.
package session

import (
	"todoapp/internal/domain"
	"todoapp/internal/logging"
)

// Manager is the single source of truth for who is currently logged in.
// It holds zero or one identity at any instant. Not safe for concurrent
// use; the application runs one logical flow of control at a time.
type Manager struct {
	current *domain.User
}

// NewManager creates a session manager with no active session.
func NewManager() *Manager {
	return &Manager{}
}

// Login installs user as the current identity, overwriting any previous one.
func (m *Manager) Login(user domain.User) {
	m.current = &user
	logging.Debugf("session started for user: %s\n", user.Mail)
}

// Logout clears the current identity. Safe to call when no session exists.
func (m *Manager) Logout() {
	if m.current != nil {
		logging.Debugf("session ended for user: %s\n", m.current.Mail)
	}
	m.current = nil
}

// Current returns the currently authenticated user, or nil when no
// session is active. The returned value is a copy.
func (m *Manager) Current() *domain.User {
	if m.current == nil {
		return nil
	}
	user := *m.current
	return &user
}
