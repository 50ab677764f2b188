// Package services contains the flows that mediate between raw user
// input and the task store, applying validation and session rules.
package services

import (
	"todoapp/internal/directory"
	"todoapp/internal/domain"
	"todoapp/internal/logging"
	"todoapp/internal/session"
)

// AuthService handles the login flow: it validates the submitted
// credentials against the user directory and starts a session on success.
type AuthService struct {
	directory *directory.UserDirectory
	session   *session.Manager
}

// NewAuthService creates an auth service over the given directory and
// session manager.
func NewAuthService(dir *directory.UserDirectory, sess *session.Manager) *AuthService {
	return &AuthService{
		directory: dir,
		session:   sess,
	}
}

// Attempt verifies the submitted credentials. A nil mail or password
// fails immediately without a directory lookup. On a match the user is
// installed into the session and returned; on no match the result is
// nil and any existing session is left in place.
func (s *AuthService) Attempt(mail, password *string) *domain.User {
	if mail == nil || password == nil {
		return nil
	}

	user := s.directory.FindByCredentials(*mail, *password)
	if user == nil {
		logging.Debugf("login failed for mail: %s\n", *mail)
		return nil
	}

	s.session.Login(*user)
	return user
}
