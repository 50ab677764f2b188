// Package directory holds the set of registered users and resolves
// credentials to an identity.
package directory

import (
	"todoapp/internal/domain"
)

// UserDirectory is a pure lookup over a seeded set of users. There is no
// rate limiting or lockout; authentication strength is out of scope.
type UserDirectory struct {
	users []domain.User
}

// New creates a directory over the given seeded users.
func New(users []domain.User) *UserDirectory {
	return &UserDirectory{users: users}
}

// FindByCredentials returns the first user whose mail and password both
// match exactly, or nil when there is no match. No side effects.
func (d *UserDirectory) FindByCredentials(mail, password string) *domain.User {
	for _, user := range d.users {
		if user.Mail == mail && user.Password == password {
			found := user
			return &found
		}
	}
	return nil
}

// Count returns the number of registered users.
func (d *UserDirectory) Count() int {
	return len(d.users)
}
