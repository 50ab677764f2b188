package domain

// User represents a registered user in the domain model.
// Users are seeded at startup and immutable afterwards; no create,
// update or delete operations exist for them.
type User struct {
	ID       int64
	Mail     string
	Password string
}
