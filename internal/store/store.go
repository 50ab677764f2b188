// Package store defines the authoritative task collection and its
// default in-memory implementation.
package store

import (
	"time"

	"todoapp/internal/domain"
)

// TaskStore is the persistence primitive for tasks. It owns id
// assignment and performs no input validation; that is the caller's
// responsibility.
//
// Absence is never an error: Get returns (nil, nil) and Update returns
// (false, nil) when the id is unknown, and Delete is a no-op. The error
// results are reserved for storage faults in backends that can fail.
type TaskStore interface {
	// List returns the full live collection in insertion order.
	List() ([]domain.Task, error)

	// Get returns the task with the given id, or nil if absent.
	Get(id int64) (*domain.Task, error)

	// Add assigns the next id, sets completion to false, appends the
	// task and returns the created record. Assigned ids are strictly
	// monotonic for the lifetime of the store; deleted ids are never
	// reused.
	Add(title, description string, startDate time.Time, endDate *time.Time, owner domain.User) (domain.Task, error)

	// Update overwrites the listed fields of the task with the given id
	// and reports whether it was found. Id and owner are never altered.
	Update(id int64, title, description string, startDate time.Time, endDate *time.Time, isCompleted bool) (bool, error)

	// Delete removes the task with the given id. No-op if absent.
	Delete(id int64) error

	// Close releases any resources held by the store.
	Close() error
}
