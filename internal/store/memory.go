package store

import (
	"time"

	"todoapp/internal/domain"
)

// MemoryStore is the in-memory TaskStore. The backing slice is kept in
// insertion order, which callers rely on for position-based operations.
// Not safe for concurrent use; the application runs one logical flow of
// control at a time.
type MemoryStore struct {
	tasks  []domain.Task
	nextID int64
}

// NewMemoryStore creates an empty in-memory store. The first assigned id is 0.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// NewMemoryStoreWithTasks creates a store seeded with existing tasks.
// The id counter resumes above the highest seeded id.
func NewMemoryStoreWithTasks(tasks []domain.Task) *MemoryStore {
	s := &MemoryStore{
		tasks: append([]domain.Task(nil), tasks...),
	}
	for _, t := range tasks {
		if t.ID >= s.nextID {
			s.nextID = t.ID + 1
		}
	}
	return s
}

// List returns a copy of the live collection in insertion order.
func (s *MemoryStore) List() ([]domain.Task, error) {
	return append([]domain.Task(nil), s.tasks...), nil
}

// Get returns the task with the given id, or nil if absent.
func (s *MemoryStore) Get(id int64) (*domain.Task, error) {
	for _, t := range s.tasks {
		if t.ID == id {
			found := t
			return &found, nil
		}
	}
	return nil, nil
}

// Add creates a task with the next id and appends it to the collection.
func (s *MemoryStore) Add(title, description string, startDate time.Time, endDate *time.Time, owner domain.User) (domain.Task, error) {
	task := domain.NewTask(title, description, startDate, endDate, owner)
	task.ID = s.nextID
	s.nextID++
	s.tasks = append(s.tasks, task)
	return task, nil
}

// Update overwrites the listed fields of the matching task in place.
// Id and owner are left untouched. Reports false when the id is absent,
// leaving the collection unchanged.
func (s *MemoryStore) Update(id int64, title, description string, startDate time.Time, endDate *time.Time, isCompleted bool) (bool, error) {
	for i := range s.tasks {
		if s.tasks[i].ID == id {
			s.tasks[i].Title = title
			s.tasks[i].Description = description
			s.tasks[i].StartDate = startDate
			s.tasks[i].EndDate = endDate
			s.tasks[i].IsCompleted = isCompleted
			return true, nil
		}
	}
	return false, nil
}

// Delete removes all tasks matching the id (at most one, given
// uniqueness). No-op if absent.
func (s *MemoryStore) Delete(id int64) error {
	kept := s.tasks[:0]
	for _, t := range s.tasks {
		if t.ID != id {
			kept = append(kept, t)
		}
	}
	s.tasks = kept
	return nil
}

// Close implements TaskStore. The memory store holds no resources.
func (s *MemoryStore) Close() error {
	return nil
}
