package services

import (
	"todoapp/internal/domain"
	"todoapp/internal/logging"
	"todoapp/internal/store"
)

// TaskListService prepares task data for a rendering collaborator. It
// keeps a snapshot of the store's contents so that position-based
// operations stay stable across a single render pass.
type TaskListService struct {
	store store.TaskStore
	tasks []domain.Task
}

// NewTaskListService creates a list service over the given store. The
// snapshot starts empty; call Refresh before any position-based operation.
func NewTaskListService(taskStore store.TaskStore) *TaskListService {
	return &TaskListService{store: taskStore}
}

// Refresh replaces the cached snapshot with the store's live collection.
func (s *TaskListService) Refresh() error {
	tasks, err := s.store.List()
	if err != nil {
		return err
	}
	s.tasks = tasks
	return nil
}

// Count returns the number of tasks in the cached snapshot.
func (s *TaskListService) Count() int {
	return len(s.tasks)
}

// TaskAt returns the task at the given snapshot position, or false when
// the position is out of bounds.
func (s *TaskListService) TaskAt(position int) (domain.Task, bool) {
	if position < 0 || position >= len(s.tasks) {
		return domain.Task{}, false
	}
	return s.tasks[position], true
}

// DeleteAt deletes the task at the given snapshot position from the
// store and removes the entry from the snapshot. The position must come
// from the current snapshot; an out-of-range position is a caller bug
// and panics.
func (s *TaskListService) DeleteAt(position int) error {
	task := s.tasks[position]
	if err := s.store.Delete(task.ID); err != nil {
		return err
	}
	s.tasks = append(s.tasks[:position], s.tasks[position+1:]...)
	return nil
}

// DidUpdateData implements DataUpdateListener: when another flow saved
// a change, the snapshot is refreshed from the store.
func (s *TaskListService) DidUpdateData() {
	if err := s.Refresh(); err != nil {
		logging.Debugf("list refresh after update failed: %v\n", err)
	}
}

// ToggleCompletionAt flips the completion flag of the task at the given
// snapshot position and writes it through the store, leaving every
// other field unchanged, the end date included. A position outside the
// snapshot's bounds is a no-op.
//
// The snapshot entry is overwritten even when the store reported that
// the id no longer exists; the next Refresh reconciles the two.
func (s *TaskListService) ToggleCompletionAt(position int) error {
	if position < 0 || position >= len(s.tasks) {
		return nil
	}

	task := s.tasks[position]
	task.IsCompleted = !task.IsCompleted

	_, err := s.store.Update(
		task.ID,
		task.Title,
		task.Description,
		task.StartDate,
		task.EndDate,
		task.IsCompleted,
	)

	s.tasks[position] = task
	return err
}
