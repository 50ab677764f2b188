package services

import (
	"time"

	"todoapp/internal/domain"
	"todoapp/internal/logging"
	"todoapp/internal/session"
	"todoapp/internal/store"
	"todoapp/internal/validation"
)

// Fixed reasons reported to the form collaborator on editor failure.
const (
	ReasonMissingFields = "Please fill in all fields."
	ReasonUpdateFailed  = "Task could not be updated. Please try again later."
)

// UpdateOutcome discriminates the result of an editor save.
type UpdateOutcome int

const (
	// UpdateSuccess means the store confirmed the update.
	UpdateSuccess UpdateOutcome = iota
	// UpdateValidationFailed means the input was invalid; nothing was written.
	UpdateValidationFailed
	// UpdateFailed means the store could not apply the update, typically
	// because the task no longer exists.
	UpdateFailed
)

// UpdateResult carries the outcome of an editor save plus a fixed
// human-readable reason on failure.
type UpdateResult struct {
	Outcome UpdateOutcome
	Reason  string
}

// Succeeded reports whether the save went through.
func (r UpdateResult) Succeeded() bool {
	return r.Outcome == UpdateSuccess
}

// TaskCreator handles the new-task flow: it validates form input and,
// when a session is active, writes the task through the store with the
// session's user as owner.
type TaskCreator struct {
	store     store.TaskStore
	session   *session.Manager
	validator *validation.TaskValidator
}

// NewTaskCreator creates a creator over the given store and session.
func NewTaskCreator(taskStore store.TaskStore, sess *session.Manager) *TaskCreator {
	return &TaskCreator{
		store:     taskStore,
		session:   sess,
		validator: validation.NewTaskValidator(),
	}
}

// Create validates the form input and persists a new task owned by the
// session's current user. It returns false when validation fails, when
// no session is active, or when the store rejects the write; the
// caller cannot distinguish these cases.
func (c *TaskCreator) Create(title, description *string, startDate time.Time, endDate *time.Time) bool {
	if err := c.validator.ValidateTaskInput(title, description); err != nil {
		return false
	}

	currentUser := c.session.Current()
	if currentUser == nil {
		logging.Debugln("task create rejected: no active session")
		return false
	}

	if _, err := c.store.Add(*title, *description, startDate, endDate, *currentUser); err != nil {
		logging.Debugf("task create failed: %v\n", err)
		return false
	}

	return true
}

// TaskEditor handles the update flow for one specific task. The editor
// is bound to a snapshot of the task captured at construction; the id
// and completion flag written on save come from that snapshot, so later
// external mutations of the same task are not reflected.
type TaskEditor struct {
	store     store.TaskStore
	task      domain.Task
	validator *validation.TaskValidator
	listener  DataUpdateListener
}

// NewTaskEditor creates an editor bound to the given task snapshot.
func NewTaskEditor(taskStore store.TaskStore, task domain.Task) *TaskEditor {
	return &TaskEditor{
		store:     taskStore,
		task:      task,
		validator: validation.NewTaskValidator(),
	}
}

// Task returns the snapshot the editor was bound to.
func (e *TaskEditor) Task() domain.Task {
	return e.task
}

// SetListener registers a listener to be notified after a successful save.
func (e *TaskEditor) SetListener(listener DataUpdateListener) {
	e.listener = listener
}

// Update validates the new field values and writes them through the
// store, preserving the completion flag captured at construction. The
// result discriminates validation failures from store failures, each
// with a fixed reason.
func (e *TaskEditor) Update(newTitle, newDescription *string, newStartDate time.Time, newEndDate *time.Time) UpdateResult {
	if err := e.validator.ValidateTaskInput(newTitle, newDescription); err != nil {
		return UpdateResult{Outcome: UpdateValidationFailed, Reason: ReasonMissingFields}
	}

	ok, err := e.store.Update(
		e.task.ID,
		*newTitle,
		*newDescription,
		newStartDate,
		newEndDate,
		e.task.IsCompleted,
	)
	if err != nil {
		logging.Debugf("task update failed: %v\n", err)
	}
	if err != nil || !ok {
		return UpdateResult{Outcome: UpdateFailed, Reason: ReasonUpdateFailed}
	}

	if e.listener != nil {
		e.listener.DidUpdateData()
	}
	return UpdateResult{Outcome: UpdateSuccess}
}
