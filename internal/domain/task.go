package domain

import (
	"time"
)

// Task represents a to-do item in the domain model.
// This is a pure domain model without storage-specific concerns.
type Task struct {
	ID          int64
	Title       string
	Description string
	StartDate   time.Time
	EndDate     *time.Time // Using pointer to allow "no end date"
	IsCompleted bool
	Owner       User // Captured by value at creation; never reassigned
}

// NewTask creates a new Task with the given fields. Completion starts false.
func NewTask(title, description string, startDate time.Time, endDate *time.Time, owner User) Task {
	return Task{
		Title:       title,
		Description: description,
		StartDate:   startDate,
		EndDate:     endDate,
		Owner:       owner,
	}
}

// IsValid checks if the task has valid data. The rule is exact string
// non-emptiness for title and description; whitespace counts as content.
func (t Task) IsValid() bool {
	return t.Title != "" && t.Description != ""
}

// HasEndDate returns true if the task has an end date set.
func (t Task) HasEndDate() bool {
	return t.EndDate != nil
}

// String returns the task title for display purposes.
func (t Task) String() string {
	return t.Title
}
