package sqlite

import (
	"todoapp/internal/domain"
)

// Task represents a task row in the tasks table. Dates are stored as
// RFC3339 text; the owner is denormalised onto the row because it is
// captured by value at creation time and never reassigned.
type Task struct {
	ID            int64
	Title         string
	Description   string
	StartDate     string
	EndDate       *string
	IsCompleted   bool
	OwnerID       int64
	OwnerMail     string
	OwnerPassword string
}

// ToDomain converts a database Task row to a domain Task.
func (t Task) ToDomain() (domain.Task, error) {
	startDate, err := ParseTimeFromDB(t.StartDate)
	if err != nil {
		return domain.Task{}, err
	}

	task := domain.Task{
		ID:          t.ID,
		Title:       t.Title,
		Description: t.Description,
		StartDate:   startDate,
		IsCompleted: t.IsCompleted,
		Owner: domain.User{
			ID:       t.OwnerID,
			Mail:     t.OwnerMail,
			Password: t.OwnerPassword,
		},
	}

	if t.EndDate != nil {
		endDate, err := ParseTimeFromDB(*t.EndDate)
		if err != nil {
			return domain.Task{}, err
		}
		task.EndDate = &endDate
	}

	return task, nil
}

// FromDomain converts a domain Task to a database Task row.
func FromDomain(task domain.Task) Task {
	row := Task{
		ID:            task.ID,
		Title:         task.Title,
		Description:   task.Description,
		StartDate:     FormatTimeForDB(task.StartDate),
		IsCompleted:   task.IsCompleted,
		OwnerID:       task.Owner.ID,
		OwnerMail:     task.Owner.Mail,
		OwnerPassword: task.Owner.Password,
	}
	if task.EndDate != nil {
		formatted := FormatTimeForDB(*task.EndDate)
		row.EndDate = &formatted
	}
	return row
}
