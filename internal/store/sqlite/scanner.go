package sqlite

import (
	"database/sql"
)

// Scanner interface defines the common scanning behavior for both sql.Row and sql.Rows
type Scanner interface {
	Scan(dest ...interface{}) error
}

// Rows interface defines the common behavior for sql.Rows
type Rows interface {
	Next() bool
	Scan(dest ...interface{}) error
	Err() error
}

// ScanTask scans a single task row from a database row
func ScanTask(scanner Scanner) (*Task, error) {
	task := &Task{}
	var endDate sql.NullString
	var completed int64

	err := scanner.Scan(
		&task.ID,
		&task.Title,
		&task.Description,
		&task.StartDate,
		&endDate,
		&completed,
		&task.OwnerID,
		&task.OwnerMail,
		&task.OwnerPassword,
	)
	if err != nil {
		return nil, err
	}

	if endDate.Valid {
		task.EndDate = &endDate.String
	}
	task.IsCompleted = completed != 0

	return task, nil
}

// ScanTasks scans multiple task rows from database rows
func ScanTasks(rows Rows) ([]*Task, error) {
	var tasks []*Task
	for rows.Next() {
		task, err := ScanTask(rows)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, task)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return tasks, nil
}
