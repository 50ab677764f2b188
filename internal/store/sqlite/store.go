// Package sqlite implements the TaskStore interface on top of SQLite.
// The default DSN is ":memory:", which keeps the store memory-resident
// so nothing survives a restart; a file path can be supplied for
// development use.
package sqlite

import (
	"database/sql"
	"time"

	"todoapp/internal/domain"
	"todoapp/internal/errors"
	"todoapp/internal/store/sqlite/migrations"

	_ "modernc.org/sqlite"
)

// Store implements store.TaskStore backed by a SQLite database.
//
// Id assignment mirrors the in-memory store: a strictly monotonic
// counter seeded from max(id)+1 at open (0 when the table is empty), so
// ids of deleted tasks are never reused within a process.
type Store struct {
	db     *sql.DB
	nextID int64
}

// New opens a SQLite-backed task store at the given DSN and runs migrations.
func New(dsn string) (*Store, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, errors.NewDatabaseError("open database", err)
	}

	if err := migrations.RunMigrations(db); err != nil {
		db.Close()
		return nil, errors.NewDatabaseError("run migrations", err)
	}

	s := &Store{db: db}
	if err := s.seedNextID(); err != nil {
		db.Close()
		return nil, err
	}

	return s, nil
}

// seedNextID initialises the id counter from the highest existing id.
func (s *Store) seedNextID() error {
	row := s.db.QueryRow(`SELECT COALESCE(MAX(id) + 1, 0) FROM tasks`)
	if err := row.Scan(&s.nextID); err != nil {
		return HandleDatabaseError("seed id counter", err)
	}
	return nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// List returns all tasks in insertion order. Ids are assigned
// monotonically, so ordering by id reproduces insertion order.
func (s *Store) List() ([]domain.Task, error) {
	query := `
	SELECT id, title, description, start_date, end_date, is_completed, owner_id, owner_mail, owner_password
	FROM tasks
	ORDER BY id ASC`

	rows, err := QueryMultiple(s.db, query, ScanTasks, "tasks")
	if err != nil {
		return nil, err
	}

	tasks := make([]domain.Task, 0, len(rows))
	for _, row := range rows {
		task, err := row.ToDomain()
		if err != nil {
			return nil, HandleDatabaseError("decode task", err)
		}
		tasks = append(tasks, task)
	}
	return tasks, nil
}

// Get returns the task with the given id, or nil if absent.
func (s *Store) Get(id int64) (*domain.Task, error) {
	query := `
	SELECT id, title, description, start_date, end_date, is_completed, owner_id, owner_mail, owner_password
	FROM tasks
	WHERE id = ?`

	row, err := QuerySingle(s.db, query, ScanTask, id)
	if err != nil || row == nil {
		return nil, err
	}

	task, err := row.ToDomain()
	if err != nil {
		return nil, HandleDatabaseError("decode task", err)
	}
	return &task, nil
}

// Add inserts a new task with the next id and completion set to false.
func (s *Store) Add(title, description string, startDate time.Time, endDate *time.Time, owner domain.User) (domain.Task, error) {
	task := domain.NewTask(title, description, startDate, endDate, owner)
	task.ID = s.nextID
	row := FromDomain(task)

	query := `
	INSERT INTO tasks (id, title, description, start_date, end_date, is_completed, owner_id, owner_mail, owner_password)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`

	var endDateValue interface{}
	if row.EndDate != nil {
		endDateValue = *row.EndDate
	}
	_, err := s.db.Exec(query,
		row.ID,
		row.Title,
		row.Description,
		row.StartDate,
		endDateValue,
		boolToInt(row.IsCompleted),
		row.OwnerID,
		row.OwnerMail,
		row.OwnerPassword,
	)
	if err != nil {
		return domain.Task{}, HandleDatabaseError("insert task", err)
	}

	s.nextID++
	return task, nil
}

// Update overwrites the listed fields of the matching row. Id and owner
// columns are never touched. Reports false when the id is absent.
func (s *Store) Update(id int64, title, description string, startDate time.Time, endDate *time.Time, isCompleted bool) (bool, error) {
	query := `
	UPDATE tasks
	SET title = ?, description = ?, start_date = ?, end_date = ?, is_completed = ?
	WHERE id = ?`

	rows, err := ExecuteWithRowsAffected(s.db, query,
		title,
		description,
		FormatTimeForDB(startDate),
		FormatTimePtrForDB(endDate),
		boolToInt(isCompleted),
		id,
	)
	if err != nil {
		return false, err
	}
	return rows > 0, nil
}

// Delete removes the task with the given id. No-op if absent.
func (s *Store) Delete(id int64) error {
	query := `DELETE FROM tasks WHERE id = ?`
	_, err := ExecuteWithRowsAffected(s.db, query, id)
	return err
}

func boolToInt(b bool) int64 {
	if b {
		return 1
	}
	return 0
}
