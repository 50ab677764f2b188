package config

import (
	"fmt"

	"todoapp/internal/domain"
	"todoapp/internal/logging"
	"todoapp/internal/store"
	"todoapp/internal/store/sqlite"
)

// CreateTaskStore creates the task store selected by the configuration
// and pre-loads the seed tasks when the store starts empty.
func CreateTaskStore(cfg *Config, seedTasks []domain.Task) (store.TaskStore, error) {
	switch cfg.Storage.Backend {
	case BackendMemory:
		logging.Debugln("using in-memory task store")
		return store.NewMemoryStoreWithTasks(seedTasks), nil

	case BackendSQLite:
		logging.Debugf("using sqlite task store: %s\n", cfg.Storage.DSN)
		s, err := sqlite.New(cfg.Storage.DSN)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize sqlite store: %w", err)
		}
		if err := seedStore(s, seedTasks); err != nil {
			s.Close()
			return nil, err
		}
		return s, nil

	default:
		return nil, &ConfigError{Field: "storage.backend", Message: "unknown backend: " + cfg.Storage.Backend}
	}
}

// seedStore appends the seed tasks in order when the store is empty.
// Ids are reassigned by the store; seeding in file order reproduces the
// seed ids because assignment is sequential from 0.
func seedStore(s store.TaskStore, seedTasks []domain.Task) error {
	existing, err := s.List()
	if err != nil {
		return err
	}
	if len(existing) > 0 || len(seedTasks) == 0 {
		return nil
	}

	for _, t := range seedTasks {
		created, err := s.Add(t.Title, t.Description, t.StartDate, t.EndDate, t.Owner)
		if err != nil {
			return err
		}
		if t.IsCompleted {
			if _, err := s.Update(created.ID, t.Title, t.Description, t.StartDate, t.EndDate, true); err != nil {
				return err
			}
		}
	}
	return nil
}

// CreateTestStore creates an empty in-memory store for tests.
func CreateTestStore() store.TaskStore {
	return store.NewMemoryStore()
}
