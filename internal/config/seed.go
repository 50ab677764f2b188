package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"todoapp/internal/domain"
)

// seedUser is the YAML shape of a directory entry.
type seedUser struct {
	ID       int64  `yaml:"id"`
	Mail     string `yaml:"mail"`
	Password string `yaml:"password"`
}

// seedTask is the YAML shape of a pre-loaded task. Dates are RFC3339
// strings; owner references a seeded user by id.
type seedTask struct {
	Title       string  `yaml:"title"`
	Description string  `yaml:"description"`
	StartDate   string  `yaml:"start_date"`
	EndDate     *string `yaml:"end_date"`
	IsCompleted bool    `yaml:"is_completed"`
	Owner       int64   `yaml:"owner"`
}

type seedFile struct {
	Users []seedUser `yaml:"users"`
	Tasks []seedTask `yaml:"tasks"`
}

// Seed holds the initial application state: the registered users and
// any pre-loaded tasks.
type Seed struct {
	Users []domain.User
	Tasks []domain.Task
}

// DefaultSeed returns the built-in demo seed used when no seed file is
// configured: one demo user and two demo tasks owned by that user.
func DefaultSeed() *Seed {
	demoUser := domain.User{ID: 0, Mail: "demo@example.com", Password: "1234"}
	now := time.Now()
	return &Seed{
		Users: []domain.User{demoUser},
		Tasks: []domain.Task{
			{ID: 0, Title: "Demo", Description: "It is a demo task", StartDate: now, Owner: demoUser},
			{ID: 1, Title: "Demo", Description: "It is a demo task", StartDate: now, Owner: demoUser},
		},
	}
}

// LoadSeed reads a YAML seed file and resolves task owners against the
// declared users. Task ids are assigned in file order starting at 0.
func LoadSeed(path string) (*Seed, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read seed file: %w", err)
	}

	var file seedFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse seed file: %w", err)
	}

	seed := &Seed{}

	usersByID := make(map[int64]domain.User, len(file.Users))
	for _, u := range file.Users {
		if u.Mail == "" {
			return nil, fmt.Errorf("seed user %d has no mail", u.ID)
		}
		if _, exists := usersByID[u.ID]; exists {
			return nil, fmt.Errorf("duplicate seed user id %d", u.ID)
		}
		user := domain.User{ID: u.ID, Mail: u.Mail, Password: u.Password}
		usersByID[u.ID] = user
		seed.Users = append(seed.Users, user)
	}

	for i, t := range file.Tasks {
		owner, ok := usersByID[t.Owner]
		if !ok {
			return nil, fmt.Errorf("seed task %q references unknown user %d", t.Title, t.Owner)
		}

		startDate, err := time.Parse(time.RFC3339, t.StartDate)
		if err != nil {
			return nil, fmt.Errorf("seed task %q has invalid start_date: %w", t.Title, err)
		}

		task := domain.Task{
			ID:          int64(i),
			Title:       t.Title,
			Description: t.Description,
			StartDate:   startDate,
			IsCompleted: t.IsCompleted,
			Owner:       owner,
		}
		if t.EndDate != nil {
			endDate, err := time.Parse(time.RFC3339, *t.EndDate)
			if err != nil {
				return nil, fmt.Errorf("seed task %q has invalid end_date: %w", t.Title, err)
			}
			task.EndDate = &endDate
		}

		seed.Tasks = append(seed.Tasks, task)
	}

	return seed, nil
}

// LoadConfiguredSeed loads the seed file named in the configuration, or
// the built-in demo seed when none is configured.
func LoadConfiguredSeed(cfg *Config) (*Seed, error) {
	if cfg.Users.SeedFile == "" {
		return DefaultSeed(), nil
	}
	return LoadSeed(cfg.Users.SeedFile)
}
