package store

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"todoapp/internal/domain"
)

var testOwner = domain.User{ID: 0, Mail: "a@x.com", Password: "1234"}

func addTask(t *testing.T, s *MemoryStore, title string) domain.Task {
	t.Helper()
	task, err := s.Add(title, "description", time.Now(), nil, testOwner)
	require.NoError(t, err)
	return task
}

func TestMemoryStore_Add_AssignsIDs(t *testing.T) {
	// Arrange
	s := NewMemoryStore()

	// Act
	first := addTask(t, s, "first")
	second := addTask(t, s, "second")
	third := addTask(t, s, "third")

	// Assert
	assert.Equal(t, int64(0), first.ID)
	assert.Equal(t, int64(1), second.ID)
	assert.Equal(t, int64(2), third.ID)
	assert.False(t, first.IsCompleted)
}

func TestMemoryStore_Add_NeverReusesIDs(t *testing.T) {
	tests := []struct {
		name       string
		deleteIDs  []int64
		expectedID int64
	}{
		{
			name:       "after deleting the highest id",
			deleteIDs:  []int64{1},
			expectedID: 2,
		},
		{
			name:       "after deleting the lowest id",
			deleteIDs:  []int64{0},
			expectedID: 2,
		},
		{
			name:       "after deleting everything",
			deleteIDs:  []int64{0, 1},
			expectedID: 2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Arrange
			s := NewMemoryStore()
			addTask(t, s, "first")
			addTask(t, s, "second")

			// Act
			for _, id := range tt.deleteIDs {
				require.NoError(t, s.Delete(id))
			}
			created := addTask(t, s, "third")

			// Assert
			assert.Equal(t, tt.expectedID, created.ID)

			tasks, err := s.List()
			require.NoError(t, err)
			seen := make(map[int64]bool)
			for _, task := range tasks {
				assert.False(t, seen[task.ID], "duplicate id %d", task.ID)
				seen[task.ID] = true
			}
		})
	}
}

func TestMemoryStore_List_InsertionOrder(t *testing.T) {
	// Arrange
	s := NewMemoryStore()
	addTask(t, s, "first")
	addTask(t, s, "second")
	addTask(t, s, "third")
	require.NoError(t, s.Delete(1))
	addTask(t, s, "fourth")

	// Act
	tasks, err := s.List()

	// Assert
	require.NoError(t, err)
	require.Len(t, tasks, 3)
	assert.Equal(t, "first", tasks[0].Title)
	assert.Equal(t, "third", tasks[1].Title)
	assert.Equal(t, "fourth", tasks[2].Title)
}

func TestMemoryStore_List_ReturnsCopy(t *testing.T) {
	// Arrange
	s := NewMemoryStore()
	addTask(t, s, "original")

	// Act
	tasks, err := s.List()
	require.NoError(t, err)
	tasks[0].Title = "mutated"

	// Assert
	fresh, err := s.List()
	require.NoError(t, err)
	assert.Equal(t, "original", fresh[0].Title)
}

func TestMemoryStore_Get(t *testing.T) {
	// Arrange
	s := NewMemoryStore()
	created := addTask(t, s, "findable")

	// Act
	found, err := s.Get(created.ID)
	missing, missingErr := s.Get(99)

	// Assert
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, created, *found)

	require.NoError(t, missingErr)
	assert.Nil(t, missing)
}

func TestMemoryStore_Update(t *testing.T) {
	// Arrange
	s := NewMemoryStore()
	created := addTask(t, s, "before")
	newStart := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	newEnd := newStart.AddDate(0, 0, 5)

	// Act
	ok, err := s.Update(created.ID, "after", "new description", newStart, &newEnd, true)

	// Assert
	require.NoError(t, err)
	assert.True(t, ok)

	updated, err := s.Get(created.ID)
	require.NoError(t, err)
	require.NotNil(t, updated)
	assert.Equal(t, "after", updated.Title)
	assert.Equal(t, "new description", updated.Description)
	assert.True(t, updated.StartDate.Equal(newStart))
	require.NotNil(t, updated.EndDate)
	assert.True(t, updated.EndDate.Equal(newEnd))
	assert.True(t, updated.IsCompleted)
	// Id and owner are never altered by update.
	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, testOwner, updated.Owner)
}

func TestMemoryStore_Update_NotFoundLeavesStoreUnchanged(t *testing.T) {
	// Arrange
	s := NewMemoryStore()
	addTask(t, s, "untouched")
	before, err := s.List()
	require.NoError(t, err)

	// Act
	ok, err := s.Update(99, "x", "y", time.Now(), nil, true)

	// Assert
	require.NoError(t, err)
	assert.False(t, ok)

	after, err := s.List()
	require.NoError(t, err)
	assert.Equal(t, before, after)
}

func TestMemoryStore_Delete(t *testing.T) {
	// Arrange
	s := NewMemoryStore()
	first := addTask(t, s, "first")
	second := addTask(t, s, "second")

	// Act
	require.NoError(t, s.Delete(first.ID))
	// Deleting an absent id is a silent no-op.
	require.NoError(t, s.Delete(99))

	// Assert
	tasks, err := s.List()
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	assert.Equal(t, second.ID, tasks[0].ID)
}

func TestNewMemoryStoreWithTasks_ResumesIDCounter(t *testing.T) {
	// Arrange
	seeded := []domain.Task{
		{ID: 0, Title: "first", Description: "d", StartDate: time.Now(), Owner: testOwner},
		{ID: 4, Title: "second", Description: "d", StartDate: time.Now(), Owner: testOwner},
	}
	s := NewMemoryStoreWithTasks(seeded)

	// Act
	created := addTask(t, s, "third")

	// Assert
	assert.Equal(t, int64(5), created.ID)
	assert.Equal(t, 3, func() int { tasks, _ := s.List(); return len(tasks) }())
}
