package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"todoapp/internal/domain"
	"todoapp/internal/store"
)

var listOwner = domain.User{ID: 0, Mail: "a@x.com", Password: "1234"}

func setupListService(t *testing.T, titles ...string) (*TaskListService, *store.MemoryStore) {
	t.Helper()
	s := store.NewMemoryStore()
	for _, title := range titles {
		_, err := s.Add(title, "description", time.Now(), nil, listOwner)
		require.NoError(t, err)
	}
	list := NewTaskListService(s)
	require.NoError(t, list.Refresh())
	return list, s
}

func TestTaskListService_Refresh(t *testing.T) {
	// Arrange
	list, s := setupListService(t, "first", "second")

	// Act
	_, err := s.Add("third", "description", time.Now(), nil, listOwner)
	require.NoError(t, err)

	// Assert: the snapshot is stable until the next refresh.
	assert.Equal(t, 2, list.Count())
	require.NoError(t, list.Refresh())
	assert.Equal(t, 3, list.Count())
}

func TestTaskListService_TaskAt(t *testing.T) {
	// Arrange
	list, _ := setupListService(t, "first", "second")

	// Act / Assert
	task, ok := list.TaskAt(1)
	assert.True(t, ok)
	assert.Equal(t, "second", task.Title)

	_, ok = list.TaskAt(2)
	assert.False(t, ok)
	_, ok = list.TaskAt(-1)
	assert.False(t, ok)
}

func TestTaskListService_DeleteAt(t *testing.T) {
	// Arrange: two seeded tasks with ids 0 and 1.
	list, s := setupListService(t, "first", "second")

	// Act
	require.NoError(t, list.DeleteAt(0))

	// Assert: snapshot and store both shrink; the remaining task keeps id 1.
	assert.Equal(t, 1, list.Count())
	remaining, ok := list.TaskAt(0)
	require.True(t, ok)
	assert.Equal(t, int64(1), remaining.ID)

	tasks, err := s.List()
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	assert.Equal(t, int64(1), tasks[0].ID)
}

func TestTaskListService_ToggleCompletionAt(t *testing.T) {
	// Arrange
	list, s := setupListService(t, "first")

	// Act
	require.NoError(t, list.ToggleCompletionAt(0))

	// Assert: flag flipped in both snapshot and store.
	task, ok := list.TaskAt(0)
	require.True(t, ok)
	assert.True(t, task.IsCompleted)

	stored, err := s.Get(task.ID)
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.True(t, stored.IsCompleted)
}

func TestTaskListService_ToggleCompletionAt_IsItsOwnInverse(t *testing.T) {
	// Arrange
	list, s := setupListService(t, "first")

	// Act
	require.NoError(t, list.ToggleCompletionAt(0))
	require.NoError(t, list.ToggleCompletionAt(0))

	// Assert
	task, ok := list.TaskAt(0)
	require.True(t, ok)
	assert.False(t, task.IsCompleted)

	stored, err := s.Get(task.ID)
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.False(t, stored.IsCompleted)
}

func TestTaskListService_ToggleCompletionAt_OutOfBoundsIsNoOp(t *testing.T) {
	// Arrange
	list, s := setupListService(t, "first")
	before, err := s.List()
	require.NoError(t, err)

	// Act
	require.NoError(t, list.ToggleCompletionAt(5))
	require.NoError(t, list.ToggleCompletionAt(-1))

	// Assert
	after, err := s.List()
	require.NoError(t, err)
	assert.Equal(t, before, after)
}

func TestTaskListService_ToggleCompletionAt_PreservesEndDate(t *testing.T) {
	// Arrange: one task without an end date, one with.
	s := store.NewMemoryStore()
	_, err := s.Add("open ended", "description", time.Now(), nil, listOwner)
	require.NoError(t, err)
	end := time.Date(2026, 9, 5, 0, 0, 0, 0, time.UTC)
	_, err = s.Add("bounded", "description", time.Now(), &end, listOwner)
	require.NoError(t, err)

	list := NewTaskListService(s)
	require.NoError(t, list.Refresh())

	// Act
	require.NoError(t, list.ToggleCompletionAt(0))
	require.NoError(t, list.ToggleCompletionAt(1))

	// Assert: toggling never touches the end date.
	tasks, err := s.List()
	require.NoError(t, err)
	assert.Nil(t, tasks[0].EndDate)
	require.NotNil(t, tasks[1].EndDate)
	assert.True(t, tasks[1].EndDate.Equal(end))
}

func TestTaskListService_ToggleCompletionAt_SnapshotDivergesWhenTaskVanished(t *testing.T) {
	// Arrange: the task disappears from the store after the refresh.
	list, s := setupListService(t, "first")
	require.NoError(t, s.Delete(0))

	// Act
	require.NoError(t, list.ToggleCompletionAt(0))

	// Assert: the cached entry is flipped even though the store update
	// reported not-found; the store itself stays empty.
	task, ok := list.TaskAt(0)
	require.True(t, ok)
	assert.True(t, task.IsCompleted)

	tasks, err := s.List()
	require.NoError(t, err)
	assert.Empty(t, tasks)
}

func TestTaskListService_DidUpdateData_Refreshes(t *testing.T) {
	// Arrange
	list, s := setupListService(t, "first")
	_, err := s.Add("second", "description", time.Now(), nil, listOwner)
	require.NoError(t, err)

	// Act
	list.DidUpdateData()

	// Assert
	assert.Equal(t, 2, list.Count())
}
