package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/dtroode/goldo-server/internal/mocks"
	"github.com/dtroode/goldo-server/internal/model"
	"github.com/dtroode/goldo-server/internal/testutil"
)

func TestTodo_CreateTodo_Success(t *testing.T) {
	ctx := context.Background()
	todoStore := &mocks.TodoStore{}
	userStore := &mocks.UserStore{}

	userID := uuid.New()
	userStore.On("GetByID", mock.Anything, userID).Return(model.User{ID: userID}, nil)
	todoStore.On("Create", mock.Anything, userID, "buy milk").Return(model.Todo{
		ID: 1, UserID: userID, Title: "buy milk", Rank: 0, CreatedAt: time.Now(),
	}, nil)

	s := NewTodo(todoStore, userStore, testutil.MakeNoopLogger())

	todo, err := s.CreateTodo(ctx, userID, "buy milk")
	require.NoError(t, err)
	assert.Equal(t, "buy milk", todo.Title)
	assert.False(t, todo.Completed)
	assert.EqualValues(t, 0, todo.Rank)
}

func TestTodo_CreateTodo_EmptyTitle(t *testing.T) {
	s := NewTodo(&mocks.TodoStore{}, &mocks.UserStore{}, testutil.MakeNoopLogger())

	_, err := s.CreateTodo(context.Background(), uuid.New(), "   ")
	require.ErrorIs(t, err, model.ErrInvalidInput)
}

func TestTodo_CreateTodo_UnknownUser(t *testing.T) {
	ctx := context.Background()
	userStore := &mocks.UserStore{}

	userID := uuid.New()
	userStore.On("GetByID", mock.Anything, userID).Return(model.User{}, model.ErrNotFound)

	s := NewTodo(&mocks.TodoStore{}, userStore, testutil.MakeNoopLogger())

	_, err := s.CreateTodo(ctx, userID, "buy milk")
	require.ErrorIs(t, err, model.ErrNotFound)
}

func TestTodo_GetTodos(t *testing.T) {
	ctx := context.Background()
	todoStore := &mocks.TodoStore{}

	userID := uuid.New()
	todoStore.On("GetByUser", mock.Anything, userID).Return([]model.Todo{
		{ID: 7, UserID: userID, Title: "first"},
		{ID: 5, UserID: userID, Title: "second"},
	}, nil)

	s := NewTodo(todoStore, &mocks.UserStore{}, testutil.MakeNoopLogger())

	todos, err := s.GetTodos(ctx, userID)
	require.NoError(t, err)
	require.Len(t, todos, 2)
	assert.EqualValues(t, 7, todos[0].ID)
}

func TestTodo_GetFilteredTodos(t *testing.T) {
	ctx := context.Background()
	todoStore := &mocks.TodoStore{}

	userID := uuid.New()
	todoStore.On("GetByUserAndCompleted", mock.Anything, userID, true).Return([]model.Todo{{ID: 1, Completed: true}}, nil)
	todoStore.On("GetByUserAndCompleted", mock.Anything, userID, false).Return([]model.Todo{{ID: 2}}, nil)

	s := NewTodo(todoStore, &mocks.UserStore{}, testutil.MakeNoopLogger())

	completed, err := s.GetCompletedTodos(ctx, userID)
	require.NoError(t, err)
	require.Len(t, completed, 1)
	assert.True(t, completed[0].Completed)

	incomplete, err := s.GetIncompleteTodos(ctx, userID)
	require.NoError(t, err)
	require.Len(t, incomplete, 1)
	assert.False(t, incomplete[0].Completed)
}

func TestTodo_MarkComplete_Owned(t *testing.T) {
	ctx := context.Background()
	todoStore := &mocks.TodoStore{}

	userID := uuid.New()
	todoStore.On("GetByID", mock.Anything, int64(3)).Return(model.Todo{ID: 3, UserID: userID}, nil)
	todoStore.On("SetCompleted", mock.Anything, int64(3), true).Return(model.Todo{ID: 3, UserID: userID, Completed: true}, nil)

	s := NewTodo(todoStore, &mocks.UserStore{}, testutil.MakeNoopLogger())

	todo, err := s.MarkComplete(ctx, userID, 3)
	require.NoError(t, err)
	assert.True(t, todo.Completed)
}

func TestTodo_MarkComplete_ForeignTodo(t *testing.T) {
	ctx := context.Background()
	todoStore := &mocks.TodoStore{}

	owner := uuid.New()
	intruder := uuid.New()
	todoStore.On("GetByID", mock.Anything, int64(3)).Return(model.Todo{ID: 3, UserID: owner}, nil)

	s := NewTodo(todoStore, &mocks.UserStore{}, testutil.MakeNoopLogger())

	// Another user's todo is indistinguishable from a missing one.
	_, err := s.MarkComplete(ctx, intruder, 3)
	require.ErrorIs(t, err, model.ErrNotFound)
	todoStore.AssertNotCalled(t, "SetCompleted", mock.Anything, mock.Anything, mock.Anything)
}

func TestTodo_UpdateTodo(t *testing.T) {
	ctx := context.Background()
	todoStore := &mocks.TodoStore{}

	userID := uuid.New()
	todoStore.On("GetByID", mock.Anything, int64(9)).Return(model.Todo{ID: 9, UserID: userID, Rank: 4}, nil)
	todoStore.On("Update", mock.Anything, int64(9), "new title", true).Return(model.Todo{ID: 9, UserID: userID, Title: "new title", Completed: true, Rank: 4}, nil)

	s := NewTodo(todoStore, &mocks.UserStore{}, testutil.MakeNoopLogger())

	todo, err := s.UpdateTodo(ctx, userID, 9, "new title", true)
	require.NoError(t, err)
	assert.Equal(t, "new title", todo.Title)
	assert.EqualValues(t, 4, todo.Rank)
}

func TestTodo_UpdateTodo_NotFound(t *testing.T) {
	ctx := context.Background()
	todoStore := &mocks.TodoStore{}

	todoStore.On("GetByID", mock.Anything, int64(9)).Return(model.Todo{}, model.ErrNotFound)

	s := NewTodo(todoStore, &mocks.UserStore{}, testutil.MakeNoopLogger())

	_, err := s.UpdateTodo(ctx, uuid.New(), 9, "new title", false)
	require.ErrorIs(t, err, model.ErrNotFound)
}

func TestTodo_Move(t *testing.T) {
	ctx := context.Background()
	todoStore := &mocks.TodoStore{}

	userID := uuid.New()
	todoStore.On("GetByID", mock.Anything, int64(2)).Return(model.Todo{ID: 2, UserID: userID, Rank: 1}, nil)
	todoStore.On("MoveUp", mock.Anything, int64(2)).Return(model.Todo{ID: 2, UserID: userID, Rank: 0}, nil)
	todoStore.On("MoveDown", mock.Anything, int64(2)).Return(model.Todo{ID: 2, UserID: userID, Rank: 2}, nil)

	s := NewTodo(todoStore, &mocks.UserStore{}, testutil.MakeNoopLogger())

	up, err := s.MoveUp(ctx, userID, 2)
	require.NoError(t, err)
	assert.EqualValues(t, 0, up.Rank)

	down, err := s.MoveDown(ctx, userID, 2)
	require.NoError(t, err)
	assert.EqualValues(t, 2, down.Rank)
}

func TestTodo_DeleteTodo(t *testing.T) {
	ctx := context.Background()
	todoStore := &mocks.TodoStore{}

	userID := uuid.New()
	todoStore.On("GetByID", mock.Anything, int64(5)).Return(model.Todo{ID: 5, UserID: userID}, nil)
	todoStore.On("Delete", mock.Anything, int64(5)).Return(nil)

	s := NewTodo(todoStore, &mocks.UserStore{}, testutil.MakeNoopLogger())

	require.NoError(t, s.DeleteTodo(ctx, userID, 5))
}

func TestTodo_DeleteTodo_NotFound(t *testing.T) {
	ctx := context.Background()
	todoStore := &mocks.TodoStore{}

	todoStore.On("GetByID", mock.Anything, int64(5)).Return(model.Todo{}, model.ErrNotFound)

	s := NewTodo(todoStore, &mocks.UserStore{}, testutil.MakeNoopLogger())

	err := s.DeleteTodo(ctx, uuid.New(), 5)
	require.ErrorIs(t, err, model.ErrNotFound)
}
