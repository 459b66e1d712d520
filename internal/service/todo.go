package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/dtroode/goldo-server/internal/logger"
	"github.com/dtroode/goldo-server/internal/model"
)

// Todo owns the business rules around to-do items: input validation and the
// ownership check on every id-keyed operation. A todo owned by someone else
// is reported as not found so ids cannot be probed across users.
type Todo struct {
	todoStore model.TodoStore
	userStore model.UserStore
	logger    *logger.Logger
}

func NewTodo(
	todoStore model.TodoStore,
	userStore model.UserStore,
	logger *logger.Logger,
) *Todo {
	return &Todo{
		todoStore: todoStore,
		userStore: userStore,
		logger:    logger,
	}
}

func (s *Todo) CreateTodo(ctx context.Context, userID uuid.UUID, title string) (model.Todo, error) {
	if strings.TrimSpace(title) == "" {
		return model.Todo{}, fmt.Errorf("%w: title is required", model.ErrInvalidInput)
	}

	_, err := s.userStore.GetByID(ctx, userID)
	if errors.Is(err, model.ErrNotFound) {
		return model.Todo{}, model.ErrNotFound
	}
	if err != nil {
		return model.Todo{}, fmt.Errorf("failed to get user by id: %w", err)
	}

	todo, err := s.todoStore.Create(ctx, userID, title)
	if err != nil {
		s.logger.Error("Todo service: failed to create todo",
			"user_id", userID,
			"error", err.Error())
		return model.Todo{}, fmt.Errorf("failed to create todo: %w", err)
	}

	s.logger.Info("Todo service: todo created",
		"user_id", userID,
		"todo_id", todo.ID,
		"rank", todo.Rank)

	return todo, nil
}

func (s *Todo) GetTodos(ctx context.Context, userID uuid.UUID) ([]model.Todo, error) {
	todos, err := s.todoStore.GetByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get todos by user id: %w", err)
	}
	return todos, nil
}

func (s *Todo) GetCompletedTodos(ctx context.Context, userID uuid.UUID) ([]model.Todo, error) {
	todos, err := s.todoStore.GetByUserAndCompleted(ctx, userID, true)
	if err != nil {
		return nil, fmt.Errorf("failed to get completed todos: %w", err)
	}
	return todos, nil
}

func (s *Todo) GetIncompleteTodos(ctx context.Context, userID uuid.UUID) ([]model.Todo, error) {
	todos, err := s.todoStore.GetByUserAndCompleted(ctx, userID, false)
	if err != nil {
		return nil, fmt.Errorf("failed to get incomplete todos: %w", err)
	}
	return todos, nil
}

func (s *Todo) UpdateTodo(ctx context.Context, userID uuid.UUID, id int64, title string, completed bool) (model.Todo, error) {
	if strings.TrimSpace(title) == "" {
		return model.Todo{}, fmt.Errorf("%w: title is required", model.ErrInvalidInput)
	}
	if _, err := s.getOwned(ctx, userID, id); err != nil {
		return model.Todo{}, err
	}

	todo, err := s.todoStore.Update(ctx, id, title, completed)
	if err != nil {
		return model.Todo{}, fmt.Errorf("failed to update todo: %w", err)
	}
	return todo, nil
}

func (s *Todo) MarkComplete(ctx context.Context, userID uuid.UUID, id int64) (model.Todo, error) {
	return s.setCompleted(ctx, userID, id, true)
}

func (s *Todo) MarkIncomplete(ctx context.Context, userID uuid.UUID, id int64) (model.Todo, error) {
	return s.setCompleted(ctx, userID, id, false)
}

func (s *Todo) setCompleted(ctx context.Context, userID uuid.UUID, id int64, completed bool) (model.Todo, error) {
	if _, err := s.getOwned(ctx, userID, id); err != nil {
		return model.Todo{}, err
	}

	todo, err := s.todoStore.SetCompleted(ctx, id, completed)
	if err != nil {
		return model.Todo{}, fmt.Errorf("failed to set todo completion: %w", err)
	}
	return todo, nil
}

func (s *Todo) MoveUp(ctx context.Context, userID uuid.UUID, id int64) (model.Todo, error) {
	if _, err := s.getOwned(ctx, userID, id); err != nil {
		return model.Todo{}, err
	}

	todo, err := s.todoStore.MoveUp(ctx, id)
	if err != nil {
		return model.Todo{}, fmt.Errorf("failed to move todo up: %w", err)
	}
	return todo, nil
}

func (s *Todo) MoveDown(ctx context.Context, userID uuid.UUID, id int64) (model.Todo, error) {
	if _, err := s.getOwned(ctx, userID, id); err != nil {
		return model.Todo{}, err
	}

	todo, err := s.todoStore.MoveDown(ctx, id)
	if err != nil {
		return model.Todo{}, fmt.Errorf("failed to move todo down: %w", err)
	}
	return todo, nil
}

func (s *Todo) DeleteTodo(ctx context.Context, userID uuid.UUID, id int64) error {
	if _, err := s.getOwned(ctx, userID, id); err != nil {
		return err
	}

	if err := s.todoStore.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete todo: %w", err)
	}

	s.logger.Info("Todo service: todo deleted",
		"user_id", userID,
		"todo_id", id)

	return nil
}

func (s *Todo) getOwned(ctx context.Context, userID uuid.UUID, id int64) (model.Todo, error) {
	todo, err := s.todoStore.GetByID(ctx, id)
	if errors.Is(err, model.ErrNotFound) {
		return model.Todo{}, model.ErrNotFound
	}
	if err != nil {
		return model.Todo{}, fmt.Errorf("failed to get todo by id: %w", err)
	}
	if todo.UserID != userID {
		return model.Todo{}, model.ErrNotFound
	}
	return todo, nil
}
