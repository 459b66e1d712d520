package model

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// TodoStore defines persistence operations for todos. List queries order by
// created_at ascending with ties broken by id descending. Create assigns the
// next rank for the owner atomically; MoveUp and MoveDown swap ranks with the
// adjacent item in a single per-user transaction.
type TodoStore interface {
	Create(ctx context.Context, userID uuid.UUID, title string) (Todo, error)
	GetByID(ctx context.Context, id int64) (Todo, error)
	GetByUser(ctx context.Context, userID uuid.UUID) ([]Todo, error)
	GetByUserAndCompleted(ctx context.Context, userID uuid.UUID, completed bool) ([]Todo, error)
	NextRank(ctx context.Context, userID uuid.UUID) (int64, error)
	Update(ctx context.Context, id int64, title string, completed bool) (Todo, error)
	SetCompleted(ctx context.Context, id int64, completed bool) (Todo, error)
	MoveUp(ctx context.Context, id int64) (Todo, error)
	MoveDown(ctx context.Context, id int64) (Todo, error)
	Delete(ctx context.Context, id int64) error
}

// Todo represents a single to-do item. Rank carries the manual display order
// within the owner's list and is independent of creation time.
type Todo struct {
	ID        int64
	UserID    uuid.UUID
	Title     string
	Completed bool
	CreatedAt time.Time
	Rank      int64
}
