package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/dtroode/goldo-server/internal/model"
)

var _ model.TodoStore = (*TodoRepository)(nil)

// TodoRepository persists todos and owns the rank invariants: a create
// appends at max(rank)+1 and a move swaps ranks with the adjacent item.
// Both run inside a transaction holding a per-user advisory lock, so
// concurrent writes to one user's list serialize.
type TodoRepository struct {
	db *Connection
}

func NewTodoRepository(db *Connection) *TodoRepository {
	return &TodoRepository{
		db: db,
	}
}

const todoColumns = `id, user_id, title, completed, created_at, rank`

// listOrder is the display ordering contract: creation time ascending, ties
// broken by id descending so two rows sharing a timestamp still order
// deterministically.
const listOrder = ` ORDER BY created_at ASC, id DESC`

// lockUserList serializes writers of one user's list for the duration of the
// transaction.
func lockUserList(ctx context.Context, tx pgx.Tx, userID uuid.UUID) error {
	_, err := tx.Exec(ctx, `SELECT pg_advisory_xact_lock(hashtextextended($1::text, 0))`, userID)
	return err
}

func (r *TodoRepository) Create(ctx context.Context, userID uuid.UUID, title string) (model.Todo, error) {
	ctx, cancel := r.db.withTimeout(ctx)
	defer cancel()

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return model.Todo{}, fmt.Errorf("failed to begin transaction: %w", classify(err))
	}
	defer tx.Rollback(ctx)

	if err := lockUserList(ctx, tx, userID); err != nil {
		return model.Todo{}, fmt.Errorf("failed to lock user list: %w", classify(err))
	}

	query := `INSERT INTO todos (user_id, title, completed, created_at, rank)
			  VALUES ($1, $2, false, NOW(),
			          (SELECT COALESCE(MAX(rank) + 1, 0) FROM todos WHERE user_id = $1))
			  RETURNING ` + todoColumns

	var todo model.Todo
	err = tx.QueryRow(ctx, query, userID, title).Scan(
		&todo.ID, &todo.UserID, &todo.Title, &todo.Completed, &todo.CreatedAt, &todo.Rank,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return model.Todo{}, model.ErrNotFound
		}
		return model.Todo{}, fmt.Errorf("failed to create todo: %w", classify(err))
	}

	if err := tx.Commit(ctx); err != nil {
		return model.Todo{}, fmt.Errorf("failed to commit todo creation: %w", classify(err))
	}

	return todo, nil
}

func (r *TodoRepository) GetByID(ctx context.Context, id int64) (model.Todo, error) {
	ctx, cancel := r.db.withTimeout(ctx)
	defer cancel()

	var todo model.Todo
	query := `SELECT ` + todoColumns + ` FROM todos WHERE id = $1`

	err := r.db.QueryRow(ctx, query, id).Scan(
		&todo.ID, &todo.UserID, &todo.Title, &todo.Completed, &todo.CreatedAt, &todo.Rank,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Todo{}, model.ErrNotFound
		}
		return model.Todo{}, fmt.Errorf("failed to get todo by id: %w", classify(err))
	}

	return todo, nil
}

func (r *TodoRepository) GetByUser(ctx context.Context, userID uuid.UUID) ([]model.Todo, error) {
	query := `SELECT ` + todoColumns + ` FROM todos WHERE user_id = $1` + listOrder
	return r.queryTodos(ctx, query, userID)
}

func (r *TodoRepository) GetByUserAndCompleted(ctx context.Context, userID uuid.UUID, completed bool) ([]model.Todo, error) {
	query := `SELECT ` + todoColumns + ` FROM todos WHERE user_id = $1 AND completed = $2` + listOrder
	return r.queryTodos(ctx, query, userID, completed)
}

func (r *TodoRepository) queryTodos(ctx context.Context, query string, args ...any) ([]model.Todo, error) {
	ctx, cancel := r.db.withTimeout(ctx)
	defer cancel()

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query todos: %w", classify(err))
	}
	defer rows.Close()

	var todos []model.Todo
	for rows.Next() {
		var todo model.Todo
		err := rows.Scan(
			&todo.ID, &todo.UserID, &todo.Title, &todo.Completed, &todo.CreatedAt, &todo.Rank,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan todo: %w", err)
		}
		todos = append(todos, todo)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read todos: %w", classify(err))
	}

	return todos, nil
}

// NextRank returns the rank a new todo for userID would receive: max(rank)+1,
// or 0 for an empty list. Create computes the same value inside its own
// transaction; this read exists for callers that only want to inspect it.
func (r *TodoRepository) NextRank(ctx context.Context, userID uuid.UUID) (int64, error) {
	ctx, cancel := r.db.withTimeout(ctx)
	defer cancel()

	var rank int64
	query := `SELECT COALESCE(MAX(rank) + 1, 0) FROM todos WHERE user_id = $1`

	if err := r.db.QueryRow(ctx, query, userID).Scan(&rank); err != nil {
		return 0, fmt.Errorf("failed to compute next rank: %w", classify(err))
	}

	return rank, nil
}

func (r *TodoRepository) Update(ctx context.Context, id int64, title string, completed bool) (model.Todo, error) {
	ctx, cancel := r.db.withTimeout(ctx)
	defer cancel()

	query := `UPDATE todos SET title = $2, completed = $3 WHERE id = $1
			  RETURNING ` + todoColumns

	var todo model.Todo
	err := r.db.QueryRow(ctx, query, id, title, completed).Scan(
		&todo.ID, &todo.UserID, &todo.Title, &todo.Completed, &todo.CreatedAt, &todo.Rank,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Todo{}, model.ErrNotFound
		}
		return model.Todo{}, fmt.Errorf("failed to update todo: %w", classify(err))
	}

	return todo, nil
}

func (r *TodoRepository) SetCompleted(ctx context.Context, id int64, completed bool) (model.Todo, error) {
	ctx, cancel := r.db.withTimeout(ctx)
	defer cancel()

	query := `UPDATE todos SET completed = $2 WHERE id = $1
			  RETURNING ` + todoColumns

	var todo model.Todo
	err := r.db.QueryRow(ctx, query, id, completed).Scan(
		&todo.ID, &todo.UserID, &todo.Title, &todo.Completed, &todo.CreatedAt, &todo.Rank,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Todo{}, model.ErrNotFound
		}
		return model.Todo{}, fmt.Errorf("failed to set todo completion: %w", classify(err))
	}

	return todo, nil
}

// MoveUp swaps the todo's rank with the closest lower-ranked item of the same
// user. Moving the first item is a no-op.
func (r *TodoRepository) MoveUp(ctx context.Context, id int64) (model.Todo, error) {
	return r.moveRank(ctx, id, true)
}

// MoveDown swaps the todo's rank with the closest higher-ranked item of the
// same user. Moving the last item is a no-op.
func (r *TodoRepository) MoveDown(ctx context.Context, id int64) (model.Todo, error) {
	return r.moveRank(ctx, id, false)
}

func (r *TodoRepository) moveRank(ctx context.Context, id int64, up bool) (model.Todo, error) {
	ctx, cancel := r.db.withTimeout(ctx)
	defer cancel()

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return model.Todo{}, fmt.Errorf("failed to begin transaction: %w", classify(err))
	}
	defer tx.Rollback(ctx)

	var userID uuid.UUID
	err = tx.QueryRow(ctx, `SELECT user_id FROM todos WHERE id = $1`, id).Scan(&userID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Todo{}, model.ErrNotFound
		}
		return model.Todo{}, fmt.Errorf("failed to get todo owner: %w", classify(err))
	}

	if err := lockUserList(ctx, tx, userID); err != nil {
		return model.Todo{}, fmt.Errorf("failed to lock user list: %w", classify(err))
	}

	// Re-read under the lock: the rank may have moved between the owner
	// lookup and lock acquisition.
	var todo model.Todo
	err = tx.QueryRow(ctx, `SELECT `+todoColumns+` FROM todos WHERE id = $1`, id).Scan(
		&todo.ID, &todo.UserID, &todo.Title, &todo.Completed, &todo.CreatedAt, &todo.Rank,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Todo{}, model.ErrNotFound
		}
		return model.Todo{}, fmt.Errorf("failed to get todo: %w", classify(err))
	}

	neighborQuery := `SELECT id, rank FROM todos
					  WHERE user_id = $1 AND rank > $2 ORDER BY rank ASC LIMIT 1`
	if up {
		neighborQuery = `SELECT id, rank FROM todos
						 WHERE user_id = $1 AND rank < $2 ORDER BY rank DESC LIMIT 1`
	}

	var neighborID, neighborRank int64
	err = tx.QueryRow(ctx, neighborQuery, userID, todo.Rank).Scan(&neighborID, &neighborRank)
	if errors.Is(err, pgx.ErrNoRows) {
		// Already at the edge of the list.
		if err := tx.Commit(ctx); err != nil {
			return model.Todo{}, fmt.Errorf("failed to commit rank move: %w", classify(err))
		}
		return todo, nil
	}
	if err != nil {
		return model.Todo{}, fmt.Errorf("failed to get adjacent todo: %w", classify(err))
	}

	// The unique (user_id, rank) constraint is deferred, so the swap may pass
	// through a duplicate inside the transaction.
	if _, err := tx.Exec(ctx, `UPDATE todos SET rank = $2 WHERE id = $1`, neighborID, todo.Rank); err != nil {
		return model.Todo{}, fmt.Errorf("failed to move adjacent todo: %w", classify(err))
	}
	if _, err := tx.Exec(ctx, `UPDATE todos SET rank = $2 WHERE id = $1`, todo.ID, neighborRank); err != nil {
		return model.Todo{}, fmt.Errorf("failed to move todo: %w", classify(err))
	}

	if err := tx.Commit(ctx); err != nil {
		return model.Todo{}, fmt.Errorf("failed to commit rank move: %w", classify(err))
	}

	todo.Rank = neighborRank
	return todo, nil
}

func (r *TodoRepository) Delete(ctx context.Context, id int64) error {
	ctx, cancel := r.db.withTimeout(ctx)
	defer cancel()

	cmd, err := r.db.Exec(ctx, `DELETE FROM todos WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete todo: %w", classify(err))
	}
	if cmd.RowsAffected() == 0 {
		return model.ErrNotFound
	}
	return nil
}
