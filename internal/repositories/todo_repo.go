package repositories

import (
	"context"
	"fmt"
	"time"

	"github.com/BradenHooton/planwell/internal/database"
	"github.com/BradenHooton/planwell/internal/models"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type TodoRepository struct {
	pool *pgxpool.Pool
}

func NewTodoRepository(db *database.DB) *TodoRepository {
	return &TodoRepository{pool: db.Pool}
}

func scanTodoRow(scanner rowScanner) (*models.Todo, error) {
	var todo models.Todo

	err := scanner.Scan(
		&todo.ID, &todo.Title, &todo.DueTime, &todo.Priority,
		&todo.Status, &todo.Category, &todo.IsImportant, &todo.UserID,
		&todo.CreatedAt,
	)
	if err != nil {
		return nil, database.MapPostgresError(err)
	}

	return &todo, nil
}

func scanTodoRows(rows pgx.Rows) ([]*models.Todo, error) {
	defer rows.Close()

	todos := make([]*models.Todo, 0)

	for rows.Next() {
		todo, err := scanTodoRow(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan todo: %w", err)
		}
		todos = append(todos, todo)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return todos, nil
}

func (r *TodoRepository) ListByUser(ctx context.Context, userID string) ([]*models.Todo, error) {
	query := `
		SELECT id, todo_title, todo_duetime, todo_priority, todo_status, todo_category, is_important, user_id, created_at
		FROM todos WHERE user_id = $1 ORDER BY created_at DESC
	`

	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query todos: %w", err)
	}

	return scanTodoRows(rows)
}

func (r *TodoRepository) Create(ctx context.Context, todo *models.Todo) (*models.Todo, error) {
	todo.ID = uuid.New().String()
	todo.CreatedAt = time.Now()

	query := `
		INSERT INTO todos (id, todo_title, todo_duetime, todo_priority, todo_status, todo_category, is_important, user_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id, todo_title, todo_duetime, todo_priority, todo_status, todo_category, is_important, user_id, created_at
	`

	return scanTodoRow(r.pool.QueryRow(ctx, query,
		todo.ID, todo.Title, todo.DueTime, todo.Priority,
		todo.Status, todo.Category, todo.IsImportant, todo.UserID,
		todo.CreatedAt,
	))
}

// Delete removes the todo and returns the deleted row, or
// models.ErrNotFound when the id is absent.
func (r *TodoRepository) Delete(ctx context.Context, id string) (*models.Todo, error) {
	query := `
		DELETE FROM todos WHERE id = $1
		RETURNING id, todo_title, todo_duetime, todo_priority, todo_status, todo_category, is_important, user_id, created_at
	`

	return scanTodoRow(r.pool.QueryRow(ctx, query, id))
}
