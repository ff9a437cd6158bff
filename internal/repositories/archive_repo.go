package repositories

import (
	"context"
	"fmt"
	"time"

	"github.com/BradenHooton/planwell/internal/database"
	"github.com/BradenHooton/planwell/internal/models"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type ArchiveRepository struct {
	db *database.DB
}

func NewArchiveRepository(db *database.DB) *ArchiveRepository {
	return &ArchiveRepository{db: db}
}

func scanArchivedTodoRow(scanner rowScanner) (*models.ArchivedTodo, error) {
	var todo models.ArchivedTodo

	err := scanner.Scan(
		&todo.ID, &todo.Title, &todo.DueTime, &todo.Priority,
		&todo.Status, &todo.Category, &todo.IsImportant, &todo.UserID,
		&todo.ArchivedAt,
	)
	if err != nil {
		return nil, database.MapPostgresError(err)
	}

	return &todo, nil
}

func (r *ArchiveRepository) ListByUser(ctx context.Context, userID string) ([]*models.ArchivedTodo, error) {
	query := `
		SELECT id, archived_todo_title, archived_todo_duetime, archived_todo_priority, archived_todo_status, archived_todo_category, archived_is_important, user_id, archived_at
		FROM archived_todos WHERE user_id = $1 ORDER BY archived_at DESC
	`

	rows, err := r.db.Pool.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query archived todos: %w", err)
	}
	defer rows.Close()

	todos := make([]*models.ArchivedTodo, 0)

	for rows.Next() {
		todo, err := scanArchivedTodoRow(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan archived todo: %w", err)
		}
		todos = append(todos, todo)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return todos, nil
}

// ArchiveTodo copies the todo into archived_todos and removes the
// original, inside a single transaction so the row cannot exist in both
// tables or neither. Returns models.ErrNotFound when the todo is absent.
func (r *ArchiveRepository) ArchiveTodo(ctx context.Context, todoID string) error {
	return r.db.WithTransaction(ctx, func(tx pgx.Tx) error {
		var todo models.Todo

		selectQuery := `
			SELECT id, todo_title, todo_duetime, todo_priority, todo_status, todo_category, is_important, user_id, created_at
			FROM todos WHERE id = $1
		`
		err := tx.QueryRow(ctx, selectQuery, todoID).Scan(
			&todo.ID, &todo.Title, &todo.DueTime, &todo.Priority,
			&todo.Status, &todo.Category, &todo.IsImportant, &todo.UserID,
			&todo.CreatedAt,
		)
		if err != nil {
			return database.MapPostgresError(err)
		}

		insertQuery := `
			INSERT INTO archived_todos (id, archived_todo_title, archived_todo_duetime, archived_todo_priority, archived_todo_status, archived_todo_category, archived_is_important, user_id, archived_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		`
		_, err = tx.Exec(ctx, insertQuery,
			uuid.New().String(), todo.Title, todo.DueTime, todo.Priority,
			todo.Status, todo.Category, todo.IsImportant, todo.UserID,
			time.Now(),
		)
		if err != nil {
			return database.MapPostgresError(err)
		}

		_, err = tx.Exec(ctx, `DELETE FROM todos WHERE id = $1`, todoID)
		if err != nil {
			return database.MapPostgresError(err)
		}

		return nil
	})
}

// Delete removes an archived todo and returns the deleted row, or
// models.ErrNotFound when the id is absent.
func (r *ArchiveRepository) Delete(ctx context.Context, id string) (*models.ArchivedTodo, error) {
	query := `
		DELETE FROM archived_todos WHERE id = $1
		RETURNING id, archived_todo_title, archived_todo_duetime, archived_todo_priority, archived_todo_status, archived_todo_category, archived_is_important, user_id, archived_at
	`

	return scanArchivedTodoRow(r.db.Pool.QueryRow(ctx, query, id))
}
