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

type EventRepository struct {
	pool *pgxpool.Pool
}

func NewEventRepository(db *database.DB) *EventRepository {
	return &EventRepository{pool: db.Pool}
}

func scanEventRow(scanner rowScanner) (*models.Event, error) {
	var event models.Event

	err := scanner.Scan(
		&event.ID, &event.Name, &event.Description, &event.Date,
		&event.UserID, &event.CreatedAt,
	)
	if err != nil {
		return nil, database.MapPostgresError(err)
	}

	return &event, nil
}

func scanEventRows(rows pgx.Rows) ([]*models.Event, error) {
	defer rows.Close()

	events := make([]*models.Event, 0)

	for rows.Next() {
		event, err := scanEventRow(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan event: %w", err)
		}
		events = append(events, event)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return events, nil
}

func (r *EventRepository) ListByUser(ctx context.Context, userID string) ([]*models.Event, error) {
	query := `
		SELECT id, event_name, event_description, event_date, user_id, created_at
		FROM events WHERE user_id = $1 ORDER BY event_date ASC
	`

	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query events: %w", err)
	}

	return scanEventRows(rows)
}

func (r *EventRepository) Create(ctx context.Context, event *models.Event) (*models.Event, error) {
	event.ID = uuid.New().String()
	event.CreatedAt = time.Now()

	query := `
		INSERT INTO events (id, event_name, event_description, event_date, user_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, event_name, event_description, event_date, user_id, created_at
	`

	return scanEventRow(r.pool.QueryRow(ctx, query,
		event.ID, event.Name, event.Description, event.Date,
		event.UserID, event.CreatedAt,
	))
}
