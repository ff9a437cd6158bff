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

type JobRepository struct {
	pool *pgxpool.Pool
}

func NewJobRepository(db *database.DB) *JobRepository {
	return &JobRepository{pool: db.Pool}
}

// JobUpdate holds the optional fields of a partial job update. Nil
// fields keep their current value.
type JobUpdate struct {
	Title      *string    `json:"job_title"`
	Company    *string    `json:"company"`
	AppliedAt  *time.Time `json:"applied_at"`
	Status     *string    `json:"job_status"`
	Type       *string    `json:"job_type"`
	WebsiteURL *string    `json:"website_url"`
}

// IsEmpty reports whether no field was provided.
func (u *JobUpdate) IsEmpty() bool {
	return u.Title == nil && u.Company == nil && u.AppliedAt == nil &&
		u.Status == nil && u.Type == nil && u.WebsiteURL == nil
}

func scanJobRow(scanner rowScanner) (*models.Job, error) {
	var job models.Job

	err := scanner.Scan(
		&job.ID, &job.Title, &job.Company, &job.AppliedAt,
		&job.Status, &job.Type, &job.WebsiteURL, &job.UserID,
		&job.CreatedAt,
	)
	if err != nil {
		return nil, database.MapPostgresError(err)
	}

	return &job, nil
}

func scanJobRows(rows pgx.Rows) ([]*models.Job, error) {
	defer rows.Close()

	jobs := make([]*models.Job, 0)

	for rows.Next() {
		job, err := scanJobRow(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan job: %w", err)
		}
		jobs = append(jobs, job)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return jobs, nil
}

func (r *JobRepository) ListByUser(ctx context.Context, userID string) ([]*models.Job, error) {
	query := `
		SELECT id, job_title, company, applied_at, job_status, job_type, website_url, user_id, created_at
		FROM jobs WHERE user_id = $1 ORDER BY created_at DESC
	`

	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query jobs: %w", err)
	}

	return scanJobRows(rows)
}

func (r *JobRepository) Create(ctx context.Context, job *models.Job) (*models.Job, error) {
	job.ID = uuid.New().String()
	job.CreatedAt = time.Now()

	query := `
		INSERT INTO jobs (id, job_title, company, applied_at, job_status, job_type, website_url, user_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id, job_title, company, applied_at, job_status, job_type, website_url, user_id, created_at
	`

	return scanJobRow(r.pool.QueryRow(ctx, query,
		job.ID, job.Title, job.Company, job.AppliedAt,
		job.Status, job.Type, job.WebsiteURL, job.UserID,
		job.CreatedAt,
	))
}

// Update applies the provided fields with COALESCE so absent fields
// keep their stored value. Returns models.ErrNotFound when the id is
// absent.
func (r *JobRepository) Update(ctx context.Context, id string, update *JobUpdate) (*models.Job, error) {
	query := `
		UPDATE jobs SET
			job_title = COALESCE($1, job_title),
			company = COALESCE($2, company),
			applied_at = COALESCE($3, applied_at),
			job_status = COALESCE($4, job_status),
			job_type = COALESCE($5, job_type),
			website_url = COALESCE($6, website_url)
		WHERE id = $7
		RETURNING id, job_title, company, applied_at, job_status, job_type, website_url, user_id, created_at
	`

	return scanJobRow(r.pool.QueryRow(ctx, query,
		update.Title, update.Company, update.AppliedAt,
		update.Status, update.Type, update.WebsiteURL, id,
	))
}

// Delete removes the job and returns the deleted row, or
// models.ErrNotFound when the id is absent.
func (r *JobRepository) Delete(ctx context.Context, id string) (*models.Job, error) {
	query := `
		DELETE FROM jobs WHERE id = $1
		RETURNING id, job_title, company, applied_at, job_status, job_type, website_url, user_id, created_at
	`

	return scanJobRow(r.pool.QueryRow(ctx, query, id))
}
