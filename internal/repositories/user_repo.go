package repositories

import (
	"context"
	"time"

	"github.com/BradenHooton/planwell/internal/database"
	"github.com/BradenHooton/planwell/internal/models"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type UserRepository struct {
	pool *pgxpool.Pool
}

func NewUserRepository(db *database.DB) *UserRepository {
	return &UserRepository{pool: db.Pool}
}

// rowScanner interface for scanning rows (single row or rows iterator)
type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanUserRow(scanner rowScanner) (*models.User, error) {
	var user models.User

	err := scanner.Scan(
		&user.ID, &user.FirstName, &user.LastName, &user.Email,
		&user.PasswordHash, &user.CreatedAt, &user.UpdatedAt,
	)
	if err != nil {
		return nil, database.MapPostgresError(err)
	}

	return &user, nil
}

// Create inserts a new user. The email carries a unique constraint;
// a duplicate surfaces as models.ErrConflict.
func (r *UserRepository) Create(ctx context.Context, user *models.User) (*models.User, error) {
	user.ID = uuid.New().String()

	now := time.Now()
	user.CreatedAt = now
	user.UpdatedAt = now

	query := `
		INSERT INTO users (id, first_name, last_name, email, password_hash, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, first_name, last_name, email, password_hash, created_at, updated_at
	`

	return scanUserRow(r.pool.QueryRow(ctx, query,
		user.ID, user.FirstName, user.LastName, user.Email,
		user.PasswordHash, user.CreatedAt, user.UpdatedAt,
	))
}

func (r *UserRepository) GetByID(ctx context.Context, id string) (*models.User, error) {
	query := `
		SELECT id, first_name, last_name, email, password_hash, created_at, updated_at
		FROM users WHERE id = $1
	`

	return scanUserRow(r.pool.QueryRow(ctx, query, id))
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	query := `
		SELECT id, first_name, last_name, email, password_hash, created_at, updated_at
		FROM users WHERE email = $1
	`

	return scanUserRow(r.pool.QueryRow(ctx, query, email))
}

// UpdatePassword overwrites the stored hash for the email and returns
// the updated row, or models.ErrNotFound when the email is absent.
func (r *UserRepository) UpdatePassword(ctx context.Context, email, passwordHash string) (*models.User, error) {
	query := `
		UPDATE users SET password_hash = $1, updated_at = $2 WHERE email = $3
		RETURNING id, first_name, last_name, email, password_hash, created_at, updated_at
	`

	return scanUserRow(r.pool.QueryRow(ctx, query, passwordHash, time.Now(), email))
}

// Delete removes the user and returns the deleted row, or
// models.ErrNotFound when the id is absent.
func (r *UserRepository) Delete(ctx context.Context, id string) (*models.User, error) {
	query := `
		DELETE FROM users WHERE id = $1
		RETURNING id, first_name, last_name, email, password_hash, created_at, updated_at
	`

	return scanUserRow(r.pool.QueryRow(ctx, query, id))
}
