package postgres

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/lib/pq"

	"mergingtonactivities/internal/domain"
)

const signupLogSchema = `
	CREATE TABLE IF NOT EXISTS signup_log (
		id            BIGSERIAL PRIMARY KEY,
		activity_name TEXT        NOT NULL,
		email         TEXT        NOT NULL,
		created_at    TIMESTAMPTZ NOT NULL
	)
`

type signupLogRepository struct {
	DB *sql.DB
}

// Open opens a postgres connection pool and verifies it with a ping.
func Open(ctx context.Context, dsn string) (*sql.DB, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping postgres: %w", err)
	}
	return db, nil
}

// EnsureSchema creates the signup_log table if it does not exist.
func EnsureSchema(ctx context.Context, db *sql.DB) error {
	if _, err := db.ExecContext(ctx, signupLogSchema); err != nil {
		return fmt.Errorf("create signup_log: %w", err)
	}
	return nil
}

func NewSignupLogRepository(db *sql.DB) domain.SignupLogRepository {
	return &signupLogRepository{
		DB: db,
	}
}

func (r *signupLogRepository) Record(ctx context.Context, entry *domain.SignupLogEntry) error {
	query := `
		INSERT INTO signup_log (activity_name, email, created_at)
		VALUES ($1, $2, $3)
		RETURNING id
	`
	return r.DB.QueryRowContext(ctx, query, entry.ActivityName, entry.Email, entry.CreatedAt).
		Scan(&entry.ID)
}

func (r *signupLogRepository) ListByActivity(ctx context.Context, activityName string) ([]*domain.SignupLogEntry, error) {
	query := `
		SELECT id, activity_name, email, created_at
		FROM signup_log
		WHERE activity_name = $1
		ORDER BY created_at ASC, id ASC
	`
	rows, err := r.DB.QueryContext(ctx, query, activityName)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []*domain.SignupLogEntry
	for rows.Next() {
		e := &domain.SignupLogEntry{}
		if err := rows.Scan(&e.ID, &e.ActivityName, &e.Email, &e.CreatedAt); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if entries == nil {
		entries = []*domain.SignupLogEntry{}
	}
	return entries, nil
}
