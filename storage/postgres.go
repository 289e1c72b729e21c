package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	_ "github.com/lib/pq"

	"github.com/Axios-AI-Innovations/cloud/models"
)

// PostgresStorage talks to the managed Postgres instance behind DATABASE_URL.
type PostgresStorage struct {
	db *sql.DB
}

func NewPostgres(databaseURL string) (*PostgresStorage, error) {
	db, err := sql.Open("postgres", databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to open postgres: %w", err)
	}

	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)

	return &PostgresStorage{db: db}, nil
}

// RunMigrations applies the SQL files under sourceURL (e.g.
// "file://db/migrations") in filename order. Already-applied migrations are
// skipped; an up-to-date schema is not an error.
func RunMigrations(sourceURL, databaseURL string) error {
	m, err := migrate.New(sourceURL, databaseURL)
	if err != nil {
		return fmt.Errorf("failed to initialize migrations: %w", err)
	}
	defer m.Close()

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("failed to apply migrations: %w", err)
	}
	return nil
}

const upsertEarlyAccessQuery = `
INSERT INTO early_access (email, source)
VALUES ($1, $2)
ON CONFLICT (email) DO UPDATE
    SET source = EXCLUDED.source,
        updated_at = NOW()
RETURNING id, email, source, created_at, updated_at`

func (s *PostgresStorage) UpsertEarlyAccess(ctx context.Context, email, source string) (*models.EarlyAccessRecord, error) {
	var record models.EarlyAccessRecord
	err := s.db.QueryRowContext(ctx, upsertEarlyAccessQuery, email, source).Scan(
		&record.ID,
		&record.Email,
		&record.Source,
		&record.CreatedAt,
		&record.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to upsert early access record: %w", err)
	}

	return &record, nil
}

func (s *PostgresStorage) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

func (s *PostgresStorage) Close() error {
	return s.db.Close()
}
