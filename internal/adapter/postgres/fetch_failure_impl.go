package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/user/catalog-service/internal/entity"
)

const fetchFailuresSchema = `
	CREATE TABLE IF NOT EXISTS fetch_failures (
		id BIGSERIAL PRIMARY KEY,
		url TEXT NOT NULL UNIQUE,
		endpoint TEXT NOT NULL DEFAULT '',
		failure_reason TEXT NOT NULL DEFAULT '',
		http_status_code INTEGER NOT NULL DEFAULT 0,
		last_attempt_timestamp TIMESTAMPTZ NOT NULL,
		attempt_count INTEGER NOT NULL DEFAULT 1
	);
`

// Connect opens a pool and verifies it with a ping.
func Connect(ctx context.Context, connStr string) (*pgxpool.Pool, error) {
	db, err := pgxpool.New(ctx, connStr)
	if err != nil {
		return nil, fmt.Errorf("unable to connect to database: %w", err)
	}
	if err := db.Ping(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("unable to reach database: %w", err)
	}
	return db, nil
}

// FetchFailureRepoImpl provides a concrete implementation for the FetchFailureRepository interface using PostgreSQL.
type FetchFailureRepoImpl struct {
	db *pgxpool.Pool
}

// NewFetchFailureRepo creates a new instance of FetchFailureRepoImpl.
func NewFetchFailureRepo(db *pgxpool.Pool) *FetchFailureRepoImpl {
	return &FetchFailureRepoImpl{db: db}
}

// EnsureSchema creates the fetch_failures table if it does not exist.
func (r *FetchFailureRepoImpl) EnsureSchema(ctx context.Context) error {
	_, err := r.db.Exec(ctx, fetchFailuresSchema)
	return err
}

// SaveOrUpdate creates or updates a record for a failed URL.
// It increments attempt_count on conflict.
func (r *FetchFailureRepoImpl) SaveOrUpdate(ctx context.Context, failure *entity.FetchFailure) error {
	query := `
		INSERT INTO fetch_failures (url, endpoint, failure_reason, http_status_code, last_attempt_timestamp, attempt_count)
		VALUES ($1, $2, $3, $4, $5, 1)
		ON CONFLICT (url) DO UPDATE SET
			endpoint = EXCLUDED.endpoint,
			failure_reason = EXCLUDED.failure_reason,
			http_status_code = EXCLUDED.http_status_code,
			last_attempt_timestamp = EXCLUDED.last_attempt_timestamp,
			attempt_count = fetch_failures.attempt_count + 1;
	`
	_, err := r.db.Exec(ctx, query,
		failure.URL,
		failure.Endpoint,
		failure.FailureReason,
		failure.HTTPStatusCode,
		failure.LastAttemptTimestamp,
	)
	return err
}

// FindRecent retrieves the most recently failed URLs.
func (r *FetchFailureRepoImpl) FindRecent(ctx context.Context, limit int) ([]*entity.FetchFailure, error) {
	query := `
		SELECT id, url, endpoint, failure_reason, http_status_code, last_attempt_timestamp, attempt_count
		FROM fetch_failures
		ORDER BY last_attempt_timestamp DESC
		LIMIT $1;
	`
	rows, err := r.db.Query(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var failures []*entity.FetchFailure
	for rows.Next() {
		var f entity.FetchFailure
		if err := rows.Scan(
			&f.ID,
			&f.URL,
			&f.Endpoint,
			&f.FailureReason,
			&f.HTTPStatusCode,
			&f.LastAttemptTimestamp,
			&f.AttemptCount,
		); err != nil {
			return nil, err
		}
		failures = append(failures, &f)
	}

	return failures, rows.Err()
}

// Delete removes a failure record, typically after a successful fetch.
func (r *FetchFailureRepoImpl) Delete(ctx context.Context, url string) error {
	query := `DELETE FROM fetch_failures WHERE url = $1;`
	_, err := r.db.Exec(ctx, query, url)
	return err
}

// Ping checks the connection, used by the health check.
func (r *FetchFailureRepoImpl) Ping(ctx context.Context) error {
	return r.db.Ping(ctx)
}
