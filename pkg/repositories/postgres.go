package repositories

import (
	"context"
	"fmt"

	"github.com/ckoehne/hurdler/pkg/repositories/models"
	"github.com/jackc/pgx/v5"
)

type PostgresRepository struct {
	conn *pgx.Conn
}

// NewPostgresRepository connects to the database and ensures the runs table
// exists. The caller is responsible for calling Close() on the repository.
func NewPostgresRepository(ctx context.Context, connStr string) (Repository, error) {
	conn, err := pgx.Connect(ctx, connStr)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %v", err)
	}

	q := `
	CREATE TABLE IF NOT EXISTS runs (
		run_id TEXT PRIMARY KEY,
		ended_at BIGINT NOT NULL,
		duration DOUBLE PRECISION NOT NULL,
		distance DOUBLE PRECISION NOT NULL,
		obstacles_cleared INTEGER NOT NULL
	);
	`
	if _, err := conn.Exec(ctx, q); err != nil {
		return nil, fmt.Errorf("failed to create runs table: %v", err)
	}

	return &PostgresRepository{
		conn: conn,
	}, nil
}

func (r *PostgresRepository) Close(ctx context.Context) error {
	return r.conn.Close(ctx)
}

func (r *PostgresRepository) SaveRun(ctx context.Context, run *models.Run) error {
	q := `
	INSERT INTO runs (run_id, ended_at, duration, distance, obstacles_cleared)
	VALUES ($1, $2, $3, $4, $5)
	ON CONFLICT (run_id) DO UPDATE SET
		ended_at = $2, duration = $3, distance = $4, obstacles_cleared = $5;
	`
	_, err := r.conn.Exec(ctx, q, run.ID, run.EndedAt, run.Duration, run.Distance, run.ObstaclesCleared)
	if err != nil {
		return fmt.Errorf("failed to insert run: %v", err)
	}

	return nil
}

func (r *PostgresRepository) ListRuns(ctx context.Context, limit int) ([]*models.Run, error) {
	q := `
	SELECT run_id, ended_at, duration, distance, obstacles_cleared
	FROM runs ORDER BY ended_at DESC LIMIT $1;
	`
	rows, err := r.conn.Query(ctx, q, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query runs: %v", err)
	}
	defer rows.Close()

	var runs []*models.Run
	for rows.Next() {
		run := &models.Run{}
		if err := rows.Scan(&run.ID, &run.EndedAt, &run.Duration, &run.Distance, &run.ObstaclesCleared); err != nil {
			return nil, fmt.Errorf("failed to scan run: %v", err)
		}
		runs = append(runs, run)
	}

	return runs, rows.Err()
}

func (r *PostgresRepository) BestRun(ctx context.Context) (*models.Run, error) {
	q := `
	SELECT run_id, ended_at, duration, distance, obstacles_cleared
	FROM runs ORDER BY distance DESC LIMIT 1;
	`
	run := &models.Run{}
	if err := r.conn.QueryRow(ctx, q).Scan(&run.ID, &run.EndedAt, &run.Duration, &run.Distance, &run.ObstaclesCleared); err != nil {
		if err == pgx.ErrNoRows {
			return nil, &ErrNotFound{}
		}
		return nil, fmt.Errorf("failed to scan run: %v", err)
	}

	return run, nil
}
