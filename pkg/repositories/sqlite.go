package repositories

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	"github.com/ckoehne/hurdler/pkg/repositories/models"
	_ "github.com/mattn/go-sqlite3"
)

type SQLiteRepository struct {
	db *sql.DB
}

func NewSQLiteRepository(ctx context.Context, path string, migrations string) (Repository, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %v", err)
	}

	dir, err := os.ReadDir(migrations)
	if err != nil {
		return nil, fmt.Errorf("failed to read migrations directory: %v", err)
	}

	for _, entry := range dir {
		if entry.IsDir() {
			continue
		}

		migrationPath := filepath.Join(migrations, entry.Name())
		migration, err := os.ReadFile(migrationPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read migration %s: %v", migrationPath, err)
		}

		if _, err := db.ExecContext(ctx, string(migration)); err != nil {
			return nil, fmt.Errorf("failed to execute migration %s: %v", migrationPath, err)
		}
	}

	return &SQLiteRepository{
		db: db,
	}, nil
}

func (r *SQLiteRepository) Close(ctx context.Context) error {
	return r.db.Close()
}

func (r *SQLiteRepository) SaveRun(ctx context.Context, run *models.Run) error {
	q := `
	INSERT OR REPLACE INTO runs (run_id, ended_at, duration, distance, obstacles_cleared)
	VALUES (?, ?, ?, ?, ?);
	`
	_, err := r.db.ExecContext(ctx, q, run.ID, run.EndedAt, run.Duration, run.Distance, run.ObstaclesCleared)
	if err != nil {
		return fmt.Errorf("failed to insert run: %v", err)
	}

	return nil
}

func (r *SQLiteRepository) ListRuns(ctx context.Context, limit int) ([]*models.Run, error) {
	q := `
	SELECT run_id, ended_at, duration, distance, obstacles_cleared
	FROM runs ORDER BY ended_at DESC LIMIT ?;
	`
	rows, err := r.db.QueryContext(ctx, q, limit)
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

func (r *SQLiteRepository) BestRun(ctx context.Context) (*models.Run, error) {
	q := `
	SELECT run_id, ended_at, duration, distance, obstacles_cleared
	FROM runs ORDER BY distance DESC LIMIT 1;
	`
	run := &models.Run{}
	if err := r.db.QueryRowContext(ctx, q).Scan(&run.ID, &run.EndedAt, &run.Duration, &run.Distance, &run.ObstaclesCleared); err != nil {
		if err == sql.ErrNoRows {
			return nil, &ErrNotFound{}
		}
		return nil, fmt.Errorf("failed to scan run: %v", err)
	}

	return run, nil
}
