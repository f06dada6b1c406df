package repositories

import (
	"context"

	"github.com/ckoehne/hurdler/pkg/repositories/models"
)

type Repository interface {
	Close(ctx context.Context) error
	// SaveRun stores a finished run.
	SaveRun(ctx context.Context, run *models.Run) error
	// ListRuns returns up to limit runs, most recent first.
	ListRuns(ctx context.Context, limit int) ([]*models.Run, error)
	// BestRun returns the run with the greatest distance.
	BestRun(ctx context.Context) (*models.Run, error)
}
