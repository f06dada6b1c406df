package workers

import (
	"context"

	"github.com/ckoehne/hurdler/pkg/log"
	"github.com/ckoehne/hurdler/pkg/repositories"
	"github.com/ckoehne/hurdler/pkg/repositories/models"
)

type SaveRunWorker struct {
	repository  repositories.Repository
	saveRunChan <-chan SaveRunRequest
}

type NewSaveRunWorkerOptions struct {
	Repository  repositories.Repository
	SaveRunChan <-chan SaveRunRequest
}

type SaveRunRequest struct {
	Run *models.Run
}

// NewSaveRunWorker creates a worker that persists finished runs off the
// game loop goroutine.
func NewSaveRunWorker(opts NewSaveRunWorkerOptions) *SaveRunWorker {
	return &SaveRunWorker{
		repository:  opts.Repository,
		saveRunChan: opts.SaveRunChan,
	}
}

func (w *SaveRunWorker) Start(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case saveRequest := <-w.saveRunChan:
			w.saveRun(ctx, saveRequest)
		}
	}
}

func (w *SaveRunWorker) saveRun(ctx context.Context, saveRequest SaveRunRequest) {
	if err := w.repository.SaveRun(ctx, saveRequest.Run); err != nil {
		log.Error("Failed to save run %s: %v", saveRequest.Run.ID, err)
	}
}
