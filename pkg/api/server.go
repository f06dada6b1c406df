package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/ckoehne/hurdler/pkg/api/handlers"
	"github.com/ckoehne/hurdler/pkg/log"
	"github.com/ckoehne/hurdler/pkg/queue"
	"github.com/ckoehne/hurdler/pkg/repositories"
	"github.com/ckoehne/hurdler/pkg/state"
	"github.com/gorilla/mux"
)

type APIServer struct {
	server *http.Server
}

type NewAPIServerOptions struct {
	Port          int
	Repository    repositories.Repository
	StateManager  state.Manager
	InputQueue    queue.Queue
	WatchInterval time.Duration
}

// NewAPIServer creates a new http.Server for the read API and the websocket
// play/watch endpoints.
func NewAPIServer(opts NewAPIServerOptions) *APIServer {
	r := mux.NewRouter()
	r.HandleFunc("/api/state", handlers.HandleGetState(opts.StateManager)).Methods(http.MethodGet)
	r.HandleFunc("/api/runs", handlers.HandleListRuns(opts.Repository)).Methods(http.MethodGet)
	r.HandleFunc("/api/runs/best", handlers.HandleBestRun(opts.Repository)).Methods(http.MethodGet)
	r.HandleFunc("/watch", handlers.HandleWatch(opts.StateManager, opts.WatchInterval)).Methods(http.MethodGet)
	r.HandleFunc("/play", handlers.HandlePlay(opts.InputQueue)).Methods(http.MethodGet)
	r.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}).Methods(http.MethodGet)

	server := &http.Server{
		Addr:    fmt.Sprintf(":%d", opts.Port),
		Handler: r,
	}
	return &APIServer{
		server: server,
	}
}

// Start starts the APIServer
func (s *APIServer) Start() {
	log.Info("API server listening on %s", s.server.Addr)
	if err := s.server.ListenAndServe(); err != nil {
		if errors.Is(err, http.ErrServerClosed) {
			log.Info("API server closed")
			return
		}
		log.Error("API server error: %v", err)
	}
}

// Stop stops the APIServer
func (s *APIServer) Stop(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}
