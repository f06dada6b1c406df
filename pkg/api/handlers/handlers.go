package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/ckoehne/hurdler/pkg/log"
	"github.com/ckoehne/hurdler/pkg/messages"
	"github.com/ckoehne/hurdler/pkg/queue"
	"github.com/ckoehne/hurdler/pkg/repositories"
	"github.com/ckoehne/hurdler/pkg/state"
	"nhooyr.io/websocket"
	"nhooyr.io/websocket/wsjson"
)

const (
	// DefaultRunListLimit is the number of runs returned without a limit param
	DefaultRunListLimit = 20
	// MaxRunListLimit caps the limit param
	MaxRunListLimit = 100
)

// HandleGetState serves the latest simulation snapshot as JSON.
func HandleGetState(stateManager state.Manager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		snapshot, err := stateManager.Get(r.Context())
		if err != nil {
			log.Error("failed to get snapshot: %v", err)
			http.Error(w, "Failed to get snapshot", http.StatusInternalServerError)
			return
		}
		if snapshot == nil {
			http.Error(w, "No snapshot yet", http.StatusNotFound)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(snapshot); err != nil {
			log.Error("failed to encode snapshot: %v", err)
			http.Error(w, "Failed to encode snapshot", http.StatusInternalServerError)
			return
		}
	}
}

// HandleListRuns serves the run history, most recent first.
func HandleListRuns(repository repositories.Repository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		limit := DefaultRunListLimit
		if raw := r.URL.Query().Get("limit"); raw != "" {
			parsed, err := strconv.Atoi(raw)
			if err != nil || parsed < 1 {
				http.Error(w, "Limit must be a positive integer", http.StatusBadRequest)
				return
			}
			limit = parsed
		}
		if limit > MaxRunListLimit {
			limit = MaxRunListLimit
		}

		runs, err := repository.ListRuns(r.Context(), limit)
		if err != nil {
			log.Error("failed to list runs: %v", err)
			http.Error(w, "Failed to list runs", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(runs); err != nil {
			log.Error("failed to encode runs: %v", err)
			http.Error(w, "Failed to encode runs", http.StatusInternalServerError)
			return
		}
	}
}

// HandleBestRun serves the longest run on record.
func HandleBestRun(repository repositories.Repository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		run, err := repository.BestRun(r.Context())
		if err != nil {
			if repositories.IsNotFound(err) {
				http.Error(w, "No runs yet", http.StatusNotFound)
				return
			}
			log.Error("failed to get best run: %v", err)
			http.Error(w, "Failed to get best run", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(run); err != nil {
			log.Error("failed to encode run: %v", err)
			http.Error(w, "Failed to encode run", http.StatusInternalServerError)
			return
		}
	}
}

// HandleWatch streams compressed snapshots over a websocket at a fixed
// interval until the client goes away.
func HandleWatch(stateManager state.Manager, interval time.Duration) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		conn, err := websocket.Accept(w, r, nil)
		if err != nil {
			log.Error("failed to accept watch connection: %v", err)
			return
		}
		defer conn.CloseNow()

		log.Debug("Watch connection established")

		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-r.Context().Done():
				return
			case <-ticker.C:
				snapshot, err := stateManager.Get(r.Context())
				if err != nil {
					log.Error("failed to get snapshot: %v", err)
					continue
				}
				if snapshot == nil {
					continue
				}

				payload, err := messages.SerializeSnapshot(snapshot)
				if err != nil {
					log.Error("failed to serialize snapshot: %v", err)
					continue
				}

				if err := conn.Write(r.Context(), websocket.MessageBinary, payload); err != nil {
					log.Debug("Watch connection closed: %v", err)
					return
				}
			}
		}
	}
}

// HandlePlay reads input messages from a websocket and enqueues them for the
// game loop.
func HandlePlay(inputQueue queue.Queue) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		conn, err := websocket.Accept(w, r, nil)
		if err != nil {
			log.Error("failed to accept play connection: %v", err)
			return
		}
		defer conn.CloseNow()

		log.Debug("Play connection established")

		for {
			clientInput := &messages.ClientInput{}
			if err := wsjson.Read(r.Context(), conn, clientInput); err != nil {
				log.Debug("Play connection closed: %v", err)
				return
			}

			if err := inputQueue.Enqueue(clientInput); err != nil {
				log.Warn("Failed to enqueue client input: %v", err)
			}
		}
	}
}
