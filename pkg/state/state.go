package state

import (
	"context"

	"github.com/ckoehne/hurdler/pkg/messages"
)

// Manager provides shared read access to the latest simulation snapshot.
// Implementations must be thread-safe: the game loop writes, API handlers
// and spectator streams read.
type Manager interface {
	// Get returns the latest snapshot, or nil if none has been published yet.
	Get(ctx context.Context) (*messages.GameSnapshot, error)
	// Set publishes a new snapshot.
	Set(ctx context.Context, snapshot *messages.GameSnapshot) error
}
