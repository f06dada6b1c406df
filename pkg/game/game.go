package game

import (
	"context"
	"time"

	"github.com/ckoehne/hurdler/pkg/log"
	"github.com/ckoehne/hurdler/pkg/messages"
	"github.com/ckoehne/hurdler/pkg/queue"
	"github.com/ckoehne/hurdler/pkg/repositories/models"
	"github.com/ckoehne/hurdler/pkg/state"
	"github.com/ckoehne/hurdler/pkg/workers"
)

// GameManager hosts a Simulation behind the headless server: it drains the
// input queue, steps the simulation at a fixed interval, publishes snapshots
// for the API and spectators, and hands finished runs to the save worker.
type GameManager struct {
	sim              *Simulation
	inputQueue       queue.Queue
	stateManager     state.Manager
	saveRunChan      chan<- workers.SaveRunRequest
	gameLoopInterval time.Duration
}

// NewGameManagerOptions contains options for creating a new GameManager.
type NewGameManagerOptions struct {
	Simulation       *Simulation
	InputQueue       queue.Queue
	StateManager     state.Manager
	SaveRunChan      chan<- workers.SaveRunRequest
	GameLoopInterval time.Duration
}

func NewGameManager(opts NewGameManagerOptions) *GameManager {
	return &GameManager{
		sim:              opts.Simulation,
		inputQueue:       opts.InputQueue,
		stateManager:     opts.StateManager,
		saveRunChan:      opts.SaveRunChan,
		gameLoopInterval: opts.GameLoopInterval,
	}
}

// Start starts the game loop. It blocks until the context is cancelled.
func (gm *GameManager) Start(ctx context.Context) error {
	ticker := time.NewTicker(gm.gameLoopInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case t := <-ticker.C:
			gm.gameTick(ctx, t)
		}
	}
}

// gameTick runs one iteration of the game loop.
func (gm *GameManager) gameTick(ctx context.Context, t time.Time) {
	gm.processInputMessages()

	gm.sim.State().Timestamp = t.UnixMilli()
	summary := gm.sim.Step(gm.gameLoopInterval.Seconds())
	if summary != nil {
		gm.saveRunChan <- workers.SaveRunRequest{
			Run: &models.Run{
				ID:               summary.RunID,
				EndedAt:          t.UnixMilli(),
				Duration:         summary.Duration,
				Distance:         summary.Distance,
				ObstaclesCleared: summary.ObstaclesCleared,
			},
		}
	}

	if err := gm.stateManager.Set(ctx, SnapshotFromSimulation(gm.sim)); err != nil {
		log.Error("Failed to publish snapshot: %v", err)
	}
}

// processInputMessages drains all pending input messages and forwards jump
// requests to the simulation's controller.
func (gm *GameManager) processInputMessages() {
	pendingMessages, err := gm.inputQueue.ReadAllMessages()
	if err != nil {
		log.Error("Failed to read input messages: %v", err)
		return
	}
	for _, item := range pendingMessages {
		clientInput, ok := item.(*messages.ClientInput)
		if !ok {
			log.Error("Failed to cast message to messages.ClientInput")
			continue
		}
		if clientInput.Jump {
			gm.sim.Controller().QueueJump()
		}
	}
}
