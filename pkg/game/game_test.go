package game

import (
	"context"
	"math/rand"
	"testing"
	"time"

	"github.com/ckoehne/hurdler/pkg/game/config"
	"github.com/ckoehne/hurdler/pkg/messages"
	"github.com/ckoehne/hurdler/pkg/queue"
	"github.com/ckoehne/hurdler/pkg/state"
	"github.com/ckoehne/hurdler/pkg/workers"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestGameManager(t *testing.T) (*GameManager, *queue.InMemoryQueue, *state.InMemoryManager, chan workers.SaveRunRequest) {
	t.Helper()
	sim := NewSimulation(NewSimulationOptions{
		Config: config.Default(),
		Rand:   rand.New(rand.NewSource(7)),
	})
	inputQueue := queue.NewInMemoryQueue(64)
	stateManager := state.NewInMemoryManager()
	saveRunChan := make(chan workers.SaveRunRequest, 16)
	gm := NewGameManager(NewGameManagerOptions{
		Simulation:       sim,
		InputQueue:       inputQueue,
		StateManager:     stateManager,
		SaveRunChan:      saveRunChan,
		GameLoopInterval: 100 * time.Millisecond,
	})
	return gm, inputQueue, stateManager, saveRunChan
}

func TestGameManager_GameTick_AppliesQueuedInput(t *testing.T) {
	gm, inputQueue, stateManager, _ := newTestGameManager(t)
	ctx := context.Background()

	require.NoError(t, inputQueue.Enqueue(&messages.ClientInput{Jump: true, Timestamp: 1}))
	gm.gameTick(ctx, time.Now())

	// The jump was taken this tick.
	assert.True(t, gm.sim.State().Player.IsAirborne)
	assert.False(t, gm.sim.Controller().JumpQueued())
	assert.Equal(t, 0, inputQueue.Size())

	// A snapshot was published for readers.
	snapshot, err := stateManager.Get(ctx)
	require.NoError(t, err)
	require.NotNil(t, snapshot)
	assert.Equal(t, gm.sim.State().Player.Position.X, snapshot.Player.X)
	assert.Equal(t, gm.sim.State().CameraPosition, snapshot.CameraX)
	assert.True(t, snapshot.Player.IsAirborne)
	assert.NotEmpty(t, snapshot.Obstacles)
}

func TestGameManager_GameTick_IgnoresNonInputMessages(t *testing.T) {
	gm, inputQueue, _, _ := newTestGameManager(t)

	require.NoError(t, inputQueue.Enqueue("not an input message"))
	gm.gameTick(context.Background(), time.Now())

	assert.False(t, gm.sim.State().Player.IsAirborne)
}

func TestGameManager_GameTick_SavesFinishedRuns(t *testing.T) {
	gm, _, _, saveRunChan := newTestGameManager(t)
	ctx := context.Background()
	runID := gm.sim.RunID()

	// Never jumping guarantees the first obstacle ends the run.
	var saved *workers.SaveRunRequest
	for i := 0; i < 1000 && saved == nil; i++ {
		gm.gameTick(ctx, time.Now())
		select {
		case req := <-saveRunChan:
			saved = &req
		default:
		}
	}

	require.NotNil(t, saved, "a finished run should reach the save channel")
	assert.Equal(t, runID, saved.Run.ID)
	assert.Greater(t, saved.Run.Distance, 0.0)
	assert.Greater(t, saved.Run.Duration, 0.0)
	assert.NotZero(t, saved.Run.EndedAt)
}
