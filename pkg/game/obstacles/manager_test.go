package obstacles

import (
	"math/rand"
	"testing"

	"github.com/ckoehne/hurdler/pkg/game/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestManager(t *testing.T, playerX float64, tuning types.ObstacleTuning) (*Manager, *types.GameState) {
	t.Helper()
	playerTuning := types.DefaultPlayerTuning()
	playerTuning.StartX = playerX
	player := types.NewPlayerState(playerTuning)
	state := types.NewGameState(player)
	manager := NewManager(NewManagerOptions{
		State:   state,
		Tuning:  tuning,
		GroundY: playerTuning.GroundY,
		Rand:    rand.New(rand.NewSource(42)),
	})
	return manager, state
}

func TestManager_FirstObstaclePlacedAheadOfPlayer(t *testing.T) {
	tuning := types.DefaultObstacleTuning()
	tuning.FirstOffsetX = 0.8
	manager, _ := newTestManager(t, 5.0, tuning)

	obstacle := manager.Spawn()

	assert.InDelta(t, 5.8, obstacle.Position.X, 1e-9)
	assert.Equal(t, 1, manager.Len())
	assert.Same(t, obstacle, manager.Head())
	assert.Same(t, obstacle, manager.Tail())
}

func TestManager_SpawnOrderingAndNonOverlap(t *testing.T) {
	manager, _ := newTestManager(t, 0, types.DefaultObstacleTuning())

	for i := 0; i < 100; i++ {
		manager.Spawn()
	}

	obstacles := manager.Obstacles()
	require.Len(t, obstacles, 100)
	for i := 0; i+1 < len(obstacles); i++ {
		assert.Less(t, obstacles[i].Position.X, obstacles[i+1].Position.X,
			"obstacles must be strictly x-ordered at index %d", i)
		assert.False(t, types.ObstaclesOverlap(&obstacles[i].Collider, &obstacles[i+1].Collider),
			"consecutive obstacles must not overlap at index %d", i)
	}
}

func TestManager_PlacementFallbackWhenDrawsCannotSeparate(t *testing.T) {
	tuning := types.DefaultObstacleTuning()
	// A zero deviation draws a zero offset every time, so every retry
	// overlaps and the fallback clearance has to kick in.
	tuning.SpacingStd = 0
	manager, _ := newTestManager(t, 0, tuning)

	first := manager.Spawn()
	second := manager.Spawn()

	wantX := first.RightEdge() + second.Extents.LowerX + tuning.FallbackClearance
	assert.InDelta(t, wantX, second.Position.X, 1e-9)
	assert.False(t, types.ObstaclesOverlap(&first.Collider, &second.Collider))
}

func TestManager_ExpireBehind(t *testing.T) {
	tuning := types.DefaultObstacleTuning()
	manager, _ := newTestManager(t, 0, tuning)

	for i := 0; i < 10; i++ {
		manager.Spawn()
	}
	obstacles := manager.Obstacles()

	// Pick the camera so obstacles 0..3 are exactly at or behind the
	// destruct offset and the rest are ahead of it.
	camera := obstacles[3].Position.X + tuning.DestructOffsetX

	removed := manager.ExpireBehind(camera)

	assert.Equal(t, 4, removed)
	assert.Equal(t, 6, manager.Len())
	assert.Same(t, obstacles[4], manager.Head())

	// Nothing else is eligible at the same camera position.
	assert.Equal(t, 0, manager.ExpireBehind(camera))
}

func TestManager_FillAhead(t *testing.T) {
	tuning := types.DefaultObstacleTuning()
	manager, state := newTestManager(t, 0, tuning)

	spawned := manager.FillAhead(state.CameraPosition)
	require.Greater(t, spawned, 0)

	tail := manager.Tail()
	require.NotNil(t, tail)
	assert.GreaterOrEqual(t, tail.Position.X, state.CameraPosition+tuning.SpawnAheadX)

	// Already filled: a second call is a no-op.
	assert.Equal(t, 0, manager.FillAhead(state.CameraPosition))
}

func TestManager_Reset(t *testing.T) {
	manager, _ := newTestManager(t, 0, types.DefaultObstacleTuning())

	for i := 0; i < 5; i++ {
		manager.Spawn()
	}
	require.Equal(t, 5, manager.Len())

	manager.Reset()
	assert.Equal(t, 0, manager.Len())
	assert.Nil(t, manager.Head())
	assert.Nil(t, manager.Tail())
}
