package types

import (
	"testing"

	"github.com/ckoehne/hurdler/pkg/input"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlayerState_Update_JumpKinematics(t *testing.T) {
	tuning := DefaultPlayerTuning()
	controller := input.NewState()
	player := NewPlayerState(tuning)

	require.False(t, player.IsAirborne)
	require.Equal(t, tuning.GroundY, player.Position.Y)

	dt := 0.1
	controller.QueueJump()
	player.Update(dt, controller, tuning)

	// The jump is taken and consumed; gravity already applies within the
	// same tick.
	assert.True(t, player.IsAirborne)
	assert.False(t, controller.JumpQueued())
	assert.InDelta(t, tuning.JumpSpeed-tuning.Gravity*dt, player.Velocity.Y, 1e-9)
	// Position lags the velocity change by one tick.
	assert.Equal(t, tuning.GroundY, player.Position.Y)

	// Each subsequent airborne tick loses Gravity*dt of vertical speed.
	prevVy := player.Velocity.Y
	player.Update(dt, controller, tuning)
	assert.InDelta(t, prevVy-tuning.Gravity*dt, player.Velocity.Y, 1e-9)
	assert.Greater(t, player.Position.Y, tuning.GroundY)

	// Run the jump to completion: the player lands back on the ground.
	for i := 0; i < 100; i++ {
		player.Update(dt, controller, tuning)
		if !player.IsAirborne {
			break
		}
	}
	assert.False(t, player.IsAirborne)
	assert.Equal(t, tuning.GroundY, player.Position.Y)
	assert.Equal(t, 0.0, player.Velocity.Y)
}

func TestPlayerState_Update_JumpIgnoredWhileAirborne(t *testing.T) {
	tuning := DefaultPlayerTuning()
	controller := input.NewState()
	player := NewPlayerState(tuning)

	controller.QueueJump()
	player.Update(0.1, controller, tuning)
	require.True(t, player.IsAirborne)

	// A jump queued mid-air is not taken and not consumed.
	controller.QueueJump()
	vyBefore := player.Velocity.Y
	player.Update(0.1, controller, tuning)
	assert.True(t, controller.JumpQueued())
	assert.Less(t, player.Velocity.Y, vyBefore)
}

func TestPlayerState_Update_HorizontalMotion(t *testing.T) {
	tuning := DefaultPlayerTuning()
	controller := input.NewState()
	player := NewPlayerState(tuning)

	player.Update(0.1, controller, tuning)
	player.Update(0.2, controller, tuning)

	assert.InDelta(t, tuning.StartX+tuning.SpeedX*0.3, player.Position.X, 1e-9)
	assert.Equal(t, tuning.SpeedX, player.Velocity.X)
}

func TestPlayerState_Update_NegativeDtClamped(t *testing.T) {
	tuning := DefaultPlayerTuning()
	controller := input.NewState()
	player := NewPlayerState(tuning)

	player.Update(-1.0, controller, tuning)

	assert.Equal(t, tuning.StartX, player.Position.X)
	assert.Equal(t, tuning.GroundY, player.Position.Y)
}

func TestPlayerState_Reset(t *testing.T) {
	tuning := DefaultPlayerTuning()
	controller := input.NewState()
	player := NewPlayerState(tuning)

	controller.QueueJump()
	for i := 0; i < 5; i++ {
		player.Update(0.1, controller, tuning)
	}
	require.NotEqual(t, tuning.StartX, player.Position.X)

	player.Reset(tuning)
	assert.Equal(t, tuning.StartX, player.Position.X)
	assert.Equal(t, tuning.GroundY, player.Position.Y)
	assert.False(t, player.IsAirborne)
	assert.Equal(t, tuning.SpeedX, player.Velocity.X)
}
