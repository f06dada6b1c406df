package types

import (
	"github.com/ckoehne/hurdler/pkg/game/constants"
	"github.com/ckoehne/hurdler/pkg/input"
	"github.com/ckoehne/hurdler/pkg/kinematic"
)

// PlayerTuning holds the tunable constants of the player kinematics.
type PlayerTuning struct {
	// GroundY is the y coordinate of the ground
	GroundY float64 `yaml:"groundY"`
	// SpeedX is the constant horizontal speed
	SpeedX float64 `yaml:"speedX"`
	// JumpSpeed is the vertical speed applied when a jump starts
	JumpSpeed float64 `yaml:"jumpSpeed"`
	// Gravity is the downward acceleration applied while airborne
	Gravity float64 `yaml:"gravity"`
	// StartX is the x coordinate the player starts a run at
	StartX float64 `yaml:"startX"`
	// Extents is the player collision box
	Extents Extents `yaml:"extents"`
}

// DefaultPlayerTuning returns the stock player tuning.
func DefaultPlayerTuning() PlayerTuning {
	return PlayerTuning{
		GroundY:   constants.GroundYLevel,
		SpeedX:    constants.PlayerSpeedX,
		JumpSpeed: constants.InitialJumpSpeedY,
		Gravity:   constants.Gravity,
		StartX:    constants.PlayerStartX,
		Extents: Extents{
			LowerX:  constants.PlayerExtent,
			HigherX: constants.PlayerExtent,
			LowerY:  constants.PlayerExtent,
			HigherY: constants.PlayerExtent,
		},
	}
}

// PlayerState is the player: a collider with constant horizontal motion and
// gravity-driven vertical motion.
type PlayerState struct {
	Collider
	Velocity   kinematic.Vector
	IsAirborne bool
}

// NewPlayerState creates a player standing on the ground at the tuning's
// starting position.
func NewPlayerState(tuning PlayerTuning) *PlayerState {
	return &PlayerState{
		Collider: Collider{
			Position: kinematic.Vector{X: tuning.StartX, Y: tuning.GroundY},
			Extents:  tuning.Extents,
		},
		Velocity: kinematic.Vector{X: tuning.SpeedX, Y: 0},
	}
}

// Update advances the player by dt seconds. The position integrates the
// velocity from the previous tick before any velocity change, so position
// changes always lag velocity changes by one tick. A queued jump is only
// taken while grounded and is consumed when taken. Negative dt is clamped
// to zero.
func (p *PlayerState) Update(dt float64, controller input.Controller, tuning PlayerTuning) {
	if dt < 0 {
		dt = 0
	}

	p.Position.X += p.Velocity.X * dt
	p.Position.Y += p.Velocity.Y * dt

	if controller.JumpQueued() && !p.IsAirborne {
		p.Velocity.Y = tuning.JumpSpeed
		p.IsAirborne = true
		controller.ConsumeJump()
	}

	if p.IsAirborne {
		p.Velocity.Y = kinematic.FinalVelocity(p.Velocity.Y, dt, -tuning.Gravity)
		// Landed: reached the ground from above while falling.
		if p.Position.Y <= tuning.GroundY && p.Velocity.Y <= 0 {
			p.Position.Y = tuning.GroundY
			p.Velocity.Y = 0
			p.IsAirborne = false
		}
	} else {
		p.Velocity.Y = 0
		p.Position.Y = tuning.GroundY
	}
}

// Reset puts the player back at the start of a run.
func (p *PlayerState) Reset(tuning PlayerTuning) {
	p.Position = kinematic.Vector{X: tuning.StartX, Y: tuning.GroundY}
	p.Velocity = kinematic.Vector{X: tuning.SpeedX, Y: 0}
	p.IsAirborne = false
}
