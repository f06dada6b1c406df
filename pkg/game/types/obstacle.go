package types

import (
	"github.com/ckoehne/hurdler/pkg/game/constants"
	"github.com/ckoehne/hurdler/pkg/kinematic"
)

// ObstacleTuning holds the tunable constants of obstacle placement and expiry.
type ObstacleTuning struct {
	// SpacingStd is the standard deviation of the half-normal gap between
	// consecutive obstacles
	SpacingStd float64 `yaml:"spacingStd"`
	// FirstOffsetX is how far ahead of the player the first obstacle spawns
	FirstOffsetX float64 `yaml:"firstOffsetX"`
	// DestructOffsetX is how far behind the camera an obstacle must be to expire
	DestructOffsetX float64 `yaml:"destructOffsetX"`
	// SpawnAheadX is how far ahead of the camera the sequence is kept filled
	SpawnAheadX float64 `yaml:"spawnAheadX"`
	// MaxPlacementRetries bounds the shrinking-offset placement loop
	MaxPlacementRetries int `yaml:"maxPlacementRetries"`
	// FallbackClearance is the gap used when placement does not converge
	FallbackClearance float64 `yaml:"fallbackClearance"`
	// Extents is the obstacle collision box
	Extents Extents `yaml:"extents"`
}

// DefaultObstacleTuning returns the stock obstacle tuning.
func DefaultObstacleTuning() ObstacleTuning {
	return ObstacleTuning{
		SpacingStd:          constants.ObstacleSpacingStd,
		FirstOffsetX:        constants.FirstObstacleOffsetX,
		DestructOffsetX:     constants.DestructOffsetX,
		SpawnAheadX:         constants.SpawnAheadX,
		MaxPlacementRetries: constants.MaxPlacementRetries,
		FallbackClearance:   constants.FallbackClearance,
		Extents: Extents{
			LowerX:  constants.ObstacleExtentX,
			HigherX: constants.ObstacleExtentX,
			LowerY:  constants.ObstacleExtentY,
			HigherY: constants.ObstacleExtentY,
		},
	}
}

// ObstacleState is a static obstacle. It carries no state beyond its
// collider; placement and lifetime are owned by the obstacle manager.
type ObstacleState struct {
	Collider
}

// NewObstacleState creates an obstacle resting at the given y with the given
// extents. Its x is assigned by the manager on Add.
func NewObstacleState(y float64, extents Extents) *ObstacleState {
	return &ObstacleState{
		Collider: Collider{
			Position: kinematic.Vector{X: 0, Y: y},
			Extents:  extents,
		},
	}
}
