package game

import (
	"github.com/ckoehne/hurdler/pkg/messages"
)

// SnapshotFromSimulation builds the renderable view of the simulation.
func SnapshotFromSimulation(s *Simulation) *messages.GameSnapshot {
	state := s.State()
	player := state.Player

	obstacleStates := s.Obstacles()
	obstacleSnapshots := make([]messages.ObstacleSnapshot, len(obstacleStates))
	for i, o := range obstacleStates {
		obstacleSnapshots[i] = messages.ObstacleSnapshot{
			X:       o.Position.X,
			Y:       o.Position.Y,
			LowerX:  o.Extents.LowerX,
			HigherX: o.Extents.HigherX,
			LowerY:  o.Extents.LowerY,
			HigherY: o.Extents.HigherY,
		}
	}

	return &messages.GameSnapshot{
		Timestamp:        state.Timestamp,
		RunID:            s.RunID(),
		CameraX:          state.CameraPosition,
		TimePlayed:       state.TotalTimePlayed,
		Distance:         s.Distance(),
		ObstaclesCleared: s.ObstaclesCleared(),
		Player: messages.PlayerSnapshot{
			X:          player.Position.X,
			Y:          player.Position.Y,
			VelocityX:  player.Velocity.X,
			VelocityY:  player.Velocity.Y,
			IsAirborne: player.IsAirborne,
		},
		Obstacles: obstacleSnapshots,
	}
}
